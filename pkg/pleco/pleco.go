// Package pleco imports flashcards from a Pleco XML export. Cards keep
// the export's review metadata and can be filtered by category before
// they are persisted or merged into the vocabulary.
package pleco

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbngrm/zh-vocab/pkg/vocab"
)

// Card is one flashcard from the export. The review fields come from
// the optional scoreinfo element and stay empty when it is missing.
type Card struct {
	Character     string `json:"character"`
	Pronunciation string `json:"pronunciation"`
	Traduction    string `json:"traduction,omitempty"`
	Category      string `json:"category,omitempty"`
	Score         string `json:"score,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	Correct       string `json:"correct,omitempty"`
	Incorrect     string `json:"incorrect,omitempty"`
	Reviewed      string `json:"reviewed,omitempty"`
}

type Cards []Card

type exportXML struct {
	Cards struct {
		Card []cardXML `xml:"card"`
	} `xml:"cards"`
}

type cardXML struct {
	Entry struct {
		// the export carries one headword per charset; the first one is
		// the simplified form
		Headword []string `xml:"headword"`
		Pron     string   `xml:"pron"`
		Defn     string   `xml:"defn"`
	} `xml:"entry"`
	CatAssign []struct {
		Category string `xml:"category,attr"`
	} `xml:"catassign"`
	ScoreInfo *struct {
		Score      string `xml:"score,attr"`
		Difficulty string `xml:"difficulty,attr"`
		Correct    string `xml:"correct,attr"`
		Incorrect  string `xml:"incorrect,attr"`
		Reviewed   string `xml:"reviewed,attr"`
	} `xml:"scoreinfo"`
}

// Load parses a Pleco XML export.
func Load(path string) (Cards, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open pleco export: %w", err)
	}
	var export exportXML
	if err := xml.Unmarshal(b, &export); err != nil {
		return nil, fmt.Errorf("could not unmarshal pleco export: %w", err)
	}

	cards := make(Cards, 0, len(export.Cards.Card))
	for _, c := range export.Cards.Card {
		card := Card{
			Pronunciation: c.Entry.Pron,
			Traduction:    c.Entry.Defn,
		}
		if len(c.Entry.Headword) > 0 {
			card.Character = c.Entry.Headword[0]
		}
		if len(c.CatAssign) > 0 {
			card.Category = c.CatAssign[0].Category
		}
		if c.ScoreInfo != nil {
			card.Score = c.ScoreInfo.Score
			card.Difficulty = c.ScoreInfo.Difficulty
			card.Correct = c.ScoreInfo.Correct
			card.Incorrect = c.ScoreInfo.Incorrect
			card.Reviewed = c.ScoreInfo.Reviewed
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// RemoveCategories drops every card whose category contains one of the
// keywords, case-insensitively. Cards without a category always stay.
func (c Cards) RemoveCategories(keywords []string) Cards {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	kept := make(Cards, 0, len(c))
	for _, card := range c {
		if card.Category != "" && matchesAny(strings.ToLower(card.Category), lowered) {
			continue
		}
		kept = append(kept, card)
	}
	return kept
}

func matchesAny(category string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(category, k) {
			return true
		}
	}
	return false
}

// Vocab converts the cards into vocabulary entries keyed by character.
// Cards without a character are dropped; the first card wins when a
// character repeats.
func (c Cards) Vocab() vocab.Vocab {
	v := vocab.Vocab{}
	for _, card := range c {
		if card.Character == "" {
			continue
		}
		if _, ok := v[card.Character]; ok {
			continue
		}
		entry := &vocab.Entry{Pronunciation: card.Pronunciation}
		if card.Traduction != "" {
			entry.Traduction = []string{card.Traduction}
		}
		v[card.Character] = entry
	}
	return v
}

type cardJSON struct {
	Card
	Parsed map[string][]Definition `json:"parsed,omitempty"`
}

// WriteJSON persists the cards, each with its definition structured by
// part of speech where the raw text allows it.
func (c Cards) WriteJSON(path string) error {
	out := make([]cardJSON, len(c))
	for i, card := range c {
		out[i] = cardJSON{
			Card:   card,
			Parsed: ParseDefinition(card.Traduction),
		}
	}

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("could not marshal pleco cards: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write pleco cards: %w", err)
	}
	return nil
}
