// Package anki renders enriched vocabulary entries into anki card text.
package anki

import (
	"fmt"
	"os"

	"github.com/fbngrm/zh-vocab/pkg/template"
)

// Card is one word in its exportable form.
type Card struct {
	Chinese       string
	Pronunciation string
	Traduction    []string
	IsSingleRune  bool
	Example       string
}

type Exporter struct {
	Deckname      string
	TmplProcessor *template.Processor
}

// CreateOrAppendCards renders the cards and appends the text to
// outPath.
func (e *Exporter) CreateOrAppendCards(cards []Card, templateName, outPath string) error {
	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("could not open anki cards file: %w", err)
	}
	defer f.Close()

	for _, c := range cards {
		text, err := e.TmplProcessor.Fill(c, templateName)
		if err != nil {
			return fmt.Errorf("could not fill template file: %w", err)
		}
		if _, err := f.WriteString(text); err != nil {
			return fmt.Errorf("could not append to anki cards file: %w", err)
		}
	}
	return nil
}
