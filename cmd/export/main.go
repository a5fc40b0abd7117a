// Renders the enriched vocabulary into anki card text. Single-hanzi
// entries get example words from an optional frequency index.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fbngrm/zh-vocab/pkg/anki"
	"github.com/fbngrm/zh-vocab/pkg/frequency"
	"github.com/fbngrm/zh-vocab/pkg/template"
	"github.com/fbngrm/zh-vocab/pkg/vocab"
)

var (
	vocabPath   string
	outPath     string
	tmplDir     string
	deck        string
	tags        string
	wordFreqSrc string
)

func main() {
	flag.StringVar(&vocabPath, "i", "data/processed/chinese_vocab.json", "enriched vocabulary file")
	flag.StringVar(&outPath, "o", "cards.txt", "anki cards output file")
	flag.StringVar(&tmplDir, "tmpl", "tmpl", "template directory")
	flag.StringVar(&deck, "d", "zh-vocab", "anki deck name")
	flag.StringVar(&tags, "t", "", "comma separated list of anki tags")
	flag.StringVar(&wordFreqSrc, "wordfreq", "", "optional word frequency index for example words")
	flag.Parse()

	var tagList []string
	if len(tags) > 0 {
		tagList = strings.Split(tags, ",")
	}
	tagList = append(tagList, deck)

	v, err := vocab.Load(vocabPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var wordIndex *frequency.WordIndex
	if wordFreqSrc != "" {
		wordIndex, err = frequency.NewWordIndex(wordFreqSrc)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	words := make([]string, 0, len(v))
	for word := range v {
		words = append(words, word)
	}
	sort.Strings(words)

	var cards []anki.Card
	for _, word := range words {
		entry := v[word]
		if !entry.Enriched() {
			continue
		}
		isSingleRune := utf8.RuneCountInString(word) == 1
		example := ""
		if isSingleRune && wordIndex != nil {
			example = strings.Join(wordIndex.GetExamplesForHanzi(word, 5), ", ")
		}
		cards = append(cards, anki.Card{
			Chinese:       word,
			Pronunciation: entry.Pronunciation,
			Traduction:    entry.Traduction,
			IsSingleRune:  isSingleRune,
			Example:       example,
		})
	}

	exporter := anki.Exporter{
		Deckname:      deck,
		TmplProcessor: template.NewProcessor(deck, tmplDir, tagList),
	}
	if err := exporter.CreateOrAppendCards(cards, "word.tmpl", outPath); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("exported %d cards to %s\n", len(cards), outPath)
}
