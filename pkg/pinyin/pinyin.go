// Package pinyin produces space-delimited pinyin transcriptions. Local
// sources win over the generic converter: manual overrides first, then
// CC-CEDICT readings when a dictionary is loaded, then character-by-
// character conversion with tone marks.
package pinyin

import (
	"strings"

	"github.com/fbngrm/zh/lib/cedict"
	gopinyin "github.com/mozillazg/go-pinyin"
)

type Annotator struct {
	Overrides Dict
	Cedict    map[string][]cedict.Entry

	args gopinyin.Args
}

func NewAnnotator(overrides Dict, cedictDict map[string][]cedict.Entry) *Annotator {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	// keep non-hanzi runes instead of dropping them
	args.Fallback = func(r rune, a gopinyin.Args) []string {
		return []string{string(r)}
	}
	return &Annotator{
		Overrides: overrides,
		Cedict:    cedictDict,
		args:      args,
	}
}

// Convert returns the pronunciation of word, one syllable per rune,
// delimited by single spaces. Empty input yields empty output.
func (a *Annotator) Convert(word string) string {
	if word == "" {
		return ""
	}
	if pi, ok := a.Overrides[word]; ok {
		return pi
	}
	if pi := a.cedictReadings(word); pi != "" {
		return pi
	}
	var syllables []string
	for _, s := range gopinyin.Pinyin(word, a.args) {
		syllables = append(syllables, s[0])
	}
	return strings.Join(syllables, " ")
}

// cedictReadings joins the unique readings of all dictionary entries
// for the word.
func (a *Annotator) cedictReadings(word string) string {
	entries, ok := a.Cedict[word]
	if !ok {
		return ""
	}
	seen := make(map[string]struct{})
	readings := make([]string, 0)
	for _, entry := range entries {
		for _, reading := range entry.Readings {
			if _, ok := seen[reading]; ok {
				continue
			}
			seen[reading] = struct{}{}
			readings = append(readings, reading)
		}
	}
	return strings.Join(readings, " ")
}
