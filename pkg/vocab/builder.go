package vocab

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fbngrm/zh-vocab/pkg/docx"
	"github.com/fbngrm/zh-vocab/pkg/ignore"
)

// maxWordLen is exclusive; a cleaned token of 12 runes is rejected.
const maxWordLen = 12

// excludePattern drops tokens carrying lesson-date noise.
const excludePattern = "2024"

// Merge splits text on single spaces and inserts every acceptable token
// into the vocabulary with an empty entry. Tokens are cleaned of all
// non-alphanumeric runes first; a token is dropped silently when the
// cleaned form is empty, maxWordLen runes or longer, contains the
// exclude pattern or is on the ignore list. Words already present keep
// their entry untouched, so enrichment survives re-runs.
func (v Vocab) Merge(text string, ignored ignore.Ignored) {
	for _, token := range strings.Split(text, " ") {
		word := Clean(token)
		if word == "" {
			continue
		}
		if utf8.RuneCountInString(word) >= maxWordLen {
			continue
		}
		if strings.Contains(word, excludePattern) {
			continue
		}
		if ignored.Contains(word) {
			continue
		}
		if _, ok := v[word]; ok {
			continue
		}
		v[word] = &Entry{}
	}
}

// Clean strips every rune that is neither a letter nor a digit. CJK
// ideographs count as letters.
func Clean(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildFromDir merges the text of every .docx file in dir into v, in
// sorted filename order.
func BuildFromDir(v Vocab, dir string, ignored ignore.Ignored) error {
	files, err := docx.Files(dir)
	if err != nil {
		return err
	}
	for _, name := range files {
		text, err := docx.ReadText(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		v.Merge(text, ignored)
	}
	return nil
}
