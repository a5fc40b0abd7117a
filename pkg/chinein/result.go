package chinein

import (
	"regexp"
	"strings"
)

// Marker pairs surrounding the translation span in the raw markup of
// the results table. The primary pair brackets the entry listing; the
// fallback pair brackets the CFDICT block shown when a word has no own
// entry page.
const (
	entriesEndMarker  = "Entrées commençant par"
	cfdictBeginMarker = "Traduction"
	cfdictEndMarker   = "Editer (projet CFDICT)"
	pinyinBeginMarker = "[ "
	pinyinEndMarker   = "]"
)

var tagRe = regexp.MustCompile(`<.*?>`)

// Result holds one dictionary lookup: the results table's raw HTML and
// its text content.
type Result struct {
	word string
	raw  string
	text string
}

// Traduction extracts the translation fragments for the queried word.
// The span between the primary markers is tried first; when the begin
// marker is absent the CFDICT pair is used. Both missing means the word
// has no translation on the page and nil is returned; that is a
// not-found, not an error. List items are split on their closing tag
// and every fragment is stripped of residual markup.
func (r *Result) Traduction() []string {
	span, ok := extractBetween(r.raw, "Entrées pour "+r.word, entriesEndMarker)
	if !ok || span == "" {
		span, ok = extractBetween(r.raw, cfdictBeginMarker, cfdictEndMarker)
	}
	if !ok || span == "" {
		return nil
	}

	var fragments []string
	if strings.Contains(span, "<li>") {
		parts := strings.Split(span, "</li>")
		fragments = parts[:len(parts)-1]
	} else {
		fragments = []string{span}
	}

	cleaned := make([]string, len(fragments))
	for i, f := range fragments {
		cleaned[i] = strings.TrimSpace(StripTags(f))
	}
	return cleaned
}

// Pinyin extracts the bracketed pronunciation from the table's text
// content. Empty when the page shows none.
func (r *Result) Pinyin() string {
	p, _ := extractBetween(r.text, pinyinBeginMarker, pinyinEndMarker)
	return strings.TrimSpace(p)
}

// StripTags removes everything between angle brackets.
func StripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// extractBetween returns the text between the two markers, exclusive.
// The second return is false when either marker is missing.
func extractBetween(s, begin, end string) (string, bool) {
	i := strings.Index(s, begin)
	if i == -1 {
		return "", false
	}
	i += len(begin)
	j := strings.Index(s[i:], end)
	if j == -1 {
		return "", false
	}
	return s[i : i+j], true
}
