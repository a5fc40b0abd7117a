package pleco

import (
	"regexp"
	"strings"
)

// Definition is one sense of a word with its example sentences.
type Definition struct {
	Meaning  string   `json:"definition"`
	Examples []string `json:"examples,omitempty"`
}

// posRe matches the part-of-speech labels Pleco prefixes its senses
// with.
var posRe = regexp.MustCompile(`(?i)\b(adjective|adverb|affix|auxiliary|idiom|noun|preposition|pronoun|surname|verb)\b`)

// numberedRe matches the sense numbering inside a part of speech.
var numberedRe = regexp.MustCompile(`^([0-9]+)\s`)

// exampleRe matches the sentence boundary between a definition and its
// examples.
var exampleRe = regexp.MustCompile(`\.\s+`)

// ParseDefinition structures a raw definition by part of speech. Each
// label opens a section holding its numbered senses and their example
// sentences. Returns nil when the text carries no recognizable label,
// so the caller keeps the raw form.
func ParseDefinition(definition string) map[string][]Definition {
	matches := posRe.FindAllStringSubmatchIndex(definition, -1)
	if len(matches) == 0 {
		return nil
	}

	parsed := make(map[string][]Definition, len(matches))
	for i, m := range matches {
		end := len(definition)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		pos := strings.ToLower(definition[m[2]:m[3]])
		text := strings.TrimSpace(definition[m[3]:end])
		parsed[pos] = splitDefinitions(text)
	}
	return parsed
}

// splitDefinitions cuts the section into numbered senses; each sense
// keeps its first sentence as the meaning and the rest as examples.
func splitDefinitions(text string) []Definition {
	var defs []Definition
	for _, part := range splitNumbered(text) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := numberedRe.FindString(part); m != "" {
			part = strings.TrimSpace(part[len(m):])
		}
		sentences := splitExamples(part)
		def := Definition{Meaning: sentences[0]}
		for _, ex := range sentences[1:] {
			if ex = strings.TrimSpace(ex); ex != "" {
				def.Examples = append(def.Examples, ex)
			}
		}
		defs = append(defs, def)
	}
	return defs
}

// splitNumbered splits before every digit run followed by a space, the
// sense numbering format of the exports.
func splitNumbered(text string) []string {
	var parts []string
	last := 0
	for i := 1; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' && numberedRe.MatchString(text[i:]) {
			parts = append(parts, text[last:i])
			last = i
		}
	}
	return append(parts, text[last:])
}

// splitExamples splits on whitespace following a period, keeping the
// period with the preceding sentence.
func splitExamples(text string) []string {
	idx := exampleRe.FindAllStringIndex(text, -1)
	parts := make([]string, 0, len(idx)+1)
	last := 0
	for _, m := range idx {
		parts = append(parts, text[last:m[0]+1])
		last = m[1]
	}
	return append(parts, text[last:])
}
