package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is the record attached to a single vocabulary word. Its zero
// value means the word has not been enriched yet; an entry is mutated
// exactly once, when translation and pronunciation have both been
// obtained, and never changes afterwards.
type Entry struct {
	Traduction    []string `json:"traduction,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
}

// Enriched reports whether the entry already carries data. An entry
// holding only an empty-string sentinel translation counts as enriched;
// the fallback translator runs within the same pass, not across runs.
func (e *Entry) Enriched() bool {
	return len(e.Traduction) > 0 || e.Pronunciation != ""
}

// Vocab maps each word to its entry. Keys are unique, insertion order
// carries no meaning.
type Vocab map[string]*Entry

// Load rehydrates the vocabulary from a JSON file. A missing file
// yields an empty vocabulary so a first run starts from scratch.
func Load(path string) (Vocab, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Vocab{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open vocab file: %w", err)
	}
	var v Vocab
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("could not unmarshal vocab file: %w", err)
	}
	if v == nil {
		v = Vocab{}
	}
	return v, nil
}

// Write serializes the full vocabulary to path, pretty-printed UTF-8
// with CJK characters kept literal. The destination is overwritten.
func (v Vocab) Write(path string) error {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not marshal vocab: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write vocab file: %w", err)
	}
	return nil
}
