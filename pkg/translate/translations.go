package translate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Translations is a local word-to-translation store consulted before
// any network lookup and updated after successful enrichment.
type Translations map[string]string

func (t Translations) Lookup(s string) (string, bool) {
	trans, ok := t[s]
	return trans, ok
}

func (t Translations) Update(ch, trans string) {
	t[ch] = trans
}

// Load reads the store from a YAML file. A missing file yields an empty
// store.
func Load(path string) (Translations, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Translations{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open translations file: %w", err)
	}
	var t Translations
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("could not unmarshal translations file: %w", err)
	}
	if t == nil {
		t = Translations{}
	}
	return t, nil
}

func (t Translations) Write(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("could not marshal translations file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write translations file: %w", err)
	}
	return nil
}
