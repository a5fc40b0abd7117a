package pinyin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Dict holds manual pronunciation corrections, word to pinyin.
type Dict map[string]string

func (p Dict) Update(ch, pi string) {
	p[ch] = pi
}

// Load reads the override dict from a YAML file. A missing file yields
// an empty dict.
func Load(path string) (Dict, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Dict{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open pinyin file: %w", err)
	}
	var p Dict
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal pinyin file: %w", err)
	}
	if p == nil {
		p = Dict{}
	}
	return p, nil
}

func (p Dict) Write(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not marshal pinyin file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write pinyin file: %w", err)
	}
	return nil
}
