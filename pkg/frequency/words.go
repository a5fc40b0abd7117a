package frequency

import (
	"bufio"
	"os"
	"strings"
)

// WordIndex holds a word-frequency corpus, one `word:count` line per
// entry, most frequent first.
type WordIndex struct {
	path  string
	Words []string
}

func NewWordIndex(frequencyIndexSrc string) (*WordIndex, error) {
	i := WordIndex{
		path: frequencyIndexSrc,
	}
	if err := i.init(); err != nil {
		return nil, err
	}
	return &i, nil
}

func (i *WordIndex) init() error {
	file, err := os.Open(i.path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	index := []string{}
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}
		index = append(index, parts[0])
	}
	i.Words = index

	return scanner.Err()
}

// GetExamplesForHanzi returns up to count frequent words containing the
// given hanzi.
func (i *WordIndex) GetExamplesForHanzi(hanzi string, count int) []string {
	examples := []string{}
	for _, w := range i.Words {
		if !strings.Contains(w, hanzi) {
			continue
		}
		examples = append(examples, w)
		if len(examples) == count {
			return examples
		}
	}
	return examples
}
