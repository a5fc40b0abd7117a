package pleco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinitionNoLabel(t *testing.T) {
	// nothing to structure, the caller keeps the raw text
	assert.Nil(t, ParseDefinition("livre"))
	assert.Nil(t, ParseDefinition(""))
}

func TestParseDefinitionSingleLabel(t *testing.T) {
	parsed := ParseDefinition("noun book")
	require.Contains(t, parsed, "noun")
	assert.Equal(t, []Definition{{Meaning: "book"}}, parsed["noun"])
}

func TestParseDefinitionNumberedSenses(t *testing.T) {
	parsed := ParseDefinition("verb 1 to write. 他写字. 2 to compose")
	require.Contains(t, parsed, "verb")
	assert.Equal(t, []Definition{
		{Meaning: "to write.", Examples: []string{"他写字."}},
		{Meaning: "to compose"},
	}, parsed["verb"])
}

func TestParseDefinitionMultipleLabels(t *testing.T) {
	parsed := ParseDefinition("noun book verb to write")
	require.Len(t, parsed, 2)
	assert.Equal(t, []Definition{{Meaning: "book"}}, parsed["noun"])
	assert.Equal(t, []Definition{{Meaning: "to write"}}, parsed["verb"])
}

func TestParseDefinitionCaseInsensitiveLabel(t *testing.T) {
	parsed := ParseDefinition("Noun book")
	// labels are folded to lower case
	require.Contains(t, parsed, "noun")
	assert.Equal(t, []Definition{{Meaning: "book"}}, parsed["noun"])
}

func TestParseDefinitionLabelInsideWord(t *testing.T) {
	// "pronoun" must not be read as "noun"
	parsed := ParseDefinition("pronoun he or she")
	require.Len(t, parsed, 1)
	require.Contains(t, parsed, "pronoun")
}
