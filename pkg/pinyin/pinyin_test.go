package pinyin

import (
	"testing"

	"github.com/fbngrm/zh/lib/cedict"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	a := NewAnnotator(Dict{}, nil)

	assert.Equal(t, "", a.Convert(""))
	assert.Equal(t, "nǐ hǎo", a.Convert("你好"))
	// non-hanzi runes pass through, one per syllable slot
	assert.Equal(t, "cè shì a b c", a.Convert("测试abc"))
}

func TestConvertOverridesWin(t *testing.T) {
	overrides := Dict{}
	overrides.Update("你好", "ni2 hao3")
	a := NewAnnotator(overrides, nil)

	assert.Equal(t, "ni2 hao3", a.Convert("你好"))
	assert.Equal(t, "shū", a.Convert("书"))
}

func TestConvertPrefersCedictReadings(t *testing.T) {
	cedictDict := map[string][]cedict.Entry{
		"你好": {
			{Readings: []string{"ni3", "hao3"}},
			{Readings: []string{"ni3", "hao3"}},
		},
	}
	a := NewAnnotator(Dict{}, cedictDict)

	// duplicate readings across entries collapse
	assert.Equal(t, "ni3 hao3", a.Convert("你好"))
	// words missing from the dictionary fall through to the converter
	assert.Equal(t, "shū", a.Convert("书"))
}
