package frequency

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExamplesForHanzi(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfreq.txt")
	lines := "的:123456\n书包:4321\n一本书:1234\nmalformed line\n图书馆:999\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))

	i, err := NewWordIndex(path)
	require.NoError(t, err)
	require.Len(t, i.Words, 4)

	assert.Equal(t, []string{"书包", "一本书"}, i.GetExamplesForHanzi("书", 2))
	assert.Equal(t, []string{"书包", "一本书", "图书馆"}, i.GetExamplesForHanzi("书", 5))
	assert.Empty(t, i.GetExamplesForHanzi("猫", 5))
}
