package docx

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentFixture = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>你好 </w:t></w:r><w:r><w:t xml:space="preserve">2024年</w:t></w:r></w:p>
    <w:p><w:r><w:t>测试document</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeDocx(t *testing.T, path, body string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson.docx")
	writeDocx(t, path, documentFixture)

	text, err := ReadText(path)
	require.NoError(t, err)
	// runs concatenated per paragraph, paragraphs joined with a space
	assert.Equal(t, "你好 2024年 测试document", text)
}

func TestReadTextNoDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = ReadText(path)
	assert.Error(t, err)
}

func TestFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.docx", "a.docx", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.docx"), 0755))

	files, err := Files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.docx", "b.docx"}, files)
}
