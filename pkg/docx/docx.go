// Package docx extracts plain text from Word documents. A .docx file is
// a zip archive; the document body lives in word/document.xml where text
// runs are wrapped in <w:t> elements grouped into <w:p> paragraphs.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const documentXML = "word/document.xml"

var (
	paragraphRe = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	runRe       = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
)

var unescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// ReadText returns the document's text: runs concatenated per paragraph,
// paragraphs joined with single spaces.
func ReadText(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("could not open docx file %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != documentXML {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("could not open %s in %s: %w", documentXML, path, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("could not read %s in %s: %w", documentXML, path, err)
		}
		return extractText(string(b)), nil
	}
	return "", fmt.Errorf("no %s in %s", documentXML, path)
}

func extractText(xml string) string {
	var paragraphs []string
	for _, p := range paragraphRe.FindAllString(xml, -1) {
		var runs []string
		for _, m := range runRe.FindAllStringSubmatch(p, -1) {
			runs = append(runs, unescaper.Replace(m[1]))
		}
		paragraphs = append(paragraphs, strings.Join(runs, ""))
	}
	return strings.Join(paragraphs, " ")
}

// Files returns the names of all .docx files directly inside dir, sorted
// for deterministic processing order.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read input dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != ".docx" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
