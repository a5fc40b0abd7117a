// Package chinein queries the chine.in Mandarin-French dictionary and
// extracts translations from its result markup. The site has no API;
// entries are located with literal text markers, so the extraction is
// only as stable as the site's French labels.
package chinein

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fbngrm/zh-vocab/pkg/vocab"
)

const defaultBaseURL = "https://chine.in/mandarin/dictionnaire/index.php?mot="

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/87.0.4280.88 Safari/537.36"

// resultSelector matches the results container of the dictionary page
// by class pair and id, not by tag, in case the site moves the markup
// off a table element.
const resultSelector = ".table.invert_img#resultats_dico"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 3 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fixture
// server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// EncodeWord encodes each rune as a percent-escaped HTML numeric
// character reference, the form the dictionary expects in its query
// string: 书 becomes %26%2320070%3B.
func EncodeWord(word string) string {
	var b strings.Builder
	for _, r := range word {
		b.WriteString("%26%23")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteString("%3B")
	}
	return b.String()
}

// Lookup fetches the dictionary page for word and returns the results
// table. Transport failures and non-2xx responses wrap
// vocab.ErrNetwork; a page without the results table wraps
// vocab.ErrExtraction.
func (c *Client) Lookup(ctx context.Context, word string) (*Result, error) {
	if word == "" {
		return nil, fmt.Errorf("empty query: %w", vocab.ErrValidation)
	}

	form := url.Values{}
	form.Set("q", word)
	form.Set("Submit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+EncodeWord(word), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("could not create request for %q: %w", word, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dictionary request for %q: %v: %w", word, err, vocab.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dictionary request for %q: status %d: %w", word, resp.StatusCode, vocab.ErrNetwork)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not parse dictionary page for %q: %w", word, err)
	}

	sel := doc.Find(resultSelector).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no results table for %q: %w", word, vocab.ErrExtraction)
	}
	raw, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, fmt.Errorf("could not render results table for %q: %w", word, err)
	}

	return &Result{
		word: word,
		raw:  raw,
		text: sel.Text(),
	}, nil
}

// Translate is the one-shot form of Lookup: the cleaned translation
// fragments and the page's pinyin reading. A page without markers
// yields a nil translation, not an error.
func (c *Client) Translate(ctx context.Context, word string) ([]string, string, error) {
	res, err := c.Lookup(ctx, word)
	if err != nil {
		return nil, "", err
	}
	return res.Traduction(), res.Pinyin(), nil
}
