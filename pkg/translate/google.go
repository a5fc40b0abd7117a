package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fbngrm/zh-vocab/pkg/vocab"
)

const defaultGoogleURL = "https://translate.google.com/m"

// resultSelector matches the translation container on the mobile page.
const resultSelector = "div.result-container"

// GoogleClient scrapes Google Translate's mobile page. Used when the
// dictionary lookup yielded an empty translation.
type GoogleClient struct {
	baseURL    string
	source     string
	target     string
	httpClient *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		baseURL: defaultGoogleURL,
		source:  "zh-CN",
		target:  "fr",
		httpClient: &http.Client{
			Timeout: 3 * time.Second,
		},
	}
}

// NewGoogleClientWithBaseURL is used by tests to point the client at a
// fixture server.
func NewGoogleClientWithBaseURL(baseURL string) *GoogleClient {
	c := NewGoogleClient()
	c.baseURL = baseURL
	return c
}

// Translate fetches the translation of word. Transport failures and
// non-2xx responses wrap vocab.ErrNetwork; a page without the result
// container wraps vocab.ErrExtraction.
func (c *GoogleClient) Translate(ctx context.Context, word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("empty query: %w", vocab.ErrValidation)
	}

	params := url.Values{}
	params.Set("sl", c.source)
	params.Set("tl", c.target)
	params.Set("q", word)
	params.Set("op", "translate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("could not create request for %q: %w", word, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request for %q: %v: %w", word, err, vocab.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("translation request for %q: status %d: %w", word, resp.StatusCode, vocab.ErrNetwork)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not parse translation page for %q: %w", word, err)
	}

	sel := doc.Find(resultSelector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("no result container for %q: %w", word, vocab.ErrExtraction)
	}
	return strings.TrimSpace(sel.Text()), nil
}
