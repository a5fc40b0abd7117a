package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fbngrm/zh-vocab/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleTranslate(t *testing.T) {
	var gotParams map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotParams = map[string]string{
			"sl": q.Get("sl"),
			"tl": q.Get("tl"),
			"q":  q.Get("q"),
			"op": q.Get("op"),
		}
		w.Write([]byte(`<html><body><div class="result-container">bonjour</div></body></html>`))
	}))
	defer server.Close()

	c := NewGoogleClientWithBaseURL(server.URL)
	trans, err := c.Translate(context.Background(), "你好")
	require.NoError(t, err)

	assert.Equal(t, "bonjour", trans)
	assert.Equal(t, map[string]string{
		"sl": "zh-CN",
		"tl": "fr",
		"q":  "你好",
		"op": "translate",
	}, gotParams)
}

func TestGoogleTranslateMissingContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>nothing</p></body></html>`))
	}))
	defer server.Close()

	c := NewGoogleClientWithBaseURL(server.URL)
	_, err := c.Translate(context.Background(), "你好")
	assert.True(t, errors.Is(err, vocab.ErrExtraction))
}

func TestGoogleTranslateStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewGoogleClientWithBaseURL(server.URL)
	_, err := c.Translate(context.Background(), "你好")
	assert.True(t, errors.Is(err, vocab.ErrNetwork))
}

func TestChain(t *testing.T) {
	failing := translatorFunc(func(ctx context.Context, word string) (string, error) {
		return "", errors.New("boom")
	})
	empty := translatorFunc(func(ctx context.Context, word string) (string, error) {
		return "", nil
	})
	ok := translatorFunc(func(ctx context.Context, word string) (string, error) {
		return "bonjour", nil
	})

	trans, err := Chain{failing, empty, ok}.Translate(context.Background(), "你好")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", trans)

	_, err = Chain{failing}.Translate(context.Background(), "你好")
	assert.Error(t, err)
}

type translatorFunc func(ctx context.Context, word string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, word string) (string, error) {
	return f(ctx, word)
}
