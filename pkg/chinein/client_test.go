package chinein

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

const pageFixture = `<html><body>
<table class="table invert_img" id="resultats_dico"><tr><td>
[ shū ]
Entrées pour 书<ul><li>livre</li><li>écrire</li></ul>Entrées commençant par 书
</td></tr></table>
</body></html>`

func TestLookup(t *testing.T) {
	var gotQuery, gotSubmit, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		gotQuery = r.PostFormValue("q")
		gotSubmit = r.PostFormValue("Submit")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(pageFixture))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.URL + "/?mot=")
	res, err := c.Lookup(context.Background(), "书")
	require.NoError(t, err)

	assert.Equal(t, "书", gotQuery)
	assert.Equal(t, "1", gotSubmit)
	assert.Contains(t, gotUA, "Mozilla/5.0")

	assert.Equal(t, []string{"livre", "écrire"}, res.Traduction())
	assert.Equal(t, "shū", res.Pinyin())
}

func TestLookupNonTableResults(t *testing.T) {
	// the results container is matched by class pair and id, whatever
	// element the site renders it as
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<div class="table invert_img" id="resultats_dico">
Entrées pour 书<ul><li>livre</li></ul>Entrées commençant par 书
</div>
</body></html>`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.URL + "/?mot=")
	res, err := c.Lookup(context.Background(), "书")
	require.NoError(t, err)
	assert.Equal(t, []string{"livre"}, res.Traduction())
}

func TestLookupStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.URL + "/?mot=")
	_, err := c.Lookup(context.Background(), "书")
	assert.True(t, errors.Is(err, vocab.ErrNetwork))
}

func TestLookupMissingResultsTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>pas de résultats</p></body></html>`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.URL + "/?mot=")
	_, err := c.Lookup(context.Background(), "书")
	assert.True(t, errors.Is(err, vocab.ErrExtraction))
}

func TestLookupEmptyWord(t *testing.T) {
	c := NewClient()
	_, err := c.Lookup(context.Background(), "")
	assert.True(t, errors.Is(err, vocab.ErrValidation))
}

func TestLookupConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClientWithBaseURL(server.URL + "/?mot=")
	_, err := c.Lookup(context.Background(), "书")
	assert.True(t, errors.Is(err, vocab.ErrNetwork))
}
