// Package enrich drives one pass over the vocabulary: every word with
// an empty entry gets a translation and a pronunciation, in sorted
// order, strictly sequential. An entry is written only after the whole
// word succeeded, so a failed word never leaves a half-enriched record
// behind.
package enrich

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fbngrm/zh-vocab/pkg/translate"
	"github.com/fbngrm/zh-vocab/pkg/vocab"
	"golang.org/x/exp/slog"
)

// Dictionary is the primary translation source. A nil traduction means
// the word was not found; that triggers the fallback, it is not an
// error.
type Dictionary interface {
	Translate(ctx context.Context, word string) (traduction []string, pinyin string, err error)
}

// Fallback translates words the dictionary had no entry for.
type Fallback interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Phonetics converts a word into its space-delimited transcription.
type Phonetics interface {
	Convert(word string) string
}

// AudioFetcher downloads a pronunciation clip for a word. Optional;
// failures are logged, never fatal.
type AudioFetcher interface {
	Fetch(ctx context.Context, query string) (string, error)
}

type Enricher struct {
	Dict      Dictionary
	Fallback  Fallback
	Phonetics Phonetics
	Store     translate.Translations
	Audio     AudioFetcher
	Policy    Policy

	// retry settings for PolicyRetry
	RetryCount int
	RetrySleep time.Duration
}

// Run enriches every unprocessed entry of v in place. Under PolicyAbort
// the first failing word stops the pass and the error propagates; the
// caller is expected to persist v before exiting. PolicySkip logs and
// moves on; PolicyRetry re-attempts a failing word before aborting.
func (e *Enricher) Run(ctx context.Context, v vocab.Vocab) error {
	words := make([]string, 0, len(v))
	for word := range v {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		entry := v[word]
		if entry.Enriched() {
			continue
		}
		slog.Info("enrich", "word", word)

		if err := e.enrichWithPolicy(ctx, word, entry); err != nil {
			if e.Policy == PolicySkip {
				slog.Warn("skip word", "word", word, "error", err)
				continue
			}
			return fmt.Errorf("enrich %q: %w", word, err)
		}
	}
	return nil
}

func (e *Enricher) enrichWithPolicy(ctx context.Context, word string, entry *vocab.Entry) error {
	attempts := 1
	sleep := e.RetrySleep
	if e.Policy == PolicyRetry {
		attempts += e.RetryCount
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			slog.Info("retry", "word", word, "attempt", i)
			time.Sleep(sleep)
			sleep *= 2
		}
		if err = e.enrich(ctx, word, entry); err == nil {
			return nil
		}
	}
	return err
}

// enrich resolves translation and pronunciation for word and mutates
// entry only once both are known.
func (e *Enricher) enrich(ctx context.Context, word string, entry *vocab.Entry) error {
	var traduction []string
	var pronunciation string

	if trans, ok := e.Store.Lookup(word); ok {
		traduction = []string{trans}
	} else {
		trad, dictPinyin, err := e.Dict.Translate(ctx, word)
		if err != nil {
			return err
		}
		traduction = trad
		pronunciation = dictPinyin

		if emptyTraduction(traduction) {
			trans, err := e.Fallback.Translate(ctx, word)
			if err != nil {
				return err
			}
			traduction = []string{trans}
		}
	}

	if pronunciation == "" {
		pronunciation = e.Phonetics.Convert(word)
	}

	entry.Traduction = traduction
	entry.Pronunciation = pronunciation
	if e.Store != nil {
		e.Store.Update(word, strings.Join(traduction, ", "))
	}

	if e.Audio != nil {
		if _, err := e.Audio.Fetch(ctx, word); err != nil {
			slog.Warn("could not fetch audio", "word", word, "error", err)
		}
	}
	return nil
}

// emptyTraduction reports the empty-string sentinel the dictionary
// yields for words it lists without translating.
func emptyTraduction(t []string) bool {
	if len(t) == 0 {
		return true
	}
	for _, s := range t {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
