package translate

import "context"

type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Chain tries each translator in order and returns the first non-empty
// result. The last error wins when all of them fail.
type Chain []Translator

func (c Chain) Translate(ctx context.Context, word string) (string, error) {
	var lastErr error
	for _, t := range c {
		trans, err := t.Translate(ctx, word)
		if err != nil {
			lastErr = err
			continue
		}
		if trans != "" {
			return trans, nil
		}
	}
	return "", lastErr
}

// CloudTranslator adapts the Cloud Translation API call to the
// Translator interface.
type CloudTranslator struct {
	Target string
}

func (t *CloudTranslator) Translate(ctx context.Context, word string) (string, error) {
	return Cloud(ctx, t.Target, word)
}
