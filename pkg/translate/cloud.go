package translate

import (
	"context"
	"fmt"
	"strings"

	google_translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
)

// Cloud translates text via the Google Cloud Translation API. It is the
// last resort when scraping yields nothing; credentials come from the
// environment, the usual way for the cloud SDK.
func Cloud(ctx context.Context, targetLanguage, text string) (string, error) {
	lang, err := language.Parse(targetLanguage)
	if err != nil {
		return "", fmt.Errorf("language.Parse: %w", err)
	}

	client, err := google_translate.NewClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	resp, err := client.Translate(ctx, []string{text}, lang, nil)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("translate returned empty response to text: %s", text)
	}
	trans := resp[0].Text
	trans = strings.ReplaceAll(trans, "&#39;", "'")
	return trans, nil
}
