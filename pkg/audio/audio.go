// Package audio downloads pronunciation clips from the Google Cloud
// text-to-speech API. Files are cached on disk under their query's sha1
// so re-runs never hit the API for known words.
package audio

import (
	"context"
	"os"
	"path/filepath"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/fbngrm/zh-vocab/pkg/hash"
	"golang.org/x/exp/slog"
)

type Downloader struct {
	AudioDir string
}

// Fetch synthesizes query and writes the mp3 into AudioDir, returning
// the filename. An existing file is reused without an API call.
func (d *Downloader) Fetch(ctx context.Context, query string) (string, error) {
	filename := hash.Sha1(query) + ".mp3"
	if err := os.MkdirAll(d.AudioDir, os.ModePerm); err != nil {
		return "", err
	}
	path := filepath.Join(d.AudioDir, filename)

	if _, err := os.Stat(path); err == nil {
		slog.Debug("audio file exists", "path", path)
		return filename, nil
	}

	time.Sleep(100 * time.Millisecond)
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	req := texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: query},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "cmn-CN",
			Name:         "cmn-CN-Wavenet-C",
			SsmlGender:   texttospeechpb.SsmlVoiceGender_MALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}
	resp, err := client.SynthesizeSpeech(ctx, &req)
	if err != nil {
		return "", err
	}

	// the resp's AudioContent is binary
	if err := os.WriteFile(path, resp.AudioContent, os.ModePerm); err != nil {
		return "", err
	}
	slog.Debug("audio content written", "path", path)
	return filename, nil
}
