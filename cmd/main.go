// Builds the vocabulary from a folder of .docx documents and enriches
// every new word with a French translation and a pinyin pronunciation.
// Progress is persisted to the output file after a full pass and on
// every error path, so an aborted run resumes where it stopped.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/fbngrm/zh-vocab/pkg/audio"
	"github.com/fbngrm/zh-vocab/pkg/chinein"
	"github.com/fbngrm/zh-vocab/pkg/enrich"
	ignore_dict "github.com/fbngrm/zh-vocab/pkg/ignore"
	"github.com/fbngrm/zh-vocab/pkg/pinyin"
	"github.com/fbngrm/zh-vocab/pkg/translate"
	"github.com/fbngrm/zh-vocab/pkg/vocab"
	"github.com/fbngrm/zh/lib/cedict"
	"golang.org/x/exp/slog"
)

var (
	inDir            string
	outPath          string
	ignorePath       string
	translationsPath string
	pinyinPath       string
	cedictSrc        string
	policyName       string
	audioDir         string
	useCloud         bool
)

func main() {
	flag.StringVar(&inDir, "i", "data/raw", "input directory with .docx files")
	flag.StringVar(&outPath, "o", "data/processed/chinese_vocab.json", "vocabulary output file")
	flag.StringVar(&ignorePath, "ignore", "data/ignore", "ignore list file")
	flag.StringVar(&translationsPath, "translations", "data/translations", "local translations file")
	flag.StringVar(&pinyinPath, "pinyin", "data/pinyin", "pinyin overrides file")
	flag.StringVar(&cedictSrc, "cedict", "", "optional CC-CEDICT source file")
	flag.StringVar(&policyName, "policy", "abort", "failure policy: abort|skip|retry")
	flag.StringVar(&audioDir, "audio", "", "optional audio output directory, enables TTS downloads")
	flag.BoolVar(&useCloud, "cloud", false, "use the cloud translation API when scraping yields nothing")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	policy, err := enrich.ParsePolicy(policyName)
	if err != nil {
		logger.Error("parse policy", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ignored, err := ignore_dict.Load(ignorePath)
	if err != nil {
		logger.Error("load ignore list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	translations, err := translate.Load(translationsPath)
	if err != nil {
		logger.Error("load translations store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	overrides, err := pinyin.Load(pinyinPath)
	if err != nil {
		logger.Error("load pinyin overrides", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cedictDict map[string][]cedict.Entry
	if cedictSrc != "" {
		cedictDict, err = cedict.BySimplifiedHanzi(cedictSrc)
		if err != nil {
			logger.Error("init cedict", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	v, err := vocab.Load(outPath)
	if err != nil {
		logger.Error("load vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := vocab.BuildFromDir(v, inDir, ignored); err != nil {
		logger.Error("build vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("vocabulary built", "words", len(v))

	var fallback enrich.Fallback = translate.NewGoogleClient()
	if useCloud {
		fallback = translate.Chain{
			translate.NewGoogleClient(),
			&translate.CloudTranslator{Target: "fr"},
		}
	}

	var audioFetcher enrich.AudioFetcher
	if audioDir != "" {
		audioFetcher = &audio.Downloader{AudioDir: audioDir}
	}

	enricher := enrich.Enricher{
		Dict:       chinein.NewClient(),
		Fallback:   fallback,
		Phonetics:  pinyin.NewAnnotator(overrides, cedictDict),
		Store:      translations,
		Audio:      audioFetcher,
		Policy:     policy,
		RetryCount: 2,
		RetrySleep: 500 * time.Millisecond,
	}

	if err := enricher.Run(context.Background(), v); err != nil {
		// dump partial progress before surfacing the failure; the store
		// keeps the translations fetched so far, so a resume does not
		// re-fetch them
		if werr := v.Write(outPath); werr != nil {
			logger.Error("save progress", slog.String("error", werr.Error()))
		}
		if werr := translations.Write(translationsPath); werr != nil {
			logger.Error("save translations store", slog.String("error", werr.Error()))
		}
		logger.Error("enrichment failed, progress has been saved", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := v.Write(outPath); err != nil {
		logger.Error("write vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := translations.Write(translationsPath); err != nil {
		logger.Error("write translations store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("done", "words", len(v), "path", outPath)
}
