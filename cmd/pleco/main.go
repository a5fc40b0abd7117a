// Imports a Pleco flashcard XML export, drops the cards of excluded
// categories and persists the rest with their definitions structured by
// part of speech.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/fbngrm/zh-vocab/pkg/pleco"
	"golang.org/x/exp/slog"
)

var (
	xmlPath    string
	outPath    string
	excludeRaw string
)

func main() {
	flag.StringVar(&xmlPath, "i", "", "pleco XML export file")
	flag.StringVar(&outPath, "o", "data/processed/chinese_pleco.json", "cards output file")
	flag.StringVar(&excludeRaw, "exclude", "Cours1 ,Cours2 ,Cours3 ,Question Answer Voca",
		"comma separated category keywords to drop")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if xmlPath == "" {
		logger.Error("missing pleco XML export file, use -i")
		os.Exit(1)
	}

	cards, err := pleco.Load(xmlPath)
	if err != nil {
		logger.Error("load pleco export", slog.String("error", err.Error()))
		os.Exit(1)
	}
	loaded := len(cards)

	if excludeRaw != "" {
		cards = cards.RemoveCategories(strings.Split(excludeRaw, ","))
	}

	if err := cards.WriteJSON(outPath); err != nil {
		logger.Error("write pleco cards", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("pleco cards imported", "loaded", loaded, "kept", len(cards), "path", outPath)
}
