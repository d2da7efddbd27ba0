package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"wordkeep/internal/dict"
	"wordkeep/internal/logging"
	"wordkeep/internal/progress"
	"wordkeep/internal/storage"
	"wordkeep/internal/update"
)

func main() {
	_ = godotenv.Load()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	repo, err := storage.NewJSONRepository(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordkeep: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordkeep: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	progressLog := progress.NewLog(repo)
	// Validate both documents up front: refusing to start beats clobbering a
	// file the user could still repair by hand.
	if _, err := repo.LoadProgress(); err != nil {
		fatalLoad(err)
	}
	store, err := dict.NewStore(repo, progressLog)
	if err != nil {
		fatalLoad(err)
	}

	logger.Info().
		Str("data_dir", cfg.DataDir).
		Int("words", store.Len()).
		Msg("starting")

	model := update.NewModel(update.Deps{
		Store:    store,
		Progress: progressLog,
		Config:   cfg,
		Logger:   logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error().Err(err).Msg("program failed")
		fmt.Fprintf(os.Stderr, "wordkeep failed: %v\n", err)
		os.Exit(1)
	}
}

func fatalLoad(err error) {
	if errors.Is(err, storage.ErrCorruptData) {
		fmt.Fprintf(os.Stderr, "wordkeep: %v\nThe file exists but cannot be read. Repair it or move it aside and restart.\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "wordkeep: %v\n", err)
	}
	os.Exit(1)
}
