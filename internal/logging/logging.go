// Package logging sets up the file-backed zerolog logger. The TUI owns the
// terminal, so log output goes to a file in the data directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const logFile = "wordkeep.log"

// Open appends to the log file in dir. The caller closes the returned file
// on shutdown.
func Open(dir, level string) (zerolog.Logger, *os.File, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	path := filepath.Join(dir, logFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f, nil
}
