// Package logging builds the charmbracelet loggers used across the arcade.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a timestamped logger writing to w.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Open creates a logger appending to the file at path.
// An empty path yields a discarding logger and a no-op closer, so callers can
// always defer the close. The level can be set with ARCADE_LOG_LEVEL.
func Open(path, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	logger := New(f, prefix)
	logger.SetLevel(levelFromEnv())
	return logger, f, nil
}

func levelFromEnv() log.Level {
	raw := strings.TrimSpace(os.Getenv("ARCADE_LOG_LEVEL"))
	if raw == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
