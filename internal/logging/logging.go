// Package logging installs the process-wide slog default logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Levels lists the accepted level names, for flag help text.
const Levels = "debug, info, warn, error"

// Configure installs a text handler on stderr at the given level.
func Configure(level string) error {
	return ConfigureWriter(level, os.Stderr)
}

// ConfigureWriter is Configure with an explicit destination. Tests use
// it to capture output.
func ConfigureWriter(level string, w io.Writer) error {
	parsed, err := parseLevel(level)
	if err != nil {
		return err
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parsed})
	slog.SetDefault(slog.New(h))
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case "", LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (expected one of: %s)", level, Levels)
	}
}
