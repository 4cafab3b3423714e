// Package logging builds the slog logger used for diagnostics.
//
// Diagnostics always go to stderr, stdout is reserved for tool output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"corpusprep/internal/types"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel converts a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", types.ErrArgument, name)
	}
}

// New returns a text logger writing to w at the given level.
func New(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler), nil
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(level string, w io.Writer) error {
	logger, err := New(level, w)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
