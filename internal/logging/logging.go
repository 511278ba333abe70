// Package logging builds the structured logger used by the sync command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger output.
type Options struct {
	Level string
	// File enables a rotated log file in addition to the primary writer.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ParseLevel converts a string to a slog.Level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger writing to w and, when opts.File is set, to a
// rotating log file as well. The returned closer releases the log file and
// is never nil.
func New(w io.Writer, opts Options) (*slog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		w = io.MultiWriter(w, fileWriter)
		closer = fileWriter
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	}))

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
