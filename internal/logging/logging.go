// Package logging configures Folio's zerolog diagnostics.
//
// The terminal belongs to the viewer, so diagnostics go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and destination of diagnostic output.
type Config struct {
	Level string
	File  string // empty discards output
	Debug bool   // forces debug level
}

// Result is a configured logger and the file behind it, if any.
type Result struct {
	Logger zerolog.Logger
	Path   string
	file   *os.File
}

// Close releases the log file.
func (r Result) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// New builds a logger for cfg. An unparsable level falls back to info.
func New(cfg Config) (Result, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	if cfg.File == "" {
		return Result{Logger: zerolog.Nop()}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return Result{Logger: zerolog.Nop()}, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Result{Logger: zerolog.Nop()}, fmt.Errorf("open log file: %w", err)
	}

	return Result{
		Logger: newLogger(file, level),
		Path:   cfg.File,
		file:   file,
	}, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Console returns a human-readable logger for non-interactive commands.
func Console(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}, level)
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
