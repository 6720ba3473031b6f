// Package logging builds the process slog.Logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vango-dev/displaycard/internal/config"
)

// Options configures New.
type Options struct {
	Level      string
	Format     string // auto, text or json
	File       string
	MaxSizeMB  int
	MaxBackups int

	// Stderr is the console sink. Defaults to os.Stderr.
	Stderr io.Writer
}

// FromConfig returns Options for the log section of cfg.
func FromConfig(cfg config.LogConfig) Options {
	return Options{
		Level:      cfg.Level,
		Format:     cfg.Format,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
}

// Logger is a slog.Logger plus the resources behind it.
type Logger struct {
	*slog.Logger
	file *lumberjack.Logger
}

// Close flushes and closes the rotating file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// New builds a logger. Console output is text when the sink is a terminal
// and JSON otherwise, unless Format forces one. With File set, records are
// also written as JSON lines to a size-rotated file.
func New(opts Options) *Logger {
	out := opts.Stderr
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var file *lumberjack.Logger
	if opts.File != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}
	}

	var handler slog.Handler
	if useText(opts.Format, out) {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}
	if file != nil {
		handler = fanout{handler, slog.NewJSONHandler(file, handlerOpts)}
	}

	return &Logger{Logger: slog.New(handler), file: file}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func useText(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case "text":
		return true
	case "json":
		return false
	default:
		return IsTerminal(out)
	}
}
