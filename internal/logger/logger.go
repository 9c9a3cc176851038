// Package logger builds the application's structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"jobboard-ads/internal/config/configs"
)

// New creates a slog.Logger writing to stdout, and to a rotated file when
// cfg.File is set. The returned closer releases the file.
func New(cfg configs.Logger) (*slog.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}
	return slog.New(NewHandler(out, cfg)), closer
}

// NewHandler returns a text or JSON handler for w at the configured level.
func NewHandler(w io.Writer, cfg configs.Logger) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
