// Package logger builds the zerolog logger shared by both services.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"shopping/config"
)

// New returns a console logger in development and a JSON logger otherwise,
// tagged with the service name.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()
}
