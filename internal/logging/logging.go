// Package logging configures cadence's structured logger.
//
// Console output is short and human readable; the json format is meant
// for the daemon when its stderr is collected by a supervisor.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config selects the logger's level and output format.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // console or json
}

// New returns a logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWriter(os.Stderr, cfg)
}

// NewWriter returns a logger writing to w.
func NewWriter(w io.Writer, cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = consoleTimeFormat
	zerolog.ErrorFieldName = "err"

	out := w
	if !strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	}
	return zerolog.New(out).
		Level(ParseLevel(cfg.Level, zerolog.InfoLevel)).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that never writes anything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, returning def when the
// name is empty or unknown.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def
	}
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return def
	}
	return lvl
}
