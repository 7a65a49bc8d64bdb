// Package logging builds the zerolog logger shared by notifyctl and the
// behaviour provider.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Format selects the log encoding.
type Format string

const (
	// FormatAuto uses console output on a terminal and JSON otherwise
	FormatAuto Format = "auto"
	// FormatConsole always uses human readable console output
	FormatConsole Format = "console"
	// FormatJSON always emits one JSON object per line
	FormatJSON Format = "json"
)

// Config controls logger construction.
type Config struct {
	Level  string
	Format Format
}

// New returns a logger writing to w. Unknown levels fall back to info.
func New(cfg Config, w io.Writer) zerolog.Logger {
	zerolog.ErrorFieldName = "err"
	zerolog.TimeFieldFormat = consoleTimeFormat

	console := useConsole(cfg.Format, w)
	// Behaviours log from handler goroutines and replay workers.
	w = zerolog.SyncWriter(w)
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	}
	return zerolog.New(w).
		Level(ParseLevel(cfg.Level, zerolog.InfoLevel)).
		With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, returning def when the
// name is not recognised.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return def
	}
}

func useConsole(format Format, w io.Writer) bool {
	switch format {
	case FormatConsole:
		return true
	case FormatJSON:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
