// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the logger built by Init.
type Config struct {
	Level        string    `json:"level"`  // debug, info, warn, error
	Format       string    `json:"format"` // json or pretty
	TimeFormat   string    `json:"time_format"`
	ReportCaller bool      `json:"report_caller"`
	Output       io.Writer `json:"-"` // defaults to stderr
}

var current atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	current.Store(&l)
}

// Init replaces the process logger. Unknown levels fall back to info.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	current.Store(&l)
}

// L returns the process logger.
func L() *zerolog.Logger {
	return current.Load()
}

// Preview shortens s to at most n runes for log output, appending "..."
// when something was cut.
func Preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
