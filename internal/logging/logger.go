// Package logging builds component-scoped zerolog loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction. Zero values fall back to defaults:
// level "info", stdout, and console output only when APP_ENV=dev.
type Options struct {
	Level  string
	Format string // "json" or "console"
	Out    io.Writer
}

// New creates a logger tagged with the given component.
func New(component string, opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	format := strings.ToLower(opts.Format)
	if format == "" && strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		format = "console"
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("component", component).Logger(), nil
}

// Default returns an info-level logger for component using the APP_ENV format.
func Default(component string) zerolog.Logger {
	l, _ := New(component, Options{}) // cannot fail without a level
	return l
}
