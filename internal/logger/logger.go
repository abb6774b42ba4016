// Package logger provides the configured zerolog logger shared by the web
// UI and the CLI subcommands.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Option adjusts the logger built by New.
type Option func(*settings)

type settings struct {
	level   zerolog.Level
	console bool
	out     io.Writer
}

// WithLevel sets the minimum level from its zerolog name ("debug", "info",
// "warn", ...). Unknown names fall back to info rather than failing startup.
func WithLevel(name string) Option {
	return func(s *settings) {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		s.level = lvl
	}
}

// WithConsole switches output to the human-readable console writer. Meant
// for local CLI runs; the served binary keeps JSON for log collection.
func WithConsole() Option {
	return func(s *settings) {
		s.console = true
	}
}

// WithOutput redirects log output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		s.out = w
	}
}

// New returns a logger stamped with the service name.
func New(serviceName string, opts ...Option) zerolog.Logger {
	s := settings{level: zerolog.InfoLevel, out: os.Stdout}
	for _, opt := range opts {
		opt(&s)
	}
	out := s.out
	if s.console {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(s.level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
