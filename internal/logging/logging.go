// Package logging provides the process-wide structured logger. Components
// accept an optional *zerolog.Logger -- nil/disabled means "log nothing"
// rather than requiring every caller to wire one up.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Disabled is a logger that drops everything; safe zero-value default.
var Disabled = zerolog.Nop()

// New builds a console-friendly logger writing to w at the given level.
// Used by cmd/jotoba at startup, which passes the resulting logger by
// reference to the steps it logs. The search executor and producers take
// no logger.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Component returns a child logger tagged with a component name, so log
// lines can be filtered by the package that emitted them.
func Component(l *zerolog.Logger, name string) zerolog.Logger {
	if l == nil {
		return Disabled
	}
	return l.With().Str("component", name).Logger()
}

// Timed logs op's duration and an outcome once op returns. cmd/jotoba uses
// it around the word-index, name-index and suggestion-trie build steps.
func Timed(l *zerolog.Logger, op string, fn func() (found int, err error)) error {
	if l == nil {
		l = &Disabled
	}
	start := time.Now()
	found, err := fn()
	ev := l.Debug()
	if err != nil {
		ev = l.Warn().Err(err)
	}
	ev.Str("op", op).
		Dur("took", time.Since(start)).
		Int("found", found).
		Msg("op complete")
	return err
}
