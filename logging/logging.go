// Package logging builds the structured loggers used across the game.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to stderr.
func New(prefix string, debug bool) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, debug)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, prefix string, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything. Tests and headless tools
// use it.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
