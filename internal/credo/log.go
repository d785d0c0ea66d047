package credo

import (
	"fmt"
	"io"
	"os"
)

// Logger is the logging capability the locator needs. It is passed in
// explicitly rather than imported as a global so the resolution logic stays
// pure and independently testable.
//
// Warnf is used for advisory conditions a user may want to know about
// (missing config file, duplicate candidates). Debugf is trace-level detail
// that hosts typically only surface in a verbose mode.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// stderrLogger writes warnings to a writer (stderr by default) and emits
// debug output only when verbose is set. This mirrors how the CLI surfaces
// its own verbose logging.
type stderrLogger struct {
	w       io.Writer
	verbose bool
}

// NewStderrLogger returns a Logger that writes warnings to stderr.
// Debug output is emitted only when verbose is true.
func NewStderrLogger(verbose bool) Logger {
	return &stderrLogger{w: os.Stderr, verbose: verbose}
}

func (l *stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.w, "warning: "+format+"\n", args...)
}

func (l *stderrLogger) Debugf(format string, args ...any) {
	if l.verbose {
		fmt.Fprintf(l.w, "[verbose] "+format+"\n", args...)
	}
}

// nopLogger discards everything. Used when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Debugf(string, ...any) {}

// NopLogger returns a Logger that discards all output.
func NopLogger() Logger {
	return nopLogger{}
}
