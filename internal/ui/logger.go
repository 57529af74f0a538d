package ui

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// NewLogger creates the run logger. Logs go to stderr by default so that
// stdout only carries the report tables.
func NewLogger(debug bool, out io.Writer) *pterm.Logger {
	if out == nil {
		out = os.Stderr
	}

	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}

	return pterm.DefaultLogger.
		WithLevel(level).
		WithWriter(out).
		WithTime(debug)
}
