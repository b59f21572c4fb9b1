// Package logging configures the application logger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

// NewConsole returns a logger for one-shot CLI commands, writing to stderr.
func NewConsole(verbose bool) *log.Logger {
	return newLogger(os.Stderr, verbose)
}

// NewFile returns a logger writing to the given file, for use while the TUI
// owns the terminal. If the file cannot be opened, output is discarded
// rather than corrupting the display. The returned closer is always safe to
// call.
func NewFile(path string, verbose bool) (*log.Logger, func()) {
	if dir := filepath.Dir(path); dir != "." {
		os.MkdirAll(dir, 0755)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return newLogger(io.Discard, verbose), func() {}
	}

	logger := newLogger(file, verbose)
	return logger, func() { file.Close() }
}
