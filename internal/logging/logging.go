// Package logging builds the leveled logger used by the client. The TUI owns
// the terminal, so logs only go to a file when one is configured.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	File   string
	Level  string
	Prefix string
	// Console receives logs when File is empty. Nil discards them.
	Console io.Writer
}

// Logger wraps the charm logger with the file it writes to.
type Logger struct {
	*log.Logger
	file *os.File
}

// New opens opts.File for appending. Without a File, logs go to
// opts.Console or nowhere.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lv, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = lv
	}
	if opts.Prefix == "" {
		opts.Prefix = "tada"
	}

	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if opts.Console != nil {
		w = opts.Console
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, file = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
	return &Logger{Logger: l, file: file}, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
