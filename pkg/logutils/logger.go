// Package logutils builds the process logger and holds its output back
// while the terminal is in use by the TUI.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// New builds the process logger at level (debug, info, warn, error, fatal).
// With a file, JSON events are appended to it; otherwise they go to
// Stderr(). The returned func closes the file.
func New(level string, file string) (zerolog.Logger, func(), error) {
	noop := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("log level: %w", err)
	}

	w, closer := Stderr(), noop
	if file != "" {
		f, err := openLogFile(file)
		if err != nil {
			return zerolog.Nop(), noop, err
		}
		w, closer = f, func() { _ = f.Close() }
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), closer, nil
}

// Stderr is the console writer when stderr is a terminal, else stderr
// itself for JSON events.
func Stderr() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return os.Stderr
}

func openLogFile(file string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
