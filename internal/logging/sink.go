// Package logging provides the engine's append-only, line-based logging
// sink, built on log/slog so structured fields and level filtering come
// for free.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Sink is the engine's logging contract: info/warn/error, safe for
// concurrent calls (an *slog.Logger already is).
type Sink struct {
	logger *slog.Logger
}

// NewSink builds a Sink that writes timestamped lines to w (normally
// os.Stdout) and, if filePath is non-empty, also appends to that file. Log
// format ("short" vs "full") selects between slog's text handler with a
// terse format and one that includes source location.
func NewSink(w io.Writer, filePath string, full bool) (*Sink, func() error, error) {
	dest := w
	closer := func() error { return nil }

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		dest = io.MultiWriter(w, f)
		closer = f.Close
	}

	opts := &slog.HandlerOptions{AddSource: full}
	handler := slog.NewTextHandler(dest, opts)
	return &Sink{logger: slog.New(handler)}, closer, nil
}

func (s *Sink) Info(line string)  { s.logger.Info(line) }
func (s *Sink) Warn(line string)  { s.logger.Warn(line) }
func (s *Sink) Error(line string) { s.logger.Error(line) }
