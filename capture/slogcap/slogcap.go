// Package slogcap adapts a log/slog logger to capture.Target.
package slogcap

import (
	"io"
	"log/slog"
	"sync"

	"github.com/logcapture/logcapture/capture"
)

// Target is an slog logger with a replaceable output sink.
type Target struct {
	captureLock sync.Mutex

	sinkMu sync.Mutex
	sink   io.Writer

	logger *slog.Logger
}

var _ capture.Target = (*Target)(nil)

// New creates a Target whose logger writes text-format records to w. The
// built-in time attribute is removed so that output is deterministic and
// suitable for exact assertions: a record captures as
// "level=INFO msg=message" plus any attributes.
func New(w io.Writer) *Target {
	t := &Target{sink: w}
	handler := slog.NewTextHandler(sinkWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	t.logger = slog.New(handler)
	return t
}

// NewWithHandler creates a Target whose logger uses a handler built by the
// given constructor, which receives the swappable sink as its writer. Use
// this for JSON output or custom handler options.
func NewWithHandler(w io.Writer, makeHandler func(io.Writer) slog.Handler) *Target {
	t := &Target{sink: w}
	t.logger = slog.New(makeHandler(sinkWriter{t}))
	return t
}

// Logger returns the underlying slog logger.
func (t *Target) Logger() *slog.Logger { return t.logger }

// Sink returns the current output destination.
func (t *Target) Sink() io.Writer {
	t.sinkMu.Lock()
	defer t.sinkMu.Unlock()
	return t.sink
}

// SetSink replaces the output destination.
func (t *Target) SetSink(w io.Writer) {
	t.sinkMu.Lock()
	defer t.sinkMu.Unlock()
	t.sink = w
}

// Lock and Unlock implement sync.Locker for capture serialization.
func (t *Target) Lock()   { t.captureLock.Lock() }
func (t *Target) Unlock() { t.captureLock.Unlock() }

type sinkWriter struct {
	t *Target
}

func (w sinkWriter) Write(p []byte) (int, error) {
	return w.t.Sink().Write(p)
}
