// Package zerologcap adapts a zerolog logger to capture.Target.
//
// A zerolog.Logger binds its writer at construction and has no setter, so the
// adapter interposes a swappable writer: the logger writes through the
// adapter, and the adapter forwards to whatever sink is current. Events are
// emitted through the adapter's Debug/Info/Warn/Error methods or through
// Logger(), exactly as with a plain zerolog.Logger.
package zerologcap

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/logcapture/logcapture/capture"
)

// Target is a zerolog logger with a replaceable output sink.
//
// The capture lock (Lock/Unlock) and the sink guard are separate mutexes:
// log writes that happen inside a capture scope go through sinkMu while the
// capture lock is held, so writing from the captured function cannot deadlock.
type Target struct {
	captureLock sync.Mutex

	sinkMu sync.Mutex
	sink   io.Writer

	logger zerolog.Logger
}

var _ capture.Target = (*Target)(nil)

// New creates a Target whose logger writes JSON event lines to w. The logger
// has no timestamp hook, so output is deterministic and suitable for exact
// assertions.
func New(w io.Writer) *Target {
	t := &Target{sink: w}
	t.logger = zerolog.New(sinkWriter{t})
	return t
}

// NewMessageOnly creates a Target whose logger writes only the message text
// of each event, one line per event, with no timestamp or level. This format
// is convenient for exact-equality assertions: logging "Hello, world" at any
// level captures as "Hello, world\n". Event fields, if any, are appended
// after the message as key=value pairs.
func NewMessageOnly(w io.Writer) *Target {
	t := &Target{sink: w}
	console := zerolog.ConsoleWriter{
		Out:        sinkWriter{t},
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	t.logger = zerolog.New(console)
	return t
}

// Logger returns a zerolog.Logger bound to the swappable sink. Contextual
// child loggers derived from it (logger.With()...) remain capturable, since
// they share the same underlying writer.
func (t *Target) Logger() zerolog.Logger { return t.logger }

// Debug starts a debug-level event.
func (t *Target) Debug() *zerolog.Event { return t.logger.Debug() }

// Info starts an info-level event.
func (t *Target) Info() *zerolog.Event { return t.logger.Info() }

// Warn starts a warn-level event.
func (t *Target) Warn() *zerolog.Event { return t.logger.Warn() }

// Error starts an error-level event.
func (t *Target) Error() *zerolog.Event { return t.logger.Error() }

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

// sinkWriter forwards writes to the target's current sink.
type sinkWriter struct {
	t *Target
}

func (w sinkWriter) Write(p []byte) (int, error) {
	return w.t.Sink().Write(p)
}
