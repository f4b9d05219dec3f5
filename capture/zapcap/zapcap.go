// Package zapcap adapts a zap logger to capture.Target.
//
// zap cores bind their WriteSyncer at construction, so the adapter interposes
// a swappable syncer in the same way zerologcap interposes a writer.
package zapcap

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/logcapture/logcapture/capture"
)

// Target is a zap logger with a replaceable output sink.
type Target struct {
	captureLock sync.Mutex

	sinkMu sync.Mutex
	sink   io.Writer

	logger *zap.Logger
}

var _ capture.Target = (*Target)(nil)

// New creates a Target whose logger writes console-encoded lines of the form
// "level\tmessage" (plus any fields) to w. There is no time or caller field,
// so output is deterministic and suitable for exact assertions.
func New(w io.Writer) *Target {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		ConsoleSeparator: "\t",
	}
	return NewWithEncoder(w, zapcore.NewConsoleEncoder(cfg))
}

// NewWithEncoder creates a Target using the given encoder, for callers that
// want JSON events or a different field layout.
func NewWithEncoder(w io.Writer, enc zapcore.Encoder) *Target {
	t := &Target{sink: w}
	core := zapcore.NewCore(enc, zapcore.AddSync(sinkWriter{t}), zap.DebugLevel)
	t.logger = zap.New(core)
	return t
}

// Logger returns the underlying zap logger.
func (t *Target) Logger() *zap.Logger { return t.logger }

// Sugar returns the logger's sugared form.
func (t *Target) Sugar() *zap.SugaredLogger { return t.logger.Sugar() }

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
