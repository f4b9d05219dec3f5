// Package stdlogcap adapts a standard library *log.Logger to capture.Target.
package stdlogcap

import (
	"io"
	"log"
	"sync"

	"github.com/logcapture/logcapture/capture"
)

// Logger wraps a *log.Logger so it can be used with the capture package. The
// embedded capture lock serializes overlapping capture scopes on the same
// wrapped logger.
type Logger struct {
	captureLock sync.Mutex
	base        *log.Logger
}

var _ capture.Target = (*Logger)(nil)

// Wrap adapts an existing logger. The logger is shared, not copied: capturing
// through the adapter redirects output that any other holder of the logger
// writes during the scope.
func Wrap(base *log.Logger) *Logger {
	return &Logger{base: base}
}

// New creates a logger writing to w with no prefix and no flags, so each
// Print call captures as exactly the message plus a newline.
func New(w io.Writer) *Logger {
	return Wrap(log.New(w, "", 0))
}

// Base returns the wrapped logger, for emitting output through its full API.
func (l *Logger) Base() *log.Logger { return l.base }

// Printf logs to the wrapped logger in the manner of log.Printf.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.base.Printf(format, args...)
}

// Println logs to the wrapped logger in the manner of log.Println.
func (l *Logger) Println(args ...interface{}) {
	l.base.Println(args...)
}

// Sink returns the logger's current output destination.
func (l *Logger) Sink() io.Writer { return l.base.Writer() }

// SetSink replaces the logger's output destination.
func (l *Logger) SetSink(w io.Writer) { l.base.SetOutput(w) }

// Lock and Unlock implement sync.Locker for capture serialization. They guard
// the capture scope only, not individual writes; log.Logger is itself safe
// for concurrent use.
func (l *Logger) Lock()   { l.captureLock.Lock() }
func (l *Logger) Unlock() { l.captureLock.Unlock() }
