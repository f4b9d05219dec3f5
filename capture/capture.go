package capture

import (
	"bytes"
	"io"
	"sync"
)

// Target is the minimal capability surface needed to capture a logger: the
// ability to read its current output sink and to replace it. The capture
// package borrows the target for the duration of a capture scope and restores
// the original sink afterward; it never owns the logger.
type Target interface {
	Sink() io.Writer
	SetSink(io.Writer)
}

// Output runs fn while the target's sink is redirected to a fresh in-memory
// buffer, and returns everything the logger wrote during the call, verbatim
// (including any trailing newline produced by the logger's formatter).
//
// The original sink is reattached before Output returns, whether fn returns
// normally or panics; a panic propagates unchanged after restoration.
//
// If the target also implements sync.Locker (all adapters in this module do),
// overlapping captures of the same target are serialized, so concurrent tests
// may share a logger instance. Targets without a Locker must not be captured
// from multiple goroutines at once.
func Output(target Target, fn func()) string {
	if locker, ok := target.(sync.Locker); ok {
		locker.Lock()
		defer locker.Unlock()
	}

	var buf bytes.Buffer
	original := target.Sink()
	target.SetSink(&buf)
	defer target.SetSink(original)

	fn()
	return buf.String()
}
