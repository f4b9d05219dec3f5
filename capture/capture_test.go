package capture_test

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logcapture/logcapture/capture"
	"github.com/logcapture/logcapture/capture/stdlogcap"
)

func TestOutputReturnsFormattedMessagesInOrder(t *testing.T) {
	var normal bytes.Buffer
	logger := stdlogcap.New(&normal)

	out := capture.Output(logger, func() {
		logger.Println("first")
		logger.Printf("second %d", 2)
	})

	assert.Equal(t, "first\nsecond 2\n", out)
	assert.Equal(t, "", normal.String(), "nothing should reach the normal sink during capture")
}

func TestOutputWithSingleMessageIncludesTrailingNewline(t *testing.T) {
	logger := stdlogcap.New(&bytes.Buffer{})

	out := capture.Output(logger, func() {
		logger.Println("Hello, world")
	})

	assert.Equal(t, "Hello, world\n", out)
}

func TestOutputWithEmptyFunctionIsEmpty(t *testing.T) {
	logger := stdlogcap.New(&bytes.Buffer{})

	assert.Equal(t, "", capture.Output(logger, func() {}))
}

func TestOriginalSinkIsRestoredOnNormalReturn(t *testing.T) {
	original := &bytes.Buffer{}
	logger := stdlogcap.New(original)

	_ = capture.Output(logger, func() {
		logger.Println("captured")
	})

	assert.Same(t, original, logger.Sink().(*bytes.Buffer))

	logger.Println("after")
	assert.Equal(t, "after\n", original.String())
}

func TestOriginalSinkIsRestoredWhenFunctionPanics(t *testing.T) {
	original := &bytes.Buffer{}
	logger := stdlogcap.New(original)

	require.PanicsWithValue(t, "boom", func() {
		capture.Output(logger, func() {
			logger.Println("partial")
			panic("boom")
		})
	})

	assert.Same(t, original, logger.Sink().(*bytes.Buffer))
	assert.Equal(t, "", original.String(), "captured text must not leak to the original sink")
}

func TestOutputSeesWritesFromOtherHoldersOfTheLogger(t *testing.T) {
	original := &bytes.Buffer{}
	logger := stdlogcap.New(original)
	shared := logger.Base()

	out := capture.Output(logger, func() {
		shared.Println("from elsewhere")
	})

	assert.Equal(t, "from elsewhere\n", out)
}

func TestConcurrentCapturesOfSameTargetAreSerialized(t *testing.T) {
	logger := stdlogcap.New(&bytes.Buffer{})

	const concurrency = 8
	results := make([]string, concurrency)
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = capture.Output(logger, func() {
				logger.Printf("goroutine %d a", i)
				logger.Printf("goroutine %d b", i)
			})
		}(i)
	}
	wg.Wait()

	// Each capture scope must see exactly its own two lines, never another
	// goroutine's output.
	for i, out := range results {
		expected := fmt.Sprintf("goroutine %d a\ngoroutine %d b\n", i, i)
		assert.Equalf(t, expected, out, "output of capture %d", i)
	}
}

// minimalTarget is a Target that does not implement sync.Locker.
type minimalTarget struct {
	sink io.Writer
}

func (m *minimalTarget) Sink() io.Writer     { return m.sink }
func (m *minimalTarget) SetSink(w io.Writer) { m.sink = w }

func TestTargetWithoutLockerIsStillCapturable(t *testing.T) {
	original := &bytes.Buffer{}
	tgt := &minimalTarget{sink: original}

	out := capture.Output(tgt, func() {
		_, _ = tgt.sink.Write([]byte("direct\n"))
	})

	assert.Equal(t, "direct\n", out)
	assert.Same(t, original, tgt.sink.(*bytes.Buffer))
}
