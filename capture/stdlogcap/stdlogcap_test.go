package stdlogcap

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logcapture/logcapture/capture"
)

func TestNewLoggerHasNoPrefixOrFlags(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Println("Hello, world")

	assert.Equal(t, "Hello, world\n", buf.String())
}

func TestWrapKeepsLoggerConfiguration(t *testing.T) {
	var buf bytes.Buffer
	base := log.New(&buf, "app: ", 0)
	logger := Wrap(base)
	logger.Printf("started on port %d", 8080)

	assert.Equal(t, "app: started on port 8080\n", buf.String())
	assert.Same(t, base, logger.Base())
}

func TestSinkRoundTrip(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	logger := New(first)

	assert.Same(t, first, logger.Sink().(*bytes.Buffer))
	logger.SetSink(second)
	logger.Println("redirected")

	assert.Equal(t, "", first.String())
	assert.Equal(t, "redirected\n", second.String())
}

func TestCaptureThroughAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	out := capture.Output(logger, func() {
		logger.Printf("value is %q", "x")
	})

	assert.Equal(t, "value is \"x\"\n", out)
	assert.Equal(t, "", buf.String())
}
