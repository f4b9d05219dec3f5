package zapcap

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/logcapture/logcapture/capture"
)

func TestConsoleOutputIsDeterministic(t *testing.T) {
	var buf bytes.Buffer
	target := New(&buf)

	target.Logger().Info("Hello, world")

	assert.Equal(t, "info\tHello, world\n", buf.String())
}

func TestCaptureRedirectsRecords(t *testing.T) {
	var buf bytes.Buffer
	target := New(&buf)

	out := capture.Output(target, func() {
		target.Sugar().Warnf("disk %d%% full", 93)
	})

	assert.Equal(t, "warn\tdisk 93% full\n", out)
	assert.Equal(t, "", buf.String())
}

func TestCaptureAssertions(t *testing.T) {
	target := New(&bytes.Buffer{})

	capture.AssertLogged(t, "error\tit broke\n", target, func() {
		target.Logger().Error("it broke")
	})
	capture.AssertLogged(t, regexp.MustCompile(`^debug\t`), target, func() {
		target.Logger().Debug("details")
	})
	capture.AssertNothingLogged(t, target, func() {})
}

func TestNewWithEncoderUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	target := NewWithEncoder(&buf, zapcore.NewJSONEncoder(cfg))

	out := capture.Output(target, func() {
		target.Logger().Info("structured", zap.String("k", "v"))
	})

	assert.Contains(t, out, `"msg":"structured"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestSinkRestoredAfterCapture(t *testing.T) {
	original := &bytes.Buffer{}
	target := New(original)

	_ = capture.Output(target, func() {
		target.Logger().Info("inside")
	})

	assert.Same(t, original, target.Sink().(*bytes.Buffer))
}
