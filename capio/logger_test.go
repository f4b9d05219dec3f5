package capio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messagesOf(output CapturedOutput) []string {
	ret := make([]string, 0, len(output))
	for _, m := range output {
		ret = append(ret, m.Message)
	}
	return ret
}

func TestCapturingLoggerRecordsInOrder(t *testing.T) {
	var l CapturingLogger
	l.Println("first")
	l.Printf("second %d", 2)
	l.Println("third")

	assert.Equal(t, []string{"first", "second 2", "third"}, messagesOf(l.Output()))
}

func TestCapturingLoggerPrintlnStripsTrailingNewline(t *testing.T) {
	var l CapturingLogger
	l.Println("message")

	out := l.Output()
	require.Len(t, out, 1)
	assert.Equal(t, "message", out[0].Message)
}

func TestCapturingLoggerOutputIsACopy(t *testing.T) {
	var l CapturingLogger
	l.Println("a")
	out1 := l.Output()
	l.Println("b")

	assert.Equal(t, []string{"a"}, messagesOf(out1))
	assert.Equal(t, []string{"a", "b"}, messagesOf(l.Output()))
}

func TestChildLoggerReceivesParentOutput(t *testing.T) {
	var parent, child CapturingLogger
	parent.Println("before child")
	parent.AddChild(&child)
	parent.Println("during child")
	parent.RemoveChild(&child)
	parent.Println("after child")

	assert.Equal(t, []string{"before child", "during child"}, messagesOf(child.Output()))
	assert.Equal(t, []string{"before child", "after child"}, messagesOf(parent.Output()))
}

func TestToString(t *testing.T) {
	var l CapturingLogger
	l.Println("one")
	l.Println("two")

	s := l.Output().ToString("  DEBUG ")
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  DEBUG ["))
	assert.True(t, strings.HasSuffix(lines[0], "] one"))
	assert.True(t, strings.HasSuffix(lines[1], "] two"))

	assert.Equal(t, "", CapturedOutput(nil).ToString("x"))
}

func TestLoggerWithPrefix(t *testing.T) {
	var l CapturingLogger
	p := LoggerWithPrefix(&l, "prefix: ")
	p.Printf("formatted %s", "value")

	out := l.Output()
	require.Len(t, out, 1)
	assert.Equal(t, "prefix: formatted value", out[0].Message)
}

func TestNullLogger(t *testing.T) {
	// just verifying these are safe to call
	NullLogger().Println("ignored")
	NullLogger().Printf("ignored %d", 1)
}
