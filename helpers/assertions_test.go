package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTestContext struct {
	errors    []string
	failedNow bool
}

func (f *fakeTestContext) Errorf(msgFormat string, msgArgs ...interface{}) {
	f.errors = append(f.errors, fmt.Sprintf(msgFormat, msgArgs...))
}

func (f *fakeTestContext) FailNow() { f.failedNow = true }

func TestPollForSpecificResultValue(t *testing.T) {
	calls := 0
	result := PollForSpecificResultValue(func() int {
		calls++
		return calls
	}, time.Second, time.Millisecond, 3)
	assert.True(t, result)
	assert.Equal(t, 3, calls)

	result = PollForSpecificResultValue(func() int { return 1 },
		time.Millisecond*20, time.Millisecond, 99)
	assert.False(t, result)
}

func TestAssertEventually(t *testing.T) {
	var f1 fakeTestContext
	ok := AssertEventually(&f1, func() bool { return true },
		time.Second, time.Millisecond, "should not fail")
	assert.True(t, ok)
	assert.Empty(t, f1.errors)

	var f2 fakeTestContext
	ok = AssertEventually(&f2, func() bool { return false },
		time.Millisecond*20, time.Millisecond, "failed with %d", 42)
	assert.False(t, ok)
	assert.Equal(t, []string{"failed with 42"}, f2.errors)
	assert.False(t, f2.failedNow)
}

func TestRequireEventually(t *testing.T) {
	var f fakeTestContext
	RequireEventually(&f, func() bool { return false },
		time.Millisecond*20, time.Millisecond, "gave up")
	assert.Equal(t, []string{"gave up"}, f.errors)
	assert.True(t, f.failedNow)
}
