package captest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logcapture/logcapture/capio"
)

// testCheckLoggerRecorder records CheckLogger events for assertions.
type testCheckLoggerRecorder struct {
	startedIDs     []string
	errs           []error
	finishedIDs    []string
	finishedOutput []capio.CapturedOutput
	skippedIDs     []string
	skippedReasons []string
}

func (r *testCheckLoggerRecorder) CheckStarted(id CheckID) {
	r.startedIDs = append(r.startedIDs, id.String())
}

func (r *testCheckLoggerRecorder) CheckError(id CheckID, err error) {
	r.errs = append(r.errs, err)
}

func (r *testCheckLoggerRecorder) CheckFinished(id CheckID, result CheckResult, debugOutput capio.CapturedOutput) {
	r.finishedIDs = append(r.finishedIDs, id.String())
	r.finishedOutput = append(r.finishedOutput, debugOutput)
}

func (r *testCheckLoggerRecorder) CheckSkipped(id CheckID, reason string) {
	r.skippedIDs = append(r.skippedIDs, id.String())
	r.skippedReasons = append(r.skippedReasons, reason)
}

func TestCheckLoggerReceivesLifecycleEvents(t *testing.T) {
	var logged testCheckLoggerRecorder
	_ = Run(Configuration{CheckLogger: &logged}, func(ct *T) {
		ct.Run("passes", func(ct0 *T) {})
		ct.Run("fails", func(ct0 *T) {
			ct0.Errorf("did not match")
		})
		ct.Run("skipped", func(ct0 *T) {
			ct0.SkipWithReason("not applicable")
		})
	})

	assert.Equal(t, []string{"passes", "fails", "skipped"}, logged.startedIDs)
	assert.Equal(t, []string{"passes", "fails"}, logged.finishedIDs)
	assert.Equal(t, []string{"skipped"}, logged.skippedIDs)
	assert.Equal(t, []string{"not applicable"}, logged.skippedReasons)
	if assert.Len(t, logged.errs, 1) {
		assert.Equal(t, "did not match", logged.errs[0].Error())
	}
}

func TestCheckLoggerSkipReasonForFilteredChecks(t *testing.T) {
	var logged testCheckLoggerRecorder
	filter := func(id CheckID) bool { return false }
	_ = Run(Configuration{CheckLogger: &logged, Filter: filter}, func(ct *T) {
		ct.Run("never runs", func(ct0 *T) {})
	})

	assert.Equal(t, []string{"never runs"}, logged.skippedIDs)
	assert.Equal(t, []string{"excluded by filter parameters"}, logged.skippedReasons)
}

func TestMultiCheckLoggerBroadcasts(t *testing.T) {
	var first, second testCheckLoggerRecorder
	multi := MultiCheckLogger{Loggers: []CheckLogger{&first, &second}}

	multi.CheckStarted(CheckID{"x"})
	multi.CheckError(CheckID{"x"}, errors.New("e"))
	multi.CheckFinished(CheckID{"x"}, CheckResult{CheckID: CheckID{"x"}}, nil)
	multi.CheckSkipped(CheckID{"y"}, "r")

	for _, r := range []*testCheckLoggerRecorder{&first, &second} {
		assert.Equal(t, []string{"x"}, r.startedIDs)
		assert.Len(t, r.errs, 1)
		assert.Equal(t, []string{"x"}, r.finishedIDs)
		assert.Equal(t, []string{"y"}, r.skippedIDs)
	}
}
