package captest

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/logcapture/logcapture/capio"
)

type environment struct {
	config  Configuration
	results Results
}

// T represents a check scope. It is very similar to Go's testing.T type, and
// satisfies the testing.T subset that assertion libraries need (Errorf and
// FailNow), so testify assertions and the capture package work against it.
type T struct {
	env         *environment
	id          CheckID
	debugLogger capio.CapturingLogger
	nonCritical string
	failed      bool
	skipped     bool
	skipReason  string
	cleanups    []func()
	errors      []error
	helperFns   []string
}

// Configuration contains options for the entire check run.
type Configuration struct {
	// Filter is an optional function for determining which checks to run based on their names.
	Filter Filter

	// CheckLogger receives status information about each check.
	CheckLogger CheckLogger

	// Context is an optional value of any type defined by the application which can be
	// accessed from checks.
	Context interface{}
}

func (c Configuration) WithContext(context interface{}) Configuration {
	c.Context = context
	return c
}

// Run starts a top-level check scope.
func Run(
	config Configuration,
	action func(*T),
) Results {
	if config.CheckLogger == nil {
		config.CheckLogger = nullCheckLogger{}
	}
	env := &environment{
		config: config,
	}
	t := &T{env: env}
	t.run(action)
	return env.results
}

func (t *T) run(action func(*T)) (result CheckResult) {
	result.CheckID = t.id
	defer func() {
		if r := recover(); r != nil {
			if t.skipped {
				return
			}
			t.failed = true
			var addError error
			if _, ok := r.(*T); ok {
				if len(t.errors) == 0 {
					addError = errors.New("check failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				t.errors = append(t.errors, addError)
				t.env.config.CheckLogger.CheckError(t.id, addError)
			}
		}
		result.Errors = t.errors
		if t.failed {
			if t.nonCritical == "" {
				t.env.results.Failures = append(t.env.results.Failures, result)
			} else {
				result.Explanation = t.nonCritical
				result.NonCritical = true
				t.env.results.NonCriticalFailures = append(t.env.results.NonCriticalFailures, result)
			}
		}
		t.env.results.Checks = append(t.env.results.Checks, result)
		for i := len(t.cleanups) - 1; i >= 0; i-- {
			t.cleanups[i]()
		}
	}()

	action(t)
	return result
}

// ID returns the full name of the current check.
func (t *T) ID() CheckID {
	return t.id
}

// Run runs a child check in its own scope.
//
// This is equivalent to Go's testing.T.Run.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Plus(name)

	t.env.config.CheckLogger.CheckStarted(id)
	if t.env.config.Filter != nil && !t.env.config.Filter(id) {
		t.env.config.CheckLogger.CheckSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &T{
		id:  id,
		env: t.env,
	}
	t.debugLogger.AddChild(&c1.debugLogger) // see comments on t.DebugLogger()
	result := c1.run(action)
	t.debugLogger.RemoveChild(&c1.debugLogger)
	if c1.skipped {
		t.env.config.CheckLogger.CheckSkipped(id, c1.skipReason)
	} else {
		t.env.config.CheckLogger.CheckFinished(id, result, c1.debugLogger.Output())
	}
}

// NonCritical indicates that if this check fails, we would like to know about it but we're
// willing to live with it. It will be shown in the output as a non-critical failure,
// accompanied by the explanation that is specified here. Non-critical failures do not cause
// the harness to return a non-zero exit code on termination, as regular failures do.
func (t *T) NonCritical(explanation string) {
	t.nonCritical = explanation
}

// Errorf reports a check failure. It is equivalent to Go's testing.T.Errorf. It does not
// cause the check to terminate, but adds the failure message to the output and marks the
// check as failed.
//
// You will rarely use this method directly; it is part of this type's implementation of the
// base interfaces testing.T and assert.TestingT, allowing it to be called from assertion
// helpers.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := fmt.Errorf(format, args...)

	stacktrace := getStacktrace(false, t.helperFns)
	err = transformError(err, stacktrace)

	t.errors = append(t.errors, err)
	t.env.config.CheckLogger.CheckError(t.id, err)
}

// FailNow causes the check to immediately terminate and be marked as failed.
//
// You will rarely use this method directly; it is part of this type's implementation of the
// base interfaces testing.T and assert.TestingT, allowing it to be called from assertion
// helpers.
func (t *T) FailNow() {
	panic(t)
}

// Skip causes the check to immediately terminate and be marked as skipped.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

// SkipWithReason is equivalent to Skip but provides a message.
func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Debug writes a message to the output for this check scope.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger instance for writing output for this check scope.
//
// The output that is captured for a check will be passed to CheckLogger.CheckFinished at the
// end of the check. The runner can choose whether to display this or not based on
// command-line options.
//
// When a check has child scopes (created with t.Run), the logger for a child starts out with
// a copy of any output that was already logged for the parent, and during the lifetime of the
// child, any further output that is sent to the parent's logger goes to the child's logger
// instead. This is useful when the parent scope manages a resource such as a spawned process
// that is reused by many child checks.
func (t *T) DebugLogger() capio.Logger {
	return &t.debugLogger
}

// Defer schedules a cleanup function which is guaranteed to be called when this check scope
// exits for any reason. Unlike a Go defer statement, Defer can be used from within helper
// functions.
func (t *T) Defer(cleanupFn func()) {
	t.cleanups = append(t.cleanups, cleanupFn)
}

// Context returns the application-defined context value, if any, that was specified in the
// Configuration.
func (t *T) Context() interface{} {
	return t.env.config.Context
}

// Helper marks the function that calls it as a check helper that shouldn't appear in
// stacktraces. Equivalent to Go's testing.T.Helper().
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1) // 0 is Helper() itself, 1 is who called it
	if !ok {
		return
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return
	}
	t.helperFns = append(t.helperFns, f.Name())
}
