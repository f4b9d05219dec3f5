package captest

import (
	"fmt"
	"strings"
)

// Results accumulates the outcome of a whole check run.
type Results struct {
	Checks              []CheckResult
	Failures            []CheckResult
	NonCriticalFailures []CheckResult
}

// CheckResult is the outcome of one check scope.
type CheckResult struct {
	CheckID     CheckID
	Errors      []error
	NonCritical bool
	Explanation string
}

// OK returns true if there were no critical failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// CheckID identifies a check scope as the path of scope names from the top
// of the run, like the full name of a Go subtest.
type CheckID []string

func (c CheckID) String() string {
	return strings.Join(c, "/")
}

// Plus returns the CheckID of a child scope with the given name.
func (c CheckID) Plus(name string) CheckID {
	return append(append(CheckID(nil), c...), name)
}

// CheckFailure pairs a failed check's ID with one of its errors.
type CheckFailure struct {
	ID  CheckID
	Err error
}

func (f CheckFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
