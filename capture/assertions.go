package capture

import (
	"fmt"
	"regexp"

	"github.com/logcapture/logcapture/helpers"
	"github.com/logcapture/logcapture/matchers"
)

// matcherForExpected maps an expected value to the matcher it implies: a
// string is an exact-equality condition, a *regexp.Regexp is a search
// condition (matching anywhere in the captured text).
func matcherForExpected(expected interface{}) (matchers.Matcher, error) {
	switch e := expected.(type) {
	case string:
		return matchers.EqualText(e), nil
	case *regexp.Regexp:
		return matchers.MatchPattern(e), nil
	default:
		return matchers.Matcher{}, fmt.Errorf("expected value must be a string or *regexp.Regexp, was %T", expected)
	}
}

// AssertLogged captures the output produced by fn and asserts that it equals
// expected (if expected is a string) or that expected matches somewhere within
// it (if expected is a *regexp.Regexp). On mismatch the test context fails
// with a message carrying both the expectation and the actual captured text.
// Returns true if the assertion passed.
func AssertLogged(t helpers.TestContext, expected interface{}, target Target, fn func()) bool {
	m, err := matcherForExpected(expected)
	if err != nil {
		t.Errorf("AssertLogged: %s", err)
		return false
	}
	return checkOutput(t, m, target, fn)
}

// RequireLogged is equivalent to AssertLogged except that on mismatch the test
// terminates immediately.
func RequireLogged(t helpers.TestContext, expected interface{}, target Target, fn func()) {
	if !AssertLogged(t, expected, target, fn) {
		t.FailNow()
	}
}

// AssertNotLogged captures the output produced by fn and asserts the negative
// condition: the captured text must not equal the expected string, or must not
// contain a match for the expected pattern. Returns true if the assertion
// passed.
func AssertNotLogged(t helpers.TestContext, expected interface{}, target Target, fn func()) bool {
	m, err := matcherForExpected(expected)
	if err != nil {
		t.Errorf("AssertNotLogged: %s", err)
		return false
	}
	return checkOutput(t, matchers.Not(m), target, fn)
}

// RequireNotLogged is equivalent to AssertNotLogged except that on failure the
// test terminates immediately.
func RequireNotLogged(t helpers.TestContext, expected interface{}, target Target, fn func()) {
	if !AssertNotLogged(t, expected, target, fn) {
		t.FailNow()
	}
}

// AssertNothingLogged captures the output produced by fn and asserts that it
// is empty. Returns true if nothing was logged.
func AssertNothingLogged(t helpers.TestContext, target Target, fn func()) bool {
	return checkOutput(t, matchers.Empty(), target, fn)
}

// RequireNothingLogged is equivalent to AssertNothingLogged except that on
// failure the test terminates immediately.
func RequireNothingLogged(t helpers.TestContext, target Target, fn func()) {
	if !AssertNothingLogged(t, target, fn) {
		t.FailNow()
	}
}

func checkOutput(t helpers.TestContext, m matchers.Matcher, target Target, fn func()) bool {
	output := Output(target, fn)
	if pass, desc := m.Test(output); !pass {
		t.Errorf("%s", desc)
		return false
	}
	return true
}
