package matchers

import (
	"fmt"
	"regexp"
	"strings"
)

// EqualText is a matcher for captured log text. It tests that the value is exactly equal to
// the expected string, including any trailing newlines.
func EqualText(expected string) Matcher {
	return New(
		func(value interface{}) bool {
			return value == expected
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("equal to %s", QuotedDescription(expected))
		},
	).EnsureType("").WithValueDescription(QuotedDescription)
}

// ContainsText tests that the value contains the expected substring.
func ContainsText(substring string) Matcher {
	return New(
		func(value interface{}) bool {
			return strings.Contains(value.(string), substring)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("contains %s", QuotedDescription(substring))
		},
	).EnsureType("").WithValueDescription(QuotedDescription)
}

// MatchPattern tests that the regular expression matches somewhere within the value. It does
// not require the pattern to match the entire string; anchor the pattern if you need that.
func MatchPattern(pattern *regexp.Regexp) Matcher {
	return New(
		func(value interface{}) bool {
			return pattern.MatchString(value.(string))
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("matches pattern /%s/", pattern)
		},
	).EnsureType("").WithValueDescription(QuotedDescription)
}

// MatchPatternString is equivalent to MatchPattern(regexp.MustCompile(pattern)). It panics if
// the pattern does not compile, so it is only appropriate where the pattern is a constant.
func MatchPatternString(pattern string) Matcher {
	return MatchPattern(regexp.MustCompile(pattern))
}

// Empty tests that the value is the empty string, i.e. that nothing was logged.
func Empty() Matcher {
	return New(
		func(value interface{}) bool {
			return value == ""
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return "no log output"
		},
	).EnsureType("").WithValueDescription(QuotedDescription)
}

// splitLines breaks captured text into lines, treating a single trailing newline as a line
// terminator rather than the start of an empty final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// LineCount tests that the value consists of exactly n lines. A trailing newline does not
// count as an extra empty line.
func LineCount(n int) Matcher {
	return New(
		func(value interface{}) bool {
			return len(splitLines(value.(string))) == n
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("has %d line(s) (had %d)", n, len(splitLines(value.(string))))
		},
	).EnsureType("").WithValueDescription(QuotedDescription)
}

// HasLine tests that at least one line of the value passes the given matcher.
//
//	matchers.HasLine(matchers.ContainsText("connection refused")).Assert(t, output)
func HasLine(matcher Matcher) Matcher {
	return New(
		func(value interface{}) bool {
			for _, line := range splitLines(value.(string)) {
				if matcher.test(line) {
					return true
				}
			}
			return false
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return "some line " + matcher.describeFailure(value, matcher.describeValue)
		},
	).EnsureType("").WithValueDescription(QuotedDescription)
}

// EachLine tests that every line of the value passes the given matcher. An empty value
// passes trivially.
func EachLine(matcher Matcher) Matcher {
	return New(
		func(value interface{}) bool {
			for _, line := range splitLines(value.(string)) {
				if !matcher.test(line) {
					return false
				}
			}
			return true
		},
		func(value interface{}, desc DescribeValueFunc) string {
			for _, line := range splitLines(value.(string)) {
				if !matcher.test(line) {
					return fmt.Sprintf("every line %s (first failing line was %s)",
						matcher.describeFailure(line, matcher.describeValue),
						QuotedDescription(line))
				}
			}
			return "every line " + matcher.describeFailure(value, matcher.describeValue)
		},
	).EnsureType("").WithValueDescription(QuotedDescription)
}
