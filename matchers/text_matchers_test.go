package matchers

import (
	"regexp"
	"testing"
)

func TestEqualText(t *testing.T) {
	assertPasses(t, "Hello, world\n", EqualText("Hello, world\n"))
	assertFails(t, "Z", EqualText("Hello, world\n"),
		"expected: equal to \"Hello, world\\n\"\nactual value was: \"Z\"")
	assertFails(t, "Hello, world", EqualText("Hello, world\n"),
		"expected: equal to \"Hello, world\\n\"\nactual value was: \"Hello, world\"")
}

func TestContainsText(t *testing.T) {
	assertPasses(t, "before target after", ContainsText("target"))
	assertFails(t, "nothing here", ContainsText("target"),
		"expected: contains \"target\"\nactual value was: \"nothing here\"")
}

func TestMatchPattern(t *testing.T) {
	assertPasses(t, "Hello, world\n", MatchPattern(regexp.MustCompile(`Hello, world`)))
	assertPasses(t, "xx123yy", MatchPattern(regexp.MustCompile(`\d+`)))
	assertFails(t, "abc", MatchPattern(regexp.MustCompile(`\d+`)),
		"expected: matches pattern /\\d+/\nactual value was: \"abc\"")
}

func TestMatchPatternString(t *testing.T) {
	assertPasses(t, "warn: disk full", MatchPatternString(`^warn:`))
	assertFails(t, "info: ok", MatchPatternString(`^warn:`),
		"expected: matches pattern /^warn:/\nactual value was: \"info: ok\"")
}

func TestEmpty(t *testing.T) {
	assertPasses(t, "", Empty())
	assertFails(t, "x\n", Empty(), "expected: no log output\nactual value was: \"x\\n\"")
}

func TestLineCount(t *testing.T) {
	assertPasses(t, "", LineCount(0))
	assertPasses(t, "one\n", LineCount(1))
	assertPasses(t, "one\ntwo\n", LineCount(2))
	assertPasses(t, "one\ntwo", LineCount(2)) // no trailing newline
	assertFails(t, "one\n", LineCount(2),
		"expected: has 2 line(s) (had 1)\nactual value was: \"one\\n\"")
}

func TestHasLine(t *testing.T) {
	assertPasses(t, "aaa\nbbb\n", HasLine(EqualText("bbb")))
	assertPasses(t, "aaa\nbbb\n", HasLine(ContainsText("bb")))
	assertFails(t, "aaa\nbbb\n", HasLine(ContainsText("ccc")),
		"expected: some line contains \"ccc\"\nactual value was: \"aaa\\nbbb\\n\"")
}

func TestEachLine(t *testing.T) {
	assertPasses(t, "", EachLine(ContainsText("a")))
	assertPasses(t, "abc\ncba\n", EachLine(ContainsText("a")))
	assertFails(t, "abc\nxyz\n", EachLine(ContainsText("a")),
		"expected: every line contains \"a\" (first failing line was \"xyz\")\n"+
			"actual value was: \"abc\\nxyz\\n\"")
}
