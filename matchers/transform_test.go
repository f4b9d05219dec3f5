package matchers

import (
	"strings"
	"testing"
)

func firstLineTransform() MatcherTransform {
	return Transform("first line",
		func(value interface{}) interface{} {
			return strings.SplitN(value.(string), "\n", 2)[0]
		}).
		EnsureInputValueType("").
		WithInputValueDescription(QuotedDescription).
		WithOutputValueDescription(QuotedDescription)
}

func TestTransform(t *testing.T) {
	m := firstLineTransform().Should(ContainsText("start"))
	assertPasses(t, "starting up\nready\n", m)
	assertFails(t, "ready\nstarting up\n", m,
		"expected: first line contains \"start\"\nactual value was: \"ready\\nstarting up\\n\"")
}

func TestTransformEnsuresInputType(t *testing.T) {
	m := firstLineTransform().Should(ContainsText("start"))
	pass, desc := m.Test(3)
	if pass {
		t.Error("expected failure for wrong input type")
	}
	if !strings.Contains(desc, "value of type string, was int") {
		t.Errorf("unexpected description: %s", desc)
	}
}

func TestTransformWithNoGetValueFn(t *testing.T) {
	m := MatcherTransform{name: "same value"}.Should(EqualText("x"))
	assertPasses(t, "x", m)
}
