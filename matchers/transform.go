package matchers

// MatcherTransform is a combinator that allows an input value to be transformed to some
// other value (possibly of a different type) before being tested by other Matchers.
//
// For instance, this can be used to test one piece of a larger captured output. Assuming
// a function that extracts the first line of a string:
//
//	firstLine := matchers.Transform("first line",
//	    func(value interface{}) interface{} {
//	        lines := strings.SplitN(value.(string), "\n", 2)
//	        return lines[0]
//	    })
//	firstLine.Should(ContainsText("starting up")).Assert(t, output)
//
// The advantages of doing this, instead of simply extracting the line and testing it, are
// 1. you can use combinators such as AllOf to test multiple properties in a single
// assertion, and 2. failure messages will automatically include both a full description of
// the original value and an explanation of what was wrong with it.
//
// You can use MatcherTransform's other methods to add type safety and custom output
// formatting.
type MatcherTransform struct {
	name                string
	getValue            func(interface{}) interface{}
	expectedType        interface{}
	describeInputValue  DescribeValueFunc
	describeOutputValue DescribeValueFunc
}

// Transform creates a MatcherTransform. The name parameter is a brief description of what
// the output value is in relation to the input value (for instance, "first line"); it will
// be prefixed to the description of any Matcher that you use with Should(). The getValue
// parameter is a function that transforms the original value into the value you will be
// testing.
func Transform(
	name string,
	getValue func(interface{}) interface{},
) MatcherTransform {
	return MatcherTransform{name: name, getValue: getValue}
}

// EnsureInputValueType is the equivalent of Matcher.EnsureType. Given any value of the
// desired type, it returns a modified MatcherTransform that will safely fail if the wrong
// type is passed in.
//
//	lineCount := matchers.Transform("line count",
//	    func(value interface{}) interface{} { return strings.Count(value.(string), "\n") }).
//	    EnsureInputValueType("")
func (mt MatcherTransform) EnsureInputValueType(valueOfType interface{}) MatcherTransform {
	mt.expectedType = valueOfType
	return mt
}

// WithInputValueDescription is the equivalent of Matcher.WithValueDescription. It ensures
// that failure messages will use the specified formatting for the original value.
func (mt MatcherTransform) WithInputValueDescription(desc DescribeValueFunc) MatcherTransform {
	mt.describeInputValue = desc
	return mt
}

// WithOutputValueDescription is the equivalent of Matcher.WithValueDescription. It ensures
// that failure messages will use the specified formatting for the transformed value.
func (mt MatcherTransform) WithOutputValueDescription(desc DescribeValueFunc) MatcherTransform {
	mt.describeOutputValue = desc
	return mt
}

// Should applies a Matcher to the transformed value. That is, assuming that this
// MatcherTransform converts an A value into a B value, mt.Should(EqualText("x")) returns a
// Matcher that takes A, converts it to B, and applies EqualText("x") to B.
func (mt MatcherTransform) Should(matcher Matcher) Matcher {
	if mt.getValue == nil {
		mt.getValue = func(value interface{}) interface{} { return value }
	}
	if mt.name == "" {
		mt.name = "[unspecified name - wrong use of matchers.MatcherTransform]"
	}
	return New(
		func(value interface{}) bool {
			return matcher.test(mt.getValue(value))
		},
		func(value interface{}, desc DescribeValueFunc) string {
			if mt.describeOutputValue != nil {
				desc = mt.describeOutputValue
			}
			return mt.name + " " + matcher.describeFailure(mt.getValue(value), desc)
		},
	).EnsureType(mt.expectedType).WithValueDescription(mt.describeInputValue)
}
