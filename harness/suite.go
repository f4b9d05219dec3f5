package harness

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/logcapture/logcapture/matchers"
	"github.com/logcapture/logcapture/opt"
)

// Suite is the top-level structure of a suite file.
type Suite struct {
	Name   string        `yaml:"name"`
	Checks []CheckConfig `yaml:"checks"`
}

// CheckConfig describes one check: where its log output comes from and what
// must or must not appear in it.
type CheckConfig struct {
	Name string `yaml:"name"`

	// Command, if set, is a program to spawn; its combined stdout and stderr
	// is the output under check. Mutually exclusive with InputFile.
	Command []string `yaml:"command,omitempty"`

	// InputFile, if set, is a log file to read instead of running a command.
	InputFile string `yaml:"inputFile,omitempty"`

	// NonCritical, if set, marks a failure of this check as non-critical,
	// with this text as the explanation.
	NonCritical string `yaml:"nonCritical,omitempty"`

	Logged    []Expectation `yaml:"logged,omitempty"`
	NotLogged []Expectation `yaml:"notLogged,omitempty"`
}

// Expectation is one expected (or forbidden) piece of log output. Exactly one
// of the fields must be set.
type Expectation struct {
	Equals   opt.Maybe[string] `yaml:"equals,omitempty"`
	Contains opt.Maybe[string] `yaml:"contains,omitempty"`
	Pattern  opt.Maybe[string] `yaml:"pattern,omitempty"`
}

// Matcher translates the expectation into a text matcher, or returns an error
// if the expectation does not have exactly one condition.
func (e Expectation) Matcher() (matchers.Matcher, error) {
	count := 0
	for _, defined := range []bool{e.Equals.IsDefined(), e.Contains.IsDefined(), e.Pattern.IsDefined()} {
		if defined {
			count++
		}
	}
	if count != 1 {
		return matchers.Matcher{}, fmt.Errorf(
			"expectation must have exactly one of equals, contains, or pattern (had %d)", count)
	}
	switch {
	case e.Equals.IsDefined():
		return matchers.EqualText(e.Equals.Value()), nil
	case e.Contains.IsDefined():
		return matchers.ContainsText(e.Contains.Value()), nil
	default:
		rx, err := regexp.Compile(e.Pattern.Value())
		if err != nil {
			return matchers.Matcher{}, fmt.Errorf("invalid pattern %q: %w", e.Pattern.Value(), err)
		}
		return matchers.MatchPattern(rx), nil
	}
}

// Describe returns the expectation's condition in suite-file syntax, for
// check names and failure messages.
func (e Expectation) Describe() string {
	switch {
	case e.Equals.IsDefined():
		return fmt.Sprintf("equals %q", e.Equals.Value())
	case e.Contains.IsDefined():
		return fmt.Sprintf("contains %q", e.Contains.Value())
	case e.Pattern.IsDefined():
		return fmt.Sprintf("pattern %q", e.Pattern.Value())
	default:
		return "(empty expectation)"
	}
}

// LoadSuite reads and validates a YAML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read suite file: %w", err)
	}
	suite, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("in suite file %s: %w", path, err)
	}
	return suite, nil
}

// ParseSuite parses and validates suite file content.
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("malformed YAML: %w", err)
	}
	if len(suite.Checks) == 0 {
		return nil, fmt.Errorf("suite has no checks")
	}
	seen := make(map[string]bool)
	for i, check := range suite.Checks {
		if check.Name == "" {
			return nil, fmt.Errorf("check #%d has no name", i+1)
		}
		if seen[check.Name] {
			return nil, fmt.Errorf("duplicate check name %q", check.Name)
		}
		seen[check.Name] = true
		if len(check.Command) > 0 && check.InputFile != "" {
			return nil, fmt.Errorf("check %q has both command and inputFile", check.Name)
		}
		if len(check.Logged)+len(check.NotLogged) == 0 {
			return nil, fmt.Errorf("check %q has no expectations", check.Name)
		}
		for _, e := range append(append([]Expectation(nil), check.Logged...), check.NotLogged...) {
			if _, err := e.Matcher(); err != nil {
				return nil, fmt.Errorf("check %q: %w", check.Name, err)
			}
		}
	}
	return &suite, nil
}
