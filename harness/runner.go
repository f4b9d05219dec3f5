package harness

import (
	"context"
	"time"

	"github.com/logcapture/logcapture/captest"
	"github.com/logcapture/logcapture/matchers"
)

// RunOptions adjusts how a suite is executed.
type RunOptions struct {
	// DefaultSource supplies output for checks that specify neither a command
	// nor an input file. Typically a FileSource for the -input flag, or a
	// ReaderSource wrapping stdin.
	DefaultSource OutputSource

	// CommandTimeout limits how long a spawned command may run. Zero means
	// no limit.
	CommandTimeout time.Duration
}

// RunSuite executes every check in the suite and returns the accumulated
// results. Check selection and reporting are controlled by the captest
// configuration.
func RunSuite(suite *Suite, options RunOptions, config captest.Configuration) captest.Results {
	return captest.Run(config, func(t *captest.T) {
		for _, check := range suite.Checks {
			check := check
			t.Run(check.Name, func(t *captest.T) {
				runCheck(t, check, options)
			})
		}
	})
}

func runCheck(t *captest.T, check CheckConfig, options RunOptions) {
	if check.NonCritical != "" {
		t.NonCritical(check.NonCritical)
	}

	source := sourceForCheck(t, check, options)
	output, err := source.FetchOutput(context.Background())
	if err != nil {
		t.Errorf("could not get output from %s: %s", source.Describe(), err)
		t.FailNow()
	}
	t.Debug("output from %s was: %q", source.Describe(), output)

	for _, e := range check.Logged {
		e := e
		t.Run("logged "+e.Describe(), func(t *captest.T) {
			if check.NonCritical != "" {
				t.NonCritical(check.NonCritical)
			}
			expectationMatcher(t, e).Assert(t, output)
		})
	}
	for _, e := range check.NotLogged {
		e := e
		t.Run("not logged "+e.Describe(), func(t *captest.T) {
			if check.NonCritical != "" {
				t.NonCritical(check.NonCritical)
			}
			matchers.Not(expectationMatcher(t, e)).Assert(t, output)
		})
	}
}

func sourceForCheck(t *captest.T, check CheckConfig, options RunOptions) OutputSource {
	switch {
	case len(check.Command) > 0:
		return CommandSource{Command: check.Command, Timeout: options.CommandTimeout, Logger: t.DebugLogger()}
	case check.InputFile != "":
		return FileSource{Path: check.InputFile}
	case options.DefaultSource != nil:
		return options.DefaultSource
	default:
		t.Errorf("check specifies no command or input file, and no default input was given")
		t.FailNow()
		return nil // not reached
	}
}

func expectationMatcher(t *captest.T, e Expectation) matchers.Matcher {
	m, err := e.Matcher()
	if err != nil {
		// Suite validation happens at load time, so this is unexpected here.
		t.Errorf("%s", err)
		t.FailNow()
	}
	return m
}
