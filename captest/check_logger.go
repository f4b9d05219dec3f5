package captest

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/logcapture/logcapture/capio"
)

var consoleCheckErrorColor = color.New(color.FgYellow)              //nolint:gochecknoglobals
var consoleCheckFailedColor = color.New(color.FgRed)                //nolint:gochecknoglobals
var consoleCheckSkippedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)                //nolint:gochecknoglobals
var allChecksPassedColor = color.New(color.FgGreen)                 //nolint:gochecknoglobals

// CheckLogger receives status information about each check during a run.
type CheckLogger interface {
	CheckStarted(id CheckID)
	CheckError(id CheckID, err error)
	CheckFinished(id CheckID, result CheckResult, debugOutput capio.CapturedOutput)
	CheckSkipped(id CheckID, reason string)
}

type nullCheckLogger struct{}

func (n nullCheckLogger) CheckStarted(CheckID)                                     {}
func (n nullCheckLogger) CheckError(CheckID, error)                                {}
func (n nullCheckLogger) CheckFinished(CheckID, CheckResult, capio.CapturedOutput) {}
func (n nullCheckLogger) CheckSkipped(CheckID, string)                             {}

// ConsoleCheckLogger prints check progress and failures to standard output.
type ConsoleCheckLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c ConsoleCheckLogger) CheckStarted(id CheckID) {
	fmt.Printf("[%s]\n", id)
}

func (c ConsoleCheckLogger) CheckError(id CheckID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = consoleCheckErrorColor.Printf("  %s\n", line)
	}
}

func (c ConsoleCheckLogger) CheckFinished(id CheckID, result CheckResult, debugOutput capio.CapturedOutput) {
	failed := len(result.Errors) != 0
	if failed {
		if result.NonCritical {
			_, _ = consoleCheckErrorColor.Printf("  FAILED (non-critical): %s\n", id)
			_, _ = consoleCheckErrorColor.Printf("    (%s)\n", result.Explanation)
		} else {
			_, _ = consoleCheckFailedColor.Printf("  FAILED: %s\n", id)
		}
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		_, _ = consoleDebugOutputColor.Println(debugOutput.ToString("    DEBUG "))
	}
}

func (c ConsoleCheckLogger) CheckSkipped(id CheckID, reason string) {
	if reason == "" {
		_, _ = consoleCheckSkippedColor.Printf("  SKIPPED: %s\n", id)
	} else {
		_, _ = consoleCheckSkippedColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

// MultiCheckLogger broadcasts each event to several loggers, such as a console
// logger plus a JUnit file writer.
type MultiCheckLogger struct {
	Loggers []CheckLogger
}

func (m MultiCheckLogger) CheckStarted(id CheckID) {
	for _, l := range m.Loggers {
		l.CheckStarted(id)
	}
}

func (m MultiCheckLogger) CheckError(id CheckID, err error) {
	for _, l := range m.Loggers {
		l.CheckError(id, err)
	}
}

func (m MultiCheckLogger) CheckFinished(id CheckID, result CheckResult, debugOutput capio.CapturedOutput) {
	for _, l := range m.Loggers {
		l.CheckFinished(id, result, debugOutput)
	}
}

func (m MultiCheckLogger) CheckSkipped(id CheckID, reason string) {
	for _, l := range m.Loggers {
		l.CheckSkipped(id, reason)
	}
}

// PrintResults prints a final summary of the run to standard output or, for
// failures, standard error.
func PrintResults(results Results) {
	if results.OK() {
		_, _ = allChecksPassedColor.Println("All checks passed")
	} else {
		_, _ = consoleCheckFailedColor.Fprintf(os.Stderr, "FAILED CHECKS (%d):\n", len(results.Failures))
		for _, f := range results.Failures {
			_, _ = consoleCheckFailedColor.Fprintf(os.Stderr, "  * %s\n", f.CheckID)
		}
	}
	if len(results.NonCriticalFailures) > 0 {
		_, _ = consoleCheckErrorColor.Printf("NON-CRITICAL FAILURES (%d):\n", len(results.NonCriticalFailures))
		for _, f := range results.NonCriticalFailures {
			_, _ = consoleCheckErrorColor.Printf("  * %s (%s)\n", f.CheckID, f.Explanation)
		}
	}
}
