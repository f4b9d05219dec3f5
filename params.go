package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/logcapture/logcapture/captest"
)

type commandParams struct {
	suitePath      string
	inputFile      string
	filters        captest.RegexFilters
	skipFile       string
	recordFailures string
	timeout        time.Duration
	debug          bool
	debugAll       bool
	jUnitFile      string
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.suitePath, "suite", "", "path of the YAML suite file (required)")
	fs.StringVar(&c.inputFile, "input", "", `log file to check for checks that do not specify their own source ("-" for stdin)`)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.StringVar(&c.skipFile, "skip-file", "", "file containing names of checks to skip, one per line")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write names of failed checks to this file")
	fs.DurationVar(&c.timeout, "timeout", defaultCommandTimeout, "time limit for each spawned command")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed checks")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all checks")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.suitePath == "" {
		fmt.Fprintln(os.Stderr, "-suite is required")
		fs.Usage()
		return false
	}
	return true
}
