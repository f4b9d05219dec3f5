package main

import (
	"bufio"
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/logcapture/logcapture/captest"
	"github.com/logcapture/logcapture/harness"
)

const defaultCommandTimeout = 10 * time.Second

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("logcapture v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (*captest.Results, error) {
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return nil, err
		}
	}

	suite, err := harness.LoadSuite(params.suitePath)
	if err != nil {
		return nil, err
	}

	options := harness.RunOptions{CommandTimeout: params.timeout}
	switch params.inputFile {
	case "":
	case "-":
		options.DefaultSource = &harness.ReaderSource{Reader: os.Stdin, Name: "standard input"}
	default:
		options.DefaultSource = harness.FileSource{Path: params.inputFile}
	}

	var checkLogger captest.CheckLogger
	consoleLogger := captest.ConsoleCheckLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	var jUnitLogger *captest.JUnitCheckLogger
	if params.jUnitFile == "" {
		checkLogger = consoleLogger
	} else {
		jUnitLogger = captest.NewJUnitCheckLogger(params.jUnitFile, suite.Name, params.filters)
		checkLogger = captest.MultiCheckLogger{Loggers: []captest.CheckLogger{consoleLogger, jUnitLogger}}
	}

	captest.PrintFilterDescription(params.filters)
	results := harness.RunSuite(suite, options, captest.Configuration{
		Filter:      params.filters.Match,
		CheckLogger: checkLogger,
	})

	fmt.Println()
	captest.PrintResults(results)

	if jUnitLogger != nil {
		if err := jUnitLogger.EndLog(results); err != nil {
			return nil, fmt.Errorf("error writing log: %v", err)
		}
	}

	if params.recordFailures != "" {
		f, err := os.Create(params.recordFailures)
		if err != nil {
			return nil, fmt.Errorf("cannot create suppression file: %v", err)
		}
		for _, check := range results.Failures {
			fmt.Fprintln(f, check.CheckID)
		}
		_ = f.Close()
	}

	return &results, nil
}

func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %v", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		escaped := regexp.QuoteMeta(line)
		if err := params.filters.MustNotMatch.Set(escaped); err != nil {
			return fmt.Errorf("cannot parse suppression: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing suppression file: %v", err)
	}
	return nil
}
