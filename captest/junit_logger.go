package captest

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"github.com/logcapture/logcapture/capio"
	"github.com/logcapture/logcapture/opt"
)

// JUnitCheckLogger records check outcomes and writes them as JUnit XML when
// EndLog is called, so CI systems can display the run like a test report.
type JUnitCheckLogger struct {
	filePath  string
	suiteName string
	filters   RegexFilters
	checkIDs  []CheckID // this slice preserves the order that the checks were run in
	checks    map[string]jUnitCheckStatus
	lock      sync.Mutex
}

type jUnitCheckStatus struct {
	failures    []error
	skipped     opt.Maybe[string]
	nonCritical bool
	output      string
	startTime   time.Time
	duration    time.Duration
}

// Struct definitions for the JUnit XML schema - see https://github.com/jstemmer/go-junit-report

type jUnitXMLDocument struct {
	XMLName xml.Name            `xml:"testsuites"`
	Suites  []jUnitXMLTestSuite `xml:"testsuite"`
}

type jUnitXMLTestSuite struct {
	XMLName    xml.Name           `xml:"testsuite"`
	Tests      int                `xml:"tests,attr"`
	Failures   int                `xml:"failures,attr"`
	Time       string             `xml:"time,attr"`
	Name       string             `xml:"name,attr"`
	Properties []jUnitXMLProperty `xml:"properties>property,omitempty"`
	TestCases  []jUnitXMLTestCase `xml:"testcase"`
}

type jUnitXMLTestCase struct {
	XMLName     xml.Name             `xml:"testcase"`
	Classname   string               `xml:"classname,attr"`
	Name        string               `xml:"name,attr"`
	Time        string               `xml:"time,attr"`
	SkipMessage *jUnitXMLSkipMessage `xml:"skipped,omitempty"`
	Failure     *jUnitXMLFailure     `xml:"failure,omitempty"`
}

type jUnitXMLSkipMessage struct {
	Message string `xml:"message,attr"`
}

type jUnitXMLProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type jUnitXMLFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

func NewJUnitCheckLogger(
	filePath string,
	suiteName string,
	filters RegexFilters,
) *JUnitCheckLogger {
	return &JUnitCheckLogger{
		filePath:  filePath,
		suiteName: suiteName,
		filters:   filters,
		checks:    make(map[string]jUnitCheckStatus),
	}
}

func (j *JUnitCheckLogger) CheckStarted(id CheckID) {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.checkIDs = append(j.checkIDs, id)
	j.checks[id.String()] = jUnitCheckStatus{
		startTime: time.Now(),
	}
}

func (j *JUnitCheckLogger) CheckError(id CheckID, err error) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.checks[id.String()]
	status.failures = append(status.failures, err)
	j.checks[id.String()] = status
}

func (j *JUnitCheckLogger) CheckFinished(id CheckID, result CheckResult, debugOutput capio.CapturedOutput) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.checks[id.String()]
	status.output = debugOutput.ToString("")
	status.duration = time.Since(status.startTime)
	status.nonCritical = result.NonCritical
	j.checks[id.String()] = status
}

func (j *JUnitCheckLogger) CheckSkipped(id CheckID, reason string) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.checks[id.String()]
	status.skipped = opt.Some(reason)
	j.checks[id.String()] = status
}

// EndLog writes the collected results to the configured file path.
func (j *JUnitCheckLogger) EndLog(results Results) error {
	fmt.Printf("Writing JUnit data to %s\n", j.filePath)

	var doc jUnitXMLDocument

	properties := []jUnitXMLProperty{
		{
			Name:  "checks.suite.name",
			Value: j.suiteName,
		},
		{
			Name:  "checks.filter.mustMatch",
			Value: j.filters.MustMatch.String(),
		},
		{
			Name:  "checks.filter.mustNotMatch",
			Value: j.filters.MustNotMatch.String(),
		},
	}

	for _, topLevelID := range getTopLevelIDs(j.checkIDs) {
		suite := jUnitXMLTestSuite{
			Name:       fmt.Sprintf("%s: %s", j.suiteName, topLevelID),
			Properties: properties,
		}
		suiteTotalDuration := time.Duration(0)
		for _, checkID := range j.checkIDs {
			if len(checkID) == 0 || checkID[0] != topLevelID {
				continue
			}
			status := j.checks[checkID.String()]

			suite.Tests++
			if len(status.failures) != 0 {
				suite.Failures++
			}
			suiteTotalDuration += status.duration

			testCase := jUnitXMLTestCase{
				Name: checkID.String(),
				Time: jUnitDurationString(status.duration),
			}
			if status.nonCritical {
				testCase.Name += " (non-critical)"
			}
			if status.skipped.IsDefined() {
				testCase.SkipMessage = &jUnitXMLSkipMessage{Message: status.skipped.Value()}
			}
			if len(status.failures) != 0 {
				var messages []string
				for _, e := range status.failures {
					message := e.Error()
					if es, ok := e.(ErrorWithStacktrace); ok {
						message += "\n  Stacktrace:"
						for _, s := range es.Stacktrace {
							message += "\n    " + s.String()
						}
					}
					messages = append(messages, message)
				}
				testCase.Failure = &jUnitXMLFailure{
					Message:  strings.Join(messages, "\n"),
					Contents: status.output,
				}
			}

			suite.TestCases = append(suite.TestCases, testCase)
		}
		suite.Time = jUnitDurationString(suiteTotalDuration)
		doc.Suites = append(doc.Suites, suite)
	}

	bytes, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	bytes = append(bytes, '\n')

	return os.WriteFile(j.filePath, bytes, 0644) //nolint:gosec
}

func getTopLevelIDs(allIDs []CheckID) []string {
	var ret []string
	for _, checkID := range allIDs {
		if len(checkID) != 0 && !slices.Contains(ret, checkID[0]) {
			ret = append(ret, checkID[0])
		}
	}
	return ret
}

func jUnitDurationString(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
