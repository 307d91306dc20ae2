package framework

import (
	"fmt"
	"time"

	"github.com/testplan-go/testplan/logging"
)

type Results struct {
	Tests       []TestResult
	Failures    []TestResult
	Ignored     int
	Measured    int
	FilteredOut int
}

type TestResult struct {
	Name        string
	Errors      []error
	Failed      bool
	Ignored     bool
	Duration    time.Duration
	DebugOutput logging.CapturedOutput
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Passed() int {
	return len(r.Tests) - len(r.Failures) - r.Ignored
}

func (r Results) Failed() int {
	return len(r.Failures)
}

// Total is the number of registered tests, including the ones that were filtered out.
func (r Results) Total() int {
	return len(r.Tests) + r.Measured + r.FilteredOut
}

func (r Results) String() string {
	status := "ok"
	if !r.OK() {
		status = "FAILED"
	}
	return fmt.Sprintf("test result: %s. %d passed; %d failed; %d ignored; %d measured; %d filtered out",
		status, r.Passed(), r.Failed(), r.Ignored, r.Measured, r.FilteredOut)
}

type TestFailure struct {
	Name string
	Err  error
}
