package report

import (
	"errors"
	"strings"

	"github.com/testplan-go/testplan/framework"
	"github.com/testplan-go/testplan/hierarchy"
)

// FailureRecord describes one failed case for the failure report.
type FailureRecord struct {
	Path    hierarchy.Path
	Name    string
	Message string
	Diff    *framework.Diff
}

// NewFailureRecord builds a record from the errors a case reported. Messages are joined one per
// line; the diff is taken from the first assertion that has one.
func NewFailureRecord(path hierarchy.Path, name string, errs []error) FailureRecord {
	rec := FailureRecord{Path: append(hierarchy.Path(nil), path...), Name: name}
	var messages []string
	for _, err := range errs {
		var ae *framework.AssertionError
		if errors.As(err, &ae) {
			messages = append(messages, ae.Message)
			if rec.Diff == nil && ae.Diff != nil {
				rec.Diff = ae.Diff
			}
			continue
		}
		messages = append(messages, err.Error())
	}
	if len(messages) == 0 {
		messages = append(messages, "test failed with no failure message")
	}
	rec.Message = strings.Join(messages, "\n")
	return rec
}

// RunState is everything the report needs to remember between cases during one run.
type RunState struct {
	prevPath hierarchy.Path
	passed   int
	failed   int
	failures []FailureRecord
}

func NewRunState() *RunState {
	return &RunState{}
}

// PrevPath is the full path of the last case that was rendered.
func (s *RunState) PrevPath() hierarchy.Path { return s.prevPath }

func (s *RunState) Advance(path hierarchy.Path) {
	s.prevPath = append(hierarchy.Path(nil), path...)
}

func (s *RunState) RecordPass() { s.passed++ }

func (s *RunState) RecordFailure(rec FailureRecord) {
	s.failed++
	s.failures = append(s.failures, rec)
}

// RecordError counts a case that failed with something other than an assertion. It has no
// failure record; the engine reports it.
func (s *RunState) RecordError() { s.failed++ }

func (s *RunState) Passed() int { return s.passed }

func (s *RunState) Failed() int { return s.failed }

func (s *RunState) Failures() []FailureRecord {
	return append([]FailureRecord(nil), s.failures...)
}
