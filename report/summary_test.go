package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/testplan-go/testplan/framework"
	"github.com/testplan-go/testplan/hierarchy"
)

func TestFinalizeWithoutFailuresWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	s := NewRunState()
	s.RecordPass()
	NewCollector(&buf, s, RendererOptions{NoColor: true}).Finalize()
	assert.Empty(t, buf.String())
}

func TestFinalizeWritesFailuresInRecordingOrder(t *testing.T) {
	var buf bytes.Buffer
	s := NewRunState()
	s.RecordFailure(NewFailureRecord(hierarchy.Path{"test_plan_1", "test_suite_1a"}, "test_case_1a1", []error{
		&framework.AssertionError{Message: "Values are not equal:", Diff: framework.NewDiff(false, true)},
	}))
	s.RecordPass()
	s.RecordFailure(NewFailureRecord(hierarchy.Path{"test_plan_1", "test_suite_1b"}, "test_case_1b3", []error{
		&framework.AssertionError{Message: "no diff here"},
	}))
	s.RecordFailure(NewFailureRecord(hierarchy.Path{"test_plan_2", "test_suite_2a"}, "test_case_2a1", []error{
		&framework.AssertionError{Message: "Values are not equal:", Diff: framework.NewDiff("got", "want")},
	}))

	NewCollector(&buf, s, RendererOptions{NoColor: true}).Finalize()

	assert.Equal(t, "\n"+
		"failures:\n"+
		"\n"+
		"test_case_1a1\n"+
		"Values are not equal:\n"+
		"\n"+
		"    [Diff] Actual / Expected\n"+
		"\n"+
		"-   false\n"+
		"+   true\n"+
		"\n"+
		"test_case_1b3\n"+
		"no diff here\n"+
		"\n"+
		"test_case_2a1\n"+
		"Values are not equal:\n"+
		"\n"+
		"    [Diff] Actual / Expected\n"+
		"\n"+
		"-   \"got\"\n"+
		"+   \"want\"\n",
		buf.String())
}

func TestFinalizeShowsValuesThatOnlyDifferInType(t *testing.T) {
	var buf bytes.Buffer
	s := NewRunState()
	s.RecordFailure(NewFailureRecord(hierarchy.Path{"p", "s"}, "c", []error{
		&framework.AssertionError{Message: "Values are not equal:", Diff: framework.NewDiff(int64(1), 1)},
	}))

	NewCollector(&buf, s, RendererOptions{NoColor: true}).Finalize()

	assert.Contains(t, buf.String(), "-   int64(1)\n+   int(1)\n")
}
