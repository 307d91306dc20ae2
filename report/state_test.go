package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testplan-go/testplan/framework"
	"github.com/testplan-go/testplan/hierarchy"
)

func TestNewFailureRecordTakesFirstDiff(t *testing.T) {
	first := framework.NewDiff(1, 2)
	rec := NewFailureRecord(hierarchy.Path{"p", "s"}, "c", []error{
		&framework.AssertionError{Message: "plain"},
		&framework.AssertionError{Message: "Values are not equal:", Diff: first},
		&framework.AssertionError{Message: "again", Diff: framework.NewDiff(3, 4)},
	})

	assert.Equal(t, hierarchy.Path{"p", "s"}, rec.Path)
	assert.Equal(t, "c", rec.Name)
	assert.Equal(t, "plain\nValues are not equal:\nagain", rec.Message)
	assert.Same(t, first, rec.Diff)
}

func TestNewFailureRecordWithOtherErrors(t *testing.T) {
	rec := NewFailureRecord(nil, "c", []error{errors.New("something else")})
	assert.Equal(t, "something else", rec.Message)
	assert.Nil(t, rec.Diff)

	rec = NewFailureRecord(nil, "c", nil)
	assert.Equal(t, "test failed with no failure message", rec.Message)
}

func TestRunStateCounting(t *testing.T) {
	s := NewRunState()
	assert.Empty(t, s.PrevPath())

	s.Advance(hierarchy.Path{"p", "s", "a"})
	s.RecordPass()
	s.Advance(hierarchy.Path{"p", "s", "b"})
	s.RecordFailure(FailureRecord{Name: "b"})
	s.Advance(hierarchy.Path{"p", "s", "c"})
	s.RecordError()
	s.RecordFailure(FailureRecord{Name: "d"})

	assert.Equal(t, hierarchy.Path{"p", "s", "c"}, s.PrevPath())
	assert.Equal(t, 1, s.Passed())
	assert.Equal(t, 3, s.Failed())
	failures := s.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "b", failures[0].Name)
	assert.Equal(t, "d", failures[1].Name)
}

func TestAdvanceCopiesPath(t *testing.T) {
	s := NewRunState()
	path := hierarchy.Path{"p", "c"}
	s.Advance(path)
	path[0] = "changed"
	assert.Equal(t, hierarchy.Path{"p", "c"}, s.PrevPath())
}
