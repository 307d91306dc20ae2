package framework

import (
	"fmt"
	"runtime/debug"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const valuesNotEqualMessage = "Values are not equal:"

// Diff holds the two sides of a failed equality assertion, normalized to JSON-compatible values
// so that they can be rendered the same way regardless of their original Go type.
//
// The JSON form can hide the difference (large int64 values, unexported fields, values that differ
// only in type). In that case ActualText and ExpectedText hold Go-syntax representations instead.
type Diff struct {
	Actual       ldvalue.Value
	Expected     ldvalue.Value
	ActualText   string
	ExpectedText string
}

func NewDiff(actual, expected interface{}) *Diff {
	d := &Diff{
		Actual:   ldvalue.CopyArbitraryValue(actual),
		Expected: ldvalue.CopyArbitraryValue(expected),
	}
	if d.Actual.JSONString() != d.Expected.JSONString() {
		return d
	}
	d.ActualText, d.ExpectedText = fmt.Sprintf("%#v", actual), fmt.Sprintf("%#v", expected)
	if d.ActualText == d.ExpectedText {
		d.ActualText, d.ExpectedText = fmt.Sprintf("%T(%#v)", actual, actual), fmt.Sprintf("%T(%#v)", expected, expected)
	}
	return d
}

// Lines returns the text shown for each side of the diff.
func (d *Diff) Lines() (actual, expected string) {
	if d.ActualText != "" || d.ExpectedText != "" {
		return d.ActualText, d.ExpectedText
	}
	return d.Actual.JSONString(), d.Expected.JSONString()
}

// AssertionError is the failure object recorded by a *T when an assertion does not hold.
type AssertionError struct {
	Message string
	Diff    *Diff
}

func (e *AssertionError) Error() string {
	if e.Diff == nil {
		return e.Message
	}
	actual, expected := e.Diff.Lines()
	return fmt.Sprintf("%s\n\n    [Diff] Actual / Expected\n\n-   %s\n+   %s", e.Message, actual, expected)
}

// PanicError wraps a panic that was not caused by a failed assertion.
type PanicError struct {
	Value interface{}
	Stack []byte
}

// NewPanicError captures the current stack; when called from a deferred function during a panic,
// the stack still contains the frames where the panic started.
func NewPanicError(value interface{}) *PanicError {
	if pe, ok := value.(*PanicError); ok {
		return pe
	}
	return &PanicError{Value: value, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("unexpected panic in test: %+v", e.Value)
}

func messageFromMsgAndArgs(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return ""
}
