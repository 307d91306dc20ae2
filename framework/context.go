package framework

import (
	"errors"
	"fmt"

	"github.com/testplan-go/testplan/logging"

	"github.com/stretchr/testify/assert"
)

// TestFunc is the body of a registered test.
type TestFunc func(*T)

// T is passed to each test body. It implements require.TestingT, so assertions from testify's
// assert and require packages can be used with it as well as its own Equal.
type T struct {
	name        string
	debugLogger logging.CapturingLogger
	failed      bool
	errors      []error
}

func newT(name string) *T {
	return &T{name: name}
}

func (t *T) run(action TestFunc) {
	defer func() {
		if r := recover(); r != nil {
			t.failed = true
			if IsFailNow(r) {
				if len(t.errors) == 0 {
					t.errors = append(t.errors, errors.New("test failed with no failure message"))
				}
				return
			}
			t.errors = append(t.errors, NewPanicError(r))
		}
	}()

	action(t)
}

// IsFailNow reports whether a recovered panic value was raised by T.FailNow, as opposed to an
// unexpected panic in the test body.
func IsFailNow(recovered interface{}) bool {
	_, ok := recovered.(*T)
	return ok
}

func (t *T) Name() string {
	return t.name
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.fail(&AssertionError{Message: fmt.Sprintf(format, args...)})
}

// Fail marks the test as failed with the given message but lets it continue.
func (t *T) Fail(message string) {
	t.fail(&AssertionError{Message: message})
}

func (t *T) FailNow() {
	panic(t)
}

// Equal asserts that expected and actual are equal. On failure it records an AssertionError
// carrying both values, which is rendered as an actual/expected diff.
func (t *T) Equal(expected, actual interface{}, msgAndArgs ...interface{}) bool {
	if assert.ObjectsAreEqual(expected, actual) {
		return true
	}
	message := messageFromMsgAndArgs(msgAndArgs...)
	if message == "" {
		message = valuesNotEqualMessage
	}
	t.fail(&AssertionError{Message: message, Diff: NewDiff(actual, expected)})
	return false
}

func (t *T) fail(err error) {
	t.failed = true
	t.errors = append(t.errors, err)
}

func (t *T) Failed() bool {
	return t.failed
}

func (t *T) Errors() []error {
	return append([]error(nil), t.errors...)
}

// Debug adds a message to the test's debug output, which is shown only if the console logger is
// configured to show it.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

func (t *T) DebugLogger() logging.Logger {
	return &t.debugLogger
}
