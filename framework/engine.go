package framework

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicateTest = errors.New("duplicate test name")
	ErrRunStarted    = errors.New("tests cannot be registered once the run has started")
	ErrInvalidTest   = errors.New("invalid test")
)

// Test is a single flat registration.
type Test struct {
	Name string
	Fn   TestFunc

	// Ignore registers the test without running it; it is counted as ignored.
	Ignore bool

	// SelfReporting means the test body writes its own status word, so the console logger
	// only appends the timing suffix.
	SelfReporting bool
}

type Options struct {
	// Filter selects which tests to run; tests it rejects are counted as filtered out.
	Filter     Filter
	TestLogger TestLogger
	// Now is used for timing; it defaults to time.Now.
	Now func() time.Time
}

// Engine runs registered tests sequentially in registration order.
type Engine struct {
	tests       []Test
	names       map[string]struct{}
	filter      Filter
	testLogger  TestLogger
	now         func() time.Time
	finishHooks []func()
	started     bool
}

func NewEngine(options Options) *Engine {
	e := &Engine{
		names:      make(map[string]struct{}),
		filter:     options.Filter,
		testLogger: options.TestLogger,
		now:        options.Now,
	}
	if e.testLogger == nil {
		e.testLogger = nullTestLogger{}
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

func (e *Engine) Register(test Test) error {
	if e.started {
		return fmt.Errorf("%w: %q", ErrRunStarted, test.Name)
	}
	if test.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTest)
	}
	if test.Fn == nil && !test.Ignore {
		return fmt.Errorf("%w: %q has no body", ErrInvalidTest, test.Name)
	}
	if _, exists := e.names[test.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTest, test.Name)
	}
	e.names[test.Name] = struct{}{}
	e.tests = append(e.tests, test)
	return nil
}

// OnFinish adds a hook that is called after the last test has run, before the final result line
// is reported.
func (e *Engine) OnFinish(hook func()) {
	e.finishHooks = append(e.finishHooks, hook)
}

// Count returns the number of registered tests.
func (e *Engine) Count() int {
	return len(e.tests)
}

// Run runs every registered test once. It can only be called once per Engine.
func (e *Engine) Run() Results {
	e.started = true

	var results Results
	var pending []Test
	for _, test := range e.tests {
		if e.filter != nil && !e.filter(test.Name) {
			results.FilteredOut++
			continue
		}
		pending = append(pending, test)
	}

	e.testLogger.RunStarted(len(pending))
	for _, test := range pending {
		e.testLogger.TestStarted(test)
		if test.Ignore {
			results.Ignored++
			results.Tests = append(results.Tests, TestResult{Name: test.Name, Ignored: true})
			e.testLogger.TestIgnored(test)
			continue
		}
		result := e.runTest(test)
		results.Tests = append(results.Tests, result)
		if result.Failed {
			results.Failures = append(results.Failures, result)
		}
		e.testLogger.TestFinished(test, result)
	}

	for _, hook := range e.finishHooks {
		hook()
	}
	e.testLogger.RunFinished(results)
	return results
}

func (e *Engine) runTest(test Test) TestResult {
	t := newT(test.Name)
	start := e.now()
	t.run(test.Fn)
	return TestResult{
		Name:        test.Name,
		Errors:      t.Errors(),
		Failed:      t.Failed(),
		Duration:    e.now().Sub(start),
		DebugOutput: t.debugLogger.Output(),
	}
}
