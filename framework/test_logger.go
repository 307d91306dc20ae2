package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// TestLogger receives progress notifications from the Engine.
type TestLogger interface {
	RunStarted(pending int)
	TestStarted(test Test)
	TestFinished(test Test, result TestResult)
	TestIgnored(test Test)
	RunFinished(results Results)
}

type nullTestLogger struct{}

func (n nullTestLogger) RunStarted(int)                {}
func (n nullTestLogger) TestStarted(Test)              {}
func (n nullTestLogger) TestFinished(Test, TestResult) {}
func (n nullTestLogger) TestIgnored(Test)              {}
func (n nullTestLogger) RunFinished(Results)           {}

// TestPrefix is the text that ConsoleTestLogger writes when a test starts, before its outcome is
// known.
func TestPrefix(name string) string {
	return "test " + name + " ... "
}

// Flush flushes w if it buffers its output. Progress lines are written in fragments and must
// become visible in the order they were produced.
func Flush(w io.Writer) {
	if f, ok := w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// ConsoleTestLogger writes one line per test to Out (or standard output if Out is nil).
type ConsoleTestLogger struct {
	Out                  io.Writer
	NoColor              bool
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *ConsoleTestLogger) colorize(attr color.Attribute, s string) string {
	col := color.New(attr)
	if c.NoColor {
		col.DisableColor()
	}
	return col.Sprint(s)
}

func (c *ConsoleTestLogger) RunStarted(pending int) {
	noun := "tests"
	if pending == 1 {
		noun = "test"
	}
	_, _ = fmt.Fprintf(c.out(), "running %d %s\n", pending, noun)
	Flush(c.out())
}

func (c *ConsoleTestLogger) TestStarted(test Test) {
	_, _ = fmt.Fprint(c.out(), TestPrefix(test.Name))
	Flush(c.out())
}

func (c *ConsoleTestLogger) TestFinished(test Test, result TestResult) {
	var status string
	if !test.SelfReporting {
		if result.Failed {
			status = c.colorize(color.FgRed, "FAILED") + " "
		} else {
			status = c.colorize(color.FgGreen, "ok") + " "
		}
	}
	_, _ = fmt.Fprintf(c.out(), "%s%s\n", status, c.colorize(color.Faint, fmt.Sprintf("(%dms)", result.Duration.Milliseconds())))
	if len(result.DebugOutput) > 0 &&
		((result.Failed && c.DebugOutputOnFailure) || (!result.Failed && c.DebugOutputOnSuccess)) {
		result.DebugOutput.Dump(c.out(), "    DEBUG ")
	}
	Flush(c.out())
}

func (c *ConsoleTestLogger) TestIgnored(test Test) {
	_, _ = fmt.Fprintf(c.out(), "%s %s\n", c.colorize(color.FgYellow, "ignored"), c.colorize(color.Faint, "(0ms)"))
	Flush(c.out())
}

func (c *ConsoleTestLogger) RunFinished(results Results) {
	out := c.out()
	var panics []TestFailure
	for _, f := range results.Failures {
		for _, err := range f.Errors {
			if _, ok := err.(*PanicError); ok {
				panics = append(panics, TestFailure{Name: f.Name, Err: err})
			}
		}
	}
	if len(panics) > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "errors:")
		for _, p := range panics {
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, p.Name)
			_, _ = fmt.Fprintln(out, p.Err)
			if pe, ok := p.Err.(*PanicError); ok && len(pe.Stack) > 0 {
				for _, line := range strings.Split(strings.TrimRight(string(pe.Stack), "\n"), "\n") {
					_, _ = fmt.Fprintf(out, "    %s\n", line)
				}
			}
		}
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, results.String())
	Flush(out)
}
