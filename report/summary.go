package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/testplan-go/testplan/framework"
)

// Collector writes the failure report once all cases have run.
type Collector struct {
	out     io.Writer
	state   *RunState
	removed *color.Color
	added   *color.Color
}

func NewCollector(out io.Writer, state *RunState, options RendererOptions) *Collector {
	return &Collector{
		out:     out,
		state:   state,
		removed: options.color(color.FgRed),
		added:   options.color(color.FgGreen),
	}
}

// Finalize writes the "failures:" section if any case failed an assertion. The aggregate result
// line belongs to the engine.
func (c *Collector) Finalize() {
	failures := c.state.Failures()
	if len(failures) == 0 {
		return
	}
	out := c.out
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "failures:")
	for _, f := range failures {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, f.Name)
		_, _ = fmt.Fprintln(out, f.Message)
		if f.Diff != nil {
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, "    [Diff] Actual / Expected")
			_, _ = fmt.Fprintln(out)
			actual, expected := f.Diff.Lines()
			_, _ = fmt.Fprintln(out, c.removed.Sprint("-   "+actual))
			_, _ = fmt.Fprintln(out, c.added.Sprint("+   "+expected))
		}
	}
	framework.Flush(out)
}
