package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/testplan-go/testplan/framework"
)

const DefaultIndentWidth = 4

type RendererOptions struct {
	// IndentWidth is the number of spaces per level; DefaultIndentWidth if undefined.
	IndentWidth ldvalue.OptionalInt
	NoColor     bool
}

func (o RendererOptions) indentUnit() string {
	width := DefaultIndentWidth
	if o.IndentWidth.IsDefined() && o.IndentWidth.IntValue() >= 0 {
		width = o.IndentWidth.IntValue()
	}
	return strings.Repeat(" ", width)
}

func (o RendererOptions) color(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if o.NoColor {
		c.DisableColor()
	}
	return c
}

// Renderer writes the hierarchical lines for each case.
type Renderer struct {
	out    io.Writer
	indent string
	passed *color.Color
	failed *color.Color
}

func NewRenderer(out io.Writer, options RendererOptions) *Renderer {
	return &Renderer{
		out:    out,
		indent: options.indentUnit(),
		passed: options.color(color.FgGreen),
		failed: options.color(color.FgRed),
	}
}

func (r *Renderer) write(s string) {
	_, _ = io.WriteString(r.out, s)
	framework.Flush(r.out)
}

func (r *Renderer) indentation(depth int) string {
	return strings.Repeat(r.indent, depth)
}

// Enter is called when a case body begins, right after the engine has written enginePrefix.
//
// If the case is the first one under one or more newly entered plans or suites, the engine's
// prefix is blanked out and the line is ended, each new ancestor is written on its own line and
// the case is announced on a line of its own. Otherwise the case is announced on the same line,
// following the engine's prefix.
func (r *Renderer) Enter(tr Transition, enginePrefix string) {
	var b strings.Builder
	ancestors := tr.NewAncestors()
	if len(ancestors) > 0 {
		b.WriteString(strings.Repeat(" ", len(enginePrefix)))
		b.WriteString("\n")
		for i, name := range ancestors {
			b.WriteString(r.indentation(tr.CommonDepth + i))
			b.WriteString(name)
			b.WriteString("\n")
		}
	}
	b.WriteString(r.indentation(tr.CaseDepth()))
	b.WriteString(tr.CaseName())
	b.WriteString(" ... ")
	r.write(b.String())
}

// Complete appends the outcome to the line opened by Enter. The engine appends the timing.
func (r *Renderer) Complete(passed bool) {
	if passed {
		r.write(fmt.Sprintf("%s ", r.passed.Sprint("ok")))
	} else {
		r.write(fmt.Sprintf("%s ", r.failed.Sprint("FAILED")))
	}
}
