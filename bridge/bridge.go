// Package bridge registers a hierarchy.Tree with a flat framework.Engine, one test per case, and
// wraps every case body so that the hierarchical report is written as the engine runs them.
package bridge

import (
	"fmt"
	"io"
	"os"

	"github.com/testplan-go/testplan/framework"
	"github.com/testplan-go/testplan/hierarchy"
	"github.com/testplan-go/testplan/logging"
	"github.com/testplan-go/testplan/report"
)

// Registrar is the part of the flat engine that the bridge uses.
type Registrar interface {
	Register(test framework.Test) error
	OnFinish(hook func())
}

type Options struct {
	// Out must be the writer the engine's console logger writes to. Defaults to standard output.
	Out      io.Writer
	Renderer report.RendererOptions
	// Logger receives a debug line for each registration.
	Logger logging.Logger
}

// Run holds the report state of one registered tree.
type Run struct {
	state     *report.RunState
	renderer  *report.Renderer
	collector *report.Collector
	logger    logging.Logger
}

// Register adds one test per case of tree to engine, in declaration order, and arranges for the
// failure report to be written when the engine finishes.
func Register(engine Registrar, tree *hierarchy.Tree, options Options) (*Run, error) {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}
	logger := options.Logger
	if logger == nil {
		logger = logging.NullLogger()
	}
	state := report.NewRunState()
	r := &Run{
		state:     state,
		renderer:  report.NewRenderer(out, options.Renderer),
		collector: report.NewCollector(out, state, options.Renderer),
		logger:    logger,
	}

	for _, c := range tree.Cases() {
		test := framework.Test{
			Name:          c.Name(),
			Ignore:        c.Ignored(),
			SelfReporting: true,
		}
		if !c.Ignored() {
			test.Fn = r.wrap(c)
		}
		if err := engine.Register(test); err != nil {
			return nil, fmt.Errorf("registering %s: %w", c.FullPath(), err)
		}
		r.logger.Printf("registered %q (%s)", c.Name(), c.Path())
	}
	engine.OnFinish(r.collector.Finalize)
	return r, nil
}

// State gives access to the counters and failure records of the run.
func (r *Run) State() *report.RunState {
	return r.state
}

func (r *Run) wrap(c *hierarchy.Case) framework.TestFunc {
	path := c.FullPath()
	prefix := framework.TestPrefix(c.Name())
	return func(t *framework.T) {
		r.renderer.Enter(report.Track(r.state.PrevPath(), path), prefix)
		r.state.Advance(path)
		defer r.complete(t, c)
		c.Run(t)
	}
}

// complete must be deferred directly by the wrapped body so that it can recover. Failures are
// passed back to the engine by re-panicking, so the engine's accounting stays authoritative.
func (r *Run) complete(t *framework.T, c *hierarchy.Case) {
	p := recover()
	switch {
	case p != nil && !framework.IsFailNow(p):
		r.state.RecordError()
		r.renderer.Complete(false)
		r.logger.Printf("%q panicked: %v", c.Name(), p)
		panic(framework.NewPanicError(p))
	case p != nil || t.Failed():
		r.state.RecordFailure(report.NewFailureRecord(c.Path(), c.Name(), t.Errors()))
		r.renderer.Complete(false)
		if p != nil {
			panic(p)
		}
	default:
		r.state.RecordPass()
		r.renderer.Complete(true)
	}
}
