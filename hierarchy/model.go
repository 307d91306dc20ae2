package hierarchy

import (
	"strings"

	"github.com/testplan-go/testplan/framework"
)

// Path is the ordered list of names leading to a node, starting with the plan.
type Path []string

func (p Path) String() string {
	return strings.Join(p, "/")
}

// Append returns a new Path; p itself is never modified.
func (p Path) Append(name string) Path {
	ret := make(Path, 0, len(p)+1)
	ret = append(ret, p...)
	return append(ret, name)
}

// Node is either a *Suite or a *Case.
type Node interface {
	Name() string
}

// Suite is a named group of suites and cases. A plan is a root suite.
type Suite struct {
	name       string
	path       Path
	children   []Node
	beforeEach []framework.TestFunc
	afterEach  []framework.TestFunc
}

func (s *Suite) Name() string { return s.name }

// Path includes the suite's own name.
func (s *Suite) Path() Path { return append(Path(nil), s.path...) }

func (s *Suite) Children() []Node { return append([]Node(nil), s.children...) }

func (s *Suite) CountCases() int {
	count := 0
	for _, child := range s.children {
		switch c := child.(type) {
		case *Suite:
			count += c.CountCases()
		case *Case:
			count++
		}
	}
	return count
}

// Case is a single test. Its path lists its ancestors only.
type Case struct {
	name   string
	path   Path
	body   framework.TestFunc
	ignore bool
	suites []*Suite
}

func (c *Case) Name() string { return c.name }

func (c *Case) Path() Path { return append(Path(nil), c.path...) }

// FullPath is the case's path followed by its own name.
func (c *Case) FullPath() Path { return c.path.Append(c.name) }

func (c *Case) Ignored() bool { return c.ignore }

// Run runs the BeforeEach hooks of every enclosing suite from the outermost inward, then the
// case body, then the AfterEach hooks from the innermost outward. AfterEach hooks run even if
// the body stops early.
func (c *Case) Run(t *framework.T) {
	for _, s := range c.suites {
		for _, hook := range s.beforeEach {
			hook(t)
		}
	}
	defer func() {
		for i := len(c.suites) - 1; i >= 0; i-- {
			for _, hook := range c.suites[i].afterEach {
				hook(t)
			}
		}
	}()
	c.body(t)
}

// Tree is the immutable result of Builder.Build.
type Tree struct {
	plans []*Suite
	cases []*Case
}

func (t *Tree) Plans() []*Suite { return append([]*Suite(nil), t.plans...) }

// Cases returns every case in declaration order, depth first.
func (t *Tree) Cases() []*Case { return append([]*Case(nil), t.cases...) }

func (t *Tree) CountCases() int { return len(t.cases) }

func collectCases(s *Suite, into []*Case) []*Case {
	for _, child := range s.children {
		switch c := child.(type) {
		case *Suite:
			into = collectCases(c, into)
		case *Case:
			into = append(into, c)
		}
	}
	return into
}
