package hierarchy

import (
	"errors"
	"fmt"

	"github.com/testplan-go/testplan/framework"
)

var (
	ErrDuplicateCase      = errors.New("duplicate case name")
	ErrEmptyName          = errors.New("empty name")
	ErrNilBody            = errors.New("case has no body")
	ErrRegistrationClosed = errors.New("declaration after the tree was built")
)

// Builder collects plan declarations. Structural problems are accumulated and reported by Build.
type Builder struct {
	plans  []*Suite
	cases  map[string]Path
	errs   []error
	closed bool
}

// Scope is passed to the body of a plan or suite to declare its children.
type Scope struct {
	b      *Builder
	suite  *Suite
	suites []*Suite
}

func NewBuilder() *Builder {
	return &Builder{cases: make(map[string]Path)}
}

func (b *Builder) checkOpen(kind, name string) {
	if b.closed {
		panic(fmt.Errorf("%w: %s %q", ErrRegistrationClosed, kind, name))
	}
}

func (b *Builder) checkName(kind, name string, parent Path) bool {
	if name == "" {
		if len(parent) == 0 {
			b.errs = append(b.errs, fmt.Errorf("%w: %s at top level", ErrEmptyName, kind))
		} else {
			b.errs = append(b.errs, fmt.Errorf("%w: %s in %s", ErrEmptyName, kind, parent))
		}
		return false
	}
	return true
}

// Plan declares a top-level plan; body declares its suites and cases.
func (b *Builder) Plan(name string, body func(*Scope)) {
	b.checkOpen("plan", name)
	if !b.checkName("plan", name, nil) {
		return
	}
	plan := &Suite{name: name, path: Path{name}}
	b.plans = append(b.plans, plan)
	if body != nil {
		body(&Scope{b: b, suite: plan, suites: []*Suite{plan}})
	}
}

func (s *Scope) Suite(name string, body func(*Scope)) {
	s.b.checkOpen("suite", name)
	if !s.b.checkName("suite", name, s.suite.path) {
		return
	}
	child := &Suite{name: name, path: s.suite.path.Append(name)}
	s.suite.children = append(s.suite.children, child)
	if body != nil {
		suites := append(append([]*Suite(nil), s.suites...), child)
		body(&Scope{b: s.b, suite: child, suites: suites})
	}
}

func (s *Scope) Case(name string, fn framework.TestFunc) {
	s.addCase(name, fn, false)
}

// Ignore declares a case that is registered but never run.
func (s *Scope) Ignore(name string, fn framework.TestFunc) {
	s.addCase(name, fn, true)
}

// BeforeEach adds a hook that runs before every case in this scope, including nested suites.
func (s *Scope) BeforeEach(fn framework.TestFunc) {
	s.b.checkOpen("hook in", s.suite.name)
	s.suite.beforeEach = append(s.suite.beforeEach, fn)
}

// AfterEach adds a hook that runs after every case in this scope, including nested suites.
func (s *Scope) AfterEach(fn framework.TestFunc) {
	s.b.checkOpen("hook in", s.suite.name)
	s.suite.afterEach = append(s.suite.afterEach, fn)
}

func (s *Scope) addCase(name string, fn framework.TestFunc, ignore bool) {
	s.b.checkOpen("case", name)
	if !s.b.checkName("case", name, s.suite.path) {
		return
	}
	if prev, exists := s.b.cases[name]; exists {
		s.b.errs = append(s.b.errs, fmt.Errorf("%w: %q in %s is already declared in %s",
			ErrDuplicateCase, name, s.suite.path, prev))
		return
	}
	if fn == nil && !ignore {
		s.b.errs = append(s.b.errs, fmt.Errorf("%w: %q in %s", ErrNilBody, name, s.suite.path))
		return
	}
	s.b.cases[name] = s.suite.path
	s.suite.children = append(s.suite.children, &Case{
		name:   name,
		path:   s.suite.Path(),
		body:   fn,
		ignore: ignore,
		suites: s.suites,
	})
}

// Build closes the builder and returns the finished tree. Any later declaration panics with
// ErrRegistrationClosed.
func (b *Builder) Build() (*Tree, error) {
	b.closed = true
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	tree := &Tree{plans: append([]*Suite(nil), b.plans...)}
	for _, p := range tree.plans {
		tree.cases = collectCases(p, tree.cases)
	}
	return tree, nil
}
