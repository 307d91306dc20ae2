// Package plans contains the reference test plans run by the testplan command: three plans with
// three suites each and 22 cases in total. Every case asserts that true equals true, unless its
// name was passed as flipped, in which case the assertion fails.
package plans

import (
	"fmt"
	"strings"

	"github.com/testplan-go/testplan/framework"
	"github.com/testplan-go/testplan/hierarchy"
)

type suiteLayout struct {
	name  string
	cases int
}

type planLayout struct {
	name   string
	suites []suiteLayout
}

var layout = []planLayout{
	{"test_plan_1", []suiteLayout{{"test_suite_1a", 2}, {"test_suite_1b", 3}, {"test_suite_1c", 2}}},
	{"test_plan_2", []suiteLayout{{"test_suite_2a", 3}, {"test_suite_2b", 2}, {"test_suite_2c", 3}}},
	{"test_plan_3", []suiteLayout{{"test_suite_3a", 2}, {"test_suite_3b", 3}, {"test_suite_3c", 2}}},
}

// CaseNames returns every case name in declaration order.
func CaseNames() []string {
	var names []string
	for _, p := range layout {
		for _, s := range p.suites {
			for i := 1; i <= s.cases; i++ {
				names = append(names, caseName(s.name, i))
			}
		}
	}
	return names
}

func caseName(suite string, n int) string {
	return fmt.Sprintf("test_case_%s%d", strings.TrimPrefix(suite, "test_suite_"), n)
}

func assertTrue(flip bool) framework.TestFunc {
	return func(t *framework.T) {
		t.Debug("expecting true, flipped=%t", flip)
		t.Equal(true, !flip)
	}
}

// Declare adds the reference plans to b.
func Declare(b *hierarchy.Builder, flipped map[string]bool) {
	for _, p := range layout {
		suites := p.suites
		b.Plan(p.name, func(plan *hierarchy.Scope) {
			for _, s := range suites {
				count := s.cases
				suiteName := s.name
				plan.Suite(suiteName, func(suite *hierarchy.Scope) {
					for i := 1; i <= count; i++ {
						name := caseName(suiteName, i)
						suite.Case(name, assertTrue(flipped[name]))
					}
				})
			}
		})
	}
}

// Build returns the reference tree with the assertions of the named cases flipped. Unknown names
// are an error.
func Build(flipped ...string) (*hierarchy.Tree, error) {
	known := make(map[string]bool)
	for _, name := range CaseNames() {
		known[name] = true
	}
	flips := make(map[string]bool)
	for _, name := range flipped {
		if !known[name] {
			return nil, fmt.Errorf("no case named %q", name)
		}
		flips[name] = true
	}
	b := hierarchy.NewBuilder()
	Declare(b, flips)
	return b.Build()
}
