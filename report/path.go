package report

import "github.com/testplan-go/testplan/hierarchy"

// Transition describes what has to be announced when moving from the previously rendered case
// to the next one.
type Transition struct {
	// CommonDepth is the length of the shared prefix of the two paths.
	CommonDepth int
	// Segments is the part of the current path beyond the shared prefix; its last element is the
	// case name.
	Segments []string
}

// Track compares the previous full case path with the current one. Both include the case name.
// The case name is always part of Segments, even if cur equals prev.
func Track(prev, cur hierarchy.Path) Transition {
	depth := 0
	for depth < len(prev) && depth < len(cur) && prev[depth] == cur[depth] {
		depth++
	}
	if depth >= len(cur) && len(cur) > 0 {
		depth = len(cur) - 1
	}
	return Transition{
		CommonDepth: depth,
		Segments:    append([]string(nil), cur[depth:]...),
	}
}

// NewAncestors returns the plan and suite names that have to be announced.
func (tr Transition) NewAncestors() []string {
	if len(tr.Segments) == 0 {
		return nil
	}
	return tr.Segments[:len(tr.Segments)-1]
}

func (tr Transition) CaseName() string {
	if len(tr.Segments) == 0 {
		return ""
	}
	return tr.Segments[len(tr.Segments)-1]
}

// CaseDepth is the indentation level of the case line; 0 is the level of a plan.
func (tr Transition) CaseDepth() int {
	return tr.CommonDepth + len(tr.Segments) - 1
}
