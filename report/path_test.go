package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/testplan-go/testplan/hierarchy"
)

func TestTrack(t *testing.T) {
	tests := []struct {
		name string
		prev hierarchy.Path
		cur  hierarchy.Path
		want Transition
	}{
		{
			name: "first case of the run",
			prev: nil,
			cur:  hierarchy.Path{"plan1", "suite1a", "case1"},
			want: Transition{CommonDepth: 0, Segments: []string{"plan1", "suite1a", "case1"}},
		},
		{
			name: "same suite",
			prev: hierarchy.Path{"plan1", "suite1a", "case1"},
			cur:  hierarchy.Path{"plan1", "suite1a", "case2"},
			want: Transition{CommonDepth: 2, Segments: []string{"case2"}},
		},
		{
			name: "next suite in same plan",
			prev: hierarchy.Path{"plan1", "suite1a", "case2"},
			cur:  hierarchy.Path{"plan1", "suite1b", "case3"},
			want: Transition{CommonDepth: 1, Segments: []string{"suite1b", "case3"}},
		},
		{
			name: "next plan",
			prev: hierarchy.Path{"plan1", "suite1b", "case3"},
			cur:  hierarchy.Path{"plan2", "suite2a", "case4"},
			want: Transition{CommonDepth: 0, Segments: []string{"plan2", "suite2a", "case4"}},
		},
		{
			name: "deeper nesting",
			prev: hierarchy.Path{"p", "a", "c1"},
			cur:  hierarchy.Path{"p", "a", "b", "c", "c2"},
			want: Transition{CommonDepth: 2, Segments: []string{"b", "c", "c2"}},
		},
		{
			name: "back out to a shallower case",
			prev: hierarchy.Path{"p", "a", "b", "c1"},
			cur:  hierarchy.Path{"p", "c2"},
			want: Transition{CommonDepth: 1, Segments: []string{"c2"}},
		},
		{
			name: "same name at same position in a different plan is new",
			prev: hierarchy.Path{"p1", "s", "c1"},
			cur:  hierarchy.Path{"p2", "s", "c2"},
			want: Transition{CommonDepth: 0, Segments: []string{"p2", "s", "c2"}},
		},
		{
			name: "identical path still announces the case",
			prev: hierarchy.Path{"p", "s", "c"},
			cur:  hierarchy.Path{"p", "s", "c"},
			want: Transition{CommonDepth: 2, Segments: []string{"c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Track(tt.prev, tt.cur)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Track() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransitionAccessors(t *testing.T) {
	tr := Track(hierarchy.Path{"p", "a", "c1"}, hierarchy.Path{"p", "b", "c2"})
	assert.Equal(t, []string{"b"}, tr.NewAncestors())
	assert.Equal(t, "c2", tr.CaseName())
	assert.Equal(t, 2, tr.CaseDepth())

	tr = Track(hierarchy.Path{"p", "a", "c1"}, hierarchy.Path{"p", "a", "c2"})
	assert.Empty(t, tr.NewAncestors())
	assert.Equal(t, 2, tr.CaseDepth())

	var empty Transition
	assert.Empty(t, empty.NewAncestors())
	assert.Equal(t, "", empty.CaseName())
}

func TestTrackDoesNotAliasCurrentPath(t *testing.T) {
	cur := hierarchy.Path{"p", "s", "c"}
	tr := Track(nil, cur)
	tr.Segments[0] = "changed"
	assert.Equal(t, "p", cur[0])
}
