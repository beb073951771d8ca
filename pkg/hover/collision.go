package hover

import (
	"math"
	"sort"

	"github.com/bnema/hoverkit/pkg/geometry"
)

// Detect returns the set of viewport edges a candidate tooltip placement
// would overflow, or geometry.EdgeNone if it fits. coords follows the mixed
// placement convention described on geometry.Offsets: Top and Left are
// absolute document coordinates, Right and Bottom are CSS-style distances
// from the opposite viewport edge. The margin (from WithViewportMargin,
// default 0) shrinks the effective viewport before testing.
//
// The inequality structure below is deliberate and must not be reordered or
// algebraically simplified: each rule tests the candidate under whichever of
// the two placement pairs (Top+Left or Bottom+Right) the caller used, and
// correctness depends on evaluating both forms.
func (s *Session) Detect(coords geometry.Offsets, width, height float64) geometry.Edges {
	vp := s.viewport
	margin := s.margin

	viewportTop := vp.ScrollTop - vp.Compensation.Top + margin
	viewportLeft := vp.ScrollLeft - vp.Compensation.Left + margin
	viewportBottom := viewportTop + vp.WindowHeight - 2*margin
	viewportRight := viewportLeft + vp.WindowWidth - 2*margin

	collisions := geometry.EdgeNone

	if coords.Top < viewportTop ||
		math.Abs(coords.Bottom-vp.WindowHeight)-height < viewportTop {
		collisions = collisions.Union(geometry.EdgeTop)
	}
	if coords.Top+height > viewportBottom ||
		math.Abs(coords.Bottom-vp.WindowHeight) > viewportBottom {
		collisions = collisions.Union(geometry.EdgeBottom)
	}
	if coords.Left < viewportLeft || coords.Right+width > viewportRight {
		collisions = collisions.Union(geometry.EdgeLeft)
	}
	if coords.Left+width > viewportRight || coords.Right < viewportLeft {
		collisions = collisions.Union(geometry.EdgeRight)
	}

	return collisions
}

// Placement pairs a candidate coordinate set with the collision mask Detect
// produced for it.
type Placement struct {
	Coords geometry.Offsets
	Edges  geometry.Edges
}

// RankPlacements evaluates each candidate against the current viewport and
// returns them ordered by fewest collisions, preserving the caller's order
// among ties so earlier candidates keep priority.
func (s *Session) RankPlacements(candidates []geometry.Offsets, width, height float64) []Placement {
	ranked := make([]Placement, len(candidates))
	for i, c := range candidates {
		ranked[i] = Placement{Coords: c, Edges: s.Detect(c, width, height)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Edges.Count() < ranked[j].Edges.Count()
	})
	return ranked
}
