package hover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoverkit/pkg/geometry"
)

// newTestSession returns a session with a 1000x800 viewport at zero scroll
// and zero compensation, the baseline for the collision fixtures.
func newTestSession() *Session {
	s := NewSession()
	s.viewport = ViewportState{
		WindowWidth:  1000,
		WindowHeight: 800,
	}
	return s
}

func TestDetect_FullyInsideViewport(t *testing.T) {
	s := newTestSession()

	// A 100x100 box at top-left (10,10). The Right/Bottom pair describes
	// the same box in distance-from-opposite-edge form: 1000-10-100 and
	// 800-10-100.
	coords := geometry.Offsets{Top: 10, Left: 10, Right: 890, Bottom: 690}

	assert.Equal(t, geometry.EdgeNone, s.Detect(coords, 100, 100))
}

func TestDetect_TopCollision(t *testing.T) {
	s := newTestSession()

	coords := geometry.Offsets{Top: -5, Left: 10, Right: 890, Bottom: 705}

	mask := s.Detect(coords, 100, 100)
	assert.True(t, mask.Has(geometry.EdgeTop))
}

func TestDetect_BottomCollision(t *testing.T) {
	s := newTestSession()

	// Top edge at 750 puts the box's lower edge at 850, past the 800-pixel
	// viewport bottom.
	coords := geometry.Offsets{Top: 750, Left: 10, Right: 890, Bottom: -50}

	mask := s.Detect(coords, 100, 100)
	assert.True(t, mask.Has(geometry.EdgeBottom))
}

func TestDetect_LeftCollision(t *testing.T) {
	s := newTestSession()

	// Placed via the Right pair, pushed so far left that the box's left
	// edge sits at -50.
	coords := geometry.Offsets{Top: 10, Left: -50, Right: 950, Bottom: 690}

	mask := s.Detect(coords, 100, 100)
	assert.True(t, mask.Has(geometry.EdgeLeft))
}

func TestDetect_RightCollision(t *testing.T) {
	s := newTestSession()

	// Left edge at 950 puts the box's right edge at 1050; the Right value
	// turns negative accordingly.
	coords := geometry.Offsets{Top: 10, Left: 950, Right: -50, Bottom: 690}

	mask := s.Detect(coords, 100, 100)
	assert.True(t, mask.Has(geometry.EdgeRight))
}

func TestDetect_CornerCombinesFlags(t *testing.T) {
	s := newTestSession()

	// Past the top-left corner: both violations must be reported and the
	// mask must equal the plain union of the two flags.
	coords := geometry.Offsets{Top: -20, Left: -20, Right: 920, Bottom: 720}

	mask := s.Detect(coords, 100, 100)
	assert.Equal(t, geometry.EdgeTop.Union(geometry.EdgeLeft), mask)
	assert.Equal(t, 2, mask.Count())
}

func TestDetect_ScrolledViewport(t *testing.T) {
	s := newTestSession()
	s.viewport.ScrollLeft = 200
	s.viewport.ScrollTop = 300

	// Document coordinates inside the scrolled-to region: visible rows are
	// 300..1100, columns 200..1200. Bottom is window-anchored:
	// 800 - (310 + 100).
	inside := geometry.Offsets{Top: 310, Left: 210, Right: 890, Bottom: 390}
	assert.Equal(t, geometry.EdgeNone, s.Detect(inside, 100, 100))

	// Above the visible region even though it is inside the document.
	above := geometry.Offsets{Top: 100, Left: 210, Right: 890, Bottom: 390}
	assert.True(t, s.Detect(above, 100, 100).Has(geometry.EdgeTop))
}

func TestDetect_CompensationShiftsViewport(t *testing.T) {
	s := newTestSession()
	s.viewport.Compensation = geometry.Offsets{Top: 50, Left: 50}

	// Compensation moves the effective viewport top/left to -50, so a box
	// at -40 no longer collides. The compensated right edge sits at 950,
	// so the Right value stays clear of it.
	coords := geometry.Offsets{Top: -40, Left: -40, Right: 840, Bottom: 740}
	assert.Equal(t, geometry.EdgeNone, s.Detect(coords, 100, 100))
}

func TestDetect_ViewportMargin(t *testing.T) {
	s := newTestSession()
	s.margin = 20

	// Inside the raw viewport but within the 20-pixel safety margin.
	coords := geometry.Offsets{Top: 5, Left: 5, Right: 895, Bottom: 695}
	mask := s.Detect(coords, 100, 100)
	assert.True(t, mask.Has(geometry.EdgeTop))
	assert.True(t, mask.Has(geometry.EdgeLeft))

	// Clear of the margin on every edge.
	coords = geometry.Offsets{Top: 30, Left: 30, Right: 870, Bottom: 670}
	assert.Equal(t, geometry.EdgeNone, s.Detect(coords, 100, 100))
}

func TestDetect_DegenerateZeroSizeBox(t *testing.T) {
	s := newTestSession()

	// Zero-size boxes resolve arithmetically, no special-casing: on the
	// boundary is not a collision.
	coords := geometry.Offsets{Top: 0, Left: 0, Right: 1000, Bottom: 800}
	assert.Equal(t, geometry.EdgeNone, s.Detect(coords, 0, 0))
}

func TestRankPlacements_FewestCollisionsFirst(t *testing.T) {
	s := newTestSession()

	candidates := []geometry.Offsets{
		{Top: -20, Left: -20, Right: 920, Bottom: 720}, // top-left corner: 2 hits
		{Top: 10, Left: 10, Right: 890, Bottom: 690},   // fits: 0 hits
		{Top: -5, Left: 10, Right: 890, Bottom: 705},   // top only: 1 hit
	}

	ranked := s.RankPlacements(candidates, 100, 100)
	require.Len(t, ranked, 3)

	assert.Equal(t, candidates[1], ranked[0].Coords)
	assert.Equal(t, geometry.EdgeNone, ranked[0].Edges)
	assert.Equal(t, candidates[2], ranked[1].Coords)
	assert.Equal(t, candidates[0], ranked[2].Coords)
}

func TestRankPlacements_StableAmongTies(t *testing.T) {
	s := newTestSession()

	// Two candidates that both fit: caller order is preserved.
	candidates := []geometry.Offsets{
		{Top: 10, Left: 10, Right: 890, Bottom: 690},
		{Top: 200, Left: 200, Right: 700, Bottom: 500},
	}

	ranked := s.RankPlacements(candidates, 100, 100)
	require.Len(t, ranked, 2)
	assert.Equal(t, candidates[0], ranked[0].Coords)
	assert.Equal(t, candidates[1], ranked[1].Coords)
}
