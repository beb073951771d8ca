package hover

import (
	"github.com/bnema/hoverkit/pkg/geometry"
)

// ViewportState is the cached geometry of the tracked view: scroll offsets,
// visible size, and the position compensation applied to collision math.
// It is created once per session and mutated in place on every resize and
// scroll event for the session's lifetime.
type ViewportState struct {
	ScrollLeft   float64
	ScrollTop    float64
	WindowWidth  float64
	WindowHeight float64

	// Compensation corrects viewport math when the root container is
	// repositioned. Recomputed whenever the window dimensions change;
	// immutable between recomputes.
	Compensation geometry.Offsets
}

// Session holds the live viewport and cursor state for one tracked view.
// A view has exactly one viewport and one cursor, so a Session is the unit
// of ownership: create one per view (or per test) instead of sharing
// process-wide state, and keep all reads within the same event turn as the
// query that triggered them.
type Session struct {
	viewport ViewportState

	// cursor is maintained in document coordinates. Pointer events set it
	// absolutely; scroll events shift it by the scroll delta, because a
	// scroll alone moves the coordinate frame without producing a pointer
	// event. Violating that invariant skews every later hover test.
	cursor geometry.Point

	// margin shrinks the effective viewport before collision testing.
	// Zero by default, set through the tracker's WithViewportMargin option.
	margin float64
}

// NewSession returns an empty session. Callers normally obtain one through
// a Tracker, which populates it from a DocumentView.
func NewSession() *Session {
	return &Session{}
}

// Viewport returns the current cached viewport state.
func (s *Session) Viewport() ViewportState {
	return s.viewport
}

// Cursor returns the last tracked cursor position in document coordinates.
func (s *Session) Cursor() geometry.Point {
	return s.cursor
}

// IsOver reports whether the tracked cursor lies within the element box of
// the given size whose document-relative top-left corner is at offset.
// Both bounds are inclusive: a cursor exactly on an edge counts as over.
func (s *Session) IsOver(size geometry.Size, offset geometry.Offsets) bool {
	return s.cursor.X >= offset.Left && s.cursor.X <= offset.Left+size.W &&
		s.cursor.Y >= offset.Top && s.cursor.Y <= offset.Top+size.H
}
