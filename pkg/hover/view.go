// Package hover implements tooltip placement support for scrollable views:
// it tracks viewport geometry and cursor position across scroll events,
// answers hover queries, and computes viewport-edge collision masks for
// candidate tooltip placements.
//
// The engine is synchronous and single-threaded by design: the host delivers
// resize, scroll, and pointer events one at a time on its UI loop, and
// consumers query the session within the same turn. Nothing here locks.
package hover

// DocumentView abstracts the scrollable view whose visible region defines
// the viewport. Implementations wrap the host toolkit (see pkg/gtkview);
// tests use hand-written fakes. All dimensions are pixels.
type DocumentView interface {
	// ScrollOffset returns the current scroll position of the view.
	ScrollOffset() (left, top float64)

	// ViewportSize returns the width and height of the visible region.
	ViewportSize() (w, h float64)

	// OnScroll registers fn to run whenever the scroll position changes.
	OnScroll(fn func())

	// OnResize registers fn to run whenever the visible region changes size.
	OnResize(fn func())

	// OnPointerMove registers fn to receive pointer positions in document
	// coordinates. Implementations must only deliver real pointer events
	// carrying numeric coordinates; events without coordinate data are
	// dropped at the adapter boundary, never forwarded.
	OnPointerMove(fn func(x, y float64))
}

// RootContainer abstracts the view's root content container, queried when
// position compensation is recomputed. When the container keeps its default
// (static) placement the compensation is zero; a repositioned container
// shifts the coordinate frame and the engine must correct for its offset
// and margins.
type RootContainer interface {
	// Positioned reports whether the container has non-default positioning.
	Positioned() bool

	// Offset returns the container's document offset (its top-left corner
	// relative to the document).
	Offset() (top, left float64)

	// Position returns the container's own position values (the placement
	// applied to it, as opposed to where it ended up).
	Position() (top, left float64)

	// OuterWidth returns the container's outer width, including margins
	// when margin is true.
	OuterWidth(margin bool) float64

	// OuterHeight returns the container's outer height, including margins
	// when margin is true.
	OuterHeight(margin bool) float64
}
