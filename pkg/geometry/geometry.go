// Package geometry provides the value types shared by the hover engine:
// points, sizes, edge offsets, and the viewport-edge collision mask.
package geometry

// Point is a position in document coordinates, measured in pixels from the
// top-left of the full scrollable document, independent of scroll offset.
type Point struct {
	X float64
	Y float64
}

// Size holds the width and height of an element box in pixels. Callers
// should derive it from a bounding-rect query rather than computed style,
// which is unreliable for non-rectangular elements.
type Size struct {
	W float64
	H float64
}

// Offsets holds per-edge pixel values. It serves two roles:
//
//   - a position-compensation offset (all four edges are corrections), and
//   - a candidate tooltip placement, where Top/Left are absolute document
//     coordinates while Right/Bottom are distances from the opposite
//     viewport edge, mirroring CSS right/bottom positioning. Callers
//     position with the Top+Left pair or the Bottom+Right pair, never both.
type Offsets struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// IsZero reports whether all four edges are zero.
func (o Offsets) IsZero() bool {
	return o == Offsets{}
}
