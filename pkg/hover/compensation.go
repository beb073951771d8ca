package hover

import (
	"github.com/bnema/hoverkit/pkg/geometry"
)

// computeCompensation returns the correction offsets to apply to viewport
// math when the view's root container is repositioned. For a container with
// default (static) placement no correction is needed and the zero Offsets
// is returned; this is the common case.
//
// For a repositioned container, Top and Left are simply the container's own
// document offset. Right and Bottom fold together the container's margins
// (the difference between its outer size with and without margin), how far
// layout pushed it from its declared position, and the viewport space left
// beyond it. Leaf pure function: the same inputs, plus the container
// geometry read at call time, always produce the same output.
func computeCompensation(root RootContainer, windowWidth, windowHeight float64) geometry.Offsets {
	if root == nil || !root.Positioned() {
		return geometry.Offsets{}
	}

	offTop, offLeft := root.Offset()
	posTop, posLeft := root.Position()

	outerW := root.OuterWidth(false)
	outerWM := root.OuterWidth(true)
	outerH := root.OuterHeight(false)
	outerHM := root.OuterHeight(true)

	return geometry.Offsets{
		Top:  offTop,
		Left: offLeft,
		Right: (outerWM - outerW - (offLeft - posLeft)) +
			(windowWidth - outerWM - posLeft),
		Bottom: (outerHM - outerH - (offTop - posTop)) +
			(windowHeight - outerHM - posTop),
	}
}
