package model

// simView is an in-process document view for the simulator. It emulates a
// scrollable document the way a scrolled window does: scroll offsets plus a
// fixed viewport onto a larger content area, with registered handlers fired
// synchronously on every change.
type simView struct {
	scrollLeft float64
	scrollTop  float64
	viewportW  float64
	viewportH  float64
	docW       float64
	docH       float64

	scrollFns  []func()
	resizeFns  []func()
	pointerFns []func(x, y float64)
}

func newSimView(docW, docH, viewportW, viewportH float64) *simView {
	return &simView{
		viewportW: viewportW,
		viewportH: viewportH,
		docW:      docW,
		docH:      docH,
	}
}

func (v *simView) ScrollOffset() (left, top float64) { return v.scrollLeft, v.scrollTop }
func (v *simView) ViewportSize() (w, h float64)      { return v.viewportW, v.viewportH }

func (v *simView) OnScroll(fn func()) { v.scrollFns = append(v.scrollFns, fn) }
func (v *simView) OnResize(fn func()) { v.resizeFns = append(v.resizeFns, fn) }

func (v *simView) OnPointerMove(fn func(x, y float64)) {
	v.pointerFns = append(v.pointerFns, fn)
}

// scrollBy shifts the scroll offsets, clamped so the viewport stays within
// the document, and fires scroll handlers when anything changed.
func (v *simView) scrollBy(dx, dy float64) {
	left := clamp(v.scrollLeft+dx, 0, v.docW-v.viewportW)
	top := clamp(v.scrollTop+dy, 0, v.docH-v.viewportH)
	if left == v.scrollLeft && top == v.scrollTop {
		return
	}
	v.scrollLeft = left
	v.scrollTop = top
	for _, fn := range v.scrollFns {
		fn()
	}
}

// movePointer reports a pointer position in document coordinates, clamped to
// the document bounds.
func (v *simView) movePointer(x, y float64) {
	x = clamp(x, 0, v.docW)
	y = clamp(y, 0, v.docH)
	for _, fn := range v.pointerFns {
		fn(x, y)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
