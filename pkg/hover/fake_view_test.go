package hover

// fakeView is a hand-written DocumentView for tests. It records every
// handler registration so idempotence can be asserted, and exposes helpers
// that mutate geometry and fire the registered handlers the way the host
// toolkit would.
type fakeView struct {
	scrollLeft, scrollTop float64
	width, height         float64

	scrollFns  []func()
	resizeFns  []func()
	pointerFns []func(x, y float64)
}

func (v *fakeView) ScrollOffset() (left, top float64) { return v.scrollLeft, v.scrollTop }
func (v *fakeView) ViewportSize() (w, h float64)      { return v.width, v.height }

func (v *fakeView) OnScroll(fn func()) { v.scrollFns = append(v.scrollFns, fn) }
func (v *fakeView) OnResize(fn func()) { v.resizeFns = append(v.resizeFns, fn) }

func (v *fakeView) OnPointerMove(fn func(x, y float64)) {
	v.pointerFns = append(v.pointerFns, fn)
}

// scrollTo updates the scroll position and fires all scroll handlers,
// once per registration, like a real scroll event.
func (v *fakeView) scrollTo(left, top float64) {
	v.scrollLeft, v.scrollTop = left, top
	for _, fn := range v.scrollFns {
		fn()
	}
}

// resizeTo updates the viewport size and fires all resize handlers.
func (v *fakeView) resizeTo(w, h float64) {
	v.width, v.height = w, h
	for _, fn := range v.resizeFns {
		fn()
	}
}

// movePointer fires all pointer handlers with document coordinates.
func (v *fakeView) movePointer(x, y float64) {
	for _, fn := range v.pointerFns {
		fn(x, y)
	}
}

// fakeRoot is a hand-written RootContainer with fixed geometry.
type fakeRoot struct {
	positioned       bool
	offTop, offLeft  float64
	posTop, posLeft  float64
	width, height    float64
	marginW, marginH float64 // total horizontal/vertical margin
}

func (r *fakeRoot) Positioned() bool              { return r.positioned }
func (r *fakeRoot) Offset() (top, left float64)   { return r.offTop, r.offLeft }
func (r *fakeRoot) Position() (top, left float64) { return r.posTop, r.posLeft }

func (r *fakeRoot) OuterWidth(margin bool) float64 {
	if margin {
		return r.width + r.marginW
	}
	return r.width
}

func (r *fakeRoot) OuterHeight(margin bool) float64 {
	if margin {
		return r.height + r.marginH
	}
	return r.height
}
