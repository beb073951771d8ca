// Package gtkview implements the hover view interfaces over GTK4 widgets.
// It lets the hover engine track any gtk.ScrolledWindow: scroll offsets and
// viewport size come from the window's adjustments, pointer positions from a
// motion event controller, translated into document coordinates.
package gtkview

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/hoverkit/pkg/hover"
)

// View adapts a gtk.ScrolledWindow to hover.DocumentView. The "document" is
// the scrolled window's content; document coordinates are content-relative,
// so a point keeps its coordinates while the user scrolls.
type View struct {
	scroller *gtk.ScrolledWindow
}

var _ hover.DocumentView = (*View)(nil)

// NewView wraps a scrolled window for viewport tracking.
func NewView(scroller *gtk.ScrolledWindow) *View {
	return &View{scroller: scroller}
}

// ScrollOffset returns the current scroll position from the adjustments.
func (v *View) ScrollOffset() (left, top float64) {
	return v.scroller.HAdjustment().Value(), v.scroller.VAdjustment().Value()
}

// ViewportSize returns the visible region size. The adjustment page size is
// the span of content currently shown, which is exactly the viewport.
func (v *View) ViewportSize() (w, h float64) {
	return v.scroller.HAdjustment().PageSize(), v.scroller.VAdjustment().PageSize()
}

// OnScroll registers fn on both adjustments' value-changed signals.
func (v *View) OnScroll(fn func()) {
	v.scroller.HAdjustment().ConnectValueChanged(fn)
	v.scroller.VAdjustment().ConnectValueChanged(fn)
}

// OnResize registers fn on both adjustments' changed signals, which fire
// when the page size (the visible region) changes.
func (v *View) OnResize(fn func()) {
	v.scroller.HAdjustment().ConnectChanged(fn)
	v.scroller.VAdjustment().ConnectChanged(fn)
}

// Track wires a scrolled window and its content widget into a hover
// tracker. Call Init on the result to begin tracking.
func Track(scroller *gtk.ScrolledWindow, content gtk.Widgetter, opts ...hover.Option) *hover.Tracker {
	return hover.NewTracker(NewView(scroller), NewRoot(scroller, content), opts...)
}

// OnPointerMove attaches a motion controller to the scrolled window and
// delivers pointer positions in document coordinates. GTK motion events
// always carry numeric coordinates, so the engine's boundary precondition
// holds; other input events never reach fn.
func (v *View) OnPointerMove(fn func(x, y float64)) {
	motion := gtk.NewEventControllerMotion()
	motion.SetPropagationPhase(gtk.PhaseCapture)
	motion.ConnectMotion(func(x, y float64) {
		left, top := v.ScrollOffset()
		fn(x+left, y+top)
	})
	v.scroller.AddController(motion)
}
