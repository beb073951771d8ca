package gtkview

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/hoverkit/pkg/hover"
)

// Root adapts the scrolled window's content widget to hover.RootContainer.
// A content widget that fills the scroller with no margins needs no position
// compensation; alignment or margins shift the coordinate frame and the
// engine corrects for them.
type Root struct {
	scroller *gtk.ScrolledWindow
	content  gtk.Widgetter
}

var _ hover.RootContainer = (*Root)(nil)

// NewRoot wraps the scroller's content widget for compensation queries.
func NewRoot(scroller *gtk.ScrolledWindow, content gtk.Widgetter) *Root {
	return &Root{scroller: scroller, content: content}
}

// Positioned reports whether the content widget deviates from the default
// fill-with-no-margin placement.
func (r *Root) Positioned() bool {
	w := baseWidget(r.content)
	if w == nil {
		return false
	}
	if w.MarginTop() != 0 || w.MarginBottom() != 0 ||
		w.MarginStart() != 0 || w.MarginEnd() != 0 {
		return true
	}
	return w.Halign() != gtk.AlignFill || w.Valign() != gtk.AlignFill
}

// Offset returns the content widget's document offset: its bounds relative
// to the scroller, shifted back into content coordinates by the current
// scroll position.
func (r *Root) Offset() (top, left float64) {
	w := baseWidget(r.content)
	if w == nil {
		return 0, 0
	}
	rect, ok := w.ComputeBounds(r.scroller)
	if !ok || rect == nil {
		return 0, 0
	}
	hadj := r.scroller.HAdjustment()
	vadj := r.scroller.VAdjustment()
	return float64(rect.Y()) + vadj.Value(), float64(rect.X()) + hadj.Value()
}

// Position returns the placement declared on the widget itself, which for
// GTK content is its start/top margins.
func (r *Root) Position() (top, left float64) {
	w := baseWidget(r.content)
	if w == nil {
		return 0, 0
	}
	return float64(w.MarginTop()), float64(w.MarginStart())
}

// OuterWidth returns the allocated width, including horizontal margins when
// margin is true.
func (r *Root) OuterWidth(margin bool) float64 {
	w := baseWidget(r.content)
	if w == nil {
		return 0
	}
	width := float64(w.AllocatedWidth())
	if margin {
		width += float64(w.MarginStart() + w.MarginEnd())
	}
	return width
}

// OuterHeight returns the allocated height, including vertical margins when
// margin is true.
func (r *Root) OuterHeight(margin bool) float64 {
	w := baseWidget(r.content)
	if w == nil {
		return 0
	}
	height := float64(w.AllocatedHeight())
	if margin {
		height += float64(w.MarginTop() + w.MarginBottom())
	}
	return height
}

// baseWidget extracts the underlying *gtk.Widget from a Widgetter; some
// geometry methods are only available on the base type.
func baseWidget(w gtk.Widgetter) *gtk.Widget {
	if w == nil {
		return nil
	}
	if widget, ok := w.(interface{ Widget() *gtk.Widget }); ok {
		return widget.Widget()
	}
	if widget, ok := w.(*gtk.Widget); ok {
		return widget
	}
	return nil
}
