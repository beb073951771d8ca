package hover

import (
	"github.com/rs/zerolog"

	"github.com/bnema/hoverkit/pkg/geometry"
)

// Tracker binds a Session to a DocumentView: it captures the view's initial
// geometry and keeps the session current as the host delivers resize,
// scroll, and pointer events. One tracker owns one session.
type Tracker struct {
	view    DocumentView
	root    RootContainer
	session *Session
	log     zerolog.Logger

	// tracking guards Init: event handlers are registered exactly once for
	// the tracker's lifetime, matching the host's once-per-page model.
	tracking bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for state-transition debug logging.
// Without it the tracker logs nowhere.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

// WithViewportMargin shrinks the effective viewport by margin pixels on
// every edge during collision detection. Negative values are ignored.
func WithViewportMargin(margin float64) Option {
	return func(t *Tracker) {
		if margin > 0 {
			t.session.margin = margin
		}
	}
}

// SetViewportMargin updates the collision margin while tracking, for hosts
// whose configuration can reload at runtime. Negative values are ignored;
// zero restores the exact viewport.
func (t *Tracker) SetViewportMargin(margin float64) {
	if margin < 0 {
		return
	}
	t.session.margin = margin
}

// NewTracker creates a tracker for the given view. root may be nil when the
// view's content container always keeps default positioning (compensation
// stays zero). Call Init to begin tracking.
func NewTracker(view DocumentView, root RootContainer, opts ...Option) *Tracker {
	t := &Tracker{
		view:    view,
		root:    root,
		session: NewSession(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session returns the session this tracker maintains. Consumers query it
// synchronously (IsOver, Detect, Cursor) between events.
func (t *Tracker) Session() *Session {
	return t.session
}

// Init captures the view's current geometry and registers the scroll,
// resize, and pointer handlers. It is idempotent: only the first call does
// anything, so wiring it into several code paths cannot double-register
// handlers or double-apply scroll deltas.
func (t *Tracker) Init() {
	if t.tracking {
		return
	}
	t.tracking = true

	t.onResize()
	// Capture the starting scroll position directly: the delta-based scroll
	// handler would otherwise shift the untracked cursor by the initial
	// offset.
	vp := &t.session.viewport
	vp.ScrollLeft, vp.ScrollTop = t.view.ScrollOffset()

	t.view.OnResize(t.onResize)
	t.view.OnScroll(t.onScroll)
	t.view.OnPointerMove(t.onPointerMove)

	t.log.Debug().
		Float64("window_width", t.session.viewport.WindowWidth).
		Float64("window_height", t.session.viewport.WindowHeight).
		Msg("viewport tracking started")
}

// onResize refreshes the cached window dimensions and recomputes the
// position compensation, which depends on them.
func (t *Tracker) onResize() {
	vp := &t.session.viewport
	vp.WindowWidth, vp.WindowHeight = t.view.ViewportSize()
	vp.Compensation = computeCompensation(t.root, vp.WindowWidth, vp.WindowHeight)

	t.log.Debug().
		Float64("window_width", vp.WindowWidth).
		Float64("window_height", vp.WindowHeight).
		Bool("compensated", !vp.Compensation.IsZero()).
		Msg("viewport resized")
}

// onScroll refreshes the cached scroll offsets. For each axis whose value
// changed, the cursor is shifted by the same delta: the cursor lives in
// document coordinates, and a scroll without pointer motion still moves the
// coordinate frame underneath it. Skipping that shift leaves the cursor
// stale and breaks every hover test until the next pointer event.
func (t *Tracker) onScroll() {
	vp := &t.session.viewport
	left, top := t.view.ScrollOffset()

	if left != vp.ScrollLeft {
		t.session.cursor.X += left - vp.ScrollLeft
		vp.ScrollLeft = left
	}
	if top != vp.ScrollTop {
		t.session.cursor.Y += top - vp.ScrollTop
		vp.ScrollTop = top
	}

	t.log.Debug().
		Float64("scroll_left", vp.ScrollLeft).
		Float64("scroll_top", vp.ScrollTop).
		Msg("viewport scrolled")
}

// onPointerMove overwrites the tracked cursor with the event coordinates.
// Adapters guarantee the coordinates come from a real pointer event.
func (t *Tracker) onPointerMove(x, y float64) {
	t.session.cursor = geometry.Point{X: x, Y: y}
}
