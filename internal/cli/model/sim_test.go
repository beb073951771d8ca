package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoverkit/internal/cli/styles"
	"github.com/bnema/hoverkit/internal/config"
	"github.com/bnema/hoverkit/pkg/geometry"
)

func newTestSimModel(t *testing.T) SimModel {
	t.Helper()
	return NewSimModel(context.Background(), styles.NewTheme(), config.DefaultConfig())
}

func TestNewSimModel_CentersCursorInViewport(t *testing.T) {
	m := newTestSimModel(t)
	cfg := config.DefaultConfig()

	cursor := m.tracker.Session().Cursor()
	assert.Equal(t, float64(cfg.Sim.ViewportWidth)/2, cursor.X)
	assert.Equal(t, float64(cfg.Sim.ViewportHeight)/2, cursor.Y)
}

func TestSimModel_CursorKeysMoveByStep(t *testing.T) {
	m := newTestSimModel(t)
	start := m.tracker.Session().Cursor()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = next.(SimModel)

	cursor := m.tracker.Session().Cursor()
	assert.Equal(t, start.X+m.cursorStep, cursor.X)
	assert.Equal(t, start.Y, cursor.Y)
}

func TestSimModel_ScrollShiftsCursorNotPointer(t *testing.T) {
	m := newTestSimModel(t)
	start := m.tracker.Session().Cursor()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = next.(SimModel)

	// Scrolling moves the document under a stationary pointer, so the
	// document-space cursor shifts by the scroll delta.
	cursor := m.tracker.Session().Cursor()
	assert.Equal(t, start.Y+m.scrollStep, cursor.Y)

	vp := m.tracker.Session().Viewport()
	assert.Equal(t, m.scrollStep, vp.ScrollTop)
}

func TestSimModel_ResetRestoresInitialState(t *testing.T) {
	m := newTestSimModel(t)
	start := m.tracker.Session().Cursor()

	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyPgDown},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}},
	} {
		next, _ := m.Update(msg)
		m = next.(SimModel)
	}

	vp := m.tracker.Session().Viewport()
	assert.Equal(t, 0.0, vp.ScrollTop)
	assert.Equal(t, start, m.tracker.Session().Cursor())
}

func TestSimModel_QuitKeyQuits(t *testing.T) {
	m := newTestSimModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSimModel_ViewRendersPlacements(t *testing.T) {
	m := newTestSimModel(t)

	view := m.View()
	require.NotEmpty(t, view)
	assert.Contains(t, view, "hoverkit sim")
	assert.Contains(t, view, "placements")
}

func TestAnchoredCoords_WindowAnchoredDistances(t *testing.T) {
	cursor := geometry.Point{X: 500, Y: 400}
	tip := geometry.Size{W: 200, H: 80}

	coords := anchoredCoords("bottom", cursor, tip, 1000, 800)
	assert.Equal(t, 412.0, coords.Top)
	assert.Equal(t, 400.0, coords.Left)
	assert.Equal(t, 800-412.0-80, coords.Bottom)
	assert.Equal(t, 1000-400.0-200, coords.Right)

	top := anchoredCoords("top", cursor, tip, 1000, 800)
	assert.Equal(t, 400-float64(cursorGap)-80, top.Top)

	left := anchoredCoords("left", cursor, tip, 1000, 800)
	assert.Equal(t, 500-float64(cursorGap)-200, left.Left)

	right := anchoredCoords("right", cursor, tip, 1000, 800)
	assert.Equal(t, 500+float64(cursorGap), right.Left)
}

func TestSimView_ScrollClampsToDocument(t *testing.T) {
	v := newSimView(2000, 3000, 1000, 800)

	fired := 0
	v.OnScroll(func() { fired++ })

	v.scrollBy(0, 99999)
	assert.Equal(t, 3000.0-800.0, v.scrollTop)
	assert.Equal(t, 1, fired)

	// Already at the bottom, no change, no callback.
	v.scrollBy(0, 50)
	assert.Equal(t, 1, fired)

	v.scrollBy(0, -99999)
	assert.Equal(t, 0.0, v.scrollTop)
	assert.Equal(t, 2, fired)
}

func TestSimModel_ConfigReloadAppliesSettings(t *testing.T) {
	m := newTestSimModel(t)

	cfg := config.DefaultConfig()
	cfg.Tooltip.Placements = []string{"top", "left"}
	cfg.Tooltip.ViewportMargin = 30
	cfg.Sim.TooltipWidth = 300
	cfg.Sim.CursorStep = 5

	next, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = next.(SimModel)

	assert.Equal(t, []string{"top", "left"}, m.placements)
	assert.Equal(t, 300.0, m.tooltip.W)
	assert.Equal(t, 5.0, m.cursorStep)

	// The reloaded margin reaches the live tracker: a tooltip hugging the
	// viewport's top edge now collides.
	coords := geometry.Offsets{Top: 5, Left: 400, Right: 400, Bottom: 695}
	mask := m.tracker.Session().Detect(coords, 100, 100)
	assert.True(t, mask.Has(geometry.EdgeTop))
}
