// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/hoverkit/internal/cli/styles"
	"github.com/bnema/hoverkit/internal/config"
	"github.com/bnema/hoverkit/internal/logging"
	"github.com/bnema/hoverkit/pkg/geometry"
	"github.com/bnema/hoverkit/pkg/hover"
)

// cursorGap is the distance between the cursor and an anchored tooltip.
const cursorGap = 12

// SimModel is the Bubble Tea model for the interactive placement simulator.
// It drives a real tracker over a simulated document: arrow keys move the
// virtual cursor, paging keys scroll, and the view shows the resulting hover
// state and per-placement collision masks live.
type SimModel struct {
	help  help.Model
	keys  simKeyMap
	theme *styles.Theme

	view    *simView
	tracker *hover.Tracker

	// Target element the cursor hovers, in document coordinates.
	target     geometry.Offsets
	targetSize geometry.Size

	tooltip    geometry.Size
	placements []string
	cursorStep float64
	scrollStep float64

	width  int
	height int

	ctx context.Context
}

// simKeyMap defines keybindings for the simulator.
type simKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k simKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.ScrollDown, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k simKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ScrollUp, k.ScrollDown, k.Reset},
		{k.Help, k.Quit},
	}
}

func defaultSimKeyMap() simKeyMap {
	return simKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "cursor right"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "u"),
			key.WithHelp("pgup/u", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "d"),
			key.WithHelp("pgdn/d", "scroll down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewSimModel creates a simulator model from config.
func NewSimModel(ctx context.Context, theme *styles.Theme, cfg *config.Config) SimModel {
	sim := cfg.Sim
	view := newSimView(
		float64(sim.DocumentWidth), float64(sim.DocumentHeight),
		float64(sim.ViewportWidth), float64(sim.ViewportHeight),
	)

	tracker := hover.NewTracker(view, nil,
		hover.WithLogger(*logging.FromContext(ctx)),
		hover.WithViewportMargin(cfg.Tooltip.ViewportMargin),
	)
	tracker.Init()

	// A fixed target element a quarter of the way into the document.
	targetW := float64(sim.TooltipWidth) * 1.5
	targetH := float64(sim.TooltipHeight) * 1.5
	target := geometry.Offsets{
		Top:  float64(sim.DocumentHeight)/4 - targetH/2,
		Left: float64(sim.DocumentWidth)/4 - targetW/2,
	}

	m := SimModel{
		help:       help.New(),
		keys:       defaultSimKeyMap(),
		theme:      theme,
		view:       view,
		tracker:    tracker,
		target:     target,
		targetSize: geometry.Size{W: targetW, H: targetH},
		tooltip:    geometry.Size{W: float64(sim.TooltipWidth), H: float64(sim.TooltipHeight)},
		placements: cfg.Tooltip.Placements,
		cursorStep: float64(sim.CursorStep),
		scrollStep: float64(sim.ScrollStep),
		width:      80,
		height:     24,
		ctx:        ctx,
	}

	// Start with the cursor centered on the visible viewport.
	view.movePointer(float64(sim.ViewportWidth)/2, float64(sim.ViewportHeight)/2)
	return m
}

// Init implements tea.Model.
func (m SimModel) Init() tea.Cmd {
	return nil
}

// ConfigReloadedMsg delivers a freshly reloaded config to the simulator.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// applyConfig picks up the reloadable settings: placement priority, tooltip
// size, step sizes, and the collision margin. Document and viewport
// dimensions stay fixed for the life of the simulated view.
func (m SimModel) applyConfig(cfg *config.Config) SimModel {
	m.placements = cfg.Tooltip.Placements
	m.tooltip = geometry.Size{W: float64(cfg.Sim.TooltipWidth), H: float64(cfg.Sim.TooltipHeight)}
	m.cursorStep = float64(cfg.Sim.CursorStep)
	m.scrollStep = float64(cfg.Sim.ScrollStep)
	m.tracker.SetViewportMargin(cfg.Tooltip.ViewportMargin)

	log := logging.FromContext(m.ctx)
	log.Debug().Float64("viewport_margin", cfg.Tooltip.ViewportMargin).
		Strs("placements", cfg.Tooltip.Placements).
		Msg("applied reloaded config")
	return m
}

// Update implements tea.Model.
func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config), nil
	}

	return m, nil
}

func (m SimModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := m.tracker.Session().Cursor()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.view.movePointer(cursor.X, cursor.Y-m.cursorStep)

	case key.Matches(msg, m.keys.Down):
		m.view.movePointer(cursor.X, cursor.Y+m.cursorStep)

	case key.Matches(msg, m.keys.Left):
		m.view.movePointer(cursor.X-m.cursorStep, cursor.Y)

	case key.Matches(msg, m.keys.Right):
		m.view.movePointer(cursor.X+m.cursorStep, cursor.Y)

	case key.Matches(msg, m.keys.ScrollUp):
		m.view.scrollBy(0, -m.scrollStep)

	case key.Matches(msg, m.keys.ScrollDown):
		m.view.scrollBy(0, m.scrollStep)

	case key.Matches(msg, m.keys.Reset):
		log := logging.FromContext(m.ctx)
		log.Debug().Msg("resetting simulator view")
		vp := m.tracker.Session().Viewport()
		m.view.scrollBy(-vp.ScrollLeft, -vp.ScrollTop)
		m.view.movePointer(vp.WindowWidth/2, vp.WindowHeight/2)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// anchoredCoords computes the coordinate set for a tooltip anchored to the
// cursor on the given side. Top and Left are absolute document coordinates;
// Bottom and Right are the window-anchored distances the collision rules
// expect.
func anchoredCoords(placement string, cursor geometry.Point, tip geometry.Size, winW, winH float64) geometry.Offsets {
	var top, left float64
	switch placement {
	case "top":
		top = cursor.Y - cursorGap - tip.H
		left = cursor.X - tip.W/2
	case "left":
		top = cursor.Y - tip.H/2
		left = cursor.X - cursorGap - tip.W
	case "right":
		top = cursor.Y - tip.H/2
		left = cursor.X + cursorGap
	default: // bottom
		top = cursor.Y + cursorGap
		left = cursor.X - tip.W/2
	}
	return geometry.Offsets{
		Top:    top,
		Left:   left,
		Bottom: winH - top - tip.H,
		Right:  winW - left - tip.W,
	}
}

// View implements tea.Model.
func (m SimModel) View() string {
	t := m.theme
	s := m.tracker.Session()
	vp := s.Viewport()
	cursor := s.Cursor()

	var b strings.Builder

	b.WriteString(t.Title.Render("hoverkit sim"))
	b.WriteString("  ")
	b.WriteString(t.Subtle.Render("tooltip placement simulator"))
	b.WriteString("\n\n")

	// Viewport line
	b.WriteString(t.Subtitle.Render("viewport"))
	b.WriteString(" ")
	b.WriteString(t.Normal.Render(fmt.Sprintf("%.0f×%.0f", vp.WindowWidth, vp.WindowHeight)))
	b.WriteString(t.Subtle.Render(fmt.Sprintf("  scroll %.0f,%.0f", vp.ScrollLeft, vp.ScrollTop)))
	b.WriteString("\n")

	// Cursor line with hover state over the target element
	over := s.IsOver(m.targetSize, m.target)
	b.WriteString(t.Subtitle.Render("cursor"))
	b.WriteString("   ")
	b.WriteString(t.Normal.Render(fmt.Sprintf("%.0f,%.0f", cursor.X, cursor.Y)))
	b.WriteString("  ")
	b.WriteString(t.HoverBadge(over))
	b.WriteString(t.Subtle.Render(fmt.Sprintf("  target %.0f,%.0f %.0f×%.0f",
		m.target.Left, m.target.Top, m.targetSize.W, m.targetSize.H)))
	b.WriteString("\n\n")

	b.WriteString(m.renderPlacements())

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderPlacements shows every configured placement with its collision mask,
// winner first.
func (m SimModel) renderPlacements() string {
	t := m.theme
	s := m.tracker.Session()
	vp := s.Viewport()
	cursor := s.Cursor()

	names := m.placements
	if len(names) == 0 {
		names = []string{"bottom"}
	}

	candidates := make([]geometry.Offsets, len(names))
	for i, name := range names {
		candidates[i] = anchoredCoords(name, cursor, m.tooltip, vp.WindowWidth, vp.WindowHeight)
	}
	ranked := s.RankPlacements(candidates, m.tooltip.W, m.tooltip.H)

	nameFor := func(coords geometry.Offsets) string {
		for i, c := range candidates {
			if c == coords {
				return names[i]
			}
		}
		return "?"
	}

	var b strings.Builder
	b.WriteString(t.Subtitle.Render("placements"))
	b.WriteString("\n")
	for i, p := range ranked {
		label := nameFor(p.Coords)
		if i == 0 {
			b.WriteString("  " + t.AccentBadge(label))
		} else {
			b.WriteString("  " + t.MutedBadge(label))
		}
		b.WriteString("  ")
		b.WriteString(t.EdgeBadges(p.Edges))
		b.WriteString(t.Subtle.Render(fmt.Sprintf("  top %.0f left %.0f", p.Coords.Top, p.Coords.Left)))
		b.WriteString("\n")
	}
	return b.String()
}
