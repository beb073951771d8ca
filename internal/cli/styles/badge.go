package styles

import (
	"strings"

	"github.com/bnema/hoverkit/pkg/geometry"
)

// Badge renders styled metadata badges.

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// EdgeBadges renders one badge per colliding viewport edge, or a muted
// "clear" badge when the mask is empty.
func (t *Theme) EdgeBadges(edges geometry.Edges) string {
	if edges == geometry.EdgeNone {
		return t.BadgeMuted.Render("clear")
	}

	var parts []string
	for _, e := range []struct {
		flag  geometry.Edges
		label string
	}{
		{geometry.EdgeTop, "top"},
		{geometry.EdgeBottom, "bottom"},
		{geometry.EdgeLeft, "left"},
		{geometry.EdgeRight, "right"},
	} {
		if edges.Has(e.flag) {
			parts = append(parts, t.BadgeWarn.Render(e.label))
		}
	}
	return strings.Join(parts, " ")
}

// HoverBadge renders the hover state of the cursor over the target.
func (t *Theme) HoverBadge(over bool) string {
	if over {
		return t.Badge.Render("hover")
	}
	return t.BadgeMuted.Render("idle")
}
