package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tessarin/mindcanvas/pkg/toolbar"
)

// maxChipLabelWidth bounds group labels in mobile chips so a long localized
// label cannot push the other groups off screen.
const maxChipLabelWidth = 16

// RenderToolbar draws one toolbar row from a responsive snapshot. The
// snapshot already carries tier-resolved state (label visibility, localized
// text, collapsed flags), so this function only decides presentation:
//
//	Full/Large   group labels plus glyph+text buttons
//	Compact      glyph+text buttons, no group labels
//	Minimal      glyph-only buttons, except the assistant which keeps its text
//	Mobile       collapsible chips, expanded groups show glyph-only buttons
func RenderToolbar(s toolbar.Snapshot, width int, t Theme) string {
	lead := renderSection(s.Sections[toolbar.SectionLeading], s.Tier, t)
	center := renderSection(s.Sections[toolbar.SectionCenter], s.Tier, t)
	trail := renderSection(s.Sections[toolbar.SectionTrailing], s.Tier, t)

	bar := spreadSections(lead, center, trail, width)
	return t.Renderer.NewStyle().MaxWidth(width).Render(bar)
}

// spreadSections lays the three sections across the row: leading left,
// center centered, trailing right. Falls back to simple joining when the
// row is too narrow to spread.
func spreadSections(lead, center, trail string, width int) string {
	lw := lipgloss.Width(lead)
	cw := lipgloss.Width(center)
	tw := lipgloss.Width(trail)

	if lw+cw+tw+2*SpaceSM > width {
		return strings.TrimSpace(lead + "  " + center + "  " + trail)
	}

	leftPad := (width-cw)/2 - lw
	if leftPad < SpaceSM {
		leftPad = SpaceSM
	}
	rightPad := width - lw - leftPad - cw - tw
	if rightPad < SpaceSM {
		rightPad = SpaceSM
	}
	return lead + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + trail
}

func renderSection(groups []toolbar.GroupView, tier toolbar.Tier, t Theme) string {
	if len(groups) == 0 {
		return ""
	}
	divider := t.Renderer.NewStyle().Foreground(t.Border).Render(" │ ")

	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, renderGroup(g, tier, t))
	}
	return strings.Join(parts, divider)
}

func renderGroup(g toolbar.GroupView, tier toolbar.Tier, t Theme) string {
	if tier == toolbar.TierMobile {
		return renderMobileChip(g, t)
	}

	var parts []string
	if g.LabelVisible && g.Label != "" {
		labelStyle := t.Renderer.NewStyle().Foreground(t.Secondary).Bold(true)
		parts = append(parts, labelStyle.Render(g.Label))
	}
	for _, b := range g.Buttons {
		parts = append(parts, renderButton(b, tier, t))
	}
	return strings.Join(parts, " ")
}

// renderMobileChip draws one collapsible group. Collapsed groups show only
// the label and a button count; expanded groups append glyph-only buttons.
func renderMobileChip(g toolbar.GroupView, t Theme) string {
	label := runewidth.Truncate(g.Label, maxChipLabelWidth, "…")
	labelStyle := t.Renderer.NewStyle().Foreground(t.Secondary).Bold(true)

	if g.Collapsed {
		return t.Renderer.NewStyle().Foreground(t.Subtext).Render("▸ ") +
			labelStyle.Render(label) + " " + RenderCountBadge(len(g.Buttons))
	}

	parts := []string{
		t.Renderer.NewStyle().Foreground(t.Primary).Render("▾ ") + labelStyle.Render(label),
	}
	glyphStyle := t.Renderer.NewStyle().Foreground(t.Primary)
	for _, b := range g.Buttons {
		parts = append(parts, glyphStyle.Render(b.Glyph))
	}
	return strings.Join(parts, " ")
}

func renderButton(b toolbar.ButtonView, tier toolbar.Tier, t Theme) string {
	glyph := t.Renderer.NewStyle().Foreground(t.Primary).Render(b.Glyph)

	// Minimal keeps only the assistant's (abbreviated) text visible.
	if tier == toolbar.TierMinimal && b.ID != toolbar.ButtonAssistant {
		return glyph
	}
	if b.Text == "" {
		return glyph
	}
	return glyph + " " + t.Base.Render(b.Text)
}
