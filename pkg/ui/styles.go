package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessarin/mindcanvas/pkg/model"
	"github.com/tessarin/mindcanvas/pkg/toolbar"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
	SpaceXL = 6
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired with extended semantic colors
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgDark      = lipgloss.Color("#1E1F29")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Primary accent colors
	ColorPrimary   = lipgloss.Color("#BD93F9")
	ColorSecondary = lipgloss.Color("#6272A4")
	ColorInfo      = lipgloss.Color("#8BE9FD")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorWarning   = lipgloss.Color("#FFB86C")
	ColorDanger    = lipgloss.Color("#FF5555")
	ColorAccent    = lipgloss.Color("#FF79C6")

	// Layout tier colors, widest to narrowest
	ColorTierFull    = lipgloss.Color("#50FA7B")
	ColorTierLarge   = lipgloss.Color("#8BE9FD")
	ColorTierCompact = lipgloss.Color("#F1FA8C")
	ColorTierMinimal = lipgloss.Color("#FFB86C")
	ColorTierMobile  = lipgloss.Color("#FF79C6")

	// Tier badge background colors
	ColorTierFullBg    = lipgloss.Color("#1A3D2A")
	ColorTierLargeBg   = lipgloss.Color("#1A3344")
	ColorTierCompactBg = lipgloss.Color("#3D3D1A")
	ColorTierMinimalBg = lipgloss.Color("#3D2A1A")
	ColorTierMobileBg  = lipgloss.Color("#3D1A2E")

	// Map kind colors
	ColorKindMindMap = lipgloss.Color("#BD93F9")
	ColorKindTree    = lipgloss.Color("#50FA7B")
	ColorKindBubble  = lipgloss.Color("#8BE9FD")
	ColorKindFlow    = lipgloss.Color("#FFB86C")
	ColorKindOther   = lipgloss.Color("#F1FA8C")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL AND LIST STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	// PanelStyle is the default style for unfocused panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#44475A"))

	// FocusedPanelStyle is the style for focused panels
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#BD93F9"))

	// ItemStyle is the default style for list rows
	ItemStyle = lipgloss.NewStyle().PaddingLeft(2)

	// SelectedItemStyle is the style for the row under the cursor
	SelectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(ColorPrimary).
				Bold(true)
)

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING
// ══════════════════════════════════════════════════════════════════════════════

// TierColor returns the accent color for a layout tier.
func TierColor(tier toolbar.Tier) lipgloss.Color {
	switch tier {
	case toolbar.TierFull:
		return ColorTierFull
	case toolbar.TierLarge:
		return ColorTierLarge
	case toolbar.TierCompact:
		return ColorTierCompact
	case toolbar.TierMinimal:
		return ColorTierMinimal
	case toolbar.TierMobile:
		return ColorTierMobile
	}
	return ColorMuted
}

// RenderTierBadge returns a styled badge naming the active layout tier.
func RenderTierBadge(tier toolbar.Tier) string {
	var fg, bg lipgloss.Color
	switch tier {
	case toolbar.TierFull:
		fg, bg = ColorTierFull, ColorTierFullBg
	case toolbar.TierLarge:
		fg, bg = ColorTierLarge, ColorTierLargeBg
	case toolbar.TierCompact:
		fg, bg = ColorTierCompact, ColorTierCompactBg
	case toolbar.TierMinimal:
		fg, bg = ColorTierMinimal, ColorTierMinimalBg
	case toolbar.TierMobile:
		fg, bg = ColorTierMobile, ColorTierMobileBg
	default:
		fg, bg = ColorMuted, ColorBgSubtle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(tier.String()))
}

// RenderCountBadge renders a small count like "(4)" for collapsed groups.
func RenderCountBadge(n int) string {
	return lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(fmt.Sprintf("(%d)", n))
}

// GetKindIcon returns a glyph and color for a map kind.
func GetKindIcon(kind model.MapKind) (string, lipgloss.Color) {
	switch kind {
	case model.KindMindMap:
		return "◉", ColorKindMindMap
	case model.KindTreeMap:
		return "Ψ", ColorKindTree
	case model.KindBubbleMap, model.KindCircleMap:
		return "○", ColorKindBubble
	case model.KindFlowMap:
		return "→", ColorKindFlow
	case model.KindBraceMap:
		return "{", ColorKindOther
	case model.KindConceptMap:
		return "∞", ColorKindOther
	}
	return "◌", ColorMuted
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND FORMATTING
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots
func RenderSubtleDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("·", width))
}

// FormatTimeRel formats a timestamp relative to now, like "3h ago".
func FormatTimeRel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("2006-01-02")
}
