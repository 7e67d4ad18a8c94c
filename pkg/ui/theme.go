package ui

import "github.com/charmbracelet/lipgloss"

// Theme carries the renderer and the semantic colors shared by every
// component. Components never pick raw colors; they go through the theme so
// light and dark terminals both work.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor

	Base lipgloss.Style
}

// DefaultTheme returns the Dracula-flavored theme the canvas ships with.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#BFBFBF"},
		Border:    lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#44475A"},
		Success:   lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#50FA7B"},
		Warning:   lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FFB86C"},
		Danger:    lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"},
		Info:      lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#8BE9FD"},
		Base:      r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#F8F8F2"}),
	}
}

// Localizer resolves message keys to display text in the current language.
// Current reports the active language code so language-sensitive components
// can react to switches.
type Localizer interface {
	T(key string) string
	Current() string
}
