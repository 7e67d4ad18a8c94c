package ui

import (
	"embed"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

//go:embed guides/*.md
var guideFS embed.FS

// GuideModel shows the user guide as a markdown overlay. The guide follows
// the active display language; languages without a translated guide fall
// back to the English one.
type GuideModel struct {
	visible bool
	width   int
	height  int
	theme   Theme
	loc     Localizer

	// Rendered markdown is cached per language and wrap width.
	rendered      string
	renderedLang  string
	renderedWidth int
}

// NewGuideModel creates a hidden guide overlay.
func NewGuideModel(loc Localizer, theme Theme) GuideModel {
	m := GuideModel{
		theme: theme,
		loc:   loc,
	}
	m.warm()
	return m
}

// Show makes the guide visible
func (m *GuideModel) Show() {
	if m.renderedLang != m.loc.Current() {
		m.warm()
	}
	m.visible = true
}

// Hide makes the guide invisible
func (m *GuideModel) Hide() {
	m.visible = false
}

// Toggle toggles visibility
func (m *GuideModel) Toggle() {
	if m.visible {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsVisible returns true if the guide is showing
func (m GuideModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *GuideModel) SetSize(width, height int) {
	changed := m.width != width
	m.width = width
	m.height = height
	if changed {
		m.warm()
	}
}

// Update handles input
func (m GuideModel) Update(msg tea.Msg) (GuideModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes the guide
		m.visible = false
	}

	return m, nil
}

// View renders the guide overlay
func (m GuideModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary)
	b.WriteString(titleStyle.Render(m.loc.T("guide.title")))
	b.WriteString("\n")

	b.WriteString(m.content())
	b.WriteString("\n")

	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[" + m.loc.T("guide.close") + "]"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// content returns the rendered guide for the active language, re-rendering
// only when the language or the wrap width changed.
func (m GuideModel) content() string {
	lang := m.loc.Current()
	wrap := m.wrapWidth()
	if m.rendered != "" && m.renderedLang == lang && m.renderedWidth == wrap {
		return m.rendered
	}
	return renderGuideMarkdown(guideSource(lang), wrap)
}

// warm pre-renders the guide so the first Show does not stall.
func (m *GuideModel) warm() {
	m.renderedLang = m.loc.Current()
	m.renderedWidth = m.wrapWidth()
	m.rendered = renderGuideMarkdown(guideSource(m.renderedLang), m.renderedWidth)
}

func (m GuideModel) wrapWidth() int {
	wrap := m.width - 8
	if wrap > 76 {
		wrap = 76
	}
	if wrap < 30 {
		wrap = 30
	}
	return wrap
}

// guideSource loads the markdown for the given language, falling back to
// English when no translation ships.
func guideSource(lang string) string {
	data, err := guideFS.ReadFile("guides/" + lang + ".md")
	if err != nil {
		data, err = guideFS.ReadFile("guides/en.md")
		if err != nil {
			return ""
		}
	}
	return string(data)
}

// renderGuideMarkdown styles markdown for the terminal. On any renderer
// error the raw markdown is still readable, so return it as-is.
func renderGuideMarkdown(md string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
