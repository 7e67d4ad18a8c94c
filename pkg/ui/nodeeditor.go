package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Node text length limits. The hard cap stops runaway input; the soft
// thresholds only recolor the counter to nudge toward concise labels.
const (
	maxNodeTextLen  = 500
	nodeTextComfort = 100
	nodeTextCrowded = 200
)

// NodeEditorModel provides a modal for editing the text of a single node.
type NodeEditorModel struct {
	textarea textarea.Model
	nodeID   string
	width    int
	height   int
	theme    Theme
	loc      Localizer

	// Transient feedback line: empty-submit warning or copy confirmation.
	notice string

	// Result
	submitted bool
	cancelled bool
	text      string
}

// NewNodeEditorModel creates an editor modal preloaded with the node's
// current text, cursor at the end.
func NewNodeEditorModel(nodeID, initial string, loc Localizer, theme Theme) NodeEditorModel {
	ta := textarea.New()
	ta.Placeholder = loc.T("editor.placeholder")
	ta.Focus()
	ta.CharLimit = maxNodeTextLen
	ta.SetWidth(50)
	ta.SetHeight(5)
	ta.SetValue(initial)

	return NodeEditorModel{
		textarea: ta,
		nodeID:   nodeID,
		theme:    theme,
		loc:      loc,
	}
}

// Init implements tea.Model
func (m NodeEditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m NodeEditorModel) Update(msg tea.Msg) (NodeEditorModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.cancelled = true
			return m, nil
		case "ctrl+enter", "ctrl+s", "ctrl+j":
			// ctrl+j is alternate for terminals that don't support ctrl+enter
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" {
				m.notice = m.loc.T("editor.empty_notice")
				return m, nil
			}
			m.submitted = true
			m.text = text
			return m, nil
		case "ctrl+y":
			if err := clipboard.WriteAll(m.textarea.Value()); err == nil {
				m.notice = m.loc.T("editor.copied")
			}
			return m, nil
		default:
			m.notice = ""
		}
	}

	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m NodeEditorModel) View() string {
	var b strings.Builder

	// Modal box
	width := 60
	if m.width > 0 && m.width < 70 {
		width = m.width - 10
	}

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		Width(width).
		Align(lipgloss.Center)
	b.WriteString(titleStyle.Render(m.loc.T("editor.title")))
	b.WriteString("\n\n")

	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	b.WriteString(m.renderCounter())
	b.WriteString("\n")

	if m.notice != "" {
		noticeStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Warning)
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	hintStyle := m.theme.Renderer.NewStyle().Faint(true)
	b.WriteString(hintStyle.Render("[Ctrl+Enter/Ctrl+J] " + m.loc.T("editor.hint_save") +
		"  [Ctrl+Y] ⧉  [Esc] " + m.loc.T("editor.hint_cancel")))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(b.String())
}

// renderCounter shows rune usage against the hard cap, colored by how
// crowded the label is getting.
func (m NodeEditorModel) renderCounter() string {
	n := len([]rune(m.textarea.Value()))

	color := m.theme.Success
	switch {
	case n > nodeTextCrowded:
		color = m.theme.Danger
	case n > nodeTextComfort:
		color = m.theme.Warning
	}

	counter := m.theme.Renderer.NewStyle().Foreground(color)
	return counter.Render(fmt.Sprintf("%d/%d", n, maxNodeTextLen))
}

// SetSize sets the modal dimensions
func (m *NodeEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	taWidth := width - 20
	if taWidth < 30 {
		taWidth = 30
	}
	if taWidth > 60 {
		taWidth = 60
	}
	m.textarea.SetWidth(taWidth)
}

// IsSubmitted returns true if the user submitted non-empty text
func (m NodeEditorModel) IsSubmitted() bool {
	return m.submitted
}

// IsCancelled returns true if the user cancelled
func (m NodeEditorModel) IsCancelled() bool {
	return m.cancelled
}

// Text returns the submitted node text, trimmed of surrounding whitespace
func (m NodeEditorModel) Text() string {
	return m.text
}

// NodeID returns the node being edited
func (m NodeEditorModel) NodeID() string {
	return m.nodeID
}

// Notice returns the current feedback line, if any
func (m NodeEditorModel) Notice() string {
	return m.notice
}

// Reset prepares the modal for reuse
func (m *NodeEditorModel) Reset() {
	m.submitted = false
	m.cancelled = false
	m.text = ""
	m.notice = ""
	m.textarea.Reset()
}
