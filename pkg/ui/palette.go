package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Command is one palette entry: a toolbar action with its localized title.
type Command struct {
	ID    string
	Glyph string
	Title string
}

// maxPaletteRows caps how many matches the palette shows at once.
const maxPaletteRows = 8

// CommandPaletteModel provides fuzzy search over every toolbar action.
type CommandPaletteModel struct {
	input    textinput.Model
	commands []Command
	filtered []Command
	cursor   int
	theme    Theme
	width    int

	// Result
	done      bool
	cancelled bool
	choice    string
}

// NewCommandPaletteModel creates a palette over the given commands.
func NewCommandPaletteModel(commands []Command, loc Localizer, theme Theme) CommandPaletteModel {
	ti := textinput.New()
	ti.Placeholder = loc.T("palette.placeholder")
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return CommandPaletteModel{
		input:    ti,
		commands: commands,
		filtered: append([]Command{}, commands...),
		theme:    theme,
	}
}

// Init implements tea.Model
func (m CommandPaletteModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m CommandPaletteModel) Update(msg tea.Msg) (CommandPaletteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.cancelled = true
			return m, nil
		case "enter":
			if len(m.filtered) > 0 {
				m.choice = m.filtered[m.cursor].ID
				m.done = true
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filterCommands()
	return m, cmd
}

// filterCommands rebuilds the match list for the current query and resets
// the selection to the top.
func (m *CommandPaletteModel) filterCommands() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = append([]Command{}, m.commands...)
		m.cursor = 0
		return
	}

	searchStrings := make([]string, len(m.commands))
	for i, c := range m.commands {
		searchStrings[i] = c.Title + " " + c.ID
	}
	matches := fuzzy.Find(query, searchStrings)

	m.filtered = make([]Command, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, m.commands[match.Index])
	}
	m.cursor = 0
}

// View implements tea.Model
func (m CommandPaletteModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	glyphStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)
	rowStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	selStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)

	rows := m.filtered
	if len(rows) > maxPaletteRows {
		rows = rows[:maxPaletteRows]
	}
	for i, c := range rows {
		line := glyphStyle.Render(c.Glyph) + " " + c.Title
		if i == m.cursor {
			b.WriteString(selStyle.Render("▸ " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(rowStyle.Render("  ∅"))
		b.WriteString("\n")
	}

	countStyle := m.theme.Renderer.NewStyle().Faint(true)
	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d/%d", len(m.filtered), len(m.commands))))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// SetSize sets the modal dimensions
func (m *CommandPaletteModel) SetSize(width, height int) {
	m.width = width

	inputWidth := width - 24
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 48 {
		inputWidth = 48
	}
	m.input.Width = inputWidth
}

// IsDone returns true once a command was chosen
func (m CommandPaletteModel) IsDone() bool {
	return m.done
}

// IsCancelled returns true if the user backed out
func (m CommandPaletteModel) IsCancelled() bool {
	return m.cancelled
}

// Choice returns the chosen command ID
func (m CommandPaletteModel) Choice() string {
	return m.choice
}

// Reset clears the query and result state for reuse
func (m *CommandPaletteModel) Reset() {
	m.done = false
	m.cancelled = false
	m.choice = ""
	m.cursor = 0
	m.input.Reset()
	m.filtered = append([]Command{}, m.commands...)
}
