package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessarin/mindcanvas/pkg/i18n"
)

// LanguagePickerModel provides a modal for switching the display language.
type LanguagePickerModel struct {
	form   *huh.Form
	theme  Theme
	width  int
	height int

	// Result
	done      bool
	cancelled bool
}

// NewLanguagePickerModel creates a picker listing every supported language,
// with the active one preselected.
func NewLanguagePickerModel(current string, loc Localizer, theme Theme) LanguagePickerModel {
	langs := i18n.Supported()
	opts := make([]huh.Option[string], 0, len(langs))
	for _, l := range langs {
		opt := huh.NewOption(l.Name, l.Code)
		if l.Code == current {
			opt = opt.Selected(true)
		}
		opts = append(opts, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("language").
				Title(loc.T("langpicker.title")).
				Options(opts...),
		),
	).
		WithShowHelp(false).
		WithWidth(40).
		WithTheme(huh.ThemeDracula())

	return LanguagePickerModel{
		form:  form,
		theme: theme,
	}
}

// Init implements tea.Model
func (m LanguagePickerModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m LanguagePickerModel) Update(msg tea.Msg) (LanguagePickerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.cancelled = true
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
	case huh.StateAborted:
		m.cancelled = true
	}
	return m, cmd
}

// View implements tea.Model
func (m LanguagePickerModel) View() string {
	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(m.form.View())
}

// SetSize sets the modal dimensions
func (m *LanguagePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsDone returns true once a language was chosen
func (m LanguagePickerModel) IsDone() bool {
	return m.done
}

// IsCancelled returns true if the user backed out
func (m LanguagePickerModel) IsCancelled() bool {
	return m.cancelled
}

// Choice returns the chosen language code
func (m LanguagePickerModel) Choice() string {
	return m.form.GetString("language")
}
