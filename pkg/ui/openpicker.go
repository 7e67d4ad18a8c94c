package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessarin/mindcanvas/pkg/store"
)

// MapItem wraps store.MapInfo to implement list.Item
type MapItem struct {
	Info store.MapInfo
}

func (i MapItem) Title() string {
	return i.Info.Title
}

func (i MapItem) Description() string {
	return fmt.Sprintf("%d nodes • %s", i.Info.NodeCount, FormatTimeRel(i.Info.UpdatedAt))
}

func (i MapItem) FilterValue() string {
	return i.Info.Title + " " + string(i.Info.Kind)
}

// MapDelegate renders one saved map per row.
type MapDelegate struct {
	Theme Theme
}

func (d MapDelegate) Height() int {
	return 1
}

func (d MapDelegate) Spacing() int {
	return 0
}

func (d MapDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d MapDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(MapItem)
	if !ok {
		return
	}

	var baseStyle lipgloss.Style
	if index == m.Index() {
		baseStyle = SelectedItemStyle
	} else {
		baseStyle = ItemStyle
	}

	iconStr, iconColor := GetKindIcon(i.Info.Kind)
	icon := d.Theme.Renderer.NewStyle().Foreground(iconColor).Render(iconStr)

	count := d.Theme.Renderer.NewStyle().
		Foreground(d.Theme.Secondary).
		Render(fmt.Sprintf("%3d", i.Info.NodeCount))

	age := d.Theme.Renderer.NewStyle().
		Foreground(d.Theme.Subtext).
		Render(FormatTimeRel(i.Info.UpdatedAt))

	// Title column flexes; the rest is fixed width.
	titleWidth := m.Width() - 24
	if titleWidth < 10 {
		titleWidth = 10
	}
	titleStyle := d.Theme.Renderer.NewStyle().Width(titleWidth).MaxWidth(titleWidth)
	if index == m.Index() {
		titleStyle = titleStyle.Foreground(d.Theme.Primary).Bold(true)
	}
	title := titleStyle.Render(i.Info.Title)

	row := lipgloss.JoinHorizontal(lipgloss.Left, icon, " ", title, " ", count, "  ", age)
	fmt.Fprint(w, baseStyle.Render(row))
}

// OpenPickerModel provides a modal for opening a saved map.
type OpenPickerModel struct {
	list   list.Model
	theme  Theme
	width  int
	height int

	// Result
	done      bool
	cancelled bool
	choice    string
}

// NewOpenPickerModel creates a picker over the stored maps, most recently
// updated first (the order ListMaps returns).
func NewOpenPickerModel(infos []store.MapInfo, loc Localizer, theme Theme) OpenPickerModel {
	items := make([]list.Item, len(infos))
	for i, info := range infos {
		items[i] = MapItem{Info: info}
	}

	l := list.New(items, MapDelegate{Theme: theme}, 60, 14)
	l.Title = loc.T("openpicker.title")
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Renderer.NewStyle().Foreground(theme.Primary).Bold(true)

	return OpenPickerModel{
		list:  l,
		theme: theme,
	}
}

// Init implements tea.Model
func (m OpenPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m OpenPickerModel) Update(msg tea.Msg) (OpenPickerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch key.String() {
		case "esc":
			m.cancelled = true
			return m, nil
		case "enter":
			if item, ok := m.list.SelectedItem().(MapItem); ok {
				m.choice = item.Info.ID
				m.done = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m OpenPickerModel) View() string {
	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(m.list.View())
}

// SetSize sets the modal dimensions
func (m *OpenPickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	lw := width - 12
	if lw < 40 {
		lw = 40
	}
	lh := height - 8
	if lh < 8 {
		lh = 8
	}
	if lh > 18 {
		lh = 18
	}
	m.list.SetSize(lw, lh)
}

// IsDone returns true once a map was chosen
func (m OpenPickerModel) IsDone() bool {
	return m.done
}

// IsCancelled returns true if the user backed out
func (m OpenPickerModel) IsCancelled() bool {
	return m.cancelled
}

// Choice returns the chosen map ID
func (m OpenPickerModel) Choice() string {
	return m.choice
}
