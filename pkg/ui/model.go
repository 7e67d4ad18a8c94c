package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessarin/mindcanvas/pkg/export"
	"github.com/tessarin/mindcanvas/pkg/i18n"
	"github.com/tessarin/mindcanvas/pkg/model"
	"github.com/tessarin/mindcanvas/pkg/store"
	"github.com/tessarin/mindcanvas/pkg/toolbar"
	"github.com/tessarin/mindcanvas/pkg/viewportpx"
)

// LayoutAppliedMsg is sent into the program whenever the layout engine
// finishes an apply pass, so the toolbar repaints with fresh state.
type LayoutAppliedMsg struct {
	Tier toolbar.Tier
}

// statusClearMsg expires a transient status line.
type statusClearMsg struct {
	seq int
}

// exportDoneMsg reports a finished snapshot export.
type exportDoneMsg struct {
	paths []string
	err   error
}

// statusLinger is how long a transient status message stays visible.
const statusLinger = 3 * time.Second

// maxHistory caps the undo stack.
const maxHistory = 50

// flatNode is a single row of the flattened map tree.
type flatNode struct {
	Node       *model.Node
	TreePrefix string
	Depth      int
}

// CanvasOptions wires the canvas to the rest of the studio.
type CanvasOptions struct {
	Doc         *model.Map
	Store       *store.Store
	Localizer   *i18n.Manager
	Manager     *toolbar.Manager
	Toolbar     *toolbar.Toolbar
	Theme       Theme
	ExportDir   string
	CellWidthPx int
}

// CanvasModel is the main model of the studio: the map outline under the
// responsive toolbar, plus every modal that can sit on top.
type CanvasModel struct {
	theme Theme
	loc   *i18n.Manager
	mgr   *toolbar.Manager
	tb    *toolbar.Toolbar
	st    *store.Store

	doc    *model.Map
	flat   []flatNode
	cursor int
	scroll int

	undoStack []*model.Map
	redoStack []*model.Map

	exportDir   string
	cellWidthPx int

	width  int
	height int

	status    string
	statusSeq int

	// Node editor modal
	editor     NodeEditorModel
	showEditor bool
	pendingNew string // node created just before the editor opened; removed on cancel

	// Other overlays
	guide       GuideModel
	picker      LanguagePickerModel
	showPicker  bool
	palette     CommandPaletteModel
	showPalette bool
	opener      OpenPickerModel
	showOpener  bool

	quitting bool
}

// NewCanvasModel creates the studio model.
func NewCanvasModel(opts CanvasOptions) *CanvasModel {
	theme := opts.Theme
	if theme.Renderer == nil {
		theme = DefaultTheme(nil)
	}
	doc := opts.Doc
	if doc == nil {
		doc = model.Sample()
	}

	m := &CanvasModel{
		theme:       theme,
		loc:         opts.Localizer,
		mgr:         opts.Manager,
		tb:          opts.Toolbar,
		st:          opts.Store,
		doc:         doc,
		exportDir:   opts.ExportDir,
		cellWidthPx: opts.CellWidthPx,
		guide:       NewGuideModel(opts.Localizer, theme),
	}
	m.rebuildFlat()
	return m
}

// rebuildFlat flattens the map tree into display rows
func (m *CanvasModel) rebuildFlat() {
	m.flat = m.flat[:0]
	root := m.doc.Root()
	if root == nil {
		m.cursor = 0
		return
	}
	m.flat = append(m.flat, flatNode{Node: root})
	m.appendChildren(root.ID, nil)

	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *CanvasModel) appendChildren(parentID string, ancestors []bool) {
	children := m.doc.Children(parentID)
	for i, c := range children {
		last := i == len(children)-1

		var prefix strings.Builder
		for _, ancestorLast := range ancestors {
			if ancestorLast {
				prefix.WriteString("   ")
			} else {
				prefix.WriteString("│  ")
			}
		}
		if last {
			prefix.WriteString("└─ ")
		} else {
			prefix.WriteString("├─ ")
		}

		m.flat = append(m.flat, flatNode{
			Node:       c,
			TreePrefix: prefix.String(),
			Depth:      len(ancestors) + 1,
		})

		next := make([]bool, len(ancestors)+1)
		copy(next, ancestors)
		next[len(ancestors)] = last
		m.appendChildren(c.ID, next)
	}
}

// selected returns the node under the cursor, or nil for an empty canvas.
func (m *CanvasModel) selected() *model.Node {
	if m.cursor < 0 || m.cursor >= len(m.flat) {
		return nil
	}
	return m.flat[m.cursor].Node
}

// SetSize stores the new terminal size and feeds the estimated pixel width
// into the layout engine.
func (m *CanvasModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	if m.mgr != nil {
		m.mgr.NotifyResize(viewportpx.Width(width, m.cellWidthPx))
	}

	m.editor.SetSize(width, height)
	m.guide.SetSize(width, height)
	m.picker.SetSize(width, height)
	m.palette.SetSize(width, height)
	m.opener.SetSize(width, height)
	m.ensureVisible()
}

// Init implements tea.Model
func (m *CanvasModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *CanvasModel) Update(msg tea.Msg) (*CanvasModel, tea.Cmd) {
	switch msg := msg.(type) {
	case LayoutAppliedMsg:
		// Snapshot-based rendering picks the new state up on this repaint.
		return m, nil
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			return m, m.setStatus("✗ " + msg.err.Error())
		}
		return m, m.setStatus(m.loc.T("status.exported"))
	}

	// Guide overlay swallows all keys
	if m.guide.IsVisible() {
		var cmd tea.Cmd
		m.guide, cmd = m.guide.Update(msg)
		return m, cmd
	}

	if m.showEditor {
		return m.updateEditor(msg)
	}
	if m.showPicker {
		return m.updateLanguagePicker(msg)
	}
	if m.showPalette {
		return m.updatePalette(msg)
	}
	if m.showOpener {
		return m.updateOpenPicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *CanvasModel) updateEditor(msg tea.Msg) (*CanvasModel, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if m.editor.IsSubmitted() {
		id, text := m.editor.NodeID(), m.editor.Text()
		if m.pendingNew == "" {
			// Edit of an existing node is its own undo step. A fresh
			// node's step was already pushed when it was added.
			m.pushUndo()
		}
		m.pendingNew = ""
		_ = m.doc.SetText(id, text)
		m.rebuildFlat()
		m.showEditor = false
		m.editor.Reset()
		return m, m.persist()
	}

	if m.editor.IsCancelled() {
		if m.pendingNew != "" {
			// Abort the add entirely, including its undo entry.
			_ = m.doc.Remove(m.pendingNew)
			if n := len(m.undoStack); n > 0 {
				m.undoStack = m.undoStack[:n-1]
			}
			m.pendingNew = ""
			m.rebuildFlat()
		}
		m.showEditor = false
		m.editor.Reset()
		return m, nil
	}

	return m, cmd
}

func (m *CanvasModel) updateLanguagePicker(msg tea.Msg) (*CanvasModel, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if m.picker.IsDone() {
		m.showPicker = false
		if err := m.loc.SetLanguage(m.picker.Choice()); err == nil {
			// The engine re-resolves toolbar text through its language
			// listener before SetLanguage returns.
			return m, m.setStatus(m.loc.T("status.language_set"))
		}
		return m, nil
	}
	if m.picker.IsCancelled() {
		m.showPicker = false
		return m, nil
	}
	return m, cmd
}

func (m *CanvasModel) updatePalette(msg tea.Msg) (*CanvasModel, tea.Cmd) {
	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)

	if m.palette.IsDone() {
		choice := m.palette.Choice()
		m.showPalette = false
		m.palette.Reset()
		return m.dispatch(choice)
	}
	if m.palette.IsCancelled() {
		m.showPalette = false
		m.palette.Reset()
		return m, nil
	}
	return m, cmd
}

func (m *CanvasModel) updateOpenPicker(msg tea.Msg) (*CanvasModel, tea.Cmd) {
	var cmd tea.Cmd
	m.opener, cmd = m.opener.Update(msg)

	if m.opener.IsDone() {
		m.showOpener = false
		mp, err := m.st.LoadMap(m.opener.Choice())
		if err != nil {
			return m, m.setStatus("✗ " + err.Error())
		}
		m.doc = mp
		m.undoStack = nil
		m.redoStack = nil
		m.cursor = 0
		m.scroll = 0
		m.rebuildFlat()
		return m, m.setStatus(m.loc.T("status.opened"))
	}
	if m.opener.IsCancelled() {
		m.showOpener = false
		return m, nil
	}
	return m, cmd
}

func (m *CanvasModel) handleKey(msg tea.KeyMsg) (*CanvasModel, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.flat)-1 {
			m.cursor++
			m.ensureVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
	case "g":
		m.cursor = 0
		m.ensureVisible()
	case "G":
		if len(m.flat) > 0 {
			m.cursor = len(m.flat) - 1
			m.ensureVisible()
		}

	case "e", "enter":
		return m, m.startEdit()
	case "a":
		return m, m.startAddNode()
	case "d":
		return m, m.deleteSelected()
	case "u":
		return m, m.undo()
	case "ctrl+r":
		return m, m.redo()

	case "s":
		return m, tea.Batch(m.persist(), m.setStatus(m.loc.T("status.saved")))
	case "o":
		return m, m.openOpenPicker()
	case "x":
		return m, m.exportSnapshots()
	case "L":
		return m, m.openLanguagePicker()
	case "ctrl+p":
		return m, m.openPalette()
	case "?":
		m.guide.Show()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.toggleGroupByIndex(int(key[0] - '1'))
	}
	return m, nil
}

// dispatch runs a toolbar action chosen from the command palette.
func (m *CanvasModel) dispatch(buttonID string) (*CanvasModel, tea.Cmd) {
	switch buttonID {
	case toolbar.ButtonNew:
		m.newMap()
		return m, m.persist()
	case toolbar.ButtonOpen:
		return m, m.openOpenPicker()
	case toolbar.ButtonSave:
		return m, tea.Batch(m.persist(), m.setStatus(m.loc.T("status.saved")))
	case toolbar.ButtonExport:
		return m, m.exportSnapshots()
	case toolbar.ButtonUndo:
		return m, m.undo()
	case toolbar.ButtonRedo:
		return m, m.redo()
	case toolbar.ButtonDelete:
		return m, m.deleteSelected()
	case toolbar.ButtonAddNode:
		return m, m.startAddNode()
	case toolbar.ButtonEditText:
		return m, m.startEdit()
	case toolbar.ButtonAutoLayout:
		return m, m.autoLayout()
	case toolbar.ButtonLearn:
		_ = export.OpenInBrowser("https://github.com/tessarin/mindcanvas")
	case toolbar.ButtonGuide, toolbar.ButtonHelp:
		m.guide.Show()
	case toolbar.ButtonLanguage:
		return m, m.openLanguagePicker()
	}
	return m, nil
}

// ════════════════════════════════════════════════════════════════════════
// ACTIONS
// ════════════════════════════════════════════════════════════════════════

func (m *CanvasModel) startEdit() tea.Cmd {
	n := m.selected()
	if n == nil {
		return nil
	}
	m.pendingNew = ""
	m.editor = NewNodeEditorModel(n.ID, n.Text, m.loc, m.theme)
	m.editor.SetSize(m.width, m.height)
	m.showEditor = true
	return m.editor.Init()
}

func (m *CanvasModel) startAddNode() tea.Cmd {
	parent := m.selected()
	if parent == nil {
		return nil
	}
	m.pushUndo()
	child, err := m.doc.AddChild(parent.ID, "")
	if err != nil {
		if n := len(m.undoStack); n > 0 {
			m.undoStack = m.undoStack[:n-1]
		}
		return m.setStatus("✗ " + err.Error())
	}
	m.rebuildFlat()
	for i, fn := range m.flat {
		if fn.Node.ID == child.ID {
			m.cursor = i
			break
		}
	}
	m.ensureVisible()

	m.pendingNew = child.ID
	m.editor = NewNodeEditorModel(child.ID, "", m.loc, m.theme)
	m.editor.SetSize(m.width, m.height)
	m.showEditor = true
	return m.editor.Init()
}

func (m *CanvasModel) deleteSelected() tea.Cmd {
	n := m.selected()
	if n == nil {
		return nil
	}
	m.pushUndo()
	if err := m.doc.Remove(n.ID); err != nil {
		if l := len(m.undoStack); l > 0 {
			m.undoStack = m.undoStack[:l-1]
		}
		return m.setStatus("✗ " + err.Error())
	}
	if m.cursor > 0 {
		m.cursor--
	}
	m.rebuildFlat()
	m.ensureVisible()
	return tea.Batch(m.persist(), m.setStatus(m.loc.T("status.deleted")))
}

func (m *CanvasModel) undo() tea.Cmd {
	if len(m.undoStack) == 0 {
		return nil
	}
	m.redoStack = append(m.redoStack, m.doc)
	m.doc = m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.rebuildFlat()
	m.ensureVisible()
	return tea.Batch(m.persist(), m.setStatus(m.loc.T("status.undone")))
}

func (m *CanvasModel) redo() tea.Cmd {
	if len(m.redoStack) == 0 {
		return nil
	}
	m.undoStack = append(m.undoStack, m.doc)
	m.doc = m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.rebuildFlat()
	m.ensureVisible()
	return tea.Batch(m.persist(), m.setStatus(m.loc.T("status.redone")))
}

// autoLayout renumbers sibling order to a clean consecutive run under every
// parent, the outline equivalent of re-running the canvas layout.
func (m *CanvasModel) autoLayout() tea.Cmd {
	m.pushUndo()
	for _, n := range m.doc.Nodes {
		for i, c := range m.doc.Children(n.ID) {
			c.Order = i
		}
	}
	m.rebuildFlat()
	return tea.Batch(m.persist(), m.setStatus(m.loc.T("status.arranged")))
}

func (m *CanvasModel) newMap() {
	m.doc = model.NewMap(m.loc.T("map.untitled"), model.KindMindMap, m.loc.Current())
	m.undoStack = nil
	m.redoStack = nil
	m.cursor = 0
	m.scroll = 0
	m.rebuildFlat()
}

func (m *CanvasModel) exportSnapshots() tea.Cmd {
	doc := m.doc.Clone()
	dir := m.exportDir
	base := slugify(doc.Title)
	return func() tea.Msg {
		paths, err := export.SaveMapSnapshotAll(dir, base, doc)
		return exportDoneMsg{paths: paths, err: err}
	}
}

func (m *CanvasModel) openLanguagePicker() tea.Cmd {
	m.picker = NewLanguagePickerModel(m.loc.Current(), m.loc, m.theme)
	m.picker.SetSize(m.width, m.height)
	m.showPicker = true
	return m.picker.Init()
}

func (m *CanvasModel) openOpenPicker() tea.Cmd {
	if m.st == nil {
		return nil
	}
	infos, err := m.st.ListMaps()
	if err != nil {
		return m.setStatus("✗ " + err.Error())
	}
	m.opener = NewOpenPickerModel(infos, m.loc, m.theme)
	m.opener.SetSize(m.width, m.height)
	m.showOpener = true
	return m.opener.Init()
}

func (m *CanvasModel) openPalette() tea.Cmd {
	m.palette = NewCommandPaletteModel(m.commands(), m.loc, m.theme)
	m.palette.SetSize(m.width, m.height)
	m.showPalette = true
	return m.palette.Init()
}

// commands lists every toolbar button as a palette entry. The assistant
// button has no action, so it stays out.
func (m *CanvasModel) commands() []Command {
	var out []Command
	for _, g := range m.tb.Groups() {
		for _, b := range g.Buttons() {
			if b.LabelKey == "" {
				continue
			}
			out = append(out, Command{
				ID:    b.ID,
				Glyph: b.Glyph,
				Title: m.loc.T(b.LabelKey),
			})
		}
	}
	return out
}

// toggleGroupByIndex collapses or expands the nth toolbar group. Only
// meaningful in the mobile tier; the engine rejects it elsewhere.
func (m *CanvasModel) toggleGroupByIndex(idx int) {
	groups := m.tb.Groups()
	if idx < 0 || idx >= len(groups) {
		return
	}
	m.mgr.ToggleGroup(groups[idx].ID)
}

func (m *CanvasModel) pushUndo() {
	m.undoStack = append(m.undoStack, m.doc.Clone())
	if len(m.undoStack) > maxHistory {
		m.undoStack = m.undoStack[1:]
	}
	m.redoStack = nil
}

// persist writes the map to the store. Mutations save eagerly so a killed
// terminal never loses work; the explicit save key only adds feedback.
func (m *CanvasModel) persist() tea.Cmd {
	if m.st == nil {
		return nil
	}
	if err := m.st.SaveMap(m.doc); err != nil {
		return m.setStatus("✗ " + err.Error())
	}
	return nil
}

func (m *CanvasModel) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusLinger, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// ════════════════════════════════════════════════════════════════════════
// RENDERING
// ════════════════════════════════════════════════════════════════════════

// visibleRows is how many outline rows fit under the toolbar and above the
// status line.
func (m *CanvasModel) visibleRows() int {
	rows := m.height - 3
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *CanvasModel) ensureVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+rows {
		m.scroll = m.cursor - rows + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View implements tea.Model
func (m *CanvasModel) View() string {
	if m.quitting {
		return ""
	}

	bar := RenderToolbar(m.tb.Snapshot(), m.width, m.theme)
	base := lipgloss.JoinVertical(lipgloss.Left,
		bar,
		RenderDivider(m.width),
		m.renderOutline(),
		m.renderStatusBar(),
	)

	if m.guide.IsVisible() {
		return m.renderModalOverlay(base, m.guide.View())
	}
	if m.showEditor {
		return m.renderModalOverlay(base, m.editor.View())
	}
	if m.showPicker {
		return m.renderModalOverlay(base, m.picker.View())
	}
	if m.showPalette {
		return m.renderModalOverlay(base, m.palette.View())
	}
	if m.showOpener {
		return m.renderModalOverlay(base, m.opener.View())
	}
	return base
}

// renderOutline draws the visible window of the flattened map tree.
func (m *CanvasModel) renderOutline() string {
	rows := m.visibleRows()
	var b strings.Builder

	prefixStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Border)
	textStyle := m.theme.Base
	emptyStyle := m.theme.Renderer.NewStyle().Faint(true)
	rootStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)
	selStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)
	lineClamp := m.theme.Renderer.NewStyle().MaxWidth(m.width)

	for i := 0; i < rows; i++ {
		idx := m.scroll + i
		if idx >= len(m.flat) {
			b.WriteString("\n")
			continue
		}
		fn := m.flat[idx]

		marker := "  "
		if idx == m.cursor {
			marker = selStyle.Render("▸ ")
		}

		var label string
		switch {
		case fn.Node.Text == "":
			label = emptyStyle.Render("…")
		case fn.Depth == 0:
			icon, iconColor := GetKindIcon(m.doc.Kind)
			iconStyle := m.theme.Renderer.NewStyle().Foreground(iconColor)
			label = iconStyle.Render(icon) + " " + rootStyle.Render(fn.Node.Text)
		case idx == m.cursor:
			label = selStyle.Render(fn.Node.Text)
		default:
			label = textStyle.Render(fn.Node.Text)
		}

		line := marker + prefixStyle.Render(fn.TreePrefix) + label
		b.WriteString(lineClamp.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStatusBar draws the bottom line: tier state on the left, transient
// feedback or the map summary on the right.
func (m *CanvasModel) renderStatusBar() string {
	snap := m.tb.Snapshot()

	left := RenderTierBadge(snap.Tier)
	if snap.Marker != "" {
		markerStyle := m.theme.Renderer.NewStyle().Faint(true)
		left += " " + markerStyle.Render(snap.Marker)
	}
	langStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Info)
	left += " " + langStyle.Render(strings.ToUpper(m.loc.Current()))

	var right string
	if m.status != "" {
		right = m.theme.Renderer.NewStyle().Foreground(m.theme.Warning).Render(m.status)
	} else {
		summary := fmt.Sprintf("%s · %d", m.doc.Title, len(m.doc.Nodes))
		right = m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext).Render(summary)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return m.theme.Renderer.NewStyle().MaxWidth(m.width).Render(bar)
}

func (m *CanvasModel) renderModalOverlay(base, modal string) string {
	modalWidth := lipgloss.Width(modal)
	modalHeight := lipgloss.Height(modal)

	baseLines := strings.Split(base, "\n")

	startRow := (m.height - modalHeight) / 2
	startCol := (m.width - modalWidth) / 2
	if startRow < 0 {
		startRow = 0
	}
	if startCol < 0 {
		startCol = 0
	}

	modalLines := strings.Split(modal, "\n")
	for i, modalLine := range modalLines {
		row := startRow + i
		if row >= 0 && row < len(baseLines) {
			baseLines[row] = strings.Repeat(" ", startCol) + modalLine
		}
	}
	return strings.Join(baseLines, "\n")
}

// slugify turns a map title into a snapshot file base name.
func slugify(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// Non-ASCII letters (CJK titles) stay recognizable.
			b.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "map"
	}
	return out
}

// CanvasProgram adapts CanvasModel to the tea.Model interface.
type CanvasProgram struct {
	canvas *CanvasModel
}

// NewCanvasProgram creates the program wrapper around the studio model.
func NewCanvasProgram(canvas *CanvasModel) *CanvasProgram {
	return &CanvasProgram{canvas: canvas}
}

// Init implements tea.Model
func (p *CanvasProgram) Init() tea.Cmd {
	return p.canvas.Init()
}

// Update implements tea.Model
func (p *CanvasProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.canvas.SetSize(msg.Width, msg.Height)
		return p, nil
	}

	var cmd tea.Cmd
	p.canvas, cmd = p.canvas.Update(msg)
	return p, cmd
}

// View implements tea.Model
func (p *CanvasProgram) View() string {
	return p.canvas.View()
}
