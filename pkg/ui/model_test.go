package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessarin/mindcanvas/pkg/model"
	"github.com/tessarin/mindcanvas/pkg/store"
	"github.com/tessarin/mindcanvas/pkg/toolbar"
)

func testCanvasAt(t *testing.T, widthPx int, st *store.Store) *CanvasModel {
	t.Helper()
	loc := testLoc(t)
	tb := toolbar.DefaultToolbar()
	mgr := toolbar.NewManager(tb, loc, toolbar.Options{})
	t.Cleanup(mgr.Close)
	mgr.Init(widthPx)

	m := NewCanvasModel(CanvasOptions{
		Doc:       model.Sample(),
		Store:     st,
		Localizer: loc,
		Manager:   mgr,
		Toolbar:   tb,
		Theme:     DefaultTheme(nil),
		ExportDir: t.TempDir(),
	})
	m.SetSize(160, 40)
	return m
}

func testCanvas(t *testing.T) *CanvasModel {
	return testCanvasAt(t, 1500, nil)
}

func TestCanvasCursorNavigation(t *testing.T) {
	m := testCanvas(t)
	if len(m.flat) != 10 {
		t.Fatalf("Expected 10 outline rows for the sample map, got %d", len(m.flat))
	}

	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Fatalf("Expected cursor 1 after j, got %d", m.cursor)
	}
	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Fatalf("Expected cursor 0 after k, got %d", m.cursor)
	}
	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Fatal("Expected cursor to stay at the top")
	}
	m, _ = m.Update(keyMsg("G"))
	if m.cursor != len(m.flat)-1 {
		t.Fatalf("Expected G to jump to the last row, got %d", m.cursor)
	}
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != len(m.flat)-1 {
		t.Fatal("Expected cursor to stay at the bottom")
	}
	m, _ = m.Update(keyMsg("g"))
	if m.cursor != 0 {
		t.Fatalf("Expected g to jump to the first row, got %d", m.cursor)
	}
}

func TestCanvasAddNodeSubmitFlow(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(keyMsg("a"))
	if !m.showEditor {
		t.Fatal("Expected a to open the node editor")
	}
	if m.pendingNew == "" {
		t.Fatal("Expected a pending node for the add flow")
	}
	newID := m.pendingNew
	if len(m.flat) != 11 {
		t.Fatalf("Expected the new node in the outline, got %d rows", len(m.flat))
	}

	m, _ = m.Update(keyMsg("Launch checklist"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.showEditor {
		t.Fatal("Expected the editor to close on submit")
	}
	n := m.doc.Node(newID)
	if n == nil || n.Text != "Launch checklist" {
		t.Fatalf("Expected new node text to be saved, got %+v", n)
	}
	if len(m.undoStack) != 1 {
		t.Fatalf("Expected one undo entry for the add, got %d", len(m.undoStack))
	}

	m, _ = m.Update(keyMsg("u"))
	if m.doc.Node(newID) != nil {
		t.Fatal("Expected undo to remove the added node")
	}
}

func TestCanvasAddNodeCancelRollsBack(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(keyMsg("a"))
	newID := m.pendingNew
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.showEditor {
		t.Fatal("Expected esc to close the editor")
	}
	if m.doc.Node(newID) != nil {
		t.Fatal("Expected the cancelled node to be removed")
	}
	if len(m.flat) != 10 {
		t.Fatalf("Expected the outline back at 10 rows, got %d", len(m.flat))
	}
	if len(m.undoStack) != 0 {
		t.Fatalf("Expected no undo entry for a cancelled add, got %d", len(m.undoStack))
	}
}

func TestCanvasEditUndoRestoresText(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(keyMsg("e"))
	if !m.showEditor {
		t.Fatal("Expected e to open the editor on the selected node")
	}
	m, _ = m.Update(keyMsg(" v2"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	root := m.doc.Root()
	if root.Text != "Getting Started v2" {
		t.Fatalf("Expected edited root text, got %q", root.Text)
	}

	m, _ = m.Update(keyMsg("u"))
	if m.doc.Root().Text != "Getting Started" {
		t.Fatalf("Expected undo to restore the text, got %q", m.doc.Root().Text)
	}
}

func TestCanvasDeleteUndoRedo(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("d"))
	if len(m.doc.Nodes) != 7 {
		t.Fatalf("Expected subtree delete to leave 7 nodes, got %d", len(m.doc.Nodes))
	}

	m, _ = m.Update(keyMsg("u"))
	if len(m.doc.Nodes) != 10 {
		t.Fatalf("Expected undo to restore 10 nodes, got %d", len(m.doc.Nodes))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if len(m.doc.Nodes) != 7 {
		t.Fatalf("Expected redo to delete again, got %d nodes", len(m.doc.Nodes))
	}
}

func TestCanvasDeleteRootRejected(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(keyMsg("d"))

	if len(m.doc.Nodes) != 10 {
		t.Fatalf("Expected root delete to be rejected, got %d nodes", len(m.doc.Nodes))
	}
	if m.status == "" {
		t.Fatal("Expected an error status for the rejected delete")
	}
	if len(m.undoStack) != 0 {
		t.Fatal("Expected no undo entry for a failed delete")
	}
}

func TestCanvasStatusSetAndExpire(t *testing.T) {
	m := testCanvas(t)
	loc := m.loc

	m, _ = m.Update(keyMsg("s"))
	if m.status != loc.T("status.saved") {
		t.Fatalf("Expected saved status, got %q", m.status)
	}

	stale := m.statusSeq
	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(statusClearMsg{seq: stale})
	if m.status == "" {
		t.Fatal("Expected a stale clear message to be ignored")
	}

	m, _ = m.Update(statusClearMsg{seq: m.statusSeq})
	if m.status != "" {
		t.Fatalf("Expected the status to clear, got %q", m.status)
	}
}

func TestCanvasExportWritesSnapshots(t *testing.T) {
	m := testCanvas(t)

	_, cmd := m.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("Expected x to schedule an export")
	}

	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("Expected exportDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("Expected export to succeed, got %v", done.err)
	}
	if len(done.paths) != 2 {
		t.Fatalf("Expected svg and png paths, got %v", done.paths)
	}
	for _, p := range done.paths {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("Expected snapshot file %s, got %v", p, err)
		}
		if !strings.Contains(filepath.Base(p), "getting-started") {
			t.Fatalf("Expected slugified file name, got %s", filepath.Base(p))
		}
	}

	m, _ = m.Update(msg)
	if m.status != m.loc.T("status.exported") {
		t.Fatalf("Expected exported status, got %q", m.status)
	}
}

func TestCanvasPaletteDispatchNewMap(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.showPalette {
		t.Fatal("Expected ctrl+p to open the command palette")
	}

	// The default selection is the first toolbar button: New.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.showPalette {
		t.Fatal("Expected the palette to close after dispatch")
	}
	if m.doc.Title != m.loc.T("map.untitled") {
		t.Fatalf("Expected a fresh untitled map, got %q", m.doc.Title)
	}
	if len(m.doc.Nodes) != 1 {
		t.Fatalf("Expected a fresh map with only a root, got %d nodes", len(m.doc.Nodes))
	}
}

func TestCanvasGuideOverlayRouting(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(keyMsg("?"))
	if !m.guide.IsVisible() {
		t.Fatal("Expected ? to open the guide")
	}
	if !strings.Contains(m.View(), m.loc.T("guide.title")) {
		t.Fatal("Expected the guide overlay in the view")
	}

	// While the guide is open every key goes to it, including action keys.
	m, _ = m.Update(keyMsg("x"))
	if m.guide.IsVisible() {
		t.Fatal("Expected any key to close the guide")
	}
}

func TestCanvasMobileChipToggle(t *testing.T) {
	m := testCanvasAt(t, 500, nil)
	if m.tb.Snapshot().Tier != toolbar.TierMobile {
		t.Fatalf("Expected mobile tier at 500px, got %v", m.tb.Snapshot().Tier)
	}

	m, _ = m.Update(keyMsg("1"))
	collapsed := m.mgr.CollapsedGroups()
	if len(collapsed) != 1 || collapsed[0] != "file" {
		t.Fatalf("Expected key 1 to collapse the file group, got %v", collapsed)
	}

	m, _ = m.Update(keyMsg("1"))
	if len(m.mgr.CollapsedGroups()) != 0 {
		t.Fatal("Expected key 1 to expand the file group again")
	}
}

func TestCanvasViewShowsTierAndSummary(t *testing.T) {
	m := testCanvas(t)

	view := m.View()
	if !strings.Contains(view, "FULL") {
		t.Fatal("Expected the tier badge in the status bar")
	}
	if !strings.Contains(view, "Getting Started") {
		t.Fatal("Expected the map title in the view")
	}
	if !strings.Contains(view, "EN") {
		t.Fatal("Expected the language tag in the status bar")
	}
}

func TestCanvasModalOverlayCentersModal(t *testing.T) {
	m := testCanvas(t)
	m.width = 20
	m.height = 7

	base := strings.TrimRight(strings.Repeat("....................\n", 7), "\n")
	out := m.renderModalOverlay(base, "XXXX\nYYYY")

	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("Expected the overlay to keep 7 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "XXXX") || !strings.Contains(lines[3], "YYYY") {
		t.Fatalf("Expected the modal centered on rows 2 and 3, got %q / %q", lines[2], lines[3])
	}
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", 8)) {
		t.Fatalf("Expected the modal indented to the center column, got %q", lines[2])
	}
	if lines[0] != "...................." {
		t.Fatal("Expected rows outside the modal to keep the base content")
	}
}

func TestCanvasProgramInterceptsWindowSize(t *testing.T) {
	m := testCanvas(t)
	p := NewCanvasProgram(m)

	returned, _ := p.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if returned != p {
		t.Fatal("Expected the program wrapper to return itself")
	}
	if m.width != 100 || m.height != 30 {
		t.Fatalf("Expected the resize to reach the canvas, got %dx%d", m.width, m.height)
	}
}

func TestCanvasOpenMapFromStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "maps.db"))
	if err != nil {
		t.Fatalf("Expected store to open, got %v", err)
	}
	defer st.Close()

	first := model.NewMap("Alpha", model.KindMindMap, "en")
	if err := st.SaveMap(first); err != nil {
		t.Fatalf("Expected first save to succeed, got %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	second := model.NewMap("Beta", model.KindFlowMap, "en")
	if err := st.SaveMap(second); err != nil {
		t.Fatalf("Expected second save to succeed, got %v", err)
	}

	m := testCanvasAt(t, 1500, st)
	m, _ = m.Update(keyMsg("o"))
	if !m.showOpener {
		t.Fatal("Expected o to open the map picker")
	}

	// The picker lists most recently updated first.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.showOpener {
		t.Fatal("Expected the picker to close after choosing")
	}
	if m.doc.Title != "Beta" {
		t.Fatalf("Expected the newest map to load, got %q", m.doc.Title)
	}
	if m.status != m.loc.T("status.opened") {
		t.Fatalf("Expected opened status, got %q", m.status)
	}
	if len(m.undoStack) != 0 || len(m.redoStack) != 0 {
		t.Fatal("Expected history to reset on open")
	}
}

func TestCanvasLanguagePickerEscFlow(t *testing.T) {
	m := testCanvas(t)

	m, _ = m.Update(keyMsg("L"))
	if !m.showPicker {
		t.Fatal("Expected L to open the language picker")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.showPicker {
		t.Fatal("Expected esc to close the language picker")
	}
	if m.loc.Current() != "en" {
		t.Fatalf("Expected the language to stay en, got %q", m.loc.Current())
	}
}

func TestCanvasAutoLayoutNormalizesOrder(t *testing.T) {
	m := testCanvas(t)
	root := m.doc.Root()
	children := m.doc.Children(root.ID)
	children[0].Order = 5
	children[1].Order = 9
	children[2].Order = 1

	m.autoLayout()

	got := m.doc.Children(root.ID)
	for i, c := range got {
		if c.Order != i {
			t.Fatalf("Expected consecutive order %d, got %d for %q", i, c.Order, c.Text)
		}
	}
	if got[0].Text != "Share it" {
		t.Fatalf("Expected relative order preserved, got %q first", got[0].Text)
	}
}

func TestCanvasUndoHistoryCapped(t *testing.T) {
	m := testCanvas(t)

	for i := 0; i < maxHistory+10; i++ {
		m.pushUndo()
	}

	if len(m.undoStack) != maxHistory {
		t.Fatalf("Expected undo stack capped at %d, got %d", maxHistory, len(m.undoStack))
	}
}

func TestCanvasQuitKey(t *testing.T) {
	m := testCanvas(t)

	m, cmd := m.Update(keyMsg("q"))
	if !m.quitting {
		t.Fatal("Expected q to mark the model quitting")
	}
	if cmd == nil {
		t.Fatal("Expected q to produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("Expected the quit command to emit tea.QuitMsg")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Quarterly Plan", "quarterly-plan"},
		{"  Big   Launch!  ", "big-launch"},
		{"思维导图", "思维导图"},
		{"Mixed 思维 map", "mixed-思维-map"},
		{"", "map"},
		{"!!!", "map"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Fatalf("Expected slugify(%q) = %q, got %q", tc.in, tc.want, got)
		}
	}
}
