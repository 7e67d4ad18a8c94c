package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tessarin/mindcanvas/pkg/model"
)

func snapshotFixture(t *testing.T) *model.Map {
	t.Helper()
	m := model.NewMap("Quarterly Plan", model.KindMindMap, "en")
	root := m.Root()
	research, err := m.AddChild(root.ID, "Research")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if _, err := m.AddChild(root.ID, "Build"); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if _, err := m.AddChild(root.ID, "Launch"); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if _, err := m.AddChild(research.ID, "User interviews"); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	return m
}

func TestSaveMapSnapshot(t *testing.T) {
	m := snapshotFixture(t)
	dir := t.TempDir()

	t.Run("svg", func(t *testing.T) {
		path := filepath.Join(dir, "plan.svg")
		if err := SaveMapSnapshot(MapSnapshotOptions{Path: path, Map: m}); err != nil {
			t.Fatalf("SaveMapSnapshot failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected snapshot at %s, got error: %v", path, err)
		}
		if len(data) == 0 {
			t.Fatal("Expected non-empty SVG snapshot")
		}
		if !strings.Contains(string(data), "<svg") {
			t.Fatal("Expected SVG markup in snapshot file")
		}
		if !strings.Contains(string(data), "Quarterly Plan") {
			t.Fatal("Expected map title in SVG snapshot")
		}
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "plan.png")
		if err := SaveMapSnapshot(MapSnapshotOptions{Path: path, Map: m}); err != nil {
			t.Fatalf("SaveMapSnapshot failed: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Expected snapshot at %s, got error: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatal("Expected non-empty PNG snapshot")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if len(data) < 8 || string(data[1:4]) != "PNG" {
			t.Fatal("Expected PNG signature in snapshot file")
		}
	})
}

func TestSaveMapSnapshotFormatFromExtension(t *testing.T) {
	m := snapshotFixture(t)
	path := filepath.Join(t.TempDir(), "nested", "deep", "plan.svg")

	// Format left empty; the .svg extension and parent dirs are handled.
	if err := SaveMapSnapshot(MapSnapshotOptions{Path: path, Map: m}); err != nil {
		t.Fatalf("SaveMapSnapshot failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected snapshot in created directory, got error: %v", err)
	}
}

func TestSaveMapSnapshotAll(t *testing.T) {
	m := snapshotFixture(t)
	dir := t.TempDir()

	paths, err := SaveMapSnapshotAll(dir, "plan", m)
	if err != nil {
		t.Fatalf("SaveMapSnapshotAll failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 snapshot paths, got %d", len(paths))
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Expected snapshot at %s, got error: %v", p, err)
		}
		if info.Size() == 0 {
			t.Fatalf("Expected non-empty snapshot at %s", p)
		}
	}
}

func TestSaveMapSnapshotRejectsUnknownFormat(t *testing.T) {
	m := snapshotFixture(t)
	path := filepath.Join(t.TempDir(), "plan.bmp")

	err := SaveMapSnapshot(MapSnapshotOptions{Path: path, Map: m})
	if err == nil {
		t.Fatal("Expected error for unsupported format, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("Expected unsupported format error, got: %v", err)
	}
}

func TestSaveMapSnapshotNilMap(t *testing.T) {
	err := SaveMapSnapshot(MapSnapshotOptions{Path: "plan.svg"})
	if err == nil {
		t.Fatal("Expected error for nil map, got nil")
	}
}

func TestSaveMapSnapshotRejectsInvalidMap(t *testing.T) {
	m := snapshotFixture(t)
	m.Nodes = append(m.Nodes, &model.Node{ID: "orphan", ParentID: "no-such-parent", Text: "dangling"})

	err := SaveMapSnapshot(MapSnapshotOptions{Path: filepath.Join(t.TempDir(), "bad.svg"), Map: m})
	if err == nil {
		t.Fatal("Expected error for invalid map, got nil")
	}
}

func TestLayoutRadialKeepsNodesOnCanvas(t *testing.T) {
	m := snapshotFixture(t)
	width, height := 1200, 800

	positions := layoutRadial(m, width, height)
	if len(positions) != len(m.Nodes) {
		t.Fatalf("Expected %d positions, got %d", len(m.Nodes), len(positions))
	}

	root := m.Root()
	rp := positions[root.ID]
	if rp.X != float64(width)/2 || rp.Y != float64(height)/2 {
		t.Fatalf("Expected root at canvas center, got (%v, %v)", rp.X, rp.Y)
	}

	for id, p := range positions {
		if p.X < 0 || p.X > float64(width) || p.Y < 0 || p.Y > float64(height) {
			t.Fatalf("Node %s placed off canvas at (%v, %v)", id, p.X, p.Y)
		}
	}
}

func TestSnapshotLabelTruncation(t *testing.T) {
	short := &model.Node{Text: "Launch"}
	if got := label(short); got != "Launch" {
		t.Fatalf("Expected short label unchanged, got %q", got)
	}

	long := &model.Node{Text: strings.Repeat("思维导图", 10)}
	got := label(long)
	if runes := []rune(got); len(runes) != maxLabelRunes {
		t.Fatalf("Expected truncated label of %d runes, got %d", maxLabelRunes, len(runes))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("Expected ellipsis suffix on truncated label, got %q", got)
	}
}
