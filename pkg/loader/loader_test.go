package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tessarin/mindcanvas/pkg/loader"
	"github.com/tessarin/mindcanvas/pkg/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maps", "plan.json")

	m := model.NewMap("Plan", model.KindMindMap, "en")
	m.AddChild(m.Root().ID, "First")
	m.AddChild(m.Root().ID, "Second")

	if err := loader.SaveMap(m, path); err != nil {
		t.Fatalf("SaveMap error: %v", err)
	}

	got, err := loader.LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap error: %v", err)
	}
	if got.Title != "Plan" || len(got.Nodes) != 3 {
		t.Errorf("loaded %q with %d nodes, want Plan with 3", got.Title, len(got.Nodes))
	}
	children := got.Children(got.Root().ID)
	if len(children) != 2 || children[0].Text != "First" {
		t.Errorf("children not preserved: %+v", children)
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	if _, err := loader.LoadMap(filepath.Join(t.TempDir(), "ghost.json")); err == nil {
		t.Error("LoadMap succeeded on a missing file")
	}
}

func TestLoadMapRejectsBrokenMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	// Parseable JSON, but the node graph is dangling.
	body := `{"id":"m1","title":"X","kind":"mindmap","nodes":[
		{"id":"r","text":"X"},
		{"id":"orphan","parent_id":"ghost","text":"lost"}
	]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loader.LoadMap(path); err == nil {
		t.Error("LoadMap accepted a map with a dangling parent")
	}
}

func TestLoadMapDefaultsKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nokind.json")
	body := `{"id":"m1","title":"X","nodes":[{"id":"r","text":"X"}]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := loader.LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap error: %v", err)
	}
	if got.Kind != model.KindMindMap {
		t.Errorf("Kind = %s, want default mindmap", got.Kind)
	}
}

func TestLoadDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()

	good := model.NewMap("Good", model.KindTreeMap, "en")
	if err := loader.SaveMap(good, filepath.Join(dir, "good.json")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "garbage.json"), []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	maps, err := loader.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir error: %v", err)
	}
	if len(maps) != 1 {
		t.Fatalf("LoadDir returned %d maps, want 1", len(maps))
	}
	if maps[0].Title != "Good" {
		t.Errorf("loaded %q, want Good", maps[0].Title)
	}
}

func TestSaveMapRefusesInvalid(t *testing.T) {
	m := model.NewMap("X", model.KindMindMap, "en")
	m.Nodes = append(m.Nodes, &model.Node{ID: "dup", ParentID: m.Root().ID})
	m.Nodes = append(m.Nodes, &model.Node{ID: "dup", ParentID: m.Root().ID})

	if err := loader.SaveMap(m, filepath.Join(t.TempDir(), "x.json")); err == nil {
		t.Error("SaveMap accepted a map with duplicate node IDs")
	}
}
