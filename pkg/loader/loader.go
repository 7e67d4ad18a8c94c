// Package loader reads and writes mind maps as JSON interchange files.
// The sqlite store is the primary home of a map; JSON files are how maps
// move between machines and into version control.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tessarin/mindcanvas/pkg/model"
)

// LoadMap reads a single mind map from a JSON file.
func LoadMap(path string) (*model.Map, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no map found at %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}

	var m model.Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse map file %s: %w", path, err)
	}
	if m.Kind == "" {
		m.Kind = model.KindMindMap
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("map file %s: %w", path, err)
	}
	return &m, nil
}

// LoadDir reads every *.json map in a directory. Files that fail to parse
// or validate are skipped so one bad file cannot block the rest.
func LoadDir(dir string) ([]*model.Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read map directory: %w", err)
	}

	var maps []*model.Map
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		m, err := LoadMap(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		maps = append(maps, m)
	}
	sort.Slice(maps, func(i, j int) bool {
		return maps[i].UpdatedAt.After(maps[j].UpdatedAt)
	})
	return maps, nil
}

// SaveMap writes a map as indented JSON, creating parent directories as
// needed. Invalid maps are refused.
func SaveMap(m *model.Map, path string) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid map: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create map directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write map file: %w", err)
	}
	return nil
}
