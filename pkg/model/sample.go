package model

// Sample returns the starter map shown the first time the studio runs with
// an empty store.
func Sample() *Map {
	m := NewMap("Getting Started", KindMindMap, "en")
	root := m.Root()
	branches := []struct {
		text   string
		leaves []string
	}{
		{"Capture ideas", []string{"Press a to add a node", "Press e to edit its text"}},
		{"Shape the map", []string{"Move with j and k", "Delete with d"}},
		{"Share it", []string{"Export a snapshot with x", "Maps are saved automatically"}},
	}
	for _, b := range branches {
		parent, err := m.AddChild(root.ID, b.text)
		if err != nil {
			continue
		}
		for _, leaf := range b.leaves {
			if _, err := m.AddChild(parent.ID, leaf); err != nil {
				continue
			}
		}
	}
	return m
}
