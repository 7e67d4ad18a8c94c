package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Map is a complete thinking-map document: a titled tree of labeled nodes.
type Map struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Kind      MapKind   `json:"kind"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Nodes     []*Node   `json:"nodes"`
}

// Node is a single labeled element of a map. The root node has an empty
// ParentID; every other node points at its parent.
type Node struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Text      string    `json:"text"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapKind categorizes the thinking-map family a document belongs to
type MapKind string

const (
	KindMindMap    MapKind = "mindmap"
	KindTreeMap    MapKind = "tree_map"
	KindBubbleMap  MapKind = "bubble_map"
	KindCircleMap  MapKind = "circle_map"
	KindFlowMap    MapKind = "flow_map"
	KindBraceMap   MapKind = "brace_map"
	KindConceptMap MapKind = "concept_map"
)

// IsValid returns true if the map kind is a recognized value
func (k MapKind) IsValid() bool {
	switch k {
	case KindMindMap, KindTreeMap, KindBubbleMap, KindCircleMap, KindFlowMap, KindBraceMap, KindConceptMap:
		return true
	}
	return false
}

// NewMap creates an empty map of the given kind with a fresh root node.
// The language code records which display language the map was authored in.
func NewMap(title string, kind MapKind, language string) *Map {
	now := time.Now()
	root := &Node{
		ID:        uuid.NewString(),
		Text:      title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return &Map{
		ID:        uuid.NewString(),
		Title:     title,
		Kind:      kind,
		Language:  language,
		CreatedAt: now,
		UpdatedAt: now,
		Nodes:     []*Node{root},
	}
}

// Root returns the root node, or nil for an empty map.
func (m *Map) Root() *Node {
	for _, n := range m.Nodes {
		if n.ParentID == "" {
			return n
		}
	}
	return nil
}

// Node returns the node with the given ID, or nil.
func (m *Map) Node(id string) *Node {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Children returns the direct children of the given node ordered by their
// Order field (ties broken by creation time).
func (m *Map) Children(id string) []*Node {
	var out []*Node
	for _, n := range m.Nodes {
		if n.ParentID == id && n.ParentID != "" {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// AddChild appends a new node under the given parent and returns it.
// The parent must exist.
func (m *Map) AddChild(parentID, text string) (*Node, error) {
	parent := m.Node(parentID)
	if parent == nil {
		return nil, fmt.Errorf("parent node %s not found", parentID)
	}
	now := time.Now()
	n := &Node{
		ID:        uuid.NewString(),
		ParentID:  parentID,
		Text:      text,
		Order:     len(m.Children(parentID)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.Nodes = append(m.Nodes, n)
	m.UpdatedAt = now
	return n, nil
}

// SetText updates a node's text and bumps the timestamps.
func (m *Map) SetText(id, text string) error {
	n := m.Node(id)
	if n == nil {
		return fmt.Errorf("node %s not found", id)
	}
	now := time.Now()
	n.Text = text
	n.UpdatedAt = now
	m.UpdatedAt = now
	return nil
}

// Remove deletes a node together with its entire subtree. Removing the root
// is rejected.
func (m *Map) Remove(id string) error {
	n := m.Node(id)
	if n == nil {
		return fmt.Errorf("node %s not found", id)
	}
	if n.ParentID == "" {
		return fmt.Errorf("cannot remove the root node")
	}
	doomed := map[string]bool{id: true}
	// Repeated sweeps until the frontier stops growing; node count is small.
	for {
		grew := false
		for _, c := range m.Nodes {
			if c.ParentID != "" && doomed[c.ParentID] && !doomed[c.ID] {
				doomed[c.ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	kept := m.Nodes[:0]
	for _, c := range m.Nodes {
		if !doomed[c.ID] {
			kept = append(kept, c)
		}
	}
	m.Nodes = kept
	m.UpdatedAt = time.Now()
	return nil
}

// Depth returns the distance of a node from the root (root = 0).
// Unknown nodes and cycles report -1.
func (m *Map) Depth(id string) int {
	depth := 0
	cur := m.Node(id)
	for cur != nil {
		if cur.ParentID == "" {
			return depth
		}
		if depth > len(m.Nodes) {
			return -1
		}
		cur = m.Node(cur.ParentID)
		depth++
	}
	return -1
}

// Validate checks if the map data is logically valid
func (m *Map) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("map ID cannot be empty")
	}
	if m.Title == "" {
		return fmt.Errorf("map title cannot be empty")
	}
	if !m.Kind.IsValid() {
		return fmt.Errorf("invalid map kind: %s", m.Kind)
	}
	roots := 0
	seen := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node ID cannot be empty")
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate node ID: %s", n.ID)
		}
		seen[n.ID] = true
		if n.ParentID == "" {
			roots++
		}
	}
	if roots != 1 {
		return fmt.Errorf("map must have exactly one root node, found %d", roots)
	}
	for _, n := range m.Nodes {
		if n.ParentID != "" && !seen[n.ParentID] {
			return fmt.Errorf("node %s references missing parent %s", n.ID, n.ParentID)
		}
	}
	return nil
}

// Clone creates a deep copy of the map
func (m *Map) Clone() *Map {
	clone := *m
	clone.Nodes = make([]*Node, len(m.Nodes))
	for i, n := range m.Nodes {
		v := *n
		clone.Nodes[i] = &v
	}
	return &clone
}
