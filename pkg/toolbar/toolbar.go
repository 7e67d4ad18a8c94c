// Package toolbar implements the responsive toolbar layout engine.
//
// A Toolbar is a tree of sections, groups and buttons. The Manager watches
// viewport width and toolbar structure, classifies the width into one of five
// tiers, and applies tier state (marker, label visibility, button text,
// collapsibility) onto the tree. Rendering reads that state back via
// Snapshot; the engine itself never draws.
package toolbar

import (
	"fmt"
	"sync"
)

// Section positions a group on the toolbar.
type Section int

const (
	SectionLeading Section = iota
	SectionCenter
	SectionTrailing

	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionLeading:
		return "leading"
	case SectionCenter:
		return "center"
	case SectionTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// Toolbar is the component tree the layout engine drives. Structure
// mutations notify the registered observer; applied-state writes by the
// engine do not, which keeps apply passes from re-triggering themselves.
type Toolbar struct {
	mu          sync.RWMutex
	sections    [sectionCount][]*Group
	tier        Tier
	marker      string
	onStructure func()
}

// New creates an empty toolbar with no tier applied.
func New() *Toolbar {
	return &Toolbar{tier: tierNone}
}

// OnStructure registers the observer notified after structure mutations.
// Registering replaces any previous observer.
func (t *Toolbar) OnStructure(fn func()) {
	t.mu.Lock()
	t.onStructure = fn
	t.mu.Unlock()
}

// notify invokes the structure observer outside the tree lock.
func (t *Toolbar) notify() {
	t.mu.RLock()
	fn := t.onStructure
	t.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// AddGroup appends a group to a section. Group IDs must be unique across the
// whole toolbar.
func (t *Toolbar) AddGroup(s Section, g *Group) error {
	if s < 0 || s >= sectionCount {
		return fmt.Errorf("invalid section %d", s)
	}
	t.mu.Lock()
	if t.findGroup(g.ID) != nil {
		t.mu.Unlock()
		return fmt.Errorf("duplicate group id %q", g.ID)
	}
	t.sections[s] = append(t.sections[s], g)
	t.mu.Unlock()
	t.notify()
	return nil
}

// RemoveGroup removes the group with the given ID from whichever section
// holds it. It reports whether a group was removed.
func (t *Toolbar) RemoveGroup(id string) bool {
	t.mu.Lock()
	removed := false
	for s := range t.sections {
		for i, g := range t.sections[s] {
			if g.ID == id {
				t.sections[s] = append(t.sections[s][:i], t.sections[s][i+1:]...)
				removed = true
				break
			}
		}
		if removed {
			break
		}
	}
	t.mu.Unlock()
	if removed {
		t.notify()
	}
	return removed
}

// AddButton appends a button to an existing group.
func (t *Toolbar) AddButton(groupID string, b *Button) error {
	t.mu.Lock()
	g := t.findGroup(groupID)
	if g == nil {
		t.mu.Unlock()
		return fmt.Errorf("unknown group %q", groupID)
	}
	if g.Button(b.ID) != nil {
		t.mu.Unlock()
		return fmt.Errorf("duplicate button id %q in group %q", b.ID, groupID)
	}
	g.buttons = append(g.buttons, b)
	t.mu.Unlock()
	t.notify()
	return nil
}

// RemoveButton removes a button from a group. It reports whether a button
// was removed. Removing the last button leaves an empty group in place.
func (t *Toolbar) RemoveButton(groupID, buttonID string) bool {
	t.mu.Lock()
	removed := false
	if g := t.findGroup(groupID); g != nil {
		for i, b := range g.buttons {
			if b.ID == buttonID {
				g.buttons = append(g.buttons[:i], g.buttons[i+1:]...)
				removed = true
				break
			}
		}
	}
	t.mu.Unlock()
	if removed {
		t.notify()
	}
	return removed
}

// SetGroupLabelKey retitles a group. The new label text takes effect on the
// next apply pass.
func (t *Toolbar) SetGroupLabelKey(groupID, labelKey string) bool {
	t.mu.Lock()
	g := t.findGroup(groupID)
	if g != nil {
		g.LabelKey = labelKey
	}
	t.mu.Unlock()
	if g != nil {
		t.notify()
	}
	return g != nil
}

// SetButtonGlyph swaps a button's glyph.
func (t *Toolbar) SetButtonGlyph(groupID, buttonID, glyph string) bool {
	t.mu.Lock()
	var b *Button
	if g := t.findGroup(groupID); g != nil {
		b = g.Button(buttonID)
	}
	if b != nil {
		b.Glyph = glyph
	}
	t.mu.Unlock()
	if b != nil {
		t.notify()
	}
	return b != nil
}

// findGroup assumes the lock is held.
func (t *Toolbar) findGroup(id string) *Group {
	for s := range t.sections {
		for _, g := range t.sections[s] {
			if g.ID == id {
				return g
			}
		}
	}
	return nil
}

// Group returns the group with the given ID, or nil.
func (t *Toolbar) Group(id string) *Group {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.findGroup(id)
}

// Groups returns all groups in section order.
func (t *Toolbar) Groups() []*Group {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.groupsLocked()
}

func (t *Toolbar) groupsLocked() []*Group {
	var out []*Group
	for s := range t.sections {
		out = append(out, t.sections[s]...)
	}
	return out
}

// SectionGroups returns the groups of one section in display order.
func (t *Toolbar) SectionGroups(s Section) []*Group {
	if s < 0 || s >= sectionCount {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Group, len(t.sections[s]))
	copy(out, t.sections[s])
	return out
}

// Tier returns the most recently applied tier. Before the first apply the
// tier prints as "none".
func (t *Toolbar) Tier() Tier {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tier
}

// Marker returns the applied state marker, e.g. "toolbar--compact".
// Empty until the first apply pass.
func (t *Toolbar) Marker() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.marker
}

// ButtonView is the render-ready state of one button.
type ButtonView struct {
	ID    string
	Glyph string
	Text  string
}

// GroupView is the render-ready state of one group.
type GroupView struct {
	ID           string
	Label        string
	LabelVisible bool
	Collapsible  bool
	Collapsed    bool
	Buttons      []ButtonView
}

// Snapshot is a consistent copy of the toolbar's applied state, safe to
// render from any goroutine.
type Snapshot struct {
	Tier     Tier
	Marker   string
	Sections [sectionCount][]GroupView
}

// Snapshot copies the toolbar state under the tree lock.
func (t *Toolbar) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := Snapshot{Tier: t.tier, Marker: t.marker}
	for s := range t.sections {
		views := make([]GroupView, 0, len(t.sections[s]))
		for _, g := range t.sections[s] {
			gv := GroupView{
				ID:           g.ID,
				Label:        g.label,
				LabelVisible: g.labelVisible,
				Collapsible:  g.collapsible,
				Collapsed:    g.collapsed,
				Buttons:      make([]ButtonView, 0, len(g.buttons)),
			}
			for _, b := range g.buttons {
				gv.Buttons = append(gv.Buttons, ButtonView{ID: b.ID, Glyph: b.Glyph, Text: b.text})
			}
			views = append(views, gv)
		}
		snap.Sections[s] = views
	}
	return snap
}
