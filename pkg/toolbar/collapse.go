package toolbar

// Collapse operations are user-driven and only meaningful in the mobile
// tier. Outside mobile every call is a no-op that reports false. State
// writes here bypass the structure observer on purpose: collapsing a group
// changes applied state, not toolbar structure.

// ToggleGroup flips a group between collapsed and expanded. It reports
// whether the group's state changed.
func (m *Manager) ToggleGroup(id string) bool {
	return m.setCollapsed(id, toggle)
}

// CollapseGroup collapses a group to its summary row.
func (m *Manager) CollapseGroup(id string) bool {
	return m.setCollapsed(id, collapse)
}

// ExpandGroup restores a collapsed group.
func (m *Manager) ExpandGroup(id string) bool {
	return m.setCollapsed(id, expand)
}

type collapseOp int

const (
	toggle collapseOp = iota
	collapse
	expand
)

func (m *Manager) setCollapsed(id string, op collapseOp) bool {
	m.mu.Lock()
	if m.inert || m.tb == nil || m.tier != TierMobile {
		m.mu.Unlock()
		return false
	}

	tb := m.tb
	tb.mu.Lock()
	g := tb.findGroup(id)
	changed := false
	if g != nil && g.collapsible {
		want := !g.collapsed
		switch op {
		case collapse:
			want = true
		case expand:
			want = false
		}
		if g.collapsed != want {
			g.collapsed = want
			changed = true
			if want {
				m.collapsed[id] = true
			} else {
				delete(m.collapsed, id)
			}
		}
	}
	tb.mu.Unlock()

	tier := m.tier
	m.mu.Unlock()

	if changed {
		m.notifyApplied(tier)
	}
	return changed
}

// CollapsedGroups returns the IDs of collapsed groups in section order.
// Outside the mobile tier the result is always empty.
func (m *Manager) CollapsedGroups() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inert || m.tb == nil || len(m.collapsed) == 0 {
		return nil
	}

	m.tb.mu.RLock()
	defer m.tb.mu.RUnlock()
	var out []string
	for _, g := range m.tb.groupsLocked() {
		if m.collapsed[g.ID] {
			out = append(out, g.ID)
		}
	}
	return out
}
