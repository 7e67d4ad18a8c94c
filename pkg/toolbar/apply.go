package toolbar

import "strings"

// applyTier writes one tier's state onto the toolbar tree in a fixed order:
// marker, label visibility, button text, collapsibility. Re-applying the
// tier already in effect is idempotent and preserves user collapse state,
// while still reconciling groups added or removed since the last pass.
// Caller holds m.mu.
func (m *Manager) applyTier(tier, prev Tier) {
	tb := m.tb
	tb.mu.Lock()
	defer tb.mu.Unlock()

	// 1. Tier marker.
	tb.tier = tier
	tb.marker = tier.Marker()

	// 2. Group labels show only in the two widest tiers.
	show := tier.ShowsLabels()
	for _, g := range tb.groupsLocked() {
		g.labelVisible = show
	}

	// 3. Button and label text for the active language.
	m.refreshTextLocked(tier)

	// 4. Collapsibility is exclusive to the mobile tier.
	switch {
	case tier == TierMobile && prev != TierMobile:
		m.enterMobileLocked()
	case tier == TierMobile:
		m.reconcileMobileLocked()
	default:
		m.exitMobileLocked()
	}
}

// refreshTextLocked resolves group labels and button text through the
// localizer. The assistant button shows the assistant's name instead of a
// catalog entry; in the minimal tier the name is cut to its first word. The
// mobile tier keeps the full name since the button row is already reduced to
// glyphs there. Caller holds m.mu and tb.mu.
func (m *Manager) refreshTextLocked(tier Tier) {
	for _, g := range m.tb.groupsLocked() {
		g.label = m.loc.T(g.LabelKey)
		for _, b := range g.buttons {
			if b.ID == ButtonAssistant {
				b.text = m.assistantText(tier)
				continue
			}
			b.text = m.loc.T(b.LabelKey)
		}
	}
}

// assistantText resolves the assistant display name for a tier.
func (m *Manager) assistantText(tier Tier) string {
	name := ""
	if m.assistantName != nil {
		name = strings.TrimSpace(m.assistantName())
	}
	if name == "" {
		name = DefaultAssistantName
	}
	if tier == TierMinimal {
		if fields := strings.Fields(name); len(fields) > 0 {
			return fields[0]
		}
	}
	return name
}

// enterMobileLocked marks every group collapsible and applies the
// auto-collapse policy to crowded groups. The policy is off unless a
// positive threshold was configured.
func (m *Manager) enterMobileLocked() {
	for _, g := range m.tb.groupsLocked() {
		g.collapsible = true
		if m.autoCollapse > 0 && len(g.buttons) > m.autoCollapse {
			g.collapsed = true
			m.collapsed[g.ID] = true
		}
	}
}

// reconcileMobileLocked handles structure changes while mobile stays active:
// groups added since entry become collapsible (with the auto-collapse policy
// applied once), and collapse records for removed groups are dropped.
func (m *Manager) reconcileMobileLocked() {
	live := make(map[string]bool)
	for _, g := range m.tb.groupsLocked() {
		live[g.ID] = true
		if !g.collapsible {
			g.collapsible = true
			if m.autoCollapse > 0 && len(g.buttons) > m.autoCollapse {
				g.collapsed = true
				m.collapsed[g.ID] = true
			}
		}
	}
	for id := range m.collapsed {
		if !live[id] {
			delete(m.collapsed, id)
		}
	}
}

// exitMobileLocked force-expands every group, hides the toggles, and clears
// all collapse records. Collapse state never survives leaving mobile.
func (m *Manager) exitMobileLocked() {
	for _, g := range m.tb.groupsLocked() {
		g.collapsible = false
		g.collapsed = false
	}
	if len(m.collapsed) > 0 {
		m.collapsed = make(map[string]bool)
	}
}
