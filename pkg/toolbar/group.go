package toolbar

// Button is a single action on the toolbar. ID, Glyph and LabelKey describe
// the button; the visible text is owned by the layout engine and rewritten on
// every apply pass.
type Button struct {
	ID       string // stable identifier, e.g. "save"
	Glyph    string // short symbol, visible in every tier
	LabelKey string // catalog key for the localized label

	text string // applied display text
}

// NewButton creates a button with no applied text yet.
func NewButton(id, glyph, labelKey string) *Button {
	return &Button{ID: id, Glyph: glyph, LabelKey: labelKey}
}

// Text returns the currently applied display text.
func (b *Button) Text() string { return b.text }

// Group is a labeled cluster of buttons within a toolbar section.
type Group struct {
	ID       string
	LabelKey string

	buttons []*Button

	// Applied state, owned by the layout engine.
	label        string // localized label text
	labelVisible bool   // labels show only in the two widest tiers
	collapsible  bool   // set while the mobile tier is active
	collapsed    bool   // meaningful only while collapsible
}

// NewGroup creates a group containing the given buttons.
func NewGroup(id, labelKey string, buttons ...*Button) *Group {
	return &Group{ID: id, LabelKey: labelKey, buttons: buttons}
}

// Buttons returns the group's buttons in display order.
func (g *Group) Buttons() []*Button { return g.buttons }

// Button returns the button with the given ID, or nil.
func (g *Group) Button(id string) *Button {
	for _, b := range g.buttons {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Label returns the applied localized label.
func (g *Group) Label() string { return g.label }

// LabelVisible reports whether the label is shown in the current tier.
func (g *Group) LabelVisible() bool { return g.labelVisible }

// Collapsible reports whether the group currently shows a collapse toggle.
func (g *Group) Collapsible() bool { return g.collapsible }

// Collapsed reports whether the group is collapsed to its summary row.
func (g *Group) Collapsed() bool { return g.collapsed }
