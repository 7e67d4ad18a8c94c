package toolbar

// Tier enumerates the five layout densities, widest first.
type Tier int

const (
	TierFull Tier = iota
	TierLarge
	TierCompact
	TierMinimal
	TierMobile
)

// tierNone marks a toolbar that has not had any tier applied yet.
const tierNone Tier = -1

// Viewport breakpoints in pixels. Each value is the inclusive lower bound of
// its tier; anything below BreakpointMinimalPx is mobile.
const (
	BreakpointFullPx    = 1400
	BreakpointLargePx   = 1200
	BreakpointCompactPx = 900
	BreakpointMinimalPx = 769
)

// TierForWidth classifies a viewport width in pixels. Zero and negative
// widths classify as TierMobile.
func TierForWidth(px int) Tier {
	switch {
	case px >= BreakpointFullPx:
		return TierFull
	case px >= BreakpointLargePx:
		return TierLarge
	case px >= BreakpointCompactPx:
		return TierCompact
	case px >= BreakpointMinimalPx:
		return TierMinimal
	default:
		return TierMobile
	}
}

func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierLarge:
		return "large"
	case TierCompact:
		return "compact"
	case TierMinimal:
		return "minimal"
	case TierMobile:
		return "mobile"
	default:
		return "none"
	}
}

// Marker returns the state marker recorded on the toolbar root for this
// tier, e.g. "toolbar--compact".
func (t Tier) Marker() string {
	return "toolbar--" + t.String()
}

// ShowsLabels reports whether group labels are visible in this tier.
// Only the two widest tiers have room for them.
func (t Tier) ShowsLabels() bool {
	return t == TierFull || t == TierLarge
}

// Collapsible reports whether toolbar groups may collapse in this tier.
func (t Tier) Collapsible() bool {
	return t == TierMobile
}
