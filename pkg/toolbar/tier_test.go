package toolbar

import "testing"

func TestTierForWidth(t *testing.T) {
	tests := []struct {
		px   int
		want Tier
	}{
		{1400, TierFull},
		{1399, TierLarge},
		{1200, TierLarge},
		{1199, TierCompact},
		{900, TierCompact},
		{899, TierMinimal},
		{769, TierMinimal},
		{768, TierMobile},
		{1, TierMobile},
		{0, TierMobile},
		{-50, TierMobile},
		{5000, TierFull},
	}
	for _, tt := range tests {
		if got := TierForWidth(tt.px); got != tt.want {
			t.Errorf("TierForWidth(%d) = %s, want %s", tt.px, got, tt.want)
		}
	}
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierFull, "full"},
		{TierLarge, "large"},
		{TierCompact, "compact"},
		{TierMinimal, "minimal"},
		{TierMobile, "mobile"},
		{tierNone, "none"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", int(tt.tier), got, tt.want)
		}
	}
}

func TestTierMarker(t *testing.T) {
	if got := TierCompact.Marker(); got != "toolbar--compact" {
		t.Errorf("Marker() = %q, want toolbar--compact", got)
	}
	if got := TierMobile.Marker(); got != "toolbar--mobile" {
		t.Errorf("Marker() = %q, want toolbar--mobile", got)
	}
}

func TestTierShowsLabels(t *testing.T) {
	tests := []struct {
		tier Tier
		want bool
	}{
		{TierFull, true},
		{TierLarge, true},
		{TierCompact, false},
		{TierMinimal, false},
		{TierMobile, false},
	}
	for _, tt := range tests {
		if got := tt.tier.ShowsLabels(); got != tt.want {
			t.Errorf("%s.ShowsLabels() = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestTierCollapsible(t *testing.T) {
	for _, tier := range []Tier{TierFull, TierLarge, TierCompact, TierMinimal} {
		if tier.Collapsible() {
			t.Errorf("%s.Collapsible() = true, want false", tier)
		}
	}
	if !TierMobile.Collapsible() {
		t.Error("mobile.Collapsible() = false, want true")
	}
}
