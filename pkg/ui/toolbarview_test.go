package ui

import (
	"strings"
	"testing"

	"github.com/tessarin/mindcanvas/pkg/toolbar"
)

func fileGroupView(labelVisible bool) toolbar.GroupView {
	return toolbar.GroupView{
		ID:           "file",
		Label:        "File",
		LabelVisible: labelVisible,
		Buttons: []toolbar.ButtonView{
			{ID: toolbar.ButtonNew, Glyph: "✚", Text: "New"},
			{ID: toolbar.ButtonSave, Glyph: "▦", Text: "Save"},
		},
	}
}

func assistantGroupView(name string) toolbar.GroupView {
	return toolbar.GroupView{
		ID: "assistant",
		Buttons: []toolbar.ButtonView{
			{ID: toolbar.ButtonAssistant, Glyph: "✦", Text: name},
		},
	}
}

func tierSnapshot(tier toolbar.Tier, groups ...toolbar.GroupView) toolbar.Snapshot {
	snap := toolbar.Snapshot{Tier: tier}
	snap.Sections[toolbar.SectionLeading] = groups
	return snap
}

func TestRenderToolbarFullShowsLabelsAndText(t *testing.T) {
	snap := tierSnapshot(toolbar.TierFull, fileGroupView(true))

	out := RenderToolbar(snap, 160, DefaultTheme(nil))

	if !strings.Contains(out, "File") {
		t.Fatal("Expected full tier to show the group label")
	}
	if !strings.Contains(out, "New") || !strings.Contains(out, "Save") {
		t.Fatal("Expected full tier to show button text")
	}
	if !strings.Contains(out, "✚") {
		t.Fatal("Expected full tier to show button glyphs")
	}
}

func TestRenderToolbarCompactHidesLabels(t *testing.T) {
	snap := tierSnapshot(toolbar.TierCompact, fileGroupView(false))

	out := RenderToolbar(snap, 120, DefaultTheme(nil))

	if strings.Contains(out, "File") {
		t.Fatal("Expected compact tier to hide the group label")
	}
	if !strings.Contains(out, "New") {
		t.Fatal("Expected compact tier to keep button text")
	}
}

func TestRenderToolbarMinimalGlyphOnlyExceptAssistant(t *testing.T) {
	snap := tierSnapshot(toolbar.TierMinimal, fileGroupView(false))
	snap.Sections[toolbar.SectionCenter] = []toolbar.GroupView{assistantGroupView("Aria")}

	out := RenderToolbar(snap, 100, DefaultTheme(nil))

	if strings.Contains(out, "New") || strings.Contains(out, "Save") {
		t.Fatal("Expected minimal tier to render regular buttons glyph-only")
	}
	if !strings.Contains(out, "✚") {
		t.Fatal("Expected minimal tier to keep glyphs")
	}
	if !strings.Contains(out, "Aria") {
		t.Fatal("Expected the assistant button to keep its text at minimal tier")
	}
}

func TestRenderToolbarMobileCollapsedChip(t *testing.T) {
	g := fileGroupView(false)
	g.Collapsible = true
	g.Collapsed = true
	snap := tierSnapshot(toolbar.TierMobile, g)

	out := RenderToolbar(snap, 60, DefaultTheme(nil))

	if !strings.Contains(out, "▸") {
		t.Fatal("Expected collapsed mobile chip to show the collapsed marker")
	}
	if !strings.Contains(out, "(2)") {
		t.Fatalf("Expected collapsed chip to show the button count, got: %s", out)
	}
	if strings.Contains(out, "✚") {
		t.Fatal("Expected collapsed chip to hide the buttons")
	}
}

func TestRenderToolbarMobileExpandedChip(t *testing.T) {
	g := fileGroupView(false)
	g.Collapsible = true
	g.Collapsed = false
	snap := tierSnapshot(toolbar.TierMobile, g)

	out := RenderToolbar(snap, 60, DefaultTheme(nil))

	if !strings.Contains(out, "▾") {
		t.Fatal("Expected expanded mobile chip to show the expanded marker")
	}
	if !strings.Contains(out, "✚") {
		t.Fatal("Expected expanded chip to show button glyphs")
	}
	if strings.Contains(out, "New") {
		t.Fatal("Expected expanded chip buttons to be glyph-only")
	}
}

func TestRenderToolbarEmptyTextFallsBackToGlyph(t *testing.T) {
	g := toolbar.GroupView{
		ID:      "edit",
		Buttons: []toolbar.ButtonView{{ID: toolbar.ButtonUndo, Glyph: "↶", Text: ""}},
	}
	out := RenderToolbar(tierSnapshot(toolbar.TierFull, g), 80, DefaultTheme(nil))

	if !strings.Contains(out, "↶") {
		t.Fatal("Expected glyph fallback when a button has no resolved text")
	}
}

func TestSpreadSectionsKeepsAllThreeParts(t *testing.T) {
	out := spreadSections("LL", "CC", "RR", 40)

	for _, part := range []string{"LL", "CC", "RR"} {
		if !strings.Contains(out, part) {
			t.Fatalf("Expected spread line to contain %q, got %q", part, out)
		}
	}
	if strings.Index(out, "LL") > strings.Index(out, "CC") ||
		strings.Index(out, "CC") > strings.Index(out, "RR") {
		t.Fatalf("Expected left/center/right ordering, got %q", out)
	}
}

func TestSpreadSectionsNarrowFallback(t *testing.T) {
	out := spreadSections("LEFTLEFT", "CENTERCENTER", "RIGHTRIGHT", 20)

	if out == "" {
		t.Fatal("Expected narrow fallback to still render something")
	}
}
