package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestGuideHiddenByDefault(t *testing.T) {
	m := NewGuideModel(testLoc(t), DefaultTheme(nil))

	if m.IsVisible() {
		t.Fatal("Expected guide to start hidden")
	}
	if m.View() != "" {
		t.Fatal("Expected hidden guide to render nothing")
	}
}

func TestGuideShowAndAnyKeyCloses(t *testing.T) {
	m := NewGuideModel(testLoc(t), DefaultTheme(nil))
	m.SetSize(100, 30)
	m.Show()

	if !m.IsVisible() {
		t.Fatal("Expected guide to be visible after Show")
	}

	m, _ = m.Update(keyMsg("z"))
	if m.IsVisible() {
		t.Fatal("Expected any key to close the guide")
	}
}

func TestGuideToggle(t *testing.T) {
	m := NewGuideModel(testLoc(t), DefaultTheme(nil))

	m.Toggle()
	if !m.IsVisible() {
		t.Fatal("Expected toggle to show a hidden guide")
	}
	m.Toggle()
	if m.IsVisible() {
		t.Fatal("Expected toggle to hide a visible guide")
	}
}

func TestGuideViewContainsRenderedContent(t *testing.T) {
	loc := testLoc(t)
	m := NewGuideModel(loc, DefaultTheme(nil))
	m.SetSize(100, 40)
	m.Show()

	view := m.View()
	if !strings.Contains(view, loc.T("guide.title")) {
		t.Fatal("Expected guide view to contain its title")
	}
	// A fragment of the embedded guide body, past any markdown styling.
	if !strings.Contains(view, "Ctrl+P") && !strings.Contains(view, "ctrl+p") {
		t.Fatal("Expected guide view to contain the key reference")
	}
}

func TestGuideSourceFallsBackToEnglish(t *testing.T) {
	en := guideSource("en")
	az := guideSource("az")

	if en == "" {
		t.Fatal("Expected an embedded English guide")
	}
	if az != en {
		t.Fatal("Expected a language without a guide to fall back to English")
	}
	if zh := guideSource("zh"); zh == en || zh == "" {
		t.Fatal("Expected the Chinese guide to be its own document")
	}
}

func TestGuideIgnoresNonKeyMessages(t *testing.T) {
	m := NewGuideModel(testLoc(t), DefaultTheme(nil))
	m.Show()

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !m.IsVisible() {
		t.Fatal("Expected non-key messages to leave the guide open")
	}
}
