package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/slotgrid/internal/countdown"
	tea "github.com/charmbracelet/bubbletea"
)

func TestColumnsFor(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{40, 1},
		{59, 1},
		{60, 2},
		{109, 2},
		{110, 4},
		{200, 4},
	}
	for _, tt := range tests {
		if got := columnsFor(tt.width); got != tt.want {
			t.Fatalf("columnsFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestCardWidthBounds(t *testing.T) {
	if w := cardWidth(10, 1); w != countdown.MinWidth {
		t.Fatalf("expected min width, got %d", w)
	}
	if w := cardWidth(20, 1); w != 18 {
		t.Fatalf("expected 18, got %d", w)
	}
	if w := cardWidth(minGridWidth, 1); w != countdown.MinWidth {
		t.Fatalf("expected the narrowest grid to fit one min-width card, got %d", w)
	}
	if w := cardWidth(400, 4); w != maxCardWidth {
		t.Fatalf("expected max width, got %d", w)
	}
	if w := cardWidth(120, 4); w != 28 {
		t.Fatalf("expected 28, got %d", w)
	}
}

func TestCardAtOutsideGrid(t *testing.T) {
	m, _, _ := mounted(t, morning, nil)
	if _, ok := m.cardAt(5, 0); ok {
		t.Fatalf("header row should not map to a card")
	}
	if _, ok := m.cardAt(0, headerHeight+1); ok {
		t.Fatalf("margin should not map to a card")
	}
	w := cardWidth(120, 4)
	if _, ok := m.cardAt(marginLeft+3*(w+cardGap)+1, headerHeight+1); ok {
		t.Fatalf("fourth column is empty with three cards")
	}
	if idx, ok := m.cardAt(marginLeft+w+cardGap+1, headerHeight); !ok || idx != 1 {
		t.Fatalf("expected second card, got %d %v", idx, ok)
	}
}

func TestHelpBindingsPerMode(t *testing.T) {
	r := defaultRegistry()
	grid := r.HelpBindings(ModeGrid)
	page := r.HelpBindings(ModePage)
	if len(grid) == 0 || len(page) == 0 {
		t.Fatalf("expected help bindings for both modes")
	}
	for _, b := range page {
		if b.Help().Key == "enter" {
			t.Fatalf("enter should not be offered on a page")
		}
	}
}

func TestPageTitle(t *testing.T) {
	tests := map[string]string{
		"/page12": "Page 12",
		"/":       "Home",
		"/about":  "about",
	}
	for in, want := range tests {
		if got := NewPageModel(in).Title(); got != want {
			t.Fatalf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNarrowTerminalRendersNotice(t *testing.T) {
	m, _, _ := mounted(t, morning, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: minGridWidth - 1, Height: 40})

	view := m.View()
	if !strings.Contains(view, "too narrow") {
		t.Fatalf("expected narrow notice:\n%s", view)
	}
	if strings.Contains(view, "Card 1") {
		t.Fatalf("cards should not render into a narrow terminal:\n%s", view)
	}
	for x := 0; x < minGridWidth; x++ {
		if idx, ok := m.cardAt(x, headerHeight+1); ok {
			t.Fatalf("cell %d mapped to card %d in a narrow terminal", x, idx)
		}
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: minGridWidth, Height: 40})
	if !strings.Contains(m.View(), "Card 1") {
		t.Fatalf("expected cards once the terminal fits one")
	}
	if _, ok := m.cardAt(marginLeft+1, headerHeight+1); !ok {
		t.Fatalf("expected the first card under the cursor")
	}
}
