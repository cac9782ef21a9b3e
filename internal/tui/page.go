package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/slotgrid/internal/schedule"
	"github.com/charmbracelet/lipgloss"
)

// PageModel is the destination shown after navigating from a card.
type PageModel struct {
	Target string
}

func NewPageModel(target string) PageModel {
	return PageModel{Target: target}
}

// Title derives a heading from the target path, e.g. "/page3" -> "Page 3".
func (p PageModel) Title() string {
	if n, ok := schedule.TargetIndex(p.Target); ok {
		return "Page " + strconv.Itoa(n)
	}
	name := strings.TrimPrefix(p.Target, "/")
	if name == "" {
		return "Home"
	}
	return name
}

func (p PageModel) View(theme Theme, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Header.Render(p.Title()),
		"",
		theme.Status.Render(fmt.Sprintf("You followed %s before its countdown ran out.", p.Target)),
		theme.Dim.Render("esc to return to the grid"),
	)
	box := theme.Page.Render(body)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
