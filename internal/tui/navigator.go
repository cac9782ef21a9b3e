package tui

import tea "github.com/charmbracelet/bubbletea"

//go:generate mockgen -source=navigator.go -destination=mock_navigator_test.go -package=tui

// Navigator resolves a card's target into a page transition. The grid only
// calls it for cards that still have time remaining.
type Navigator interface {
	Navigate(target string) tea.Cmd
}

// OpenPageMsg asks the grid to leave for the page at Target.
type OpenPageMsg struct {
	Target string
}

// PageNavigator opens targets as in-program pages.
type PageNavigator struct{}

func (PageNavigator) Navigate(target string) tea.Cmd {
	return func() tea.Msg { return OpenPageMsg{Target: target} }
}
