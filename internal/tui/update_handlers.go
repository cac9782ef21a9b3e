package tui

import (
	"github.com/akyairhashvil/slotgrid/internal/countdown"
	"github.com/akyairhashvil/slotgrid/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func handleQuit(m GridModel) (GridModel, tea.Cmd, bool) {
	m = m.Shutdown()
	return m, tea.Quit, true
}

func moveFocus(dx, dy int) KeyHandler {
	return func(m GridModel) (GridModel, tea.Cmd, bool) {
		n := len(m.set.Cards)
		if n == 0 {
			return m, nil, true
		}
		// Horizontal moves follow reading order and wrap across rows.
		next := m.focus + dx + dy*m.cols
		m.focus = util.Clamp(next, 0, n-1)
		m.layout()
		return m, nil, true
	}
}

func jumpFocus(last bool) KeyHandler {
	return func(m GridModel) (GridModel, tea.Cmd, bool) {
		if len(m.set.Cards) == 0 {
			return m, nil, true
		}
		m.focus = 0
		if last {
			m.focus = len(m.set.Cards) - 1
		}
		m.layout()
		return m, nil, true
	}
}

// handleOpen follows the focused card's link. Expired cards are inert.
func handleOpen(m GridModel) (GridModel, tea.Cmd, bool) {
	return m.openCard(m.focus)
}

func (m GridModel) openCard(idx int) (GridModel, tea.Cmd, bool) {
	if !m.mounted || idx < 0 || idx >= len(m.set.Cards) {
		return m, nil, true
	}
	c := m.set.Cards[idx]
	if !c.Navigable() {
		return m, nil, true
	}
	return m, m.navigator.Navigate(c.Target()), true
}

func handleCycleTheme(m GridModel) (GridModel, tea.Cmd, bool) {
	m.themeName, m.theme = LookupTheme(nextThemeName(m.themeName))
	for i, c := range m.set.Cards {
		c.Styles = m.theme.Card
		m.set.Cards[i] = c
	}
	m.layout()
	return m, nil, true
}

// handleBack returns from a page to a freshly generated grid.
func handleBack(m GridModel) (GridModel, tea.Cmd, bool) {
	m.mode = ModeGrid
	m.page = PageModel{}
	next, cmd := m.rebuild()
	return next, cmd, true
}

func (m GridModel) handleMouse(msg tea.MouseMsg) (GridModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.MouseButtonLeft:
		idx, ok := m.cardAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.focus = idx
		m.layout()
		next, cmd, _ := m.openCard(idx)
		return next, cmd
	}
	return m, nil
}

// cardAt maps a screen cell to a card index.
func (m GridModel) cardAt(x, y int) (int, bool) {
	if m.width <= 0 || m.tooNarrow() || len(m.set.Cards) == 0 {
		return 0, false
	}
	y -= headerHeight
	if y < 0 || y >= m.viewport.Height {
		return 0, false
	}
	x -= marginLeft
	if x < 0 {
		return 0, false
	}
	w := cardWidth(m.width, m.cols)
	col := x / (w + cardGap)
	if col >= m.cols || x%(w+cardGap) >= w {
		return 0, false
	}
	row := (y + m.viewport.YOffset) / countdown.Height
	idx := row*m.cols + col
	if idx >= len(m.set.Cards) {
		return 0, false
	}
	return idx, true
}
