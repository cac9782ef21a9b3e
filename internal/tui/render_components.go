package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/countdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Grid breakpoints in terminal columns, one, two or four cards per row.
const (
	breakpointTwo  = 60
	breakpointFour = 110
	maxCardWidth   = 30
	cardGap        = 1
	headerHeight   = 2
	footerHeight   = 1
	marginLeft     = 1

	// Narrower terminals cannot hold a single card frame.
	minGridWidth = countdown.MinWidth + 2*marginLeft
)

func columnsFor(width int) int {
	switch {
	case width >= breakpointFour:
		return 4
	case width >= breakpointTwo:
		return 2
	default:
		return 1
	}
}

func cardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	avail := width - 2*marginLeft - (cols-1)*cardGap
	w := avail / cols
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < countdown.MinWidth {
		w = countdown.MinWidth
	}
	return w
}

func (m GridModel) tooNarrow() bool {
	return m.width > 0 && m.width < minGridWidth
}

func (m *GridModel) applyWidths() {
	if m.width <= 0 {
		return
	}
	w := cardWidth(m.width, m.cols)
	for i, c := range m.set.Cards {
		m.set.Cards[i] = c.SetWidth(w)
	}
}

// layout refreshes the viewport content and scrolls the focused card into view.
func (m *GridModel) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = m.height - headerHeight - footerHeight
	if m.viewport.Height < countdown.Height {
		m.viewport.Height = countdown.Height
	}
	m.viewport.SetContent(m.renderGrid())

	if len(m.set.Cards) == 0 {
		return
	}
	top := (m.focus / m.cols) * countdown.Height
	bottom := top + countdown.Height
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m GridModel) renderGrid() string {
	if m.tooNarrow() {
		notice := fmt.Sprintf("Terminal too narrow, need %d columns.", minGridWidth)
		return m.theme.Dim.Render(ansi.Truncate(notice, m.width, "…"))
	}
	if len(m.set.Cards) == 0 {
		return m.theme.Dim.Render("No slots between " + m.sched.Start.String() + " and " + m.sched.End.String() + ".")
	}
	gap := strings.Repeat(" ", cardGap)
	var rows []string
	for start := 0; start < len(m.set.Cards); start += m.cols {
		end := start + m.cols
		if end > len(m.set.Cards) {
			end = len(m.set.Cards)
		}
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, m.set.Cards[i].Render(i == m.focus))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.NewStyle().MarginLeft(marginLeft).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m GridModel) renderHeader() string {
	running, expired := m.set.Counts()
	title := m.theme.Header.Render("Countdown " + m.set.Day.Format("Mon 02 Jan"))
	status := fmt.Sprintf("%d running · %d expired", running, expired)
	if next, ok := m.set.Next(); ok {
		rem, _ := next.Remaining()
		status += fmt.Sprintf(" · next: %s in %s", next.Descriptor().Title, countdown.FormatDuration(time.Duration(rem)*time.Second))
	}
	line := title + "  " + m.theme.Status.Render(status) + "  " + m.theme.Dim.Render("v"+AppVersion)
	if m.width > 0 && ansi.StringWidth(line) > m.width {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line + "\n"
}

func (m GridModel) View() string {
	if m.mode == ModePage {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.page.View(m.theme, m.width, m.height-footerHeight),
			m.help.ShortHelpView(m.keys.HelpBindings(ModePage)),
		)
	}
	if m.width == 0 {
		return "Initializing..."
	}
	// Content is refreshed here because ticks do not re-run layout.
	vp := m.viewport
	vp.SetContent(m.renderGrid())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		vp.View(),
		m.help.ShortHelpView(m.keys.HelpBindings(ModeGrid)),
	)
}
