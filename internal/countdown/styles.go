package countdown

import "github.com/charmbracelet/lipgloss"

const (
	// DefaultWidth is the frame width of a card before the grid lays it out.
	DefaultWidth = 24
	// MinWidth keeps HH:MM:SS and the frame readable.
	MinWidth = 16
	// Height is the rendered height of a card including its border.
	Height = 5

	ClockGlyph = "⏱"
)

// Styles controls how a card renders.
type Styles struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Clock        lipgloss.Style
	Link         lipgloss.Style
	Expired      lipgloss.Style
	Dim          lipgloss.Style
}

func DefaultStyles() Styles {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	return Styles{
		Frame:        frame,
		FocusedFrame: frame.BorderForeground(lipgloss.Color("205")),
		Title:        lipgloss.NewStyle().Bold(true),
		Clock:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Link:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Expired:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("240")),
	}
}
