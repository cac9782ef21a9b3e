package tui

import (
	"github.com/akyairhashvil/slotgrid/internal/countdown"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name   string
	Header lipgloss.Style
	Status lipgloss.Style
	Dim    lipgloss.Style
	Page   lipgloss.Style
	Card   countdown.Styles
}

func cardStyles(border, focus, clock, expired, dim lipgloss.Color) countdown.Styles {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	return countdown.Styles{
		Frame:        frame,
		FocusedFrame: frame.BorderForeground(focus),
		Title:        lipgloss.NewStyle().Bold(true),
		Clock:        lipgloss.NewStyle().Foreground(clock),
		Link:         lipgloss.NewStyle().Foreground(dim),
		Expired:      lipgloss.NewStyle().Foreground(expired).Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true).Foreground(dim),
	}
}

var Themes = map[string]Theme{
	"default": {
		Name:   "Default",
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Page:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 4),
		Card:   cardStyles("63", "205", "39", "9", "240"),
	},
	"dracula": {
		Name:   "Dracula",
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")), // Comment
		Page:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 4),
		Card:   cardStyles("62", "212", "141", "203", "60"),
	},
	"mono": {
		Name:   "Mono",
		Header: lipgloss.NewStyle().Bold(true),
		Status: lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle().Faint(true),
		Page:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 4),
		Card:   cardStyles("250", "255", "255", "255", "244"),
	},
}

// ThemeOrder is the cycling order for the theme key.
var ThemeOrder = []string{"default", "dracula", "mono"}

// LookupTheme returns the named theme, falling back to default.
func LookupTheme(name string) (string, Theme) {
	if t, ok := Themes[name]; ok {
		return name, t
	}
	return "default", Themes["default"]
}

func nextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
