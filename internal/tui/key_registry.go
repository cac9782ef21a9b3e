package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects which bindings apply.
type Mode int

const (
	ModeGrid Mode = iota
	ModePage
)

type KeyHandler func(m GridModel) (GridModel, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Modes    []Mode
	Priority int
}

func (b KeyBinding) AppliesTo(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m GridModel, msg tea.KeyMsg) (GridModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.AppliesTo(m.mode) && key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// HelpBindings returns the bindings shown in the help line for mode.
func (r *HandlerRegistry) HelpBindings(mode Mode) []key.Binding {
	var out []key.Binding
	seen := make(map[string]bool)
	for _, b := range r.bindings {
		if !b.AppliesTo(mode) || !b.Binding.Enabled() {
			continue
		}
		h := b.Binding.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, b.Binding)
	}
	return out
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Handler:  handleQuit,
		Priority: 100,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Handler:  handleQuit,
		Modes:    []Mode{ModeGrid},
		Priority: 90,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Handler: moveFocus(-1, 0),
		Modes:   []Mode{ModeGrid},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Handler: moveFocus(1, 0),
		Modes:   []Mode{ModeGrid},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Handler: moveFocus(0, -1),
		Modes:   []Mode{ModeGrid},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Handler: moveFocus(0, 1),
		Modes:   []Mode{ModeGrid},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Handler: jumpFocus(false),
		Modes:   []Mode{ModeGrid},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Handler: jumpFocus(true),
		Modes:   []Mode{ModeGrid},
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Handler:  handleOpen,
		Modes:    []Mode{ModeGrid},
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler: handleCycleTheme,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Handler:  handleBack,
		Modes:    []Mode{ModePage},
		Priority: 10,
	})
	return r
}
