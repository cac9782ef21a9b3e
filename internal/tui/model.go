// Package tui renders the countdown grid as a bubbletea program.
package tui

import (
	"log"

	"github.com/akyairhashvil/slotgrid/internal/clock"
	"github.com/akyairhashvil/slotgrid/internal/config"
	"github.com/akyairhashvil/slotgrid/internal/countdown"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a GridModel. Zero fields fall back to defaults.
type Options struct {
	Schedule  schedule.Config
	Clock     clock.Clock
	Navigator Navigator
	Theme     string
}

// mountMsg triggers the first countdown computation for every card.
type mountMsg struct{}

// rolloverMsg fires at the first local midnight after the grid's day.
type rolloverMsg struct {
	tag int
}

// GridModel is the root model: one countdown card per slot, laid out in a
// responsive grid.
type GridModel struct {
	sched     schedule.Config
	clock     clock.Clock
	navigator Navigator
	keys      *HandlerRegistry
	help      help.Model
	viewport  viewport.Model

	themeName string
	theme     Theme

	set     CardSet
	mounted bool

	// The grid holds one midnight timer while mounted, so the day rolls over
	// even after every card has expired.
	rollover    clock.Timer
	rolloverTag int
	focus   int
	cols    int
	width   int
	height  int

	mode Mode
	page PageModel
}

func NewGridModel(opts Options) GridModel {
	if opts.Schedule.Interval <= 0 {
		opts.Schedule = config.DefaultSchedule()
	}
	if opts.Clock == nil {
		opts.Clock = clock.System
	}
	if opts.Navigator == nil {
		opts.Navigator = PageNavigator{}
	}
	name, theme := LookupTheme(opts.Theme)
	m := GridModel{
		sched:     opts.Schedule,
		clock:     opts.Clock,
		navigator: opts.Navigator,
		keys:      defaultRegistry(),
		help:      help.New(),
		viewport:  viewport.New(0, 0),
		themeName: name,
		theme:     theme,
		cols:      1,
	}
	m.set = BuildCardSet(m.sched, m.clock, m.clock.Now(), theme.Card)
	return m
}

func (m GridModel) Init() tea.Cmd {
	return func() tea.Msg { return mountMsg{} }
}

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case mountMsg:
		return m.mount()
	case countdown.TickMsg:
		return m.handleTick(msg)
	case rolloverMsg:
		return m.handleRollover(msg)
	case OpenPageMsg:
		return m.openPage(msg.Target), nil
	case tea.KeyMsg:
		next, cmd, _ := m.keys.Handle(m, msg)
		return next, cmd
	case tea.MouseMsg:
		if m.mode == ModeGrid {
			return m.handleMouse(msg)
		}
	}
	return m, nil
}

func (m GridModel) mount() (GridModel, tea.Cmd) {
	if m.mounted {
		return m, nil
	}
	var cmd tea.Cmd
	m.set, cmd = m.set.MountAll()
	m.mounted = true
	m.applyWidths()
	m.layout()
	rollover := m.armRollover()
	return m, tea.Batch(cmd, rollover)
}

func (m GridModel) unmount() GridModel {
	m.set = m.set.UnmountAll()
	m.releaseRollover()
	m.mounted = false
	return m
}

func (m *GridModel) armRollover() tea.Cmd {
	m.releaseRollover()
	midnight := m.set.Day.AddDate(0, 0, 1)
	t := m.clock.NewTimer(midnight.Sub(m.clock.Now()))
	m.rollover = t
	tag := m.rolloverTag
	return func() tea.Msg {
		if _, ok := clock.Wait(t); !ok {
			return nil
		}
		return rolloverMsg{tag: tag}
	}
}

func (m *GridModel) releaseRollover() {
	if m.rollover != nil {
		m.rollover.Stop()
		m.rollover = nil
	}
	m.rolloverTag++
}

// rebuild discards the current cards and regenerates slots for today.
func (m GridModel) rebuild() (GridModel, tea.Cmd) {
	m = m.unmount()
	m.set = BuildCardSet(m.sched, m.clock, m.clock.Now(), m.theme.Card)
	if m.focus >= len(m.set.Cards) {
		m.focus = 0
	}
	return m.mount()
}

func (m GridModel) handleTick(msg countdown.TickMsg) (GridModel, tea.Cmd) {
	if !m.mounted {
		return m, nil
	}
	if now := m.clock.Now(); !m.set.SameDay(now) {
		log.Printf("day changed to %s, regenerating slots", now.Format("2006-01-02"))
		return m.rebuild()
	}
	var cmd tea.Cmd
	m.set, cmd = m.set.Route(msg)
	return m, cmd
}

func (m GridModel) handleRollover(msg rolloverMsg) (GridModel, tea.Cmd) {
	if !m.mounted || msg.tag != m.rolloverTag {
		return m, nil
	}
	m.rollover = nil
	now := m.clock.Now()
	if m.set.SameDay(now) {
		cmd := m.armRollover()
		return m, cmd
	}
	log.Printf("day changed to %s, regenerating slots", now.Format("2006-01-02"))
	return m.rebuild()
}

func (m GridModel) handleWindowSize(msg tea.WindowSizeMsg) GridModel {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.cols = columnsFor(msg.Width)
	m.applyWidths()
	m.layout()
	return m
}

// openPage leaves the grid. Cards are unmounted like any page transition.
func (m GridModel) openPage(target string) GridModel {
	m = m.unmount()
	m.mode = ModePage
	m.page = NewPageModel(target)
	return m
}

// Cards returns the cards in slot order.
func (m GridModel) Cards() []countdown.Card {
	return m.set.Cards
}

// Focus returns the index of the focused card.
func (m GridModel) Focus() int {
	return m.focus
}

// Mode reports whether the grid or a page is shown.
func (m GridModel) Mode() Mode {
	return m.mode
}

// Shutdown releases every timer. Called on quit.
func (m GridModel) Shutdown() GridModel {
	return m.unmount()
}
