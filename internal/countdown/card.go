// Package countdown implements the countdown card: a bubbletea sub-model that
// owns exactly one timer handle while it is counting down.
package countdown

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/clock"
	"github.com/akyairhashvil/slotgrid/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TickInterval is how often a running card samples the clock.
const TickInterval = time.Second

// ExpiredLabel is shown on a card whose countdown reached zero.
const ExpiredLabel = "Time's up!"

// TickMsg is delivered when a card's timer fires. Tag identifies the handle
// that produced it so ticks from a released handle are dropped.
type TickMsg struct {
	ID   int
	Tag  int
	Time time.Time
}

// Card is a single countdown toward a descriptor's end time.
type Card struct {
	id     int
	desc   models.CardDescriptor
	clock  clock.Clock
	Styles Styles

	status    models.CardStatus
	remaining int
	timer     clock.Timer
	tag       int
	width     int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// New returns an unmounted card. Each card gets a process-unique ID so ticks
// never cross between cards, including cards rebuilt in the same grid position.
func New(desc models.CardDescriptor, clk clock.Clock) Card {
	if clk == nil {
		clk = clock.System
	}
	return Card{
		id:     nextID(),
		desc:   desc,
		clock:  clk,
		Styles: DefaultStyles(),
		status: models.StatusLoading,
		width:  DefaultWidth,
	}
}

func (c Card) ID() int                           { return c.id }
func (c Card) Descriptor() models.CardDescriptor { return c.desc }
func (c Card) Status() models.CardStatus         { return c.status }
func (c Card) Expired() bool                     { return c.status == models.StatusExpired }

// Remaining returns the last computed seconds left, and false before the
// first computation.
func (c Card) Remaining() (int, bool) {
	return c.remaining, c.status != models.StatusLoading
}

// Navigable reports whether the card currently acts as a link.
func (c Card) Navigable() bool {
	return c.status == models.StatusRunning && c.remaining > 0
}

// Target returns the navigation target, or "" once the link is inert.
func (c Card) Target() string {
	if !c.Navigable() {
		return ""
	}
	return c.desc.Target
}

// Ticking reports whether the card currently holds a timer handle.
func (c Card) Ticking() bool {
	return c.timer != nil
}

// Mount computes the remaining time immediately and, if any is left, arms the
// card's single timer. A card mounted after its end time expires at once and
// never acquires a timer.
func (c Card) Mount() (Card, tea.Cmd) {
	c = c.release()
	c.remaining = Remaining(c.desc.End, c.clock.Now())
	if c.remaining == 0 {
		c.status = models.StatusExpired
		return c, nil
	}
	c.status = models.StatusRunning
	return c.arm()
}

// Unmount releases the timer handle. The pending wait returns without a message.
func (c Card) Unmount() Card {
	return c.release()
}

// SetEnd retargets the card. The old handle is released before a new one is armed.
func (c Card) SetEnd(end time.Time) (Card, tea.Cmd) {
	c = c.release()
	c.desc.End = end
	c.status = models.StatusLoading
	return c.Mount()
}

// SetWidth sets the rendered width of the card frame.
func (c Card) SetWidth(w int) Card {
	if w < MinWidth {
		w = MinWidth
	}
	c.width = w
	return c
}

func (c Card) Init() tea.Cmd {
	return nil
}

func (c Card) Update(msg tea.Msg) (Card, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != c.id || tick.Tag != c.tag || c.timer == nil {
		return c, nil
	}
	c = c.release()
	c.remaining = Remaining(c.desc.End, c.clock.Now())
	if c.remaining == 0 {
		c.status = models.StatusExpired
		return c, nil
	}
	return c.arm()
}

func (c Card) arm() (Card, tea.Cmd) {
	c.tag++
	c.timer = c.clock.NewTimer(TickInterval)
	return c, waitTick(c.id, c.tag, c.timer)
}

func (c Card) release() Card {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.tag++
	return c
}

func waitTick(id, tag int, t clock.Timer) tea.Cmd {
	return func() tea.Msg {
		at, ok := clock.Wait(t)
		if !ok {
			return nil
		}
		return TickMsg{ID: id, Tag: tag, Time: at}
	}
}

func (c Card) View() string {
	return c.Render(false)
}

// Render draws the card frame, highlighted when focused and dimmed once expired.
func (c Card) Render(focused bool) string {
	inner := c.width - 4
	if inner < 1 {
		inner = 1
	}

	title := ansi.Truncate(c.desc.Title, inner, "…")
	clockText := "Loading..."
	if c.status != models.StatusLoading {
		clockText = ClockGlyph + " " + FormatRemaining(c.remaining)
	}

	lines := []string{
		c.Styles.Title.Render(title),
		c.Styles.Clock.Render(clockText),
	}
	switch c.status {
	case models.StatusExpired:
		lines = append(lines, c.Styles.Expired.Render(ExpiredLabel))
	case models.StatusRunning:
		lines = append(lines, c.Styles.Link.Render(ansi.Truncate("→ "+c.desc.Target, inner, "…")))
	default:
		lines = append(lines, "")
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	body = lipgloss.PlaceHorizontal(inner, lipgloss.Center, body)

	frame := c.Styles.Frame
	if focused {
		frame = c.Styles.FocusedFrame
	}
	frame = frame.Width(c.width - 2)
	if c.status == models.StatusExpired {
		frame = frame.BorderForeground(c.Styles.Dim.GetForeground())
		body = c.Styles.Dim.Render(stripStyles(body))
	}
	return frame.Render(body)
}

func stripStyles(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Strip(l)
	}
	return strings.Join(lines, "\n")
}
