package ui

import (
	"strings"
	"time"

	"distortion-os/config"
	"distortion-os/i18n"
	"distortion-os/wm"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// kst is the zone event dates are shown in.
var kst = time.FixedZone("KST", 9*60*60)

// eventDate formats an event date the way the depot lists it.
func eventDate(t time.Time) string {
	return t.In(kst).Format("2006-01-02 15:04") + " KST"
}

// ShopPane is the body of the supply depot window.
type ShopPane struct {
	tr     *i18n.Catalog
	events []config.Event
}

func NewShopPane(tr *i18n.Catalog, events []config.Event) *ShopPane {
	return &ShopPane{tr: tr, events: events}
}

// SetEvents replaces the events after a config reload.
func (s *ShopPane) SetEvents(events []config.Event) {
	s.events = events
}

func (s *ShopPane) lines(width int) []string {
	lines := strings.Split(wordwrap.String(s.tr.T("shop_desc"), max(width, 1)), "\n")
	lines = append(lines, "")
	for _, e := range s.events {
		lines = append(lines,
			TextStyles.Accent.Render(s.tr.T(e.Key)),
			TextStyles.Secondary.Render("  "+eventDate(e.At)))
	}
	return append(lines, "")
}

func (s *ShopPane) button(y int) (string, []button) {
	return buttonRow(y, []string{s.tr.T("shop_link")}, []Action{{Kind: ActionStoreLink}}, []bool{true})
}

// View renders the depot in width x height cells.
func (s *ShopPane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := s.lines(width)
	row, _ := s.button(len(lines))
	return Fit(strings.Join(append(lines, row), "\n"), width, height)
}

// Click returns the action under p, in body coordinates.
func (s *ShopPane) Click(p wm.Point, width, height int) Action {
	_, buttons := s.button(len(s.lines(width)))
	return hit(buttons, p)
}

// CommPane is the body of the communications window: a live countdown to
// every configured event.
type CommPane struct {
	tr     *i18n.Catalog
	events []config.Event
	now    time.Time
}

func NewCommPane(tr *i18n.Catalog, events []config.Event) *CommPane {
	return &CommPane{tr: tr, events: events, now: time.Now()}
}

// SetEvents replaces the events after a config reload.
func (c *CommPane) SetEvents(events []config.Event) {
	c.events = events
}

// SetNow sets the time the countdowns are computed from. The app calls it
// on every clock tick.
func (c *CommPane) SetNow(now time.Time) {
	c.now = now
}

func (c *CommPane) labels() CountdownLabels {
	return CountdownLabels{
		TMinus:    c.tr.T("time_tminus"),
		Days:      c.tr.T("time_days"),
		Hours:     c.tr.T("time_hours"),
		Mins:      c.tr.T("time_mins"),
		Secs:      c.tr.T("time_secs"),
		Concluded: c.tr.T("time_concluded"),
	}
}

// Countdowns returns the countdown text of each event.
func (c *CommPane) Countdowns() []string {
	labels := c.labels()
	out := make([]string, len(c.events))
	for i, e := range c.events {
		out[i], _ = FormatCountdown(c.now, e.At, labels)
	}
	return out
}

// View renders the countdowns in width x height cells.
func (c *CommPane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	labels := c.labels()
	var lines []string
	for _, e := range c.events {
		text, done := FormatCountdown(c.now, e.At, labels)
		style := TextStyles.Terminal
		if done {
			style = TextStyles.Muted
		}
		lines = append(lines,
			TextStyles.Accent.Render(c.tr.T(e.Key)),
			style.Render("  "+text),
			TextStyles.Muted.Render("  "+eventDate(e.At)),
			"")
	}
	lines = append(lines, lipgloss.NewStyle().Italic(true).Foreground(TextMuted).Render(c.tr.T("comm_desc")))
	return Fit(strings.Join(lines, "\n"), width, height)
}
