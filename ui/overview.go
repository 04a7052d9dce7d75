package ui

import (
	"fmt"
	"strings"

	"distortion-os/i18n"
	"distortion-os/log"
	"distortion-os/wm"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// BriefFigures are the caption keys of the briefing carousel, in order.
var BriefFigures = []string{"brief_fig_main", "brief_fig_a", "brief_fig_b", "brief_fig_c", "brief_fig_d"}

// OverviewPane is the body of the project brief window: the briefing text
// rendered from markdown and a carousel of figure captions.
type OverviewPane struct {
	tr  *i18n.Catalog
	fig int

	// rendered caches the markdown per language and width.
	rendered map[string]string
}

func NewOverviewPane(tr *i18n.Catalog) *OverviewPane {
	return &OverviewPane{tr: tr, rendered: make(map[string]string)}
}

// Figure returns the index of the figure on display.
func (o *OverviewPane) Figure() int {
	return o.fig
}

// Counter is the carousel position, e.g. "[ 2 / 5 ]".
func (o *OverviewPane) Counter() string {
	return fmt.Sprintf("[ %d / %d ]", o.fig+1, len(BriefFigures))
}

// Step moves the carousel by dir figures, wrapping at both ends.
func (o *OverviewPane) Step(dir int) {
	n := len(BriefFigures)
	o.fig = ((o.fig+dir)%n + n) % n
}

func (o *OverviewPane) markdown(width int) string {
	key := fmt.Sprintf("%s/%d", o.tr.Language(), width)
	if out, ok := o.rendered[key]; ok {
		return out
	}
	src := o.tr.T("brief_body")
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 10)),
	)
	var out string
	if err == nil {
		out, err = r.Render(src)
	}
	if err != nil {
		log.WarningLog.Printf("failed to render brief: %v", err)
		out = src
	}
	out = strings.Trim(out, "\n")
	o.rendered[key] = out
	return out
}

func (o *OverviewPane) carousel(width, y int) (string, []button) {
	prev := ButtonStyle(false).Render("<")
	next := ButtonStyle(false).Render(">")
	pw, nw := lipgloss.Width(prev), lipgloss.Width(next)
	caption := o.tr.T(BriefFigures[o.fig]) + " " + o.Counter()
	middle := lipgloss.PlaceHorizontal(max(width-pw-nw, 0), lipgloss.Center,
		TextStyles.Secondary.Render(FitLine(caption, max(width-pw-nw, 0))))
	buttons := []button{
		{rect: wm.Rect{X: 0, Y: y, Width: pw, Height: 1}, action: Action{Kind: ActionBriefPrev}},
		{rect: wm.Rect{X: width - nw, Y: y, Width: nw, Height: 1}, action: Action{Kind: ActionBriefNext}},
	}
	return prev + middle + next, buttons
}

// View renders the brief in width x height cells. The carousel takes the
// last row.
func (o *OverviewPane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row, _ := o.carousel(width, height-1)
	body := Fit(o.markdown(width), width, height-1)
	if height == 1 {
		return row
	}
	return body + "\n" + row
}

// Click returns the action under p, in body coordinates.
func (o *OverviewPane) Click(p wm.Point, width, height int) Action {
	_, buttons := o.carousel(width, height-1)
	return hit(buttons, p)
}
