package ui

import (
	"fmt"
	"strings"

	"distortion-os/gallery"
	"distortion-os/i18n"
	"distortion-os/viewer"
	"distortion-os/wm"

	"github.com/charmbracelet/lipgloss"
)

// ViewerPane is the body of the card viewer window. It is the render target
// of the viewer engine.
type ViewerPane struct {
	tr *i18n.Catalog

	transform viewer.Transform
	zoom      string

	card    *gallery.Card
	variant *gallery.Variant
	copied  bool
}

// NewViewerPane creates an empty viewer.
func NewViewerPane(tr *i18n.Catalog) *ViewerPane {
	return &ViewerPane{tr: tr, transform: viewer.Identity, zoom: "100%"}
}

// ApplyTransform implements viewer.Target.
func (v *ViewerPane) ApplyTransform(t viewer.Transform) {
	v.transform = t
}

// SetZoomLabel implements viewer.Target.
func (v *ViewerPane) SetZoomLabel(label string) {
	v.zoom = label
}

// Transform returns the last transform the engine pushed.
func (v *ViewerPane) Transform() viewer.Transform {
	return v.transform
}

// Show puts a card in the viewer. variant may be nil for cards nobody drew.
func (v *ViewerPane) Show(card gallery.Card, variant *gallery.Variant) {
	v.card = &card
	v.variant = variant
	v.copied = false
}

// Card returns the card on display.
func (v *ViewerPane) Card() (gallery.Card, bool) {
	if v.card == nil {
		return gallery.Card{}, false
	}
	return *v.card, true
}

// Variant returns the variant on display.
func (v *ViewerPane) Variant() *gallery.Variant {
	return v.variant
}

// Link returns the first social link of the artist on display.
func (v *ViewerPane) Link() (string, bool) {
	if v.variant == nil || len(v.variant.Socials) == 0 {
		return "", false
	}
	return v.variant.Socials[0].URL, true
}

// SetCopied switches the copy button to its confirmation label.
func (v *ViewerPane) SetCopied(copied bool) {
	v.copied = copied
}

// canvasHeight is how many rows the card drawing gets.
func canvasHeight(height int) int {
	if height >= 8 {
		return height - 4
	}
	return max(height-1, 0)
}

func (v *ViewerPane) buttons(height int) (string, []button) {
	copyLabel := v.tr.T("viewer_copy")
	if v.copied {
		copyLabel = v.tr.T("viewer_copied")
	}
	_, hasLink := v.Link()
	return buttonRow(height-1,
		[]string{"-", v.zoom, "+", v.tr.T("viewer_reset"), copyLabel},
		[]Action{
			{Kind: ActionZoomOut},
			{Kind: ActionNone},
			{Kind: ActionZoomIn},
			{Kind: ActionResetView},
			{Kind: ActionCopyLink},
		},
		[]bool{false, true, false, false, hasLink && v.copied},
	)
}

// View renders the viewer in width x height cells.
func (v *ViewerPane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lang := v.tr.Language()
	ch := canvasHeight(height)

	var caption []string
	if v.card != nil {
		caption = []string{v.card.Numeral, v.card.Title.In(lang)}
		if v.variant != nil {
			caption = append(caption, "", v.variant.Char.In(lang))
		}
	}
	c := newCanvas(width, ch)
	if v.card != nil {
		drawCard(c, v.transform, caption)
	}
	rows := []string{lipgloss.NewStyle().Foreground(Gold).Render(c.String())}

	if height >= 8 {
		rows = append(rows, v.info(lang)...)
	}
	row, _ := v.buttons(height)
	rows = append(rows, row)
	return Fit(strings.Join(rows, "\n"), width, height)
}

func (v *ViewerPane) info(lang string) []string {
	if v.card == nil {
		return []string{"", TextStyles.Muted.Render(v.tr.T("viewer_no_variant")), ""}
	}
	title := TextStyles.Accent.Render(v.card.Title.In(lang)) + "  " +
		TextStyles.Muted.Render(v.card.Code())
	if v.variant == nil {
		return []string{title, TextStyles.Muted.Render(v.tr.T("viewer_no_variant")), ""}
	}
	who := fmt.Sprintf("%s: %s  %s: %s (@%s)",
		v.tr.T("viewer_char_label"), v.variant.Char.In(lang),
		v.tr.T("viewer_illus_label"), v.variant.Artist, v.variant.Pen)
	var socials []string
	for _, s := range v.variant.Socials {
		socials = append(socials, s.Platform)
	}
	role := lipgloss.NewStyle().Foreground(Cyan).Render(v.variant.Role.In(lang))
	if len(socials) > 0 {
		role += "  " + TextStyles.Link.Render(strings.Join(socials, " · "))
	}
	return []string{title, TextStyles.Secondary.Render(who), role}
}

// Click returns the action of the button under p, in body coordinates.
// onButton reports whether p is on the button row at all, so the caller can
// keep the press from starting a rotation.
func (v *ViewerPane) Click(p wm.Point, width, height int) (a Action, onButton bool) {
	if p.Y != height-1 {
		return Action{}, false
	}
	_, buttons := v.buttons(height)
	a = hit(buttons, p)
	for _, b := range buttons {
		if b.rect.Contains(p) {
			return a, true
		}
	}
	return a, false
}

// OnSurface reports whether p is on the card drawing.
func (v *ViewerPane) OnSurface(p wm.Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < canvasHeight(height)
}
