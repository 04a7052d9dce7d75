package ui

import (
	"fmt"
	"strings"

	"distortion-os/gallery"
	"distortion-os/i18n"
	"distortion-os/wm"
)

// selectorTop is the first variant row, below the prompt and a blank row.
const selectorTop = 2

// SelectorPane lists the variants of a card so one can be opened in the
// viewer.
type SelectorPane struct {
	tr       *i18n.Catalog
	card     gallery.Card
	variants []gallery.Variant
	cursor   int
}

func NewSelectorPane(tr *i18n.Catalog) *SelectorPane {
	return &SelectorPane{tr: tr}
}

// Show lists the variants of card.
func (s *SelectorPane) Show(card gallery.Card, variants []gallery.Variant) {
	s.card = card
	s.variants = variants
	s.cursor = 0
}

// Variants returns the variants on display.
func (s *SelectorPane) Variants() []gallery.Variant {
	return s.variants
}

// Cursor returns the highlighted row.
func (s *SelectorPane) Cursor() int {
	return s.cursor
}

// Move moves the highlight by delta rows, stopping at both ends.
func (s *SelectorPane) Move(delta int) {
	s.cursor = min(max(s.cursor+delta, 0), max(len(s.variants)-1, 0))
}

// View renders the list in width x height cells.
func (s *SelectorPane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lang := s.tr.Language()
	lines := []string{
		TextStyles.Secondary.Render(s.tr.T("selector_prefix")) + TextStyles.Accent.Render(s.card.Title.In(lang)),
		"",
	}
	for i, v := range s.variants {
		row := fmt.Sprintf("  %-3d %s · %s: %s", v.No, v.Char.In(lang), s.tr.T("viewer_illus_label"), v.Artist)
		if i == s.cursor {
			row = TextStyles.Accent.Render(IconCursor + row[1:])
		} else {
			row = TextStyles.Primary.Render(row)
		}
		lines = append(lines, row)
	}
	return Fit(strings.Join(lines, "\n"), width, height)
}

// Click returns ActionSelectVariant for a click on a variant row.
func (s *SelectorPane) Click(p wm.Point, width, height int) Action {
	i := p.Y - selectorTop
	if p.X < 0 || p.X >= width || i < 0 || i >= len(s.variants) {
		return Action{}
	}
	return Action{Kind: ActionSelectVariant, Index: i}
}
