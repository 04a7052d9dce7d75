package ui

import (
	"strings"

	"distortion-os/gallery"
	"distortion-os/i18n"
	"distortion-os/wm"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tile dimensions of the archive grid, borders included.
const (
	tileWidth  = 20
	tileHeight = 4
	// gridTop is the first grid row, below the sort buttons and the search field.
	gridTop = 2
)

// ArchivePane is the body of the card archive window: sort buttons, a fuzzy
// search field and a grid of tiles.
type ArchivePane struct {
	tr      *i18n.Catalog
	catalog *gallery.Catalog

	sort    gallery.Sort
	search  textinput.Model
	entries []gallery.Entry

	cursor int
	// offset is the first grid row drawn.
	offset int
	// columns is the column count of the last render.
	columns int
}

// NewArchivePane creates the archive sorted by variant.
func NewArchivePane(tr *i18n.Catalog, catalog *gallery.Catalog) *ArchivePane {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 32
	a := &ArchivePane{
		tr:      tr,
		catalog: catalog,
		sort:    gallery.SortAll,
		search:  ti,
		columns: 1,
	}
	a.Refresh()
	return a
}

// Refresh rebuilds the grid for the current sort, query and language.
func (a *ArchivePane) Refresh() {
	lang := a.tr.Language()
	a.search.Placeholder = a.tr.T("search_placeholder")
	if q := strings.TrimSpace(a.search.Value()); q != "" {
		a.entries = a.catalog.Search(q, lang)
	} else {
		a.entries = a.catalog.Grid(a.sort, lang)
	}
	if a.cursor >= len(a.entries) {
		a.cursor = max(len(a.entries)-1, 0)
	}
}

// Sort returns the grid order.
func (a *ArchivePane) Sort() gallery.Sort {
	return a.sort
}

// SetSort changes the grid order and clears the search.
func (a *ArchivePane) SetSort(s gallery.Sort) {
	a.sort = s
	a.search.SetValue("")
	a.cursor, a.offset = 0, 0
	a.Refresh()
}

// Entries returns the tiles in grid order.
func (a *ArchivePane) Entries() []gallery.Entry {
	return a.entries
}

// Selected returns the tile under the cursor.
func (a *ArchivePane) Selected() (gallery.Entry, bool) {
	if a.cursor < 0 || a.cursor >= len(a.entries) {
		return gallery.Entry{}, false
	}
	return a.entries[a.cursor], true
}

// SetCursor moves the cursor to tile i.
func (a *ArchivePane) SetCursor(i int) {
	if i >= 0 && i < len(a.entries) {
		a.cursor = i
	}
}

// Move moves the cursor by dx tiles and dy rows.
func (a *ArchivePane) Move(dx, dy int) {
	a.SetCursor(a.cursor + dx + dy*max(a.columns, 1))
}

// Searching reports whether the search field has focus.
func (a *ArchivePane) Searching() bool {
	return a.search.Focused()
}

// FocusSearch gives the search field focus.
func (a *ArchivePane) FocusSearch() tea.Cmd {
	return a.search.Focus()
}

// BlurSearch takes focus away from the search field. The query stays.
func (a *ArchivePane) BlurSearch() {
	a.search.Blur()
}

// Query returns the search text.
func (a *ArchivePane) Query() string {
	return a.search.Value()
}

// UpdateSearch feeds a key to the search field and refilters the grid.
func (a *ArchivePane) UpdateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.cursor, a.offset = 0, 0
	a.Refresh()
	return cmd
}

func (a *ArchivePane) sortButtons() (string, []button) {
	sorts := []gallery.Sort{gallery.SortAll, gallery.SortID, gallery.SortName}
	labels := []string{a.tr.T("btn_view_all"), a.tr.T("btn_sort_tarot"), a.tr.T("btn_sort_name")}
	actions := make([]Action, len(sorts))
	active := make([]bool, len(sorts))
	for i, s := range sorts {
		actions[i] = Action{Kind: ActionSort, Sort: s}
		active[i] = s == a.sort && a.search.Value() == ""
	}
	return buttonRow(0, labels, actions, active)
}

// visibleRows is how many tile rows fit under the header rows.
func visibleRows(height int) int {
	return max((height-gridTop)/tileHeight, 1)
}

// scroll keeps the cursor row on screen.
func (a *ArchivePane) scroll(height int) {
	rows := visibleRows(height)
	row := a.cursor / max(a.columns, 1)
	if row < a.offset {
		a.offset = row
	}
	if row >= a.offset+rows {
		a.offset = row - rows + 1
	}
}

// View renders the archive in width x height cells.
func (a *ArchivePane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	a.columns = max(width/tileWidth, 1)
	a.scroll(height)
	lang := a.tr.Language()

	buttons, _ := a.sortButtons()
	a.search.Width = max(width-4, 1)
	rows := []string{buttons, a.search.View()}

	if len(a.entries) == 0 {
		rows = append(rows, "", TextStyles.Muted.Render("  ∅"))
		return Fit(strings.Join(rows, "\n"), width, height)
	}

	first := a.offset * a.columns
	last := min(first+visibleRows(height)*a.columns, len(a.entries))
	var line []string
	for i := first; i < last; i++ {
		line = append(line, a.tile(a.entries[i], lang, i == a.cursor))
		if len(line) == a.columns || i == last-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line = nil
		}
	}
	return Fit(strings.Join(rows, "\n"), width, height)
}

func (a *ArchivePane) tile(e gallery.Entry, lang string, selected bool) string {
	inner := tileWidth - 4 // border and padding
	head := TextStyles.Muted.Render(FitLine(e.Card.Numeral+" "+e.Card.Title.In(lang), inner))
	label := FitLine(e.Label(lang), inner)
	if selected {
		label = TextStyles.Accent.Render(label)
	} else {
		label = TextStyles.Primary.Render(label)
	}
	if e.Variant == nil {
		// card tiles show the archive code
		head = TextStyles.Muted.Render(FitLine(e.Card.Numeral+" "+e.Card.Code(), inner))
	}
	return CardStyle(selected).Width(inner + 2).Render(head + "\n" + label)
}

// Click returns the action under p, in body coordinates.
func (a *ArchivePane) Click(p wm.Point, width, height int) Action {
	switch {
	case p.Y == 0:
		_, buttons := a.sortButtons()
		return hit(buttons, p)
	case p.Y == 1:
		return Action{Kind: ActionFocusSearch}
	case p.Y < gridTop:
		return Action{}
	}
	columns := max(width/tileWidth, 1)
	col := p.X / tileWidth
	row := (p.Y-gridTop)/tileHeight + a.offset
	if p.X < 0 || col >= columns || row-a.offset >= visibleRows(height) {
		return Action{}
	}
	i := row*columns + col
	if i >= len(a.entries) {
		return Action{}
	}
	return Action{Kind: ActionSelectEntry, Index: i}
}

// Scroll moves the grid by delta rows, used by the mouse wheel.
func (a *ArchivePane) Scroll(delta int) {
	a.Move(0, delta)
}
