package ui

import (
	"strconv"

	"distortion-os/gallery"
	"distortion-os/i18n"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EmployeesPane is the body of the employee roster window, a table of every
// variant and the artist who drew it.
type EmployeesPane struct {
	tr      *i18n.Catalog
	catalog *gallery.Catalog
	table   table.Model

	// lang and width are what the rows and columns were last built for.
	lang  string
	width int
}

func NewEmployeesPane(tr *i18n.Catalog, catalog *gallery.Catalog) *EmployeesPane {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(GoldDim).
		BorderBottom(true).
		Foreground(Gold).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(TextPrimary).
		Background(BackgroundSelected).
		Bold(false)

	e := &EmployeesPane{
		tr:      tr,
		catalog: catalog,
		table:   table.New(table.WithFocused(true), table.WithStyles(styles)),
	}
	e.rebuild(40)
	return e
}

// Rows returns the table rows for the current language.
func (e *EmployeesPane) Rows() []table.Row {
	return e.table.Rows()
}

// Cursor returns the selected row.
func (e *EmployeesPane) Cursor() int {
	return e.table.Cursor()
}

func (e *EmployeesPane) rebuild(width int) {
	lang := e.tr.Language()
	if lang == e.lang && width == e.width {
		return
	}
	// NO. gets a fixed column, the other five share the rest
	const noWidth = 4
	w := max((width-noWidth-12)/5, 4)
	e.table.SetColumns([]table.Column{
		{Title: e.tr.T("th_no"), Width: noWidth},
		{Title: e.tr.T("th_card"), Width: w},
		{Title: e.tr.T("th_char"), Width: w},
		{Title: e.tr.T("th_emp"), Width: w},
		{Title: e.tr.T("th_pen"), Width: w},
		{Title: e.tr.T("th_role"), Width: w},
	})

	var rows []table.Row
	for _, v := range e.catalog.Roster() {
		card, _ := e.catalog.Card(v.CardID)
		rows = append(rows, table.Row{
			strconv.Itoa(v.No),
			card.Title.In(lang),
			v.Char.In(lang),
			v.Artist,
			v.Pen,
			v.Role.In(lang),
		})
	}
	e.table.SetRows(rows)
	e.lang, e.width = lang, width
}

// Update forwards a key to the table.
func (e *EmployeesPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.table, cmd = e.table.Update(msg)
	return cmd
}

// Scroll moves the selection by delta rows.
func (e *EmployeesPane) Scroll(delta int) {
	if delta < 0 {
		e.table.MoveUp(-delta)
	} else {
		e.table.MoveDown(delta)
	}
}

// View renders the roster in width x height cells.
func (e *EmployeesPane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	e.rebuild(width)
	e.table.SetWidth(width)
	// the header and its border take two rows
	e.table.SetHeight(max(height-2, 1))
	return Fit(e.table.View(), width, height)
}
