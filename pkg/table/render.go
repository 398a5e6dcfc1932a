package table

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// TableRenderer draws a record collection as table rows with one
// column per schema entry. It owns no data: records, cursor, loading
// flag and pagination all come from the hosting page, and per-row edit
// state is read from the shared Editor.
type TableRenderer struct {
	Width    int
	Height   int
	Schema   Schema
	Records  []Record
	Cursor   int
	IsActive bool
	Loading  bool

	CurrentPage int
	TotalPages  int

	Editor *Editor

	// ActionsView renders the caller's action cell in tabular mode.
	// When nil the actions column renders empty.
	ActionsView func(row Record, editing bool) string

	// Logf receives render-failure diagnostics. Nil discards them.
	Logf func(format string, args ...any)

	Viewport viewport.Model
}

// NewTableRenderer creates a renderer for the given schema.
func NewTableRenderer(schema Schema, width, height int) *TableRenderer {
	vp := viewport.New(width-2, height-4) // header and pager rows
	return &TableRenderer{
		Width:       width,
		Height:      height,
		Schema:      schema,
		CurrentPage: 1,
		TotalPages:  1,
		Viewport:    vp,
	}
}

// SetSize updates the dimensions of the table.
func (r *TableRenderer) SetSize(width, height int) {
	r.Width = width
	r.Height = height
	r.Viewport.Width = width - 2
	r.Viewport.Height = height - 4
	r.updateContent()
}

// SetRecords replaces the displayed page of records.
func (r *TableRenderer) SetRecords(records []Record) {
	r.Records = records
	if r.Cursor >= len(records) {
		r.Cursor = 0
	}
	r.updateContent()
}

// SetCursor moves the row cursor.
func (r *TableRenderer) SetCursor(cursor int) {
	r.Cursor = cursor
	r.updateContent()
	r.scrollToCursor()
}

// SetLoading toggles the loading placeholder.
func (r *TableRenderer) SetLoading(loading bool) {
	r.Loading = loading
	r.updateContent()
}

// SetPage updates the pagination state (1-indexed).
func (r *TableRenderer) SetPage(current, total int) {
	r.CurrentPage = current
	r.TotalPages = total
}

// Refresh rebuilds the viewport content, needed after edit-state
// transitions that change how rows render.
func (r *TableRenderer) Refresh() {
	r.updateContent()
}

// PrevEnabled reports whether the Previous control is active.
func (r *TableRenderer) PrevEnabled() bool { return r.CurrentPage > 1 }

// NextEnabled reports whether the Next control is active.
func (r *TableRenderer) NextEnabled() bool { return r.CurrentPage < r.TotalPages }

// PageChange invokes the page-change callback for the target page when
// the corresponding control is enabled. No clamping happens beyond the
// enabled checks; fetching is the caller's job.
func (r *TableRenderer) PageChange(target int) {
	if r.Editor == nil || r.Editor.callbacks.OnPageChange == nil {
		return
	}
	if target < r.CurrentPage && !r.PrevEnabled() {
		return
	}
	if target > r.CurrentPage && !r.NextEnabled() {
		return
	}
	r.Editor.callbacks.OnPageChange(target)
}

// RenderHeader renders the column header row.
func (r *TableRenderer) RenderHeader() string {
	widths := r.columnWidths()
	var parts []string
	for i, col := range r.Schema {
		parts = append(parts, padCell(truncate(col.Header, widths[i]), widths[i]))
	}
	return HeaderStyle.Render("  " + strings.Join(parts, " "))
}

// View renders header, rows and pager.
func (r *TableRenderer) View() string {
	var b strings.Builder
	b.WriteString(r.RenderHeader())
	b.WriteString("\n")
	b.WriteString(r.Viewport.View())
	if pager := r.RenderPager(); pager != "" {
		b.WriteString("\n")
		b.WriteString(pager)
	}
	return b.String()
}

// RenderPager renders the Previous/Next controls, or nothing when a
// single page exists.
func (r *TableRenderer) RenderPager() string {
	if r.TotalPages <= 1 {
		return ""
	}

	prev := "← Anterior"
	if r.PrevEnabled() {
		prev = PagerStyle.Render(prev)
	} else {
		prev = PagerDisabledStyle.Render(prev)
	}

	next := "Próxima →"
	if r.NextEnabled() {
		next = PagerStyle.Render(next)
	} else {
		next = PagerDisabledStyle.Render(next)
	}

	indicator := PagerStyle.Render(pageIndicator(r.CurrentPage, r.TotalPages))
	return "  " + prev + "  " + indicator + "  " + next
}

// columnWidths distributes the viewport width: fixed widths as
// declared, the rest split evenly among unsized columns.
func (r *TableRenderer) columnWidths() []int {
	widths := make([]int, len(r.Schema))
	available := r.Width - 4 - len(r.Schema) // prefix and separators
	flexible := 0

	for i, col := range r.Schema {
		if col.Width > 0 {
			widths[i] = col.Width
			available -= col.Width
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		share := available / flexible
		if share < 4 {
			share = 4
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

func (r *TableRenderer) updateContent() {
	r.Viewport.SetContent(r.buildContent())
}

func (r *TableRenderer) buildContent() string {
	if r.Loading {
		return LoadingStyle.Render("Carregando...")
	}
	if len(r.Records) == 0 {
		return EmptyStyle.Render("Nenhum registro encontrado")
	}

	widths := r.columnWidths()
	var content strings.Builder
	for i, row := range r.Records {
		content.WriteString(r.renderRow(i, row, widths))
		if i < len(r.Records)-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}

func (r *TableRenderer) renderRow(index int, row Record, widths []int) string {
	editing := r.Editor != nil && r.Editor.Editing(row.ID())
	selected := r.IsActive && index == r.Cursor

	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	var cells []string
	for i, col := range r.Schema {
		var cell string
		switch {
		case col.IsActions():
			if r.ActionsView != nil {
				cell = r.ActionsView(row, editing)
			}
		case editing && col.editableIn(false):
			cell = editorCell(col, row, r.Editor)
		default:
			cell = displayValue(col, row, r.Logf)
		}

		if !strings.Contains(cell, "\x1b") {
			cell = truncate(cell, widths[i])
			switch {
			case editing && col.editableIn(false):
				cell = EditingStyle.Render(cell)
			case selected:
				cell = SelectedStyle.Render(cell)
			default:
				cell = NormalStyle.Render(cell)
			}
		}
		cells = append(cells, padCell(cell, widths[i]))
	}

	return prefix + strings.Join(cells, " ")
}

func (r *TableRenderer) scrollToCursor() {
	if !r.IsActive || len(r.Records) == 0 {
		return
	}
	if r.Cursor < r.Viewport.YOffset {
		r.Viewport.SetYOffset(r.Cursor)
	} else if r.Cursor >= r.Viewport.YOffset+r.Viewport.Height {
		r.Viewport.SetYOffset(r.Cursor - r.Viewport.Height + 1)
	}
}
