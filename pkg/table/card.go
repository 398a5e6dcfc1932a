package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// CardRenderer draws records as stacked cards, the compact layout used
// on narrow terminals. Editability inverts relative to tabular mode:
// every field edits unless the column opts out. Custom action renderers
// are suppressed here; cards carry their own fixed Edit and
// Save/Cancel buttons so controls are never duplicated.
type CardRenderer struct {
	Width   int
	Records []Record
	Schema  Schema
	Cursor  int
	Loading bool

	CurrentPage int
	TotalPages  int

	Editor *Editor

	Logf func(format string, args ...any)
}

// NewCardRenderer creates a card renderer for the given schema.
func NewCardRenderer(schema Schema, width int) *CardRenderer {
	return &CardRenderer{
		Width:       width,
		Schema:      schema,
		CurrentPage: 1,
		TotalPages:  1,
	}
}

// SetSize updates the card width.
func (r *CardRenderer) SetSize(width int) {
	r.Width = width
}

// View renders all cards for the current page plus the pager.
func (r *CardRenderer) View() string {
	if r.Loading {
		return CardBorderStyle.Width(r.cardWidth()).Render(LoadingStyle.Render("Carregando..."))
	}
	if len(r.Records) == 0 {
		return CardBorderStyle.Width(r.cardWidth()).Render(EmptyStyle.Render("Nenhum registro encontrado"))
	}

	var cards []string
	for i, row := range r.Records {
		cards = append(cards, r.renderCard(i, row))
	}
	out := strings.Join(cards, "\n")

	if r.TotalPages > 1 {
		prev := "← Anterior"
		if r.CurrentPage > 1 {
			prev = PagerStyle.Render(prev)
		} else {
			prev = PagerDisabledStyle.Render(prev)
		}
		next := "Próxima →"
		if r.CurrentPage < r.TotalPages {
			next = PagerStyle.Render(next)
		} else {
			next = PagerDisabledStyle.Render(next)
		}
		out += "\n" + prev + "  " + PagerStyle.Render(pageIndicator(r.CurrentPage, r.TotalPages)) + "  " + next
	}

	return out
}

func (r *CardRenderer) cardWidth() int {
	w := r.Width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (r *CardRenderer) renderCard(index int, row Record) string {
	editing := r.Editor != nil && r.Editor.Editing(row.ID())
	width := r.cardWidth()
	inner := width - 2

	var b strings.Builder
	b.WriteString(CardTitleStyle.Render(r.cardTitle(row)))
	b.WriteString("\n")

	for _, col := range r.Schema.FieldColumns() {
		label := col.Header
		if label == "" {
			label = col.Key
		}

		var value string
		if editing && col.editableIn(true) {
			value = editorCell(col, row, r.Editor)
		} else {
			value = displayValue(col, row, r.Logf)
			if !strings.Contains(value, "\x1b") {
				value = wordwrap.String(value, inner)
			}
		}

		b.WriteString(FieldLabelStyle.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(r.renderButtons(editing))

	style := CardBorderStyle
	if editing {
		style = CardEditingBorderStyle
	}
	if r.Cursor == index {
		style = style.BorderForeground(lipgloss.Color(ColorActive))
	}
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// cardTitle uses the first non-actions column as the card header, the
// record id when the schema is empty.
func (r *CardRenderer) cardTitle(row Record) string {
	fields := r.Schema.FieldColumns()
	if len(fields) == 0 {
		return "ID: " + row.ID()
	}
	first := fields[0]
	label := first.Header
	if label == "" {
		label = first.Key
	}
	value := row[first.Key]
	if value == nil {
		return label + ": -"
	}
	return label + ": " + fmt.Sprint(value)
}

func (r *CardRenderer) renderButtons(editing bool) string {
	if editing {
		return SaveButtonStyle.Render("Salvar") + " " + CancelButtonStyle.Render("Cancelar")
	}
	return ButtonStyle.Render("Editar")
}

func pageIndicator(current, total int) string {
	return fmt.Sprintf("Página %d de %d", current, total)
}
