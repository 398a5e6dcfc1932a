package table

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// displayValue produces the read-mode representation of one cell. A
// panicking Render never aborts the surrounding pass: the failure is
// logged and the cell falls back to a stringified value.
func displayValue(col Column, row Record, logf func(format string, args ...any)) string {
	value := row[col.Key]

	if col.Render != nil {
		if out, ok := safeRender(col, value, row, logf); ok {
			return out
		}
		return fallbackValue(value)
	}

	if col.isAudit() {
		if s, ok := value.(string); ok && s != "" {
			return formatAuditDate(s)
		}
	}

	return fallbackValue(value)
}

func safeRender(col Column, value any, row Record, logf func(format string, args ...any)) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if logf != nil {
				logf("render failed for column %q: %v", col.Key, r)
			}
			ok = false
		}
	}()
	return col.Render(value, row), true
}

// fallbackValue stringifies a raw value: "-" for nil, JSON for
// object-typed values, fmt.Sprint for everything else.
func fallbackValue(v any) string {
	if v == nil {
		return "-"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Struct:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}

// formatAuditDate renders backend timestamps as pt-BR dates. Unparsable
// input is shown as received.
func formatAuditDate(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

// editorCell produces the edit-mode control for one cell: the caller's
// EditRender when supplied, else the default editor for the resolved
// field kind.
func editorCell(col Column, row Record, ed *Editor) string {
	if col.EditRender != nil {
		return col.EditRender(ed.Buffer(), ed.ChangeField)
	}

	value := ed.FieldValue(col.Key, row)

	switch col.kindFor(row) {
	case KindBooleanStatus:
		if truthy(value) {
			return EditingStyle.Render("[x] Ativo")
		}
		return EditingStyle.Render("[ ] Inativo")

	case KindEnumeratedStatus:
		current, _ := value.(string)
		if current == "" {
			current = StatusChoices[0]
		}
		return EditingStyle.Render("◂ " + current + " ▸")

	default:
		text := ""
		if value != nil {
			text = fmt.Sprint(value)
		}
		inputStyle := lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSelected)).
			Foreground(lipgloss.Color(ColorWhite))
		return inputStyle.Render(text + "▏")
	}
}

func truthy(v any) bool {
	b, _ := v.(bool)
	return b
}

// truncate shortens a plain string to maxWidth, reserving room for an
// ellipsis.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}

// padCell pads a possibly styled string to the column width based on
// its rendered width.
func padCell(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap < 0 {
		return s
	}
	out := s
	for i := 0; i < gap; i++ {
		out += " "
	}
	return out
}
