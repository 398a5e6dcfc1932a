package table

import (
	"fmt"
	"strings"
)

// FieldKind declares how a column's value is edited. Callers that know
// the shape of their data should declare it explicitly; KindAuto falls
// back to key/value inspection for schemas built from loosely typed
// API payloads.
type FieldKind int

const (
	KindAuto FieldKind = iota
	KindPlain
	KindBooleanStatus
	KindEnumeratedStatus
)

// StatusChoices are the states offered by the enumerated status editor.
var StatusChoices = []string{"pendente", "confirmada", "cancelada"}

// auditKeys are timestamp columns maintained by the backend; they are
// never editable regardless of column flags.
var auditKeys = map[string]bool{
	"created_on":    true,
	"criado_em":     true,
	"updated_on":    true,
	"atualizado_em": true,
}

// Column describes one field's display and edit behavior.
type Column struct {
	Key    string
	Header string
	Width  int // rendered width in cells; 0 shares the remaining space

	// Editable opts a column into inline editing in tabular mode.
	// Compact (card) mode inverts the default: every column is
	// editable unless ReadOnly is set.
	Editable bool
	ReadOnly bool

	Kind      FieldKind
	InputType string // "text", "date", ... hint for the default editor

	// Render produces the display representation. It may panic; the
	// renderer recovers per cell and substitutes a fallback.
	Render func(value any, row Record) string

	// EditRender produces the editable control bound to the edit
	// buffer. When nil the default editor for the column's kind is
	// used.
	EditRender func(buffer Record, onChange func(key string, value any)) string
}

// IsActions reports whether this is the single column reserved for
// action controls, matched by key or header text.
func (c Column) IsActions() bool {
	if c.Key == "actions" || c.Key == "acoes" {
		return true
	}
	return strings.EqualFold(c.Header, "ações")
}

func (c Column) isAudit() bool {
	return auditKeys[c.Key]
}

// kindFor resolves KindAuto against the row's current value. A status
// key holding a bool is a toggle; holding a string it is an enumerated
// status, never a checkbox.
func (c Column) kindFor(row Record) FieldKind {
	if c.Kind != KindAuto {
		return c.Kind
	}
	switch c.Key {
	case "is_active", "ativo":
		return KindBooleanStatus
	case "status":
		switch row[c.Key].(type) {
		case bool:
			return KindBooleanStatus
		case string:
			return KindEnumeratedStatus
		}
	}
	return KindPlain
}

// Schema is the ordered column list driving a table or card view.
type Schema []Column

// NewSchema validates the column set at construction time: every
// non-actions column needs a key, and at most one actions column may
// be present.
func NewSchema(cols ...Column) (Schema, error) {
	actions := 0
	for i, c := range cols {
		if c.IsActions() {
			actions++
			if actions > 1 {
				return nil, fmt.Errorf("schema: more than one actions column")
			}
			continue
		}
		if c.Key == "" {
			return nil, fmt.Errorf("schema: column %d (%q) has no key", i, c.Header)
		}
	}
	return Schema(cols), nil
}

// MustSchema is NewSchema for statically known column sets.
func MustSchema(cols ...Column) Schema {
	s, err := NewSchema(cols...)
	if err != nil {
		panic(err)
	}
	return s
}

// FieldColumns returns the columns that take part in field rendering,
// excluding the actions column.
func (s Schema) FieldColumns() []Column {
	out := make([]Column, 0, len(s))
	for _, c := range s {
		if !c.IsActions() {
			out = append(out, c)
		}
	}
	return out
}

// EditableColumns returns the columns open to editing in the given
// layout mode, in schema order.
func (s Schema) EditableColumns(compact bool) []Column {
	out := make([]Column, 0, len(s))
	for _, c := range s {
		if c.editableIn(compact) {
			out = append(out, c)
		}
	}
	return out
}

// ActionsColumn returns the designated actions column, if any.
func (s Schema) ActionsColumn() (Column, bool) {
	for _, c := range s {
		if c.IsActions() {
			return c, true
		}
	}
	return Column{}, false
}

// editableIn reports whether the column accepts edits in the given
// layout mode. Audit timestamps and the actions column never do.
func (c Column) editableIn(compact bool) bool {
	if c.IsActions() || c.isAudit() {
		return false
	}
	if compact {
		return !c.ReadOnly
	}
	return c.Editable
}
