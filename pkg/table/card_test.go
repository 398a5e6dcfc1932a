package table

import (
	"strings"
	"testing"
)

func newTestCardRenderer(t *testing.T, schema Schema, records []Record) *CardRenderer {
	t.Helper()
	r := NewCardRenderer(schema, 60)
	r.Editor = NewEditor(BufferInternal, Callbacks{})
	r.Records = records
	return r
}

func TestCardTitleUsesFirstFieldColumn(t *testing.T) {
	schema := MustSchema(
		Column{Key: "actions", Header: "Ações"},
		Column{Key: "nome", Header: "Nome"},
		Column{Key: "documento", Header: "Documento"},
	)
	r := newTestCardRenderer(t, schema, []Record{{"id": 1, "nome": "Ana", "documento": "111"}})

	view := r.View()
	if !strings.Contains(view, "Nome: Ana") {
		t.Errorf("card title should come from first non-actions column, got:\n%s", view)
	}
}

func TestCardFixedButtons(t *testing.T) {
	schema := MustSchema(
		Column{Key: "nome", Header: "Nome"},
		// custom actions renderer must be suppressed in card mode
		Column{Key: "actions", Header: "Ações", Render: func(value any, row Record) string {
			return "CUSTOM-ACTION"
		}},
	)
	records := []Record{{"id": 1, "nome": "Ana"}}
	r := newTestCardRenderer(t, schema, records)

	t.Run("idle shows edit button only", func(t *testing.T) {
		view := r.View()
		if !strings.Contains(view, "Editar") {
			t.Error("expected fixed Editar button")
		}
		if strings.Contains(view, "Salvar") || strings.Contains(view, "Cancelar") {
			t.Error("save/cancel must not show while idle")
		}
		if strings.Contains(view, "CUSTOM-ACTION") {
			t.Error("custom action renderers are suppressed in card mode")
		}
	})

	t.Run("editing shows save and cancel", func(t *testing.T) {
		r.Editor.BeginEdit(records[0])
		defer r.Editor.Cancel()

		view := r.View()
		if !strings.Contains(view, "Salvar") || !strings.Contains(view, "Cancelar") {
			t.Error("expected Salvar/Cancelar while editing")
		}
	})
}

func TestCardCompactEditDefaults(t *testing.T) {
	schema := MustSchema(
		Column{Key: "nome", Header: "Nome"}, // no Editable flag: edits by default in cards
		Column{Key: "morador_nome", Header: "Morador", ReadOnly: true},
	)
	records := []Record{{"id": 1, "nome": "Ana", "morador_nome": "Carlos"}}
	r := newTestCardRenderer(t, schema, records)

	r.Editor.BeginEdit(records[0])
	r.Editor.ChangeField("nome", "Editada")
	defer r.Editor.Cancel()

	view := r.View()
	if !strings.Contains(view, "Editada") {
		t.Errorf("default-editable field should render the buffer value, got:\n%s", view)
	}
	if !strings.Contains(view, "Carlos") {
		t.Errorf("read-only field should keep its display value, got:\n%s", view)
	}
}

func TestCardPlaceholders(t *testing.T) {
	schema := MustSchema(Column{Key: "nome", Header: "Nome"})

	t.Run("loading", func(t *testing.T) {
		r := newTestCardRenderer(t, schema, []Record{{"id": 1, "nome": "Ana"}})
		r.Loading = true
		view := r.View()
		if !strings.Contains(view, "Carregando") {
			t.Error("expected loading placeholder")
		}
		if strings.Contains(view, "Ana") {
			t.Error("cards must not render while loading")
		}
	})

	t.Run("empty", func(t *testing.T) {
		r := newTestCardRenderer(t, schema, nil)
		if !strings.Contains(r.View(), "Nenhum registro encontrado") {
			t.Error("expected empty placeholder")
		}
	})

	t.Run("placeholders suppress pager", func(t *testing.T) {
		r := newTestCardRenderer(t, schema, nil)
		r.CurrentPage, r.TotalPages = 1, 3
		if strings.Contains(r.View(), "Página") {
			t.Error("empty state must not render the pager")
		}
	})
}

func TestCardPager(t *testing.T) {
	schema := MustSchema(Column{Key: "nome", Header: "Nome"})
	r := newTestCardRenderer(t, schema, []Record{{"id": 1, "nome": "Ana"}})
	r.CurrentPage, r.TotalPages = 2, 3

	view := r.View()
	if !strings.Contains(view, "Página 2 de 3") {
		t.Errorf("expected page indicator, got:\n%s", view)
	}
	if !strings.Contains(view, "Anterior") || !strings.Contains(view, "Próxima") {
		t.Error("expected both pager controls")
	}
}
