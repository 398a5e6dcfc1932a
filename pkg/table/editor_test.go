package table

import "testing"

func TestEditorBeginEditSeedsBuffer(t *testing.T) {
	var gotRow string
	var gotBuffer Record
	ed := NewEditor(BufferInternal, Callbacks{
		OnEditRow:      func(id string) { gotRow = id },
		OnBufferChange: func(buf Record) { gotBuffer = buf },
	})

	rec := Record{"id": 7, "nome": "Maria", "documento": "123"}
	ed.BeginEdit(rec)

	if ed.State() != StateEditing {
		t.Fatal("expected editing state")
	}
	if ed.EditingRow() != "7" {
		t.Errorf("editing row: got %q, want %q", ed.EditingRow(), "7")
	}
	if gotRow != "7" {
		t.Errorf("OnEditRow: got %q", gotRow)
	}
	if gotBuffer["nome"] != "Maria" {
		t.Errorf("buffer seed: got %v", gotBuffer["nome"])
	}

	// buffer must be a copy, not the record itself
	ed.ChangeField("nome", "Ana")
	if rec["nome"] != "Maria" {
		t.Error("original record was mutated")
	}
}

func TestEditorSingleActiveEdit(t *testing.T) {
	ed := NewEditor(BufferInternal, Callbacks{})

	recA := Record{"id": 1, "nome": "Ana", "placa_veiculo": "ABC1234"}
	recB := Record{"id": 2, "nome": "Bruno"}

	ed.BeginEdit(recA)
	ed.ChangeField("nome", "Ana Paula")
	ed.BeginEdit(recB)

	buf := ed.Buffer()
	if ed.EditingRow() != "2" {
		t.Fatalf("editing row: got %q, want 2", ed.EditingRow())
	}
	if buf["nome"] != "Bruno" {
		t.Errorf("buffer nome: got %v, want Bruno", buf["nome"])
	}
	if _, leaked := buf["placa_veiculo"]; leaked {
		t.Error("field from previous row's buffer leaked into new buffer")
	}
}

func TestEditorChangeFieldInternal(t *testing.T) {
	var notified Record
	ed := NewEditor(BufferInternal, Callbacks{
		OnBufferChange: func(buf Record) { notified = buf },
	})

	ed.BeginEdit(Record{"id": 1, "nome": "Ana"})
	ed.ChangeField("nome", "Beatriz")

	if ed.Buffer()["nome"] != "Beatriz" {
		t.Errorf("buffer: got %v", ed.Buffer()["nome"])
	}
	if notified["nome"] != "Beatriz" {
		t.Errorf("OnBufferChange: got %v", notified["nome"])
	}
}

func TestEditorChangeFieldExternalDelegates(t *testing.T) {
	var gotKey string
	var gotValue any
	bufferChanges := 0
	ed := NewEditor(BufferExternal, Callbacks{
		OnFieldChange:  func(key string, value any) { gotKey, gotValue = key, value },
		OnBufferChange: func(Record) { bufferChanges++ },
	})

	ed.BeginEdit(Record{"id": 1, "nome": "Ana"})
	seeded := bufferChanges
	ed.ChangeField("nome", "Clara")

	if gotKey != "nome" || gotValue != "Clara" {
		t.Errorf("delegation: got (%q, %v)", gotKey, gotValue)
	}
	if ed.Buffer()["nome"] != "Ana" {
		t.Error("external mode must keep no independent field state")
	}
	if bufferChanges != seeded {
		t.Error("external change must not fire OnBufferChange")
	}
}

func TestEditorSaveUsesExternalBufferWhenTracked(t *testing.T) {
	var savedID string
	var savedPayload Record
	ed := NewEditor(BufferExternal, Callbacks{
		OnSave: func(id string, payload Record) { savedID, savedPayload = id, payload },
	})

	ed.BeginEdit(Record{"id": 3, "nome": "Ana"})
	ed.SetExternalBuffer(Record{"id": 3, "nome": "Externa"})
	ed.Save("3")

	if savedID != "3" {
		t.Errorf("saved id: got %q", savedID)
	}
	if savedPayload["nome"] != "Externa" {
		t.Errorf("payload: got %v, want external buffer", savedPayload["nome"])
	}
}

func TestEditorSaveClearsOptimistically(t *testing.T) {
	saves := 0
	ed := NewEditor(BufferInternal, Callbacks{
		OnSave: func(string, Record) {
			saves++
			panic("persist failed")
		},
	})

	ed.BeginEdit(Record{"id": 1, "nome": "Ana"})

	func() {
		defer func() { recover() }()
		ed.Save("1")
	}()

	if saves != 1 {
		t.Fatalf("saves: got %d", saves)
	}
	// The engine does not know whether the save succeeded; state is
	// cleared before the outcome is known.
	if ed.State() != StateIdle || ed.EditingRow() != "" {
		t.Error("expected cleared edit state after save")
	}
}

func TestEditorSaveWithInternalBuffer(t *testing.T) {
	var savedPayload Record
	ed := NewEditor(BufferInternal, Callbacks{
		OnSave: func(_ string, payload Record) { savedPayload = payload },
	})

	ed.BeginEdit(Record{"id": 5, "nome": "Ana", "documento": "111"})
	ed.ChangeField("nome", "Alterada")
	ed.Save("5")

	if savedPayload["nome"] != "Alterada" {
		t.Errorf("edited field: got %v", savedPayload["nome"])
	}
	if savedPayload["documento"] != "111" {
		t.Errorf("untouched field must carry the record value: got %v", savedPayload["documento"])
	}
	if ed.State() != StateIdle {
		t.Error("expected idle state after save")
	}
	if ed.Buffer() != nil {
		t.Error("expected discarded buffer after save")
	}
}

func TestEditorCancel(t *testing.T) {
	cancelled := false
	var lastRow string
	ed := NewEditor(BufferInternal, Callbacks{
		OnCancel:  func() { cancelled = true },
		OnEditRow: func(id string) { lastRow = id },
	})

	ed.BeginEdit(Record{"id": 9, "nome": "Ana"})
	ed.Cancel()

	if !cancelled {
		t.Error("OnCancel not invoked")
	}
	if lastRow != "" {
		t.Errorf("OnEditRow after cancel: got %q, want empty", lastRow)
	}
	if ed.State() != StateIdle || ed.Buffer() != nil {
		t.Error("expected cleared state after cancel")
	}
}

func TestEditorSyncExternal(t *testing.T) {
	records := []Record{
		{"id": 1, "nome": "Ana"},
		{"id": 2, "nome": "Bruno"},
	}

	t.Run("seeds buffer from addressed record", func(t *testing.T) {
		ed := NewEditor(BufferInternal, Callbacks{})
		ed.SyncExternal("2", records)

		if !ed.Editing("2") {
			t.Fatal("expected editing row 2")
		}
		if ed.Buffer()["nome"] != "Bruno" {
			t.Errorf("buffer: got %v", ed.Buffer()["nome"])
		}
	})

	t.Run("empty id leaves edit state", func(t *testing.T) {
		ed := NewEditor(BufferInternal, Callbacks{})
		ed.BeginEdit(records[0])
		ed.SyncExternal("", records)

		if ed.State() != StateIdle {
			t.Error("expected idle state")
		}
	})

	t.Run("resync follows record refresh", func(t *testing.T) {
		ed := NewEditor(BufferInternal, Callbacks{})
		ed.BeginEdit(records[0])

		updated := []Record{{"id": 1, "nome": "Ana Maria"}}
		ed.SyncExternal("1", updated)

		if ed.Buffer()["nome"] != "Ana Maria" {
			t.Errorf("buffer after resync: got %v", ed.Buffer()["nome"])
		}
	})
}

func TestEditorFieldValue(t *testing.T) {
	ed := NewEditor(BufferInternal, Callbacks{})
	row := Record{"id": 1, "nome": "Ana", "documento": "111"}

	if got := ed.FieldValue("nome", row); got != "Ana" {
		t.Errorf("idle: got %v", got)
	}

	ed.BeginEdit(row)
	ed.ChangeField("nome", "Editada")

	if got := ed.FieldValue("nome", row); got != "Editada" {
		t.Errorf("edited field: got %v", got)
	}
	if got := ed.FieldValue("documento", row); got != "111" {
		t.Errorf("buffered untouched field: got %v", got)
	}
}
