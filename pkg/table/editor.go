package table

// BufferOwnership selects who owns the in-progress edit buffer. With
// BufferInternal the editor keeps the buffer and reports changes
// through OnBufferChange; with BufferExternal the caller tracks the
// buffer itself and field changes are delegated to OnFieldChange.
type BufferOwnership int

const (
	BufferInternal BufferOwnership = iota
	BufferExternal
)

// EditorState is the edit state machine: Idle, or Editing exactly one
// row. There is no state for concurrent edits.
type EditorState int

const (
	StateIdle EditorState = iota
	StateEditing
)

// Callbacks are the engine-to-caller notifications. Any of them may be
// nil. The engine never performs persistence itself; OnSave hands the
// merged payload to the caller and the engine forgets about it.
type Callbacks struct {
	OnSave         func(rowID string, payload Record)
	OnCancel       func()
	OnEditRow      func(rowID string) // "" when edit mode ends
	OnBufferChange func(buffer Record)
	OnFieldChange  func(key string, value any) // BufferExternal only
	OnPageChange   func(page int)
}

// Editor manages per-row inline edit state against a caller-supplied
// record list. At most one row is ever in edit state; beginning an edit
// on a new row resolves the previous one first, so no fields leak
// between buffers.
type Editor struct {
	ownership BufferOwnership
	callbacks Callbacks

	state    EditorState
	rowID    string
	buffer   Record
	external Record
}

func NewEditor(ownership BufferOwnership, cb Callbacks) *Editor {
	return &Editor{ownership: ownership, callbacks: cb}
}

func (e *Editor) State() EditorState { return e.state }

// EditingRow returns the id of the row in edit state, or "" when idle.
func (e *Editor) EditingRow() string { return e.rowID }

// Buffer exposes the active edit buffer. Callers must treat it as
// read-only; mutations go through ChangeField.
func (e *Editor) Buffer() Record { return e.buffer }

// Editing reports whether the given row is the active edit target.
func (e *Editor) Editing(rowID string) bool {
	return e.state == StateEditing && rowID != "" && e.rowID == rowID
}

// BeginEdit enters edit state for the record, seeding the buffer with a
// shallow copy of its current fields. An edit already in progress on a
// different row is discarded first; the two buffers never coexist.
func (e *Editor) BeginEdit(rec Record) {
	if e.state == StateEditing && e.rowID != rec.ID() {
		e.buffer = nil
		e.external = nil
	}

	e.state = StateEditing
	e.rowID = rec.ID()
	e.buffer = rec.Clone()

	if e.callbacks.OnEditRow != nil {
		e.callbacks.OnEditRow(e.rowID)
	}
	if e.callbacks.OnBufferChange != nil {
		e.callbacks.OnBufferChange(e.buffer.Clone())
	}
}

// ChangeField records a pending field value. Under external buffer
// ownership the change is delegated wholesale to the caller and no
// internal state moves.
func (e *Editor) ChangeField(key string, value any) {
	if e.ownership == BufferExternal && e.callbacks.OnFieldChange != nil {
		e.callbacks.OnFieldChange(key, value)
		return
	}
	if e.state != StateEditing {
		return
	}
	if e.buffer == nil {
		e.buffer = Record{}
	}
	e.buffer[key] = value
	if e.callbacks.OnBufferChange != nil {
		e.callbacks.OnBufferChange(e.buffer.Clone())
	}
}

// SetExternalBuffer feeds the caller-tracked buffer back into the
// editor so Save can use it. Only meaningful under BufferExternal.
func (e *Editor) SetExternalBuffer(buf Record) {
	e.external = buf
}

// Save hands the effective payload to the caller and clears edit state
// optimistically: the editor does not know whether persistence
// succeeded. A caller whose save fails may re-enter edit mode itself.
func (e *Editor) Save(rowID string) {
	payload := e.buffer
	if e.ownership == BufferExternal && e.external != nil {
		payload = e.external
	}
	if payload == nil {
		payload = Record{}
	}

	// Clearing happens whatever the callback does; the engine never
	// learns whether persistence succeeded.
	defer e.clear()
	if e.callbacks.OnSave != nil {
		e.callbacks.OnSave(rowID, payload)
	}
}

// Cancel discards the buffer and leaves edit state.
func (e *Editor) Cancel() {
	if e.callbacks.OnCancel != nil {
		e.callbacks.OnCancel()
	}
	e.clear()
}

// SyncExternal resynchronizes the editor when the caller drives edit
// mode from outside (an edit affordance elsewhere in the UI). An empty
// rowID leaves edit state; a known rowID re-seeds the buffer from that
// record's current values; an unknown rowID keeps the buffer as is.
func (e *Editor) SyncExternal(rowID string, records []Record) {
	if rowID == "" {
		if e.state == StateEditing {
			e.clear()
		}
		return
	}

	e.state = StateEditing
	e.rowID = rowID
	for _, rec := range records {
		if rec.ID() == rowID {
			e.buffer = rec.Clone()
			if e.callbacks.OnBufferChange != nil {
				e.callbacks.OnBufferChange(e.buffer.Clone())
			}
			return
		}
	}
}

func (e *Editor) clear() {
	e.state = StateIdle
	e.rowID = ""
	e.buffer = nil
	e.external = nil

	if e.callbacks.OnEditRow != nil {
		e.callbacks.OnEditRow("")
	}
	if e.callbacks.OnBufferChange != nil {
		e.callbacks.OnBufferChange(Record{})
	}
}

// FieldValue resolves the displayed value of an editable field while
// editing: the buffer entry when present, else the live record value.
func (e *Editor) FieldValue(key string, row Record) any {
	if e.Editing(row.ID()) && e.buffer != nil {
		if v, ok := e.buffer[key]; ok {
			return v
		}
	}
	return row[key]
}
