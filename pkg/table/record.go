package table

import "fmt"

// Record is one entity instance displayed as a row or card. Values are
// opaque to the engine; the only field it interprets is "id", which must
// be stable and unique within a page. The engine never mutates a Record
// it was handed; all edits happen on a separate buffer.
type Record map[string]any

// ID returns the record's identifier as a string. Numeric ids (the
// common case for REST backends) are stringified.
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone makes the shallow copy used to seed an edit buffer.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
