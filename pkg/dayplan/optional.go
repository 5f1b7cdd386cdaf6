package dayplan

import "encoding/json"

// Optional is a tri-state patch field: unset, set to a value, or set to
// JSON null. PATCH payloads must distinguish "leave unchanged" (the key is
// absent from the body) from "clear this field" (the key is present with a
// null value), so a plain pointer is not enough.
//
// Unset fields are omitted from the wire via the `omitzero` struct tag,
// which consults IsZero.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Set returns an Optional holding the given value.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional that serializes as JSON null, clearing the field.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsZero reports whether the field was never set. encoding/json uses it to
// honor the omitzero tag.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// IsNull reports whether the field was explicitly set to null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Value returns the held value and whether a non-null value was set.
func (o Optional[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MarshalJSON serializes the value, or the literal null for cleared fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON records whether the key carried null or a value. A key that
// is absent from the document never reaches UnmarshalJSON, so set stays false.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}
