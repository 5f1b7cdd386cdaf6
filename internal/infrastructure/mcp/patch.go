package mcp

import (
	"encoding/json"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
)

// opt converts a raw JSON argument into the backend's tri-state patch field.
// An absent argument leaves the field unset, an explicit JSON null clears it,
// and any other value sets it. Update tools keep their nullable arguments as
// json.RawMessage so the absent/null distinction survives decoding.
func opt[T any](raw json.RawMessage) (dayplan.Optional[T], error) {
	if len(raw) == 0 {
		return dayplan.Optional[T]{}, nil
	}
	if string(raw) == "null" {
		return dayplan.Null[T](), nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return dayplan.Optional[T]{}, err
	}
	return dayplan.Set(v), nil
}
