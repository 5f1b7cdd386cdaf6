package dayplan

import (
	"encoding/json"
	"testing"
)

// A field explicitly set to null serializes as JSON null; an unset field is
// absent from the body entirely. The two must never collapse into the same
// wire representation.
func TestOptional_NullVersusAbsent(t *testing.T) {
	patch := TaskPatch{
		Title:   Set("New title"),
		DueDate: Null[string](),
		// Assignee left unset: must not appear in the body
	}

	data, err := json.Marshal(patch)
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}
	if got := string(data); got != `{"title":"New title","dueDate":null}` {
		t.Errorf("body = %s", got)
	}
}

func TestOptional_EmptyPatchSerializesToEmptyObject(t *testing.T) {
	data, err := json.Marshal(TaskPatch{})
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}
	if got := string(data); got != `{}` {
		t.Errorf("body = %s, want {}", got)
	}
}

// Set with a zero value is still sent: "set to empty" differs from "unset".
func TestOptional_ZeroValueIsSent(t *testing.T) {
	patch := TaskPatch{Assignee: Set("")}

	data, err := json.Marshal(patch)
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}
	if got := string(data); got != `{"assignee":""}` {
		t.Errorf("body = %s", got)
	}
}

func TestOptional_Accessors(t *testing.T) {
	set := Set(42)
	if v, ok := set.Value(); !ok || v != 42 {
		t.Errorf("Set(42).Value() = %d, %v", v, ok)
	}
	if set.IsZero() || set.IsNull() {
		t.Error("Set(42) reported zero or null")
	}

	null := Null[int]()
	if _, ok := null.Value(); ok {
		t.Error("Null().Value() reported a value")
	}
	if null.IsZero() || !null.IsNull() {
		t.Error("Null() state wrong")
	}

	var unset Optional[int]
	if !unset.IsZero() || unset.IsNull() {
		t.Error("zero Optional state wrong")
	}
}

func TestOptional_Unmarshal(t *testing.T) {
	var patch TaskPatch
	if err := json.Unmarshal([]byte(`{"title":"T","dueDate":null}`), &patch); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if v, ok := patch.Title.Value(); !ok || v != "T" {
		t.Errorf("Title = %q, %v", v, ok)
	}
	if !patch.DueDate.IsNull() {
		t.Error("DueDate should be null")
	}
	if !patch.Assignee.IsZero() {
		t.Error("Assignee should be unset")
	}
}
