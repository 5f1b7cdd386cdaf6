package dayplan

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListHabits_IncludeArchived(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.RawQuery; got != "includeArchived=true" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"habits":[{"id":"h1","name":"Run","cadence":"daily","streak":12}]}`))
	}))
	defer server.Close()

	include := true
	c := newTestClient(t, server.URL)
	habits, err := c.ListHabits(context.Background(), &ListHabitsOptions{IncludeArchived: &include})
	if err != nil {
		t.Fatalf("ListHabits error = %v", err)
	}
	if len(habits) != 1 || habits[0].Streak != 12 {
		t.Errorf("unexpected habits: %+v", habits)
	}
}

func TestGetHabitEntry_NullIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/habits/h1/entries/2026-01-05" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"habitEntry":null}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	entry, err := c.GetHabitEntry(context.Background(), "h1", "2026-01-05")
	if err != nil {
		t.Fatalf("GetHabitEntry error = %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil entry, got %+v", entry)
	}
}

func TestRecordHabitEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/habits/h1/entries" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"date":"2026-01-05","completed":true,"quantity":2}` {
			t.Errorf("body = %s", got)
		}
		w.Write([]byte(`{"habitEntry":{"habitId":"h1","date":"2026-01-05","completed":true,"quantity":2}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	entry, err := c.RecordHabitEntry(context.Background(), "h1", RecordHabitEntryParams{
		Date:      "2026-01-05",
		Completed: true,
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("RecordHabitEntry error = %v", err)
	}
	if !entry.Completed || entry.Quantity != 2 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestUpdateHabit_ArchiveOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"archived":true}` {
			t.Errorf("body = %s", got)
		}
		w.Write([]byte(`{"habit":{"id":"h1","name":"Run","archived":true}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	habit, err := c.UpdateHabit(context.Background(), "h1", HabitPatch{Archived: Set(true)})
	if err != nil {
		t.Fatalf("UpdateHabit error = %v", err)
	}
	if !habit.Archived {
		t.Error("habit not archived")
	}
}

func TestHabitLifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/habits":
			w.Write([]byte(`{"habit":{"id":"h2","name":"Read","cadence":"weekly","targetPerWeek":3}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/habits/h2":
			w.Write([]byte(`{"habit":{"id":"h2","name":"Read","cadence":"weekly","targetPerWeek":3}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/habits/h2":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	created, err := c.CreateHabit(context.Background(), CreateHabitParams{Name: "Read", Cadence: CadenceWeekly, TargetPerWeek: 3})
	if err != nil {
		t.Fatalf("CreateHabit error = %v", err)
	}
	got, err := c.GetHabit(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetHabit error = %v", err)
	}
	if got.Cadence != CadenceWeekly || got.TargetPerWeek != 3 {
		t.Errorf("unexpected habit: %+v", got)
	}
	if err := c.DeleteHabit(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteHabit error = %v", err)
	}
}
