package dayplan

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// A day with no entry is a valid outcome, distinct from a 404: the backend
// answers {"dayEntry": null} and the client returns (nil, nil).
func TestGetDayEntry_NullIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/journal/days/2026-01-01" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"dayEntry":null}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	entry, err := c.GetDayEntry(context.Background(), "2026-01-01")
	if err != nil {
		t.Fatalf("GetDayEntry error = %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil entry, got %+v", entry)
	}
}

func TestGetDayEntry_Present(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dayEntry":{"date":"2026-01-02","mood":4,"focus":"writing"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	entry, err := c.GetDayEntry(context.Background(), "2026-01-02")
	if err != nil {
		t.Fatalf("GetDayEntry error = %v", err)
	}
	if entry == nil || entry.Mood != 4 || entry.Focus != "writing" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestListDayEntries_RangeQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.RawQuery; got != "from=2026-01-01&to=2026-01-31" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"dayEntries":[{"date":"2026-01-02"}]}`))
	}))
	defer server.Close()

	from, to := "2026-01-01", "2026-01-31"
	c := newTestClient(t, server.URL)
	entries, err := c.ListDayEntries(context.Background(), &ListDayEntriesOptions{From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListDayEntries error = %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2026-01-02" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestUpdateDayEntry_ClearsMoodWithNull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"mood":null,"reflection":"quiet day"}` {
			t.Errorf("body = %s", got)
		}
		w.Write([]byte(`{"dayEntry":{"date":"2026-01-02","reflection":"quiet day"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	entry, err := c.UpdateDayEntry(context.Background(), "2026-01-02", DayEntryPatch{
		Mood:       Null[int](),
		Reflection: Set("quiet day"),
	})
	if err != nil {
		t.Fatalf("UpdateDayEntry error = %v", err)
	}
	if entry.Reflection != "quiet day" {
		t.Errorf("reflection = %q", entry.Reflection)
	}
}

func TestCreateDayEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/journal/days" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"dayEntry":{"date":"2026-01-03","mood":5}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	entry, err := c.CreateDayEntry(context.Background(), CreateDayEntryParams{Date: "2026-01-03", Mood: 5})
	if err != nil {
		t.Fatalf("CreateDayEntry error = %v", err)
	}
	if entry.Mood != 5 {
		t.Errorf("mood = %d", entry.Mood)
	}
}

func TestDeleteDayEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/journal/days/2026-01-03" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.DeleteDayEntry(context.Background(), "2026-01-03"); err != nil {
		t.Fatalf("DeleteDayEntry error = %v", err)
	}
}
