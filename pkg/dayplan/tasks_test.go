package dayplan

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateTask_ExactBodyAndPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/projects/proj-1/tasks" {
			t.Errorf("path = %s, want /projects/proj-1/tasks", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"title":"T"}` {
			t.Errorf("body = %s, want {\"title\":\"T\"}", got)
		}
		w.Write([]byte(`{"task":{"id":"t1","projectId":"proj-1","title":"T","status":"todo"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	task, err := c.CreateTask(context.Background(), "proj-1", CreateTaskParams{Title: "T"})
	if err != nil {
		t.Fatalf("CreateTask error = %v", err)
	}
	if task.ID != "t1" || task.Title != "T" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestListTasks_FilterQueryOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.RawQuery; got != "status=todo&limit=0&includeDone=false" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"tasks":[]}`))
	}))
	defer server.Close()

	status := StatusTodo
	limit := 0
	includeDone := false
	c := newTestClient(t, server.URL)
	_, err := c.ListTasks(context.Background(), "p1", &ListTasksOptions{
		Status:      &status,
		Limit:       &limit,
		IncludeDone: &includeDone,
	})
	if err != nil {
		t.Fatalf("ListTasks error = %v", err)
	}
}

func TestListTasks_NilOptionsSendNoQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want none", r.URL.RawQuery)
		}
		w.Write([]byte(`{"tasks":[{"id":"t1","title":"A","status":"todo"}]}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	tasks, err := c.ListTasks(context.Background(), "p1", nil)
	if err != nil {
		t.Fatalf("ListTasks error = %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
}

// An explicit null clears a field; an unset field is left out of the body.
func TestUpdateTask_TriStateBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/projects/p1/tasks/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"status":"done","dueDate":null}` {
			t.Errorf("body = %s", got)
		}
		w.Write([]byte(`{"task":{"id":"t1","projectId":"p1","title":"T","status":"done"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	task, err := c.UpdateTask(context.Background(), "p1", "t1", TaskPatch{
		Status:  Set(StatusDone),
		DueDate: Null[string](),
	})
	if err != nil {
		t.Fatalf("UpdateTask error = %v", err)
	}
	if task.Status != StatusDone {
		t.Errorf("status = %s", task.Status)
	}
}

func TestGetTask_EscapesPathSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/projects/p%2F1/tasks/t1" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		w.Write([]byte(`{"task":{"id":"t1","title":"T","status":"todo"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.GetTask(context.Background(), "p/1", "t1"); err != nil {
		t.Fatalf("GetTask error = %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/projects/p1/tasks/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.DeleteTask(context.Background(), "p1", "t1"); err != nil {
		t.Fatalf("DeleteTask error = %v", err)
	}
}
