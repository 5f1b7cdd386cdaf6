package dayplan

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListProjects_UnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/projects" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"projects":[{"id":"p1","name":"Deep Work","taskCounts":{"todo":2,"inProgress":0,"done":3}}]}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	projects, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects error = %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].TaskCounts.Done != 3 {
		t.Errorf("taskCounts.done = %d, want 3", projects[0].TaskCounts.Done)
	}
	if projects[0].TaskCounts.Todo != 2 {
		t.Errorf("taskCounts.todo = %d, want 2", projects[0].TaskCounts.Todo)
	}
}

func TestGetProject_PathAndUnwrap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/p1" {
			t.Errorf("path = %s, want /projects/p1", r.URL.Path)
		}
		w.Write([]byte(`{"project":{"id":"p1","name":"Deep Work"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	project, err := c.GetProject(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProject error = %v", err)
	}
	if project.Name != "Deep Work" {
		t.Errorf("name = %q", project.Name)
	}
}

func TestCreateProject_SendsOnlyProvidedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/projects" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"name":"Reading"}` {
			t.Errorf("body = %s, want {\"name\":\"Reading\"}", got)
		}
		w.Write([]byte(`{"project":{"id":"p2","name":"Reading"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	project, err := c.CreateProject(context.Background(), CreateProjectParams{Name: "Reading"})
	if err != nil {
		t.Fatalf("CreateProject error = %v", err)
	}
	if project.ID != "p2" {
		t.Errorf("id = %q", project.ID)
	}
}

func TestUpdateProject_PatchMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"archived":true}` {
			t.Errorf("body = %s", got)
		}
		w.Write([]byte(`{"project":{"id":"p1","name":"Deep Work","archived":true}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	project, err := c.UpdateProject(context.Background(), "p1", ProjectPatch{Archived: Set(true)})
	if err != nil {
		t.Fatalf("UpdateProject error = %v", err)
	}
	if !project.Archived {
		t.Error("expected archived project")
	}
}

func TestDeleteProject_MethodAndPath(t *testing.T) {
	var seen bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = true
		if r.Method != http.MethodDelete || r.URL.Path != "/projects/p1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.DeleteProject(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProject error = %v", err)
	}
	if !seen {
		t.Error("no request issued")
	}
}

// The stats endpoint returns a bare object, not an envelope.
func TestGetProjectStats_BareObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/p1/stats" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"projectId":"p1","taskCounts":{"todo":1,"inProgress":1,"done":8},"overdueTasks":0,"completionRate":0.8}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	stats, err := c.GetProjectStats(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProjectStats error = %v", err)
	}
	if stats.CompletionRate != 0.8 {
		t.Errorf("completionRate = %v", stats.CompletionRate)
	}
}
