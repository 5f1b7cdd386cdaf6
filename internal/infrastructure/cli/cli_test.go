package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMCPCommandSkipStart(t *testing.T) {
	t.Setenv("DAYPLAN_SKIP_MCP_START", "true")

	RootCmd.SetArgs([]string{"mcp", "--transport", "stdio"})
	defer RootCmd.SetArgs(nil)
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("mcp command: %v", err)
	}
}

func TestProjectsCommandRendersTable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"projects":[{"id":"p1","name":"Launch","taskCounts":{"todo":2,"inProgress":1,"done":3}}]}`))
	}))
	defer backend.Close()

	t.Setenv("DAYPLAN_API_KEY", "test-key")
	t.Setenv("DAYPLAN_BASE_URL", backend.URL)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"projects"})
	defer func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	}()

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("projects command: %v", err)
	}
}

func TestDoctorReportsBackendFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer backend.Close()

	t.Setenv("DAYPLAN_API_KEY", "bad-key")
	t.Setenv("DAYPLAN_BASE_URL", backend.URL)

	RootCmd.SetArgs([]string{"doctor"})
	defer RootCmd.SetArgs(nil)

	err := RootCmd.Execute()
	if err == nil {
		t.Fatalf("expected doctor to report issues")
	}
	if !strings.Contains(err.Error(), "doctor found issues") {
		t.Fatalf("unexpected error: %v", err)
	}
}
