package dayplan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListProjects lists all projects in the workspace.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var env struct {
		Projects []Project `json:"projects"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/projects"}, &env); err != nil {
		return nil, err
	}
	return env.Projects, nil
}

// GetProject retrieves a single project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var env struct {
		Project *Project `json:"project"`
	}
	path := fmt.Sprintf("/projects/%s", url.PathEscape(projectID))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &env); err != nil {
		return nil, err
	}
	return env.Project, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, params CreateProjectParams) (*Project, error) {
	var env struct {
		Project *Project `json:"project"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/projects", body: params}, &env); err != nil {
		return nil, err
	}
	return env.Project, nil
}

// UpdateProject applies a partial update. Fields left unset in the patch are
// not sent; fields set to Null are cleared on the server.
func (c *Client) UpdateProject(ctx context.Context, projectID string, patch ProjectPatch) (*Project, error) {
	var env struct {
		Project *Project `json:"project"`
	}
	path := fmt.Sprintf("/projects/%s", url.PathEscape(projectID))
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &env); err != nil {
		return nil, err
	}
	return env.Project, nil
}

// DeleteProject deletes a project and everything in it.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	path := fmt.Sprintf("/projects/%s", url.PathEscape(projectID))
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}

// GetProjectStats retrieves per-project aggregates. The response is a bare
// object, not an envelope.
func (c *Client) GetProjectStats(ctx context.Context, projectID string) (*ProjectStats, error) {
	var stats ProjectStats
	path := fmt.Sprintf("/projects/%s/stats", url.PathEscape(projectID))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
