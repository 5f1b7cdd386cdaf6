package dayplan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTasksOptions filters ListTasks. Nil fields are omitted from the query
// entirely; a pointer to an empty string or zero value is sent as-is.
type ListTasksOptions struct {
	Status      *TaskStatus
	Assignee    *string
	Tag         *string
	Limit       *int
	IncludeDone *bool
}

// ListTasks lists the tasks of a project, optionally filtered.
func (c *Client) ListTasks(ctx context.Context, projectID string, opts *ListTasksOptions) ([]Task, error) {
	var q query
	if opts != nil {
		if opts.Status != nil {
			q.add("status", string(*opts.Status))
		}
		if opts.Assignee != nil {
			q.add("assignee", *opts.Assignee)
		}
		if opts.Tag != nil {
			q.add("tag", *opts.Tag)
		}
		if opts.Limit != nil {
			q.addInt("limit", *opts.Limit)
		}
		if opts.IncludeDone != nil {
			q.addBool("includeDone", *opts.IncludeDone)
		}
	}

	var env struct {
		Tasks []Task `json:"tasks"`
	}
	path := fmt.Sprintf("/projects/%s/tasks%s", url.PathEscape(projectID), q.encode())
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &env); err != nil {
		return nil, err
	}
	return env.Tasks, nil
}

// GetTask retrieves a single task.
func (c *Client) GetTask(ctx context.Context, projectID, taskID string) (*Task, error) {
	var env struct {
		Task *Task `json:"task"`
	}
	path := fmt.Sprintf("/projects/%s/tasks/%s", url.PathEscape(projectID), url.PathEscape(taskID))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &env); err != nil {
		return nil, err
	}
	return env.Task, nil
}

// CreateTask creates a task in a project. The request body contains exactly
// the fields the caller populated.
func (c *Client) CreateTask(ctx context.Context, projectID string, params CreateTaskParams) (*Task, error) {
	var env struct {
		Task *Task `json:"task"`
	}
	path := fmt.Sprintf("/projects/%s/tasks", url.PathEscape(projectID))
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: params}, &env); err != nil {
		return nil, err
	}
	return env.Task, nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, patch TaskPatch) (*Task, error) {
	var env struct {
		Task *Task `json:"task"`
	}
	path := fmt.Sprintf("/projects/%s/tasks/%s", url.PathEscape(projectID), url.PathEscape(taskID))
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &env); err != nil {
		return nil, err
	}
	return env.Task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	path := fmt.Sprintf("/projects/%s/tasks/%s", url.PathEscape(projectID), url.PathEscape(taskID))
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
