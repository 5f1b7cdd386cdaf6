package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/mcp-go/client"
)

// Client is a typed Go client for the Dayplan MCP server.
type Client struct {
	mcp      *client.Client
	retryCfg retry.Config
	timeout  time.Duration
}

// NewClient creates a new SDK client wrapping the given MCP transport.
func NewClient(transport client.Transport, opts ...Option) *Client {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Client{
		mcp:     client.New(transport, client.WithTimeout(o.timeout)),
		timeout: o.timeout,
		retryCfg: retry.Config{
			MaxAttempts:   o.maxAttempts,
			InitialDelay:  o.initialDelay,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Initialize performs the MCP initialize handshake.
func (c *Client) Initialize(ctx context.Context) (*client.ServerInfo, error) {
	return c.mcp.Initialize(ctx)
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.mcp.Close()
}

// call invokes a tool with retry.
func (c *Client) call(ctx context.Context, tool string, args map[string]any) (*client.ToolResult, error) {
	r := retry.New[*client.ToolResult](c.retryCfg)
	result, err := r.Do(ctx, func(ctx context.Context) (*client.ToolResult, error) {
		return c.mcp.CallTool(ctx, tool, args)
	})
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", tool, err)
	}
	if result.IsError {
		msg := ""
		if len(result.Content) > 0 {
			msg = result.Content[0].Text
		}
		return nil, &ToolError{Tool: tool, Message: msg}
	}
	return result, nil
}

// unmarshalText extracts Content[0].Text from a tool result and unmarshals it as JSON.
func unmarshalText[T any](result *client.ToolResult) (*T, error) {
	text, err := textResult(result)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &v, nil
}

// textResult extracts Content[0].Text from a tool result.
func textResult(result *client.ToolResult) (string, error) {
	if len(result.Content) == 0 {
		return "", ErrNoContent
	}
	return result.Content[0].Text, nil
}

// --- Schema ---

// GetSchema reads the dayplan://schema resource from the server.
func (c *Client) GetSchema(ctx context.Context) (*SchemaInfo, error) {
	rc, err := c.mcp.ReadResource(ctx, "dayplan://schema")
	if err != nil {
		return nil, fmt.Errorf("read schema resource: %w", err)
	}
	var info SchemaInfo
	if err := json.Unmarshal([]byte(rc.Text), &info); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	return &info, nil
}

// Compatible checks if the server schema is compatible with this SDK version.
// Returns nil if compatible, error with details if not.
func (c *Client) Compatible(ctx context.Context) error {
	info, err := c.GetSchema(ctx)
	if err != nil {
		return fmt.Errorf("check compatibility: %w", err)
	}
	serverMajor := majorVersion(info.SchemaVersion)
	if serverMajor != SupportedSchemaMajor {
		return fmt.Errorf("incompatible schema: server=%s (major %s), sdk supports major %s",
			info.SchemaVersion, serverMajor, SupportedSchemaMajor)
	}
	return nil
}

// majorVersion extracts the major version from a semver string.
func majorVersion(v string) string {
	for i, ch := range v {
		if ch == '.' {
			return v[:i]
		}
	}
	return v
}

// --- Projects ---

// ListProjects lists all projects with task counts.
func (c *Client) ListProjects(ctx context.Context) ([]dayplan.Project, error) {
	res, err := c.call(ctx, "dayplan_list_projects", nil)
	if err != nil {
		return nil, err
	}
	projects, err := unmarshalText[[]dayplan.Project](res)
	if err != nil {
		return nil, err
	}
	return *projects, nil
}

// GetProject retrieves a single project.
func (c *Client) GetProject(ctx context.Context, projectID string) (*dayplan.Project, error) {
	res, err := c.call(ctx, "dayplan_get_project", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	return unmarshalText[dayplan.Project](res)
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, name, color string) (string, error) {
	args := map[string]any{"name": name}
	if color != "" {
		args["color"] = color
	}
	res, err := c.call(ctx, "dayplan_create_project", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// UpdateProject applies a partial update. Use an explicit nil value in fields
// to clear a nullable field.
func (c *Client) UpdateProject(ctx context.Context, projectID string, fields map[string]any) (string, error) {
	args := map[string]any{"project_id": projectID}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_update_project", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// DeleteProject deletes a project and its tasks.
func (c *Client) DeleteProject(ctx context.Context, projectID string) (string, error) {
	res, err := c.call(ctx, "dayplan_delete_project", map[string]any{"project_id": projectID})
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// ProjectStats returns per-project task statistics.
func (c *Client) ProjectStats(ctx context.Context, projectID string) (*dayplan.ProjectStats, error) {
	res, err := c.call(ctx, "dayplan_project_stats", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	return unmarshalText[dayplan.ProjectStats](res)
}

// --- Tasks ---

// ListTasks lists tasks in a project. Filters accepts status, assignee, tag,
// limit, and include_done keys.
func (c *Client) ListTasks(ctx context.Context, projectID string, filters map[string]any) ([]dayplan.Task, error) {
	args := map[string]any{"project_id": projectID}
	for k, v := range filters {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_list_tasks", args)
	if err != nil {
		return nil, err
	}
	tasks, err := unmarshalText[[]dayplan.Task](res)
	if err != nil {
		return nil, err
	}
	return *tasks, nil
}

// GetTask retrieves a single task.
func (c *Client) GetTask(ctx context.Context, projectID, taskID string) (*dayplan.Task, error) {
	res, err := c.call(ctx, "dayplan_get_task", map[string]any{"project_id": projectID, "task_id": taskID})
	if err != nil {
		return nil, err
	}
	return unmarshalText[dayplan.Task](res)
}

// CreateTask creates a task. Fields accepts notes, status, assignee, tags,
// and due_date keys.
func (c *Client) CreateTask(ctx context.Context, projectID, title string, fields map[string]any) (string, error) {
	args := map[string]any{"project_id": projectID, "title": title}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_create_task", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// UpdateTask applies a partial update. Use an explicit nil value in fields to
// clear a nullable field (e.g. due_date).
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, fields map[string]any) (string, error) {
	args := map[string]any{"project_id": projectID, "task_id": taskID}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_update_task", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) (string, error) {
	res, err := c.call(ctx, "dayplan_delete_task", map[string]any{"project_id": projectID, "task_id": taskID})
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// --- Notes ---

// ListNotes lists notes. Filters accepts project_id and pinned keys.
func (c *Client) ListNotes(ctx context.Context, filters map[string]any) ([]dayplan.Note, error) {
	res, err := c.call(ctx, "dayplan_list_notes", filters)
	if err != nil {
		return nil, err
	}
	notes, err := unmarshalText[[]dayplan.Note](res)
	if err != nil {
		return nil, err
	}
	return *notes, nil
}

// GetNote retrieves a single note.
func (c *Client) GetNote(ctx context.Context, noteID string) (*dayplan.Note, error) {
	res, err := c.call(ctx, "dayplan_get_note", map[string]any{"note_id": noteID})
	if err != nil {
		return nil, err
	}
	return unmarshalText[dayplan.Note](res)
}

// CreateNote creates a note. Fields accepts body, project_id, and pinned keys.
func (c *Client) CreateNote(ctx context.Context, title string, fields map[string]any) (string, error) {
	args := map[string]any{"title": title}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_create_note", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// UpdateNote applies a partial update. Use an explicit nil value in fields to
// clear a nullable field (e.g. project_id to detach).
func (c *Client) UpdateNote(ctx context.Context, noteID string, fields map[string]any) (string, error) {
	args := map[string]any{"note_id": noteID}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_update_note", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// DeleteNote deletes a note.
func (c *Client) DeleteNote(ctx context.Context, noteID string) (string, error) {
	res, err := c.call(ctx, "dayplan_delete_note", map[string]any{"note_id": noteID})
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// --- Journal ---

// ListDayEntries lists journal entries. Filters accepts from and to keys.
func (c *Client) ListDayEntries(ctx context.Context, filters map[string]any) ([]dayplan.DayEntry, error) {
	res, err := c.call(ctx, "dayplan_list_day_entries", filters)
	if err != nil {
		return nil, err
	}
	entries, err := unmarshalText[[]dayplan.DayEntry](res)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

// GetDayEntry retrieves the journal entry for a day. Days with no entry
// return (nil, nil).
func (c *Client) GetDayEntry(ctx context.Context, date string) (*dayplan.DayEntry, error) {
	res, err := c.call(ctx, "dayplan_get_day_entry", map[string]any{"date": date})
	if err != nil {
		return nil, err
	}
	text, err := textResult(res)
	if err != nil {
		return nil, err
	}
	// The tool reports missing entries as plain text rather than JSON.
	if !strings.HasPrefix(text, "{") {
		return nil, nil
	}
	return unmarshalText[dayplan.DayEntry](res)
}

// CreateDayEntry creates the journal entry for a day. Fields accepts mood,
// focus, highlights, and reflection keys.
func (c *Client) CreateDayEntry(ctx context.Context, date string, fields map[string]any) (string, error) {
	args := map[string]any{"date": date}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_create_day_entry", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// UpdateDayEntry applies a partial update. Use an explicit nil value in
// fields to clear a nullable field (e.g. mood).
func (c *Client) UpdateDayEntry(ctx context.Context, date string, fields map[string]any) (string, error) {
	args := map[string]any{"date": date}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_update_day_entry", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// DeleteDayEntry deletes a day's journal entry.
func (c *Client) DeleteDayEntry(ctx context.Context, date string) (string, error) {
	res, err := c.call(ctx, "dayplan_delete_day_entry", map[string]any{"date": date})
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// --- Habits ---

// ListHabits lists habits.
func (c *Client) ListHabits(ctx context.Context, includeArchived bool) ([]dayplan.Habit, error) {
	args := map[string]any{}
	if includeArchived {
		args["include_archived"] = true
	}
	res, err := c.call(ctx, "dayplan_list_habits", args)
	if err != nil {
		return nil, err
	}
	habits, err := unmarshalText[[]dayplan.Habit](res)
	if err != nil {
		return nil, err
	}
	return *habits, nil
}

// GetHabit retrieves a single habit.
func (c *Client) GetHabit(ctx context.Context, habitID string) (*dayplan.Habit, error) {
	res, err := c.call(ctx, "dayplan_get_habit", map[string]any{"habit_id": habitID})
	if err != nil {
		return nil, err
	}
	return unmarshalText[dayplan.Habit](res)
}

// CreateHabit creates a habit. Fields accepts cadence and target_per_week keys.
func (c *Client) CreateHabit(ctx context.Context, name string, fields map[string]any) (string, error) {
	args := map[string]any{"name": name}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_create_habit", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// UpdateHabit applies a partial update. Use an explicit nil value in fields
// to clear a nullable field.
func (c *Client) UpdateHabit(ctx context.Context, habitID string, fields map[string]any) (string, error) {
	args := map[string]any{"habit_id": habitID}
	for k, v := range fields {
		args[k] = v
	}
	res, err := c.call(ctx, "dayplan_update_habit", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// DeleteHabit deletes a habit and its entries.
func (c *Client) DeleteHabit(ctx context.Context, habitID string) (string, error) {
	res, err := c.call(ctx, "dayplan_delete_habit", map[string]any{"habit_id": habitID})
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// GetHabitEntry retrieves a habit's entry for a day. Days with no entry
// return (nil, nil).
func (c *Client) GetHabitEntry(ctx context.Context, habitID, date string) (*dayplan.HabitEntry, error) {
	res, err := c.call(ctx, "dayplan_get_habit_entry", map[string]any{"habit_id": habitID, "date": date})
	if err != nil {
		return nil, err
	}
	text, err := textResult(res)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(text, "{") {
		return nil, nil
	}
	return unmarshalText[dayplan.HabitEntry](res)
}

// RecordHabitEntry records a habit completion for a day.
func (c *Client) RecordHabitEntry(ctx context.Context, habitID, date string, completed bool, quantity int) (string, error) {
	args := map[string]any{"habit_id": habitID, "date": date, "completed": completed}
	if quantity > 0 {
		args["quantity"] = quantity
	}
	res, err := c.call(ctx, "dayplan_record_habit_entry", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// --- Tags ---

// ListTags lists all tags.
func (c *Client) ListTags(ctx context.Context) ([]dayplan.Tag, error) {
	res, err := c.call(ctx, "dayplan_list_tags", nil)
	if err != nil {
		return nil, err
	}
	tags, err := unmarshalText[[]dayplan.Tag](res)
	if err != nil {
		return nil, err
	}
	return *tags, nil
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, name, color string) (string, error) {
	args := map[string]any{"name": name}
	if color != "" {
		args["color"] = color
	}
	res, err := c.call(ctx, "dayplan_create_tag", args)
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// DeleteTag deletes a tag.
func (c *Client) DeleteTag(ctx context.Context, tagID string) (string, error) {
	res, err := c.call(ctx, "dayplan_delete_tag", map[string]any{"tag_id": tagID})
	if err != nil {
		return "", err
	}
	return textResult(res)
}

// --- Summary ---

// GetSummary retrieves the workspace-wide summary.
func (c *Client) GetSummary(ctx context.Context) (*dayplan.Summary, error) {
	res, err := c.call(ctx, "dayplan_get_summary", nil)
	if err != nil {
		return nil, err
	}
	return unmarshalText[dayplan.Summary](res)
}
