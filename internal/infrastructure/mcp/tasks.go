package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
)

type ListTasksArgs struct {
	ProjectID   string   `json:"project_id" jsonschema:"description=The ID of the project to list tasks from"`
	Status      string   `json:"status,omitempty" jsonschema:"description=Filter by status (todo, in_progress, done)"`
	Assignee    string   `json:"assignee,omitempty" jsonschema:"description=Filter by assignee"`
	Tag         string   `json:"tag,omitempty" jsonschema:"description=Filter by tag name"`
	Limit       FlexInt  `json:"limit,omitempty" jsonschema:"description=Limit number of tasks returned"`
	IncludeDone FlexBool `json:"include_done,omitempty" jsonschema:"description=Include completed tasks"`
}

type GetTaskArgs struct {
	ProjectID string `json:"project_id" jsonschema:"description=The ID of the project"`
	TaskID    string `json:"task_id" jsonschema:"description=The ID of the task"`
}

type CreateTaskArgs struct {
	ProjectID string   `json:"project_id" jsonschema:"description=The ID of the project to create the task in"`
	Title     string   `json:"title" jsonschema:"description=The task title"`
	Notes     string   `json:"notes,omitempty" jsonschema:"description=Free-form notes"`
	Status    string   `json:"status,omitempty" jsonschema:"description=Initial status (defaults to todo)"`
	Assignee  string   `json:"assignee,omitempty" jsonschema:"description=Person or agent responsible"`
	Tags      []string `json:"tags,omitempty" jsonschema:"description=Tag names to attach"`
	DueDate   string   `json:"due_date,omitempty" jsonschema:"description=Due date (YYYY-MM-DD)"`
}

type UpdateTaskArgs struct {
	ProjectID string          `json:"project_id" jsonschema:"description=The ID of the project"`
	TaskID    string          `json:"task_id" jsonschema:"description=The ID of the task to update"`
	Title     json.RawMessage `json:"title,omitempty" jsonschema:"description=New title (omit to keep)"`
	Notes     json.RawMessage `json:"notes,omitempty" jsonschema:"description=New notes (omit to keep; null to clear)"`
	Status    json.RawMessage `json:"status,omitempty" jsonschema:"description=New status (omit to keep)"`
	Assignee  json.RawMessage `json:"assignee,omitempty" jsonschema:"description=New assignee (omit to keep; null to unassign)"`
	Tags      json.RawMessage `json:"tags,omitempty" jsonschema:"description=Replacement tag list (omit to keep; null to clear)"`
	DueDate   json.RawMessage `json:"due_date,omitempty" jsonschema:"description=New due date (omit to keep; null to clear)"`
}

func (s *Server) handleListTasks(ctx context.Context, args ListTasksArgs) (any, error) {
	if args.ProjectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}

	var opts dayplan.ListTasksOptions
	if args.Status != "" {
		status := dayplan.TaskStatus(args.Status)
		opts.Status = &status
	}
	if args.Assignee != "" {
		opts.Assignee = &args.Assignee
	}
	if args.Tag != "" {
		opts.Tag = &args.Tag
	}
	if args.Limit > 0 {
		limit := int(args.Limit)
		opts.Limit = &limit
	}
	if args.IncludeDone {
		include := true
		opts.IncludeDone = &include
	}

	tasks, err := s.api.ListTasks(ctx, args.ProjectID, &opts)
	if err != nil {
		return nil, mcpErr("Failed to list tasks", err)
	}
	return tasks, nil
}

func (s *Server) handleGetTask(ctx context.Context, args GetTaskArgs) (any, error) {
	if args.ProjectID == "" || args.TaskID == "" {
		return nil, fmt.Errorf("project_id and task_id are required")
	}
	task, err := s.api.GetTask(ctx, args.ProjectID, args.TaskID)
	if err != nil {
		return nil, mcpErr("Failed to get task", err)
	}
	return task, nil
}

func (s *Server) handleCreateTask(ctx context.Context, args CreateTaskArgs) (string, error) {
	if args.ProjectID == "" {
		return "", fmt.Errorf("project_id is required")
	}
	if args.Title == "" {
		return "", fmt.Errorf("title is required")
	}
	task, err := s.api.CreateTask(ctx, args.ProjectID, dayplan.CreateTaskParams{
		Title:    args.Title,
		Notes:    args.Notes,
		Status:   dayplan.TaskStatus(args.Status),
		Assignee: args.Assignee,
		Tags:     args.Tags,
		DueDate:  args.DueDate,
	})
	if err != nil {
		return "", mcpErr("Failed to create task", err)
	}
	return fmt.Sprintf("Task %s created (ID: %s)", task.Title, task.ID), nil
}

func (s *Server) handleUpdateTask(ctx context.Context, args UpdateTaskArgs) (string, error) {
	if args.ProjectID == "" || args.TaskID == "" {
		return "", fmt.Errorf("project_id and task_id are required")
	}

	var patch dayplan.TaskPatch
	var err error
	if patch.Title, err = opt[string](args.Title); err != nil {
		return "", fmt.Errorf("invalid title: %w", err)
	}
	if patch.Notes, err = opt[string](args.Notes); err != nil {
		return "", fmt.Errorf("invalid notes: %w", err)
	}
	if patch.Status, err = opt[dayplan.TaskStatus](args.Status); err != nil {
		return "", fmt.Errorf("invalid status: %w", err)
	}
	if patch.Assignee, err = opt[string](args.Assignee); err != nil {
		return "", fmt.Errorf("invalid assignee: %w", err)
	}
	if patch.Tags, err = opt[[]string](args.Tags); err != nil {
		return "", fmt.Errorf("invalid tags: %w", err)
	}
	if patch.DueDate, err = opt[string](args.DueDate); err != nil {
		return "", fmt.Errorf("invalid due_date: %w", err)
	}

	task, err := s.api.UpdateTask(ctx, args.ProjectID, args.TaskID, patch)
	if err != nil {
		return "", mcpErr("Failed to update task", err)
	}
	return fmt.Sprintf("Task %s updated (status: %s)", task.ID, task.Status), nil
}

func (s *Server) handleDeleteTask(ctx context.Context, args GetTaskArgs) (string, error) {
	if args.ProjectID == "" || args.TaskID == "" {
		return "", fmt.Errorf("project_id and task_id are required")
	}
	if err := s.api.DeleteTask(ctx, args.ProjectID, args.TaskID); err != nil {
		return "", mcpErr("Failed to delete task", err)
	}
	return fmt.Sprintf("Task %s deleted", args.TaskID), nil
}
