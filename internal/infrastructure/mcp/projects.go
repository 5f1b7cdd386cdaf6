package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
)

type GetProjectArgs struct {
	ProjectID string `json:"project_id" jsonschema:"description=The ID of the project"`
}

type CreateProjectArgs struct {
	Name  string `json:"name" jsonschema:"description=The name of the project"`
	Color string `json:"color,omitempty" jsonschema:"description=Optional display color (hex)"`
}

type UpdateProjectArgs struct {
	ProjectID string          `json:"project_id" jsonschema:"description=The ID of the project to update"`
	Name      json.RawMessage `json:"name,omitempty" jsonschema:"description=New name (omit to keep)"`
	Color     json.RawMessage `json:"color,omitempty" jsonschema:"description=New color (omit to keep; null to clear)"`
	Archived  json.RawMessage `json:"archived,omitempty" jsonschema:"description=Archive flag (omit to keep)"`
}

func (s *Server) handleListProjects(ctx context.Context, args struct{}) (any, error) {
	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		return nil, mcpErr("Failed to list projects", err)
	}
	return projects, nil
}

func (s *Server) handleGetProject(ctx context.Context, args GetProjectArgs) (any, error) {
	if args.ProjectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}
	project, err := s.api.GetProject(ctx, args.ProjectID)
	if err != nil {
		return nil, mcpErr("Failed to get project", err)
	}
	return project, nil
}

func (s *Server) handleCreateProject(ctx context.Context, args CreateProjectArgs) (string, error) {
	if args.Name == "" {
		return "", fmt.Errorf("name is required")
	}
	project, err := s.api.CreateProject(ctx, dayplan.CreateProjectParams{
		Name:  args.Name,
		Color: args.Color,
	})
	if err != nil {
		return "", mcpErr("Failed to create project", err)
	}
	return fmt.Sprintf("Project %s created (ID: %s)", project.Name, project.ID), nil
}

func (s *Server) handleUpdateProject(ctx context.Context, args UpdateProjectArgs) (string, error) {
	if args.ProjectID == "" {
		return "", fmt.Errorf("project_id is required")
	}

	var patch dayplan.ProjectPatch
	var err error
	if patch.Name, err = opt[string](args.Name); err != nil {
		return "", fmt.Errorf("invalid name: %w", err)
	}
	if patch.Color, err = opt[string](args.Color); err != nil {
		return "", fmt.Errorf("invalid color: %w", err)
	}
	if patch.Archived, err = opt[bool](args.Archived); err != nil {
		return "", fmt.Errorf("invalid archived: %w", err)
	}

	project, err := s.api.UpdateProject(ctx, args.ProjectID, patch)
	if err != nil {
		return "", mcpErr("Failed to update project", err)
	}
	return fmt.Sprintf("Project %s updated", project.ID), nil
}

func (s *Server) handleDeleteProject(ctx context.Context, args GetProjectArgs) (string, error) {
	if args.ProjectID == "" {
		return "", fmt.Errorf("project_id is required")
	}
	if err := s.api.DeleteProject(ctx, args.ProjectID); err != nil {
		return "", mcpErr("Failed to delete project", err)
	}
	return fmt.Sprintf("Project %s deleted", args.ProjectID), nil
}

func (s *Server) handleProjectStats(ctx context.Context, args GetProjectArgs) (any, error) {
	if args.ProjectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}
	stats, err := s.api.GetProjectStats(ctx, args.ProjectID)
	if err != nil {
		return nil, mcpErr("Failed to get project stats", err)
	}
	return stats, nil
}
