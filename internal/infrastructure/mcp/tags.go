package mcp

import (
	"context"
	"fmt"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
)

type CreateTagArgs struct {
	Name  string `json:"name" jsonschema:"description=The tag name"`
	Color string `json:"color,omitempty" jsonschema:"description=Optional display color (hex)"`
}

type DeleteTagArgs struct {
	TagID string `json:"tag_id" jsonschema:"description=The ID of the tag to delete"`
}

func (s *Server) handleListTags(ctx context.Context, args struct{}) (any, error) {
	tags, err := s.api.ListTags(ctx)
	if err != nil {
		return nil, mcpErr("Failed to list tags", err)
	}
	return tags, nil
}

func (s *Server) handleCreateTag(ctx context.Context, args CreateTagArgs) (string, error) {
	if args.Name == "" {
		return "", fmt.Errorf("name is required")
	}
	tag, err := s.api.CreateTag(ctx, dayplan.CreateTagParams{
		Name:  args.Name,
		Color: args.Color,
	})
	if err != nil {
		return "", mcpErr("Failed to create tag", err)
	}
	return fmt.Sprintf("Tag %s created (ID: %s)", tag.Name, tag.ID), nil
}

func (s *Server) handleDeleteTag(ctx context.Context, args DeleteTagArgs) (string, error) {
	if args.TagID == "" {
		return "", fmt.Errorf("tag_id is required")
	}
	if err := s.api.DeleteTag(ctx, args.TagID); err != nil {
		return "", mcpErr("Failed to delete tag", err)
	}
	return fmt.Sprintf("Tag %s deleted", args.TagID), nil
}

func (s *Server) handleGetSummary(ctx context.Context, args struct{}) (any, error) {
	summary, err := s.api.GetSummary(ctx)
	if err != nil {
		return nil, mcpErr("Failed to get summary", err)
	}
	return summary, nil
}
