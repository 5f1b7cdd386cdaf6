package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
)

type ListDayEntriesArgs struct {
	From string `json:"from,omitempty" jsonschema:"description=Earliest date to include (YYYY-MM-DD)"`
	To   string `json:"to,omitempty" jsonschema:"description=Latest date to include (YYYY-MM-DD)"`
}

type DayEntryArgs struct {
	Date string `json:"date" jsonschema:"description=The calendar day (YYYY-MM-DD)"`
}

type CreateDayEntryArgs struct {
	Date       string   `json:"date" jsonschema:"description=The calendar day (YYYY-MM-DD)"`
	Mood       FlexInt  `json:"mood,omitempty" jsonschema:"description=Mood rating 1-5"`
	Focus      string   `json:"focus,omitempty" jsonschema:"description=The day's main focus"`
	Highlights []string `json:"highlights,omitempty" jsonschema:"description=Notable moments"`
	Reflection string   `json:"reflection,omitempty" jsonschema:"description=End-of-day reflection"`
}

type UpdateDayEntryArgs struct {
	Date       string          `json:"date" jsonschema:"description=The calendar day to update (YYYY-MM-DD)"`
	Mood       json.RawMessage `json:"mood,omitempty" jsonschema:"description=New mood (omit to keep; null to clear)"`
	Focus      json.RawMessage `json:"focus,omitempty" jsonschema:"description=New focus (omit to keep; null to clear)"`
	Highlights json.RawMessage `json:"highlights,omitempty" jsonschema:"description=Replacement highlights (omit to keep; null to clear)"`
	Reflection json.RawMessage `json:"reflection,omitempty" jsonschema:"description=New reflection (omit to keep; null to clear)"`
}

func (s *Server) handleListDayEntries(ctx context.Context, args ListDayEntriesArgs) (any, error) {
	var opts dayplan.ListDayEntriesOptions
	if args.From != "" {
		opts.From = &args.From
	}
	if args.To != "" {
		opts.To = &args.To
	}

	entries, err := s.api.ListDayEntries(ctx, &opts)
	if err != nil {
		return nil, mcpErr("Failed to list journal entries", err)
	}
	return entries, nil
}

func (s *Server) handleGetDayEntry(ctx context.Context, args DayEntryArgs) (any, error) {
	if args.Date == "" {
		return nil, fmt.Errorf("date is required")
	}
	entry, err := s.api.GetDayEntry(ctx, args.Date)
	if err != nil {
		return nil, mcpErr("Failed to get journal entry", err)
	}
	if entry == nil {
		return fmt.Sprintf("No journal entry for %s", args.Date), nil
	}
	return entry, nil
}

func (s *Server) handleCreateDayEntry(ctx context.Context, args CreateDayEntryArgs) (string, error) {
	if args.Date == "" {
		return "", fmt.Errorf("date is required")
	}
	entry, err := s.api.CreateDayEntry(ctx, dayplan.CreateDayEntryParams{
		Date:       args.Date,
		Mood:       int(args.Mood),
		Focus:      args.Focus,
		Highlights: args.Highlights,
		Reflection: args.Reflection,
	})
	if err != nil {
		return "", mcpErr("Failed to create journal entry", err)
	}
	return fmt.Sprintf("Journal entry for %s created", entry.Date), nil
}

func (s *Server) handleUpdateDayEntry(ctx context.Context, args UpdateDayEntryArgs) (string, error) {
	if args.Date == "" {
		return "", fmt.Errorf("date is required")
	}

	var patch dayplan.DayEntryPatch
	var err error
	if patch.Mood, err = opt[int](args.Mood); err != nil {
		return "", fmt.Errorf("invalid mood: %w", err)
	}
	if patch.Focus, err = opt[string](args.Focus); err != nil {
		return "", fmt.Errorf("invalid focus: %w", err)
	}
	if patch.Highlights, err = opt[[]string](args.Highlights); err != nil {
		return "", fmt.Errorf("invalid highlights: %w", err)
	}
	if patch.Reflection, err = opt[string](args.Reflection); err != nil {
		return "", fmt.Errorf("invalid reflection: %w", err)
	}

	entry, err := s.api.UpdateDayEntry(ctx, args.Date, patch)
	if err != nil {
		return "", mcpErr("Failed to update journal entry", err)
	}
	return fmt.Sprintf("Journal entry for %s updated", entry.Date), nil
}

func (s *Server) handleDeleteDayEntry(ctx context.Context, args DayEntryArgs) (string, error) {
	if args.Date == "" {
		return "", fmt.Errorf("date is required")
	}
	if err := s.api.DeleteDayEntry(ctx, args.Date); err != nil {
		return "", mcpErr("Failed to delete journal entry", err)
	}
	return fmt.Sprintf("Journal entry for %s deleted", args.Date), nil
}
