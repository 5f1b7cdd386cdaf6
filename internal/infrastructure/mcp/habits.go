package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
)

type ListHabitsArgs struct {
	IncludeArchived FlexBool `json:"include_archived,omitempty" jsonschema:"description=Include archived habits"`
}

type GetHabitArgs struct {
	HabitID string `json:"habit_id" jsonschema:"description=The ID of the habit"`
}

type CreateHabitArgs struct {
	Name          string  `json:"name" jsonschema:"description=The name of the habit"`
	Cadence       string  `json:"cadence,omitempty" jsonschema:"description=How often the habit is expected (daily or weekly)"`
	TargetPerWeek FlexInt `json:"target_per_week,omitempty" jsonschema:"description=Target completions per week (weekly cadence)"`
}

type UpdateHabitArgs struct {
	HabitID       string          `json:"habit_id" jsonschema:"description=The ID of the habit to update"`
	Name          json.RawMessage `json:"name,omitempty" jsonschema:"description=New name (omit to keep)"`
	Cadence       json.RawMessage `json:"cadence,omitempty" jsonschema:"description=New cadence (omit to keep)"`
	TargetPerWeek json.RawMessage `json:"target_per_week,omitempty" jsonschema:"description=New weekly target (omit to keep; null to clear)"`
	Archived      json.RawMessage `json:"archived,omitempty" jsonschema:"description=Archive flag (omit to keep)"`
}

type HabitEntryArgs struct {
	HabitID string `json:"habit_id" jsonschema:"description=The ID of the habit"`
	Date    string `json:"date" jsonschema:"description=The calendar day (YYYY-MM-DD)"`
}

type RecordHabitEntryArgs struct {
	HabitID   string   `json:"habit_id" jsonschema:"description=The ID of the habit"`
	Date      string   `json:"date" jsonschema:"description=The calendar day (YYYY-MM-DD)"`
	Completed FlexBool `json:"completed" jsonschema:"description=Whether the habit was completed"`
	Quantity  FlexInt  `json:"quantity,omitempty" jsonschema:"description=Optional quantity (e.g. pages read)"`
}

func (s *Server) handleListHabits(ctx context.Context, args ListHabitsArgs) (any, error) {
	var opts dayplan.ListHabitsOptions
	if args.IncludeArchived {
		include := true
		opts.IncludeArchived = &include
	}

	habits, err := s.api.ListHabits(ctx, &opts)
	if err != nil {
		return nil, mcpErr("Failed to list habits", err)
	}
	return habits, nil
}

func (s *Server) handleGetHabit(ctx context.Context, args GetHabitArgs) (any, error) {
	if args.HabitID == "" {
		return nil, fmt.Errorf("habit_id is required")
	}
	habit, err := s.api.GetHabit(ctx, args.HabitID)
	if err != nil {
		return nil, mcpErr("Failed to get habit", err)
	}
	return habit, nil
}

func (s *Server) handleCreateHabit(ctx context.Context, args CreateHabitArgs) (string, error) {
	if args.Name == "" {
		return "", fmt.Errorf("name is required")
	}
	habit, err := s.api.CreateHabit(ctx, dayplan.CreateHabitParams{
		Name:          args.Name,
		Cadence:       dayplan.HabitCadence(args.Cadence),
		TargetPerWeek: int(args.TargetPerWeek),
	})
	if err != nil {
		return "", mcpErr("Failed to create habit", err)
	}
	return fmt.Sprintf("Habit %s created (ID: %s)", habit.Name, habit.ID), nil
}

func (s *Server) handleUpdateHabit(ctx context.Context, args UpdateHabitArgs) (string, error) {
	if args.HabitID == "" {
		return "", fmt.Errorf("habit_id is required")
	}

	var patch dayplan.HabitPatch
	var err error
	if patch.Name, err = opt[string](args.Name); err != nil {
		return "", fmt.Errorf("invalid name: %w", err)
	}
	if patch.Cadence, err = opt[dayplan.HabitCadence](args.Cadence); err != nil {
		return "", fmt.Errorf("invalid cadence: %w", err)
	}
	if patch.TargetPerWeek, err = opt[int](args.TargetPerWeek); err != nil {
		return "", fmt.Errorf("invalid target_per_week: %w", err)
	}
	if patch.Archived, err = opt[bool](args.Archived); err != nil {
		return "", fmt.Errorf("invalid archived: %w", err)
	}

	habit, err := s.api.UpdateHabit(ctx, args.HabitID, patch)
	if err != nil {
		return "", mcpErr("Failed to update habit", err)
	}
	return fmt.Sprintf("Habit %s updated", habit.ID), nil
}

func (s *Server) handleDeleteHabit(ctx context.Context, args GetHabitArgs) (string, error) {
	if args.HabitID == "" {
		return "", fmt.Errorf("habit_id is required")
	}
	if err := s.api.DeleteHabit(ctx, args.HabitID); err != nil {
		return "", mcpErr("Failed to delete habit", err)
	}
	return fmt.Sprintf("Habit %s deleted", args.HabitID), nil
}

func (s *Server) handleGetHabitEntry(ctx context.Context, args HabitEntryArgs) (any, error) {
	if args.HabitID == "" || args.Date == "" {
		return nil, fmt.Errorf("habit_id and date are required")
	}
	entry, err := s.api.GetHabitEntry(ctx, args.HabitID, args.Date)
	if err != nil {
		return nil, mcpErr("Failed to get habit entry", err)
	}
	if entry == nil {
		return fmt.Sprintf("No entry for habit %s on %s", args.HabitID, args.Date), nil
	}
	return entry, nil
}

func (s *Server) handleRecordHabitEntry(ctx context.Context, args RecordHabitEntryArgs) (string, error) {
	if args.HabitID == "" || args.Date == "" {
		return "", fmt.Errorf("habit_id and date are required")
	}
	entry, err := s.api.RecordHabitEntry(ctx, args.HabitID, dayplan.RecordHabitEntryParams{
		Date:      args.Date,
		Completed: bool(args.Completed),
		Quantity:  int(args.Quantity),
	})
	if err != nil {
		return "", mcpErr("Failed to record habit entry", err)
	}
	return fmt.Sprintf("Habit entry for %s recorded on %s", args.HabitID, entry.Date), nil
}
