package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
)

type ListNotesArgs struct {
	ProjectID string          `json:"project_id,omitempty" jsonschema:"description=Only notes attached to this project"`
	Pinned    json.RawMessage `json:"pinned,omitempty" jsonschema:"description=Filter by pinned state (omit for all)"`
}

type GetNoteArgs struct {
	NoteID string `json:"note_id" jsonschema:"description=The ID of the note"`
}

type CreateNoteArgs struct {
	Title     string   `json:"title" jsonschema:"description=The note title"`
	Body      string   `json:"body,omitempty" jsonschema:"description=The note body (markdown)"`
	ProjectID string   `json:"project_id,omitempty" jsonschema:"description=Project to attach the note to"`
	Pinned    FlexBool `json:"pinned,omitempty" jsonschema:"description=Pin the note"`
}

type UpdateNoteArgs struct {
	NoteID    string          `json:"note_id" jsonschema:"description=The ID of the note to update"`
	Title     json.RawMessage `json:"title,omitempty" jsonschema:"description=New title (omit to keep)"`
	Body      json.RawMessage `json:"body,omitempty" jsonschema:"description=New body (omit to keep; null to clear)"`
	ProjectID json.RawMessage `json:"project_id,omitempty" jsonschema:"description=New project (omit to keep; null to detach)"`
	Pinned    json.RawMessage `json:"pinned,omitempty" jsonschema:"description=New pinned state (omit to keep)"`
}

func (s *Server) handleListNotes(ctx context.Context, args ListNotesArgs) (any, error) {
	var opts dayplan.ListNotesOptions
	if args.ProjectID != "" {
		opts.ProjectID = &args.ProjectID
	}
	if len(args.Pinned) > 0 && string(args.Pinned) != "null" {
		var fb FlexBool
		if err := json.Unmarshal(args.Pinned, &fb); err != nil {
			return nil, fmt.Errorf("invalid pinned: %w", err)
		}
		pinned := bool(fb)
		opts.Pinned = &pinned
	}

	notes, err := s.api.ListNotes(ctx, &opts)
	if err != nil {
		return nil, mcpErr("Failed to list notes", err)
	}
	return notes, nil
}

func (s *Server) handleGetNote(ctx context.Context, args GetNoteArgs) (any, error) {
	if args.NoteID == "" {
		return nil, fmt.Errorf("note_id is required")
	}
	note, err := s.api.GetNote(ctx, args.NoteID)
	if err != nil {
		return nil, mcpErr("Failed to get note", err)
	}
	return note, nil
}

func (s *Server) handleCreateNote(ctx context.Context, args CreateNoteArgs) (string, error) {
	if args.Title == "" {
		return "", fmt.Errorf("title is required")
	}
	note, err := s.api.CreateNote(ctx, dayplan.CreateNoteParams{
		Title:     args.Title,
		Body:      args.Body,
		ProjectID: args.ProjectID,
		Pinned:    bool(args.Pinned),
	})
	if err != nil {
		return "", mcpErr("Failed to create note", err)
	}
	return fmt.Sprintf("Note %s created (ID: %s)", note.Title, note.ID), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, args UpdateNoteArgs) (string, error) {
	if args.NoteID == "" {
		return "", fmt.Errorf("note_id is required")
	}

	var patch dayplan.NotePatch
	var err error
	if patch.Title, err = opt[string](args.Title); err != nil {
		return "", fmt.Errorf("invalid title: %w", err)
	}
	if patch.Body, err = opt[string](args.Body); err != nil {
		return "", fmt.Errorf("invalid body: %w", err)
	}
	if patch.ProjectID, err = opt[string](args.ProjectID); err != nil {
		return "", fmt.Errorf("invalid project_id: %w", err)
	}
	if patch.Pinned, err = opt[bool](args.Pinned); err != nil {
		return "", fmt.Errorf("invalid pinned: %w", err)
	}

	note, err := s.api.UpdateNote(ctx, args.NoteID, patch)
	if err != nil {
		return "", mcpErr("Failed to update note", err)
	}
	return fmt.Sprintf("Note %s updated", note.ID), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, args GetNoteArgs) (string, error) {
	if args.NoteID == "" {
		return "", fmt.Errorf("note_id is required")
	}
	if err := s.api.DeleteNote(ctx, args.NoteID); err != nil {
		return "", mcpErr("Failed to delete note", err)
	}
	return fmt.Sprintf("Note %s deleted", args.NoteID), nil
}
