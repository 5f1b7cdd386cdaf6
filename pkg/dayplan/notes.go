package dayplan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListNotesOptions filters ListNotes.
type ListNotesOptions struct {
	ProjectID *string
	Pinned    *bool
}

// ListNotes lists notes, optionally filtered by project or pinned state.
func (c *Client) ListNotes(ctx context.Context, opts *ListNotesOptions) ([]Note, error) {
	var q query
	if opts != nil {
		if opts.ProjectID != nil {
			q.add("projectId", *opts.ProjectID)
		}
		if opts.Pinned != nil {
			q.addBool("pinned", *opts.Pinned)
		}
	}

	var env struct {
		Notes []Note `json:"notes"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/notes" + q.encode()}, &env); err != nil {
		return nil, err
	}
	return env.Notes, nil
}

// GetNote retrieves a single note.
func (c *Client) GetNote(ctx context.Context, noteID string) (*Note, error) {
	var env struct {
		Note *Note `json:"note"`
	}
	path := fmt.Sprintf("/notes/%s", url.PathEscape(noteID))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &env); err != nil {
		return nil, err
	}
	return env.Note, nil
}

// CreateNote creates a note.
func (c *Client) CreateNote(ctx context.Context, params CreateNoteParams) (*Note, error) {
	var env struct {
		Note *Note `json:"note"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/notes", body: params}, &env); err != nil {
		return nil, err
	}
	return env.Note, nil
}

// UpdateNote applies a partial update to a note.
func (c *Client) UpdateNote(ctx context.Context, noteID string, patch NotePatch) (*Note, error) {
	var env struct {
		Note *Note `json:"note"`
	}
	path := fmt.Sprintf("/notes/%s", url.PathEscape(noteID))
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &env); err != nil {
		return nil, err
	}
	return env.Note, nil
}

// DeleteNote deletes a note.
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	path := fmt.Sprintf("/notes/%s", url.PathEscape(noteID))
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
