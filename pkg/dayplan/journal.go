package dayplan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListDayEntriesOptions bounds ListDayEntries to a date range (inclusive,
// YYYY-MM-DD). Nil bounds are omitted.
type ListDayEntriesOptions struct {
	From *string
	To   *string
}

// ListDayEntries lists journal entries, newest first.
func (c *Client) ListDayEntries(ctx context.Context, opts *ListDayEntriesOptions) ([]DayEntry, error) {
	var q query
	if opts != nil {
		if opts.From != nil {
			q.add("from", *opts.From)
		}
		if opts.To != nil {
			q.add("to", *opts.To)
		}
	}

	var env struct {
		DayEntries []DayEntry `json:"dayEntries"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/journal/days" + q.encode()}, &env); err != nil {
		return nil, err
	}
	return env.DayEntries, nil
}

// GetDayEntry retrieves the journal entry for a calendar day. A day with no
// entry is a valid outcome: the backend answers {"dayEntry": null} and
// GetDayEntry returns (nil, nil), distinct from a 404.
func (c *Client) GetDayEntry(ctx context.Context, date string) (*DayEntry, error) {
	var env struct {
		DayEntry *DayEntry `json:"dayEntry"`
	}
	path := fmt.Sprintf("/journal/days/%s", url.PathEscape(date))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &env); err != nil {
		return nil, err
	}
	return env.DayEntry, nil
}

// CreateDayEntry creates the journal entry for a day.
func (c *Client) CreateDayEntry(ctx context.Context, params CreateDayEntryParams) (*DayEntry, error) {
	var env struct {
		DayEntry *DayEntry `json:"dayEntry"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/journal/days", body: params}, &env); err != nil {
		return nil, err
	}
	return env.DayEntry, nil
}

// UpdateDayEntry applies a partial update to a day's entry.
func (c *Client) UpdateDayEntry(ctx context.Context, date string, patch DayEntryPatch) (*DayEntry, error) {
	var env struct {
		DayEntry *DayEntry `json:"dayEntry"`
	}
	path := fmt.Sprintf("/journal/days/%s", url.PathEscape(date))
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &env); err != nil {
		return nil, err
	}
	return env.DayEntry, nil
}

// DeleteDayEntry deletes a day's journal entry.
func (c *Client) DeleteDayEntry(ctx context.Context, date string) error {
	path := fmt.Sprintf("/journal/days/%s", url.PathEscape(date))
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
