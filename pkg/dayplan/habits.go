package dayplan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListHabitsOptions filters ListHabits.
type ListHabitsOptions struct {
	IncludeArchived *bool
}

// ListHabits lists habits.
func (c *Client) ListHabits(ctx context.Context, opts *ListHabitsOptions) ([]Habit, error) {
	var q query
	if opts != nil && opts.IncludeArchived != nil {
		q.addBool("includeArchived", *opts.IncludeArchived)
	}

	var env struct {
		Habits []Habit `json:"habits"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/habits" + q.encode()}, &env); err != nil {
		return nil, err
	}
	return env.Habits, nil
}

// GetHabit retrieves a single habit.
func (c *Client) GetHabit(ctx context.Context, habitID string) (*Habit, error) {
	var env struct {
		Habit *Habit `json:"habit"`
	}
	path := fmt.Sprintf("/habits/%s", url.PathEscape(habitID))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &env); err != nil {
		return nil, err
	}
	return env.Habit, nil
}

// CreateHabit creates a habit.
func (c *Client) CreateHabit(ctx context.Context, params CreateHabitParams) (*Habit, error) {
	var env struct {
		Habit *Habit `json:"habit"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/habits", body: params}, &env); err != nil {
		return nil, err
	}
	return env.Habit, nil
}

// UpdateHabit applies a partial update to a habit.
func (c *Client) UpdateHabit(ctx context.Context, habitID string, patch HabitPatch) (*Habit, error) {
	var env struct {
		Habit *Habit `json:"habit"`
	}
	path := fmt.Sprintf("/habits/%s", url.PathEscape(habitID))
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &env); err != nil {
		return nil, err
	}
	return env.Habit, nil
}

// DeleteHabit deletes a habit and its entries.
func (c *Client) DeleteHabit(ctx context.Context, habitID string) error {
	path := fmt.Sprintf("/habits/%s", url.PathEscape(habitID))
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}

// GetHabitEntry retrieves the entry for a habit on a given day. Days with no
// entry return (nil, nil): the backend answers {"habitEntry": null}.
func (c *Client) GetHabitEntry(ctx context.Context, habitID, date string) (*HabitEntry, error) {
	var env struct {
		HabitEntry *HabitEntry `json:"habitEntry"`
	}
	path := fmt.Sprintf("/habits/%s/entries/%s", url.PathEscape(habitID), url.PathEscape(date))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &env); err != nil {
		return nil, err
	}
	return env.HabitEntry, nil
}

// RecordHabitEntry records a habit completion for a day.
func (c *Client) RecordHabitEntry(ctx context.Context, habitID string, params RecordHabitEntryParams) (*HabitEntry, error) {
	var env struct {
		HabitEntry *HabitEntry `json:"habitEntry"`
	}
	path := fmt.Sprintf("/habits/%s/entries", url.PathEscape(habitID))
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: params}, &env); err != nil {
		return nil, err
	}
	return env.HabitEntry, nil
}
