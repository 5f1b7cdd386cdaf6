package dayplan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTags lists all tags.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var env struct {
		Tags []Tag `json:"tags"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/tags"}, &env); err != nil {
		return nil, err
	}
	return env.Tags, nil
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, params CreateTagParams) (*Tag, error) {
	var env struct {
		Tag *Tag `json:"tag"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/tags", body: params}, &env); err != nil {
		return nil, err
	}
	return env.Tag, nil
}

// DeleteTag deletes a tag and detaches it from all tasks.
func (c *Client) DeleteTag(ctx context.Context, tagID string) error {
	path := fmt.Sprintf("/tags/%s", url.PathEscape(tagID))
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
