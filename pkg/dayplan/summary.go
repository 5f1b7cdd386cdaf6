package dayplan

import (
	"context"
	"net/http"
)

// GetSummary retrieves the workspace-wide summary. The endpoint returns the
// aggregate as a bare object with no envelope field.
func (c *Client) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := c.do(ctx, request{method: http.MethodGet, path: "/summary"}, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
