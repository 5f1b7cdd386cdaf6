package dayplan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production Dayplan API endpoint.
const DefaultBaseURL = "https://api.dayplan.app/v1"

// DefaultTimeout is the per-attempt request timeout.
const DefaultTimeout = 30 * time.Second

// retryDelay is the fixed wait before the single retry attempt.
const retryDelay = 2 * time.Second

// maxAttempts bounds the retry loop: one initial attempt plus one retry.
const maxAttempts = 2

// Client is the Dayplan API client. Configuration is immutable after New;
// concurrent calls on the same instance are safe because every call carries
// its own request state.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	retryDelay time.Duration
	httpClient *http.Client
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. A single trailing slash is stripped so that
// "https://x/" and "https://x" produce identical request URLs.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryDelay overrides the fixed delay before the retry attempt.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new Dayplan API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		timeout:    DefaultTimeout,
		retryDelay: retryDelay,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if c.timeout <= 0 {
		return nil, ErrInvalidTimeout
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")

	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one logical API call. Constructed fresh per call,
// never reused.
type request struct {
	method string
	path   string
	body   any
	header map[string]string
}

// do sends an authenticated JSON request and decodes the response body into
// out (which may be nil for operations without a meaningful response).
//
// Retry policy: at most one extra attempt, after a fixed delay, and only for
// HTTP 503 or a transport-level failure. Timeouts and cancellations propagate
// immediately. A retryable failure on the final attempt fails with that
// attempt's own error info.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var payload []byte
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = c.attempt(ctx, req, payload, out)
		if lastErr == nil {
			return nil
		}
		if attempt == maxAttempts || !retryable(lastErr) {
			return lastErr
		}
		if err := c.waitRetry(ctx); err != nil {
			return err
		}
	}
	return lastErr
}

// retryable reports whether a failed attempt qualifies for the single retry:
// HTTP 503 or a transport-level failure. Timeouts never qualify.
func retryable(err error) bool {
	if errors.Is(err, ErrTimeout) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusServiceUnavailable
	}
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

func (c *Client) attempt(ctx context.Context, req request, payload []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	for key, value := range req.header {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.classify(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classify separates timeouts and cancellations, which must propagate
// immediately, from transport failures, which are retried. The decision is
// based on error categories rather than message text.
func (c *Client) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &TimeoutError{Timeout: c.timeout, Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TimeoutError{Timeout: c.timeout, Err: err}
	}
	return &TransportError{Err: err}
}

// newAPIError normalizes a non-2xx response into an APIError. The message is
// the `error` field of the JSON body when present; a body that is missing,
// empty, or not parseable JSON falls back to "HTTP <status>: <statusText>"
// so a parse failure never masks the HTTP failure.
func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)

	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

// waitRetry sleeps for the fixed retry delay, honoring cancellation.
func (c *Client) waitRetry(ctx context.Context) error {
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return &TimeoutError{Timeout: c.timeout, Err: ctx.Err()}
	case <-timer.C:
		return nil
	}
}
