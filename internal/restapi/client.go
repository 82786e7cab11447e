// Package restapi implements a small typed client for JSONPlaceholder
// style REST APIs, used by the HTTP client demo.
package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// maxResponseBodySize caps how much of a response body is read. 1MB is
// far beyond anything the demo API returns.
const maxResponseBodySize = 1 << 20

// connection pooling limits, sized for a client that talks to a single host
const (
	defaultMaxIdleConns        = 10
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// defaultTimeout is the per-request timeout applied when none is
// configured.
const defaultTimeout = 10 * time.Second

// StatusError reports an unexpected HTTP status code from the API.
type StatusError struct {
	// StatusCode is the HTTP status code that was returned.
	StatusCode int

	// URL is the request URL that produced the status.
	URL string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Client is a typed REST API client.
//
// Requests carry a per-request timeout via context and response bodies
// are size limited. An optional token-bucket rate limiter throttles
// outgoing requests, which matters when fetching many resources
// concurrently. Create instances with [NewClient].
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
}

// Option configures a [Client] during construction.
type Option func(*Client) error

// WithTimeout sets the per-request timeout. Defaults to 10s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		c.timeout = d
		return nil
	}
}

// WithRateLimit throttles requests to rps per second with the given
// burst. Requests wait for a token before being sent; waiting respects
// context cancellation.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) error {
		if rps <= 0 || burst < 1 {
			return fmt.Errorf("rate limit requires positive rps and burst, got rps=%v burst=%d", rps, burst)
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// NewClient creates a [Client] for the API at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL must not be empty")
	}

	c := &Client{
		baseURL: baseURL,
		timeout: defaultTimeout,
		httpClient: &http.Client{
			// per-request timeouts come from context, not the client
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Users fetches all users from the /users resource.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// User fetches a single user by ID from /users/{id}.
func (c *Client) User(ctx context.Context, id int) (User, error) {
	var user User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return User{}, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	return user, nil
}

// getJSON performs a GET request against path and decodes the JSON
// response into target. Non-200 responses become a [StatusError].
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Close releases idle connections in the client's pool.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
