package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultInterval is the minimum delay between requests to one host.
	DefaultInterval = 3 * time.Second
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBody caps how much of a response body is read.
	DefaultMaxBody = 4 << 20 // 4 MiB
	// UserAgent identifies this tool to the sites it scrapes.
	UserAgent = "leaguetab/1.0 (github.com/pfrederiksen/leaguetab)"
)

// Error reports a failed fetch: network error, timeout, or a non-2xx
// status. Status is 0 when no response was received.
type Error struct {
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Client issues rate-limited GET requests. One limiter is kept per
// host, created lazily on first contact.
type Client struct {
	client    *http.Client
	userAgent string
	interval  time.Duration
	maxBody   int64
	limiters  map[string]*rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithInterval overrides the per-host politeness interval. Zero
// disables throttling.
func WithInterval(d time.Duration) Option {
	return func(c *Client) { c.interval = d }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithMaxBody overrides the response body size cap.
func WithMaxBody(n int64) Option {
	return func(c *Client) { c.maxBody = n }
}

// New creates a polite fetch client.
func New(opts ...Option) *Client {
	c := &Client{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: UserAgent,
		interval:  DefaultInterval,
		maxBody:   DefaultMaxBody,
		limiters:  make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// limiter returns the token bucket for a host, creating it on first use.
func (c *Client) limiter(host string) *rate.Limiter {
	if lim, ok := c.limiters[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Every(c.interval), 1)
	c.limiters[host] = lim
	return lim
}

// Get fetches a URL, waiting out the politeness interval for the URL's
// host first. Returns the response body, or an *Error on network
// failure or non-2xx status. Failed requests are not retried.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}

	if c.interval > 0 {
		if err := c.limiter(u.Host).Wait(ctx); err != nil {
			return nil, &Error{URL: rawURL, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, &Error{URL: rawURL, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}
