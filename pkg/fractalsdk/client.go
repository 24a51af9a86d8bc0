package fractalsdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProductionURL is the base URL of the production API.
	ProductionURL = "https://api.fractal.global/"

	// DevelopmentURL is the base URL of the development API.
	DevelopmentURL = "https://dev.fractal.global/"

	// DefaultTimeout bounds every request, including the automatic retry's
	// individual attempt.
	DefaultTimeout = 10 * time.Second

	// SecretLen is the decoded length of a client secret.
	SecretLen = 20
)

// Client is a client for the Fractal Global Credits API. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures a Client at construction.
type Option func(*Client)

// NewClient creates a client for the production API.
func NewClient(opts ...Option) *Client {
	return NewClientWithURL(ProductionURL, opts...)
}

// NewDevClient creates a client for the development API.
func NewDevClient(opts ...Option) *Client {
	return NewClientWithURL(DevelopmentURL, opts...)
}

// NewClientWithURL creates a client for the API rooted at baseURL. Paths
// are resolved under baseURL + "v1/".
func NewClientWithURL(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: "fractal-go",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the root URL the client talks to, with a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// WithHTTPClient replaces the underlying HTTP client. Options applied after
// it (WithTimeout, WithTransport) modify a copy of hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout applied to every request attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithTransport sets the RoundTripper used to send requests, e.g. a logging
// transport from slogx.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Transport = rt
		c.httpClient = &hc
	}
}

// WithRateLimit paces requests to at most perHour per hour, matching the
// request_limit the API assigned to the application. Calls wait for a slot
// or for their context to end.
func WithRateLimit(perHour int) Option {
	return func(c *Client) {
		if perHour <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), 1)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
