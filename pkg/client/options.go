package client

import (
	"context"
	"net/http"
	"time"
)

// Defaults applied by NewClient.  Matrix dumps grow quadratically with the
// pattern count, so they get a longer deadline and fewer retries than the
// other calls.
const (
	DefaultTimeout        = 5 * time.Minute
	DefaultMatrixTimeout  = 30 * time.Minute
	DefaultRetryMax       = 3
	DefaultMatrixRetryMax = 1
	DefaultRetryWaitMin   = 500 * time.Millisecond
	DefaultRetryWaitMax   = 5 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport client.  Per-call deadlines still
// come from WithTimeout and WithMatrixTimeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the request logger; nil keeps the silent default.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds Cluster and Catalog calls, retries included.  Zero
// leaves them bounded only by the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// WithMatrixTimeout bounds Matrix calls, retries included.  Zero leaves
// them bounded only by the caller's context.
func WithMatrixTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.matrixTimeout = d
		}
	}
}

// WithRetryMax sets how many times Cluster and Catalog are retried after the
// first attempt.
func WithRetryMax(retryMax int) Option {
	return func(c *Client) {
		if retryMax >= 0 {
			c.retryMax = retryMax
		}
	}
}

// WithMatrixRetryMax sets how many times Matrix is retried after the first
// attempt.
func WithMatrixRetryMax(retryMax int) Option {
	return func(c *Client) {
		if retryMax >= 0 {
			c.matrixRetryMax = retryMax
		}
	}
}

// WithRetryWait sets the backoff bounds.  min must be positive; max is
// ignored unless it is at least min.
func WithRetryWait(min, max time.Duration) Option {
	return func(c *Client) {
		if min > 0 {
			c.retryWaitMin = min
			if max >= min {
				c.retryWaitMax = max
			}
		}
	}
}

// WithUserAgent overrides the dendro-go-sdk user agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// withDeadline derives the context of one call; d of zero adds no deadline.
func withDeadline(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

//Personal.AI order the ending
