// Package httpclient wraps net/http.Client for JSON APIs whose responses
// need to be inspected in stages (status code, then body, then decode).
package httpclient

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Client wraps net/http.Client with convenience methods.
type Client struct {
	http *http.Client
}

// Response holds the status code and fully-read body of a completed
// request. The underlying http.Response body is already closed.
type Response struct {
	StatusCode int
	Body       []byte
}

// New creates a Client with a 15-second timeout.
func New() *Client {
	return NewWithTimeout(15 * time.Second)
}

// NewWithTimeout creates a Client with the given timeout.
func NewWithTimeout(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// RequestOption configures an http.Request before it is sent.
type RequestOption func(*http.Request)

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// WithQuery adds a query parameter to the request URL.
func WithQuery(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Set(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// GetCtx sends a GET request with the given context, applies options, reads
// the full body, and returns a Response. A non-nil error indicates a
// transport-level failure (DNS, connect, timeout) or context cancellation;
// HTTP error status codes are returned in Response.StatusCode. The response
// body is not interpreted here: callers decide what a given status code and
// payload mean.
func (c *Client) GetCtx(ctx context.Context, rawURL string, opts ...RequestOption) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Get sends a GET request without an explicit context.
func (c *Client) Get(rawURL string, opts ...RequestOption) (*Response, error) {
	return c.GetCtx(context.Background(), rawURL, opts...)
}

// IsTimeout reports whether err is a transport timeout, including a
// context deadline hit while the request was in flight.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

// IsConnectionError reports whether err is a network-level dial or
// transport failure (refused connection, DNS failure, reset).
func IsConnectionError(err error) bool {
	var operr *net.OpError
	if errors.As(err, &operr) {
		return true
	}
	var dnserr *net.DNSError
	return errors.As(err, &dnserr)
}
