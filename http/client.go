package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// Client opens asynchronous exchanges. The zero options configure no
// timeout at all; the timeout reason is only reachable when a deadline
// is hung on the client or on the dispatch context externally.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a dispatcher with the given options.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{},
		headers:    make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithTimeout sets a deadline on the underlying transport. This layer
// sets none by default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying net/http client entirely.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithHeader adds a default header applied to every dispatched request.
// Request headers of the same name win.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// Dispatch opens the exchange described by req and returns a Pending
// that will be settled exactly once by a terminal transport event. The
// request always carries Accept: application/json unless the caller
// overrides it.
func (c *Client) Dispatch(ctx context.Context, req *Request) *Pending {
	pending := newPending()

	var body io.Reader
	if req.Entity != nil {
		body = bytes.NewReader(req.Entity)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Path, body)
	if err != nil {
		// Malformed method or URL never reaches the wire.
		pending.settle(Outcome{Reason: ReasonNone})
		return pending
	}

	httpReq.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	pending.markSent()

	go func() {
		httpResp, err := c.httpClient.Do(httpReq)
		if err != nil {
			pending.settle(classifyTransportError(err))
			return
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			pending.settle(classifyTransportError(err))
			return
		}

		pending.settle(classifyLoad(httpResp.StatusCode, respBody))
	}()

	return pending
}
