// Package fetch retrieves published documents over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the request timeout used by New.
const DefaultTimeout = 30 * time.Second

// FetchError reports a failure to retrieve a document. StatusCode is zero
// when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch: %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch: %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches document content.
type Client struct {
	httpClient *http.Client
}

// New returns a Client with the default timeout.
func New() *Client {
	return NewWithClient(&http.Client{Timeout: DefaultTimeout})
}

// NewWithClient returns a Client that issues requests through hc. Pass a
// client with a zero Timeout to block until the transfer completes.
func NewWithClient(hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{httpClient: hc}
}

// Get retrieves the document at url and returns its body as text. Any
// transport failure or non-2xx status is reported as a *FetchError. The
// response body is fully read and closed before Get returns.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused before it is closed.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}

	return string(body), nil
}
