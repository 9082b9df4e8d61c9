// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the JSON GET helper shared by the Wikidata and
// Wikipedia clients.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/smart-summary/pkg/types"
)

// ErrNotFound marks a lookup that succeeded at the transport level but found
// nothing: no search hits, or a missing page. Callers wrap it with context.
var ErrNotFound = errors.New("not found")

// UpstreamError reports a failed call to a required upstream API: a non-2xx
// status, a body that is not valid JSON, or an API-level error object.
type UpstreamError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("upstream %s returned HTTP %s", e.URL, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NotFound reports whether the upstream answered 404.
func (e *UpstreamError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client issues GET requests with the application's User-Agent.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New returns a Client with a fixed timeout taken from cfg. Zero values fall
// back to types.DefaultTimeout and types.DefaultUserAgent.
func New(cfg types.HTTPConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = types.DefaultUserAgent
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: ua,
	}
}

// GetJSON fetches url and decodes the JSON body into v. A non-2xx response
// or an undecodable body yields *UpstreamError.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return &UpstreamError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &UpstreamError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("parsing response: %w", err),
		}
	}
	return nil
}
