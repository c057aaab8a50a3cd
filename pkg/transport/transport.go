// Package transport implements the single HTTP mediation layer every Gamma
// sub-client shares: it binds a base URL, issues one GET per call, and maps
// responses onto the SDK error taxonomy. It performs no retries and keeps no
// state beyond its configuration.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/gammaerrors"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// inject canned implementations.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues requests against a fixed base URL.
type Client struct {
	doer      Doer
	baseURL   string
	userAgent string
}

// NewClient wraps doer with a base URL. Trailing slashes are stripped so
// callers can pass either form.
func NewClient(doer Doer, baseURL string) *Client {
	return &Client{
		doer:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SetUserAgent sets the User-Agent header sent with every request.
func (c *Client) SetUserAgent(ua string) { c.userAgent = ua }

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET to path with the given query parameters and decodes the
// response into out. A nil out discards the body after status checking.
//
// Error mapping: HTTP 404 becomes *gammaerrors.NotFoundError, any other
// non-2xx becomes *gammaerrors.APIError carrying the status and raw body,
// and transport-level failures are wrapped into *gammaerrors.APIError.
// Non-JSON bodies are only assignable to a *string out, with surrounding
// quote characters stripped (the upstream returns bare quoted strings for
// scalar endpoints).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &gammaerrors.APIError{Err: fmt.Errorf("build request %s: %w", path, err)}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return &gammaerrors.APIError{Err: fmt.Errorf("request %s: %w", path, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &gammaerrors.APIError{Status: resp.StatusCode, Err: fmt.Errorf("read response %s: %w", path, err)}
	}

	if resp.StatusCode == http.StatusNotFound {
		return gammaerrors.NewNotFound(path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &gammaerrors.APIError{Status: resp.StatusCode, Body: string(body)}
	}
	if out == nil {
		return nil
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		if s, ok := out.(*string); ok {
			*s = strings.Trim(strings.TrimSpace(string(body)), `"`)
			return nil
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &gammaerrors.APIError{
			Status: resp.StatusCode,
			Body:   string(body),
			Err:    fmt.Errorf("decode response %s: %w", path, err),
		}
	}
	return nil
}

// CloseIdleConnections releases pooled connections when the underlying Doer
// supports it (as *http.Client does).
func (c *Client) CloseIdleConnections() {
	if ci, ok := c.doer.(interface{ CloseIdleConnections() }); ok {
		ci.CloseIdleConnections()
	}
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
