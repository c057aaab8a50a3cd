// Package gamma is a typed, read-only Go client for the Polymarket Gamma
// API, the metadata and discovery service for prediction markets. It covers
// markets, events, tags, series, comments, profiles, sports metadata,
// search, and URL-to-entity resolution.
//
// The client and all sub-clients are safe for concurrent use by multiple
// goroutines sharing the one underlying HTTP transport. Every call takes a
// context.Context and performs a single HTTP round trip, except ResolveURL
// (up to two sequential lookups) and the ListAll helpers (one request per
// page).
package gamma

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Client is the entry point for the Gamma API. Construct it with NewClient
// and release its connection resources with Close when done.
//
//	client := gamma.NewClient()
//	defer client.Close()
//	markets, err := client.Markets.List(ctx, nil)
type Client struct {
	Config Config

	Markets  *MarketsClient
	Events   *EventsClient
	Tags     *TagsClient
	Series   *SeriesClient
	Comments *CommentsClient
	Profiles *ProfilesClient
	Sports   *SportsClient

	transport *transport.Client
}

// NewClient creates a client with optional configuration overrides.
func NewClient(opts ...Option) *Client {
	c := &Client{Config: DefaultConfig()}

	for _, opt := range opts {
		opt(c)
	}

	if c.Config.HTTPClient == nil {
		c.Config.HTTPClient = &http.Client{Timeout: c.Config.Timeout}
	}

	c.transport = transport.NewClient(c.Config.HTTPClient, c.Config.BaseURL)
	c.transport.SetUserAgent(c.Config.UserAgent)

	c.Markets = &MarketsClient{transport: c.transport}
	c.Events = &EventsClient{transport: c.transport}
	c.Tags = &TagsClient{transport: c.transport}
	c.Series = &SeriesClient{transport: c.transport}
	c.Comments = &CommentsClient{transport: c.transport}
	c.Profiles = &ProfilesClient{transport: c.transport}
	c.Sports = &SportsClient{transport: c.transport}

	return c
}

// Status returns the operational status of the Gamma service. The endpoint
// responds with a bare quoted string rather than a JSON object.
func (c *Client) Status(ctx context.Context) (string, error) {
	var status string
	if err := c.transport.Get(ctx, "/status", nil, &status); err != nil {
		return "", err
	}
	return status, nil
}

// Search performs a global search across markets, events, and profiles.
// The query text is sent under the fixed parameter q; extra parameters are
// merged in verbatim. Search results are heterogeneous, so the raw decoded
// mapping is returned rather than a typed entity.
func (c *Client) Search(ctx context.Context, query string, extra url.Values) (map[string]any, error) {
	params := url.Values{}
	for k, vs := range extra {
		params[k] = append([]string(nil), vs...)
	}
	params.Set("q", query)

	var out map[string]any
	if err := c.transport.Get(ctx, "/search", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Close releases the idle connections held by the underlying HTTP client.
// Safe to defer immediately after NewClient.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}
