package gamma

import (
	"time"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// BaseURL is the production Gamma API host.
const BaseURL = "https://gamma-api.polymarket.com"

// DefaultTimeout applies to the HTTP client the SDK constructs when the
// caller does not supply one.
const DefaultTimeout = 30 * time.Second

const defaultUserAgent = "github.com/mateobivoledu/polymarket-gamma-sdk"

// Config holds shared SDK configuration.
type Config struct {
	BaseURL    string
	HTTPClient transport.Doer
	UserAgent  string
	Timeout    time.Duration
}

// DefaultConfig returns the default endpoint and timeout settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:   BaseURL,
		UserAgent: defaultUserAgent,
		Timeout:   DefaultTimeout,
	}
}

// Option overrides part of the client configuration at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different Gamma host. A trailing slash
// is tolerated and stripped.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.Config.BaseURL = u }
}

// WithTimeout sets the per-request timeout of the SDK-owned HTTP client.
// Ignored when WithHTTPClient supplies a client of its own.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Config.Timeout = d }
}

// WithHTTPClient supplies the HTTP client (or any Doer) used for every
// request. The caller keeps ownership of its timeout and pooling settings.
func WithHTTPClient(doer transport.Doer) Option {
	return func(c *Client) { c.Config.HTTPClient = doer }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.Config.UserAgent = ua }
}
