package gamma

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/gammaerrors"
	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/logger"
)

// Resolution is the outcome of ResolveURL. At most one of Market and Event
// is set; both nil means the slug resolved to nothing.
type Resolution struct {
	Market *Market
	Event  *Event
}

// Found reports whether the URL resolved to an entity.
func (r Resolution) Found() bool {
	return r.Market != nil || r.Event != nil
}

// ResolveURL resolves a Polymarket frontend URL (…/market/{slug} or
// …/event/{slug}) to the entity it names. The market lookup is attempted
// first, then the event lookup; the two requests are strictly sequential
// because the second only runs after the first fails. Lookup failures are
// swallowed by design for this convenience call and logged at debug level;
// only an unresolvable URL is an error.
func (c *Client) ResolveURL(ctx context.Context, rawURL string) (Resolution, error) {
	slug, ok := extractSlug(rawURL)
	if !ok {
		return Resolution{}, &gammaerrors.ValidationError{Msg: fmt.Sprintf("cannot extract slug from URL: %q", rawURL)}
	}

	m, err := c.Markets.GetBySlug(ctx, slug)
	if err != nil {
		logger.Debug("resolve url: market lookup for %q failed: %v", slug, err)
	} else if m != nil {
		return Resolution{Market: m}, nil
	}

	e, err := c.Events.GetBySlug(ctx, slug)
	if err != nil {
		logger.Debug("resolve url: event lookup for %q failed: %v", slug, err)
	} else if e != nil {
		return Resolution{Event: e}, nil
	}

	return Resolution{}, nil
}

// extractSlug pulls the entity slug out of a frontend URL. The path must
// have at least two segments and start with "market" or "event"; the last
// segment is the slug.
func extractSlug(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", false
	}
	if parts[0] != "market" && parts[0] != "event" {
		return "", false
	}
	slug := parts[len(parts)-1]
	if slug == "" {
		return "", false
	}
	return slug, true
}
