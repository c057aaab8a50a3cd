package gamma

import (
	"context"
	"net/url"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Series is a recurring group of events, such as a weekly sports slate.
type Series struct {
	ID         string `json:"id"`
	Ticker     string `json:"ticker"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	SeriesType string `json:"seriesType"`
	Recurrence string `json:"recurrence"`
	Image      string `json:"image"`
	Icon       string `json:"icon"`
	Layout     string `json:"layout"`

	Active   bool `json:"active"`
	Closed   bool `json:"closed"`
	Archived bool `json:"archived"`
	New      bool `json:"new"`
	Featured bool `json:"featured"`

	Volume       float64 `json:"volume"`
	Liquidity    float64 `json:"liquidity"`
	Volume24hr   float64 `json:"volume24hr"`
	CommentCount int     `json:"commentCount"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Events []Event `json:"events,omitempty"`
}

// SeriesRequest filters the series listing. Extra parameters pass through
// verbatim.
type SeriesRequest struct {
	Limit     *int
	Offset    *int
	Order     string
	Ascending *bool

	Slug       []string
	Recurrence string

	Active   *bool
	Closed   *bool
	Archived *bool

	Extra url.Values
}

func (r *SeriesRequest) toQuery() url.Values {
	q := url.Values{}
	if r == nil {
		return q
	}
	setInt(q, "limit", r.Limit)
	setInt(q, "offset", r.Offset)
	setString(q, "order", r.Order)
	setBool(q, "ascending", r.Ascending)
	addStrings(q, "slug", r.Slug)
	setString(q, "recurrence", r.Recurrence)
	setBool(q, "active", r.Active)
	setBool(q, "closed", r.Closed)
	setBool(q, "archived", r.Archived)
	mergeExtra(q, r.Extra)
	return q
}

// SeriesClient accesses series listings and lookups.
type SeriesClient struct {
	transport *transport.Client
}

// List returns series matching the request filters.
func (sc *SeriesClient) List(ctx context.Context, req *SeriesRequest) ([]Series, error) {
	var series []Series
	if err := sc.transport.Get(ctx, "/series", req.toQuery(), &series); err != nil {
		return nil, err
	}
	return series, nil
}

// GetByID returns the series with the given ID.
func (sc *SeriesClient) GetByID(ctx context.Context, id string) (*Series, error) {
	var s Series
	if err := sc.transport.Get(ctx, "/series/"+url.PathEscape(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
