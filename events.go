package gamma

import (
	"context"
	"net/url"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Event groups related markets under a single topic, such as an election
// or a game.
type Event struct {
	ID               string `json:"id"`
	Ticker           string `json:"ticker"`
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ResolutionSource string `json:"resolutionSource"`
	Image            string `json:"image"`
	Icon             string `json:"icon"`

	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	CreationDate string `json:"creationDate"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`

	Active     bool `json:"active"`
	Closed     bool `json:"closed"`
	Archived   bool `json:"archived"`
	New        bool `json:"new"`
	Featured   bool `json:"featured"`
	Restricted bool `json:"restricted"`

	Liquidity    float64 `json:"liquidity"`
	Volume       float64 `json:"volume"`
	Volume24hr   float64 `json:"volume24hr"`
	OpenInterest float64 `json:"openInterest"`
	Competitive  float64 `json:"competitive"`

	EnableOrderBook  bool   `json:"enableOrderBook"`
	NegRisk          bool   `json:"negRisk"`
	EnableNegRisk    bool   `json:"enableNegRisk"`
	NegRiskAugmented bool   `json:"negRiskAugmented"`
	CommentCount     int    `json:"commentCount"`
	CompetitionState string `json:"competitionState"`
	CYOM             bool   `json:"cyom"`

	ShowAllOutcomes  bool `json:"showAllOutcomes"`
	ShowMarketImages bool `json:"showMarketImages"`

	Markets []Market `json:"markets,omitempty"`
	Tags    []Tag    `json:"tags,omitempty"`
	Series  []Series `json:"series,omitempty"`
}

// EventsRequest filters the event listing. Nil pointer fields are omitted
// from the query. Extra parameters pass through verbatim.
type EventsRequest struct {
	Limit     *int
	Offset    *int
	Order     string
	Ascending *bool

	ID   []string
	Slug []string

	Active   *bool
	Closed   *bool
	Archived *bool
	Featured *bool

	LiquidityMin *float64
	LiquidityMax *float64
	VolumeMin    *float64
	VolumeMax    *float64

	StartDateMin string
	StartDateMax string
	EndDateMin   string
	EndDateMax   string

	TagID       string
	TagSlug     string
	RelatedTags *bool

	Extra url.Values
}

func (r *EventsRequest) toQuery() url.Values {
	q := url.Values{}
	if r == nil {
		return q
	}
	setInt(q, "limit", r.Limit)
	setInt(q, "offset", r.Offset)
	setString(q, "order", r.Order)
	setBool(q, "ascending", r.Ascending)
	addStrings(q, "id", r.ID)
	addStrings(q, "slug", r.Slug)
	setBool(q, "active", r.Active)
	setBool(q, "closed", r.Closed)
	setBool(q, "archived", r.Archived)
	setBool(q, "featured", r.Featured)
	setFloat(q, "liquidity_min", r.LiquidityMin)
	setFloat(q, "liquidity_max", r.LiquidityMax)
	setFloat(q, "volume_min", r.VolumeMin)
	setFloat(q, "volume_max", r.VolumeMax)
	setString(q, "start_date_min", r.StartDateMin)
	setString(q, "start_date_max", r.StartDateMax)
	setString(q, "end_date_min", r.EndDateMin)
	setString(q, "end_date_max", r.EndDateMax)
	setString(q, "tag_id", r.TagID)
	setString(q, "tag_slug", r.TagSlug)
	setBool(q, "related_tags", r.RelatedTags)
	mergeExtra(q, r.Extra)
	return q
}

// EventsClient accesses event listings and lookups.
type EventsClient struct {
	transport *transport.Client
}

// List returns events matching the request filters.
func (ec *EventsClient) List(ctx context.Context, req *EventsRequest) ([]Event, error) {
	var events []Event
	if err := ec.transport.Get(ctx, "/events", req.toQuery(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListAll pages through the listing with limit/offset until a short page,
// accumulating every matching event.
func (ec *EventsClient) ListAll(ctx context.Context, req *EventsRequest) ([]Event, error) {
	var r EventsRequest
	if req != nil {
		r = *req
	}
	limit := defaultPageLimit
	if r.Limit != nil && *r.Limit > 0 {
		limit = *r.Limit
	}
	offset := 0
	if r.Offset != nil {
		offset = *r.Offset
	}

	var all []Event
	for {
		l, o := limit, offset
		r.Limit, r.Offset = &l, &o
		page, err := ec.List(ctx, &r)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < limit {
			return all, nil
		}
		offset += limit
	}
}

// GetByID returns the event with the given ID.
func (ec *EventsClient) GetByID(ctx context.Context, id string) (*Event, error) {
	var e Event
	if err := ec.transport.Get(ctx, "/events/"+url.PathEscape(id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetBySlug returns the event with the given slug.
func (ec *EventsClient) GetBySlug(ctx context.Context, slug string) (*Event, error) {
	var e Event
	if err := ec.transport.Get(ctx, "/events/slug/"+url.PathEscape(slug), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetTags returns the tags attached to an event.
func (ec *EventsClient) GetTags(ctx context.Context, id string) ([]Tag, error) {
	var tags []Tag
	if err := ec.transport.Get(ctx, "/events/"+url.PathEscape(id)+"/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
