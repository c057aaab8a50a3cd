package gamma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/gammaerrors"
	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Market is a single tradeable prediction market. Gamma serializes most
// numeric fields as strings, and Outcomes, OutcomePrices, and ClobTokenIDs
// as JSON-encoded strings; see the accessors in prices.go for parsed forms.
type Market struct {
	ID               string `json:"id"`
	Question         string `json:"question"`
	ConditionID      string `json:"conditionId"`
	QuestionID       string `json:"questionID"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	ResolutionSource string `json:"resolutionSource"`
	Image            string `json:"image"`
	Icon             string `json:"icon"`

	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	StartDateISO string `json:"startDateIso"`
	EndDateISO   string `json:"endDateIso"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`

	Active          bool `json:"active"`
	Closed          bool `json:"closed"`
	Archived        bool `json:"archived"`
	New             bool `json:"new"`
	Featured        bool `json:"featured"`
	Restricted      bool `json:"restricted"`
	Ready           bool `json:"ready"`
	Funded          bool `json:"funded"`
	AcceptingOrders bool `json:"acceptingOrders"`

	Outcomes      string `json:"outcomes"`
	OutcomePrices string `json:"outcomePrices"`
	ClobTokenIDs  string `json:"clobTokenIds"`

	Liquidity      string  `json:"liquidity"`
	LiquidityNum   float64 `json:"liquidityNum"`
	Volume         string  `json:"volume"`
	VolumeNum      float64 `json:"volumeNum"`
	Volume24hr     string  `json:"volume24hr"`
	Spread         string  `json:"spread"`
	BestBid        string  `json:"bestBid"`
	BestAsk        string  `json:"bestAsk"`
	LastTradePrice string  `json:"lastTradePrice"`

	EnableOrderBook       bool    `json:"enableOrderBook"`
	OrderPriceMinTickSize float64 `json:"orderPriceMinTickSize"`
	OrderMinSize          float64 `json:"orderMinSize"`

	NegRisk         bool   `json:"negRisk"`
	NegRiskMarketID string `json:"negRiskMarketID"`

	MarketMakerAddress string `json:"marketMakerAddress"`
	UMABond            string `json:"umaBond"`
	UMAReward          string `json:"umaReward"`

	GroupItemTitle     string `json:"groupItemTitle"`
	GroupItemThreshold string `json:"groupItemThreshold"`
	CommentCount       int    `json:"commentCount"`
	CYOM               bool   `json:"cyom"`

	Events []Event `json:"events,omitempty"`
}

// MarketsRequest filters the market listing. Nil pointer fields are
// omitted from the query. Extra parameters pass through verbatim.
type MarketsRequest struct {
	Limit     *int
	Offset    *int
	Order     string
	Ascending *bool

	ID   []string
	Slug []string

	Active   *bool
	Closed   *bool
	Archived *bool

	ClobTokenIDs []string
	ConditionIDs []string

	LiquidityNumMin *float64
	LiquidityNumMax *float64
	VolumeNumMin    *float64
	VolumeNumMax    *float64

	StartDateMin string
	StartDateMax string
	EndDateMin   string
	EndDateMax   string

	TagID       string
	RelatedTags *bool

	Extra url.Values
}

func (r *MarketsRequest) toQuery() url.Values {
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
	addStrings(q, "clob_token_ids", r.ClobTokenIDs)
	addStrings(q, "condition_ids", r.ConditionIDs)
	setFloat(q, "liquidity_num_min", r.LiquidityNumMin)
	setFloat(q, "liquidity_num_max", r.LiquidityNumMax)
	setFloat(q, "volume_num_min", r.VolumeNumMin)
	setFloat(q, "volume_num_max", r.VolumeNumMax)
	setString(q, "start_date_min", r.StartDateMin)
	setString(q, "start_date_max", r.StartDateMax)
	setString(q, "end_date_min", r.EndDateMin)
	setString(q, "end_date_max", r.EndDateMax)
	setString(q, "tag_id", r.TagID)
	setBool(q, "related_tags", r.RelatedTags)
	mergeExtra(q, r.Extra)
	return q
}

// MarketsClient accesses market listings and lookups.
type MarketsClient struct {
	transport *transport.Client
}

// List returns markets matching the request filters.
func (mc *MarketsClient) List(ctx context.Context, req *MarketsRequest) ([]Market, error) {
	var markets []Market
	if err := mc.transport.Get(ctx, "/markets", req.toQuery(), &markets); err != nil {
		return nil, err
	}
	return markets, nil
}

// ListAll pages through the listing with limit/offset until a short page,
// accumulating every matching market. The request's Limit (default 100) is
// used as the page size.
func (mc *MarketsClient) ListAll(ctx context.Context, req *MarketsRequest) ([]Market, error) {
	var r MarketsRequest
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

	var all []Market
	for {
		l, o := limit, offset
		r.Limit, r.Offset = &l, &o
		page, err := mc.List(ctx, &r)
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

// GetByID returns the market with the given ID.
func (mc *MarketsClient) GetByID(ctx context.Context, id string) (*Market, error) {
	var m Market
	if err := mc.transport.Get(ctx, "/markets/"+url.PathEscape(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBySlug returns the market with the given slug. The upstream endpoint
// answers with either a bare object or a (possibly empty) array; both
// shapes are tolerated. An empty array yields (nil, nil).
func (mc *MarketsClient) GetBySlug(ctx context.Context, slug string) (*Market, error) {
	path := "/markets/slug/" + url.PathEscape(slug)
	var raw json.RawMessage
	if err := mc.transport.Get(ctx, path, nil, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var markets []Market
		if err := json.Unmarshal(trimmed, &markets); err != nil {
			return nil, &gammaerrors.APIError{Err: fmt.Errorf("decode market list %s: %w", path, err)}
		}
		if len(markets) == 0 {
			return nil, nil
		}
		return &markets[0], nil
	}

	var m Market
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, &gammaerrors.APIError{Err: fmt.Errorf("decode market %s: %w", path, err)}
	}
	return &m, nil
}

// GetTags returns the tags attached to a market.
func (mc *MarketsClient) GetTags(ctx context.Context, id string) ([]Tag, error) {
	var tags []Tag
	if err := mc.transport.Get(ctx, "/markets/"+url.PathEscape(id)+"/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
