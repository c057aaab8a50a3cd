package gamma

import (
	"context"
	"net/url"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Team is a sports team referenced by sports markets.
type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	League       string `json:"league"`
	Record       string `json:"record"`
	Alias        string `json:"alias"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// SportsMetadata describes one supported sport category.
type SportsMetadata struct {
	ID         string `json:"id"`
	Sport      string `json:"sport"`
	League     string `json:"league"`
	Label      string `json:"label"`
	Image      string `json:"image"`
	Resolution string `json:"resolution"`
	Ordering   int    `json:"ordering"`
	Active     bool   `json:"active"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// TeamsRequest filters the team listing. Extra parameters pass through
// verbatim.
type TeamsRequest struct {
	Limit     *int
	Offset    *int
	Order     string
	Ascending *bool

	League       []string
	Name         []string
	Abbreviation []string

	Extra url.Values
}

func (r *TeamsRequest) toQuery() url.Values {
	q := url.Values{}
	if r == nil {
		return q
	}
	setInt(q, "limit", r.Limit)
	setInt(q, "offset", r.Offset)
	setString(q, "order", r.Order)
	setBool(q, "ascending", r.Ascending)
	addStrings(q, "league", r.League)
	addStrings(q, "name", r.Name)
	addStrings(q, "abbreviation", r.Abbreviation)
	mergeExtra(q, r.Extra)
	return q
}

// SportsClient accesses sports metadata and team information.
type SportsClient struct {
	transport *transport.Client
}

// ListTeams returns sports teams matching the request filters.
func (sc *SportsClient) ListTeams(ctx context.Context, req *TeamsRequest) ([]Team, error) {
	var teams []Team
	if err := sc.transport.Get(ctx, "/teams", req.toQuery(), &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetMetadata returns metadata for all supported sports.
func (sc *SportsClient) GetMetadata(ctx context.Context) ([]SportsMetadata, error) {
	var meta []SportsMetadata
	if err := sc.transport.Get(ctx, "/sports", nil, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// GetMarketTypes returns the valid sports market type names, extracted from
// the marketTypes field of the response. A response without the field
// yields an empty slice, not an error.
func (sc *SportsClient) GetMarketTypes(ctx context.Context) ([]string, error) {
	var resp struct {
		MarketTypes []string `json:"marketTypes"`
	}
	if err := sc.transport.Get(ctx, "/sports/market-types", nil, &resp); err != nil {
		return nil, err
	}
	if resp.MarketTypes == nil {
		return []string{}, nil
	}
	return resp.MarketTypes, nil
}
