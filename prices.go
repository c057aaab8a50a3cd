package gamma

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Gamma serializes market numerics as strings, and the outcome arrays as
// JSON documents nested inside strings (e.g. "[\"0.48\",\"0.52\"]"). These
// accessors parse them into usable forms. Absent fields yield empty
// results rather than errors, matching the API's schema-drift tolerance.

// ParsedOutcomes returns the decoded outcome names.
func (m *Market) ParsedOutcomes() ([]string, error) {
	return decodeStringArray("outcomes", m.Outcomes)
}

// ParsedClobTokenIDs returns the decoded CLOB token IDs.
func (m *Market) ParsedClobTokenIDs() ([]string, error) {
	return decodeStringArray("clobTokenIds", m.ClobTokenIDs)
}

// OutcomePricesDecimal returns the outcome prices as decimals, index-aligned
// with ParsedOutcomes.
func (m *Market) OutcomePricesDecimal() ([]decimal.Decimal, error) {
	raw, err := decodeStringArray("outcomePrices", m.OutcomePrices)
	if err != nil {
		return nil, err
	}
	prices := make([]decimal.Decimal, 0, len(raw))
	for _, s := range raw {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("parse outcome price %q: %w", s, err)
		}
		prices = append(prices, d)
	}
	return prices, nil
}

// BestBidDecimal returns the best bid as a decimal.
func (m *Market) BestBidDecimal() (decimal.Decimal, error) {
	return parsePrice("bestBid", m.BestBid)
}

// BestAskDecimal returns the best ask as a decimal.
func (m *Market) BestAskDecimal() (decimal.Decimal, error) {
	return parsePrice("bestAsk", m.BestAsk)
}

// SpreadDecimal returns the bid/ask spread as a decimal.
func (m *Market) SpreadDecimal() (decimal.Decimal, error) {
	return parsePrice("spread", m.Spread)
}

// LastTradePriceDecimal returns the last trade price as a decimal.
func (m *Market) LastTradePriceDecimal() (decimal.Decimal, error) {
	return parsePrice("lastTradePrice", m.LastTradePrice)
}

func parsePrice(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return d, nil
}

func decodeStringArray(field, s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode %s %q: %w", field, s, err)
	}
	return out, nil
}
