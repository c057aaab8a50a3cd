package gamma

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMarketsListThenGetByID(t *testing.T) {
	client := newTestClient(map[string]string{
		"/markets?active=true": `[{"id":"11","question":"q11"},{"id":"22","question":"q22"}]`,
		"/markets/11":          `{"id":"11","question":"q11"}`,
		"/markets/22":          `{"id":"22","question":"q22"}`,
	})
	ctx := context.Background()

	active := true
	markets, err := client.Markets.List(ctx, &MarketsRequest{Active: &active})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(markets) != 2 {
		t.Fatalf("expected 2 markets, got %d", len(markets))
	}

	for _, m := range markets {
		got, err := client.Markets.GetByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("GetByID(%s) failed: %v", m.ID, err)
		}
		if got.ID != m.ID {
			t.Errorf("GetByID(%s) returned ID %s", m.ID, got.ID)
		}
	}
}

func TestMarketGetBySlug_Shapes(t *testing.T) {
	ctx := context.Background()

	t.Run("BareObject", func(t *testing.T) {
		client := newTestClient(map[string]string{
			"/markets/slug/s1": `{"id":"1","slug":"s1"}`,
		})
		m, err := client.Markets.GetBySlug(ctx, "s1")
		if err != nil || m == nil || m.ID != "1" {
			t.Errorf("GetBySlug = %+v, %v", m, err)
		}
	})

	t.Run("SingleElementList", func(t *testing.T) {
		client := newTestClient(map[string]string{
			"/markets/slug/s1": `[{"id":"1","slug":"s1"},{"id":"2","slug":"s1"}]`,
		})
		m, err := client.Markets.GetBySlug(ctx, "s1")
		if err != nil || m == nil || m.ID != "1" {
			t.Errorf("GetBySlug = %+v, %v, want first element", m, err)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		client := newTestClient(map[string]string{
			"/markets/slug/s1": `[]`,
		})
		m, err := client.Markets.GetBySlug(ctx, "s1")
		if err != nil {
			t.Fatalf("empty list should not be an error: %v", err)
		}
		if m != nil {
			t.Errorf("expected nil market for empty list, got %+v", m)
		}
	})
}

func TestMarketsListAll(t *testing.T) {
	client := newTestClient(map[string]string{
		"/markets?limit=2&offset=0": `[{"id":"1"},{"id":"2"}]`,
		"/markets?limit=2&offset=2": `[{"id":"3"}]`,
	})

	limit := 2
	markets, err := client.Markets.ListAll(context.Background(), &MarketsRequest{Limit: &limit})
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(markets) != 3 {
		t.Fatalf("expected 3 markets, got %d", len(markets))
	}
	if markets[2].ID != "3" {
		t.Errorf("pages out of order: %+v", markets)
	}
}

func TestMarketsRequestQuery(t *testing.T) {
	limit, active := 5, true
	req := &MarketsRequest{
		Limit:  &limit,
		Active: &active,
		ID:     []string{"1", "2"},
		TagID:  "100",
		Extra:  map[string][]string{"custom_key": {"v"}},
	}
	q := req.toQuery()
	if q.Get("limit") != "5" || q.Get("active") != "true" || q.Get("tag_id") != "100" {
		t.Errorf("unexpected query: %v", q)
	}
	if len(q["id"]) != 2 {
		t.Errorf("repeated id params lost: %v", q["id"])
	}
	if q.Get("custom_key") != "v" {
		t.Errorf("extra params not passed through verbatim: %v", q)
	}
}

func TestMarket_DecodeFields(t *testing.T) {
	raw := `{
		"id": "m1",
		"question": "Will X happen?",
		"conditionId": "0xcond",
		"negRisk": true,
		"negRiskMarketID": "0xneg",
		"enableOrderBook": true,
		"questionID": "0xq",
		"volume24hr": "1000000",
		"spread": "0.02",
		"bestBid": "0.48",
		"bestAsk": "0.52",
		"lastTradePrice": "0.50",
		"commentCount": 42,
		"cyom": false,
		"someFutureField": {"nested": true}
	}`

	var m Market
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !m.NegRisk {
		t.Error("expected NegRisk=true")
	}
	if m.NegRiskMarketID != "0xneg" {
		t.Errorf("NegRiskMarketID = %s, want 0xneg", m.NegRiskMarketID)
	}
	if !m.EnableOrderBook {
		t.Error("expected EnableOrderBook=true")
	}
	if m.Volume24hr != "1000000" {
		t.Errorf("Volume24hr = %s, want 1000000", m.Volume24hr)
	}
	if m.BestBid != "0.48" {
		t.Errorf("BestBid = %s, want 0.48", m.BestBid)
	}
	if m.CommentCount != 42 {
		t.Errorf("CommentCount = %d, want 42", m.CommentCount)
	}
}
