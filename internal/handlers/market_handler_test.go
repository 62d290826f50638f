package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "coinpulse/internal/errors"
	"coinpulse/internal/market"
)

// --- mock market service ---

type mockQuerier struct {
	getFn         func(id string) (*market.Asset, error)
	byCategoryFn  func(category string) []*market.Asset
	searchFn      func(query string) []*market.Asset
	topMoversFn   func(kind market.MoverKind) []*market.Asset
	byMarketCapFn func(limit int) []*market.Asset
	byVolumeFn    func(limit int) []*market.Asset
	trendingFn    func(limit int) []*market.Asset
	summaryFn     func() *market.MarketSummary
	refreshFn     func(ctx context.Context) error
}

func (m *mockQuerier) Get(id string) (*market.Asset, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &market.Asset{ID: id}, nil
}

func (m *mockQuerier) ByCategory(category string) []*market.Asset {
	if m.byCategoryFn != nil {
		return m.byCategoryFn(category)
	}
	return []*market.Asset{}
}

func (m *mockQuerier) Search(query string) []*market.Asset {
	if m.searchFn != nil {
		return m.searchFn(query)
	}
	return []*market.Asset{}
}

func (m *mockQuerier) TopMovers(kind market.MoverKind) []*market.Asset {
	if m.topMoversFn != nil {
		return m.topMoversFn(kind)
	}
	return []*market.Asset{}
}

func (m *mockQuerier) ByMarketCap(limit int) []*market.Asset {
	if m.byMarketCapFn != nil {
		return m.byMarketCapFn(limit)
	}
	return []*market.Asset{}
}

func (m *mockQuerier) ByVolume(limit int) []*market.Asset {
	if m.byVolumeFn != nil {
		return m.byVolumeFn(limit)
	}
	return []*market.Asset{}
}

func (m *mockQuerier) Trending(limit int) []*market.Asset {
	if m.trendingFn != nil {
		return m.trendingFn(limit)
	}
	return []*market.Asset{}
}

func (m *mockQuerier) Summary() *market.MarketSummary {
	if m.summaryFn != nil {
		return m.summaryFn()
	}
	return &market.MarketSummary{}
}

func (m *mockQuerier) Refresh(ctx context.Context) error {
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return nil
}

// verify interface compliance
var _ market.Querier = (*mockQuerier)(nil)

func setupMarketRouter(handler *MarketHandler) *gin.Engine {
	r := gin.New()
	r.GET("/markets", handler.ListAssets)
	r.GET("/markets/search", handler.SearchAssets)
	r.GET("/markets/movers/:kind", handler.GetTopMovers)
	r.GET("/markets/trending", handler.GetTrending)
	r.GET("/markets/top", handler.GetTopAssets)
	r.GET("/markets/summary", handler.GetSummary)
	r.POST("/markets/refresh", handler.RefreshMarket)
	r.GET("/markets/:id", handler.GetAsset)
	return r
}

func testAssets(n int) []*market.Asset {
	out := make([]*market.Asset, n)
	for i := range out {
		out[i] = &market.Asset{ID: "asset", Rank: i + 1, Symbol: "AST"}
	}
	return out
}

func TestMarketHandler_ListAssets(t *testing.T) {
	t.Run("defaults to the all view with pagination", func(t *testing.T) {
		var gotCategory string
		svc := &mockQuerier{
			byCategoryFn: func(category string) []*market.Asset {
				gotCategory = category
				return testAssets(45)
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotCategory != market.CategoryAll {
			t.Errorf("category = %q, want all", gotCategory)
		}
		result := parseJSON(t, rec)
		if result["total_items"] != float64(45) {
			t.Errorf("total_items = %v, want 45", result["total_items"])
		}
		items := result["data"].([]interface{})
		if len(items) != 20 {
			t.Errorf("first page has %d items, want 20", len(items))
		}
	})

	t.Run("passes the category filter through", func(t *testing.T) {
		var gotCategory string
		svc := &mockQuerier{
			byCategoryFn: func(category string) []*market.Asset {
				gotCategory = category
				return testAssets(3)
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets?category=defi", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotCategory != "defi" {
			t.Errorf("category = %q, want defi", gotCategory)
		}
	})

	t.Run("unknown category is an empty page, not an error", func(t *testing.T) {
		svc := &mockQuerier{
			byCategoryFn: func(string) []*market.Asset { return []*market.Asset{} },
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets?category=metaverse", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_items"] != float64(0) {
			t.Errorf("total_items = %v, want 0", result["total_items"])
		}
	})

	t.Run("rejects a malformed page", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockQuerier{}))

		rec := doRequest(r, "GET", "/markets?page=banana", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMarketHandler_GetAsset(t *testing.T) {
	t.Run("returns the asset", func(t *testing.T) {
		svc := &mockQuerier{
			getFn: func(id string) (*market.Asset, error) {
				return &market.Asset{ID: id, Symbol: "BTC", Price: 106250}, nil
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets/bitcoin", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		asset := result["asset"].(map[string]interface{})
		if asset["id"] != "bitcoin" || asset["symbol"] != "BTC" {
			t.Errorf("unexpected asset: %v", asset)
		}
	})

	t.Run("returns 404 for an unknown asset", func(t *testing.T) {
		svc := &mockQuerier{
			getFn: func(string) (*market.Asset, error) { return nil, apperrors.ErrAssetNotFound },
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets/not-a-coin", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ASSET_NOT_FOUND")
	})
}

func TestMarketHandler_SearchAssets(t *testing.T) {
	t.Run("returns matches", func(t *testing.T) {
		svc := &mockQuerier{
			searchFn: func(query string) []*market.Asset {
				if query != "sol" {
					t.Errorf("query = %q, want sol", query)
				}
				return testAssets(2)
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets/search?q=sol", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["assets"].([]interface{})) != 2 {
			t.Errorf("unexpected assets: %v", result["assets"])
		}
	})

	t.Run("requires a query", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockQuerier{}))

		rec := doRequest(r, "GET", "/markets/search", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestMarketHandler_GetTopMovers(t *testing.T) {
	t.Run("passes the kind through", func(t *testing.T) {
		var gotKind market.MoverKind
		svc := &mockQuerier{
			topMoversFn: func(kind market.MoverKind) []*market.Asset {
				gotKind = kind
				return testAssets(10)
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets/movers/losers", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotKind != market.MoversLosers {
			t.Errorf("kind = %q, want losers", gotKind)
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockQuerier{}))

		rec := doRequest(r, "GET", "/markets/movers/sideways", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestMarketHandler_GetTopAssets(t *testing.T) {
	t.Run("defaults to market cap", func(t *testing.T) {
		capCalled := false
		svc := &mockQuerier{
			byMarketCapFn: func(limit int) []*market.Asset {
				capCalled = true
				return testAssets(5)
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets/top", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !capCalled {
			t.Error("market cap ranking not used")
		}
	})

	t.Run("ranks by volume on request", func(t *testing.T) {
		var gotLimit int
		svc := &mockQuerier{
			byVolumeFn: func(limit int) []*market.Asset {
				gotLimit = limit
				return testAssets(5)
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "GET", "/markets/top?by=volume&limit=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotLimit != 5 {
			t.Errorf("limit = %d, want 5", gotLimit)
		}
	})

	t.Run("rejects an unknown sort key", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockQuerier{}))

		rec := doRequest(r, "GET", "/markets/top?by=vibes", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects a non-positive limit", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockQuerier{}))

		rec := doRequest(r, "GET", "/markets/top?limit=-3", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMarketHandler_GetSummary(t *testing.T) {
	svc := &mockQuerier{
		summaryFn: func() *market.MarketSummary {
			return &market.MarketSummary{TotalMarketCap: 3.4e12, BTCDominance: 52.1, ActiveCryptocurrencies: 72}
		},
	}
	r := setupMarketRouter(NewMarketHandler(svc))

	rec := doRequest(r, "GET", "/markets/summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	summary := result["summary"].(map[string]interface{})
	if summary["active_cryptocurrencies"] != float64(72) {
		t.Errorf("unexpected summary: %v", summary)
	}
}

func TestMarketHandler_RefreshMarket(t *testing.T) {
	t.Run("forces a refresh", func(t *testing.T) {
		called := false
		svc := &mockQuerier{
			refreshFn: func(context.Context) error {
				called = true
				return nil
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "POST", "/markets/refresh", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !called {
			t.Error("refresh not invoked")
		}
	})

	t.Run("maps a refresh failure to 500", func(t *testing.T) {
		svc := &mockQuerier{
			refreshFn: func(context.Context) error { return context.Canceled },
		}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, "POST", "/markets/refresh", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
