package market

import (
	"context"
	"math"
	"sort"
	"testing"
	"time"

	"coinpulse/internal/testutil"
)

// newTestService builds a seeded service over a pinned clock. The returned
// clock can be advanced to step past the evolution interval.
func newTestService(t *testing.T) (*Service, *testutil.FixedClock) {
	t.Helper()
	clock := testutil.NewFixedClock(testBaseline)
	rng := testutil.NewSeededRand(42)
	catalog := seededCatalog(t)
	engine := NewEngine(clock, rng, 30*time.Second, 8)
	return NewService(catalog, engine, rng), clock
}

// newQuietService builds a service whose engine gate is already closed, so
// hand-set asset fields survive queries.
func newQuietService(t *testing.T, assets ...*Asset) *Service {
	t.Helper()
	clock := testutil.NewFixedClock(testBaseline)
	rng := testutil.NewSeededRand(42)
	catalog := NewCatalog()
	for _, a := range assets {
		catalog.put(a)
	}
	engine := NewEngine(clock, rng, time.Hour, 8)
	engine.last = clock.Now()
	return NewService(catalog, engine, rng)
}

func TestServiceGet(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("returns a known asset", func(t *testing.T) {
		a, err := svc.Get("bitcoin")
		testutil.AssertNoError(t, err)
		if a.Symbol != "BTC" {
			t.Errorf("symbol = %s, want BTC", a.Symbol)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get("not-a-coin")
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})

	t.Run("returns independent snapshots", func(t *testing.T) {
		a, err := svc.Get("bitcoin")
		testutil.AssertNoError(t, err)

		a.Price = -1
		a.Tags[0] = "mutated"
		a.Sparkline[0] = -1

		b, err := svc.Get("bitcoin")
		testutil.AssertNoError(t, err)
		if b.Price == -1 || b.Tags[0] == "mutated" || b.Sparkline[0] == -1 {
			t.Error("mutating a snapshot leaked into the catalog")
		}
	})
}

func TestServiceByCategory(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("all returns everything by rank", func(t *testing.T) {
		all := svc.ByCategory(CategoryAll)
		if len(all) == 0 {
			t.Fatal("empty result for all")
		}
		if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Rank < all[j].Rank }) {
			t.Error("all view is not sorted by rank")
		}
	})

	t.Run("empty category means all", func(t *testing.T) {
		if got, want := len(svc.ByCategory("")), len(svc.ByCategory(CategoryAll)); got != want {
			t.Errorf("empty category returned %d assets, all returned %d", got, want)
		}
	})

	t.Run("known category filters and sorts by market cap", func(t *testing.T) {
		defi := svc.ByCategory("defi")
		if len(defi) == 0 {
			t.Fatal("no defi assets")
		}
		for _, a := range defi {
			if a.Category != CategoryDeFi {
				t.Errorf("asset %s has category %s", a.ID, a.Category)
			}
		}
		if !sort.SliceIsSorted(defi, func(i, j int) bool { return defi[i].MarketCap > defi[j].MarketCap }) {
			t.Error("category view is not sorted by market cap descending")
		}
	})

	t.Run("unknown category returns empty not error", func(t *testing.T) {
		got := svc.ByCategory("metaverse")
		if got == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(got) != 0 {
			t.Errorf("unknown category matched %d assets", len(got))
		}
	})
}

func TestServiceSearch(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("matches by name case-insensitively", func(t *testing.T) {
		got := svc.Search("BiTcOiN")
		if len(got) == 0 || got[0].ID != "bitcoin" {
			t.Fatalf("search for bitcoin returned %d results", len(got))
		}
	})

	t.Run("matches by symbol", func(t *testing.T) {
		found := false
		for _, a := range svc.Search("eth") {
			if a.ID == "ethereum" {
				found = true
			}
		}
		if !found {
			t.Error("symbol search missed ethereum")
		}
	})

	t.Run("matches by tag and sorts by rank", func(t *testing.T) {
		got := svc.Search("stablecoin")
		if len(got) == 0 {
			t.Fatal("tag search found nothing")
		}
		for _, a := range got {
			if !assetMatches(a, "stablecoin") {
				t.Errorf("result %s does not match the query", a.ID)
			}
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Rank < got[j].Rank }) {
			t.Error("search results not sorted by rank")
		}
	})

	t.Run("blank query returns empty", func(t *testing.T) {
		if got := svc.Search("   "); len(got) != 0 {
			t.Errorf("blank query matched %d assets", len(got))
		}
	})
}

func TestServiceTopMovers(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("gainers are positive and descending", func(t *testing.T) {
		got := svc.TopMovers(MoversGainers)
		if len(got) > moversLimit {
			t.Errorf("got %d gainers, cap is %d", len(got), moversLimit)
		}
		for _, a := range got {
			if a.ChangePercent24h <= 0 {
				t.Errorf("gainer %s has change %f", a.ID, a.ChangePercent24h)
			}
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].ChangePercent24h > got[j].ChangePercent24h }) {
			t.Error("gainers not sorted descending")
		}
	})

	t.Run("losers are negative and ascending", func(t *testing.T) {
		got := svc.TopMovers(MoversLosers)
		for _, a := range got {
			if a.ChangePercent24h >= 0 {
				t.Errorf("loser %s has change %f", a.ID, a.ChangePercent24h)
			}
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].ChangePercent24h < got[j].ChangePercent24h }) {
			t.Error("losers not sorted ascending")
		}
	})

	t.Run("volume ranking ignores sign", func(t *testing.T) {
		got := svc.TopMovers(MoversVolume)
		if len(got) != moversLimit {
			t.Fatalf("got %d by volume, want %d", len(got), moversLimit)
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Volume24h > got[j].Volume24h }) {
			t.Error("volume movers not sorted descending")
		}
	})

	t.Run("unknown kind returns empty", func(t *testing.T) {
		if got := svc.TopMovers(MoverKind("sideways")); len(got) != 0 {
			t.Errorf("unknown kind matched %d assets", len(got))
		}
	})
}

func TestServiceTopMoversAllNegative(t *testing.T) {
	svc := newQuietService(t,
		&Asset{ID: "a", Symbol: "A", ChangePercent24h: -2},
		&Asset{ID: "b", Symbol: "B", ChangePercent24h: -8},
		&Asset{ID: "c", Symbol: "C", ChangePercent24h: -0.5},
	)

	if got := svc.TopMovers(MoversGainers); len(got) != 0 {
		t.Errorf("all-negative catalog produced %d gainers", len(got))
	}

	losers := svc.TopMovers(MoversLosers)
	if len(losers) != 3 {
		t.Fatalf("got %d losers, want 3", len(losers))
	}
	if losers[0].ID != "b" {
		t.Errorf("worst loser is %s, want b", losers[0].ID)
	}
}

func TestServiceTopBy(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("by market cap", func(t *testing.T) {
		got := svc.ByMarketCap(5)
		if len(got) != 5 {
			t.Fatalf("got %d assets, want 5", len(got))
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].MarketCap > got[j].MarketCap }) {
			t.Error("not sorted by market cap descending")
		}
	})

	t.Run("by volume", func(t *testing.T) {
		got := svc.ByVolume(5)
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Volume24h > got[j].Volume24h }) {
			t.Error("not sorted by volume descending")
		}
	})

	t.Run("non-positive limit uses the default", func(t *testing.T) {
		got := svc.ByMarketCap(0)
		if len(got) != defaultTopLimit {
			t.Errorf("got %d assets, want %d", len(got), defaultTopLimit)
		}
	})
}

func TestServiceTrending(t *testing.T) {
	svc := newQuietService(t,
		&Asset{ID: "calm", ChangePercent24h: 1},
		&Asset{ID: "pump", ChangePercent24h: 12},
		&Asset{ID: "dump", ChangePercent24h: -9},
		&Asset{ID: "edge", ChangePercent24h: 5},
	)

	got := svc.Trending(0)
	if len(got) != 2 {
		t.Fatalf("got %d trending assets, want 2", len(got))
	}
	if got[0].ID != "pump" || got[1].ID != "dump" {
		t.Errorf("trending order = [%s %s], want [pump dump]", got[0].ID, got[1].ID)
	}
}

func TestServiceSummary(t *testing.T) {
	svc, _ := newTestService(t)
	sum := svc.Summary()

	all := svc.ByCategory(CategoryAll)
	var wantCap, wantVol float64
	for _, a := range all {
		wantCap += a.MarketCap
		wantVol += a.Volume24h
	}

	if math.Abs(sum.TotalMarketCap-wantCap) > wantCap*1e-9 {
		t.Errorf("total market cap %f, want %f", sum.TotalMarketCap, wantCap)
	}
	if math.Abs(sum.TotalVolume24h-wantVol) > wantVol*1e-9 {
		t.Errorf("total volume %f, want %f", sum.TotalVolume24h, wantVol)
	}
	if sum.ActiveCryptocurrencies != len(all) {
		t.Errorf("active count %d, want %d", sum.ActiveCryptocurrencies, len(all))
	}
	if sum.BTCDominance <= 0 || sum.BTCDominance >= 100 {
		t.Errorf("btc dominance out of range: %f", sum.BTCDominance)
	}
	if sum.ETHDominance <= 0 || sum.ETHDominance >= 100 {
		t.Errorf("eth dominance out of range: %f", sum.ETHDominance)
	}
	if sum.BTCDominance <= sum.ETHDominance {
		t.Errorf("btc dominance %f not above eth %f", sum.BTCDominance, sum.ETHDominance)
	}

	btc, err := svc.Get("bitcoin")
	testutil.AssertNoError(t, err)
	wantDom := btc.MarketCap / sum.TotalMarketCap * 100
	if math.Abs(sum.BTCDominance-wantDom) > 1e-9 {
		t.Errorf("btc dominance %f, want %f", sum.BTCDominance, wantDom)
	}
}

func TestServiceSnapshotStableWithinInterval(t *testing.T) {
	svc, clock := newTestService(t)

	first, err := svc.Get("solana")
	testutil.AssertNoError(t, err)
	second, err := svc.Get("solana")
	testutil.AssertNoError(t, err)

	if first.Price != second.Price {
		t.Errorf("price moved inside the interval: %f then %f", first.Price, second.Price)
	}
	for i := range first.Sparkline {
		if first.Sparkline[i] != second.Sparkline[i] {
			t.Fatalf("sparkline point %d moved inside the interval", i)
		}
	}

	clock.Advance(time.Minute)
	third, err := svc.Get("solana")
	testutil.AssertNoError(t, err)
	if third.Price == second.Price {
		t.Error("price did not move after the interval elapsed")
	}
}

func TestServiceRefresh(t *testing.T) {
	svc, _ := newTestService(t)

	before, err := svc.Get("bitcoin")
	testutil.AssertNoError(t, err)

	// Still inside the interval; only a forced pass can move the price.
	testutil.AssertNoError(t, svc.Refresh(context.Background()))

	after, err := svc.Get("bitcoin")
	testutil.AssertNoError(t, err)
	if after.Price == before.Price {
		t.Error("refresh did not force an evolution pass")
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := svc.Refresh(ctx); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}

func TestParseMoverKind(t *testing.T) {
	for _, s := range []string{"gainers", "losers", "volume"} {
		if _, ok := ParseMoverKind(s); !ok {
			t.Errorf("ParseMoverKind(%q) not recognized", s)
		}
	}
	if _, ok := ParseMoverKind("sideways"); ok {
		t.Error("ParseMoverKind accepted an unknown kind")
	}
}

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"popular", "defi", "layer1", "stablecoin", "new_listing"} {
		if _, ok := ParseCategory(s); !ok {
			t.Errorf("ParseCategory(%q) not recognized", s)
		}
	}
	if _, ok := ParseCategory("all"); ok {
		t.Error("ParseCategory accepted the pseudo-category all")
	}
}
