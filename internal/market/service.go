package market

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

// MoverKind selects a top-movers ranking.
type MoverKind string

const (
	MoversGainers MoverKind = "gainers"
	MoversLosers  MoverKind = "losers"
	MoversVolume  MoverKind = "volume"
)

// ParseMoverKind maps a string to a known MoverKind.
func ParseMoverKind(s string) (MoverKind, bool) {
	switch MoverKind(s) {
	case MoversGainers, MoversLosers, MoversVolume:
		return MoverKind(s), true
	}
	return "", false
}

// CategoryAll is the pseudo-category that selects every asset.
const CategoryAll = "all"

const (
	moversLimit          = 10
	defaultTopLimit      = 50
	defaultTrendingLimit = 10
	trendingThreshold    = 5.0
)

// Service is the public query/aggregation layer over the catalog. Every
// query triggers a rate-limited evolution pass first, so callers never
// refresh explicitly; the mutex keeps that to one pass per interval under
// concurrent requests.
type Service struct {
	mu      sync.Mutex
	catalog *Catalog
	engine  *Engine
	rng     *rand.Rand
}

// NewService wires a catalog and engine into a query service. rng feeds
// only the cosmetic summary deltas.
func NewService(catalog *Catalog, engine *Engine, rng *rand.Rand) *Service {
	return &Service{catalog: catalog, engine: engine, rng: rng}
}

// NewDefaultService builds a fully wired live service: seeded catalog,
// system clock, time-seeded randomness.
func NewDefaultService(interval time.Duration, points int) (*Service, error) {
	catalog := NewCatalog()
	if err := catalog.Seed(); err != nil {
		return nil, err
	}
	rng := NewLiveRand()
	engine := NewEngine(SystemClock, rng, interval, points)
	return NewService(catalog, engine, rng), nil
}

// Get returns a snapshot of a single asset, or ErrAssetNotFound.
func (s *Service) Get(id string) (*Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MaybeEvolve(s.catalog)

	a, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// ByCategory returns assets for the given category string. "all" returns
// everything sorted by rank; a known category sorts by market cap
// descending; an unknown category returns an empty slice, never an error.
func (s *Service) ByCategory(category string) []*Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MaybeEvolve(s.catalog)

	if category == CategoryAll || category == "" {
		all := s.snapshot(nil)
		sort.Slice(all, func(i, j int) bool { return all[i].Rank < all[j].Rank })
		return all
	}

	cat, ok := ParseCategory(category)
	if !ok {
		return []*Asset{}
	}

	matched := s.snapshot(func(a *Asset) bool { return a.Category == cat })
	sort.Slice(matched, func(i, j int) bool { return matched[i].MarketCap > matched[j].MarketCap })
	return matched
}

// Search returns assets whose name, symbol, or any tag contains the query
// case-insensitively, sorted by rank.
func (s *Service) Search(query string) []*Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MaybeEvolve(s.catalog)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*Asset{}
	}

	matched := s.snapshot(func(a *Asset) bool { return assetMatches(a, q) })
	sort.Slice(matched, func(i, j int) bool { return matched[i].Rank < matched[j].Rank })
	return matched
}

// TopMovers returns up to 10 assets ranked by 24h change or volume.
// Gainers only include positive changes and losers only negative ones;
// the volume ranking ignores sign entirely.
func (s *Service) TopMovers(kind MoverKind) []*Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MaybeEvolve(s.catalog)

	var out []*Asset
	switch kind {
	case MoversGainers:
		out = s.snapshot(func(a *Asset) bool { return a.ChangePercent24h > 0 })
		sort.Slice(out, func(i, j int) bool { return out[i].ChangePercent24h > out[j].ChangePercent24h })
	case MoversLosers:
		out = s.snapshot(func(a *Asset) bool { return a.ChangePercent24h < 0 })
		sort.Slice(out, func(i, j int) bool { return out[i].ChangePercent24h < out[j].ChangePercent24h })
	case MoversVolume:
		out = s.snapshot(nil)
		sort.Slice(out, func(i, j int) bool { return out[i].Volume24h > out[j].Volume24h })
	default:
		return []*Asset{}
	}

	if len(out) > moversLimit {
		out = out[:moversLimit]
	}
	return out
}

// ByMarketCap returns the top assets by market cap descending.
func (s *Service) ByMarketCap(limit int) []*Asset {
	return s.topBy(limit, func(a, b *Asset) bool { return a.MarketCap > b.MarketCap })
}

// ByVolume returns the top assets by 24h volume descending.
func (s *Service) ByVolume(limit int) []*Asset {
	return s.topBy(limit, func(a, b *Asset) bool { return a.Volume24h > b.Volume24h })
}

// Trending returns assets moving more than 5% in either direction,
// ordered by magnitude of change.
func (s *Service) Trending(limit int) []*Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MaybeEvolve(s.catalog)

	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	out := s.snapshot(func(a *Asset) bool {
		return math.Abs(a.ChangePercent24h) > trendingThreshold
	})
	sort.Slice(out, func(i, j int) bool {
		return math.Abs(out[i].ChangePercent24h) > math.Abs(out[j].ChangePercent24h)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Summary aggregates the full catalog into market-wide totals and
// dominance ratios. The 24h change figures are cosmetic randomness, as on
// the landing page.
func (s *Service) Summary() *MarketSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MaybeEvolve(s.catalog)

	summary := &MarketSummary{
		ActiveCryptocurrencies: s.catalog.Len(),
		MarketCapChange24h:     (s.rng.Float64()*2 - 1) * 5,
		VolumeChange24h:        (s.rng.Float64()*2 - 1) * 10,
	}

	for _, a := range s.catalog.All() {
		summary.TotalMarketCap += a.MarketCap
		summary.TotalVolume24h += a.Volume24h
	}

	if summary.TotalMarketCap > 0 {
		if btc, err := s.catalog.Get("bitcoin"); err == nil {
			summary.BTCDominance = btc.MarketCap / summary.TotalMarketCap * 100
		}
		if eth, err := s.catalog.Get("ethereum"); err == nil {
			summary.ETHDominance = eth.MarketCap / summary.TotalMarketCap * 100
		}
	}

	return summary
}

// Refresh forces an evolution pass regardless of the interval gate. It
// exists to give callers an awaitable "pull to refresh" operation and
// returns once the pass completes; ctx is accepted for interface
// stability but the pass itself never blocks.
func (s *Service) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Evolve(s.catalog)
	return nil
}

// topBy evolves, snapshots, sorts by less, and truncates to limit.
func (s *Service) topBy(limit int, less func(a, b *Asset) bool) []*Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MaybeEvolve(s.catalog)

	if limit <= 0 {
		limit = defaultTopLimit
	}

	out := s.snapshot(nil)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// snapshot clones every asset matching the filter (nil matches all).
// Callers must hold s.mu.
func (s *Service) snapshot(match func(*Asset) bool) []*Asset {
	out := []*Asset{}
	for _, a := range s.catalog.All() {
		if match == nil || match(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}

func assetMatches(a *Asset, q string) bool {
	if strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Symbol), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
