package market

import (
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultEvolveInterval is the minimum gap between evolution passes.
	DefaultEvolveInterval = 30 * time.Second

	// trendPeriod and sentimentPeriod shape the slow deterministic drift
	// components, in seconds of wall-clock time per radian.
	trendPeriod     = 3600.0
	sentimentPeriod = 900.0

	// priceFloorRatio guarantees positivity: a single pass can never take
	// a price below 1% of its pre-update value.
	priceFloorRatio = 0.01

	// volumeJitter is the max multiplicative swing applied to 24h volume.
	volumeJitter = 0.15
)

// trendStrength scales the deterministic trend component for symbols the
// landing page features prominently. Unknown symbols default to 1.0.
var trendStrength = map[string]float64{
	"BTC":  1.2,
	"ETH":  1.1,
	"SOL":  1.5,
	"BNB":  0.9,
	"XRP":  1.3,
	"DOGE": 1.8,
	"HYPE": 2.0,
	"USDT": 0.1,
	"USDC": 0.1,
}

// Engine recomputes every asset's market fields via a volatility- and
// trend-parameterized random walk. Passes are gated by a minimum interval
// so repeated queries within the window observe an identical snapshot.
type Engine struct {
	clock    Clock
	rng      *rand.Rand
	interval time.Duration
	points   int
	last     time.Time
}

// NewEngine creates an evolution engine. clock and rng are injectable so
// tests can assert exact outputs; pass SystemClock and a time-seeded rand
// for live behavior.
func NewEngine(clock Clock, rng *rand.Rand, interval time.Duration, points int) *Engine {
	if interval <= 0 {
		interval = DefaultEvolveInterval
	}
	if points <= 0 {
		points = DefaultSparklinePoints
	}
	return &Engine{clock: clock, rng: rng, interval: interval, points: points}
}

// MaybeEvolve runs one evolution pass over the catalog unless the last
// pass happened within the minimum interval. Returns whether a pass ran.
func (e *Engine) MaybeEvolve(c *Catalog) bool {
	now := e.clock.Now()
	if !e.last.IsZero() && now.Sub(e.last) < e.interval {
		return false
	}
	e.evolve(c, now)
	return true
}

// Evolve runs an unconditional evolution pass, resetting the interval
// gate. This backs the explicit refresh operation.
func (e *Engine) Evolve(c *Catalog) {
	e.evolve(c, e.clock.Now())
}

func (e *Engine) evolve(c *Catalog, now time.Time) {
	for _, a := range c.All() {
		e.evolveAsset(a, now)
		c.put(a)
	}
	e.last = now
}

// evolveAsset applies one random-walk step to a single asset. All change
// fields are recomputed relative to the pre-update price, never an
// externally supplied reference.
func (e *Engine) evolveAsset(a *Asset, now time.Time) {
	oldPrice := a.Price

	random := e.rng.Float64()*2 - 1
	trend := trendComponent(a.Symbol, now)
	sentiment := sentimentComponent(now)
	volatility := a.Category.Volatility()

	delta := (random + trend + sentiment) * volatility * oldPrice / 100

	newPrice := oldPrice + delta
	if floor := oldPrice * priceFloorRatio; newPrice < floor {
		newPrice = floor
	}

	a.Price = newPrice
	a.Change24h = newPrice - oldPrice
	a.ChangePercent24h = (newPrice - oldPrice) / oldPrice * 100
	a.Volume24h *= 1 + (e.rng.Float64()*2-1)*volumeJitter
	a.MarketCap = newPrice * a.CirculatingSupply
	a.Sparkline = GenerateSparkline(e.rng, a.ChangePercent24h, e.points)
	a.LastUpdated = now
}

// trendComponent is a smooth deterministic function of wall-clock time,
// scaled per symbol so headline assets drift more visibly.
func trendComponent(symbol string, now time.Time) float64 {
	strength, ok := trendStrength[symbol]
	if !ok {
		strength = 1.0
	}
	return math.Sin(float64(now.Unix())/trendPeriod) * strength
}

// sentimentComponent adds a faster shared oscillation so the whole market
// appears to move together within a session.
func sentimentComponent(now time.Time) float64 {
	return math.Cos(float64(now.Unix())/sentimentPeriod) * 0.5
}
