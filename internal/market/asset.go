// Package market implements the synthetic market-data core: an in-memory
// asset catalog, a rate-limited price evolution engine, and read-only
// query/aggregation operations over the evolved snapshot. There is no
// external feed; all movement is generated locally.
package market

import "time"

// Category classifies an asset for filtering and volatility defaults.
type Category string

const (
	CategoryPopular    Category = "popular"
	CategoryDeFi       Category = "defi"
	CategoryLayer1     Category = "layer1"
	CategoryStablecoin Category = "stablecoin"
	CategoryNewListing Category = "new_listing"
)

// allCategories is the seeding and display order. Ranks are assigned in
// this order, so popular assets sort first in the "all" view.
var allCategories = []Category{
	CategoryPopular,
	CategoryLayer1,
	CategoryDeFi,
	CategoryStablecoin,
	CategoryNewListing,
}

// ParseCategory maps a free-form category string to a known Category.
// Unknown strings return false; callers treat that as a filter with no
// matches rather than invalid input.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryPopular, CategoryDeFi, CategoryLayer1, CategoryStablecoin, CategoryNewListing:
		return Category(s), true
	}
	return "", false
}

// Volatility returns the per-category volatility constant used by the
// evolution engine, expressed as a max percent move per pass.
func (c Category) Volatility() float64 {
	switch c {
	case CategoryStablecoin:
		return 0.1
	case CategoryPopular:
		return 2.5
	case CategoryLayer1:
		return 3.5
	case CategoryDeFi:
		return 4.0
	case CategoryNewListing:
		return 6.0
	default:
		return 2.0
	}
}

// Asset represents one simulated tradable instrument.
type Asset struct {
	ID                string    `json:"id"`
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Category          Category  `json:"category"`
	Rank              int       `json:"rank"`
	Tags              []string  `json:"tags"`
	Price             float64   `json:"price"`
	Change24h         float64   `json:"change_24h"`
	ChangePercent24h  float64   `json:"change_percent_24h"`
	Volume24h         float64   `json:"volume_24h"`
	MarketCap         float64   `json:"market_cap"`
	CirculatingSupply float64   `json:"circulating_supply"`
	TotalSupply       float64   `json:"total_supply"`
	MaxSupply         *float64  `json:"max_supply,omitempty"`
	ATH               float64   `json:"ath"`
	ATHDate           time.Time `json:"ath_date"`
	ATL               float64   `json:"atl"`
	ATLDate           time.Time `json:"atl_date"`
	Sparkline         []float64 `json:"sparkline"`
	LastUpdated       time.Time `json:"last_updated"`
}

// Clone returns a deep copy of the asset. Query results are always clones
// so callers can never mutate the catalog through a snapshot.
func (a *Asset) Clone() *Asset {
	out := *a
	if a.Tags != nil {
		out.Tags = append([]string(nil), a.Tags...)
	}
	if a.Sparkline != nil {
		out.Sparkline = append([]float64(nil), a.Sparkline...)
	}
	if a.MaxSupply != nil {
		max := *a.MaxSupply
		out.MaxSupply = &max
	}
	return &out
}

// MarketSummary contains aggregate figures derived from the full catalog.
// It is computed on demand and never stored.
type MarketSummary struct {
	TotalMarketCap         float64 `json:"total_market_cap"`
	TotalVolume24h         float64 `json:"total_volume_24h"`
	BTCDominance           float64 `json:"btc_dominance"`
	ETHDominance           float64 `json:"eth_dominance"`
	MarketCapChange24h     float64 `json:"market_cap_change_24h"`
	VolumeChange24h        float64 `json:"volume_change_24h"`
	ActiveCryptocurrencies int     `json:"active_cryptocurrencies"`
}
