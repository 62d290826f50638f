package market

import "context"

// Querier defines the read surface consumed by the HTTP layer. Service is
// the only production implementation; handler tests substitute mocks.
type Querier interface {
	Get(id string) (*Asset, error)
	ByCategory(category string) []*Asset
	Search(query string) []*Asset
	TopMovers(kind MoverKind) []*Asset
	ByMarketCap(limit int) []*Asset
	ByVolume(limit int) []*Asset
	Trending(limit int) []*Asset
	Summary() *MarketSummary
	Refresh(ctx context.Context) error
}

var _ Querier = (*Service)(nil)
