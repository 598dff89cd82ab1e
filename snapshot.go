package carteira

import (
	"context"
	"sort"
	"sync"
)

// QuoteProvider is the external price lookup the valuation depends on.
// Implementations must tolerate unknown tickers by returning an error,
// never by crashing.
type QuoteProvider interface {
	Quote(ctx context.Context, ticker string, assetType AssetType) (Money, error)
}

// Allocation is one bucket of the per-type allocation breakdown.
type Allocation struct {
	AssetType AssetType
	Value     Money
	Percent   Percent // share of the portfolio's current value
}

// Snapshot is the ephemeral, point-in-time aggregate view of the portfolio.
// It is recomputed on demand and never persisted.
type Snapshot struct {
	TotalCostBasis Money
	CurrentValue   Money
	Allocation     []Allocation
}

// ProfitAbsolute returns current value minus total cost basis.
func (s Snapshot) ProfitAbsolute() Money { return s.CurrentValue.Sub(s.TotalCostBasis) }

// ProfitPercent returns the profit as a percentage of the cost basis.
// It is 0 when the cost basis is 0, never NaN or Inf.
func (s Snapshot) ProfitPercent() Percent { return s.ProfitAbsolute().Ratio(s.TotalCostBasis) }

// SnapshotAtCost aggregates the position set using each position's current
// price, which defaults to its average cost. It is pure and network-free:
// the immediate snapshot for first paint, before any quote arrives.
func SnapshotAtCost(positions map[string]Position) Snapshot {
	return aggregate(positions)
}

// RefreshSnapshot fetches a current price for every position and aggregates
// the result. Lookups for distinct tickers are independent and issued
// concurrently; a failed lookup falls back to the position's last known
// price, so one unavailable ticker never blocks the whole snapshot. The
// snapshot is assembled once all lookups have settled.
func RefreshSnapshot(ctx context.Context, positions map[string]Position, quotes QuoteProvider) Snapshot {
	return aggregate(RefreshPositions(ctx, positions, quotes))
}

// RefreshPositions returns a copy of the position set with current prices
// refreshed through the quote provider. The input is never mutated: a
// concurrent reader of a prior position set stays valid.
func RefreshPositions(ctx context.Context, positions map[string]Position, quotes QuoteProvider) map[string]Position {
	refreshed := make(map[string]Position, len(positions))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for ticker, p := range positions {
		wg.Add(1)
		go func(ticker string, p Position) {
			defer wg.Done()
			price, err := quotes.Quote(ctx, ticker, p.AssetType)
			if err == nil && price.IsPositive() {
				p.CurrentPrice = price
			}
			// On failure p keeps its last known price (average cost when no
			// quote was ever fetched).
			mu.Lock()
			refreshed[ticker] = p
			mu.Unlock()
		}(ticker, p)
	}
	wg.Wait()
	return refreshed
}

// aggregate derives the portfolio-level metrics from a position set.
func aggregate(positions map[string]Position) Snapshot {
	var s Snapshot
	s.TotalCostBasis = M(0)
	s.CurrentValue = M(0)

	byType := make(map[AssetType]Money, len(AssetTypes()))
	for _, p := range positions {
		value := p.MarketValue()
		s.TotalCostBasis = s.TotalCostBasis.Add(p.CostBasis())
		s.CurrentValue = s.CurrentValue.Add(value)

		bucket := p.AssetType
		if !knownAssetType(bucket) {
			// An unrecognized type is bucketed into stock, as the original
			// app did. This silently miscategorizes value; a stricter design
			// would report an "other" bucket instead.
			bucket = Stock
		}
		byType[bucket] = byType[bucket].Add(value)
	}

	// Walk the fixed category set in canonical order so equal-value buckets
	// keep a deterministic order through the stable sort.
	for _, at := range AssetTypes() {
		value, ok := byType[at]
		if !ok || !value.IsPositive() {
			continue
		}
		s.Allocation = append(s.Allocation, Allocation{
			AssetType: at,
			Value:     value,
			Percent:   value.Ratio(s.CurrentValue),
		})
	}
	sort.SliceStable(s.Allocation, func(i, j int) bool {
		return s.Allocation[j].Value.LessThan(s.Allocation[i].Value)
	})
	return s
}

func knownAssetType(a AssetType) bool {
	switch a {
	case Stock, BDR, ETF, Crypto:
		return true
	}
	return false
}
