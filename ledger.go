package carteira

import (
	"iter"
	"sort"
)

// Ledger is the append-only, chronologically-ordered record of all
// transactions. It is the only persisted state; everything else (positions,
// snapshots) is a pure function of it.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, so
// transactions on the same day keep their original relative order; average
// cost depends on that sequencing.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByTicker returns an iterator over the transactions of a single ticker,
// in chronological order.
func (l *Ledger) ByTicker(ticker string) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if tx.Ticker != ticker {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Position is the current net holding in one asset, derived from its
// transaction history. A Position is never patched in place: every ledger
// mutation recomputes the whole set.
type Position struct {
	Ticker      string
	AssetType   AssetType
	Quantity    Quantity
	AverageCost Money
	// CurrentPrice is the last refreshed market price. Until a live quote is
	// fetched it defaults to the average cost.
	CurrentPrice Money
}

// CostBasis returns quantity × average cost, the money put in for the
// currently open quantity.
func (p Position) CostBasis() Money { return p.AverageCost.Mul(p.Quantity) }

// MarketValue returns quantity × current price.
func (p Position) MarketValue() Money { return p.CurrentPrice.Mul(p.Quantity) }

// Positions folds the transaction log into the current position set using
// weighted-average-cost accounting, keyed by ticker.
//
// Rules, in processing order:
//   - BUY blends the purchase into the running average cost.
//   - SELL reduces quantity; the average cost of the surviving quantity is
//     unchanged (the basis scales down proportionally).
//   - A SELL that empties the position resets its average cost to zero: a
//     later BUY of the same ticker starts a fresh average. No lot history is
//     kept.
//   - A SELL beyond the held quantity clamps to zero instead of failing.
//     Sell-quantity validation happens once, at entry time, before the
//     ledger ever sees the transaction.
//   - A transaction with an unrecognized operation contributes nothing.
//
// Only tickers with a positive open quantity appear in the result.
func (l *Ledger) Positions() map[string]Position {
	open := make(map[string]Position)

	for _, tx := range l.transactions {
		p, ok := open[tx.Ticker]
		if !ok {
			// The asset type of a ticker is assumed stable across its
			// history: first transaction wins.
			p = Position{Ticker: tx.Ticker, AssetType: tx.AssetType}
		}

		switch tx.Operation {
		case OpBuy:
			newQuantity := p.Quantity.Add(tx.Quantity)
			if !newQuantity.IsZero() {
				held := p.AverageCost.Mul(p.Quantity)
				p.AverageCost = held.Add(tx.Total()).Div(newQuantity)
			}
			p.Quantity = newQuantity
		case OpSell:
			p.Quantity = p.Quantity.Sub(tx.Quantity)
			if !p.Quantity.IsPositive() {
				p.Quantity = Q(0)
				p.AverageCost = M(0)
			}
		default:
			continue
		}

		open[tx.Ticker] = p
	}

	positions := make(map[string]Position, len(open))
	for ticker, p := range open {
		if !p.Quantity.IsPositive() {
			continue
		}
		p.CurrentPrice = p.AverageCost
		positions[ticker] = p
	}
	return positions
}
