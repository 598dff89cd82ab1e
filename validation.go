package carteira

import (
	"context"
	"errors"
	"fmt"
)

// Entry rejection reasons. Each failure mode is distinguishable so the
// presentation layer can tell the user exactly what to fix.
var (
	// ErrBadQuantity means the quantity is not a finite positive number.
	ErrBadQuantity = errors.New("quantity must be a positive number")
	// ErrBadPrice means the unit price is not a finite positive number.
	ErrBadPrice = errors.New("price must be a positive number")
	// ErrUnknownTicker means the ticker did not resolve to a tradable asset.
	ErrUnknownTicker = errors.New("unknown ticker")
	// ErrNoHolding means a sell was attempted on a ticker with no open position.
	ErrNoHolding = errors.New("no holding for ticker")
	// ErrInsufficientHolding means a sell exceeds the open quantity.
	ErrInsufficientHolding = errors.New("insufficient quantity held")
)

// Validate checks a transaction before it is appended to the ledger. These
// checks run exactly once, synchronously at entry time: the ledger itself
// performs no validation by design (see Ledger.Positions).
func Validate(ctx context.Context, tx Transaction, positions map[string]Position, quotes QuoteProvider) error {
	if tx.Ticker == "" {
		return fmt.Errorf("%w: empty ticker", ErrUnknownTicker)
	}
	if !tx.Quantity.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrBadQuantity, tx.Quantity)
	}
	if !tx.Price.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrBadPrice, tx.Price)
	}

	if _, err := quotes.Quote(ctx, tx.Ticker, tx.AssetType); err != nil {
		return fmt.Errorf("%w: %q did not resolve: %v", ErrUnknownTicker, tx.Ticker, err)
	}

	if tx.Operation == OpSell {
		p, ok := positions[tx.Ticker]
		if !ok {
			return fmt.Errorf("%w: cannot sell %s", ErrNoHolding, tx.Ticker)
		}
		if p.Quantity.LessThan(tx.Quantity) {
			return fmt.Errorf("%w: selling %s but holding %s %s",
				ErrInsufficientHolding, tx.Quantity, p.Quantity, tx.Ticker)
		}
	}
	return nil
}
