package carteira

import (
	"context"
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	ctx := context.Background()
	quotes := fakeQuotes{"PETR4": M(30), "VALE3": M(60)}
	positions := NewLedger(
		NewBuy(day("2025-01-10"), "PETR4", Stock, Q(10), M(30)),
	).Positions()

	tests := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"valid buy", NewBuy(day("2025-02-01"), "VALE3", Stock, Q(5), M(60)), nil},
		{"valid sell", NewSell(day("2025-02-01"), "PETR4", Stock, Q(10), M(35)), nil},
		{"empty ticker", NewBuy(day("2025-02-01"), "", Stock, Q(5), M(60)), ErrUnknownTicker},
		{"unknown ticker", NewBuy(day("2025-02-01"), "NOPE3", Stock, Q(5), M(60)), ErrUnknownTicker},
		{"zero quantity", NewBuy(day("2025-02-01"), "VALE3", Stock, Q(0), M(60)), ErrBadQuantity},
		{"negative quantity", NewBuy(day("2025-02-01"), "VALE3", Stock, Q(-1), M(60)), ErrBadQuantity},
		{"zero price", NewBuy(day("2025-02-01"), "VALE3", Stock, Q(5), M(0)), ErrBadPrice},
		{"sell without holding", NewSell(day("2025-02-01"), "VALE3", Stock, Q(1), M(60)), ErrNoHolding},
		{"sell beyond holding", NewSell(day("2025-02-01"), "PETR4", Stock, Q(11), M(35)), ErrInsufficientHolding},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(ctx, tc.tx, positions, quotes)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}
