package carteira

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BRL is the single currency the wallet operates in. The brapi API quotes
// Brazilian listings and crypto in BRL, and the original product has no
// multi-currency support.
const BRL = "BRL"

// Money represents a monetary value in BRL.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric value expressed in major units (reais).
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string into a positive Money amount.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("price must be positive, got %s", d)
	}
	return Money{value: d}, nil
}

// brl returns the full currency definition, used for formatting.
func brl() money.Currency {
	// The Money constructor is the only way to get a never-nil currency.
	return *money.New(0, BRL).Currency()
}

// String renders the amount with the BRL symbol and Brazilian separators,
// e.g. "R$1.234,56".
func (m Money) String() string {
	cur := brl()
	cents := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(cents.Round(0).IntPart())
}

// SignedString renders the amount with an explicit sign, and zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Add(n Money) Money       { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money       { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money              { return Money{value: m.value.Neg()} }
func (m Money) Mul(q Quantity) Money    { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money    { return Money{value: m.value.Div(q.value)} }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool   { return m.value.LessThan(n.value) }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsPositive() bool        { return m.value.IsPositive() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }

// Ratio returns m divided by n as a Percent (e.g. 50 for half of n).
// It is 0 when n is zero, never NaN or Inf.
func (m Money) Ratio(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).Mul(newDecimal(100)).InexactFloat64())
}

// AsFloat returns the amount as a float64. Display and charting only; all
// accounting stays in decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON implements the json.Marshaler interface. The amount is written
// as a plain JSON number, the shape the original app persisted.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
