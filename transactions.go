package carteira

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Operation identifies the side of a transaction.
type Operation string

const (
	// OpBuy adds quantity to a position and re-weights its average cost.
	OpBuy Operation = "BUY"
	// OpSell removes quantity from a position, leaving average cost untouched.
	OpSell Operation = "SELL"
)

// AssetType classifies an asset into the categories the allocation
// breakdown reports on.
type AssetType string

const (
	Stock  AssetType = "stock"
	BDR    AssetType = "bdr"
	ETF    AssetType = "etf"
	Crypto AssetType = "cripto"
)

// AssetTypes returns the fixed category set in its canonical order.
func AssetTypes() []AssetType {
	return []AssetType{Stock, BDR, ETF, Crypto}
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch AssetType(strings.ToLower(strings.TrimSpace(s))) {
	case Stock:
		return Stock, nil
	case BDR:
		return BDR, nil
	case ETF:
		return ETF, nil
	case Crypto:
		return Crypto, nil
	default:
		return "", fmt.Errorf("unknown asset type %q (want stock, bdr, etf or cripto)", s)
	}
}

// Label returns the display name of the asset type, as the original app
// printed it.
func (a AssetType) Label() string {
	if a == Stock {
		return "AÇÃO"
	}
	return strings.ToUpper(string(a))
}

// Transaction is a single recorded buy or sell. Transactions are immutable:
// they are created once by user action and only ever bulk-cleared, never
// edited or deleted individually. The transaction log is the sole source of
// truth; positions and snapshots are recomputed from it.
type Transaction struct {
	ID        string
	Ticker    string
	AssetType AssetType
	Operation Operation
	Quantity  Quantity
	Price     Money // unit price in BRL on the transaction date
	Date      Date
}

// NewBuy creates a BUY transaction. The ticker is normalized to uppercase.
func NewBuy(day Date, ticker string, assetType AssetType, quantity Quantity, price Money) Transaction {
	return newTransaction(day, ticker, assetType, OpBuy, quantity, price)
}

// NewSell creates a SELL transaction. The ticker is normalized to uppercase.
func NewSell(day Date, ticker string, assetType AssetType, quantity Quantity, price Money) Transaction {
	return newTransaction(day, ticker, assetType, OpSell, quantity, price)
}

func newTransaction(day Date, ticker string, assetType AssetType, op Operation, quantity Quantity, price Money) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		Ticker:    strings.ToUpper(strings.TrimSpace(ticker)),
		AssetType: assetType,
		Operation: op,
		Quantity:  quantity,
		Price:     price,
		Date:      day,
	}
}

// Total returns quantity × price. It is derived, never stored independently,
// so it cannot drift from the fields it is computed from.
func (t Transaction) Total() Money { return t.Price.Mul(t.Quantity) }

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Ticker == o.Ticker &&
		t.AssetType == o.AssetType &&
		t.Operation == o.Operation &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Date == o.Date
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", t.Date, t.Operation, t.Quantity, t.Ticker, t.Price)
}

// transactionJSON is the persisted shape. The total field is written for
// display convenience and ignored on load: it is always recomputed.
type transactionJSON struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	AssetType AssetType `json:"assetType"`
	Operation Operation `json:"operation"`
	Quantity  Quantity  `json:"quantity"`
	Price     Money     `json:"price"`
	Date      Date      `json:"date"`
	Total     Money     `json:"total"`
}

// MarshalJSON implements the json.Marshaler interface.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionJSON{
		ID:        t.ID,
		Ticker:    t.Ticker,
		AssetType: t.AssetType,
		Operation: t.Operation,
		Quantity:  t.Quantity,
		Price:     t.Price,
		Date:      t.Date,
		Total:     t.Total(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.ID = raw.ID
	t.Ticker = strings.ToUpper(strings.TrimSpace(raw.Ticker))
	t.AssetType = raw.AssetType
	t.Operation = raw.Operation
	t.Quantity = raw.Quantity
	t.Price = raw.Price
	t.Date = raw.Date
	return nil
}
