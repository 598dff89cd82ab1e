package carteira

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTransactions serializes the transaction log as a JSON array, the
// exact shape the original app stored under its single storage key.
func EncodeTransactions(txs []Transaction) (string, error) {
	data, err := json.Marshal(txs)
	if err != nil {
		return "", fmt.Errorf("could not encode transactions: %w", err)
	}
	return string(data), nil
}

// DecodeTransactions parses a persisted JSON array of transactions.
func DecodeTransactions(data string) ([]Transaction, error) {
	var txs []Transaction
	if err := json.Unmarshal([]byte(data), &txs); err != nil {
		return nil, fmt.Errorf("could not decode transactions: %w", err)
	}
	return txs, nil
}
