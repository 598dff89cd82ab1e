package carteira

import (
	"strings"
	"testing"
)

func TestEncodeTransactionsShape(t *testing.T) {
	tx := NewBuy(day("2025-01-10"), "petr4", Stock, Q(10), M(30.5))
	data, err := EncodeTransactions([]Transaction{tx})
	if err != nil {
		t.Fatal(err)
	}

	// The persisted shape: numbers unquoted, ticker uppercased, the derived
	// total written alongside the fields it comes from.
	for _, want := range []string{
		`"ticker":"PETR4"`,
		`"operation":"BUY"`,
		`"assetType":"stock"`,
		`"quantity":10`,
		`"price":30.5`,
		`"total":305`,
		`"date":"2025-01-10"`,
	} {
		if !strings.Contains(data, want) {
			t.Errorf("encoded transaction is missing %s:\n%s", want, data)
		}
	}
}

func TestDecodeTransactionsRoundTrip(t *testing.T) {
	in := []Transaction{
		NewBuy(day("2025-01-10"), "PETR4", Stock, Q(10), M(30)),
		NewSell(day("2025-02-10"), "BTC", Crypto, Q(0.5), M(310000)),
	}
	data, err := EncodeTransactions(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeTransactions(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("decoded %d transactions, want %d", len(out), len(in))
	}
	for i := range in {
		if !in[i].Equal(out[i]) {
			t.Errorf("transaction %d changed through the round trip:\n in: %s\nout: %s", i, in[i], out[i])
		}
	}
}

func TestDecodeTransactionsIgnoresStoredTotal(t *testing.T) {
	// A hand-edited total must not survive the load: it is always recomputed.
	data := `[{"id":"x","ticker":"PETR4","assetType":"stock","operation":"BUY","quantity":10,"price":30,"date":"2025-01-10","total":999999}]`
	txs, err := DecodeTransactions(data)
	if err != nil {
		t.Fatal(err)
	}
	if !txs[0].Total().Equal(M(300)) {
		t.Errorf("Total() = %s, want recomputed R$300,00", txs[0].Total())
	}
}

func TestDecodeTransactionsRejectsGarbage(t *testing.T) {
	if _, err := DecodeTransactions("{not json"); err == nil {
		t.Error("garbage input decoded without error")
	}
}
