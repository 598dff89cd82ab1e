package carteira

import (
	"context"
	"testing"
)

func newTestWallet(t *testing.T) (*Wallet, MemStore) {
	t.Helper()
	store := MemStore{}
	quotes := fakeQuotes{"PETR4": M(30), "VALE3": M(60), "BTC": M(300000)}
	w := NewWallet(store, quotes)
	if err := w.Load(); err != nil {
		t.Fatal(err)
	}
	return w, store
}

func TestWalletRecordPersists(t *testing.T) {
	ctx := context.Background()
	w, store := newTestWallet(t)

	if err := w.Record(ctx, NewBuy(day("2025-01-10"), "PETR4", Stock, Q(10), M(30))); err != nil {
		t.Fatal(err)
	}
	if _, ok := store[StorageKeyTransactions]; !ok {
		t.Fatal("recording a transaction did not write the store")
	}

	// A second wallet over the same store sees the transaction.
	w2 := NewWallet(store, fakeQuotes{})
	if err := w2.Load(); err != nil {
		t.Fatal(err)
	}
	if w2.Len() != 1 {
		t.Fatalf("reloaded wallet has %d transactions, want 1", w2.Len())
	}
	p, ok := w2.Positions()["PETR4"]
	if !ok || !p.Quantity.Equal(Q(10)) {
		t.Errorf("reloaded position = %+v, want 10 PETR4", p)
	}
}

func TestWalletRecordRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	w, store := newTestWallet(t)

	err := w.Record(ctx, NewSell(day("2025-01-10"), "PETR4", Stock, Q(1), M(30)))
	if err == nil {
		t.Fatal("selling without a holding was accepted")
	}
	if w.Len() != 0 {
		t.Error("a rejected transaction reached the ledger")
	}
	if _, ok := store[StorageKeyTransactions]; ok {
		t.Error("a rejected transaction reached the store")
	}
}

func TestWalletLoadToleratesCorruptStore(t *testing.T) {
	store := MemStore{
		StorageKeyTransactions: "{not json",
		StorageKeyPrivacyMode:  "maybe",
	}
	w := NewWallet(store, fakeQuotes{})
	if err := w.Load(); err != nil {
		t.Fatalf("Load() on a corrupt store = %v, want nil", err)
	}
	if w.Len() != 0 {
		t.Errorf("corrupt transactions yielded %d entries, want empty ledger", w.Len())
	}
	if w.PrivacyMode() {
		t.Error("corrupt privacy flag did not default to off")
	}
}

func TestWalletPrivacyModeRoundTrip(t *testing.T) {
	w, store := newTestWallet(t)

	if err := w.SetPrivacyMode(true); err != nil {
		t.Fatal(err)
	}
	if store[StorageKeyPrivacyMode] != "true" {
		t.Errorf("persisted privacy flag = %q, want \"true\"", store[StorageKeyPrivacyMode])
	}

	w2 := NewWallet(store, fakeQuotes{})
	if err := w2.Load(); err != nil {
		t.Fatal(err)
	}
	if !w2.PrivacyMode() {
		t.Error("privacy mode did not survive a reload")
	}
}

func TestWalletClearAll(t *testing.T) {
	ctx := context.Background()
	w, store := newTestWallet(t)

	if err := w.Record(ctx, NewBuy(day("2025-01-10"), "PETR4", Stock, Q(10), M(30))); err != nil {
		t.Fatal(err)
	}
	if err := w.SetPrivacyMode(true); err != nil {
		t.Fatal(err)
	}

	if err := w.ClearAll(); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 0 || w.PrivacyMode() {
		t.Error("ClearAll did not reset the wallet")
	}
	if len(store) != 0 {
		t.Errorf("ClearAll left %d keys in the store", len(store))
	}
}

func TestWalletRefresh(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWallet(t)

	if err := w.Record(ctx, NewBuy(day("2025-01-10"), "PETR4", Stock, Q(10), M(20))); err != nil {
		t.Fatal(err)
	}

	snapshot, positions := w.Refresh(ctx)
	if !positions["PETR4"].CurrentPrice.Equal(M(30)) {
		t.Errorf("refreshed price = %s, want R$30,00", positions["PETR4"].CurrentPrice)
	}
	if !snapshot.CurrentValue.Equal(M(300)) {
		t.Errorf("CurrentValue = %s, want R$300,00", snapshot.CurrentValue)
	}
	if !snapshot.TotalCostBasis.Equal(M(200)) {
		t.Errorf("TotalCostBasis = %s, want R$200,00", snapshot.TotalCostBasis)
	}
}
