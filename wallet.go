package carteira

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log"
)

// Wallet owns the portfolio state: the transaction ledger, the key-value
// store it is persisted in, and the quote provider used for valuation and
// entry validation. It replaces the original app's global shared wallet
// state with an explicit, dependency-injected object owned by the
// application root.
type Wallet struct {
	ledger  *Ledger
	store   KeyValueStore
	quotes  QuoteProvider
	privacy bool
}

// NewWallet creates a wallet over the given store and quote provider.
func NewWallet(store KeyValueStore, quotes QuoteProvider) *Wallet {
	return &Wallet{ledger: NewLedger(), store: store, quotes: quotes}
}

// Load restores the transaction log and the privacy flag from the store.
// Absent or unparseable persisted state yields an empty ledger, never a
// failure: the store is best-effort and the ledger must always be usable.
func (w *Wallet) Load() error {
	w.ledger = NewLedger()
	w.privacy = false

	data, ok, err := w.store.Get(StorageKeyTransactions)
	if err != nil {
		return fmt.Errorf("could not load transactions: %w", err)
	}
	if ok {
		txs, err := DecodeTransactions(data)
		if err != nil {
			log.Printf("warning: stored transactions are corrupt, starting empty: %v", err)
		} else {
			w.ledger.Append(txs...)
		}
	}

	flag, ok, err := w.store.Get(StorageKeyPrivacyMode)
	if err != nil {
		return fmt.Errorf("could not load privacy mode: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(flag), &w.privacy); err != nil {
			log.Printf("warning: stored privacy flag is corrupt, defaulting to off: %v", err)
			w.privacy = false
		}
	}
	return nil
}

// Record validates a transaction and, if it is acceptable, appends it to the
// ledger and persists the updated log. Validation happens here, exactly
// once, before the ledger ever observes the transaction.
func (w *Wallet) Record(ctx context.Context, tx Transaction) error {
	if err := Validate(ctx, tx, w.ledger.Positions(), w.quotes); err != nil {
		return err
	}
	w.ledger.Append(tx)
	if err := w.save(); err != nil {
		// The in-memory ledger stays the source of truth for this session;
		// the write failure only risks losing the entry on restart.
		return fmt.Errorf("transaction recorded but not persisted: %w", err)
	}
	return nil
}

func (w *Wallet) save() error {
	var txs []Transaction
	for _, tx := range w.ledger.Transactions() {
		txs = append(txs, tx)
	}
	data, err := EncodeTransactions(txs)
	if err != nil {
		return err
	}
	return w.store.Set(StorageKeyTransactions, data)
}

// Transactions returns an iterator over the recorded transactions in
// chronological order.
func (w *Wallet) Transactions() iter.Seq2[int, Transaction] {
	return w.ledger.Transactions()
}

// Len returns the number of recorded transactions.
func (w *Wallet) Len() int { return w.ledger.Len() }

// Positions recomputes the current position set from the transaction log.
func (w *Wallet) Positions() map[string]Position {
	return w.ledger.Positions()
}

// SnapshotAtCost returns the immediate, network-free portfolio snapshot.
func (w *Wallet) SnapshotAtCost() Snapshot {
	return SnapshotAtCost(w.ledger.Positions())
}

// Refresh fetches live quotes for every open position and returns the
// refreshed snapshot together with the refreshed position set.
func (w *Wallet) Refresh(ctx context.Context) (Snapshot, map[string]Position) {
	positions := RefreshPositions(ctx, w.ledger.Positions(), w.quotes)
	return SnapshotAtCost(positions), positions
}

// PrivacyMode reports whether currency and percent outputs should be masked
// at the presentation boundary. The wallet always computes real values;
// masking is purely a display concern.
func (w *Wallet) PrivacyMode() bool { return w.privacy }

// SetPrivacyMode toggles and persists the privacy flag.
func (w *Wallet) SetPrivacyMode(on bool) error {
	w.privacy = on
	flag, err := json.Marshal(on)
	if err != nil {
		return err
	}
	if err := w.store.Set(StorageKeyPrivacyMode, string(flag)); err != nil {
		return fmt.Errorf("could not persist privacy mode: %w", err)
	}
	return nil
}

// ClearAll wipes the store and resets the wallet to its initial state.
func (w *Wallet) ClearAll() error {
	if err := w.store.Clear(); err != nil {
		return fmt.Errorf("could not clear stored data: %w", err)
	}
	w.ledger = NewLedger()
	w.privacy = false
	return nil
}
