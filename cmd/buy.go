package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmaia/carteira"
	"github.com/google/subcommands"
)

type buyCmd struct {
	date      string
	ticker    string
	assetType string
	quantity  string
	price     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase, opening or adding to a position" }
func (*buyCmd) Usage() string {
	return `carteira buy -t <ticker> -a <asset type> -q <quantity> -p <price> [-d <date>]

  Records a buy. The position's average cost is re-weighted with the
  purchase. The ticker must resolve to a tradable asset.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", carteira.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Asset ticker (e.g. PETR4, BTC)")
	f.StringVar(&c.assetType, "a", "stock", "Asset type: stock, bdr, etf or cripto")
	f.StringVar(&c.quantity, "q", "", "Quantity (fractions allowed)")
	f.StringVar(&c.price, "p", "", "Unit price in BRL")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := parseEntry(f, c.date, c.ticker, c.assetType, c.quantity, c.price, carteira.OpBuy)
	if status != subcommands.ExitSuccess {
		return status
	}
	return record(ctx, tx)
}

// parseEntry builds a transaction from the shared buy/sell flag values.
func parseEntry(f *flag.FlagSet, date, ticker, assetType, quantity, price string, op carteira.Operation) (carteira.Transaction, subcommands.ExitStatus) {
	var zero carteira.Transaction
	if ticker == "" || quantity == "" || price == "" {
		f.Usage()
		return zero, subcommands.ExitUsageError
	}
	day, err := carteira.ParseDate(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return zero, subcommands.ExitUsageError
	}
	at, err := carteira.ParseAssetType(assetType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return zero, subcommands.ExitUsageError
	}
	qty, err := carteira.ParseQuantity(quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return zero, subcommands.ExitUsageError
	}
	unit, err := carteira.ParseMoney(price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return zero, subcommands.ExitUsageError
	}

	if op == carteira.OpBuy {
		return carteira.NewBuy(day, ticker, at, qty, unit), subcommands.ExitSuccess
	}
	return carteira.NewSell(day, ticker, at, qty, unit), subcommands.ExitSuccess
}

// record validates, appends and persists the transaction.
func record(ctx context.Context, tx carteira.Transaction) subcommands.ExitStatus {
	w, _, err := openWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := w.Record(ctx, tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s\n", tx)
	return subcommands.ExitSuccess
}
