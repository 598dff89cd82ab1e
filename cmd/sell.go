package cmd

import (
	"context"
	"flag"

	"github.com/dmaia/carteira"
	"github.com/google/subcommands"
)

type sellCmd struct {
	date      string
	ticker    string
	assetType string
	quantity  string
	price     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale, trimming or closing a position" }
func (*sellCmd) Usage() string {
	return `carteira sell -t <ticker> -a <asset type> -q <quantity> -p <price> [-d <date>]

  Records a sell. The sale is rejected when there is no open position for
  the ticker or the quantity exceeds the holding. Selling everything closes
  the position and discards its average cost.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", carteira.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Asset ticker (e.g. PETR4, BTC)")
	f.StringVar(&c.assetType, "a", "stock", "Asset type: stock, bdr, etf or cripto")
	f.StringVar(&c.quantity, "q", "", "Quantity (fractions allowed)")
	f.StringVar(&c.price, "p", "", "Unit price in BRL")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := parseEntry(f, c.date, c.ticker, c.assetType, c.quantity, c.price, carteira.OpSell)
	if status != subcommands.ExitSuccess {
		return status
	}
	return record(ctx, tx)
}
