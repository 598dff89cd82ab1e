package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmaia/carteira/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct {
	offline bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "list open positions with live prices" }
func (*positionsCmd) Usage() string {
	return `carteira positions [-offline]

  Lists the open positions derived from the transaction log. Prices are
  refreshed from the market unless -offline is set, in which case each
  position is shown at its average cost.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the price refresh")
}

func (c *positionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _, err := openWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	positions := w.Positions()
	if !c.offline {
		_, positions = w.Refresh(ctx)
	}

	printMarkdown(renderer.Positions(positions, renderer.Options{Privacy: w.PrivacyMode()}))
	return subcommands.ExitSuccess
}
