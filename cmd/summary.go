package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmaia/carteira/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "portfolio totals, profit and allocation breakdown" }
func (*summaryCmd) Usage() string {
	return `carteira summary [-offline]

  Shows the portfolio snapshot: total invested, current value, profit and
  the allocation by asset type. With -offline the snapshot values every
  position at its average cost (no network).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Value positions at average cost, without fetching quotes")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _, err := openWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snapshot := w.SnapshotAtCost()
	if !c.offline {
		snapshot, _ = w.Refresh(ctx)
	}

	printMarkdown(renderer.Summary(snapshot, renderer.Options{Privacy: w.PrivacyMode()}))
	return subcommands.ExitSuccess
}
