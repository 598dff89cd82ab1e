package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dmaia/carteira"
	"github.com/dmaia/carteira/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	ticker string
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the recorded transactions" }
func (*txCmd) Usage() string {
	return `carteira tx [-t <ticker>] [-tail <n>]

  Lists the transaction log in chronological order, optionally filtered to
  one ticker or limited to the last N entries.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Show only transactions for this ticker")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions")
}

func (c *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _, err := openWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	filter := strings.ToUpper(c.ticker)
	var txs []carteira.Transaction
	for _, tx := range w.Transactions() {
		if filter != "" && tx.Ticker != filter {
			continue
		}
		txs = append(txs, tx)
	}
	if c.tail > 0 && len(txs) > c.tail {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.Transactions(txs, renderer.Options{Privacy: w.PrivacyMode()}))
	return subcommands.ExitSuccess
}
