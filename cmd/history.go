package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dmaia/carteira/brapi"
	"github.com/dmaia/carteira/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	rng      string
	interval string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "price history for a ticker" }
func (*historyCmd) Usage() string {
	return `carteira history [-range <range>] [-interval <interval>] <ticker>

  Shows historical closing prices for a ticker. Range and interval accept
  the brapi values (ranges like 1d, 5d, 1mo, 1y; intervals like 1d, 1wk,
  1mo) and default to the configured ones.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rng, "range", "", "History range (default from config)")
	f.StringVar(&c.interval, "interval", "", "Candle interval (default from config)")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker is required.")
		return subcommands.ExitUsageError
	}
	ticker := strings.ToUpper(f.Arg(0))

	dir, err := resolveDataDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	rng, interval := c.rng, c.interval
	if rng == "" {
		rng = cfg.HistoryRange
	}
	if interval == "" {
		interval = cfg.HistoryInterval
	}

	client := brapi.New(brapi.WithBaseURL(cfg.BaseURL), brapi.WithToken(cfg.Token), brapi.WithDailyCache())
	candles, err := client.History(ctx, ticker, rng, interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history for %s: %v\n", ticker, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.History(ticker, rng, candles))
	return subcommands.ExitSuccess
}
