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

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for tradable assets" }
func (*searchCmd) Usage() string {
	return `carteira search <term>

  Searches brapi for assets matching the term and shows their symbols and
  last close prices, ready to use in buy/sell commands.
`
}

func (*searchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

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

	client := brapi.New(brapi.WithBaseURL(cfg.BaseURL), brapi.WithToken(cfg.Token), brapi.WithDailyCache())
	results, err := client.Search(ctx, term)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error searching assets:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SearchResults(term, results))
	return subcommands.ExitSuccess
}
