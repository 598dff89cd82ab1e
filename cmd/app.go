// Package cmd implements the CLI application to manage the wallet.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/dmaia/carteira"
	"github.com/dmaia/carteira/brapi"
	"github.com/google/subcommands"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&clearCmd{}, "transactions")

	c.Register(&positionsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&searchCmd{}, "market")

	c.Register(&privacyCmd{}, "settings")
	c.Register(&assistCmd{}, "assistant")
}

// As a CLI application with a short-lived lifecycle, global flags are fine.

var dataDir = flag.String("data", "", "Directory holding the wallet data (default ~/.carteira)")

// resolveDataDir returns the data directory, defaulting to ~/.carteira.
func resolveDataDir() (string, error) {
	if *dataDir != "" {
		return *dataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return filepath.Join(home, ".carteira"), nil
}

// quoteProvider adapts the brapi client to the wallet's QuoteProvider.
// brapi keys quotes by symbol alone; the asset type is not needed.
type quoteProvider struct {
	client *brapi.Client
}

func (q quoteProvider) Quote(ctx context.Context, ticker string, _ carteira.AssetType) (carteira.Money, error) {
	price, err := q.client.Quote(ctx, ticker)
	if err != nil {
		return carteira.Money{}, err
	}
	return carteira.M(price), nil
}

// openWallet loads the configuration, builds the store and the quote
// provider, and restores the wallet state.
func openWallet() (*carteira.Wallet, *Config, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, nil, err
	}

	store, err := carteira.NewDirStore(dir)
	if err != nil {
		return nil, nil, err
	}

	client := brapi.New(
		brapi.WithBaseURL(cfg.BaseURL),
		brapi.WithToken(cfg.Token),
		brapi.WithDailyCache(),
	)

	w := carteira.NewWallet(store, quoteProvider{client: client})
	if err := w.Load(); err != nil {
		return nil, nil, err
	}
	return w, cfg, nil
}

// printMarkdown renders a markdown report on the terminal. When rendering
// fails the raw markdown is still printed: the report matters more than the
// styling.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
