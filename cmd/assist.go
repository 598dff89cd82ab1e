package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dmaia/carteira/advisor"
	"github.com/dmaia/carteira/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	offline bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an assistant about the portfolio" }
func (*assistCmd) Usage() string {
	return `carteira assist [-offline] [question...]

  Opens an interactive Gemini session primed with the current portfolio
  report. Requires the GEMINI_API_KEY environment variable. Questions given
  on the command line are answered before the interactive prompt starts.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Build the report at average cost, without fetching quotes")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _, err := openWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// The model gets the real numbers regardless of privacy mode: masking
	// the report would leave it nothing to answer with.
	opts := renderer.Options{}
	snapshot := w.SnapshotAtCost()
	positions := w.Positions()
	if !c.offline {
		snapshot, positions = w.Refresh(ctx)
	}
	report := renderer.Summary(snapshot, opts) + "\n" + renderer.Positions(positions, opts)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating the Gemini client:", err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	a := advisor.New(os.Stdout, os.Stdin)
	if err := a.Run(ctx, client, report, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
