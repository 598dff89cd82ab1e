package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type privacyCmd struct{}

func (*privacyCmd) Name() string     { return "privacy" }
func (*privacyCmd) Synopsis() string { return "show or toggle privacy mode" }
func (*privacyCmd) Usage() string {
	return `carteira privacy [on|off]

  With no argument, reports whether privacy mode is enabled. With "on" or
  "off", sets it. While enabled, reports mask every monetary amount and
  percentage.
`
}

func (*privacyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *privacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _, err := openWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	switch f.Arg(0) {
	case "":
		if w.PrivacyMode() {
			fmt.Println("Privacy mode is on.")
		} else {
			fmt.Println("Privacy mode is off.")
		}
	case "on", "off":
		enabled := f.Arg(0) == "on"
		if err := w.SetPrivacyMode(enabled); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Privacy mode turned %s.\n", f.Arg(0))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown argument %q, want on or off.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
