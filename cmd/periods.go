package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type periodsCmd struct{}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "list all budget periods" }
func (*periodsCmd) Usage() string {
	return `bcs periods

  Lists all budget periods in collection order. The order matters: when
  several periods overlap a date, the first one wins the attachment.
`
}

func (*periodsCmd) SetFlags(f *flag.FlagSet) {}

func (c *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PeriodsMarkdown(ledger.Periods()))
	return subcommands.ExitSuccess
}
