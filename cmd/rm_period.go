package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmPeriodCmd struct {
	id int
}

func (*rmPeriodCmd) Name() string     { return "rm-period" }
func (*rmPeriodCmd) Synopsis() string { return "delete a budget period" }
func (*rmPeriodCmd) Usage() string {
	return `bcs rm-period -id <id>

  Deletes the period. Transactions linked to it are NOT touched: they keep
  a dangling link until 'bcs recalc' runs or they are edited.
`
}

func (c *rmPeriodCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the period to delete.")
}

func (c *rmPeriodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.DeletePeriod(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted period %d\n", c.id)
	return subcommands.ExitSuccess
}
