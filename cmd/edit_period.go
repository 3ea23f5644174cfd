package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editPeriodCmd struct {
	periodFlags
	id int
}

func (*editPeriodCmd) Name() string     { return "edit-period" }
func (*editPeriodCmd) Synopsis() string { return "overwrite the fields of a budget period" }
func (*editPeriodCmd) Usage() string {
	return `bcs edit-period -id <id> -name <name> -from <date> -to <date> [-notes <text>]

  Overwrites all fields of the period and re-links transactions against the
  new date range.
`
}

func (c *editPeriodCmd) SetFlags(f *flag.FlagSet) {
	c.set(f)
	f.IntVar(&c.id, "id", 0, "Id of the period to edit.")
}

func (c *editPeriodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fields, err := c.fields()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.UpdatePeriod(c.id, fields); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated period %d\n", c.id)
	return subcommands.ExitSuccess
}
