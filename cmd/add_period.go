package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/google/subcommands"
)

// periodFlags holds the flags shared by add-period and edit-period.
type periodFlags struct {
	name  string
	from  string
	to    string
	notes string
}

func (p *periodFlags) set(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Display name of the period.")
	f.StringVar(&p.from, "from", "", "Start date of the period (YYYY-MM-DD, excluded from the range).")
	f.StringVar(&p.to, "to", "", "End date of the period (YYYY-MM-DD, excluded from the range).")
	f.StringVar(&p.notes, "notes", "", "Free-text notes.")
}

func (p *periodFlags) fields() (budget.PeriodFields, error) {
	var fields budget.PeriodFields
	var err error
	fields.Name = p.name
	fields.Notes = p.notes
	if fields.Start, err = date.Parse(p.from); err != nil {
		return fields, fmt.Errorf("invalid -from: %w", err)
	}
	if fields.End, err = date.Parse(p.to); err != nil {
		return fields, fmt.Errorf("invalid -to: %w", err)
	}
	return fields, nil
}

type addPeriodCmd struct {
	periodFlags
}

func (*addPeriodCmd) Name() string     { return "add-period" }
func (*addPeriodCmd) Synopsis() string { return "create a new budget period" }
func (*addPeriodCmd) Usage() string {
	return `bcs add-period -name <name> -from <date> -to <date> [-notes <text>]

  Creates a budget period. Transactions dated strictly inside the range are
  linked to it immediately, overwriting their previous link.
`
}

func (c *addPeriodCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *addPeriodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	p, err := ledger.CreatePeriod(fields)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created period %s\n", p)
	return subcommands.ExitSuccess
}
