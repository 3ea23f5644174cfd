package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type reviewCmd struct {
	id int
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "summarize a period" }
func (*reviewCmd) Usage() string {
	return `bcs review -id <period-id>

  Prints income, outgoings, pending total and balance for one period,
  with the transactions linked to it.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Period id to review.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "missing required flag -id")
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var period *budget.BudgetPeriod
	for _, p := range ledger.Periods() {
		if p.ID == c.id {
			period = &p
			break
		}
	}
	if period == nil {
		fmt.Fprintf(os.Stderr, "period %d: %v\n", c.id, budget.ErrNotFound)
		return subcommands.ExitFailure
	}

	review := renderer.NewReview(*period, ledger.Transactions())
	printMarkdown(renderer.ReviewMarkdown(review, ledger.PeriodName, *currency))
	return subcommands.ExitSuccess
}
