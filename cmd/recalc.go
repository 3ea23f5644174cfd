package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type recalcCmd struct{}

func (*recalcCmd) Name() string     { return "recalc" }
func (*recalcCmd) Synopsis() string { return "recompute all transaction-period links" }
func (*recalcCmd) Usage() string {
	return `bcs recalc

  Clears every transaction-period link and recomputes it from the
  current periods. Use it after editing periods in bulk or on files
  touched outside of bcs.
`
}

func (*recalcCmd) SetFlags(*flag.FlagSet) {}

func (*recalcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.RecalculateAttachments(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Recomputed all transaction-period links.")
	return subcommands.ExitSuccess
}
