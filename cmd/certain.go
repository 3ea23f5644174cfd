package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type certainCmd struct {
	ids string
}

func (*certainCmd) Name() string     { return "certain" }
func (*certainCmd) Synopsis() string { return "mark transactions as certain" }
func (*certainCmd) Usage() string {
	return `bcs certain -ids <id>[,<id>...]

  Marks the given transactions as certain.
`
}

func (c *certainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ids, "ids", "", "Comma separated transaction ids.")
}

func (c *certainCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids, err := parseIDs(c.ids)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.MarkCertain(ids...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Marked %d transaction(s) as certain.\n", len(ids))
	return subcommands.ExitSuccess
}
