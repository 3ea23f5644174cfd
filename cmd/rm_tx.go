package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmTxCmd struct {
	ids string
}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "delete transactions by id" }
func (*rmTxCmd) Usage() string {
	return `bcs rm-tx -ids <id>[,<id>...]

  Deletes every listed transaction. Unknown ids are reported but do not
  prevent the others from being deleted.
`
}

func (c *rmTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ids, "ids", "", "Comma-separated ids of the transactions to delete.")
}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := ledger.DeleteTx(ids...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d transaction(s)\n", len(ids))
	return subcommands.ExitSuccess
}
