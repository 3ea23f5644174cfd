package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type rmPendingCmd struct{}

func (*rmPendingCmd) Name() string     { return "rm-pending" }
func (*rmPendingCmd) Synopsis() string { return "delete all pending transactions" }
func (*rmPendingCmd) Usage() string {
	return `bcs rm-pending

  Deletes every transaction whose status is pending.
`
}

func (*rmPendingCmd) SetFlags(*flag.FlagSet) {}

func (*rmPendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var pendings []budget.Transaction
	for _, tx := range ledger.Transactions() {
		if tx.Status == budget.Pending {
			pendings = append(pendings, tx)
		}
	}
	if len(pendings) == 0 {
		fmt.Println("No pending transactions.")
		return subcommands.ExitSuccess
	}

	if err := ledger.DeletePending(pendings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d pending transaction(s).\n", len(pendings))
	return subcommands.ExitSuccess
}
