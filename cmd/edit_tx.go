package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editTxCmd struct {
	txFlags
	id int
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "overwrite the fields of a transaction" }
func (*editTxCmd) Usage() string {
	return `bcs edit-tx -id <id> -type <income|outgoing> -date <date> -amount <amount> [-status <pending|certain>] [-desc <text>] [-category <label>] [-period <id>]

  Overwrites all fields of the transaction, then re-runs the attachment
  pass: a period whose range contains the new date takes the link over a
  -period given by hand.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	c.set(f)
	f.IntVar(&c.id, "id", 0, "Id of the transaction to edit.")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := ledger.UpdateTx(c.id, fields); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %d\n", c.id)
	return subcommands.ExitSuccess
}
