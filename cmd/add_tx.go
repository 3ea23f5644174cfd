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

// txFlags holds the flags shared by add-tx and edit-tx.
type txFlags struct {
	typ      string
	day      string
	status   string
	desc     string
	amount   string
	category string
	period   int
}

func (c *txFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "outgoing", "Transaction type: income or outgoing.")
	f.StringVar(&c.day, "date", "", "Date of the transaction (YYYY-MM-DD).")
	f.StringVar(&c.status, "status", "pending", "Transaction status: pending or certain.")
	f.StringVar(&c.desc, "desc", "", "Free-text description.")
	f.StringVar(&c.amount, "amount", "", "Non-negative amount, e.g. 12.50.")
	f.StringVar(&c.category, "category", "", "Free-text category label.")
	f.IntVar(&c.period, "period", 0, "Link to this period id; a matching period's range overrides it.")
}

func (c *txFlags) fields() (budget.TransactionFields, error) {
	var fields budget.TransactionFields
	var err error
	if fields.Type, err = budget.ParseTxType(c.typ); err != nil {
		return fields, err
	}
	if fields.Status, err = budget.ParseTxStatus(c.status); err != nil {
		return fields, err
	}
	if fields.Date, err = date.Parse(c.day); err != nil {
		return fields, fmt.Errorf("invalid -date: %w", err)
	}
	if fields.Amount, err = budget.ParseAmount(c.amount); err != nil {
		return fields, fmt.Errorf("invalid -amount: %w", err)
	}
	fields.Description = c.desc
	fields.Category = c.category
	if c.period != 0 {
		fields.LinkedPeriodID = &c.period
	}
	return fields, nil
}

type addTxCmd struct {
	txFlags
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a new transaction" }
func (*addTxCmd) Usage() string {
	return `bcs add-tx -type <income|outgoing> -date <date> -amount <amount> [-status <pending|certain>] [-desc <text>] [-category <label>] [-period <id>]

  Records a transaction. It is linked to the first budget period whose
  range strictly contains its date, if any.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	tx, err := ledger.CreateTx(fields)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created transaction %s\n", tx)
	return subcommands.ExitSuccess
}
