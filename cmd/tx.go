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

type txCmd struct {
	period int
	status string
	typ    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `bcs tx [-period <id>] [-status <pending|certain>] [-type <income|outgoing>]

  Lists transactions in collection order, with optional filters.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.period, "period", 0, "Only transactions linked to this period id.")
	f.StringVar(&c.status, "status", "", "Only transactions with this status.")
	f.StringVar(&c.typ, "type", "", "Only transactions of this type.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var status budget.TxStatus
	if c.status != "" {
		if status, err = budget.ParseTxStatus(c.status); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	var typ budget.TxType
	if c.typ != "" {
		if typ, err = budget.ParseTxType(c.typ); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	var txs []budget.Transaction
	for _, tx := range ledger.Transactions() {
		if c.period != 0 && (tx.LinkedPeriodID == nil || *tx.LinkedPeriodID != c.period) {
			continue
		}
		if status != "" && tx.Status != status {
			continue
		}
		if typ != "" && tx.Type != typ {
			continue
		}
		txs = append(txs, tx)
	}

	printMarkdown(renderer.TransactionsMarkdown(txs, ledger.PeriodName, *currency))
	return subcommands.ExitSuccess
}
