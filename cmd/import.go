package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type importCmd struct {
	file    string
	records string
	day     string
	amount  string
	desc    string
	cat     string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSON export" }
func (*importCmd) Usage() string {
	return `bcs import -file <export.json> -records <path> -date <path> -amount <path> [-description <path>] [-category <path>]

  Imports transactions from a bank's JSON export. Paths are jsonpath
  expressions; -records selects the list of records in the document,
  the others are evaluated against each record. Imported transactions
  start pending and are attached to periods like hand-entered ones.

  Example, for an export shaped {"movements": [{"day":..., "value":..., "label":...}]}:

      bcs import -file export.json -records '$.movements' -date '$.day' -amount '$.value' -description '$.label'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON export file to import.")
	f.StringVar(&c.records, "records", "$", "Jsonpath to the list of records.")
	f.StringVar(&c.day, "date", "", "Jsonpath to the record date.")
	f.StringVar(&c.amount, "amount", "", "Jsonpath to the record amount, negative for outgoings.")
	f.StringVar(&c.desc, "description", "", "Jsonpath to the record description.")
	f.StringVar(&c.cat, "category", "", "Jsonpath to the record category.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "missing required flag -file")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	mapping := budget.ImportMapping{
		Records:     c.records,
		Date:        c.day,
		Amount:      c.amount,
		Description: c.desc,
		Category:    c.cat,
	}
	fields, err := budget.ImportTransactions(in, mapping)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for i, fields := range fields {
		if _, err := ledger.CreateTx(fields); err != nil {
			fmt.Fprintf(os.Stderr, "record %d: %v\n", i, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Imported %d transaction(s) from %s.\n", len(fields), c.file)
	return subcommands.ExitSuccess
}
