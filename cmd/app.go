// Package cmd implements the CLI application to manage a budget.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// Commands is the list of all subcommands, in help order.
// A main package registers each of them on its commander.
var Commands = []subcommands.Command{
	&addPeriodCmd{},
	&editPeriodCmd{},
	&rmPeriodCmd{},
	&periodsCmd{},
	&addTxCmd{},
	&editTxCmd{},
	&rmTxCmd{},
	&txCmd{},
	&certainCmd{},
	&rmPendingCmd{},
	&recalcCmd{},
	&reviewCmd{},
	&importCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var budgetDir = flag.String("budget-dir", defaultString("BUDGET_DIR", "."), "Path to the directory holding periods.json and transactions.json")
var currency = flag.String("currency", defaultString("BUDGET_CURRENCY", "EUR"), "ISO currency code used to display amounts")

func defaultString(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

// OpenLedger opens the ledger on the app budget directory, bootstrapping
// empty collection files on the first run.
func OpenLedger() (*budget.Ledger, error) {
	return budget.NewLedger(budget.NewStore(*budgetDir))
}

// printMarkdown renders markdown to the terminal. When the terminal cannot
// be styled the raw markdown is still perfectly readable, so rendering
// errors fall back to it.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// parseIDs parses a comma-separated list of ids, e.g. "10001,10002".
func parseIDs(list string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no ids given")
	}
	return ids, nil
}
