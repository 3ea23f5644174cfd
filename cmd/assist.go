package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budget/assist"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI budgeting advisor" }
func (*assistCmd) Usage() string {
	return `bcs assist [<initial question>]

  Starts an interactive session with the AI budgeting advisor. The
  advisor sees the current periods and transactions and can, among
  other things, suggest categories for the uncategorized ones.
  Requires Gemini credentials in the environment.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	content := renderer.PeriodsMarkdown(ledger.Periods()) + "\n" +
		renderer.TransactionsMarkdown(ledger.Transactions(), ledger.PeriodName, *currency)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := assist.New(os.Stdout, os.Stdin)
	if err := a.Start(ctx, client, content); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed to start:", err)
		return subcommands.ExitFailure
	}
	if err := a.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
