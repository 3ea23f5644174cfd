package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Install it with
// COMP_INSTALL=1 bcs.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"budget-dir": predict.Dirs("*"),
		"currency":   predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
	},
	Sub: map[string]*complete.Command{
		"add-period":  {Flags: map[string]complete.Predictor{"name": predict.Something, "from": predict.Something, "to": predict.Something, "notes": predict.Something}},
		"edit-period": {Flags: map[string]complete.Predictor{"id": predict.Something, "name": predict.Something, "from": predict.Something, "to": predict.Something, "notes": predict.Something}},
		"rm-period":   {Flags: map[string]complete.Predictor{"id": predict.Something}},
		"periods":     {},
		"add-tx":      {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "outgoing"}, "date": predict.Something, "status": predict.Set{"pending", "certain"}, "desc": predict.Something, "amount": predict.Something, "category": predict.Something, "period": predict.Something}},
		"edit-tx":     {Flags: map[string]complete.Predictor{"id": predict.Something, "type": predict.Set{"income", "outgoing"}, "date": predict.Something, "status": predict.Set{"pending", "certain"}, "desc": predict.Something, "amount": predict.Something, "category": predict.Something, "period": predict.Something}},
		"rm-tx":       {Flags: map[string]complete.Predictor{"ids": predict.Something}},
		"tx":          {Flags: map[string]complete.Predictor{"period": predict.Something, "status": predict.Set{"pending", "certain"}, "type": predict.Set{"income", "outgoing"}}},
		"certain":     {Flags: map[string]complete.Predictor{"ids": predict.Something}},
		"rm-pending":  {},
		"recalc":      {},
		"review":      {Flags: map[string]complete.Predictor{"id": predict.Something}},
		"import":      {Flags: map[string]complete.Predictor{"file": predict.Files("*.json"), "records": predict.Something, "date": predict.Something, "amount": predict.Something, "description": predict.Something, "category": predict.Something}},
		"assist":      {},
		"topic":       {Args: predict.Set{"readme", "attachment", "storage", "*"}},
	},
}

func main() {
	// Gemini credentials and budget settings may live in a .env file.
	_ = godotenv.Load()

	completion.Complete("bcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
