package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// run parses args and executes one subcommand, like the commander would.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddPeriodThenAddTx(t *testing.T) {
	*budgetDir = t.TempDir()

	if got := run(t, &addPeriodCmd{}, "-name", "March", "-from", "2026-02-28", "-to", "2026-04-01"); got != subcommands.ExitSuccess {
		t.Fatalf("add-period: got exit status %v", got)
	}
	if got := run(t, &addTxCmd{}, "-type", "outgoing", "-date", "2026-03-05", "-amount", "54.30", "-desc", "Groceries"); got != subcommands.ExitSuccess {
		t.Fatalf("add-tx: got exit status %v", got)
	}

	ledger, err := OpenLedger()
	if err != nil {
		t.Fatal(err)
	}
	periods, txs := ledger.Periods(), ledger.Transactions()
	if len(periods) != 1 || len(txs) != 1 {
		t.Fatalf("got %d periods and %d transactions, want 1 and 1", len(periods), len(txs))
	}
	if txs[0].LinkedPeriodID == nil || *txs[0].LinkedPeriodID != periods[0].ID {
		t.Errorf("transaction not linked to the period containing its date: %v", txs[0].LinkedPeriodID)
	}
}

func TestAddPeriod_rejectsBadDates(t *testing.T) {
	*budgetDir = t.TempDir()

	if got := run(t, &addPeriodCmd{}, "-name", "March", "-from", "2026-04-01", "-to", "2026-02-28"); got == subcommands.ExitSuccess {
		t.Error("add-period with end before start: got success, want failure")
	}
	ledger, err := OpenLedger()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(ledger.Periods()); n != 0 {
		t.Errorf("got %d periods persisted after a rejected create, want 0", n)
	}
}

func TestRmTx_unknownIDReported(t *testing.T) {
	*budgetDir = t.TempDir()

	if got := run(t, &addTxCmd{}, "-date", "2026-03-05", "-amount", "10"); got != subcommands.ExitSuccess {
		t.Fatalf("add-tx: got exit status %v", got)
	}
	if got := run(t, &rmTxCmd{}, "-ids", "1,2"); got == subcommands.ExitSuccess {
		t.Error("rm-tx with unknown ids: got success, want failure")
	}
	ledger, err := OpenLedger()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(ledger.Transactions()); n != 1 {
		t.Errorf("got %d transactions after deleting unknown ids, want the original 1", n)
	}
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		list    string
		want    []int
		wantErr bool
	}{
		{list: "10001", want: []int{10001}},
		{list: "10001, 10002", want: []int{10001, 10002}},
		{list: "", wantErr: true},
		{list: "a,b", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseIDs(tt.list)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseIDs(%q): got %v, want error", tt.list, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIDs(%q): %v", tt.list, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseIDs(%q) = %v, want %v", tt.list, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseIDs(%q) = %v, want %v", tt.list, got, tt.want)
			}
		}
	}
}
