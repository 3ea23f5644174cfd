package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
)

func link(id int) *int { return &id }

func noName(int) (string, bool) { return "", false }

func TestPeriodsMarkdown(t *testing.T) {
	periods := []budget.BudgetPeriod{
		{ID: 10001, Name: "January", Start: date.New(2024, 1, 1), End: date.New(2024, 1, 31), Notes: "tight month"},
	}
	md := PeriodsMarkdown(periods)
	for _, want := range []string{"| 10001 |", "January", "2024-01-01", "2024-01-31", "tight month"} {
		if !strings.Contains(md, want) {
			t.Errorf("PeriodsMarkdown missing %q in:\n%s", want, md)
		}
	}

	if md := PeriodsMarkdown(nil); !strings.Contains(md, "No budget periods.") {
		t.Errorf("empty collection rendering = %q", md)
	}
}

func TestTransactionsMarkdown_periodColumn(t *testing.T) {
	txs := []budget.Transaction{
		{ID: 1, Type: budget.Income, Date: date.New(2024, 1, 15), Status: budget.Pending, Amount: budget.A(10), LinkedPeriodID: link(10001)},
		{ID: 2, Type: budget.Outgoing, Date: date.New(2024, 1, 16), Status: budget.Certain, Amount: budget.A(5), LinkedPeriodID: link(99999)},
		{ID: 3, Type: budget.Outgoing, Date: date.New(2024, 1, 17), Status: budget.Certain, Amount: budget.A(5)},
	}
	name := func(id int) (string, bool) {
		if id == 10001 {
			return "January", true
		}
		return "", false
	}

	md := TransactionsMarkdown(txs, name, "USD")
	if !strings.Contains(md, "| January |") {
		t.Errorf("resolved period name missing in:\n%s", md)
	}
	// A dangling link stays visible: the reference is weak and may outlive
	// its period.
	if !strings.Contains(md, "99999 (deleted)") {
		t.Errorf("dangling link not rendered in:\n%s", md)
	}
	if !strings.Contains(md, "$10.00") {
		t.Errorf("amount not formatted as currency in:\n%s", md)
	}
}

func TestNewReview(t *testing.T) {
	p := budget.BudgetPeriod{ID: 10001, Name: "January", Start: date.New(2024, 1, 1), End: date.New(2024, 1, 31)}
	txs := []budget.Transaction{
		{ID: 1, Type: budget.Income, Status: budget.Certain, Amount: budget.A(1000), LinkedPeriodID: link(10001)},
		{ID: 2, Type: budget.Outgoing, Status: budget.Certain, Amount: budget.A(300), LinkedPeriodID: link(10001)},
		{ID: 3, Type: budget.Outgoing, Status: budget.Pending, Amount: budget.A(50), LinkedPeriodID: link(10001)},
		{ID: 4, Type: budget.Income, Status: budget.Pending, Amount: budget.A(9999)}, // unlinked, ignored
		{ID: 5, Type: budget.Income, Status: budget.Certain, Amount: budget.A(7), LinkedPeriodID: link(20002)},
	}

	r := NewReview(p, txs)
	if len(r.Transactions) != 3 {
		t.Fatalf("review holds %d transactions, want 3", len(r.Transactions))
	}
	if !r.Income.Equal(budget.A(1000)) {
		t.Errorf("Income = %s, want 1000.00", r.Income)
	}
	if !r.Outgoing.Equal(budget.A(350)) {
		t.Errorf("Outgoing = %s, want 350.00", r.Outgoing)
	}
	if !r.Balance().Equal(budget.A(650)) {
		t.Errorf("Balance = %s, want 650.00", r.Balance())
	}
	if !r.Pending.Equal(budget.A(-50)) {
		t.Errorf("Pending = %s, want -50.00", r.Pending)
	}
}

func TestReviewMarkdown(t *testing.T) {
	p := budget.BudgetPeriod{ID: 10001, Name: "January", Start: date.New(2024, 1, 1), End: date.New(2024, 1, 31), Notes: "be careful"}
	txs := []budget.Transaction{
		{ID: 1, Type: budget.Income, Date: date.New(2024, 1, 15), Status: budget.Certain, Amount: budget.A(1000), LinkedPeriodID: link(10001)},
	}
	md := ReviewMarkdown(NewReview(p, txs), noName, "USD")
	for _, want := range []string{"# Review of January", "be careful", "$1,000.00", "Balance"} {
		if !strings.Contains(md, want) {
			t.Errorf("ReviewMarkdown missing %q in:\n%s", want, md)
		}
	}
}
