// Package renderer generates markdown reports from the budget ledger, for
// display in the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/budget"
)

// PeriodNameFunc resolves a period id to its display name. It reports false
// for a dangling or unset reference; renderers then show the raw id.
type PeriodNameFunc func(id int) (string, bool)

// PeriodsMarkdown renders the periods collection as a markdown table, in
// collection order.
func PeriodsMarkdown(periods []budget.BudgetPeriod) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## Budget Periods\n\n")
	if len(periods) == 0 {
		fmt.Fprintf(b, "No budget periods.\n")
		return b.String()
	}
	fmt.Fprintf(b, "| ID | Name | Start | End | Notes |\n")
	fmt.Fprintf(b, "|---:|:---|:---|:---|:---|\n")
	for _, p := range periods {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n", p.ID, p.Name, p.Start, p.End, p.Notes)
	}
	return b.String()
}

// TransactionsMarkdown renders transactions as a markdown table, in
// collection order. Amounts are displayed in the given ISO currency code.
func TransactionsMarkdown(txs []budget.Transaction, name PeriodNameFunc, currency string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintf(b, "No transactions.\n")
		return b.String()
	}
	fmt.Fprintf(b, "| ID | Date | Type | Status | Amount | Description | Category | Period |\n")
	fmt.Fprintf(b, "|---:|:---|:---|:---|---:|:---|:---|:---|\n")
	for _, tx := range txs {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.ID, tx.Date, tx.Type, tx.Status, tx.Amount.Display(currency),
			tx.Description, tx.Category, periodCell(tx.LinkedPeriodID, name))
	}
	return b.String()
}

// periodCell formats the linked-period column. A dangling reference is kept
// visible instead of being hidden: the link is weak and may outlive its
// period.
func periodCell(id *int, name PeriodNameFunc) string {
	if id == nil {
		return ""
	}
	if n, ok := name(*id); ok {
		return n
	}
	return fmt.Sprintf("%d (deleted)", *id)
}

// Review sums up one period's transactions.
type Review struct {
	Period       budget.BudgetPeriod
	Transactions []budget.Transaction // only the ones linked to Period

	Income   budget.Amount // all income, pending included
	Outgoing budget.Amount // all outgoing, pending included
	Pending  budget.Amount // net amount still pending
}

// NewReview computes the review of one period over the full transactions
// collection: only transactions linked to the period count, whatever their
// date, since the link is the authoritative association.
func NewReview(p budget.BudgetPeriod, txs []budget.Transaction) *Review {
	r := &Review{Period: p}
	for _, tx := range txs {
		if tx.LinkedPeriodID == nil || *tx.LinkedPeriodID != p.ID {
			continue
		}
		r.Transactions = append(r.Transactions, tx)
		signed := tx.Amount
		if tx.Type == budget.Outgoing {
			r.Outgoing = r.Outgoing.Add(tx.Amount)
			signed = budget.A(0).Sub(tx.Amount)
		} else {
			r.Income = r.Income.Add(tx.Amount)
		}
		if tx.Status == budget.Pending {
			r.Pending = r.Pending.Add(signed)
		}
	}
	return r
}

// Balance returns income minus outgoing, pending included.
func (r *Review) Balance() budget.Amount { return r.Income.Sub(r.Outgoing) }

// ReviewMarkdown renders a period review as markdown.
func ReviewMarkdown(r *Review, name PeriodNameFunc, currency string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Review of %s\n\n", r.Period.Name)
	fmt.Fprintf(b, "From %s to %s, boundaries excluded.\n\n", r.Period.Start, r.Period.End)
	if r.Period.Notes != "" {
		fmt.Fprintf(b, "> %s\n\n", r.Period.Notes)
	}

	fmt.Fprintf(b, "| | |\n")
	fmt.Fprintf(b, "|:---|---:|\n")
	fmt.Fprintf(b, "| Income | %s |\n", r.Income.Display(currency))
	fmt.Fprintf(b, "| Outgoing | %s |\n", r.Outgoing.Display(currency))
	fmt.Fprintf(b, "| **Balance** | **%s** |\n", r.Balance().Display(currency))
	fmt.Fprintf(b, "| Still pending | %s |\n", r.Pending.Display(currency))
	fmt.Fprintf(b, "\n")

	b.WriteString(TransactionsMarkdown(r.Transactions, name, currency))
	return b.String()
}
