package budget

import (
	"fmt"

	"github.com/etnz/budget/date"
)

// BudgetPeriod is a named, time-bounded budgeting window. Its id is unique
// and immutable after creation.
type BudgetPeriod struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Start date.Date `json:"start_date"`
	End   date.Date `json:"end_date"`
	Notes string    `json:"notes"`
}

// Contains reports whether the period's open interval strictly contains d.
// Both endpoints are excluded: a transaction dated exactly on the start or
// end date of a period is never considered contained. This is the
// attachment policy shared by every pass and must not be relaxed.
func (p BudgetPeriod) Contains(d date.Date) bool {
	return p.Start.Before(d) && d.Before(p.End)
}

func (p BudgetPeriod) String() string {
	return fmt.Sprintf("%d %q (%s, %s)", p.ID, p.Name, p.Start, p.End)
}
