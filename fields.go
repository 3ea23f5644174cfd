package budget

import (
	"errors"
	"fmt"

	"github.com/etnz/budget/date"
)

// PeriodFields carries the caller-supplied mutable fields of a budget
// period, for create and update operations. The id is never part of it.
type PeriodFields struct {
	Name  string
	Start date.Date
	End   date.Date
	Notes string
}

// Validate checks the fields before they enter the ledger.
func (f PeriodFields) Validate() error {
	var errs error
	if f.Name == "" {
		errs = errors.Join(errs, errors.New("period name is required"))
	}
	if f.Start.IsZero() || f.End.IsZero() {
		errs = errors.Join(errs, errors.New("period start and end dates are required"))
	} else if f.End.Before(f.Start) {
		errs = errors.Join(errs, fmt.Errorf("period end %s is before start %s", f.End, f.Start))
	}
	return errs
}

// apply overwrites all mutable fields of p.
func (f PeriodFields) apply(p *BudgetPeriod) {
	p.Name = f.Name
	p.Start = f.Start
	p.End = f.End
	p.Notes = f.Notes
}

// TransactionFields carries the caller-supplied mutable fields of a
// transaction, for create and update operations. LinkedPeriodID may be set
// explicitly; the attachment pass can still overwrite it when the
// transaction date falls strictly inside a period.
type TransactionFields struct {
	Type           TxType
	Date           date.Date
	Status         TxStatus
	Description    string
	Amount         Amount
	Category       string
	LinkedPeriodID *int
}

// Validate checks the fields before they enter the ledger.
func (f TransactionFields) Validate() error {
	var errs error
	if _, err := ParseTxType(string(f.Type)); err != nil {
		errs = errors.Join(errs, err)
	}
	if _, err := ParseTxStatus(string(f.Status)); err != nil {
		errs = errors.Join(errs, err)
	}
	if f.Date.IsZero() {
		errs = errors.Join(errs, errors.New("transaction date is required"))
	}
	if f.Amount.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("transaction amount %s is negative", f.Amount))
	}
	return errs
}

// apply overwrites all mutable fields of t.
func (f TransactionFields) apply(t *Transaction) {
	t.Type = f.Type
	t.Date = f.Date
	t.Status = f.Status
	t.Description = f.Description
	t.Amount = f.Amount
	t.Category = f.Category
	t.LinkedPeriodID = nil
	if f.LinkedPeriodID != nil {
		id := *f.LinkedPeriodID
		t.LinkedPeriodID = &id
	}
}
