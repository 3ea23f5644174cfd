package budget

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Ledger is the in-memory authoritative store of budget periods and
// transactions. Every mutating operation persists the full state through
// the store before returning; if persistence fails the operation reports an
// error wrapping ErrPersistence and the in-memory mutation is NOT rolled
// back. Callers must then reload from storage before trusting in-memory
// data.
//
// The ledger is single-caller, single-process: no operation may run
// concurrently with another.
type Ledger struct {
	periods []BudgetPeriod
	txs     []Transaction
	store   *Store
}

// NewLedger bootstraps the store (initializing missing collection files as
// empty) and loads both collections into a ready-to-use ledger.
func NewLedger(store *Store) (*Ledger, error) {
	if err := store.Bootstrap(); err != nil {
		return nil, err
	}
	periods, err := store.LoadPeriods()
	if err != nil {
		return nil, err
	}
	txs, err := store.LoadTransactions()
	if err != nil {
		return nil, err
	}
	return &Ledger{periods: periods, txs: txs, store: store}, nil
}

// save flushes the full state to the store. It is called by every mutating
// operation, after the mutation.
func (l *Ledger) save() error {
	if err := l.store.SaveAll(l.periods, l.txs); err != nil {
		return fmt.Errorf("in-memory state mutated but not persisted: %w", errors.Join(ErrPersistence, err))
	}
	return nil
}

// Periods returns a snapshot of the periods collection, in its stable
// iteration order. Mutating the snapshot does not affect the ledger.
func (l *Ledger) Periods() []BudgetPeriod { return slices.Clone(l.periods) }

// Transactions returns a snapshot of the transactions collection, in its
// stable iteration order. Mutating the snapshot does not affect the ledger.
func (l *Ledger) Transactions() []Transaction {
	txs := make([]Transaction, 0, len(l.txs))
	for _, t := range l.txs {
		txs = append(txs, t.clone())
	}
	return txs
}

// PeriodName resolves a period id to its display name. It reports false for
// a dangling or unset reference.
func (l *Ledger) PeriodName(id int) (string, bool) {
	for _, p := range l.periods {
		if p.ID == id {
			return p.Name, true
		}
	}
	return "", false
}

// newID returns a fresh id, distinct from every period and transaction id.
// Ids are drawn from one shared space for both collections, so an id never
// means two different records whatever the collection.
func (l *Ledger) newID() int {
	for {
		id := 10000 + rand.IntN(90000)
		if !l.hasID(id) {
			return id
		}
	}
}

func (l *Ledger) hasID(id int) bool {
	for _, p := range l.periods {
		if p.ID == id {
			return true
		}
	}
	for _, t := range l.txs {
		if t.ID == id {
			return true
		}
	}
	return false
}

// CreatePeriod appends a new period built from fields, links every
// transaction falling strictly inside its range to it, and persists.
func (l *Ledger) CreatePeriod(fields PeriodFields) (BudgetPeriod, error) {
	if err := fields.Validate(); err != nil {
		return BudgetPeriod{}, fmt.Errorf("invalid period: %w", err)
	}
	p := BudgetPeriod{ID: l.newID()}
	fields.apply(&p)
	l.periods = append(l.periods, p)
	l.attachToPeriod(p)
	return p, l.save()
}

// UpdatePeriod overwrites all mutable fields of the period with the given
// id, re-links transactions against the new date range, and persists. It
// reports ErrNotFound when no period has this id.
func (l *Ledger) UpdatePeriod(id int, fields PeriodFields) error {
	if err := fields.Validate(); err != nil {
		return fmt.Errorf("invalid period: %w", err)
	}
	i := slices.IndexFunc(l.periods, func(p BudgetPeriod) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("period %d: %w", id, ErrNotFound)
	}
	fields.apply(&l.periods[i])
	l.attachToPeriod(l.periods[i])
	return l.save()
}

// DeletePeriod removes the period with the given id and persists. It does
// NOT unlink transactions pointing to it: their linked_period_id dangles
// until a recalculation pass runs or they are edited. It reports
// ErrNotFound when no period has this id.
func (l *Ledger) DeletePeriod(id int) error {
	i := slices.IndexFunc(l.periods, func(p BudgetPeriod) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("period %d: %w", id, ErrNotFound)
	}
	l.periods = slices.Delete(l.periods, i, i+1)
	return l.save()
}

// CreateTx appends a new transaction built from fields and persists. The
// attachment pass may overwrite a caller-provided link: the first period in
// collection order strictly containing the transaction date wins; when none
// does, the caller-provided link (or none) stands.
func (l *Ledger) CreateTx(fields TransactionFields) (Transaction, error) {
	if err := fields.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	t := Transaction{ID: l.newID()}
	fields.apply(&t)
	l.attach(&t)
	l.txs = append(l.txs, t)
	return t.clone(), l.save()
}

// UpdateTx overwrites all mutable fields of the transaction with the given
// id, re-runs the attachment pass, and persists. It reports ErrNotFound
// when no transaction has this id.
func (l *Ledger) UpdateTx(id int, fields TransactionFields) error {
	if err := fields.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	i := slices.IndexFunc(l.txs, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	fields.apply(&l.txs[i])
	l.attach(&l.txs[i])
	return l.save()
}

// DeleteTx removes every transaction whose id is in ids and persists. Ids
// with no matching transaction do not abort the batch: the found ones are
// still removed, and the missing ones are reported together in the returned
// error, each wrapping ErrNotFound.
func (l *Ledger) DeleteTx(ids ...int) error {
	var misses error
	for _, id := range ids {
		i := slices.IndexFunc(l.txs, func(t Transaction) bool { return t.ID == id })
		if i < 0 {
			misses = errors.Join(misses, fmt.Errorf("transaction %d: %w", id, ErrNotFound))
			continue
		}
		l.txs = slices.Delete(l.txs, i, i+1)
	}
	if err := l.save(); err != nil {
		return errors.Join(misses, err)
	}
	return misses
}

// MarkCertain sets the status of every given transaction to certain and
// persists once for the whole batch. There is no operation going back from
// certain to pending. Missing ids are reported together in the returned
// error, each wrapping ErrNotFound; found ones are still updated and
// persisted.
func (l *Ledger) MarkCertain(ids ...int) error {
	var misses error
	for _, id := range ids {
		i := slices.IndexFunc(l.txs, func(t Transaction) bool { return t.ID == id })
		if i < 0 {
			misses = errors.Join(misses, fmt.Errorf("transaction %d: %w", id, ErrNotFound))
			continue
		}
		l.txs[i].Status = Certain
	}
	if err := l.save(); err != nil {
		return errors.Join(misses, err)
	}
	return misses
}

// DeletePending deletes the given transactions by id. It is a convenience
// over DeleteTx and does not re-verify that they are still pending.
func (l *Ledger) DeletePending(pendings []Transaction) error {
	ids := make([]int, 0, len(pendings))
	for _, t := range pendings {
		ids = append(ids, t.ID)
	}
	return l.DeleteTx(ids...)
}

// RecalculateAttachments resets every transaction's link and reassigns it
// to the first period in collection order strictly containing its date;
// transactions matching no period end up unlinked. Running it twice in a
// row yields the same assignments. Persists.
func (l *Ledger) RecalculateAttachments() error {
	for i := range l.txs {
		l.txs[i].LinkedPeriodID = nil
		l.attach(&l.txs[i])
	}
	return l.save()
}

// attach runs the transaction-scoped attachment pass: the first period in
// collection order strictly containing the transaction date wins. When no
// period qualifies the existing link is left untouched.
func (l *Ledger) attach(t *Transaction) {
	for _, p := range l.periods {
		if p.Contains(t.Date) {
			id := p.ID
			t.LinkedPeriodID = &id
			return
		}
	}
}

// attachToPeriod runs the period-scoped attachment pass: every transaction
// falling strictly inside the period's range is linked to THIS period,
// overwriting any existing link, with no competition against other periods
// it might also match.
func (l *Ledger) attachToPeriod(p BudgetPeriod) {
	for i := range l.txs {
		if p.Contains(l.txs[i].Date) {
			id := p.ID
			l.txs[i].LinkedPeriodID = &id
		}
	}
}
