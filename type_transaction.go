package budget

import (
	"fmt"
	"strings"

	"github.com/etnz/budget/date"
)

// TxType classifies a transaction as money coming in or going out.
type TxType string

const (
	Income   TxType = "income"
	Outgoing TxType = "outgoing"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Outgoing:
		return Outgoing, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// TxStatus is the certainty of a transaction. The only defined transition
// is pending to certain; there is no operation going back.
type TxStatus string

const (
	Pending TxStatus = "pending"
	Certain TxStatus = "certain"
)

// ParseTxStatus parses a string into a TxStatus.
func ParseTxStatus(s string) (TxStatus, error) {
	switch TxStatus(strings.ToLower(strings.TrimSpace(s))) {
	case Pending:
		return Pending, nil
	case Certain:
		return Certain, nil
	default:
		return "", fmt.Errorf("unknown transaction status %q", s)
	}
}

// Transaction is a dated income or outgoing movement of money. Its id is
// unique and immutable after creation.
//
// LinkedPeriodID is a weak reference: it may point to a period that no
// longer exists, since deleting a period does not cascade. Resolve it with
// Ledger.PeriodName and treat a miss as "unlinked".
type Transaction struct {
	ID             int       `json:"id"`
	Type           TxType    `json:"type"`
	Date           date.Date `json:"date"`
	Status         TxStatus  `json:"status"`
	Description    string    `json:"description"`
	Amount         Amount    `json:"amount"`
	Category       string    `json:"category"`
	LinkedPeriodID *int      `json:"linked_period_id"`
}

// clone returns a copy of t that shares no mutable state with it.
func (t Transaction) clone() Transaction {
	if t.LinkedPeriodID != nil {
		id := *t.LinkedPeriodID
		t.LinkedPeriodID = &id
	}
	return t
}

func (t Transaction) String() string {
	return fmt.Sprintf("%d %s %s %s %q", t.ID, t.Date, t.Type, t.Amount, t.Description)
}
