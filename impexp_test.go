package budget

import (
	"strings"
	"testing"

	"github.com/etnz/budget/date"
)

func TestImportTransactions(t *testing.T) {
	// A typical bank export: a wrapper object with a list of movements,
	// amounts signed from the account's point of view.
	doc := `{
		"account": "main",
		"movements": [
			{"when": "2024-01-15", "value": -42.50, "label": "groceries", "tag": "food"},
			{"when": "2024-01-20", "value": 1200, "label": "salary", "tag": "work"}
		]
	}`
	m := ImportMapping{
		Records:     "$.movements",
		Date:        "$.when",
		Amount:      "$.value",
		Description: "$.label",
		Category:    "$.tag",
	}

	fields, err := ImportTransactions(strings.NewReader(doc), m)
	if err != nil {
		t.Fatalf("ImportTransactions: %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("imported %d records, want 2", len(fields))
	}

	got := fields[0]
	if got.Type != Outgoing || !got.Amount.Equal(A(42.50)) {
		t.Errorf("negative value imported as %s %s, want outgoing 42.50", got.Type, got.Amount)
	}
	if got.Date != date.New(2024, 1, 15) || got.Description != "groceries" || got.Category != "food" {
		t.Errorf("record 0 = %+v", got)
	}
	if got.Status != Pending {
		t.Errorf("imported status = %s, want pending", got.Status)
	}

	got = fields[1]
	if got.Type != Income || !got.Amount.Equal(A(1200)) {
		t.Errorf("positive value imported as %s %s, want income 1200.00", got.Type, got.Amount)
	}
}

func TestImportTransactions_rootArray(t *testing.T) {
	doc := `[{"date": "2024-02-01", "amount": 10}]`
	fields, err := ImportTransactions(strings.NewReader(doc), ImportMapping{
		Records: "$",
		Date:    "$.date",
		Amount:  "$.amount",
	})
	if err != nil {
		t.Fatalf("ImportTransactions: %v", err)
	}
	if len(fields) != 1 || fields[0].Date != date.New(2024, 2, 1) {
		t.Errorf("fields = %+v", fields)
	}
}

func TestImportTransactions_errors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		m    ImportMapping
	}{
		{
			name: "missing mapping",
			doc:  `[]`,
			m:    ImportMapping{Records: "$"},
		},
		{
			name: "not json",
			doc:  `not json`,
			m:    ImportMapping{Records: "$", Date: "$.date", Amount: "$.amount"},
		},
		{
			name: "date is not a string",
			doc:  `[{"date": 20240101, "amount": 1}]`,
			m:    ImportMapping{Records: "$", Date: "$.date", Amount: "$.amount"},
		},
		{
			name: "amount is not a number",
			doc:  `[{"date": "2024-01-01", "amount": "ten"}]`,
			m:    ImportMapping{Records: "$", Date: "$.date", Amount: "$.amount"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportTransactions(strings.NewReader(tc.doc), tc.m); err == nil {
				t.Errorf("ImportTransactions succeeded, want error")
			}
		})
	}
}
