package budget

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/budget/date"
)

// this file contains functions to import transactions from third-party JSON
// exports. Every bank has its own shape, so the caller describes where the
// fields live with jsonpath expressions instead of us hardcoding formats.

// ImportMapping tells the importer where to find transaction fields in a
// third-party JSON export. Records selects the list of records in the
// document; the field expressions are evaluated against each record.
type ImportMapping struct {
	Records     string `json:"records"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Validate checks that the required expressions are present.
func (m ImportMapping) Validate() error {
	if m.Records == "" {
		return fmt.Errorf("import mapping: records expression is required")
	}
	if m.Date == "" || m.Amount == "" {
		return fmt.Errorf("import mapping: date and amount expressions are required")
	}
	return nil
}

// ImportTransactions reads a JSON document from r and extracts transaction
// fields per the mapping. A record with a negative amount becomes an
// outgoing transaction of the absolute amount, a non-negative one becomes
// income. Imported transactions start pending; attachment happens when they
// are created through the ledger, not here.
func ImportTransactions(r io.Reader, m ImportMapping) ([]TransactionFields, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse import document: %w", err)
	}

	jval, err := jsonpath.Get(m.Records, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating records path %q: %w", m.Records, err)
	}
	records, ok := jval.([]any)
	if !ok {
		// a single record document is still a valid import.
		records = []any{jval}
	}

	fields := make([]TransactionFields, 0, len(records))
	for i, rec := range records {
		f, err := importRecord(rec, m)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func importRecord(rec any, m ImportMapping) (TransactionFields, error) {
	var f TransactionFields

	day, err := stringAt(rec, m.Date)
	if err != nil {
		return f, err
	}
	f.Date, err = date.Parse(day)
	if err != nil {
		return f, err
	}

	amount, err := floatAt(rec, m.Amount)
	if err != nil {
		return f, err
	}
	f.Type, f.Amount = Income, A(amount)
	if amount < 0 {
		f.Type, f.Amount = Outgoing, A(-amount)
	}
	f.Status = Pending

	if m.Description != "" {
		if f.Description, err = stringAt(rec, m.Description); err != nil {
			return f, err
		}
	}
	if m.Category != "" {
		if f.Category, err = stringAt(rec, m.Category); err != nil {
			return f, err
		}
	}
	return f, nil
}

// stringAt evaluates a jsonpath expression against a record and expects a
// single string.
func stringAt(rec any, path string) (string, error) {
	jval, err := jsonpath.Get(path, rec)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jval = unwrap(jval)
	str, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q: not a string: %v", path, jval)
	}
	return str, nil
}

// floatAt evaluates a jsonpath expression against a record and expects a
// single number.
func floatAt(rec any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, rec)
	if err != nil {
		return 0, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jval = unwrap(jval)
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q: not a number: %v", path, jval)
	}
	return val, nil
}

// because jsonpath is never clear about whether it returns a list of 1
// answer, or a single answer: keep the first one if any.
func unwrap(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}
