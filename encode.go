package budget

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// this file handles the durable text form of the two collections: each one
// is a JSON array of flat records, indented to stay human readable and easy
// to diff. Record order is preserved as-is: it is the collection iteration
// order, and the attachment tie-break depends on it.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodePeriods decodes a JSON array of budget periods from r.
func DecodePeriods(r io.Reader) ([]BudgetPeriod, error) {
	periods := make([]BudgetPeriod, 0)
	if err := json.NewDecoder(r).Decode(&periods); err != nil {
		return nil, fmt.Errorf("could not decode periods: %w", err)
	}
	return periods, nil
}

// EncodePeriods encodes periods to w as an indented JSON array.
func EncodePeriods(w io.Writer, periods []BudgetPeriod) error {
	return encodeCollection(w, periods)
}

// DecodeTransactions decodes a JSON array of transactions from r.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	txs := make([]Transaction, 0)
	if err := json.NewDecoder(r).Decode(&txs); err != nil {
		return nil, fmt.Errorf("could not decode transactions: %w", err)
	}
	return txs, nil
}

// EncodeTransactions encodes transactions to w as an indented JSON array.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	return encodeCollection(w, txs)
}

func encodeCollection[T any](w io.Writer, records []T) error {
	if records == nil {
		records = make([]T, 0) // encode as [], never null
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}
