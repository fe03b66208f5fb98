package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds. A credit is money in, a deduction is money out.
const (
	KindCredit    = "credit"
	KindDeduction = "deduction"
)

// Transaction is a single parsed mobile-money transaction derived from one
// RawMessage. It is created once by the parser and never mutated.
type Transaction struct {
	ID          string          `csv:"ID" json:"id"`
	Date        string          `csv:"Date" json:"date"` // YYYY-MM-DD HH:MM:SS, derived from Timestamp
	Amount      decimal.Decimal `csv:"Amount" json:"amount"`
	Counterpart string          `csv:"Counterpart" json:"counterpart"` // empty when no counterpart could be extracted
	Kind        string          `csv:"Kind" json:"kind"`
	Timestamp   time.Time       `csv:"-" json:"timestamp"`
}

// NewTransaction builds a Transaction and derives the formatted Date field
// from the canonical timestamp.
func NewTransaction(id string, ts time.Time, amount decimal.Decimal, counterpart, kind string) Transaction {
	return Transaction{
		ID:          id,
		Date:        ts.Format("2006-01-02 15:04:05"),
		Amount:      amount,
		Counterpart: counterpart,
		Kind:        kind,
		Timestamp:   ts,
	}
}

// IsCredit returns true if the transaction is money in.
func (t *Transaction) IsCredit() bool {
	return t.Kind == KindCredit
}

// IsDeduction returns true if the transaction is money out.
func (t *Transaction) IsDeduction() bool {
	return t.Kind == KindDeduction
}

// HasCounterpart reports whether a counterpart name was extracted.
func (t *Transaction) HasCounterpart() bool {
	return strings.TrimSpace(t.Counterpart) != ""
}

// ParseAmount converts an extracted amount string like "1,234.56" or "500"
// into a decimal value. Thousands separators are stripped before conversion.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, err
	}
	return dec, nil
}
