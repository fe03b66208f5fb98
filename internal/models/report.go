package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bucket is a calendar-aligned aggregation window with income and expense
// totals. Zero-total buckets are still emitted so chart axes stay stable.
type Bucket struct {
	Label       string          `json:"label" xml:"label,attr"`
	WindowStart time.Time       `json:"window_start" xml:"window_start"`
	WindowEnd   time.Time       `json:"window_end" xml:"window_end"`
	Income      decimal.Decimal `json:"income_total" xml:"income_total"`
	Expense     decimal.Decimal `json:"expense_total" xml:"expense_total"`
}

// Contains reports whether a timestamp falls within the bucket's inclusive
// window.
func (b *Bucket) Contains(ts time.Time) bool {
	return !ts.Before(b.WindowStart) && !ts.After(b.WindowEnd)
}

// Add accumulates a transaction amount into income or expense according to
// the transaction kind. Transactions with an unknown kind contribute to
// neither total.
func (b *Bucket) Add(tx Transaction) {
	switch tx.Kind {
	case KindCredit:
		b.Income = b.Income.Add(tx.Amount)
	case KindDeduction:
		b.Expense = b.Expense.Add(tx.Amount)
	}
}

// CounterpartStat describes the transaction history of one counterpart.
type CounterpartStat struct {
	Name        string          `json:"name" xml:"name"`
	Count       int             `json:"count" xml:"count"`
	TotalAmount decimal.Decimal `json:"total_amount" xml:"total_amount"`
}

// SavingsProgress tracks savings against a monthly target.
type SavingsProgress struct {
	Target               decimal.Decimal `json:"target" xml:"target"`
	TotalSavings         decimal.Decimal `json:"total_savings" xml:"total_savings"`
	Ratio                decimal.Decimal `json:"ratio" xml:"ratio"`
	DailyTarget          decimal.Decimal `json:"daily_target" xml:"daily_target"`
	ExpectedSavingsByNow decimal.Decimal `json:"expected_savings_by_now" xml:"expected_savings_by_now"`
}

// ProgressLabel formats the savings ratio as a percentage, e.g. "25.00%".
func (p *SavingsProgress) ProgressLabel() string {
	return p.Ratio.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// Insights holds the derived single-value metrics for the current calendar
// month. Pointer fields are nil when no qualifying transaction exists.
type Insights struct {
	MostExpensive           *Transaction     `json:"most_expensive" xml:"most_expensive"`
	MostFrequentCounterpart *CounterpartStat `json:"most_frequent_counterpart" xml:"most_frequent_counterpart"`
	Savings                 SavingsProgress  `json:"savings" xml:"savings"`
}

// SkipCounts records how many messages were dropped per rejection reason.
// Skipped messages never fail the run; the counts exist for observability.
type SkipCounts struct {
	UnparseableAmount int `json:"unparseable_amount" xml:"unparseable_amount"`
	Unclassified      int `json:"unclassified" xml:"unclassified"`
	MalformedDate     int `json:"malformed_date" xml:"malformed_date"`
}

// Total returns the total number of skipped messages.
func (s SkipCounts) Total() int {
	return s.UnparseableAmount + s.Unclassified + s.MalformedDate
}

// SummaryReport is the full aggregate output for one computation pass.
type SummaryReport struct {
	GeneratedAt time.Time       `json:"generated_at" xml:"generated_at"`
	Balance     decimal.Decimal `json:"balance" xml:"balance"`
	Today       Bucket          `json:"today" xml:"today"`
	Weekly      []Bucket        `json:"weekly" xml:"weekly>bucket"`
	Monthly     []Bucket        `json:"monthly" xml:"monthly>bucket"`
	Yearly      []Bucket        `json:"yearly" xml:"yearly>bucket"`
	Insights    Insights        `json:"insights" xml:"insights"`
	Skipped     SkipCounts      `json:"skipped" xml:"skipped"`
}
