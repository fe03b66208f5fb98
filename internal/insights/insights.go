// Package insights computes derived single-value metrics over the current
// calendar month of the transaction set.
package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"pesatrack/mpesa-csv/internal/dateutils"
	"pesatrack/mpesa-csv/internal/models"
	"pesatrack/mpesa-csv/internal/parsererror"
)

// DefaultPeriodDays is the nominal period length used for the
// expected-savings projection when none is configured. It is deliberately
// not the actual number of days in the current month.
const DefaultPeriodDays = 30

// MostExpensive returns the deduction with the strictly greatest amount in
// the calendar month of the reference instant, or nil when the month has no
// deductions. The first occurrence wins on ties.
func MostExpensive(transactions []models.Transaction, now time.Time) *models.Transaction {
	var max *models.Transaction
	maxAmount := decimal.Zero

	for i := range transactions {
		tx := &transactions[i]
		if !tx.IsDeduction() || !dateutils.SameMonth(tx.Timestamp, now) {
			continue
		}
		if tx.Amount.GreaterThan(maxAmount) {
			maxAmount = tx.Amount
			max = tx
		}
	}
	return max
}

// MostFrequentCounterpart returns the counterpart appearing in the greatest
// number of deduction transactions in the current calendar month, together
// with the total amount of those transactions. Transactions without a
// counterpart are excluded from the tally (but still count toward sums
// elsewhere). On a tie, the first counterpart to reach the maximum count in
// input order wins. Returns nil when no counterpart qualifies.
func MostFrequentCounterpart(transactions []models.Transaction, now time.Time) *models.CounterpartStat {
	counts := make(map[string]int)
	totals := make(map[string]decimal.Decimal)

	best := ""
	bestCount := 0

	for _, tx := range transactions {
		if !tx.IsDeduction() || !dateutils.SameMonth(tx.Timestamp, now) || !tx.HasCounterpart() {
			continue
		}
		counts[tx.Counterpart]++
		totals[tx.Counterpart] = totals[tx.Counterpart].Add(tx.Amount)

		if counts[tx.Counterpart] > bestCount {
			bestCount = counts[tx.Counterpart]
			best = tx.Counterpart
		}
	}

	if best == "" {
		return nil
	}
	return &models.CounterpartStat{
		Name:        best,
		Count:       bestCount,
		TotalAmount: totals[best],
	}
}

// Savings computes savings-target progress for the calendar month of the
// reference instant. Total savings is the sum of credit amounts in the
// month; the ratio is capped at 1 and never raises on a zero target. A
// negative target is a configuration error and the only failure this package
// propagates.
func Savings(transactions []models.Transaction, target decimal.Decimal, periodDays int, now time.Time) (models.SavingsProgress, error) {
	if target.IsNegative() {
		return models.SavingsProgress{}, &parsererror.InvalidTargetError{
			Target: target.String(),
			Reason: "must not be negative",
		}
	}
	if periodDays < 1 {
		periodDays = DefaultPeriodDays
	}

	totalSavings := decimal.Zero
	for _, tx := range transactions {
		if tx.IsCredit() && dateutils.SameMonth(tx.Timestamp, now) {
			totalSavings = totalSavings.Add(tx.Amount)
		}
	}

	ratio := decimal.Zero
	if target.IsPositive() {
		ratio = totalSavings.DivRound(target, 8)
		if ratio.GreaterThan(decimal.NewFromInt(1)) {
			ratio = decimal.NewFromInt(1)
		}
	}

	days := decimal.NewFromInt(int64(periodDays))
	dailyTarget := target.DivRound(days, 8)
	expected := dailyTarget.Mul(decimal.NewFromInt(int64(now.Day())))

	return models.SavingsProgress{
		Target:               target,
		TotalSavings:         totalSavings,
		Ratio:                ratio,
		DailyTarget:          dailyTarget,
		ExpectedSavingsByNow: expected,
	}, nil
}
