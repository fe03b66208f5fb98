// Package ledger is the public entry point of the computational core. It
// turns one consistent snapshot of raw provider messages into a structured
// transaction ledger, a balance, calendar-aligned aggregates, and derived
// insights.
//
// The computation is a pure, synchronous function of its inputs: it holds no
// internal state, runs in full on every invocation, and produces identical
// output for identical input (idempotent). Callers must hand it a single
// consistent snapshot per run; there is nothing to lock internally.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pesatrack/mpesa-csv/internal/aggregator"
	"pesatrack/mpesa-csv/internal/balance"
	"pesatrack/mpesa-csv/internal/insights"
	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/models"
	"pesatrack/mpesa-csv/internal/parsererror"
	"pesatrack/mpesa-csv/internal/smsparser"
)

// Options controls one computation pass. The zero value selects sensible
// defaults for every field.
type Options struct {
	// ProviderSender filters messages to the expected provider identity
	// (case-insensitive substring). Defaults to "MPESA".
	ProviderSender string
	// CurrencyPrefix is the currency marker preceding amounts. Defaults to
	// "Ksh".
	CurrencyPrefix string
	// Rules overrides the built-in classification rules.
	Rules []smsparser.Rule
	// PeriodDays is the nominal period for the expected-savings projection.
	PeriodDays int
	// Now fixes the reference instant; the zero value means wall-clock time.
	// Tests override it for deterministic output.
	Now time.Time
	// Logger receives per-message diagnostics. Defaults to a logrus-backed
	// logger.
	Logger logging.Logger
}

// Result is the full structured output of one computation pass. It is
// recomputed from scratch on every run and safely discarded afterwards.
type Result struct {
	Transactions      []models.Transaction
	TodayTransactions []models.Transaction
	Balance           decimal.Decimal
	Today             models.Bucket
	Weekly            []models.Bucket
	Monthly           []models.Bucket
	Yearly            []models.Bucket
	Insights          models.Insights
	Skipped           models.SkipCounts
}

// Summary assembles the report form of the result.
func (r *Result) Summary(now time.Time) *models.SummaryReport {
	return &models.SummaryReport{
		GeneratedAt: now,
		Balance:     r.Balance,
		Today:       r.Today,
		Weekly:      r.Weekly,
		Monthly:     r.Monthly,
		Yearly:      r.Yearly,
		Insights:    r.Insights,
		Skipped:     r.Skipped,
	}
}

// Compute runs the full pipeline over one message snapshot. The only error
// it returns is an invalid savings target; every per-message failure is
// recovered locally by skipping the message and counting it in
// Result.Skipped.
func Compute(messages []models.RawMessage, target decimal.Decimal, opts Options) (*Result, error) {
	opts = withDefaults(opts)
	log := opts.Logger

	provider := smsparser.FilterProvider(messages, opts.ProviderSender)
	log.Info("Processing message snapshot",
		logging.Field{Key: logging.FieldCount, Value: len(provider)},
		logging.Field{Key: logging.FieldSender, Value: opts.ProviderSender})

	parser := smsparser.New(opts.CurrencyPrefix, opts.Rules, log)

	result := &Result{}
	for _, msg := range provider {
		tx, err := parser.Parse(msg)
		if err != nil {
			result.Skipped = countSkip(result.Skipped, err)
			log.WithError(err).Debug("Skipping message",
				logging.Field{Key: logging.FieldMessageID, Value: msg.ID})
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	extractor := balance.NewExtractor(opts.CurrencyPrefix, log)
	result.Balance = extractor.Extract(provider)

	now := opts.Now
	result.Today = aggregator.Today(result.Transactions, now)
	result.Weekly = aggregator.Weekly(result.Transactions, now)
	result.Monthly = aggregator.Monthly(result.Transactions, now)
	result.Yearly = aggregator.Yearly(result.Transactions, now)

	for _, tx := range result.Transactions {
		if result.Today.Contains(tx.Timestamp) {
			result.TodayTransactions = append(result.TodayTransactions, tx)
		}
	}

	savings, err := insights.Savings(result.Transactions, target, opts.PeriodDays, now)
	if err != nil {
		return nil, err
	}
	result.Insights = models.Insights{
		MostExpensive:           insights.MostExpensive(result.Transactions, now),
		MostFrequentCounterpart: insights.MostFrequentCounterpart(result.Transactions, now),
		Savings:                 savings,
	}

	log.Info("Computation pass complete",
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)},
		logging.Field{Key: "skipped", Value: result.Skipped.Total()})
	return result, nil
}

func withDefaults(opts Options) Options {
	if opts.ProviderSender == "" {
		opts.ProviderSender = "MPESA"
	}
	if opts.CurrencyPrefix == "" {
		opts.CurrencyPrefix = "Ksh"
	}
	if opts.PeriodDays < 1 {
		opts.PeriodDays = insights.DefaultPeriodDays
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogrusAdapter("info", "text")
	}
	return opts
}

func countSkip(counts models.SkipCounts, err error) models.SkipCounts {
	var amountErr *parsererror.UnparseableAmountError
	var classErr *parsererror.UnclassifiedMessageError
	var dateErr *parsererror.MalformedDateError

	switch {
	case errors.As(err, &amountErr):
		counts.UnparseableAmount++
	case errors.As(err, &classErr):
		counts.Unclassified++
	case errors.As(err, &dateErr):
		counts.MalformedDate++
	}
	return counts
}
