// Package balance extracts the running account balance from recent provider
// messages.
package balance

import (
	"regexp"

	"github.com/shopspring/decimal"

	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/models"
)

// recentWindow is how many of the most recent messages are inspected for a
// balance figure. The input is assumed newest-first; messages are not
// re-sorted by parsed date.
const recentWindow = 2

// Extractor scans a small window of recent provider messages for an embedded
// balance phrase.
type Extractor struct {
	pattern *regexp.Regexp
	logger  logging.Logger
}

// NewExtractor creates an Extractor for the given currency prefix.
func NewExtractor(currencyPrefix string, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Extractor{
		pattern: regexp.MustCompile(
			`(?i)balance is ` + regexp.QuoteMeta(currencyPrefix) + `([0-9,]+(?:\.[0-9]{2})?)`),
		logger: logger,
	}
}

// Extract returns the balance from the first of the two most recent messages
// containing the balance phrase. When neither contains it, the balance is
// reported as zero. Callers must treat zero as "no balance could be
// determined", not as a verified zero balance.
func (e *Extractor) Extract(messages []models.RawMessage) decimal.Decimal {
	limit := len(messages)
	if limit > recentWindow {
		limit = recentWindow
	}

	for _, msg := range messages[:limit] {
		match := e.pattern.FindStringSubmatch(msg.Body)
		if match == nil {
			continue
		}
		amount, err := models.ParseAmount(match[1])
		if err != nil {
			e.logger.WithError(err).Warn("Balance figure did not parse, ignoring",
				logging.Field{Key: logging.FieldMessageID, Value: msg.ID})
			continue
		}
		e.logger.Debug("Extracted balance",
			logging.Field{Key: logging.FieldMessageID, Value: msg.ID},
			logging.Field{Key: logging.FieldAmount, Value: amount.String()})
		return amount
	}

	e.logger.Debug("No balance phrase found in recent messages",
		logging.Field{Key: logging.FieldCount, Value: limit})
	return decimal.Zero
}
