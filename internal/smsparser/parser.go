package smsparser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"pesatrack/mpesa-csv/internal/dateutils"
	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/models"
	"pesatrack/mpesa-csv/internal/parsererror"
)

// Anchor phrases for the credit counterpart fallback. The offset skips past
// the anchor to where the counterpart text begins.
var creditAnchors = []struct {
	phrase string
	offset int
}{
	{"received from", len("received from")},
	{"You have received", len("You have received") + 1},
}

// Parser turns one raw provider message into a Transaction or a typed
// rejection error.
type Parser struct {
	amountPattern *regexp.Regexp
	rules         []Rule
	logger        logging.Logger
}

// New creates a Parser for the given currency prefix (e.g. "Ksh"). Passing
// no rules selects the built-in rule set; passing a nil logger selects a
// default logrus-backed logger.
func New(currencyPrefix string, rules []Rule, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	// Currency-prefixed numeral: digits with optional thousands separators
	// and an optional 2-decimal fraction.
	amountPattern := regexp.MustCompile(
		regexp.QuoteMeta(currencyPrefix) + `(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)

	return &Parser{
		amountPattern: amountPattern,
		rules:         rules,
		logger:        logger,
	}
}

// FilterProvider keeps only the messages whose sender carries the provider
// identity. Matching is a case-insensitive substring test, mirroring how the
// device inbox labels provider messages.
func FilterProvider(messages []models.RawMessage, sender string) []models.RawMessage {
	needle := strings.ToLower(sender)
	var filtered []models.RawMessage
	for _, msg := range messages {
		if strings.Contains(strings.ToLower(msg.Sender), needle) {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

// Parse classifies a single raw message. It returns one of the typed errors
// from parsererror when the message does not describe a transaction; callers
// recover by skipping the message.
func (p *Parser) Parse(msg models.RawMessage) (models.Transaction, error) {
	amount, ok := p.extractAmount(msg.Body)
	if !ok {
		return models.Transaction{}, &parsererror.UnparseableAmountError{MessageID: msg.ID}
	}

	kind, counterpart, matched := p.classify(msg.Body)
	if !matched {
		return models.Transaction{}, &parsererror.UnclassifiedMessageError{MessageID: msg.ID}
	}

	if kind == models.KindCredit && counterpart == "" {
		counterpart = creditCounterpartFallback(msg.Body)
	}

	ts, err := dateutils.NormalizeDate(msg.Date)
	if err != nil {
		return models.Transaction{}, err
	}

	p.logger.Debug("Parsed transaction",
		logging.Field{Key: logging.FieldMessageID, Value: msg.ID},
		logging.Field{Key: logging.FieldKind, Value: kind},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()})

	return models.NewTransaction(msg.ID, ts, amount, counterpart, kind), nil
}

// extractAmount searches the body for a currency-prefixed numeral. Malformed
// amount text is treated the same as no amount at all.
func (p *Parser) extractAmount(body string) (decimal.Decimal, bool) {
	match := p.amountPattern.FindStringSubmatch(body)
	if match == nil {
		return decimal.Zero, false
	}
	amount, err := models.ParseAmount(match[1])
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// classify applies the ordered rule list; first match wins.
func (p *Parser) classify(body string) (kind, counterpart string, matched bool) {
	for _, rule := range p.rules {
		match := rule.Pattern.FindStringSubmatch(body)
		if match == nil {
			continue
		}
		counterpart = ""
		if len(match) > 1 {
			counterpart = strings.TrimSpace(match[1])
		}
		return rule.Kind, counterpart, true
	}
	return "", "", false
}

// creditCounterpartFallback recovers a counterpart for credit messages whose
// rule captured none. It takes the text after the anchor up to the next
// " on" marker; without that marker the counterpart stays empty. When the
// substring still carries the amount ("Ksh1,000.00 from JANE"), only the
// name after " from " is kept.
func creditCounterpartFallback(body string) string {
	for _, anchor := range creditAnchors {
		idx := strings.Index(body, anchor.phrase)
		if idx < 0 {
			continue
		}
		start := idx + anchor.offset
		if start >= len(body) {
			return ""
		}
		rest := body[start:]
		end := strings.Index(rest, " on")
		if end < 0 {
			return ""
		}
		candidate := strings.TrimSpace(rest[:end])
		if i := strings.LastIndex(candidate, " from "); i >= 0 {
			candidate = strings.TrimSpace(candidate[i+len(" from "):])
		}
		return candidate
	}
	return ""
}
