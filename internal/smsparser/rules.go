// Package smsparser classifies raw provider messages into typed
// transactions. It is a pure function of one message: no I/O, no state.
package smsparser

import (
	"regexp"

	"pesatrack/mpesa-csv/internal/models"
)

// Rule associates a transaction kind with a phrase-anchored pattern. Rules
// are evaluated in a fixed priority order and the first match wins, so more
// specific phrases must precede generic ones that could be substrings of
// another pattern.
type Rule struct {
	Kind    string
	Pattern *regexp.Regexp
}

// DefaultRules returns the built-in classification rules in priority order.
// A rule whose pattern has a capture group extracts the counterpart name; a
// rule without one classifies the kind only and leaves the counterpart to
// the credit fallback.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: models.KindDeduction, Pattern: regexp.MustCompile(`sent to (.+?) on`)},
		{Kind: models.KindDeduction, Pattern: regexp.MustCompile(`paid to (.+?) on`)},
		{Kind: models.KindCredit, Pattern: regexp.MustCompile(`received from (.+?) on`)},
		{Kind: models.KindCredit, Pattern: regexp.MustCompile(`You have received`)},
		{Kind: models.KindDeduction, Pattern: regexp.MustCompile(`You bought (.+?) on`)},
		{Kind: models.KindDeduction, Pattern: regexp.MustCompile(`(?i)withdraw .+? from (.+?) on`)},
		{Kind: models.KindCredit, Pattern: regexp.MustCompile(`(?i)has been credited`)},
	}
}
