// Package parsererror defines the typed errors produced while turning raw
// messages into transactions. All of them are recoverable per message: the
// offending message is skipped, never the whole run.
package parsererror

import "fmt"

// UnparseableAmountError indicates that no currency-amount pattern matched
// the message body.
type UnparseableAmountError struct {
	MessageID string
}

func (e *UnparseableAmountError) Error() string {
	return fmt.Sprintf("message %s: no currency amount found in body", e.MessageID)
}

// UnclassifiedMessageError indicates that no classification rule matched the
// message body. A bare amount with no recognizable action is not a
// transaction.
type UnclassifiedMessageError struct {
	MessageID string
}

func (e *UnclassifiedMessageError) Error() string {
	return fmt.Sprintf("message %s: no transaction pattern matched", e.MessageID)
}

// MalformedDateError indicates a date value that conforms to none of the
// accepted shapes (epoch milliseconds, "M/D/YYYY, h:m:s AM/PM", "M/D/YYYY").
type MalformedDateError struct {
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed date '%s': %v", e.Value, e.Err)
	}
	return fmt.Sprintf("malformed date '%s'", e.Value)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}

// InvalidTargetError indicates an invalid savings target configuration. This
// is the only core-level failure that propagates to the caller.
type InvalidTargetError struct {
	Target string
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid savings target '%s': %s", e.Target, e.Reason)
}
