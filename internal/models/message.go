// Package models provides the data structures used throughout the application.
package models

// RawMessage is a single notification message as exported from the device
// inbox. The core treats it as immutable input; it is owned by whatever
// collaborator produced the export.
type RawMessage struct {
	ID     string `csv:"ID" json:"id"`
	Sender string `csv:"Sender" json:"sender"`
	Body   string `csv:"Body" json:"body"`
	// Date holds either epoch milliseconds ("1735800600000") or a
	// locale-formatted string ("1/2/2025, 2:30:00 PM" or "1/2/2025").
	Date string `csv:"Date" json:"date"`
}
