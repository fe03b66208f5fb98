package logging

// Standardized field names for structured logging. These constants keep the
// application's log output consistent and easy to filter.
const (
	FieldFile      = "file_path"
	FieldMessageID = "message_id"
	FieldSender    = "sender"
	FieldKind      = "kind"
	FieldAmount    = "amount"
	FieldReason    = "reason"
	FieldCount     = "count"
	FieldFormat    = "format"
	FieldRule      = "rule"
)
