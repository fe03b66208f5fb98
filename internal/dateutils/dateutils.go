// Package dateutils provides date normalization and the calendar window
// arithmetic used by the aggregation engine. All arithmetic is local-calendar
// arithmetic; no timezone conversion is performed.
package dateutils

import (
	"strconv"
	"strings"
	"time"

	"pesatrack/mpesa-csv/internal/parsererror"
)

// NormalizeDate parses a raw date value into a canonical local-time instant.
// Three shapes are accepted:
//   - epoch milliseconds ("1735800600000")
//   - date and 12-hour time ("1/2/2025, 2:30:00 PM")
//   - bare date ("1/2/2025"), interpreted at local midnight
func NormalizeDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &parsererror.MalformedDateError{Value: raw}
	}

	if isAllDigits(raw) {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, &parsererror.MalformedDateError{Value: raw, Err: err}
		}
		return time.UnixMilli(millis), nil
	}

	datePart := raw
	timePart := ""
	if idx := strings.Index(raw, ", "); idx >= 0 {
		datePart = raw[:idx]
		timePart = raw[idx+2:]
	}

	month, day, year, err := splitDatePart(datePart)
	if err != nil {
		return time.Time{}, &parsererror.MalformedDateError{Value: raw, Err: err}
	}

	hours, minutes, seconds := 0, 0, 0
	if timePart != "" {
		hours, minutes, seconds, err = splitTimePart(timePart)
		if err != nil {
			return time.Time{}, &parsererror.MalformedDateError{Value: raw, Err: err}
		}
	}

	return time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, time.Local), nil
}

// splitDatePart parses "M/D/YYYY" into its three numeric components.
func splitDatePart(datePart string) (month, day, year int, err error) {
	fields := strings.Split(datePart, "/")
	if len(fields) != 3 {
		return 0, 0, 0, strconv.ErrSyntax
	}
	nums := make([]int, 3)
	for i, field := range fields {
		n, convErr := strconv.Atoi(strings.TrimSpace(field))
		if convErr != nil {
			return 0, 0, 0, convErr
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// splitTimePart parses "h:m:s AM|PM" applying 12-hour clock adjustment.
// A missing AM/PM marker leaves the hour untouched.
func splitTimePart(timePart string) (hours, minutes, seconds int, err error) {
	clock := timePart
	period := ""
	if idx := strings.Index(timePart, " "); idx >= 0 {
		clock = timePart[:idx]
		period = strings.TrimSpace(timePart[idx+1:])
	}

	fields := strings.Split(clock, ":")
	if len(fields) != 3 {
		return 0, 0, 0, strconv.ErrSyntax
	}
	nums := make([]int, 3)
	for i, field := range fields {
		n, convErr := strconv.Atoi(strings.TrimSpace(field))
		if convErr != nil {
			return 0, 0, 0, convErr
		}
		nums[i] = n
	}
	hours, minutes, seconds = nums[0], nums[1], nums[2]

	switch strings.ToLower(period) {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	return hours, minutes, seconds, nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
