// Package aggregator buckets parsed transactions into calendar-aligned
// windows and computes per-bucket income and expense totals. All functions
// are pure: window generation depends only on the reference instant, and
// buckets with no contributing transactions still appear with zero totals.
package aggregator

import (
	"fmt"
	"time"

	"pesatrack/mpesa-csv/internal/dateutils"
	"pesatrack/mpesa-csv/internal/models"
)

// Two-letter weekday labels, Sunday first, matching the weekly chart axis.
var weekdayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Today returns the single bucket covering the calendar day of the reference
// instant, with income and expense totals of all transactions inside it.
func Today(transactions []models.Transaction, now time.Time) models.Bucket {
	window := dateutils.DayWindow(now)
	bucket := models.Bucket{
		Label:       "Today",
		WindowStart: window.Start,
		WindowEnd:   window.End,
	}
	for _, tx := range transactions {
		if bucket.Contains(tx.Timestamp) {
			bucket.Add(tx)
		}
	}
	return bucket
}

// Weekly returns the seven day buckets (Sunday through Saturday) of the week
// containing the reference instant. A transaction lands in the bucket of its
// local weekday, but only if it is on or after the start of the current
// week; older transactions are excluded from this view.
func Weekly(transactions []models.Transaction, now time.Time) []models.Bucket {
	weekStart := dateutils.StartOfWeek(now)
	windows := dateutils.DayWindowsForWeek(now)

	buckets := make([]models.Bucket, 7)
	for i, window := range windows {
		buckets[i] = models.Bucket{
			Label:       weekdayLabels[i],
			WindowStart: window.Start,
			WindowEnd:   window.End,
		}
	}

	for _, tx := range transactions {
		if tx.Timestamp.Before(weekStart) {
			continue
		}
		buckets[int(tx.Timestamp.Weekday())].Add(tx)
	}
	return buckets
}

// Monthly returns one bucket per Sunday-aligned week intersecting the month
// of the reference instant. The first bucket may start before the 1st and
// the last may extend past the final day of the month; a transaction
// contributes to the bucket whose seven-day window contains it.
func Monthly(transactions []models.Transaction, now time.Time) []models.Bucket {
	windows := dateutils.WeekWindowsForMonth(now)

	buckets := make([]models.Bucket, len(windows))
	for i, window := range windows {
		buckets[i] = models.Bucket{
			Label:       weekLabel(i),
			WindowStart: window.Start,
			WindowEnd:   window.End,
		}
	}

	for _, tx := range transactions {
		for i := range buckets {
			if buckets[i].Contains(tx.Timestamp) {
				buckets[i].Add(tx)
				break
			}
		}
	}
	return buckets
}

// Yearly returns the twelve calendar month buckets of the year containing
// the reference instant.
func Yearly(transactions []models.Transaction, now time.Time) []models.Bucket {
	windows := dateutils.MonthWindowsForYear(now)

	buckets := make([]models.Bucket, len(windows))
	for i, window := range windows {
		buckets[i] = models.Bucket{
			Label:       window.Start.Format("Jan"),
			WindowStart: window.Start,
			WindowEnd:   window.End,
		}
	}

	for _, tx := range transactions {
		for i := range buckets {
			if buckets[i].Contains(tx.Timestamp) {
				buckets[i].Add(tx)
				break
			}
		}
	}
	return buckets
}

func weekLabel(index int) string {
	return fmt.Sprintf("W%d", index+1)
}
