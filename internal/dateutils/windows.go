package dateutils

import "time"

// Window is one calendar-aligned aggregation window. Both bounds are
// inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls within the window, bounds inclusive.
func (w Window) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && !ts.After(w.End)
}

// StartOfDay returns local midnight of the given instant.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last represented instant of the given day
// (midnight + 24h - 1ms).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// StartOfWeek returns local midnight of the Sunday starting the week that
// contains the given instant. Weeks start on Sunday in all views.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// StartOfMonth returns local midnight of the first day of the month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns local midnight of the last day of the month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DayWindow returns the single-day window containing the given instant.
func DayWindow(t time.Time) Window {
	return Window{Start: StartOfDay(t), End: EndOfDay(t)}
}

// DayWindowsForWeek returns the seven day windows (Sunday through Saturday)
// of the week containing the given instant. Always seven windows, so callers
// get dense output even with no data.
func DayWindowsForWeek(t time.Time) []Window {
	weekStart := StartOfWeek(t)
	windows := make([]Window, 7)
	for i := 0; i < 7; i++ {
		dayStart := weekStart.AddDate(0, 0, i)
		windows[i] = Window{Start: dayStart, End: EndOfDay(dayStart)}
	}
	return windows
}

// WeekWindowsForMonth returns the Sunday-aligned seven-day windows that
// intersect the month containing the given instant. The first window may
// start before the 1st and the last may extend past the final day of the
// month.
func WeekWindowsForMonth(t time.Time) []Window {
	lastDay := EndOfMonth(t)

	var windows []Window
	for weekStart := StartOfWeek(StartOfMonth(t)); !weekStart.After(lastDay); weekStart = weekStart.AddDate(0, 0, 7) {
		windows = append(windows, Window{
			Start: weekStart,
			End:   weekStart.AddDate(0, 0, 7).Add(-time.Millisecond),
		})
	}
	return windows
}

// MonthWindowsForYear returns the twelve calendar month windows of the year
// containing the given instant.
func MonthWindowsForYear(t time.Time) []Window {
	windows := make([]Window, 12)
	for i := 0; i < 12; i++ {
		monthStart := time.Date(t.Year(), time.Month(i+1), 1, 0, 0, 0, 0, t.Location())
		windows[i] = Window{
			Start: monthStart,
			End:   monthStart.AddDate(0, 1, 0).Add(-time.Millisecond),
		}
	}
	return windows
}

// SameMonth reports whether two instants fall in the same calendar month of
// the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
