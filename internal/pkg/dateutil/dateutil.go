package dateutil

import (
	"fmt"
	"time"
)

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one instant. Ranges touching at a single
// boundary count as overlapping.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DayBounds normalizes an instant to the inclusive UTC calendar-day window
// [00:00:00.000, 23:59:59.999] of its date.
func DayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// LocalDay projects an instant onto its calendar day in loc, truncated to
// midnight. Used by the report grid, which groups by local date.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween returns each UTC calendar day from start through end inclusive.
// Returns nil when end precedes start.
func DaysBetween(start, end time.Time) []time.Time {
	first, _ := DayBounds(start)
	last, _ := DayBounds(end)
	if last.Before(first) {
		return nil
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MinutesBetween returns the whole minutes elapsed from start to end,
// truncated toward zero.
func MinutesBetween(start, end time.Time) int {
	return int(end.Sub(start).Minutes())
}

// FormatMinutes renders a minute total in "H,MM" form: whole hours, a comma
// as decimal separator, and the minute remainder zero-padded to two digits.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%d,%02d", total/60, total%60)
}
