// Package analytics derives the dashboard and analytics views from a user's
// entries and mood samples. Everything here is a pure function of its input;
// callers pass "now" so the location of now decides calendar days.
package analytics

import "time"

// DayLayout is the calendar-day key format.
const DayLayout = "2006-01-02"

// Day returns the calendar day of t in loc.
func Day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// trailingDays returns n midnights ending with the day of now, oldest first.
func trailingDays(now time.Time, n int) []time.Time {
	today := startOfDay(now)
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = today.AddDate(0, 0, i-(n-1))
	}
	return days
}
