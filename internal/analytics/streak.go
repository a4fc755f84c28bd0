package analytics

import (
	"sort"
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

// distinctDays returns the calendar days holding at least one entry, newest first.
func distinctDays(entries []models.JournalEntry, loc *time.Location) []time.Time {
	seen := make(map[string]bool, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		key := Day(e.Date, loc)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, startOfDay(e.Date.In(loc)))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// isPrevDay reports whether a is the calendar day right before b.
func isPrevDay(a, b time.Time) bool {
	return a.AddDate(0, 0, 1).Equal(b)
}

// Streak counts consecutive calendar days with at least one entry, ending
// today or yesterday. Several entries on one day count as one day.
func Streak(entries []models.JournalEntry, now time.Time) int {
	loc := now.Location()
	days := distinctDays(entries, loc)
	if len(days) == 0 {
		return 0
	}

	today := startOfDay(now)
	if !days[0].Equal(today) && !isPrevDay(days[0], today) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !isPrevDay(days[i], days[i-1]) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive entry days anywhere in history.
func LongestStreak(entries []models.JournalEntry, loc *time.Location) int {
	days := distinctDays(entries, loc)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if isPrevDay(days[i], days[i-1]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
