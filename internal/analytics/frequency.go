package analytics

import (
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

const (
	FrequencyWindow = 30
	TrendWindow     = 7
)

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// EntryFrequency buckets entries into the trailing 30 calendar days ending
// today, oldest first. Days without entries are zero.
func EntryFrequency(entries []models.JournalEntry, now time.Time) []DayCount {
	loc := now.Location()
	perDay := make(map[string]int, len(entries))
	for _, e := range entries {
		perDay[Day(e.Date, loc)]++
	}

	days := trailingDays(now, FrequencyWindow)
	buckets := make([]DayCount, len(days))
	for i, d := range days {
		key := d.Format(DayLayout)
		buckets[i] = DayCount{Date: key, Count: perDay[key]}
	}
	return buckets
}
