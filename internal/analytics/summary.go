package analytics

import (
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

// Summary is the analytics page payload.
type Summary struct {
	TotalEntries   int         `json:"totalEntries"`
	CurrentStreak  int         `json:"currentStreak"`
	LongestStreak  int         `json:"longestStreak"`
	MostCommonMood string      `json:"mostCommonMood"`
	TagFrequencies []TagCount  `json:"tagFrequencies"`
	TagCloud       []CloudTag  `json:"tagCloud"`
	EntryFrequency []DayCount  `json:"entryFrequency"`
	MoodTrend      []MoodPoint `json:"moodTrend"`
}

func Summarize(entries []models.JournalEntry, moods []models.MoodData, now time.Time) Summary {
	return Summary{
		TotalEntries:   len(entries),
		CurrentStreak:  Streak(entries, now),
		LongestStreak:  LongestStreak(entries, now.Location()),
		MostCommonMood: MostCommonMood(moods),
		TagFrequencies: TagFrequencies(entries),
		TagCloud:       TagCloud(entries),
		EntryFrequency: EntryFrequency(entries, now),
		MoodTrend:      MoodTrend(moods, now),
	}
}
