package analytics

import (
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

var moodOrdinals = map[string]int{
	models.MoodAngry:   0,
	models.MoodAnxious: 1,
	models.MoodSad:     2,
	models.MoodTired:   2,
	models.MoodNeutral: 3,
	models.MoodCalm:    4,
	models.MoodHappy:   5,
}

// MoodOrdinal returns the chart value of mood. ok is false for unknown moods.
func MoodOrdinal(mood string) (int, bool) {
	v, ok := moodOrdinals[mood]
	return v, ok
}

// MoodPoint is one day of the mood trend. Value is nil when the day has no
// sample or the sample holds an unknown mood.
type MoodPoint struct {
	Date  string `json:"date"`
	Mood  string `json:"mood,omitempty"`
	Value *int   `json:"value"`
}

// MoodTrend returns the trailing 7 calendar days ending today, oldest first.
func MoodTrend(moods []models.MoodData, now time.Time) []MoodPoint {
	loc := now.Location()
	byDay := make(map[string]string, len(moods))
	for _, m := range moods {
		key := Day(m.Date, loc)
		if _, ok := byDay[key]; !ok {
			byDay[key] = m.Mood
		}
	}

	days := trailingDays(now, TrendWindow)
	points := make([]MoodPoint, len(days))
	for i, d := range days {
		key := d.Format(DayLayout)
		p := MoodPoint{Date: key}
		if mood, ok := byDay[key]; ok {
			p.Mood = mood
			if v, known := MoodOrdinal(mood); known {
				p.Value = &v
			}
		}
		points[i] = p
	}
	return points
}

// MostCommonMood returns the most recorded mood, or "" without data.
// Ties go to the mood seen first.
func MostCommonMood(moods []models.MoodData) string {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, m := range moods {
		counts[m.Mood]++
	}
	for _, m := range moods {
		if c := counts[m.Mood]; c > bestCount {
			best, bestCount = m.Mood, c
		}
	}
	return best
}
