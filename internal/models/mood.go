package models

import "time"

const (
	MoodHappy   = "happy"
	MoodCalm    = "calm"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
	MoodAnxious = "anxious"
	MoodAngry   = "angry"
	MoodTired   = "tired"
)

// Moods lists every mood a client may record.
var Moods = []string{MoodHappy, MoodCalm, MoodNeutral, MoodSad, MoodAnxious, MoodAngry, MoodTired}

// MoodData is one mood sample. A user has at most one per calendar day.
type MoodData struct {
	Date time.Time `json:"date"`
	Mood string    `json:"mood"`
}

func IsKnownMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}
