package services

import (
	"context"
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

func sampleEntries(now time.Time) []models.JournalEntry {
	return []models.JournalEntry{
		{
			ID:      "sample-1",
			Title:   "Getting Started with Journaling",
			Date:    now,
			Content: "Welcome to MindJournal! This is an example entry to help you get started. Try creating your own entry by clicking the 'New Entry' button.",
			Tags:    []string{"welcome", "getting-started"},
			Mood:    models.MoodHappy,
		},
		{
			ID:      "sample-2",
			Title:   "Journaling Tips",
			Date:    now.Add(-24 * time.Hour),
			Content: "Regular journaling can help reduce stress and improve mental clarity. Try to write for at least 5 minutes each day, focusing on your thoughts and feelings.",
			Tags:    []string{"tips", "mindfulness"},
			Mood:    models.MoodCalm,
		},
	}
}

func sampleMoodData(now time.Time) []models.MoodData {
	return []models.MoodData{
		{Date: now, Mood: models.MoodHappy},
		{Date: now.Add(-24 * time.Hour), Mood: models.MoodCalm},
		{Date: now.Add(-48 * time.Hour), Mood: models.MoodNeutral},
	}
}

// seedUser gives a new account its welcome entries and moods. Lists that
// already hold data are left alone, so calling it twice is harmless.
func seedUser(ctx context.Context, gw *Gateway, userID string, now time.Time) {
	unlockEntries := gw.Lock(journalKey(userID))
	if len(gw.Entries(ctx, userID)) == 0 {
		gw.SaveEntries(ctx, userID, sampleEntries(now))
	}
	unlockEntries()

	unlockMood := gw.Lock(moodKey(userID))
	if len(gw.MoodData(ctx, userID)) == 0 {
		gw.SaveMoodData(ctx, userID, sampleMoodData(now))
	}
	unlockMood()
}
