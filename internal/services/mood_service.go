package services

import (
	"context"
	"sort"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// MoodService keeps at most one mood row per calendar day per user.
type MoodService struct {
	gw    *Gateway
	clock clock
}

// Record sets today's mood, replacing an earlier sample from the same day.
func (s *MoodService) Record(ctx context.Context, userID, mood string) (*models.MoodData, error) {
	if !models.IsKnownMood(mood) {
		return nil, &utils.ValidationError{Field: "mood", Message: "Unknown mood"}
	}

	now := s.clock.Now()
	today := s.clock.Day(now)
	row := models.MoodData{Date: now, Mood: mood}

	unlock := s.gw.Lock(moodKey(userID))
	defer unlock()

	moods := s.gw.MoodData(ctx, userID)
	kept := moods[:0]
	for _, m := range moods {
		if s.clock.Day(m.Date) != today {
			kept = append(kept, m)
		}
	}
	s.gw.SaveMoodData(ctx, userID, append(kept, row))
	return &row, nil
}

// RecordIfAbsent records mood for today only when today has no row yet.
func (s *MoodService) RecordIfAbsent(ctx context.Context, userID, mood string) bool {
	now := s.clock.Now()
	today := s.clock.Day(now)

	unlock := s.gw.Lock(moodKey(userID))
	defer unlock()

	moods := s.gw.MoodData(ctx, userID)
	for _, m := range moods {
		if s.clock.Day(m.Date) == today {
			return false
		}
	}
	s.gw.SaveMoodData(ctx, userID, append(moods, models.MoodData{Date: now, Mood: mood}))
	return true
}

func (s *MoodService) Today(ctx context.Context, userID string) (*models.MoodData, bool) {
	today := s.clock.Today()
	for _, m := range s.gw.MoodData(ctx, userID) {
		if s.clock.Day(m.Date) == today {
			return &m, true
		}
	}
	return nil, false
}

// List returns the mood history oldest first.
func (s *MoodService) List(ctx context.Context, userID string) []models.MoodData {
	moods := s.gw.MoodData(ctx, userID)
	sort.SliceStable(moods, func(i, j int) bool { return moods[i].Date.Before(moods[j].Date) })
	return moods
}
