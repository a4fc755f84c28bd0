package handlers

import (
	"net/http"

	"github.com/AnshRaj112/mindjournal-backend/internal/analytics"
	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

const (
	dashboardRecentEntries = 5
	dashboardTopTags       = 9
)

type DashboardResponse struct {
	Success       bool                  `json:"success"`
	User          models.UserView       `json:"user"`
	TotalEntries  int                   `json:"totalEntries"`
	Streak        int                   `json:"streak"`
	TodaysMood    *models.MoodData      `json:"todaysMood"`
	RecentEntries []models.JournalEntry `json:"recentEntries"`
	TopTags       []analytics.TagCount  `json:"topTags"`
}

type AnalyticsResponse struct {
	Success bool `json:"success"`
	analytics.Summary
}

// Dashboard returns the landing page payload.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	user := currentUser(r)
	entries := h.svc.Journal.ListSorted(ctx, user.ID)
	today, _ := h.svc.Mood.Today(ctx, user.ID)

	tags := analytics.TagFrequencies(entries)
	if len(tags) > dashboardTopTags {
		tags = tags[:dashboardTopTags]
	}
	recent := entries
	if len(recent) > dashboardRecentEntries {
		recent = recent[:dashboardRecentEntries]
	}

	writeJSON(w, http.StatusOK, DashboardResponse{
		Success:       true,
		User:          user.View(),
		TotalEntries:  len(entries),
		Streak:        analytics.Streak(entries, h.svc.Now()),
		TodaysMood:    today,
		RecentEntries: recent,
		TopTags:       tags,
	})
}

// Analytics returns streaks, tag cloud, 30-day frequency and 7-day mood trend.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	userID := currentUser(r).ID
	summary := analytics.Summarize(
		h.svc.Journal.List(ctx, userID),
		h.svc.Mood.List(ctx, userID),
		h.svc.Now(),
	)
	writeJSON(w, http.StatusOK, AnalyticsResponse{Success: true, Summary: summary})
}
