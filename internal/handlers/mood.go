package handlers

import (
	"net/http"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

type MoodRequest struct {
	Mood string `json:"mood"`
}

type MoodResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Mood    *models.MoodData `json:"mood"`
}

type MoodsResponse struct {
	Success bool              `json:"success"`
	Moods   []models.MoodData `json:"moods"`
}

func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	writeJSON(w, http.StatusOK, MoodsResponse{Success: true, Moods: h.svc.Mood.List(ctx, currentUser(r).ID)})
}

// RecordMood sets today's mood, replacing an earlier choice made today.
func (h *Handler) RecordMood(w http.ResponseWriter, r *http.Request) {
	var req MoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	mood, err := h.svc.Mood.Record(ctx, currentUser(r).ID, req.Mood)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MoodResponse{Success: true, Message: "Mood recorded", Mood: mood})
}

// TodayMood returns today's mood, or a null mood when none is recorded.
func (h *Handler) TodayMood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	mood, _ := h.svc.Mood.Today(ctx, currentUser(r).ID)
	writeJSON(w, http.StatusOK, MoodResponse{Success: true, Message: "OK", Mood: mood})
}
