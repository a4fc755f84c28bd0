package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/mindjournal-backend/internal/analytics"
	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/services"
)

type JournalResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Journal *models.JournalEntry `json:"journal,omitempty"`
}

type JournalsResponse struct {
	Success  bool                  `json:"success"`
	Message  string                `json:"message,omitempty"`
	Journals []models.JournalEntry `json:"journals"`
	Total    int                   `json:"total"`
}

type CalendarResponse struct {
	Success  bool                  `json:"success"`
	Date     string                `json:"date"`
	Dates    []string              `json:"dates"`
	Journals []models.JournalEntry `json:"journals"`
}

// ListJournals returns the caller's entries, newest first.
func (h *Handler) ListJournals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	entries := h.svc.Journal.ListSorted(ctx, currentUser(r).ID)
	writeJSON(w, http.StatusOK, JournalsResponse{Success: true, Journals: entries, Total: len(entries)})
}

func (h *Handler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	var req models.EntryInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	entry, err := h.svc.Journal.Create(ctx, currentUser(r).ID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, JournalResponse{Success: true, Message: "Journal entry saved", Journal: entry})
}

func (h *Handler) GetJournal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	entry, ok := h.svc.Journal.Get(ctx, currentUser(r).ID, chi.URLParam(r, "id"))
	if !ok {
		writeServiceError(w, r, services.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, JournalResponse{Success: true, Message: "OK", Journal: entry})
}

func (h *Handler) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	var req models.EntryInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	entry, err := h.svc.Journal.Update(ctx, currentUser(r).ID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, JournalResponse{Success: true, Message: "Journal entry updated", Journal: entry})
}

func (h *Handler) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	h.svc.Journal.Delete(ctx, currentUser(r).ID, chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Journal entry deleted"})
}

// SearchJournals handles GET /api/journals/search?q=&type=title|content|tag|mood|all
func (h *Handler) SearchJournals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	field := r.URL.Query().Get("type")
	switch field {
	case "", services.SearchAll, services.SearchTitle, services.SearchContent, services.SearchTag, services.SearchMood:
	default:
		writeError(w, http.StatusBadRequest, "type must be one of all, title, content, tag, mood")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	results := h.svc.Journal.Search(ctx, currentUser(r).ID, query, field)
	writeJSON(w, http.StatusOK, JournalsResponse{Success: true, Journals: results, Total: len(results)})
}

// Calendar handles GET /api/journals/calendar?date=YYYY-MM-DD. date defaults to today.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")
	if day == "" {
		day = h.svc.Now().Format(analytics.DayLayout)
	} else if _, err := time.Parse(analytics.DayLayout, day); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	userID := currentUser(r).ID
	writeJSON(w, http.StatusOK, CalendarResponse{
		Success:  true,
		Date:     day,
		Dates:    h.svc.Journal.EntryDays(ctx, userID),
		Journals: h.svc.Journal.OnDay(ctx, userID, day),
	})
}
