package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/services"
)

type AdminStatsResponse struct {
	Success bool `json:"success"`
	services.AdminStats
}

type AdminUsersResponse struct {
	Success bool              `json:"success"`
	Users   []models.UserView `json:"users"`
	Total   int               `json:"total"`
}

// GetAdminStats handles GET /api/admin/stats
func (h *Handler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	writeJSON(w, http.StatusOK, AdminStatsResponse{Success: true, AdminStats: h.svc.Admin.Stats(ctx)})
}

// GetUsers handles GET /api/admin/users?q=
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	users := h.svc.Admin.Users(ctx, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, AdminUsersResponse{Success: true, Users: users, Total: len(users)})
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := h.svc.Admin.DeleteUser(ctx, currentUser(r).ID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "User deleted"})
}
