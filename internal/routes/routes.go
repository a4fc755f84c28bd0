package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/mindjournal-backend/internal/handlers"
)

func SetupRoutes(r chi.Router, h *handlers.Handler) {
	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Public auth routes
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
	r.Post("/api/auth/password-strength", h.PasswordStrength)

	// Session stream authenticates itself (token may come from the query string)
	r.Get("/ws/session", h.SessionWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireUser)

		r.Post("/api/auth/logout", h.Logout)
		r.Get("/api/auth/me", h.Me)

		// Settings
		r.Put("/api/settings/profile", h.UpdateProfile)
		r.Put("/api/settings/password", h.ChangePassword)
		r.Delete("/api/settings/account", h.DeleteAccount)

		// Journaling routes
		r.Get("/api/journals", h.ListJournals)
		r.Post("/api/journals", h.CreateJournal)
		r.Get("/api/journals/search", h.SearchJournals)
		r.Get("/api/journals/calendar", h.Calendar)
		r.Get("/api/journals/{id}", h.GetJournal)
		r.Put("/api/journals/{id}", h.UpdateJournal)
		r.Delete("/api/journals/{id}", h.DeleteJournal)

		// Mood tracking
		r.Get("/api/mood", h.ListMoods)
		r.Post("/api/mood", h.RecordMood)
		r.Get("/api/mood/today", h.TodayMood)

		// Insights
		r.Get("/api/dashboard", h.Dashboard)
		r.Get("/api/analytics", h.Analytics)

		// Export / import
		r.Get("/api/export", h.Export)
		r.Get("/api/export/entries", h.ExportEntries)
		r.Post("/api/export/backup", h.Backup)
		r.Post("/api/import", h.Import)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.RequireSuperAdmin)

			r.Get("/api/admin/stats", h.GetAdminStats)
			r.Get("/api/admin/users", h.GetUsers)
			r.Delete("/api/admin/users/{id}", h.DeleteUser)
		})
	})
}
