package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

type ctxKey int

const (
	userKey ctxKey = iota
	tokenKey
)

// extractBearerToken returns the token of an "Authorization: Bearer <token>" header.
func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequireUser resolves the session of the request. Without a live session
// the client is told to go to the login page.
func (h *Handler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r.Header.Get("Authorization"))

		ctx, cancel := withTimeout(r)
		user, ok := h.svc.Users.Current(ctx, token)
		cancel()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{
				Message:  "Authentication required",
				Redirect: "/login",
			})
			return
		}

		ctx = context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSuperAdmin must run after RequireUser.
func (h *Handler) RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r)
		if user == nil || !user.IsSuperAdmin() {
			writeJSON(w, http.StatusForbidden, ErrorResponse{
				Message:  "Superadmin access required",
				Redirect: "/dashboard",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userKey).(*models.User)
	return user
}

func currentToken(r *http.Request) string {
	token, _ := r.Context().Value(tokenKey).(string)
	return token
}
