package services

import (
	"context"
	"strings"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

// AdminStats is the admin dashboard header.
type AdminStats struct {
	TotalUsers   int `json:"totalUsers"`
	TotalEntries int `json:"totalEntries"`
	ActiveUsers  int `json:"activeUsers"`
}

// AdminService is the superadmin's cross-user view.
type AdminService struct {
	gw    *Gateway
	users *UserService
}

// Stats counts users, entries across users, and users with at least one entry.
func (s *AdminService) Stats(ctx context.Context) AdminStats {
	users := s.gw.Users(ctx)
	stats := AdminStats{TotalUsers: len(users)}
	for _, u := range users {
		n := len(s.gw.Entries(ctx, u.ID))
		stats.TotalEntries += n
		if n > 0 {
			stats.ActiveUsers++
		}
	}
	return stats
}

// Users lists accounts, filtered by name or email substring when query is set.
func (s *AdminService) Users(ctx context.Context, query string) []models.UserView {
	q := strings.ToLower(strings.TrimSpace(query))
	views := []models.UserView{}
	for _, u := range s.gw.Users(ctx) {
		if q != "" &&
			!strings.Contains(strings.ToLower(u.Name), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		views = append(views, u.View())
	}
	return views
}

// DeleteUser removes userID and all of its data on behalf of actorID.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return ErrForbidden
	}
	return s.users.remove(ctx, userID)
}
