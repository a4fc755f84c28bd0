package models

import "time"

// Session is the value stored under session:<token>.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

const (
	SessionEventLogin          = "login"
	SessionEventLogout         = "logout"
	SessionEventProfileUpdated = "profile_updated"
	SessionEventAccountDeleted = "account_deleted"
)

// SessionEvent is published to session subscribers and streamed over /ws/session.
type SessionEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
