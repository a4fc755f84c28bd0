package models

import (
	"time"
)

const (
	RoleUser       = "user"
	RoleSuperAdmin = "superadmin"
)

// User is an account record as kept in the "users" list.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserView is what the API returns for a user. It never carries the credential.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (u User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
