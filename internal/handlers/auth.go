package handlers

import (
	"net/http"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/services"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// User Signin Request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Auth Response
type AuthResponse struct {
	Success          bool                    `json:"success"`
	Message          string                  `json:"message"`
	User             *models.UserView        `json:"user,omitempty"`
	Token            string                  `json:"token,omitempty"`
	PasswordStrength *utils.PasswordStrength `json:"password_strength,omitempty"`
}

type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

type PasswordStrengthResponse struct {
	Success bool `json:"success"`
	utils.PasswordStrength
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	user, token, strength, err := h.svc.Users.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view := user.View()
	writeJSON(w, http.StatusCreated, AuthResponse{
		Success:          true,
		Message:          "Account created successfully",
		User:             &view,
		Token:            token,
		PasswordStrength: &strength,
	})
}

// Login handles user login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	user, token, err := h.svc.Users.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view := user.View()
	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    &view,
		Token:   token,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	h.svc.Users.Logout(ctx, currentToken(r))
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Logged out"})
}

// Me returns the signed-in user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	view := currentUser(r).View()
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Message: "OK", User: &view})
}

// PasswordStrength scores a password for the registration form.
func (h *Handler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req PasswordStrengthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, PasswordStrengthResponse{
		Success:          true,
		PasswordStrength: utils.CheckPasswordStrength(req.Password),
	})
}
