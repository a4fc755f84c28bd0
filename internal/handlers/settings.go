package handlers

import (
	"net/http"
)

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	user, err := h.svc.Users.UpdateProfile(ctx, currentUser(r).ID, req.Name, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view := user.View()
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Message: "Profile updated", User: &view})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	err := h.svc.Users.ChangePassword(ctx, currentUser(r).ID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Password updated"})
}

// DeleteAccount removes the caller's account and all of its data.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := h.svc.Users.DeleteAccount(ctx, currentUser(r).ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Account deleted"})
}
