package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"ms-concerts/internal/auth"
	"ms-concerts/internal/models"
	"ms-concerts/internal/store"
	"ms-concerts/internal/validate"
)

type sessionResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if errs := validate.Struct(in); errs != nil {
		respondValidation(w, "Invalid registration data", errs)
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		h.Logger.Error("AUTH", fmt.Sprintf("Register: password hashing failed: %v", err))
		respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	in.Password = hash

	user, err := h.Store.CreateUser(in)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			respondError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, _, err := h.Tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	h.Logger.Info("AUTH", fmt.Sprintf("registered user %q (id %d)", user.Username, user.ID))
	writeJSON(w, http.StatusCreated, sessionResponse{User: *user, Token: token})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, "Invalid credentials", errs)
		return
	}

	user, err := h.Store.GetUserByUsername(req.Username)
	if err != nil || !auth.VerifyPassword(user.Password, req.Password) {
		// Same response for unknown user and wrong password.
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, _, err := h.Tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: *user, Token: token})
}

// Logout revokes the presented token until its natural expiry.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	ttl := time.Until(identity.Claims.ExpiresAt)
	if identity.Claims.TokenID != "" && ttl > 0 {
		if err := h.Revoked.Revoke(r.Context(), identity.Claims.TokenID, ttl); err != nil {
			h.Logger.Error("AUTH", fmt.Sprintf("Logout: failed to revoke token: %v", err))
			respondError(w, http.StatusInternalServerError, "Logout failed")
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	user, err := h.Store.GetUser(identity.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, "Invalid password data", errs)
		return
	}

	user, err := h.Store.GetUser(identity.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	if !auth.VerifyPassword(user.Password, req.CurrentPassword) {
		respondError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		h.Logger.Error("AUTH", fmt.Sprintf("ChangePassword: password hashing failed: %v", err))
		respondError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}
	if err := h.Store.SetUserPassword(user.ID, hash); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	var patch models.UserPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	user, err := h.Store.UpdateUser(identity.UserID, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
