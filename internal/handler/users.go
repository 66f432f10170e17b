// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vitrine/internal/auth"
	"vitrine/internal/middleware"
	"vitrine/internal/model"
	"vitrine/internal/store"
)

// ListUsers handles GET /api/admin/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}

	writeJSONSuccess(w, map[string]any{"users": views})
}

// UserRequest is the JSON body for creating a user.
type UserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// CreateUser handles POST /api/admin/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !requiredString(req.FirstName) || !requiredString(req.LastName) || req.Email == "" {
		writeJSONError(w, http.StatusBadRequest, "First name, last name, and email are required")
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		FirstName:    sanitizeText(req.FirstName),
		LastName:     sanitizeText(req.LastName),
		Email:        req.Email,
		IsAdmin:      req.IsAdmin,
		PasswordHash: sql.NullString{String: hash, Valid: true},
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			writeJSONError(w, http.StatusBadRequest, "A user with this email already exists")
			return
		}
		h.logger.Error("failed to create user", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.logger.Info("user created", "user_id", user.ID, "email", user.Email,
		"created_by", middleware.GetUserID(r))
	writeJSONSuccess(w, map[string]any{"user": userView(user)})
}

// UpdateUser handles PUT /api/admin/users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var patch model.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.FirstName.Set && (patch.FirstName.Null || !requiredString(patch.FirstName.Value)) {
		writeJSONError(w, http.StatusBadRequest, "First name cannot be empty")
		return
	}
	if patch.LastName.Set && (patch.LastName.Null || !requiredString(patch.LastName.Value)) {
		writeJSONError(w, http.StatusBadRequest, "Last name cannot be empty")
		return
	}
	if patch.Email.Set {
		if patch.Email.Null || !requiredString(patch.Email.Value) {
			writeJSONError(w, http.StatusBadRequest, "Email cannot be empty")
			return
		}
		patch.Email.Value = strings.ToLower(strings.TrimSpace(patch.Email.Value))
	}

	// Removing your own admin flag would lock you out of this screen
	if patch.IsAdmin.Set && !patch.IsAdmin.Value && id == middleware.GetUserID(r) {
		writeJSONError(w, http.StatusBadRequest, "You cannot revoke your own admin access")
		return
	}

	var passwordHash *string
	if patch.Password.Set && !patch.Password.Null {
		if err := auth.ValidatePassword(patch.Password.Value); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		hash, err := auth.HashPassword(patch.Password.Value)
		if err != nil {
			h.logger.Error("failed to hash password", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		passwordHash = &hash
	}

	user, err := h.queries.UpdateUser(r.Context(), id, patch, passwordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		if store.IsUniqueViolation(err) {
			writeJSONError(w, http.StatusBadRequest, "A user with this email already exists")
			return
		}
		h.logger.Error("failed to update user", "error", err, "user_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"user": userView(user)})
}

// DeleteUser handles DELETE /api/admin/users/{id}. Deleting your own
// account is rejected.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if id == middleware.GetUserID(r) {
		writeJSONError(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	if err := h.queries.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("failed to delete user", "error", err, "user_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.logger.Info("user deleted", "user_id", id, "deleted_by", middleware.GetUserID(r))
	writeJSONSuccess(w, nil)
}
