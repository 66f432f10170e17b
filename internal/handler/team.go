// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vitrine/internal/avatar"
	"vitrine/internal/i18n"
	"vitrine/internal/model"
	"vitrine/internal/store"
)

// TeamView is the JSON shape for a team member.
type TeamView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	TitleFr      *string   `json:"title_fr"`
	Bio          string    `json:"bio"`
	BioFr        *string   `json:"bio_fr"`
	Email        *string   `json:"email"`
	ImageURL     *string   `json:"image_url"`
	DisplayOrder int64     `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func teamView(m store.TeamMember) TeamView {
	return TeamView{
		ID:           m.ID,
		Name:         m.Name,
		Title:        m.Title,
		TitleFr:      nullStringPtr(m.TitleFr),
		Bio:          m.Bio,
		BioFr:        nullStringPtr(m.BioFr),
		Email:        nullStringPtr(m.Email),
		ImageURL:     nullStringPtr(m.ImageURL),
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ListTeam handles GET /api/team.
func (h *Handler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.queries.ListTeamMembers(r.Context())
	if err != nil {
		h.logger.Error("failed to list team members", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]TeamView, 0, len(members))
	for _, m := range members {
		views = append(views, teamView(m))
	}

	w.Header().Set("Content-Language", i18n.FromRequest(r))
	writeJSON(w, http.StatusOK, views)
}

// TeamRequest is the JSON body for creating a team member.
type TeamRequest struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	TitleFr      *string `json:"title_fr"`
	Bio          string  `json:"bio"`
	BioFr        *string `json:"bio_fr"`
	Email        *string `json:"email"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int64  `json:"display_order"`
}

// CreateTeamMember handles POST /api/admin/team. A member created without
// a photo gets a generated initials avatar.
func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !requiredString(req.Name) || !requiredString(req.Title) || !requiredString(req.Bio) {
		writeJSONError(w, http.StatusBadRequest, "Name, title, and bio are required")
		return
	}

	name := sanitizeText(req.Name)
	imageURL := nullStringFromPtr(req.ImageURL)
	if !imageURL.Valid {
		generated, err := h.generateAvatar(name)
		if err != nil {
			h.logger.Error("avatar generation failed", "error", err, "name", name)
			// A missing avatar should not block member creation
		} else {
			imageURL = sql.NullString{String: generated, Valid: true}
		}
	}

	order, err := h.displayOrder(r, req.DisplayOrder, h.queries.NextTeamDisplayOrder)
	if err != nil {
		h.logger.Error("failed to get next display order", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	member, err := h.queries.CreateTeamMember(r.Context(), store.CreateTeamMemberParams{
		Name:         name,
		Title:        sanitizeText(req.Title),
		TitleFr:      sanitizedNullString(req.TitleFr),
		Bio:          sanitizeRichText(req.Bio),
		BioFr:        sanitizedNullRichText(req.BioFr),
		Email:        nullStringFromPtr(req.Email),
		ImageURL:     imageURL,
		DisplayOrder: order,
	})
	if err != nil {
		h.logger.Error("failed to create team member", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"member": teamView(member)})
}

// UpdateTeamMember handles PUT /api/admin/team/{id}.
func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var patch model.TeamPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.Name.Set && (patch.Name.Null || !requiredString(patch.Name.Value)) {
		writeJSONError(w, http.StatusBadRequest, "Name cannot be empty")
		return
	}
	if patch.Title.Set && (patch.Title.Null || !requiredString(patch.Title.Value)) {
		writeJSONError(w, http.StatusBadRequest, "Title cannot be empty")
		return
	}
	if patch.Bio.Set && (patch.Bio.Null || !requiredString(patch.Bio.Value)) {
		writeJSONError(w, http.StatusBadRequest, "Bio cannot be empty")
		return
	}
	sanitizeTeamPatch(&patch)

	member, err := h.queries.UpdateTeamMember(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Team member not found")
			return
		}
		h.logger.Error("failed to update team member", "error", err, "member_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"member": teamView(member)})
}

// DeleteTeamMember handles DELETE /api/admin/team/{id}.
func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeleteTeamMember(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Team member not found")
			return
		}
		h.logger.Error("failed to delete team member", "error", err, "member_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, nil)
}

// ReorderTeam handles PUT /api/admin/team/reorder.
func (h *Handler) ReorderTeam(w http.ResponseWriter, r *http.Request) {
	h.reorder(w, r, "team")
}

// generateAvatar renders an initials avatar, stores it in the uploads
// directory, and returns its public URL path.
func (h *Handler) generateAvatar(name string) (string, error) {
	png, err := avatar.Generate(name)
	if err != nil {
		return "", err
	}
	filename, err := h.uploads.SavePNG(png, "avatar")
	if err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

func sanitizeTeamPatch(patch *model.TeamPatch) {
	if patch.Name.Set && !patch.Name.Null {
		patch.Name.Value = sanitizeText(patch.Name.Value)
	}
	if patch.Title.Set && !patch.Title.Null {
		patch.Title.Value = sanitizeText(patch.Title.Value)
	}
	if patch.TitleFr.Set && !patch.TitleFr.Null {
		patch.TitleFr.Value = sanitizeText(patch.TitleFr.Value)
	}
	if patch.Bio.Set && !patch.Bio.Null {
		patch.Bio.Value = sanitizeRichText(patch.Bio.Value)
	}
	if patch.BioFr.Set && !patch.BioFr.Null {
		patch.BioFr.Value = sanitizeRichText(patch.BioFr.Value)
	}
}
