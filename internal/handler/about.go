// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vitrine/internal/i18n"
	"vitrine/internal/model"
	"vitrine/internal/store"
)

// AboutView is the JSON shape for an about section.
type AboutView struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	TitleFr       *string   `json:"title_fr"`
	Description   string    `json:"description"`
	DescriptionFr *string   `json:"description_fr"`
	ImageURL      *string   `json:"image_url"`
	DisplayOrder  int64     `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func aboutView(a store.AboutSection) AboutView {
	return AboutView{
		ID:            a.ID,
		Title:         a.Title,
		TitleFr:       nullStringPtr(a.TitleFr),
		Description:   a.Description,
		DescriptionFr: nullStringPtr(a.DescriptionFr),
		ImageURL:      nullStringPtr(a.ImageURL),
		DisplayOrder:  a.DisplayOrder,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ListAbout handles GET /api/about. Sections come back in display order
// with both language variants; the resolved request language is echoed in
// Content-Language.
func (h *Handler) ListAbout(w http.ResponseWriter, r *http.Request) {
	sections, err := h.queries.ListAboutSections(r.Context())
	if err != nil {
		h.logger.Error("failed to list about sections", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]AboutView, 0, len(sections))
	for _, s := range sections {
		views = append(views, aboutView(s))
	}

	w.Header().Set("Content-Language", i18n.FromRequest(r))
	writeJSON(w, http.StatusOK, views)
}

// AboutRequest is the JSON body for creating an about section.
type AboutRequest struct {
	Title         string  `json:"title"`
	TitleFr       *string `json:"title_fr"`
	Description   string  `json:"description"`
	DescriptionFr *string `json:"description_fr"`
	ImageURL      *string `json:"image_url"`
	DisplayOrder  *int64  `json:"display_order"`
}

// CreateAbout handles POST /api/admin/about. A supplied display_order is
// stored as-is; without one the section is appended at the end.
func (h *Handler) CreateAbout(w http.ResponseWriter, r *http.Request) {
	var req AboutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !requiredString(req.Title) || !requiredString(req.Description) {
		writeJSONError(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	order, err := h.displayOrder(r, req.DisplayOrder, h.queries.NextAboutDisplayOrder)
	if err != nil {
		h.logger.Error("failed to get next display order", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	section, err := h.queries.CreateAboutSection(r.Context(), store.CreateAboutSectionParams{
		Title:         sanitizeText(req.Title),
		TitleFr:       sanitizedNullString(req.TitleFr),
		Description:   sanitizeRichText(req.Description),
		DescriptionFr: sanitizedNullRichText(req.DescriptionFr),
		ImageURL:      nullStringFromPtr(req.ImageURL),
		DisplayOrder:  order,
	})
	if err != nil {
		h.logger.Error("failed to create about section", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"section": aboutView(section)})
}

// UpdateAbout handles PUT /api/admin/about/{id}. The body is a partial
// update: absent fields stay untouched, explicit nulls clear nullable
// columns.
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var patch model.AboutPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.Title.Set && (patch.Title.Null || !requiredString(patch.Title.Value)) {
		writeJSONError(w, http.StatusBadRequest, "Title cannot be empty")
		return
	}
	if patch.Description.Set && (patch.Description.Null || !requiredString(patch.Description.Value)) {
		writeJSONError(w, http.StatusBadRequest, "Description cannot be empty")
		return
	}
	sanitizeAboutPatch(&patch)

	section, err := h.queries.UpdateAboutSection(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "About section not found")
			return
		}
		h.logger.Error("failed to update about section", "error", err, "section_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"section": aboutView(section)})
}

// DeleteAbout handles DELETE /api/admin/about/{id}.
func (h *Handler) DeleteAbout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeleteAboutSection(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "About section not found")
			return
		}
		h.logger.Error("failed to delete about section", "error", err, "section_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, nil)
}

// ReorderAbout handles PUT /api/admin/about/reorder.
func (h *Handler) ReorderAbout(w http.ResponseWriter, r *http.Request) {
	h.reorder(w, r, "about")
}

func sanitizeAboutPatch(patch *model.AboutPatch) {
	if patch.Title.Set && !patch.Title.Null {
		patch.Title.Value = sanitizeText(patch.Title.Value)
	}
	if patch.TitleFr.Set && !patch.TitleFr.Null {
		patch.TitleFr.Value = sanitizeText(patch.TitleFr.Value)
	}
	if patch.Description.Set && !patch.Description.Null {
		patch.Description.Value = sanitizeRichText(patch.Description.Value)
	}
	if patch.DescriptionFr.Set && !patch.DescriptionFr.Null {
		patch.DescriptionFr.Value = sanitizeRichText(patch.DescriptionFr.Value)
	}
}
