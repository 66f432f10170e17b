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

// ProjectView is the JSON shape for a project.
type ProjectView struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	TitleFr       *string   `json:"title_fr"`
	Description   string    `json:"description"`
	DescriptionFr *string   `json:"description_fr"`
	TypeID        int64     `json:"type_id"`
	Status        string    `json:"status"`
	GitURL        *string   `json:"git_url"`
	DemoURL       *string   `json:"demo_url"`
	ImageURL      *string   `json:"image_url"`
	DisplayOrder  int64     `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func projectView(p store.Project) ProjectView {
	return ProjectView{
		ID:            p.ID,
		Title:         p.Title,
		TitleFr:       nullStringPtr(p.TitleFr),
		Description:   p.Description,
		DescriptionFr: nullStringPtr(p.DescriptionFr),
		TypeID:        p.TypeID,
		Status:        p.Status,
		GitURL:        nullStringPtr(p.GitURL),
		DemoURL:       nullStringPtr(p.DemoURL),
		ImageURL:      nullStringPtr(p.ImageURL),
		DisplayOrder:  p.DisplayOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ProjectTypeView is the JSON shape for a project type.
type ProjectTypeView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	NameFr       *string `json:"name_fr"`
	DisplayOrder int64   `json:"display_order"`
}

func projectTypeView(t store.ProjectType) ProjectTypeView {
	return ProjectTypeView{
		ID:           t.ID,
		Name:         t.Name,
		NameFr:       nullStringPtr(t.NameFr),
		DisplayOrder: t.DisplayOrder,
	}
}

// ListProjects handles GET /api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListProjects(r.Context())
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, projectView(p))
	}

	w.Header().Set("Content-Language", i18n.FromRequest(r))
	writeJSON(w, http.StatusOK, views)
}

// ListProjectTypes handles GET /api/project-types.
func (h *Handler) ListProjectTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.queries.ListProjectTypes(r.Context())
	if err != nil {
		h.logger.Error("failed to list project types", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]ProjectTypeView, 0, len(types))
	for _, t := range types {
		views = append(views, projectTypeView(t))
	}

	writeJSON(w, http.StatusOK, views)
}

// ProjectRequest is the JSON body for creating a project.
type ProjectRequest struct {
	Title         string  `json:"title"`
	TitleFr       *string `json:"title_fr"`
	Description   string  `json:"description"`
	DescriptionFr *string `json:"description_fr"`
	TypeID        int64   `json:"type_id"`
	Status        string  `json:"status"`
	GitURL        *string `json:"git_url"`
	DemoURL       *string `json:"demo_url"`
	ImageURL      *string `json:"image_url"`
	DisplayOrder  *int64  `json:"display_order"`
}

// CreateProject handles POST /api/admin/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !requiredString(req.Title) || !requiredString(req.Description) {
		writeJSONError(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	if req.TypeID <= 0 {
		writeJSONError(w, http.StatusBadRequest, "Project type is required")
		return
	}
	if req.Status == "" {
		req.Status = model.StatusPlanned
	}
	if !model.IsValidProjectStatus(req.Status) {
		writeJSONError(w, http.StatusBadRequest, "Invalid project status")
		return
	}

	order, err := h.displayOrder(r, req.DisplayOrder, h.queries.NextProjectDisplayOrder)
	if err != nil {
		h.logger.Error("failed to get next display order", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	project, err := h.queries.CreateProject(r.Context(), store.CreateProjectParams{
		Title:         sanitizeText(req.Title),
		TitleFr:       sanitizedNullString(req.TitleFr),
		Description:   sanitizeRichText(req.Description),
		DescriptionFr: sanitizedNullRichText(req.DescriptionFr),
		TypeID:        req.TypeID,
		Status:        req.Status,
		GitURL:        nullStringFromPtr(req.GitURL),
		DemoURL:       nullStringFromPtr(req.DemoURL),
		ImageURL:      nullStringFromPtr(req.ImageURL),
		DisplayOrder:  order,
	})
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			writeJSONError(w, http.StatusBadRequest, "Unknown project type")
			return
		}
		h.logger.Error("failed to create project", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"project": projectView(project)})
}

// UpdateProject handles PUT /api/admin/projects/{id}.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var patch model.ProjectPatch
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
	if patch.Status.Set {
		if patch.Status.Null || !model.IsValidProjectStatus(patch.Status.Value) {
			writeJSONError(w, http.StatusBadRequest, "Invalid project status")
			return
		}
	}
	if patch.TypeID.Set && (patch.TypeID.Null || patch.TypeID.Value <= 0) {
		writeJSONError(w, http.StatusBadRequest, "Invalid project type")
		return
	}
	sanitizeProjectPatch(&patch)

	project, err := h.queries.UpdateProject(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Project not found")
			return
		}
		if store.IsForeignKeyViolation(err) {
			writeJSONError(w, http.StatusBadRequest, "Unknown project type")
			return
		}
		h.logger.Error("failed to update project", "error", err, "project_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"project": projectView(project)})
}

// DeleteProject handles DELETE /api/admin/projects/{id}.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeleteProject(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to delete project", "error", err, "project_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, nil)
}

// ReorderProjects handles PUT /api/admin/projects/reorder.
func (h *Handler) ReorderProjects(w http.ResponseWriter, r *http.Request) {
	h.reorder(w, r, "projects")
}

// ProjectTypeRequest is the JSON body for creating a project type.
type ProjectTypeRequest struct {
	Name         string  `json:"name"`
	NameFr       *string `json:"name_fr"`
	DisplayOrder *int64  `json:"display_order"`
}

// CreateProjectType handles POST /api/admin/project-types.
func (h *Handler) CreateProjectType(w http.ResponseWriter, r *http.Request) {
	var req ProjectTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !requiredString(req.Name) {
		writeJSONError(w, http.StatusBadRequest, "Name is required")
		return
	}

	order, err := h.displayOrder(r, req.DisplayOrder, h.queries.NextProjectTypeDisplayOrder)
	if err != nil {
		h.logger.Error("failed to get next display order", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	pt, err := h.queries.CreateProjectType(r.Context(), store.CreateProjectTypeParams{
		Name:         sanitizeText(req.Name),
		NameFr:       sanitizedNullString(req.NameFr),
		DisplayOrder: order,
	})
	if err != nil {
		h.logger.Error("failed to create project type", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"project_type": projectTypeView(pt)})
}

// UpdateProjectType handles PUT /api/admin/project-types/{id}.
func (h *Handler) UpdateProjectType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Name   *string `json:"name"`
		NameFr *string `json:"name_fr"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil && !requiredString(*req.Name) {
		writeJSONError(w, http.StatusBadRequest, "Name cannot be empty")
		return
	}
	if req.Name != nil {
		s := sanitizeText(*req.Name)
		req.Name = &s
	}
	if req.NameFr != nil {
		s := sanitizeText(*req.NameFr)
		req.NameFr = &s
	}

	pt, err := h.queries.UpdateProjectType(r.Context(), id, store.UpdateProjectTypeParams{
		Name:   req.Name,
		NameFr: req.NameFr,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Project type not found")
			return
		}
		h.logger.Error("failed to update project type", "error", err, "type_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{"project_type": projectTypeView(pt)})
}

// DeleteProjectType handles DELETE /api/admin/project-types/{id}. A type
// still referenced by projects cannot be deleted.
func (h *Handler) DeleteProjectType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeleteProjectType(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Project type not found")
			return
		}
		if store.IsForeignKeyViolation(err) {
			writeJSONError(w, http.StatusBadRequest, "Project type is in use")
			return
		}
		h.logger.Error("failed to delete project type", "error", err, "type_id", id)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, nil)
}

// ReorderProjectTypes handles PUT /api/admin/project-types/reorder.
func (h *Handler) ReorderProjectTypes(w http.ResponseWriter, r *http.Request) {
	h.reorder(w, r, "project_types")
}

func sanitizeProjectPatch(patch *model.ProjectPatch) {
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
