// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"vitrine/internal/model"
)

// ListPublicSettings handles GET /api/settings. Only whitelisted keys are
// exposed; internal flags like setup completion stay private.
func (h *Handler) ListPublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		h.logger.Error("failed to list settings", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	public := make(map[string]string)
	for _, s := range settings {
		if model.IsPublicSettingKey(s.Key) {
			public[s.Key] = s.Value
		}
	}

	writeJSON(w, http.StatusOK, public)
}

// ListAdminSettings handles GET /api/admin/settings, returning every key.
func (h *Handler) ListAdminSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		h.logger.Error("failed to list settings", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	all := make(map[string]string, len(settings))
	for _, s := range settings {
		all[s.Key] = s.Value
	}

	writeJSONSuccess(w, map[string]any{"settings": all})
}

// UpdateSettings handles PUT /api/admin/settings. The body is a flat
// key/value object; each pair is upserted.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req) == 0 {
		writeJSONError(w, http.StatusBadRequest, "No settings provided")
		return
	}

	for key, value := range req {
		key = strings.TrimSpace(key)
		if key == "" {
			writeJSONError(w, http.StatusBadRequest, "Empty setting key")
			return
		}
		if err := h.queries.UpsertSetting(r.Context(), key, strings.TrimSpace(value)); err != nil {
			h.logger.Error("failed to upsert setting", "error", err, "key", key)
			writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	h.logger.Info("settings updated", "count", len(req))
	writeJSONSuccess(w, nil)
}
