// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"vitrine/internal/store"
)

// ReorderRequest is the JSON body for batch reordering. IDs are listed in
// the desired display order.
type ReorderRequest struct {
	IDs []int64 `json:"ids"`
}

// reorder applies a drag-and-drop reordering for the given entity. The
// whole batch is one transaction: an unknown id rolls everything back.
func (h *Handler) reorder(w http.ResponseWriter, r *http.Request, entity string) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		writeJSONError(w, http.StatusBadRequest, "IDs are required")
		return
	}

	seen := make(map[int64]struct{}, len(req.IDs))
	for _, id := range req.IDs {
		if id <= 0 {
			writeJSONError(w, http.StatusBadRequest, "Invalid ID in list")
			return
		}
		if _, dup := seen[id]; dup {
			writeJSONError(w, http.StatusBadRequest, "Duplicate ID in list")
			return
		}
		seen[id] = struct{}{}
	}

	if err := store.Reorder(r.Context(), h.db, entity, req.IDs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusBadRequest, "Unknown ID in list")
			return
		}
		h.logger.Error("failed to reorder", "error", err, "entity", entity)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, nil)
}
