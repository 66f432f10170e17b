// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// parseIDParam extracts and validates the {id} URL parameter. On failure
// it writes a JSON 400 and returns false.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

// displayOrder resolves the display order for a create request. A supplied
// value is stored as-is; otherwise next computes the append position.
func (h *Handler) displayOrder(r *http.Request, supplied *int64,
	next func(context.Context) (int64, error)) (int64, error) {

	if supplied != nil {
		return *supplied, nil
	}
	return next(r.Context())
}

// nullStringPtr converts a sql.NullString to a *string for JSON output,
// where absent values serialize as null.
func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// requiredString reports whether a value is non-empty after trimming.
func requiredString(s string) bool {
	return strings.TrimSpace(s) != ""
}
