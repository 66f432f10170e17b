// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"vitrine/internal/i18n"
)

const maxTranslateLen = 5000

// TranslateRequest is the JSON body for the translation proxy.
type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Translate handles POST /api/translate. The proxy keeps the Google Cloud
// API key server-side; only requests from allowed origins are served.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	if !h.translator.Enabled() {
		writeJSONError(w, http.StatusNotFound, "Translation is not configured")
		return
	}
	if !h.originAllowed(r) {
		writeJSONError(w, http.StatusForbidden, "Origin not allowed")
		return
	}

	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeJSONError(w, http.StatusBadRequest, "Text is required")
		return
	}
	if len(req.Text) > maxTranslateLen {
		writeJSONError(w, http.StatusBadRequest, "Text too long")
		return
	}

	source, ok := i18n.Normalize(req.Source)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Unsupported source language")
		return
	}
	target, ok := i18n.Normalize(req.Target)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Unsupported target language")
		return
	}
	if source == target {
		writeJSONError(w, http.StatusBadRequest, "Source and target languages must differ")
		return
	}

	translated, err := h.translator.Translate(r.Context(), req.Text, source, target)
	if err != nil {
		h.logger.Error("translation failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, "Translation failed")
		return
	}

	writeJSONSuccess(w, map[string]any{"translated": translated})
}

// originAllowed checks the Origin header against the configured origins.
// Requests without an Origin header (same-origin or non-browser) pass.
func (h *Handler) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.cfg.AllowedOrigins() {
		if origin == allowed {
			return true
		}
	}
	return false
}
