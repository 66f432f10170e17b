// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"

	"vitrine/internal/captcha"
	"vitrine/internal/session"
)

// Captcha handles GET /api/captcha: it renders a fresh challenge as a PNG
// and stores the answer in the session. Requesting a new challenge always
// invalidates the previous one.
func (h *Handler) Captcha(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.captcha.Generate()
	if err != nil {
		h.logger.Error("captcha generation failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.sessions.Put(r.Context(), session.KeyCaptchaAnswer, challenge.Answer)
	h.sessions.Remove(r.Context(), session.KeyCaptchaVerified)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(challenge.PNG)
}

// CaptchaDataURL handles GET /api/captcha-data-url: the same challenge as
// /api/captcha, delivered as a base64 data URL for inline <img> use.
func (h *Handler) CaptchaDataURL(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.captcha.Generate()
	if err != nil {
		h.logger.Error("captcha generation failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.sessions.Put(r.Context(), session.KeyCaptchaAnswer, challenge.Answer)
	h.sessions.Remove(r.Context(), session.KeyCaptchaVerified)

	w.Header().Set("Cache-Control", "no-store")
	writeJSONSuccess(w, map[string]any{"image": challenge.DataURL})
}

// VerifyCaptchaRequest is the JSON body for CAPTCHA verification.
type VerifyCaptchaRequest struct {
	Answer string `json:"answer"`
}

// VerifyCaptcha handles POST /api/verify-captcha. A correct answer marks
// the session verified; the challenge is consumed either way, so each
// image allows exactly one attempt.
func (h *Handler) VerifyCaptcha(w http.ResponseWriter, r *http.Request) {
	var req VerifyCaptchaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expected := h.sessions.PopString(r.Context(), session.KeyCaptchaAnswer)
	if expected == "" {
		writeJSONError(w, http.StatusBadRequest, "CAPTCHA expired, request a new one")
		return
	}

	if !captcha.Verify(expected, req.Answer) {
		writeJSONError(w, http.StatusBadRequest, "Incorrect CAPTCHA answer")
		return
	}

	h.sessions.Put(r.Context(), session.KeyCaptchaVerified, true)
	writeJSONSuccess(w, nil)
}
