// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"vitrine/internal/mailer"
	"vitrine/internal/session"
)

const maxContactFieldLen = 200

// ContactRequest is the JSON body for the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendEmail handles POST /api/send-email. The session must carry a
// verified CAPTCHA; the flag is cleared only once a message is actually
// delivered, so a rejected body or a mailer outage does not force the
// visitor back through the CAPTCHA.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.GetBool(r.Context(), session.KeyCaptchaVerified) {
		writeJSONError(w, http.StatusForbidden, "CAPTCHA verification required")
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if len(req.Name) > maxContactFieldLen || len(req.Subject) > maxContactFieldLen {
		writeJSONError(w, http.StatusBadRequest, "Field too long")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	err := h.mailer.Send(r.Context(), mailer.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		h.logger.Error("contact email delivery failed", "error", err, "from", req.Email)
		writeJSONError(w, http.StatusBadGateway, "Failed to send message")
		return
	}

	h.sessions.Remove(r.Context(), session.KeyCaptchaVerified)
	writeJSONSuccess(w, nil)
}
