// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"vitrine/internal/middleware"
)

var startTime = time.Now()

// healthCheck is a single health check result.
type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Health handles GET /api/health. Unauthenticated callers get the bare
// status; admins see check details and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase(r)

	status := "ok"
	code := http.StatusOK
	if dbCheck.Status != "healthy" {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	user := middleware.GetUser(r)
	if user == nil || !user.IsAdmin {
		writeJSON(w, code, map[string]string{
			"status":  status,
			"version": h.build.Version,
		})
		return
	}

	writeJSON(w, code, map[string]any{
		"status":  status,
		"version": h.build.Version,
		"uptime":  time.Since(startTime).Round(time.Second).String(),
		"checks": map[string]healthCheck{
			"database": dbCheck,
		},
	})
}

func (h *Handler) checkDatabase(r *http.Request) healthCheck {
	start := time.Now()
	err := h.db.PingContext(r.Context())
	latency := time.Since(start)

	if err != nil {
		return healthCheck{Status: "unhealthy", Message: err.Error(), Latency: latency.String()}
	}
	return healthCheck{Status: "healthy", Latency: latency.String()}
}
