// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all markup; used for plain text fields.
var strictPolicy = bluemonday.StrictPolicy()

// ugcPolicy allows the markup the rich text editor produces.
var ugcPolicy = bluemonday.UGCPolicy()

// sanitizeText strips markup from a plain text field.
func sanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// sanitizeRichText sanitizes a rich text field, keeping safe HTML.
func sanitizeRichText(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// nullStringFromPtr converts a *string to sql.NullString. Nil and empty
// map to NULL.
func nullStringFromPtr(p *string) sql.NullString {
	if p == nil || strings.TrimSpace(*p) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.TrimSpace(*p), Valid: true}
}

// sanitizedNullString is nullStringFromPtr with plain text sanitization.
func sanitizedNullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	s := sanitizeText(*p)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// sanitizedNullRichText is nullStringFromPtr with rich text sanitization.
func sanitizedNullRichText(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	s := sanitizeRichText(*p)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
