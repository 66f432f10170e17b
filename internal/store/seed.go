// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// Default site settings created on first run. The setup wizard overwrites
// these; until then the public API serves sensible placeholders.
var defaultSettings = map[string]string{
	"site_name":        "Vitrine",
	"site_tagline":     "",
	"contact_email":    "",
	"default_language": "en",
}

// Seed creates initial data in the database. It is idempotent: existing
// settings are never overwritten.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	for key, value := range defaultSettings {
		_, err := queries.GetSetting(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking setting %q: %w", key, err)
		}
		if err := queries.UpsertSetting(ctx, key, value); err != nil {
			return fmt.Errorf("seeding setting %q: %w", key, err)
		}
	}

	slog.Info("default settings seeded")
	return nil
}
