// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// reorderTables maps entity names to their table names. Only these tables
// carry a display_order column.
var reorderTables = map[string]string{
	"about":         "about",
	"team":          "team",
	"projects":      "projects",
	"project_types": "project_types",
}

// Reorder renormalizes display_order to 1..N for the given entity, following
// the submitted id order. The per-row updates run in a single transaction so
// the reorder is all-or-nothing: an unknown id rolls the whole batch back.
func Reorder(ctx context.Context, db *sql.DB, entity string, ids []int64) error {
	table, ok := reorderTables[entity]
	if !ok {
		return fmt.Errorf("unknown reorder entity %q", entity)
	}
	if len(ids) == 0 {
		return fmt.Errorf("empty id list")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		fmt.Sprintf("UPDATE %s SET display_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", table))
	if err != nil {
		return fmt.Errorf("preparing reorder statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, id := range ids {
		res, err := stmt.ExecContext(ctx, i+1, id)
		if err != nil {
			return fmt.Errorf("updating display order for id %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking affected rows for id %d: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("reorder id %d: %w", id, sql.ErrNoRows)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}
	return nil
}
