// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"strings"
	"time"
)

// updateBuilder accumulates SET clauses for a partial UPDATE statement.
// Only columns that were explicitly present in the patch are appended, so
// absent fields are left untouched and explicit nulls clear nullable columns.
type updateBuilder struct {
	table   string
	clauses []string
	args    []any
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// Set appends a "col = ?" clause.
func (b *updateBuilder) Set(column string, value any) {
	b.clauses = append(b.clauses, column+" = ?")
	b.args = append(b.args, value)
}

// SetString appends a clause for a plain string field.
func (b *updateBuilder) SetString(column string, value *string) {
	if value == nil {
		b.Set(column, "")
		return
	}
	b.Set(column, *value)
}

// SetNullString appends a clause for a nullable string field. A nil pointer
// clears the column.
func (b *updateBuilder) SetNullString(column string, value *string) {
	if value == nil {
		b.Set(column, nil)
		return
	}
	b.Set(column, *value)
}

// Empty reports whether no clauses have been added.
func (b *updateBuilder) Empty() bool {
	return len(b.clauses) == 0
}

// Query returns the UPDATE statement and arguments for the given row id.
// An updated_at clause is always appended.
func (b *updateBuilder) Query(id int64, now time.Time) (string, []any) {
	clauses := append(b.clauses, "updated_at = ?")
	args := append(b.args, now, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", b.table, strings.Join(clauses, ", "))
	return query, args
}
