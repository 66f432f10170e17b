// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"vitrine/internal/model"
)

const aboutColumns = `id, title, title_fr, description, description_fr, image_url, display_order, created_at, updated_at`

func scanAboutSection(row *sql.Row) (AboutSection, error) {
	var a AboutSection
	err := row.Scan(&a.ID, &a.Title, &a.TitleFr, &a.Description, &a.DescriptionFr,
		&a.ImageURL, &a.DisplayOrder, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetAboutSectionByID returns an about section by id.
func (q *Queries) GetAboutSectionByID(ctx context.Context, id int64) (AboutSection, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+aboutColumns+` FROM about WHERE id = ?`, id)
	return scanAboutSection(row)
}

// ListAboutSections returns all about sections ordered by display order.
func (q *Queries) ListAboutSections(ctx context.Context) ([]AboutSection, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+aboutColumns+` FROM about ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sections []AboutSection
	for rows.Next() {
		var a AboutSection
		if err := rows.Scan(&a.ID, &a.Title, &a.TitleFr, &a.Description, &a.DescriptionFr,
			&a.ImageURL, &a.DisplayOrder, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, a)
	}
	return sections, rows.Err()
}

// NextAboutDisplayOrder returns the next display_order value for a new section.
func (q *Queries) NextAboutDisplayOrder(ctx context.Context) (int64, error) {
	var next int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) + 1 FROM about`).Scan(&next)
	return next, err
}

// CreateAboutSectionParams holds parameters for CreateAboutSection.
type CreateAboutSectionParams struct {
	Title         string
	TitleFr       sql.NullString
	Description   string
	DescriptionFr sql.NullString
	ImageURL      sql.NullString
	DisplayOrder  int64
}

// CreateAboutSection inserts a new about section and returns the created row.
func (q *Queries) CreateAboutSection(ctx context.Context, arg CreateAboutSectionParams) (AboutSection, error) {
	now := time.Now()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO about (title, title_fr, description, description_fr, image_url, display_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.TitleFr, arg.Description, arg.DescriptionFr, arg.ImageURL, arg.DisplayOrder, now, now)
	if err != nil {
		return AboutSection{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return AboutSection{}, err
	}
	return q.GetAboutSectionByID(ctx, id)
}

// UpdateAboutSection applies a partial update to an about section.
func (q *Queries) UpdateAboutSection(ctx context.Context, id int64, patch model.AboutPatch) (AboutSection, error) {
	b := newUpdateBuilder("about")
	if patch.Title.Set && !patch.Title.Null {
		b.Set("title", patch.Title.Value)
	}
	if patch.TitleFr.Set {
		b.SetNullString("title_fr", patch.TitleFr.Ptr())
	}
	if patch.Description.Set {
		b.SetString("description", patch.Description.Ptr())
	}
	if patch.DescriptionFr.Set {
		b.SetNullString("description_fr", patch.DescriptionFr.Ptr())
	}
	if patch.ImageURL.Set {
		b.SetNullString("image_url", patch.ImageURL.Ptr())
	}
	if patch.DisplayOrder.Set && !patch.DisplayOrder.Null {
		b.Set("display_order", patch.DisplayOrder.Value)
	}
	if b.Empty() {
		return q.GetAboutSectionByID(ctx, id)
	}

	query, args := b.Query(id, time.Now())
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return AboutSection{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return AboutSection{}, sql.ErrNoRows
	}
	return q.GetAboutSectionByID(ctx, id)
}

// DeleteAboutSection removes an about section. Returns sql.ErrNoRows if the id is unknown.
func (q *Queries) DeleteAboutSection(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM about WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
