// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"vitrine/internal/model"
)

const teamColumns = `id, name, title, title_fr, bio, bio_fr, email, image_url, display_order, created_at, updated_at`

func scanTeamMember(row *sql.Row) (TeamMember, error) {
	var m TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Title, &m.TitleFr, &m.Bio, &m.BioFr,
		&m.Email, &m.ImageURL, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// GetTeamMemberByID returns a team member by id.
func (q *Queries) GetTeamMemberByID(ctx context.Context, id int64) (TeamMember, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM team WHERE id = ?`, id)
	return scanTeamMember(row)
}

// ListTeamMembers returns all team members ordered by display order.
func (q *Queries) ListTeamMembers(ctx context.Context) ([]TeamMember, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM team ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var members []TeamMember
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Title, &m.TitleFr, &m.Bio, &m.BioFr,
			&m.Email, &m.ImageURL, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// NextTeamDisplayOrder returns the next display_order value for a new member.
func (q *Queries) NextTeamDisplayOrder(ctx context.Context) (int64, error) {
	var next int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) + 1 FROM team`).Scan(&next)
	return next, err
}

// CreateTeamMemberParams holds parameters for CreateTeamMember.
type CreateTeamMemberParams struct {
	Name         string
	Title        string
	TitleFr      sql.NullString
	Bio          string
	BioFr        sql.NullString
	Email        sql.NullString
	ImageURL     sql.NullString
	DisplayOrder int64
}

// CreateTeamMember inserts a new team member and returns the created row.
func (q *Queries) CreateTeamMember(ctx context.Context, arg CreateTeamMemberParams) (TeamMember, error) {
	now := time.Now()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO team (name, title, title_fr, bio, bio_fr, email, image_url, display_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.Title, arg.TitleFr, arg.Bio, arg.BioFr, arg.Email, arg.ImageURL, arg.DisplayOrder, now, now)
	if err != nil {
		return TeamMember{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return TeamMember{}, err
	}
	return q.GetTeamMemberByID(ctx, id)
}

// UpdateTeamMember applies a partial update to a team member.
func (q *Queries) UpdateTeamMember(ctx context.Context, id int64, patch model.TeamPatch) (TeamMember, error) {
	b := newUpdateBuilder("team")
	if patch.Name.Set && !patch.Name.Null {
		b.Set("name", patch.Name.Value)
	}
	if patch.Title.Set {
		b.SetString("title", patch.Title.Ptr())
	}
	if patch.TitleFr.Set {
		b.SetNullString("title_fr", patch.TitleFr.Ptr())
	}
	if patch.Bio.Set {
		b.SetString("bio", patch.Bio.Ptr())
	}
	if patch.BioFr.Set {
		b.SetNullString("bio_fr", patch.BioFr.Ptr())
	}
	if patch.Email.Set {
		b.SetNullString("email", patch.Email.Ptr())
	}
	if patch.ImageURL.Set {
		b.SetNullString("image_url", patch.ImageURL.Ptr())
	}
	if patch.DisplayOrder.Set && !patch.DisplayOrder.Null {
		b.Set("display_order", patch.DisplayOrder.Value)
	}
	if b.Empty() {
		return q.GetTeamMemberByID(ctx, id)
	}

	query, args := b.Query(id, time.Now())
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return TeamMember{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return TeamMember{}, sql.ErrNoRows
	}
	return q.GetTeamMemberByID(ctx, id)
}

// DeleteTeamMember removes a team member. Returns sql.ErrNoRows if the id is unknown.
func (q *Queries) DeleteTeamMember(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM team WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
