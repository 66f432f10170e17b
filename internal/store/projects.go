// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"vitrine/internal/model"
)

const projectColumns = `id, title, title_fr, description, description_fr, type_id, status, git_url, demo_url, image_url, display_order, created_at, updated_at`

func scanProject(row *sql.Row) (Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.TitleFr, &p.Description, &p.DescriptionFr,
		&p.TypeID, &p.Status, &p.GitURL, &p.DemoURL, &p.ImageURL,
		&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// GetProjectByID returns a project by id.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (Project, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// ListProjects returns all projects ordered by display order.
func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.TitleFr, &p.Description, &p.DescriptionFr,
			&p.TypeID, &p.Status, &p.GitURL, &p.DemoURL, &p.ImageURL,
			&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// NextProjectDisplayOrder returns the next display_order value for a new project.
func (q *Queries) NextProjectDisplayOrder(ctx context.Context) (int64, error) {
	var next int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) + 1 FROM projects`).Scan(&next)
	return next, err
}

// CreateProjectParams holds parameters for CreateProject.
type CreateProjectParams struct {
	Title         string
	TitleFr       sql.NullString
	Description   string
	DescriptionFr sql.NullString
	TypeID        int64
	Status        string
	GitURL        sql.NullString
	DemoURL       sql.NullString
	ImageURL      sql.NullString
	DisplayOrder  int64
}

// CreateProject inserts a new project and returns the created row.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	now := time.Now()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO projects (title, title_fr, description, description_fr, type_id, status, git_url, demo_url, image_url, display_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.TitleFr, arg.Description, arg.DescriptionFr, arg.TypeID, arg.Status,
		arg.GitURL, arg.DemoURL, arg.ImageURL, arg.DisplayOrder, now, now)
	if err != nil {
		return Project{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Project{}, err
	}
	return q.GetProjectByID(ctx, id)
}

// UpdateProject applies a partial update to a project.
func (q *Queries) UpdateProject(ctx context.Context, id int64, patch model.ProjectPatch) (Project, error) {
	b := newUpdateBuilder("projects")
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
	if patch.TypeID.Set && !patch.TypeID.Null {
		b.Set("type_id", patch.TypeID.Value)
	}
	if patch.Status.Set && !patch.Status.Null {
		b.Set("status", patch.Status.Value)
	}
	if patch.GitURL.Set {
		b.SetNullString("git_url", patch.GitURL.Ptr())
	}
	if patch.DemoURL.Set {
		b.SetNullString("demo_url", patch.DemoURL.Ptr())
	}
	if patch.ImageURL.Set {
		b.SetNullString("image_url", patch.ImageURL.Ptr())
	}
	if patch.DisplayOrder.Set && !patch.DisplayOrder.Null {
		b.Set("display_order", patch.DisplayOrder.Value)
	}
	if b.Empty() {
		return q.GetProjectByID(ctx, id)
	}

	query, args := b.Query(id, time.Now())
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Project{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Project{}, sql.ErrNoRows
	}
	return q.GetProjectByID(ctx, id)
}

// DeleteProject removes a project. Returns sql.ErrNoRows if the id is unknown.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetProjectTypeByID returns a project type by id.
func (q *Queries) GetProjectTypeByID(ctx context.Context, id int64) (ProjectType, error) {
	var t ProjectType
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, name_fr, display_order, created_at, updated_at FROM project_types WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.NameFr, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// ListProjectTypes returns all project types ordered by display order.
func (q *Queries) ListProjectTypes(ctx context.Context) ([]ProjectType, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, name_fr, display_order, created_at, updated_at FROM project_types ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var types []ProjectType
	for rows.Next() {
		var t ProjectType
		if err := rows.Scan(&t.ID, &t.Name, &t.NameFr, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// NextProjectTypeDisplayOrder returns the next display_order value for a
// new project type.
func (q *Queries) NextProjectTypeDisplayOrder(ctx context.Context) (int64, error) {
	var next int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) + 1 FROM project_types`).Scan(&next)
	return next, err
}

// CreateProjectTypeParams holds parameters for CreateProjectType.
type CreateProjectTypeParams struct {
	Name         string
	NameFr       sql.NullString
	DisplayOrder int64
}

// CreateProjectType inserts a new project type and returns the created row.
func (q *Queries) CreateProjectType(ctx context.Context, arg CreateProjectTypeParams) (ProjectType, error) {
	now := time.Now()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO project_types (name, name_fr, display_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		arg.Name, arg.NameFr, arg.DisplayOrder, now, now)
	if err != nil {
		return ProjectType{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return ProjectType{}, err
	}
	return q.GetProjectTypeByID(ctx, id)
}

// UpdateProjectTypeParams holds parameters for UpdateProjectType.
type UpdateProjectTypeParams struct {
	Name   *string
	NameFr *string
}

// UpdateProjectType updates a project type's names.
func (q *Queries) UpdateProjectType(ctx context.Context, id int64, arg UpdateProjectTypeParams) (ProjectType, error) {
	b := newUpdateBuilder("project_types")
	if arg.Name != nil {
		b.Set("name", *arg.Name)
	}
	if arg.NameFr != nil {
		b.Set("name_fr", *arg.NameFr)
	}
	if b.Empty() {
		return q.GetProjectTypeByID(ctx, id)
	}

	query, args := b.Query(id, time.Now())
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return ProjectType{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ProjectType{}, sql.ErrNoRows
	}
	return q.GetProjectTypeByID(ctx, id)
}

// DeleteProjectType removes a project type. Fails with a FOREIGN KEY error
// when projects still reference it.
func (q *Queries) DeleteProjectType(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM project_types WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
