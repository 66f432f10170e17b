// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"vitrine/internal/model"
)

const userColumns = `id, first_name, last_name, email, is_admin, google_id, password_hash, created_at, updated_at`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin,
		&u.GoogleID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetUserByID returns a user by id.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByEmail returns a user by email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUserByGoogleID returns a user by linked Google identity.
func (q *Queries) GetUserByGoogleID(ctx context.Context, googleID string) (User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = ?`, googleID)
	return scanUser(row)
}

// ListUsers returns all users ordered by creation time.
func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin,
			&u.GoogleID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountUsers returns the total number of users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// CreateUserParams holds parameters for CreateUser.
type CreateUserParams struct {
	FirstName    string
	LastName     string
	Email        string
	IsAdmin      bool
	GoogleID     sql.NullString
	PasswordHash sql.NullString
}

// CreateUser inserts a new user and returns the created row.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	now := time.Now()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, email, is_admin, google_id, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.FirstName, arg.LastName, arg.Email, arg.IsAdmin, arg.GoogleID, arg.PasswordHash, now, now)
	if err != nil {
		return User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	return q.GetUserByID(ctx, id)
}

// UpdateUser applies a partial update to a user. Absent fields are left
// untouched. Returns the updated row, or sql.ErrNoRows if the id is unknown.
func (q *Queries) UpdateUser(ctx context.Context, id int64, patch model.UserPatch, passwordHash *string) (User, error) {
	b := newUpdateBuilder("users")
	if patch.FirstName.Set {
		b.SetString("first_name", patch.FirstName.Ptr())
	}
	if patch.LastName.Set {
		b.SetString("last_name", patch.LastName.Ptr())
	}
	if patch.Email.Set && !patch.Email.Null {
		b.Set("email", patch.Email.Value)
	}
	if patch.IsAdmin.Set {
		b.Set("is_admin", patch.IsAdmin.Value)
	}
	if passwordHash != nil {
		b.Set("password_hash", *passwordHash)
	}
	if b.Empty() {
		return q.GetUserByID(ctx, id)
	}

	query, args := b.Query(id, time.Now())
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return User{}, sql.ErrNoRows
	}
	return q.GetUserByID(ctx, id)
}

// LinkGoogleIdentity sets the Google identity on an existing user.
func (q *Queries) LinkGoogleIdentity(ctx context.Context, id int64, googleID string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET google_id = ?, updated_at = ? WHERE id = ?`,
		googleID, time.Now(), id)
	return err
}

// DeleteUser removes a user. Returns sql.ErrNoRows if the id is unknown.
func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
