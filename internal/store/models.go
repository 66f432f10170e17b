// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// User represents a site user.
type User struct {
	ID           int64          `json:"id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `json:"email"`
	IsAdmin      bool           `json:"is_admin"`
	GoogleID     sql.NullString `json:"-"`
	PasswordHash sql.NullString `json:"-"` // Never expose in JSON
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// HasGoogleIdentity returns true if the user is linked to a Google account.
func (u *User) HasGoogleIdentity() bool {
	return u.GoogleID.Valid && u.GoogleID.String != ""
}

// HasPassword returns true if the user has a local password set.
func (u *User) HasPassword() bool {
	return u.PasswordHash.Valid && u.PasswordHash.String != ""
}

// Setting represents a key/value configuration pair.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AboutSection represents a bilingual content block on the about page.
type AboutSection struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	TitleFr       sql.NullString `json:"title_fr"`
	Description   string         `json:"description"`
	DescriptionFr sql.NullString `json:"description_fr"`
	ImageURL      sql.NullString `json:"image_url"`
	DisplayOrder  int64          `json:"display_order"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TeamMember represents a bilingual team member profile.
type TeamMember struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Title        string         `json:"title"`
	TitleFr      sql.NullString `json:"title_fr"`
	Bio          string         `json:"bio"`
	BioFr        sql.NullString `json:"bio_fr"`
	Email        sql.NullString `json:"email"`
	ImageURL     sql.NullString `json:"image_url"`
	DisplayOrder int64          `json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ProjectType represents a project category.
type ProjectType struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	NameFr       sql.NullString `json:"name_fr"`
	DisplayOrder int64          `json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Project represents a bilingual project record.
type Project struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	TitleFr       sql.NullString `json:"title_fr"`
	Description   string         `json:"description"`
	DescriptionFr sql.NullString `json:"description_fr"`
	TypeID        int64          `json:"type_id"`
	Status        string         `json:"status"`
	GitURL        sql.NullString `json:"git_url"`
	DemoURL       sql.NullString `json:"demo_url"`
	ImageURL      sql.NullString `json:"image_url"`
	DisplayOrder  int64          `json:"display_order"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
