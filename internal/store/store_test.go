// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"vitrine/internal/model"
	"vitrine/internal/store"
	"vitrine/internal/testutil"
)

func newStore(t *testing.T) (*sql.DB, *store.Queries) {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	return db, store.New(db)
}

func createType(t *testing.T, q *store.Queries, name string) store.ProjectType {
	t.Helper()
	pt, err := q.CreateProjectType(context.Background(), store.CreateProjectTypeParams{
		Name:         name,
		DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("CreateProjectType: %v", err)
	}
	return pt
}

func TestCreateAndGetUser(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	user, err := q.CreateUser(ctx, store.CreateUserParams{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		IsAdmin:      true,
		PasswordHash: sql.NullString{String: "hash", Valid: true},
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected non-zero user id")
	}
	if !user.IsAdmin {
		t.Error("expected admin user")
	}

	got, err := q.GetUserByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("got id %d, want %d", got.ID, user.ID)
	}
	if !got.HasPassword() {
		t.Error("expected HasPassword() = true")
	}
	if got.HasGoogleIdentity() {
		t.Error("expected HasGoogleIdentity() = false")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	params := store.CreateUserParams{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	}
	if _, err := q.CreateUser(ctx, params); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := q.CreateUser(ctx, params)
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	if !store.IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}
}

func TestLinkGoogleIdentity(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	user, err := q.CreateUser(ctx, store.CreateUserParams{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := q.LinkGoogleIdentity(ctx, user.ID, "google-123"); err != nil {
		t.Fatalf("LinkGoogleIdentity: %v", err)
	}

	got, err := q.GetUserByGoogleID(ctx, "google-123")
	if err != nil {
		t.Fatalf("GetUserByGoogleID: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("got id %d, want %d", got.ID, user.ID)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	_, q := newStore(t)

	err := q.DeleteUser(context.Background(), 9999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("DeleteUser(9999) = %v, want sql.ErrNoRows", err)
	}
}

func TestUpsertSetting(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	if err := q.UpsertSetting(ctx, "site_name", "First"); err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}
	if err := q.UpsertSetting(ctx, "site_name", "Second"); err != nil {
		t.Fatalf("UpsertSetting (update): %v", err)
	}

	got, err := q.GetSetting(ctx, "site_name")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if got.Value != "Second" {
		t.Errorf("value = %q, want %q", got.Value, "Second")
	}
}

func TestUpdateAboutSectionPatch(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	section, err := q.CreateAboutSection(ctx, store.CreateAboutSectionParams{
		Title:        "Our story",
		TitleFr:      sql.NullString{String: "Notre histoire", Valid: true},
		Description:  "Once upon a time",
		DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("CreateAboutSection: %v", err)
	}

	// Update only the title; the explicit null clears title_fr
	patch := model.AboutPatch{}
	patch.Title.Set = true
	patch.Title.Value = "Our updated story"
	patch.TitleFr.Set = true
	patch.TitleFr.Null = true

	updated, err := q.UpdateAboutSection(ctx, section.ID, patch)
	if err != nil {
		t.Fatalf("UpdateAboutSection: %v", err)
	}
	if updated.Title != "Our updated story" {
		t.Errorf("title = %q, want updated", updated.Title)
	}
	if updated.TitleFr.Valid {
		t.Error("title_fr should be cleared by explicit null")
	}
	if updated.Description != "Once upon a time" {
		t.Errorf("description changed unexpectedly: %q", updated.Description)
	}
}

func TestUpdateAboutSectionNotFound(t *testing.T) {
	_, q := newStore(t)

	patch := model.AboutPatch{}
	patch.Title.Set = true
	patch.Title.Value = "x"

	_, err := q.UpdateAboutSection(context.Background(), 9999, patch)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateAboutSection(9999) = %v, want sql.ErrNoRows", err)
	}
}

func TestNextDisplayOrder(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	next, err := q.NextTeamDisplayOrder(ctx)
	if err != nil {
		t.Fatalf("NextTeamDisplayOrder: %v", err)
	}
	if next != 1 {
		t.Errorf("empty table next order = %d, want 1", next)
	}

	_, err = q.CreateTeamMember(ctx, store.CreateTeamMemberParams{
		Name: "Ada", Title: "Engineer", Bio: "bio", DisplayOrder: next,
	})
	if err != nil {
		t.Fatalf("CreateTeamMember: %v", err)
	}

	next, err = q.NextTeamDisplayOrder(ctx)
	if err != nil {
		t.Fatalf("NextTeamDisplayOrder: %v", err)
	}
	if next != 2 {
		t.Errorf("next order = %d, want 2", next)
	}
}

func TestReorder(t *testing.T) {
	db, q := newStore(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"A", "B", "C"} {
		s, err := q.CreateAboutSection(ctx, store.CreateAboutSectionParams{
			Title: title, Description: "d", DisplayOrder: int64(len(ids) + 1),
		})
		if err != nil {
			t.Fatalf("CreateAboutSection: %v", err)
		}
		ids = append(ids, s.ID)
	}

	// Reverse the order
	if err := store.Reorder(ctx, db, "about", []int64{ids[2], ids[1], ids[0]}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	sections, err := q.ListAboutSections(ctx)
	if err != nil {
		t.Fatalf("ListAboutSections: %v", err)
	}
	if sections[0].Title != "C" || sections[2].Title != "A" {
		t.Errorf("order after reorder = %q, %q, %q", sections[0].Title, sections[1].Title, sections[2].Title)
	}
	for i, s := range sections {
		if s.DisplayOrder != int64(i+1) {
			t.Errorf("display_order[%d] = %d, want %d", i, s.DisplayOrder, i+1)
		}
	}
}

func TestReorderUnknownIDRollsBack(t *testing.T) {
	db, q := newStore(t)
	ctx := context.Background()

	a, err := q.CreateAboutSection(ctx, store.CreateAboutSectionParams{
		Title: "A", Description: "d", DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("CreateAboutSection: %v", err)
	}

	err = store.Reorder(ctx, db, "about", []int64{9999, a.ID})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("Reorder with unknown id = %v, want sql.ErrNoRows", err)
	}

	// Original order must be untouched
	got, err := q.GetAboutSectionByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAboutSectionByID: %v", err)
	}
	if got.DisplayOrder != 1 {
		t.Errorf("display_order = %d after failed reorder, want 1", got.DisplayOrder)
	}
}

func TestReorderUnknownEntity(t *testing.T) {
	db, _ := newStore(t)

	if err := store.Reorder(context.Background(), db, "users", []int64{1}); err == nil {
		t.Error("expected error for entity without display_order")
	}
}

func TestDeleteProjectTypeInUse(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	pt := createType(t, q, "Web")

	_, err := q.CreateProject(ctx, store.CreateProjectParams{
		Title: "Site", Description: "d", TypeID: pt.ID,
		Status: model.StatusPlanned, DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	err = q.DeleteProjectType(ctx, pt.ID)
	if err == nil {
		t.Fatal("expected FK error deleting a type in use")
	}
	if !store.IsForeignKeyViolation(err) {
		t.Errorf("IsForeignKeyViolation(%v) = false, want true", err)
	}
}

func TestCreateProjectUnknownType(t *testing.T) {
	_, q := newStore(t)

	_, err := q.CreateProject(context.Background(), store.CreateProjectParams{
		Title: "Site", Description: "d", TypeID: 9999,
		Status: model.StatusPlanned, DisplayOrder: 1,
	})
	if err == nil {
		t.Fatal("expected FK error for unknown type")
	}
	if !store.IsForeignKeyViolation(err) {
		t.Errorf("IsForeignKeyViolation(%v) = false, want true", err)
	}
}

// The constraint classifiers match on SQLite's error text, which must
// hold for the cgo driver as well as the app's pure-Go one.
func TestConstraintErrorsAcrossDrivers(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	ctx := context.Background()

	stmts := []string{
		`PRAGMA foreign_keys = ON`,
		`CREATE TABLE kinds (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`,
		`CREATE TABLE items (id INTEGER PRIMARY KEY, kind_id INTEGER NOT NULL REFERENCES kinds(id))`,
		`INSERT INTO kinds (name) VALUES ('web')`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}

	_, err := db.ExecContext(ctx, `INSERT INTO kinds (name) VALUES ('web')`)
	if !store.IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}
	if store.IsForeignKeyViolation(err) {
		t.Errorf("IsForeignKeyViolation(%v) = true for a unique violation", err)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO items (kind_id) VALUES (9999)`)
	if !store.IsForeignKeyViolation(err) {
		t.Errorf("IsForeignKeyViolation(%v) = false, want true", err)
	}
}

func TestProjectStatusConstraint(t *testing.T) {
	_, q := newStore(t)
	ctx := context.Background()

	pt := createType(t, q, "Web")

	_, err := q.CreateProject(ctx, store.CreateProjectParams{
		Title: "Site", Description: "d", TypeID: pt.ID,
		Status: "bogus", DisplayOrder: 1,
	})
	if err == nil {
		t.Error("expected CHECK constraint error for invalid status")
	}
}
