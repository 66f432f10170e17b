// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"vitrine/internal/auth"
	"vitrine/internal/model"
	"vitrine/internal/store"
	"vitrine/internal/testutil"
)

func newWizard(t *testing.T) (*Wizard, string, string) {
	t.Helper()
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	dbPath := filepath.Join(dir, "vitrine.db")
	return NewWizard(envPath, testutil.TestLogger()), envPath, dbPath
}

func postSetup(t *testing.T, wz *Wizard, req Request) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	rec := httptest.NewRecorder()
	wz.Routes().ServeHTTP(rec, httptest.NewRequest("POST", "/api/setup", bytes.NewReader(data)))
	return rec
}

func validRequest(dbPath string) Request {
	return Request{
		SiteName: "Vitrine Inc",
		DBPath:   dbPath,
		Admin: AdminAccount{
			FirstName: "Site",
			LastName:  "Owner",
			Email:     "Owner@Example.com",
			Password:  "first-admin-password",
		},
	}
}

func TestValidateDefaults(t *testing.T) {
	req := validRequest("")
	if err := validate(&req); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if req.DefaultLanguage != "en" {
		t.Errorf("DefaultLanguage = %q", req.DefaultLanguage)
	}
	if req.DBPath != "./data/vitrine.db" {
		t.Errorf("DBPath = %q", req.DBPath)
	}
	if req.FrontendURL != "http://localhost:3000" {
		t.Errorf("FrontendURL = %q", req.FrontendURL)
	}
	if req.Port != 8080 {
		t.Errorf("Port = %d", req.Port)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing site name", func(r *Request) { r.SiteName = " " }},
		{"missing admin name", func(r *Request) { r.Admin.FirstName = "" }},
		{"bad admin email", func(r *Request) { r.Admin.Email = "not-an-email" }},
		{"short password", func(r *Request) { r.Admin.Password = "short" }},
		{"unsupported language", func(r *Request) { r.DefaultLanguage = "de" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest("")
			tt.mutate(&req)
			if err := validate(&req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStatus(t *testing.T) {
	wz, envPath, _ := newWizard(t)

	rec := httptest.NewRecorder()
	wz.Routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/setup/status", nil))
	var body struct {
		Configured bool `json:"configured"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if body.Configured {
		t.Error("fresh wizard should not report configured")
	}

	if err := godotenv.Write(map[string]string{"SESSION_SECRET": "x"}, envPath); err != nil {
		t.Fatalf("writing env: %v", err)
	}
	rec = httptest.NewRecorder()
	wz.Routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/setup/status", nil))
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if !body.Configured {
		t.Error("wizard should report configured after env file exists")
	}
}

func TestRunSetup(t *testing.T) {
	wz, envPath, dbPath := newWizard(t)

	rec := postSetup(t, wz, validRequest(dbPath))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Env file carries the generated secret and chosen paths
	env, err := godotenv.Read(envPath)
	if err != nil {
		t.Fatalf("reading env file: %v", err)
	}
	if len(env["SESSION_SECRET"]) < 32 {
		t.Errorf("SESSION_SECRET too short: %d bytes", len(env["SESSION_SECRET"]))
	}
	if env["VITRINE_DB_PATH"] != dbPath {
		t.Errorf("VITRINE_DB_PATH = %q", env["VITRINE_DB_PATH"])
	}
	if env["VITRINE_ENV"] != "production" {
		t.Errorf("VITRINE_ENV = %q", env["VITRINE_ENV"])
	}

	// Database has the admin account and settings
	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	queries := store.New(db)
	ctx := context.Background()
	admin, err := queries.GetUserByEmail(ctx, "owner@example.com")
	if err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("first user must be admin")
	}
	match, err := auth.CheckPassword("first-admin-password", admin.PasswordHash.String)
	if err != nil || !match {
		t.Errorf("admin password does not verify: match=%v err=%v", match, err)
	}

	siteName, err := queries.GetSetting(ctx, model.SettingKeySiteName)
	if err != nil || siteName.Value != "Vitrine Inc" {
		t.Errorf("site_name = %+v, err = %v", siteName, err)
	}
	if _, err := queries.GetSetting(ctx, model.SettingKeySetupCompleted); err != nil {
		t.Errorf("setup_completed missing: %v", err)
	}
}

func TestRunSetupTwice(t *testing.T) {
	wz, _, dbPath := newWizard(t)

	rec := postSetup(t, wz, validRequest(dbPath))
	if rec.Code != http.StatusOK {
		t.Fatalf("first run: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = postSetup(t, wz, validRequest(dbPath))
	if rec.Code != http.StatusConflict {
		t.Errorf("second run: status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRunSetupValidationError(t *testing.T) {
	wz, envPath, dbPath := newWizard(t)

	req := validRequest(dbPath)
	req.Admin.Password = "short"
	rec := postSetup(t, wz, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	// Nothing written on failure
	if _, err := godotenv.Read(envPath); err == nil {
		t.Error("env file should not exist after a failed run")
	}
}
