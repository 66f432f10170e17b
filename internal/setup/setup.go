// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package setup implements the first-run wizard. It runs as a separate
// binary before the main server: it writes the env file, initializes the
// database, and creates the first admin account.
package setup

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"vitrine/internal/auth"
	"vitrine/internal/i18n"
	"vitrine/internal/model"
	"vitrine/internal/store"
)

// Wizard serves the first-run setup flow.
type Wizard struct {
	envPath string
	logger  *slog.Logger
}

// NewWizard creates a wizard that writes configuration to envPath.
func NewWizard(envPath string, logger *slog.Logger) *Wizard {
	return &Wizard{envPath: envPath, logger: logger}
}

// Routes builds the wizard router.
func (wz *Wizard) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/", wz.page)
	r.Get("/api/setup/status", wz.status)
	r.Post("/api/setup", wz.run)

	return r
}

// configured reports whether setup already produced an env file with a
// session secret.
func (wz *Wizard) configured() bool {
	env, err := godotenv.Read(wz.envPath)
	if err != nil {
		return false
	}
	return env["SESSION_SECRET"] != ""
}

func (wz *Wizard) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"configured": wz.configured()})
}

// AdminAccount is the first admin user created by setup.
type AdminAccount struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Request is the JSON body for running setup.
type Request struct {
	SiteName        string       `json:"site_name"`
	SiteTagline     string       `json:"site_tagline"`
	ContactEmail    string       `json:"contact_email"`
	DefaultLanguage string       `json:"default_language"`
	DBPath          string       `json:"db_path"`
	FrontendURL     string       `json:"frontend_url"`
	Port            int          `json:"port"`
	Admin           AdminAccount `json:"admin"`
}

// run executes the whole setup: env file, database, admin user, settings.
// It refuses to run twice.
func (wz *Wizard) run(w http.ResponseWriter, r *http.Request) {
	if wz.configured() {
		writeJSONError(w, http.StatusConflict, "Setup has already been completed")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	secret, err := randomSecret()
	if err != nil {
		wz.logger.Error("failed to generate session secret", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	env := map[string]string{
		"SESSION_SECRET":  secret,
		"VITRINE_DB_PATH": req.DBPath,
		"VITRINE_ENV":     "production",
		"FRONTEND_URL":    req.FrontendURL,
		"PORT":            strconv.Itoa(req.Port),
	}
	if err := godotenv.Write(env, wz.envPath); err != nil {
		wz.logger.Error("failed to write env file", "error", err, "path", wz.envPath)
		writeJSONError(w, http.StatusInternalServerError, "Failed to write configuration")
		return
	}

	if err := wz.initDatabase(r, &req); err != nil {
		// Leave no half-written config behind so setup can be retried
		_ = os.Remove(wz.envPath)
		wz.logger.Error("database initialization failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to initialize database")
		return
	}

	wz.logger.Info("setup completed", "db_path", req.DBPath, "admin_email", req.Admin.Email)
	writeJSONSuccess(w, map[string]any{
		"message": "Setup complete. Start the main server and sign in with your admin account.",
	})
}

func (wz *Wizard) initDatabase(r *http.Request, req *Request) error {
	db, err := store.NewDB(req.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if err := store.Seed(r.Context(), db); err != nil {
		return fmt.Errorf("seeding defaults: %w", err)
	}

	queries := store.New(db)
	hash, err := auth.HashPassword(req.Admin.Password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	_, err = queries.CreateUser(r.Context(), store.CreateUserParams{
		FirstName:    strings.TrimSpace(req.Admin.FirstName),
		LastName:     strings.TrimSpace(req.Admin.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Admin.Email)),
		IsAdmin:      true,
		PasswordHash: sql.NullString{String: hash, Valid: true},
	})
	if err != nil && !store.IsUniqueViolation(err) {
		return fmt.Errorf("creating admin user: %w", err)
	}

	settings := map[string]string{
		model.SettingKeySiteName:       strings.TrimSpace(req.SiteName),
		model.SettingKeySiteTagline:    strings.TrimSpace(req.SiteTagline),
		model.SettingKeyContactEmail:   strings.TrimSpace(req.ContactEmail),
		model.SettingKeyDefaultLang:    req.DefaultLanguage,
		model.SettingKeySetupCompleted: time.Now().UTC().Format(time.RFC3339),
	}
	for key, value := range settings {
		if err := queries.UpsertSetting(r.Context(), key, value); err != nil {
			return fmt.Errorf("writing setting %q: %w", key, err)
		}
	}
	return nil
}

func validate(req *Request) error {
	if strings.TrimSpace(req.SiteName) == "" {
		return errors.New("site name is required")
	}
	if strings.TrimSpace(req.Admin.FirstName) == "" || strings.TrimSpace(req.Admin.LastName) == "" {
		return errors.New("admin name is required")
	}
	if !strings.Contains(req.Admin.Email, "@") {
		return errors.New("a valid admin email is required")
	}
	if err := auth.ValidatePassword(req.Admin.Password); err != nil {
		return err
	}
	if req.DefaultLanguage == "" {
		req.DefaultLanguage = i18n.LangEN
	}
	if _, ok := i18n.Normalize(req.DefaultLanguage); !ok {
		return errors.New("default language must be en or fr")
	}
	if req.DBPath == "" {
		req.DBPath = "./data/vitrine.db"
	}
	if req.FrontendURL == "" {
		req.FrontendURL = "http://localhost:3000"
	}
	if req.Port == 0 {
		req.Port = 8080
	}
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawStdEncoding.EncodeToString(buf), nil
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{"success": false, "error": message})
}

func writeJSONSuccess(w http.ResponseWriter, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	writeJSON(w, http.StatusOK, data)
}
