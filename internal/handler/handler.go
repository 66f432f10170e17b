// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/oauth2"

	"vitrine/internal/auth"
	"vitrine/internal/captcha"
	"vitrine/internal/config"
	"vitrine/internal/mailer"
	"vitrine/internal/store"
	"vitrine/internal/translate"
	"vitrine/internal/upload"
	"vitrine/internal/version"
)

// Handler bundles the dependencies shared by all HTTP handlers.
type Handler struct {
	db         *sql.DB
	queries    *store.Queries
	cfg        *config.Config
	sessions   *scs.SessionManager
	logger     *slog.Logger
	captcha    *captcha.Generator
	mailer     *mailer.Mailer
	translator *translate.Client
	uploads    *upload.Service
	oauth      *oauth2.Config
	build      version.Info
}

// New creates a handler with all dependencies wired.
func New(db *sql.DB, cfg *config.Config, sessions *scs.SessionManager,
	logger *slog.Logger, m *mailer.Mailer, uploads *upload.Service,
	build version.Info) *Handler {

	var oauthCfg *oauth2.Config
	if cfg.GoogleOAuthEnabled() {
		oauthCfg = auth.NewGoogleOAuthConfig(
			cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleOAuthCallbackURL())
	}

	return &Handler{
		db:         db,
		queries:    store.New(db),
		cfg:        cfg,
		sessions:   sessions,
		logger:     logger,
		captcha:    captcha.NewGenerator(),
		mailer:     m,
		translator: translate.NewClient(cfg.GoogleCloudAPIKey),
		uploads:    uploads,
		oauth:      oauthCfg,
		build:      build,
	}
}
