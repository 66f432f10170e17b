// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"VITRINE_DB_PATH" envDefault:"./data/vitrine.db"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	ServerHost    string `env:"VITRINE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"PORT" envDefault:"8080"`
	Env           string `env:"VITRINE_ENV" envDefault:"development"`
	LogLevel      string `env:"VITRINE_LOG_LEVEL" envDefault:"info"`
	UploadsDir    string `env:"VITRINE_UPLOADS_DIR" envDefault:"./uploads"`

	// FrontendURL is the public origin of the SPA; used for CORS and the
	// translate proxy's Origin allow-list.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// PublicURL is the externally reachable origin of this API server,
	// used to build the Google OAuth callback URL.
	PublicURL string `env:"VITRINE_PUBLIC_URL" envDefault:"http://localhost:8080"`

	// Google OAuth configuration
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	// Google Cloud Translate configuration
	GoogleCloudAPIKey string `env:"GOOGLE_CLOUD_API_KEY"`

	// SMTP configuration for the contact form
	EmailHost string `env:"EMAIL_HOST"`
	EmailPort int    `env:"EMAIL_PORT" envDefault:"587"`
	EmailUser string `env:"EMAIL_USER"`
	EmailPass string `env:"EMAIL_PASS"`
	EmailFrom string `env:"EMAIL_FROM"`
	EmailTo   string `env:"EMAIL_TO"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// GoogleOAuthCallbackURL returns the redirect URL registered with Google.
func (c Config) GoogleOAuthCallbackURL() string {
	return strings.TrimSuffix(c.PublicURL, "/") + "/api/auth/google/callback"
}

// GoogleOAuthEnabled returns true if Google OAuth is configured.
func (c Config) GoogleOAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// TranslateEnabled returns true if the translation proxy is configured.
func (c Config) TranslateEnabled() bool {
	return c.GoogleCloudAPIKey != ""
}

// EmailEnabled returns true if SMTP delivery is configured.
func (c Config) EmailEnabled() bool {
	return c.EmailHost != "" && c.EmailTo != ""
}

// AllowedOrigins returns the origins accepted for cross-origin API calls and
// the translate proxy.
func (c Config) AllowedOrigins() []string {
	origins := []string{strings.TrimSuffix(c.FrontendURL, "/")}
	if c.IsDevelopment() {
		origins = append(origins, "http://localhost:3000", "http://localhost:5173")
	}
	return origins
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	return cfg, nil
}
