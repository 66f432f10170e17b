// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef" // 32 bytes

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data/vitrine.db", cfg.DBPath)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, "localhost:8080", cfg.ServerAddr())
	assert.False(t, cfg.GoogleOAuthEnabled())
	assert.False(t, cfg.TranslateEnabled())
	assert.False(t, cfg.EmailEnabled())
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestGoogleOAuthCallbackURL(t *testing.T) {
	cfg := Config{PublicURL: "https://api.example.com/"}
	assert.Equal(t, "https://api.example.com/api/auth/google/callback",
		cfg.GoogleOAuthCallbackURL())
}

func TestAllowedOrigins(t *testing.T) {
	dev := Config{Env: "development", FrontendURL: "https://example.com/"}
	origins := dev.AllowedOrigins()
	assert.Contains(t, origins, "https://example.com")
	assert.Contains(t, origins, "http://localhost:5173")

	prod := Config{Env: "production", FrontendURL: "https://example.com"}
	assert.Equal(t, []string{"https://example.com"}, prod.AllowedOrigins())
}

func TestEmailEnabled(t *testing.T) {
	cfg := Config{EmailHost: "smtp.example.com", EmailTo: "owner@example.com"}
	assert.True(t, cfg.EmailEnabled())
	assert.False(t, Config{EmailHost: "smtp.example.com"}.EmailEnabled())
}
