// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Session keys. The captcha flow is a small two-phase state machine:
// an issued challenge stores its answer under KeyCaptchaAnswer, and a
// successful verification moves it to the KeyCaptchaVerified flag, which the
// send-email endpoint clears once a message has been delivered.
const (
	KeyUserID          = "user_id"
	KeyCaptchaAnswer   = "captcha_answer"
	KeyCaptchaVerified = "captcha_verified"
	KeyOAuthState      = "oauth_state"
	KeyReturnTo        = "return_to"
)

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	// Use SQLite store
	sm.Store = sqlite3store.New(db)

	// Configure session
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return sm
}
