// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"vitrine/internal/auth"
	"vitrine/internal/middleware"
	"vitrine/internal/session"
	"vitrine/internal/store"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// LoginRequest is the JSON body for local credential login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		// Same response for unknown email and wrong password
		writeJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !user.HasPassword() {
		writeJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	match, err := auth.CheckPassword(req.Password, user.PasswordHash.String)
	if err != nil {
		h.logger.Error("password check failed", "error", err, "user_id", user.ID)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !match {
		writeJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Rotate the session token on privilege change
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		h.logger.Error("failed to renew session token", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.sessions.Put(r.Context(), session.KeyUserID, user.ID)

	h.logger.Info("user logged in", "user_id", user.ID, "email", user.Email)
	writeJSONSuccess(w, map[string]any{"user": userView(user)})
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		h.logger.Error("failed to destroy session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSONSuccess(w, nil)
}

// AuthStatus handles GET /api/auth/status. It reports the current session
// state without requiring authentication.
func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          userView(*user),
	})
}

// GoogleLogin handles GET /api/auth/google: it stores an anti-forgery
// state token in the session and redirects to Google's consent screen.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		writeJSONError(w, http.StatusNotFound, "Google sign-in is not configured")
		return
	}

	state, err := randomState()
	if err != nil {
		h.logger.Error("failed to generate oauth state", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.sessions.Put(r.Context(), session.KeyOAuthState, state)

	if returnTo := r.URL.Query().Get("return_to"); isSafeReturnPath(returnTo) {
		h.sessions.Put(r.Context(), session.KeyReturnTo, returnTo)
	}

	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback handles GET /api/auth/google/callback.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		writeJSONError(w, http.StatusNotFound, "Google sign-in is not configured")
		return
	}

	wantState := h.sessions.PopString(r.Context(), session.KeyOAuthState)
	if wantState == "" || r.URL.Query().Get("state") != wantState {
		writeJSONError(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing authorization code")
		return
	}

	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("oauth code exchange failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, "Google sign-in failed")
		return
	}

	profile, err := h.fetchGoogleProfile(r, token.AccessToken)
	if err != nil {
		h.logger.Error("fetching google profile failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, "Google sign-in failed")
		return
	}

	user, err := auth.UpsertUserFromGoogle(r.Context(), h.queries, profile)
	if err != nil {
		h.logger.Error("resolving google user failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := h.sessions.RenewToken(r.Context()); err != nil {
		h.logger.Error("failed to renew session token", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.sessions.Put(r.Context(), session.KeyUserID, user.ID)

	h.logger.Info("user logged in via google", "user_id", user.ID, "email", user.Email)

	redirect := strings.TrimSuffix(h.cfg.FrontendURL, "/")
	if returnTo := h.sessions.PopString(r.Context(), session.KeyReturnTo); isSafeReturnPath(returnTo) {
		redirect += returnTo
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func (h *Handler) fetchGoogleProfile(r *http.Request, accessToken string) (auth.GoogleProfile, error) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, googleUserinfoURL, nil)
	if err != nil {
		return auth.GoogleProfile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return auth.GoogleProfile{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	var profile auth.GoogleProfile
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&profile); err != nil {
		return auth.GoogleProfile{}, err
	}
	return profile, nil
}

// isSafeReturnPath accepts only same-site relative paths for post-login
// redirects.
func isSafeReturnPath(p string) bool {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	u, err := url.Parse(p)
	return err == nil && u.Host == "" && u.Scheme == ""
}

func randomState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// UserView is the JSON shape for a user, with credentials omitted.
type UserView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	HasGoogle bool   `json:"has_google"`
	CreatedAt string `json:"created_at"`
}

func userView(u store.User) UserView {
	return UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		HasGoogle: u.HasGoogleIdentity(),
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
