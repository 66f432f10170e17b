// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"vitrine/internal/store"
)

// GoogleProfile is the subset of the Google userinfo response the
// application cares about.
type GoogleProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// NewGoogleOAuthConfig builds the oauth2 config for the Google sign-in flow.
func NewGoogleOAuthConfig(clientID, clientSecret, callbackURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  callbackURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// UpsertUserFromGoogle resolves a Google profile to a local user:
// match by Google id first; fall back to matching by email and linking the
// identity to the existing account; otherwise create a new non-admin user.
func UpsertUserFromGoogle(ctx context.Context, queries *store.Queries, profile GoogleProfile) (store.User, error) {
	if profile.ID == "" || profile.Email == "" {
		return store.User{}, fmt.Errorf("google profile missing id or email")
	}

	user, err := queries.GetUserByGoogleID(ctx, profile.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.User{}, fmt.Errorf("looking up google identity: %w", err)
	}

	// No linked identity yet. An existing account with the same email gets
	// the identity linked rather than a duplicate row created.
	user, err = queries.GetUserByEmail(ctx, profile.Email)
	if err == nil {
		if err := queries.LinkGoogleIdentity(ctx, user.ID, profile.ID); err != nil {
			return store.User{}, fmt.Errorf("linking google identity: %w", err)
		}
		return queries.GetUserByID(ctx, user.ID)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.User{}, fmt.Errorf("looking up user by email: %w", err)
	}

	user, err = queries.CreateUser(ctx, store.CreateUserParams{
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
		Email:     profile.Email,
		IsAdmin:   false,
		GoogleID:  sql.NullString{String: profile.ID, Valid: true},
	})
	if err != nil {
		return store.User{}, fmt.Errorf("creating user from google profile: %w", err)
	}
	return user, nil
}
