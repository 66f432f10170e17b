// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants and patch structures used
// throughout the application.
package model

// MIME types accepted by the upload endpoints.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
	MimeTypeMP4  = "video/mp4"
	MimeTypeWebM = "video/webm"
)

// Project statuses.
const (
	StatusPendingApproval = "pending-approval"
	StatusPlanned         = "planned"
	StatusInProgress      = "in-progress"
	StatusUnderReview     = "under-review"
	StatusTesting         = "testing"
	StatusCompleted       = "completed"
)

// ValidProjectStatuses contains all valid project statuses.
var ValidProjectStatuses = []string{
	StatusPendingApproval,
	StatusPlanned,
	StatusInProgress,
	StatusUnderReview,
	StatusTesting,
	StatusCompleted,
}

// IsValidProjectStatus checks if a status value is one of the known statuses.
func IsValidProjectStatus(status string) bool {
	for _, s := range ValidProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Setting keys recognized by the application.
const (
	SettingKeySiteName       = "site_name"
	SettingKeySiteTagline    = "site_tagline"
	SettingKeyContactEmail   = "contact_email"
	SettingKeyLogoURL        = "logo_url"
	SettingKeyHeroVideoURL   = "hero_video_url"
	SettingKeyDefaultLang    = "default_language"
	SettingKeySetupCompleted = "setup_completed"
)

// PublicSettingKeys is the subset of settings exposed on the public API.
var PublicSettingKeys = []string{
	SettingKeySiteName,
	SettingKeySiteTagline,
	SettingKeyContactEmail,
	SettingKeyLogoURL,
	SettingKeyHeroVideoURL,
	SettingKeyDefaultLang,
}

// IsPublicSettingKey checks if a setting key is exposed on the public API.
func IsPublicSettingKey(key string) bool {
	for _, k := range PublicSettingKeys {
		if k == key {
			return true
		}
	}
	return false
}
