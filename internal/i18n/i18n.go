// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n resolves the content language for a request.
// Content is authored in English and French; English is the fallback.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// Supported content languages.
const (
	LangEN = "en"
	LangFR = "fr"
)

// matcher prefers English when negotiation is inconclusive.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// FromRequest returns the content language for a request. An explicit
// ?lang= query parameter wins over the Accept-Language header.
func FromRequest(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if normalized, ok := Normalize(lang); ok {
			return normalized
		}
	}

	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return LangEN
	}

	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return LangFR
	}
	return LangEN
}

// Normalize maps a raw language value to a supported language code.
func Normalize(lang string) (string, bool) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return LangEN, true
	case "fr":
		return LangFR, true
	}
	return "", false
}
