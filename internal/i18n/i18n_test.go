// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"net/http/httptest"
	"testing"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		acceptLanguage string
		want           string
	}{
		{"default", "/api/about", "", LangEN},
		{"query param french", "/api/about?lang=fr", "", LangFR},
		{"query param regional", "/api/about?lang=fr-CA", "", LangFR},
		{"query param overrides header", "/api/about?lang=en", "fr-FR,fr;q=0.9", LangEN},
		{"invalid query falls through to header", "/api/about?lang=zz-!", "fr", LangFR},
		{"unsupported query falls through", "/api/about?lang=de", "fr", LangFR},
		{"accept-language french", "/api/about", "fr-FR,fr;q=0.9,en;q=0.8", LangFR},
		{"accept-language english", "/api/about", "en-US,en;q=0.9", LangEN},
		{"accept-language unsupported", "/api/about", "de-DE,de;q=0.9", LangEN},
		{"malformed accept-language", "/api/about", ";;;", LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if tt.acceptLanguage != "" {
				r.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			if got := FromRequest(r); got != tt.want {
				t.Errorf("FromRequest = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"en", LangEN, true},
		{"EN", LangEN, true},
		{"en-US", LangEN, true},
		{"fr", LangFR, true},
		{"fr-CA", LangFR, true},
		{"de", "", false},
		{"", "", false},
		{"not a tag!", "", false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
