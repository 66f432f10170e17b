// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		if got := r.Form.Get("q"); got != "Hello world" {
			t.Errorf("q = %q", got)
		}
		if got := r.Form.Get("source"); got != "en" {
			t.Errorf("source = %q", got)
		}
		if got := r.Form.Get("target"); got != "fr" {
			t.Errorf("target = %q", got)
		}
		if got := r.Form.Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Bonjour le monde"}]}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Translate(context.Background(), "Hello world", "en", "fr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Bonjour le monde" {
		t.Errorf("translated = %q", got)
	}
}

func TestTranslateUnescapesEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"l&#39;entreprise &amp; vous"}]}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Translate(context.Background(), "the company & you", "en", "fr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "l'entreprise & vous" {
		t.Errorf("translated = %q", got)
	}
}

func TestTranslateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Translate(context.Background(), "Hello", "en", "fr"); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestTranslateEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Translate(context.Background(), "Hello", "en", "fr"); err == nil {
		t.Error("expected error on empty translations")
	}
}

func TestEnabled(t *testing.T) {
	if NewClient("").Enabled() {
		t.Error("empty key should disable translation")
	}
	if !NewClient("key").Enabled() {
		t.Error("configured key should enable translation")
	}
}
