// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mailer

import (
	"context"
	"strings"
	"testing"

	"vitrine/internal/testutil"
)

func TestSendWithoutHostLogsOnly(t *testing.T) {
	m := New(Config{}, testutil.TestLogger())

	err := m.Send(context.Background(), ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Partnership",
		Body:    "Hello there",
	})
	if err != nil {
		t.Errorf("log-only mailer should never fail, got %v", err)
	}
}

func TestFormatBody(t *testing.T) {
	body := formatBody(ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Partnership",
		Body:    "Hello there\nSecond line",
	})

	for _, want := range []string{
		"Name: Jane Doe",
		"Email: jane@example.com",
		"Subject: Partnership",
		"Hello there\nSecond line",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestSendRejectsBadFromAddress(t *testing.T) {
	m := New(Config{
		Host: "smtp.example.com",
		Port: 587,
		From: "not an address",
		To:   "owner@example.com",
	}, testutil.TestLogger())

	err := m.Send(context.Background(), ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})
	if err == nil {
		t.Error("invalid from address should fail before dialing")
	}
}
