// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailer delivers contact form submissions over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP settings for the mailer.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer sends contact messages. When no SMTP host is configured the
// mailer logs messages instead of sending them, which keeps local
// development working without a mail account.
type Mailer struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a mailer from SMTP config.
func New(cfg Config, logger *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Send delivers a contact message to the configured recipient. The
// visitor's address goes in Reply-To so replies reach them directly.
func (m *Mailer) Send(ctx context.Context, msg ContactMessage) error {
	subject := fmt.Sprintf("[Contact] %s", msg.Subject)
	body := formatBody(msg)

	if m.cfg.Host == "" {
		m.logger.Info("email delivery disabled, logging message instead",
			"from", msg.Email, "subject", subject)
		return nil
	}

	mm := mail.NewMsg()
	if err := mm.From(m.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := mm.To(m.cfg.To); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	if err := mm.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("set reply-to address: %w", err)
	}
	mm.Subject(subject)
	mm.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Info("contact email sent", "from", msg.Email, "subject", subject)
	return nil
}

func formatBody(msg ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	fmt.Fprintf(&b, "Subject: %s\n\n", msg.Subject)
	b.WriteString(msg.Body)
	return b.String()
}
