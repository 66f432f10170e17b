// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package captcha generates image CAPTCHA challenges for the public
// contact form. Answers are stored server-side in the session, never
// sent to the client.
package captcha

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/mojocn/base64Captcha"
)

// charset omits visually ambiguous characters (0/O, 1/l/I).
const charset = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	width      = 150
	height     = 50
	length     = 5
	noiseCount = 20
)

// Challenge is a generated CAPTCHA image and its expected answer.
type Challenge struct {
	// Answer is the expected text, kept server-side.
	Answer string
	// PNG is the rendered image bytes.
	PNG []byte
	// DataURL is the image as a base64 data URL.
	DataURL string
}

// Generator produces CAPTCHA challenges.
type Generator struct {
	driver *base64Captcha.DriverString
}

// NewGenerator creates a CAPTCHA generator with noise lines enabled.
func NewGenerator() *Generator {
	driver := base64Captcha.NewDriverString(
		height, width, noiseCount,
		base64Captcha.OptionShowHollowLine|base64Captcha.OptionShowSineLine,
		length, charset,
		&color.RGBA{R: 254, G: 254, B: 254, A: 254},
		nil, nil,
	)
	return &Generator{driver: driver.ConvertFonts()}
}

// Generate creates a new challenge.
func (g *Generator) Generate() (*Challenge, error) {
	_, content, answer := g.driver.GenerateIdQuestionAnswer()
	item, err := g.driver.DrawCaptcha(content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := item.WriteTo(&buf); err != nil {
		return nil, err
	}

	return &Challenge{
		Answer:  answer,
		PNG:     buf.Bytes(),
		DataURL: item.EncodeB64string(),
	}, nil
}

// Verify reports whether the supplied answer matches the expected one.
// Comparison trims whitespace and ignores case.
func Verify(expected, supplied string) bool {
	if expected == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(supplied), strings.TrimSpace(expected))
}
