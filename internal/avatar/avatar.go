// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package avatar renders initials placeholder images for team members
// created without a photo.
package avatar

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	size     = 256
	fontSize = 96
)

// palette holds the background colors an avatar can be assigned.
// The color for a given name is stable across generations.
var palette = []color.RGBA{
	{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}, // navy
	{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}, // red
	{R: 0x27, G: 0xae, B: 0x60, A: 0xff}, // green
	{R: 0x88, G: 0x54, B: 0xd0, A: 0xff}, // violet
	{R: 0xd3, G: 0x54, B: 0x00, A: 0xff}, // orange
	{R: 0x16, G: 0xa0, B: 0x85, A: 0xff}, // teal
	{R: 0x29, G: 0x80, B: 0xb9, A: 0xff}, // blue
	{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff}, // gray
}

// Generate renders a PNG avatar showing the initials of name on a
// background color derived from the name.
func Generate(name string) ([]byte, error) {
	initials := Initials(name)
	bg := backgroundFor(name)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	textWidth := drawer.MeasureString(initials)
	metrics := face.Metrics()
	textHeight := metrics.Ascent + metrics.Descent

	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(size) - textWidth) / 2,
		Y: (fixed.I(size)+textHeight)/2 - metrics.Descent,
	}
	drawer.DrawString(initials)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode avatar: %w", err)
	}
	return buf.Bytes(), nil
}

// Initials extracts up to two uppercase initials from a name.
// Empty or non-letter names yield "?".
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				initials = append(initials, unicode.ToUpper(r))
				break
			}
		}
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "?"
	}
	return string(initials)
}

// backgroundFor picks a palette color deterministically from the name.
func backgroundFor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}
