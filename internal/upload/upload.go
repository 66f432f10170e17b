// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package upload stores files submitted through the admin panel.
// Uploaded images are decoded and re-encoded, which strips EXIF
// metadata and rejects files that merely claim to be images.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// Size limits for uploaded files.
const (
	MaxImageSize = 5 << 20   // 5 MB
	MaxVideoSize = 100 << 20 // 100 MB
)

const jpegQuality = 90

// ErrUnsupportedType indicates the uploaded file is not an accepted format.
var ErrUnsupportedType = errors.New("unsupported file type")

// Service saves uploaded files under a single uploads directory.
type Service struct {
	dir string
}

// NewService creates an upload service rooted at dir, creating it if
// necessary.
func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &Service{dir: dir}, nil
}

// Dir returns the uploads directory.
func (s *Service) Dir() string {
	return s.dir
}

// SaveImage validates, normalizes, and stores an uploaded image.
// It returns the stored filename.
func (s *Service) SaveImage(r io.Reader, originalName string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("image exceeds %d bytes", MaxImageSize)
	}

	format := detectImageFormat(data)
	if format == "" {
		return "", ErrUnsupportedType
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))

	encoded, ext, err := encodeImage(img, format)
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	name := newFilename(originalName, ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), encoded, 0644); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return name, nil
}

// SaveVideo streams an uploaded video to disk. Videos are stored
// verbatim; only the declared content type and size are checked.
func (s *Service) SaveVideo(r io.Reader, originalName, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "video/") {
		return "", ErrUnsupportedType
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".mp4"
	}
	name := newFilename(originalName, ext)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create video file: %w", err)
	}
	defer func() { _ = f.Close() }()

	n, err := io.Copy(f, io.LimitReader(r, MaxVideoSize+1))
	if err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write video: %w", err)
	}
	if n > MaxVideoSize {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("video exceeds %d bytes", MaxVideoSize)
	}
	return name, nil
}

// SavePNG stores pre-rendered PNG bytes, used for generated avatars.
func (s *Service) SavePNG(data []byte, baseName string) (string, error) {
	name := newFilename(baseName, ".png")
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("save png: %w", err)
	}
	return name, nil
}

// newFilename builds a collision-free filename from a timestamp and a
// short UUID. The original name only contributes a sanitized stem.
func newFilename(originalName, ext string) string {
	stem := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	stem = sanitizeStem(stem)
	short := uuid.New().String()[:8]
	return fmt.Sprintf("%d-%s-%s%s", time.Now().UnixMilli(), short, stem, ext)
}

func sanitizeStem(stem string) string {
	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "file"
	}
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}

// detectImageFormat sniffs the image format from raw bytes.
// TIFF is rejected (CVE-2023-36308 in disintegration/imaging).
func detectImageFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	if strings.Contains(contentType, "tiff") {
		return ""
	}
	switch {
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return ""
	}
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

// applyOrientation applies an EXIF orientation transformation.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// encodeImage re-encodes the image, returning the bytes and extension.
// WebP sources are written back as JPEG; pure Go cannot encode WebP.
func encodeImage(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".png", nil
	case "gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".gif", nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".jpg", nil
	}
}
