// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"strings"

	"vitrine/internal/upload"
)

// uploadField is the multipart form field carrying the file.
const uploadField = "file"

// UploadTeamImage handles POST /api/admin/upload/team-image.
func (h *Handler) UploadTeamImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r)
}

// UploadAboutImage handles POST /api/admin/upload/about-image.
func (h *Handler) UploadAboutImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r)
}

// UploadProjectImage handles POST /api/admin/upload/project-image.
func (h *Handler) UploadProjectImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r)
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxImageSize+1<<20)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "Image exceeds the 5 MB limit")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeJSONError(w, http.StatusBadRequest, "Only image files are accepted")
		return
	}
	if header.Size > upload.MaxImageSize {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "Image exceeds the 5 MB limit")
		return
	}

	filename, err := h.uploads.SaveImage(file, header.Filename)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			writeJSONError(w, http.StatusBadRequest, "Unsupported image format")
			return
		}
		h.logger.Error("image upload failed", "error", err, "filename", header.Filename)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.logger.Info("image uploaded", "filename", filename, "size", header.Size)
	writeJSONSuccess(w, map[string]any{"url": "/uploads/" + filename})
}

// UploadHeroVideo handles POST /api/admin/upload/hero-video.
func (h *Handler) UploadHeroVideo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxVideoSize+1<<20)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "Video exceeds the 100 MB limit")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		writeJSONError(w, http.StatusBadRequest, "Only video files are accepted")
		return
	}
	if header.Size > upload.MaxVideoSize {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "Video exceeds the 100 MB limit")
		return
	}

	filename, err := h.uploads.SaveVideo(file, header.Filename, contentType)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			writeJSONError(w, http.StatusBadRequest, "Unsupported video format")
			return
		}
		h.logger.Error("video upload failed", "error", err, "filename", header.Filename)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.logger.Info("video uploaded", "filename", filename, "size", header.Size)
	writeJSONSuccess(w, map[string]any{"url": "/uploads/" + filename})
}
