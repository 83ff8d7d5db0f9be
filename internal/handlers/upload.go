// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxUploadSize is the maximum allowed file upload size (10 MB).
const maxUploadSize = 10 << 20

// saveUpload validates an uploaded file and hands it to the storage
// backend. It returns the stored file's URL, or a non-zero status and a
// message for the client. Validation failures happen before any write.
func (h *Resource) saveUpload(ctx context.Context, fh *multipart.FileHeader) (string, int, string) {
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", http.StatusBadRequest, "Only image files are allowed."
	}

	f, err := fh.Open()
	if err != nil {
		return "", http.StatusInternalServerError, "Failed to read uploaded file."
	}
	defer f.Close()

	url, err := h.files.Save(ctx, uploadName(fh.Filename, contentType), contentType, f, fh.Size)
	if err != nil {
		return "", http.StatusInternalServerError, "Failed to store uploaded file."
	}
	return url, 0, ""
}

// uploadName generates a collision-safe stored name: millisecond timestamp
// plus a UUID, keeping the original extension. When the client sent a bare
// filename the extension is inferred from the declared content type.
func uploadName(original, contentType string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}

// extensionFromType returns a file extension for known image MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
