// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage persists uploaded image files and hands back the URL
// path stored on the owning row. Two backends implement the same Store
// interface: local disk (the default, served by the router under
// /uploads) and S3-compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store saves and removes uploaded files. Save returns the URL the file is
// reachable under; Remove accepts that same URL back. Remove treats an
// already-absent file as success so callers can delete best-effort.
type Store interface {
	Save(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error)
	Remove(ctx context.Context, fileURL string) error
}

// Local stores files in a directory on the local filesystem.
type Local struct {
	dir     string // filesystem directory, created on demand
	urlPath string // URL prefix the directory is served under, e.g. "/uploads"
}

// NewLocal creates a local file store. The directory is not created until
// the first Save.
func NewLocal(dir, urlPath string) *Local {
	return &Local{dir: dir, urlPath: strings.TrimRight(urlPath, "/")}
}

// Dir returns the filesystem directory files are written to.
func (l *Local) Dir() string {
	return l.dir
}

// URLPath returns the URL prefix the directory is served under.
func (l *Local) URLPath() string {
	return l.urlPath
}

// Save writes the file under the upload directory and returns its
// server-relative URL path. The generated name is expected to be unique;
// an existing file with the same name is an error, never overwritten.
func (l *Local) Save(_ context.Context, name, _ string, body io.Reader, _ int64) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst := filepath.Join(l.dir, name)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return l.urlPath + "/" + name, nil
}

// Remove deletes the file a URL path refers to. A missing file is not an
// error; a URL outside the upload path is, so a corrupted row can never
// direct a delete at an arbitrary file.
func (l *Local) Remove(_ context.Context, fileURL string) error {
	rel, ok := strings.CutPrefix(fileURL, l.urlPath+"/")
	if !ok || rel == "" {
		return fmt.Errorf("refusing to remove %q: outside %s", fileURL, l.urlPath)
	}

	// The stored names never contain separators; Base flattens anything
	// that slipped into the column regardless.
	target := filepath.Join(l.dir, path.Base(rel))
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}
