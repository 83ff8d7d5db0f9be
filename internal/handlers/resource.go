// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"consultpress/internal/models"
	"consultpress/internal/storage"
	"consultpress/internal/store"
)

// aliasDefaultLimit caps legacy alias list responses; the public pages
// never render more than a dozen entries of anything.
const aliasDefaultLimit = 12

// Resource serves the CRUD endpoints for one catalog entry. All nine
// resources share this handler; the spec carries the differences.
type Resource struct {
	spec  models.ResourceSpec
	store *store.ResourceStore
	files storage.Store
}

// NewResource creates a handler for the store's resource.
func NewResource(st *store.ResourceStore, files storage.Store) *Resource {
	return &Resource{spec: st.Spec(), store: st, files: files}
}

// Spec returns the resource spec this handler serves; the router uses it
// to lay out routes.
func (h *Resource) Spec() models.ResourceSpec {
	return h.spec
}

// List handles GET /api/<path>. An optional ?limit=N caps the result;
// the response is the raw JSON array, empty when the table is.
func (h *Resource) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeMessage(w, http.StatusBadRequest, "Invalid limit parameter.")
			return
		}
		limit = n
	}

	items, err := h.store.List(limit)
	if err != nil {
		h.serverError(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Alias handles the legacy GET /api/<segment>/<alias> list endpoints the
// public pages fetch from. The limit defaults to and is capped at
// aliasDefaultLimit, and items arrive wrapped in an envelope.
func (h *Resource) Alias(w http.ResponseWriter, r *http.Request) {
	limit := aliasDefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}

	items, err := h.store.List(limit)
	if err != nil {
		h.serverError(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /api/<path>/{id}.
func (h *Resource) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	rec, err := h.store.FindByID(id)
	if err != nil {
		h.serverError(w, "find", err)
		return
	}
	if rec == nil {
		h.notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Create handles POST /api/<path>. Resources with an attachment column
// accept multipart form data; the rest accept a JSON body. The stored row
// is written back with status 201.
func (h *Resource) Create(w http.ResponseWriter, r *http.Request) {
	fields, fh, ok := h.readInput(w, r)
	if !ok {
		return
	}

	if msg := h.spec.Validate(fields); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}
	if h.spec.FileRequired && fh == nil {
		writeMessage(w, http.StatusBadRequest,
			fmt.Sprintf("%s is required.", models.Label(h.spec.FileField)))
		return
	}

	values := h.buildValues(fields)
	if fh != nil {
		url, status, msg := h.saveUpload(r.Context(), fh)
		if msg != "" {
			writeMessage(w, status, msg)
			return
		}
		values[h.spec.FileField] = url
	}

	rec, err := h.store.Create(values)
	if err != nil {
		// The row was never written; don't leave the file behind.
		if path, ok := values[h.spec.FileField].(string); ok && path != "" {
			h.removeFile(r.Context(), path)
		}
		h.serverError(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Update handles PUT /api/<path>/{id}. A new uploaded file replaces the
// stored one: the new file is written first, the row updated, and only
// then is the old file removed, so a failure never strands the row
// pointing at a missing file.
func (h *Resource) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	current, err := h.store.FindByID(id)
	if err != nil {
		h.serverError(w, "find", err)
		return
	}
	if current == nil {
		h.notFound(w)
		return
	}

	fields, fh, ok := h.readInput(w, r)
	if !ok {
		return
	}
	if msg := h.spec.Validate(fields); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	values := h.buildValues(fields)
	oldPath := h.store.ImagePath(current)
	if h.spec.HasFile() {
		// Keep the stored file unless the request carries a new one.
		values[h.spec.FileField] = current[h.spec.FileField]
	}
	if fh != nil {
		url, status, msg := h.saveUpload(r.Context(), fh)
		if msg != "" {
			writeMessage(w, status, msg)
			return
		}
		values[h.spec.FileField] = url
	}

	rec, err := h.store.Update(id, values)
	if err != nil {
		h.serverError(w, "update", err)
		return
	}
	if rec == nil {
		h.notFound(w)
		return
	}

	if fh != nil && oldPath != "" {
		h.removeFile(r.Context(), oldPath)
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/<path>/{id}. The row is removed first and
// its attachment cleaned up after, best-effort.
func (h *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	rec, err := h.store.Delete(id)
	if err != nil {
		h.serverError(w, "delete", err)
		return
	}
	if rec == nil {
		h.notFound(w)
		return
	}

	if path := h.store.ImagePath(rec); path != "" {
		h.removeFile(r.Context(), path)
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("%s deleted successfully.", h.spec.Name))
}

// parseID reads the {id} URL parameter, writing a 400 on garbage.
func (h *Resource) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid %s ID.", strings.ToLower(h.spec.Name)))
		return 0, false
	}
	return id, true
}

func (h *Resource) notFound(w http.ResponseWriter) {
	writeMessage(w, http.StatusNotFound, fmt.Sprintf("%s not found.", h.spec.Name))
}

func (h *Resource) serverError(w http.ResponseWriter, op string, err error) {
	slog.Error("resource handler", "resource", h.spec.Path, "op", op, "error", err)
	writeMessage(w, http.StatusInternalServerError, err.Error())
}

// removeFile deletes a stored file, logging instead of failing: by the
// time it runs the database already reflects the request, and an orphan
// file is better than a failed response.
func (h *Resource) removeFile(ctx context.Context, path string) {
	if err := h.files.Remove(ctx, path); err != nil {
		slog.Warn("orphaned file not removed", "resource", h.spec.Path, "path", path, "error", err)
	}
}

// readInput parses the request body into field values plus an optional
// file header. Resources with an attachment column take multipart form
// data, the rest a flat JSON object. Returns ok=false after writing an
// error response.
func (h *Resource) readInput(w http.ResponseWriter, r *http.Request) (map[string]string, *multipart.FileHeader, bool) {
	if h.spec.HasFile() {
		return h.readMultipart(w, r)
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return nil, nil, false
	}

	fields := make(map[string]string, len(h.spec.Fields))
	for _, f := range h.spec.Fields {
		switch v := body[f.Name].(type) {
		case string:
			fields[f.Name] = v
		case float64:
			fields[f.Name] = strconv.FormatInt(int64(v), 10)
		}
	}
	return fields, nil, true
}

func (h *Resource) readMultipart(w http.ResponseWriter, r *http.Request) (map[string]string, *multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10 MB.")
		return nil, nil, false
	}

	fields := make(map[string]string, len(h.spec.Fields))
	for _, f := range h.spec.Fields {
		fields[f.Name] = r.FormValue(f.Name)
	}

	file, fh, err := r.FormFile(h.spec.FileField)
	if err == http.ErrMissingFile {
		return fields, nil, true
	}
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid file upload.")
		return nil, nil, false
	}
	file.Close()
	return fields, fh, true
}

// buildValues converts validated string fields into column values for the
// store: integer columns become int64 (0 when absent), optional empty text
// becomes NULL.
func (h *Resource) buildValues(fields map[string]string) map[string]any {
	values := make(map[string]any, len(h.spec.Fields)+1)
	for _, f := range h.spec.Fields {
		v := strings.TrimSpace(fields[f.Name])
		if f.Int {
			n, _ := strconv.ParseInt(v, 10, 64)
			values[f.Name] = n
			continue
		}
		if v == "" {
			values[f.Name] = nil
			continue
		}
		values[f.Name] = v
	}
	return values
}
