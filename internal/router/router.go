// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// content API. Every resource in the models catalog gets the same CRUD
// layout; the only per-route differences are the legacy alias endpoints,
// the rate limit on the public contact form, and resources without an
// update operation.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"consultpress/internal/handlers"
	"consultpress/internal/middleware"
	"consultpress/internal/storage"
)

// New creates and returns the configured Chi router. uploads is non-nil
// when files are stored locally and must be served by this process; with
// S3 storage the bucket serves them directly.
func New(resources []*handlers.Resource, limiter middleware.Allower, uploads *storage.Local) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		for _, h := range resources {
			spec := h.Spec()
			r.Route("/"+spec.Path, func(r chi.Router) {
				r.Get("/", h.List)

				// The contact form is the one endpoint the public site
				// writes to, so it alone is rate limited.
				if spec.Path == "contact" {
					r.With(middleware.RateLimit(limiter)).Post("/", h.Create)
				} else {
					r.Post("/", h.Create)
				}

				// Static alias segments take precedence over {id}.
				if spec.Alias != "" {
					r.Get("/"+spec.Alias, h.Alias)
				}

				r.Get("/{id}", h.Get)
				if !spec.NoUpdate {
					r.Put("/{id}", h.Update)
				}
				r.Delete("/{id}", h.Delete)
			})
		}
	})

	if uploads != nil {
		prefix := uploads.URLPath() + "/"
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(uploads.Dir())))
		r.Get(prefix+"*", fs.ServeHTTP)
	}

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"message":"` + msg + `"}`))
}
