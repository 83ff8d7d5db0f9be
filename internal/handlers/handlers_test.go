// handlers_test.go provides shared helpers for handler tests: a test
// database (integration tests skip when PostgreSQL is unavailable), a
// per-test local file store, and a multipart request builder.
package handlers

import (
	"bytes"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"consultpress/internal/database"
	"consultpress/internal/models"
	"consultpress/internal/storage"
	"consultpress/internal/store"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "consultpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "consultpress")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// newTestHandler builds a Resource handler for one catalog path backed by
// the test database and a throwaway upload directory.
func newTestHandler(t *testing.T, db *sql.DB, path string) (*Resource, *storage.Local) {
	t.Helper()

	spec, ok := models.Lookup(path)
	if !ok {
		t.Fatalf("unknown resource path %q", path)
	}
	files := storage.NewLocal(t.TempDir(), "/uploads")
	return NewResource(store.NewResourceStore(db, spec), files), files
}

// mount wires a handler's routes the way the router does, so tests
// exercise URL parameters and method dispatch.
func mount(h *Resource) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/"+h.spec.Path, h.List)
	r.Post("/api/"+h.spec.Path, h.Create)
	r.Get("/api/"+h.spec.Path+"/{id}", h.Get)
	if !h.spec.NoUpdate {
		r.Put("/api/"+h.spec.Path+"/{id}", h.Update)
	}
	r.Delete("/api/"+h.spec.Path+"/{id}", h.Delete)
	if h.spec.Alias != "" {
		r.Get("/api/"+h.spec.Path+"/"+h.spec.Alias, h.Alias)
	}
	return r
}

// multipartBody builds a multipart form with the given text fields and,
// when filename is non-empty, one file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if filename != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+filename+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func doRequest(t *testing.T, h http.Handler, method, target, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
