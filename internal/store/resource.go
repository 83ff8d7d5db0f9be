// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the database layer for content resources.
// All resources share one table-backed CRUD shape, so a single generic
// ResourceStore serves every entry in the models catalog; the per-resource
// differences (table, columns, sort order) live in the ResourceSpec.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"consultpress/internal/models"
)

// Record is one resource row keyed by column name. Values are int64 for
// id and integer columns, string for text, time.Time for created_at, and
// nil for NULL columns — which makes it marshal to the wire JSON directly.
type Record map[string]any

// ResourceStore handles database operations for one content resource.
type ResourceStore struct {
	db   *sql.DB
	spec models.ResourceSpec
}

// NewResourceStore creates a store for the given resource spec.
func NewResourceStore(db *sql.DB, spec models.ResourceSpec) *ResourceStore {
	return &ResourceStore{db: db, spec: spec}
}

// Spec returns the resource spec this store serves.
func (s *ResourceStore) Spec() models.ResourceSpec {
	return s.spec
}

// selectColumns returns the full column list for SELECT and RETURNING
// clauses: id, the spec's columns, then created_at.
func (s *ResourceStore) selectColumns() string {
	return "id, " + strings.Join(s.spec.Columns(), ", ") + ", created_at"
}

// scanRecord scans one row into a Record. Scan targets are chosen from the
// spec: nullable text columns become nil map values rather than "".
func (s *ResourceStore) scanRecord(scanner interface{ Scan(...any) error }) (Record, error) {
	cols := s.spec.Columns()

	var id int64
	var createdAt time.Time
	texts := make([]sql.NullString, len(cols))
	ints := make([]sql.NullInt64, len(cols))

	targets := make([]any, 0, len(cols)+2)
	targets = append(targets, &id)
	for i, col := range cols {
		if f, ok := s.spec.Field(col); ok && f.Int {
			targets = append(targets, &ints[i])
		} else {
			targets = append(targets, &texts[i])
		}
	}
	targets = append(targets, &createdAt)

	if err := scanner.Scan(targets...); err != nil {
		return nil, err
	}

	rec := Record{"id": id, "created_at": createdAt}
	for i, col := range cols {
		if f, ok := s.spec.Field(col); ok && f.Int {
			if ints[i].Valid {
				rec[col] = ints[i].Int64
			} else {
				rec[col] = int64(0)
			}
			continue
		}
		if texts[i].Valid {
			rec[col] = texts[i].String
		} else {
			rec[col] = nil
		}
	}
	return rec, nil
}

// List returns rows ordered by the spec's sort key. A positive limit is
// applied as a SQL LIMIT; zero or negative means all rows. An empty table
// yields an empty slice, not an error.
func (s *ResourceStore) List(limit int) ([]Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		s.selectColumns(), s.spec.Table, s.spec.OrderBy)

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT $1", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.spec.Table, err)
	}
	defer rows.Close()

	items := []Record{}
	for rows.Next() {
		rec, err := s.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.spec.Table, err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// FindByID retrieves a single row. Returns (nil, nil) when no row matches.
func (s *ResourceStore) FindByID(id int64) (Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1",
		s.selectColumns(), s.spec.Table)

	rec, err := s.scanRecord(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by id: %w", s.spec.Table, err)
	}
	return rec, nil
}

// Create inserts a new row from the given column values and returns the
// stored row with its generated id and timestamp.
func (s *ResourceStore) Create(values map[string]any) (Record, error) {
	cols := s.spec.Columns()
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = values[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		s.spec.Table, strings.Join(cols, ", "),
		strings.Join(placeholders, ", "), s.selectColumns())

	rec, err := s.scanRecord(s.db.QueryRow(query, args...))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.spec.Table, err)
	}
	return rec, nil
}

// Update writes every column of the row identified by id and returns the
// stored row. Returns (nil, nil) when no row matches.
func (s *ResourceStore) Update(id int64, values map[string]any) (Record, error) {
	cols := s.spec.Columns()
	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, values[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		s.spec.Table, strings.Join(assignments, ", "), len(cols)+1, s.selectColumns())

	rec, err := s.scanRecord(s.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.spec.Table, err)
	}
	return rec, nil
}

// Delete removes a row and returns it so the caller can clean up the
// attached image file. Returns (nil, nil) when no row matches.
func (s *ResourceStore) Delete(id int64) (Record, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s",
		s.spec.Table, s.selectColumns())

	rec, err := s.scanRecord(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", s.spec.Table, err)
	}
	return rec, nil
}

// Count returns the number of rows for the resource.
func (s *ResourceStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + s.spec.Table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.spec.Table, err)
	}
	return count, nil
}

// ImagePath returns the image path stored on a record, or "" when the
// resource has no attachment column or the column is NULL.
func (s *ResourceStore) ImagePath(rec Record) string {
	if !s.spec.HasFile() || rec == nil {
		return ""
	}
	if path, ok := rec[s.spec.FileField].(string); ok {
		return path
	}
	return ""
}
