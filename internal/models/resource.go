// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models describes the site's content resources. Every resource
// (services, clients, hero banners, ...) shares one table-backed CRUD shape,
// so instead of a struct per resource the package defines a ResourceSpec
// that names the table, its fields, and its optional image column. The
// store and handler layers are generic over these specs.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldSpec describes one text or integer column of a resource.
type FieldSpec struct {
	Name     string // column name, also the form/JSON field name
	Required bool   // empty or missing value rejects the request
	Icon     bool   // value must be a known icon identifier (see icons.go)
	Int      bool   // integer column, defaults to 0 when absent
}

// ResourceSpec describes one content resource: its URL path, table,
// field list, and optional image attachment column.
type ResourceSpec struct {
	Name         string      // human-readable singular label, e.g. "Service"
	Path         string      // URL segment under /api/, e.g. "services"
	Table        string      // PostgreSQL table name
	Fields       []FieldSpec // value columns, excluding id/image/created_at
	FileField    string      // image column and multipart field name; "" = no attachment
	FileRequired bool        // create fails without an uploaded file
	OrderBy      string      // SQL sort expression for list queries
	Alias        string      // legacy list path segment used by the public pages; "" = none
	NoUpdate     bool        // resource has no update operation (contact messages)
}

// HasFile reports whether the resource carries an image attachment.
func (s ResourceSpec) HasFile() bool {
	return s.FileField != ""
}

// Columns returns the insertable column names: every field plus the image
// column when the resource has one. Order matches Values maps built by the
// handler layer and the placeholders generated by the store.
func (s ResourceSpec) Columns() []string {
	cols := make([]string, 0, len(s.Fields)+1)
	for _, f := range s.Fields {
		cols = append(cols, f.Name)
	}
	if s.HasFile() {
		cols = append(cols, s.FileField)
	}
	return cols
}

// Field returns the spec for a named field, if present.
func (s ResourceSpec) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Validate checks submitted field values and returns the first error
// message found, or "" when the input is acceptable. Values arrive as
// strings from either a JSON body or a multipart form.
func (s ResourceSpec) Validate(values map[string]string) string {
	for _, f := range s.Fields {
		v := strings.TrimSpace(values[f.Name])

		if f.Required && v == "" {
			return fmt.Sprintf("%s is required.", Label(f.Name))
		}
		if v == "" {
			continue
		}
		if f.Icon && !ValidIcon(v) {
			return fmt.Sprintf("Unknown icon %q.", v)
		}
		if f.Int {
			if _, err := strconv.Atoi(v); err != nil {
				return fmt.Sprintf("%s must be a number.", Label(f.Name))
			}
		}
	}
	return ""
}

// Label turns a column name into a human-readable label for error
// messages:
// "cta_text" becomes "Cta text", "title" becomes "Title".
func Label(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
