// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Catalog lists every content resource served by the API. Each entry fully
// configures one set of CRUD endpoints: adding a resource means adding a
// spec here plus a table in the migrations, nothing else.
//
// Alias paths are the legacy list endpoints the public pages fetch from
// (GET /api/<path>/<alias>?limit=N); they predate the collection endpoints
// and are kept for compatibility.
var Catalog = []ResourceSpec{
	{
		Name:  "About",
		Path:  "about",
		Table: "about",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "description", Required: true},
			{Name: "icon", Icon: true},
		},
		FileField: "image",
		OrderBy:   "id DESC",
		Alias:     "about",
	},
	{
		Name:  "Service",
		Path:  "services",
		Table: "services",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "description", Required: true},
			{Name: "icon", Required: true, Icon: true},
		},
		FileField: "image",
		OrderBy:   "id DESC",
		Alias:     "services",
	},
	{
		Name:  "Client",
		Path:  "clients",
		Table: "clients",
		Fields: []FieldSpec{
			{Name: "name", Required: true},
		},
		FileField: "logo",
		OrderBy:   "created_at DESC",
		Alias:     "clients",
	},
	{
		Name:  "Hero section",
		Path:  "hero-section",
		Table: "hero_section",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "subtitle", Required: true},
			{Name: "cta_text", Required: true},
			{Name: "cta_link", Required: true},
		},
		FileField:    "background_image",
		FileRequired: true,
		OrderBy:      "id DESC",
		Alias:        "heroSection",
	},
	{
		Name:  "Mission & vision entry",
		Path:  "mission-vision",
		Table: "mission_vision",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "description", Required: true},
			{Name: "icon", Icon: true},
		},
		OrderBy: "id DESC",
		Alias:   "mission-vision",
	},
	{
		// Stored as core_values: "values" is a reserved word in PostgreSQL.
		Name:  "Core value",
		Path:  "values",
		Table: "core_values",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "description", Required: true},
			{Name: "icon", Icon: true},
		},
		OrderBy: "id DESC",
		Alias:   "core_values",
	},
	{
		Name:  "Why-choose-us item",
		Path:  "why-choose-us",
		Table: "why_choose_us",
		Fields: []FieldSpec{
			{Name: "icon", Icon: true},
			{Name: "title", Required: true},
			{Name: "description", Required: true},
			{Name: "display_order", Int: true},
		},
		OrderBy: "display_order ASC, id ASC",
		Alias:   "why_choose_us",
	},
	{
		Name:  "Contact message",
		Path:  "contact",
		Table: "contact_messages",
		Fields: []FieldSpec{
			{Name: "email", Required: true},
			{Name: "phone", Required: true},
			{Name: "address", Required: true},
			{Name: "message", Required: true},
		},
		OrderBy:  "id DESC",
		NoUpdate: true,
	},
	{
		Name:  "Contact info",
		Path:  "contact-info",
		Table: "contact_info",
		Fields: []FieldSpec{
			{Name: "email", Required: true},
			{Name: "phone", Required: true},
			{Name: "address", Required: true},
		},
		OrderBy: "id ASC",
		Alias:   "contact",
	},
}

// Lookup returns the spec whose Path matches, or false when unknown.
func Lookup(path string) (ResourceSpec, bool) {
	for _, s := range Catalog {
		if s.Path == path {
			return s, true
		}
	}
	return ResourceSpec{}, false
}
