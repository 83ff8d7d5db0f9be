// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "sort"

// knownIcons is the closed set of icon identifiers the frontend can render.
// Icon fields are validated against this set at write time, so an admin can
// never save an icon name the site would silently fail to resolve.
var knownIcons = map[string]bool{
	"FaBalanceScale": true,
	"FaBriefcase":    true,
	"FaBuilding":     true,
	"FaBullseye":     true,
	"FaCalendarAlt":  true,
	"FaChartLine":    true,
	"FaCheckCircle":  true,
	"FaClock":        true,
	"FaCogs":         true,
	"FaEnvelope":     true,
	"FaEye":          true,
	"FaGlobe":        true,
	"FaHandshake":    true,
	"FaHeart":        true,
	"FaHome":         true,
	"FaInfoCircle":   true,
	"FaLightbulb":    true,
	"FaMapMarkerAlt": true,
	"FaPhoneAlt":     true,
	"FaRocket":       true,
	"FaSearch":       true,
	"FaShieldAlt":    true,
	"FaStar":         true,
	"FaUserCircle":   true,
	"FaUserTie":      true,
	"FaUsers":        true,
}

// ValidIcon reports whether name is a known icon identifier.
func ValidIcon(name string) bool {
	return knownIcons[name]
}

// Icons returns the known icon identifiers, for the admin UI icon picker.
func Icons() []string {
	names := make([]string, 0, len(knownIcons))
	for name := range knownIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
