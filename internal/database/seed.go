package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development content so the
// public pages render out of the box. It is a no-op when content exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return fmt.Errorf("seed check services: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	seedStatements := []struct {
		query string
		args  []any
	}{
		{
			`INSERT INTO hero_section (title, subtitle, cta_text, cta_link)
			 VALUES ($1, $2, $3, $4)`,
			[]any{
				"Consulting that moves you forward",
				"Strategy, staffing, and operations support for growing companies.",
				"Get in touch", "/contact-us",
			},
		},
		{
			`INSERT INTO about (title, description, icon)
			 VALUES ($1, $2, $3)`,
			[]any{
				"Who we are",
				"A senior team of consultants helping organizations plan, hire, and grow.",
				"FaBuilding",
			},
		},
		{
			`INSERT INTO services (title, description, icon)
			 VALUES ($1, $2, $3), ($4, $5, $6), ($7, $8, $9)`,
			[]any{
				"HR Consulting", "Recruitment, onboarding, and retention programs.", "FaUsers",
				"Business Strategy", "Market analysis and growth planning.", "FaChartLine",
				"Operations", "Process design and delivery support.", "FaCogs",
			},
		},
		{
			`INSERT INTO mission_vision (title, description, icon)
			 VALUES ($1, $2, $3), ($4, $5, $6)`,
			[]any{
				"Our mission", "Deliver practical advice that clients can act on the same week.", "FaBullseye",
				"Our vision", "Be the first call for companies navigating change.", "FaEye",
			},
		},
		{
			`INSERT INTO core_values (title, description, icon)
			 VALUES ($1, $2, $3), ($4, $5, $6), ($7, $8, $9)`,
			[]any{
				"Integrity", "We give the advice we would want to receive.", "FaBalanceScale",
				"Partnership", "We work alongside your team, not above it.", "FaHandshake",
				"Results", "We measure success by outcomes, not hours.", "FaStar",
			},
		},
		{
			`INSERT INTO why_choose_us (icon, title, description, display_order)
			 VALUES ($1, $2, $3, $4), ($5, $6, $7, $8), ($9, $10, $11, $12)`,
			[]any{
				"FaUserTie", "Senior consultants only", "Every engagement is staffed by practitioners.", 1,
				"FaClock", "Fast turnaround", "First recommendations within two weeks.", 2,
				"FaShieldAlt", "No lock-in", "Fixed-scope engagements with clear deliverables.", 3,
			},
		},
		{
			`INSERT INTO contact_info (email, phone, address)
			 VALUES ($1, $2, $3)`,
			[]any{"hello@example.com", "+1 555 0100", "12 Main Street, Springfield"},
		},
	}

	for _, stmt := range seedStatements {
		if _, err := db.Exec(stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("seed insert: %w", err)
		}
	}

	slog.Info("database seeded with development content")
	return nil
}
