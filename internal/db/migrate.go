package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements. Each statement is idempotent so
// the list can be re-run in full on every open.
var migrations = []string{
	// Generic record store: five collections of records with typed fields
	// and directed link-list fields, mirroring the external platform's
	// record model.
	`CREATE TABLE IF NOT EXISTS records (
		id         TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_collection ON records(collection)`,

	`CREATE TABLE IF NOT EXISTS record_fields (
		record_id TEXT NOT NULL REFERENCES records(id) ON DELETE CASCADE,
		field_id  TEXT NOT NULL,
		kind      TEXT NOT NULL CHECK(kind IN ('string','date')),
		value     TEXT NOT NULL,
		PRIMARY KEY (record_id, field_id)
	)`,

	`CREATE TABLE IF NOT EXISTS record_links (
		record_id TEXT NOT NULL REFERENCES records(id) ON DELETE CASCADE,
		field_id  TEXT NOT NULL,
		target_id TEXT NOT NULL,
		position  INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (record_id, field_id, target_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_record_links_target ON record_links(field_id, target_id)`,

	`CREATE TABLE IF NOT EXISTS report_requests (
		id           TEXT PRIMARY KEY,
		top_level    TEXT NOT NULL,
		top_level_id TEXT NOT NULL,
		bottom_level TEXT NOT NULL,
		start_date   TEXT,
		end_date     TEXT,
		status       TEXT NOT NULL CHECK(status IN ('pending','running','done','failed')),
		compact_tree TEXT NOT NULL DEFAULT '',
		summary      TEXT NOT NULL DEFAULT '',
		error_text   TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_requests_status ON report_requests(status)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
