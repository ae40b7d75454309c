package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		city             TEXT NOT NULL DEFAULT 'Paris',
		duration         INTEGER NOT NULL CHECK(duration > 0),
		profile          TEXT NOT NULL DEFAULT '',
		intensity        TEXT NOT NULL DEFAULT 'moderate'
		                 CHECK(intensity IN ('relaxed','moderate','intense')),
		interests        TEXT NOT NULL DEFAULT '',
		guests           INTEGER NOT NULL DEFAULT 2,
		title            TEXT NOT NULL DEFAULT '',
		intro_internal   TEXT NOT NULL DEFAULT '',
		intro_client     TEXT NOT NULL DEFAULT '',
		closing_internal TEXT NOT NULL DEFAULT '',
		closing_client   TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL DEFAULT 'draft'
		                 CHECK(status IN ('draft','validated')),
		start_date       TEXT,
		end_date         TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_programs_user ON programs(user_id)`,

	`CREATE TABLE IF NOT EXISTS program_days (
		id             TEXT PRIMARY KEY,
		program_id     TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		day_number     INTEGER NOT NULL CHECK(day_number > 0),
		actual_date    TEXT,
		theme_internal TEXT NOT NULL DEFAULT '',
		theme_client   TEXT NOT NULL DEFAULT '',
		UNIQUE(program_id, day_number)
	)`,

	`CREATE TABLE IF NOT EXISTS activity_slots (
		id                  TEXT PRIMARY KEY,
		day_id              TEXT NOT NULL REFERENCES program_days(id) ON DELETE CASCADE,
		time_slot           TEXT NOT NULL
		                    CHECK(time_slot IN ('morning','lunch','afternoon','dinner','evening')),
		time                TEXT,
		type                TEXT NOT NULL DEFAULT '',
		category            TEXT NOT NULL DEFAULT '',
		concierge_notes     TEXT NOT NULL DEFAULT '',
		is_rest             INTEGER NOT NULL DEFAULT 0,
		verification_status TEXT NOT NULL DEFAULT 'pending'
		                    CHECK(verification_status IN ('pending','needs_attention','verified'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activity_slots_day ON activity_slots(day_id)`,

	`CREATE TABLE IF NOT EXISTS activity_options (
		id                   TEXT PRIMARY KEY,
		option_group_id      TEXT NOT NULL REFERENCES activity_slots(id) ON DELETE CASCADE,
		venue_id             TEXT NOT NULL DEFAULT '',
		venue_name           TEXT NOT NULL,
		sub_category         TEXT NOT NULL DEFAULT '',
		address              TEXT NOT NULL DEFAULT '',
		phone                TEXT NOT NULL DEFAULT '',
		hours                TEXT NOT NULL DEFAULT '',
		style                TEXT NOT NULL DEFAULT '',
		description          TEXT NOT NULL DEFAULT '',
		is_eiffel_view       INTEGER NOT NULL DEFAULT 0,
		reservation_required INTEGER NOT NULL DEFAULT 0,
		is_selected          INTEGER NOT NULL DEFAULT 0,
		rank                 INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activity_options_group ON activity_options(option_group_id)`,

	`CREATE TABLE IF NOT EXISTS venue_exclusions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		venue_name TEXT NOT NULL,
		category   TEXT NOT NULL,
		reason     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_venue_exclusions_unique
		ON venue_exclusions(user_id, lower(venue_name), category)`,
}
