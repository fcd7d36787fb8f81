package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS timeline_groups (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		parent_id   TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		color       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS timeline_items (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title            TEXT NOT NULL,
		type             TEXT NOT NULL
		                 CHECK(type IN ('task','project','milestone','group','subtask','deliverable')),
		start_at         TEXT,
		end_at           TEXT,
		duration_min     INTEGER NOT NULL DEFAULT 0,
		percent_complete REAL,
		group_id         TEXT NOT NULL DEFAULT '',
		parent_id        TEXT NOT NULL DEFAULT '',
		baseline_id      TEXT NOT NULL DEFAULT '',
		calendar_id      TEXT NOT NULL DEFAULT '',
		tags             TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS timeline_milestones (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		date       TEXT,
		color      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS timeline_dependencies (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		from_id         TEXT NOT NULL,
		to_id           TEXT NOT NULL,
		type            TEXT NOT NULL CHECK(type IN ('FS','SS','FF','SF')),
		lead_lag_min    INTEGER NOT NULL DEFAULT 0,
		UNIQUE(from_id, to_id)
	)`,

	`CREATE TABLE IF NOT EXISTS timeline_baselines (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		item_id      TEXT NOT NULL,
		start_at     TEXT,
		end_at       TEXT,
		duration_min INTEGER NOT NULL DEFAULT 0,
		saved_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS timeline_overlays (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL,
		label      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS overlay_points (
		overlay_id TEXT NOT NULL REFERENCES timeline_overlays(id) ON DELETE CASCADE,
		item_id    TEXT NOT NULL,
		value      REAL NOT NULL,
		PRIMARY KEY (overlay_id, item_id)
	)`,

	`CREATE TABLE IF NOT EXISTS workload_metrics (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		item_id        TEXT NOT NULL,
		person_id      TEXT NOT NULL DEFAULT '',
		team_id        TEXT NOT NULL DEFAULT '',
		allocation_min INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_project ON timeline_items(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_groups_project ON timeline_groups(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_deps_project ON timeline_dependencies(project_id)`,
}
