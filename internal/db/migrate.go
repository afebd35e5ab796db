package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the ALTER
// TABLE entries tolerate "duplicate column name" because the whole list
// re-runs on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS children (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		grade      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		activity_id TEXT NOT NULL,
		child_id    TEXT NOT NULL REFERENCES children(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (activity_id, child_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_child ON assignments(child_id)`,
}
