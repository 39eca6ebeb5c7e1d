package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent and valid on every supported driver.
// Append new migrations at the end.
var migrations = []string{
	// Migration 1: lookup indexes for status listings, owner listings and
	// per-item history.
	`CREATE INDEX IF NOT EXISTS idx_items_status ON items(status)`,
	`CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_item_history_item_id ON item_history(item_id, id)`,
}

// Migrate ensures the schema exists and runs the migrations.
func Migrate(db *sqlx.DB) error {
	if err := EnsureSchema(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
