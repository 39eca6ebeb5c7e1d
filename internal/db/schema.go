package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// sqliteSchema is the full SQLite schema.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_active     BOOLEAN NOT NULL DEFAULT 1,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT,
    status      TEXT CHECK (status IN ('NEW', 'APPROVED', 'EOL')),
    owner_id    INTEGER NOT NULL REFERENCES users(id),
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS item_history (
    id           INTEGER PRIMARY KEY,
    item_id      INTEGER NOT NULL REFERENCES items(id),
    old_owner_id INTEGER REFERENCES users(id),
    new_owner_id INTEGER REFERENCES users(id),
    status       TEXT CHECK (status IN ('NEW', 'APPROVED', 'EOL')),
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK ((new_owner_id IS NOT NULL AND status IS NULL)
        OR (old_owner_id IS NULL AND new_owner_id IS NULL AND status IS NOT NULL))
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// postgresSchema mirrors sqliteSchema with PostgreSQL types.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
    id            BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id          BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT,
    status      TEXT CHECK (status IN ('NEW', 'APPROVED', 'EOL')),
    owner_id    BIGINT NOT NULL REFERENCES users(id),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS item_history (
    id           BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    item_id      BIGINT NOT NULL REFERENCES items(id),
    old_owner_id BIGINT REFERENCES users(id),
    new_owner_id BIGINT REFERENCES users(id),
    status       TEXT CHECK (status IN ('NEW', 'APPROVED', 'EOL')),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK ((new_owner_id IS NOT NULL AND status IS NULL)
        OR (old_owner_id IS NULL AND new_owner_id IS NULL AND status IS NOT NULL))
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at TIMESTAMPTZ NOT NULL
);
`

func schemaFor(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return sqliteSchema, nil
	case DriverPostgres:
		return postgresSchema, nil
	}
	return "", fmt.Errorf("no schema for driver %q", driver)
}

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sqlx.DB) error {
	schema, err := schemaFor(db.DriverName())
	if err != nil {
		return err
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
