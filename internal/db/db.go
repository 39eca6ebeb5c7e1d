package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names as registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ParseURI maps a connection string to a driver name and the data source the
// driver expects. postgres:// and postgresql:// URLs select PostgreSQL;
// anything else is a SQLite path, optionally prefixed with sqlite://.
func ParseURI(uri string) (driver, source string, err error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return "", "", fmt.Errorf("empty database uri")
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return DriverPostgres, uri, nil
	case strings.HasPrefix(uri, "sqlite://"):
		source = strings.TrimPrefix(uri, "sqlite://")
	case strings.HasPrefix(uri, "sqlite:"):
		source = strings.TrimPrefix(uri, "sqlite:")
	default:
		source = uri
	}
	if source == "" {
		return "", "", fmt.Errorf("empty sqlite path in %q", uri)
	}
	return DriverSQLite, source, nil
}

// Open opens the database named by uri and verifies the connection.
// SQLite connections get their pragmas set and are limited to a single open
// connection, so writers never contend for the file lock and in-memory
// databases stay one database.
func Open(uri string) (*sqlx.DB, error) {
	driver, source, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)

		pragmas := []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA busy_timeout=5000",
			"PRAGMA foreign_keys=ON",
			"PRAGMA synchronous=NORMAL",
		}
		for _, p := range pragmas {
			if _, err := db.Exec(p); err != nil {
				db.Close()
				return nil, fmt.Errorf("setting pragma %q: %w", p, err)
			}
		}
		return db, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}
