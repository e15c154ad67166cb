// Package sqlite provides SQLite-based storage implementations for
// recontact services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB wraps a SQLite connection configured for single-writer use.
// Use ":memory:" as the path for an in-memory database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns an unopened DB for the given path.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the database, applies connection pragmas, and
// ensures the schema exists.
func (db *DB) Open() (err error) {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err != nil {
			conn.Close()
		}
	}()

	// SQLite allows a single writer; a one-connection pool serializes
	// writes instead of surfacing SQLITE_BUSY to callers.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	// Wait out lock contention for up to 5s rather than failing with
	// "database is locked" immediately.
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	// WAL trades -wal/-shm sidecar files for faster writes and reads
	// that proceed during a write. In-memory databases don't support it.
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the tables and indexes if they don't exist.
// Validated counts are not stored: they are derived from the JSON
// contact arrays on read, so they can never drift from the sets.
func (db *DB) createSchema() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS targets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			url TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			target_id TEXT NOT NULL REFERENCES targets(id) ON DELETE CASCADE,
			emails TEXT NOT NULL DEFAULT '[]',
			phones TEXT NOT NULL DEFAULT '[]',
			source_url TEXT NOT NULL,
			name TEXT,
			title TEXT,
			company TEXT,
			location TEXT,
			extraction_timestamp TEXT NOT NULL,
			total_emails_found INTEGER NOT NULL DEFAULT 0,
			total_phones_found INTEGER NOT NULL DEFAULT 0,
			content_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_records_target_id ON records(target_id);
		CREATE INDEX IF NOT EXISTS idx_records_source_url ON records(source_url);
	`

	_, err := db.db.Exec(schema)
	return err
}
