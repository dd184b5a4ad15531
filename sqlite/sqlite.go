// Package sqlite exports a lexical graph into a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the export schema if
// needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// Note: WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
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

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// createSchema creates the export tables if they don't exist. Every table
// carries a natural composite primary key; inserts use conflict-ignore
// semantics so re-exporting identical input is idempotent.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			word TEXT NOT NULL,
			word_display TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_words_word ON words(word);

		CREATE TABLE IF NOT EXISTS synsets (
			id TEXT PRIMARY KEY,
			pos TEXT NOT NULL DEFAULT '',
			definition TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS word_synsets (
			word_id INTEGER NOT NULL,
			synset_id TEXT NOT NULL,
			sense_order INTEGER NOT NULL,
			PRIMARY KEY (word_id, synset_id)
		);

		CREATE INDEX IF NOT EXISTS idx_word_synsets_word_id ON word_synsets(word_id);
		CREATE INDEX IF NOT EXISTS idx_word_synsets_word_order ON word_synsets(word_id, sense_order);

		CREATE TABLE IF NOT EXISTS synset_relations (
			source_id TEXT NOT NULL,
			target_id TEXT NOT NULL,
			rel_type TEXT NOT NULL,
			PRIMARY KEY (source_id, target_id, rel_type)
		);

		CREATE INDEX IF NOT EXISTS idx_synset_relations_source ON synset_relations(source_id);
		CREATE INDEX IF NOT EXISTS idx_synset_relations_target ON synset_relations(target_id);

		CREATE TABLE IF NOT EXISTS sense_relations (
			source_word_id INTEGER NOT NULL,
			source_synset_id TEXT NOT NULL,
			target_word_id INTEGER NOT NULL,
			target_synset_id TEXT NOT NULL,
			rel_type TEXT NOT NULL,
			PRIMARY KEY (source_word_id, source_synset_id, target_word_id, target_synset_id, rel_type)
		);

		CREATE INDEX IF NOT EXISTS idx_sense_relations_source ON sense_relations(source_word_id, source_synset_id);

		CREATE TABLE IF NOT EXISTS synset_examples (
			synset_id TEXT NOT NULL,
			example TEXT NOT NULL,
			example_order INTEGER NOT NULL,
			PRIMARY KEY (synset_id, example_order)
		);

		CREATE INDEX IF NOT EXISTS idx_synset_examples_synset ON synset_examples(synset_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
