// Package store persists classified methylation calls in DuckDB so
// project results stay queryable after the report is written.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection for classified call results.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS methylation_calls (
		project VARCHAR,
		sample VARCHAR,
		reference VARCHAR,
		methylase VARCHAR,
		modification VARCHAR,
		position BIGINT,
		strand VARCHAR,
		valid_cov BIGINT,
		percent_modified DOUBLE,
		n_mod BIGINT,
		n_canonical BIGINT,
		n_other_mod BIGINT,
		n_delete BIGINT,
		n_fail BIGINT,
		n_diff BIGINT,
		n_nocall BIGINT,
		status VARCHAR
	)`)
	return err
}
