// Package store persists evaluation runs and similarity findings in a
// local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "llm-readability.db"

type Store struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the SQLite database next to the binary
func Open() (*Store, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	execDir := filepath.Dir(execPath)

	return OpenAt(filepath.Join(execDir, DefaultDBName))
}

// OpenAt opens or creates the SQLite database at an explicit path.
func OpenAt(dbPath string) (*Store, error) {
	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{
		DB:   sqlDB,
		path: dbPath,
	}

	if err := s.ensureSchemaExists(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not
func (s *Store) ensureSchemaExists() error {
	var tableName string
	err := s.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='evaluations'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return s.InitSchema()
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// InitSchema initializes the database schema
func (s *Store) InitSchema() error {
	_, err := s.Exec(schema)
	return err
}
