// Package sqlite is an embedded store for local development and tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// driverName is go-sqlite3 with the functions the repositories rely on
const driverName = "sqlite3_trivia"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// Built-in lower() and LIKE fold ASCII only
			return conn.RegisterFunc("unicode_lower", strings.ToLower, true)
		},
	})
}

// Store owns the SQLite connection shared by the repositories
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path and applies the schema
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "trivia.db"
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure sqlite: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Questions returns the question repository backed by this store
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{db: s.db}
}

// Categories returns the category repository backed by this store
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{db: s.db}
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
