package sqlite

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func (s *Store) initSchema(ctx context.Context) error {
	// AUTOINCREMENT keeps deleted IDs from being handed out again.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category INTEGER NOT NULL,
			difficulty INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return s.seedCategories(ctx)
}

func (s *Store) seedCategories(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, label := range domain.DefaultCategories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (type) VALUES (?)`, label); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", label, err)
		}
	}

	return tx.Commit()
}
