package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	db *sql.DB
}

const selectQuestions = `SELECT id, question, answer, category, difficulty FROM questions`

// List retrieves every question ordered by ID
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	return r.query(ctx, selectQuestions+` ORDER BY id`)
}

// ListByCategory retrieves the questions of one category ordered by ID
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	return r.query(ctx, selectQuestions+` WHERE category = ? ORDER BY id`, categoryID)
}

// Search retrieves the questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	return r.query(ctx,
		selectQuestions+` WHERE unicode_lower(question) LIKE unicode_lower(?) ESCAPE '\' ORDER BY id`,
		repository.ContainsPattern(term))
}

func (r *QuestionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var q domain.Question
	err := r.db.QueryRowContext(ctx, selectQuestions+` WHERE id = ?`, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

// Create inserts a question and assigns its ID
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read question id: %w", err)
	}
	question.ID = id
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if affected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}
