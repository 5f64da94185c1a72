package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves every question ordered by ID
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves the questions of one category ordered by ID
	ListByCategory(ctx context.Context, categoryID int64) ([]Question, error)

	// Search retrieves the questions whose text contains term, ignoring case, ordered by ID
	Search(ctx context.Context, term string) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int64) (*Question, error)

	// Create inserts a question and assigns its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository defines the read-only category operations
type CategoryRepository interface {
	// List retrieves every category ordered by ID
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int64) (*Category, error)
}

// Question represents a trivia question
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category represents a question category such as "Sports"
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// DefaultCategories are seeded into an empty store
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// CategoryLabels maps category IDs to their type labels.
func CategoryLabels(categories []Category) map[int64]string {
	labels := make(map[int64]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Type
	}
	return labels
}
