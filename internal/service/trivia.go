package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// Event types broadcast after a successful write
const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// CategoryCache caches the category listing
type CategoryCache interface {
	GetCategories(ctx context.Context) ([]domain.Category, bool, error)
	SetCategories(ctx context.Context, categories []domain.Category) error
}

// Broadcaster pushes an event to every connected client
type Broadcaster interface {
	Broadcast(messageType string, payload []byte)
}

// Logger receives failures that do not fail the request. echo.Logger
// satisfies it.
type Logger interface {
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Option configures a TriviaService
type Option func(*TriviaService)

// WithCategoryCache enables read-through caching of the category listing
func WithCategoryCache(cache CategoryCache) Option {
	return func(s *TriviaService) { s.cache = cache }
}

// WithBroadcaster publishes question events
func WithBroadcaster(b Broadcaster) Option {
	return func(s *TriviaService) { s.events = b }
}

// WithLogger replaces the default logger
func WithLogger(l Logger) Option {
	return func(s *TriviaService) { s.logger = l }
}

// WithRand replaces the random source used by the quiz
func WithRand(r RandSource) Option {
	return func(s *TriviaService) { s.rand = r }
}

// TriviaService implements question listing, search, quiz and write operations
type TriviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	cache      CategoryCache
	events     Broadcaster
	rand       RandSource
	logger     Logger
}

// NewTriviaService creates a new trivia service
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository, opts ...Option) *TriviaService {
	s := &TriviaService{
		questions:  questions,
		categories: categories,
		rand:       globalRand{},
		logger:     log.New("trivia"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QuestionPage is one page of the full question list
type QuestionPage struct {
	Questions  []domain.Question
	Total      int
	Categories []domain.Category
}

// DeleteResult describes a deleted question and the list afterwards
type DeleteResult struct {
	DeletedID int64
	Questions []domain.Question
	Total     int
}

// CreateResult describes a created question and the list afterwards
type CreateResult struct {
	Created   int64
	Questions []domain.Question
	Total     int
}

// SearchResult is one page of search matches
type SearchResult struct {
	Questions []domain.Question
	Total     int
}

// CategoryQuestions is one page of a category's questions
type CategoryQuestions struct {
	Questions []domain.Question
	Total     int
	Category  domain.Category
}

// QuizResult is the next quiz question, or Exhausted when none remain
type QuizResult struct {
	Question  *domain.Question
	Exhausted bool
}

// AnswerResult reports whether a submitted answer matches
type AnswerResult struct {
	Correct bool
	Answer  string
}

// Categories returns every category ordered by ID
func (s *TriviaService) Categories(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetCategories(ctx)
		if err != nil {
			s.logger.Warnf("category cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetCategories(ctx, categories); err != nil {
			s.logger.Warnf("category cache write failed: %v", err)
		}
	}
	return categories, nil
}

// ListQuestions returns the requested page of all questions. An empty page is
// reported as ErrNotFound.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list questions: %v", ErrInternal, err)
	}

	current := Paginate(page, all)
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: page %d is empty", ErrNotFound, page)
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  current,
		Total:      len(all),
		Categories: categories,
	}, nil
}

// DeleteQuestion removes a question and returns the requested page of what remains
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int64, page int) (*DeleteResult, error) {
	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: delete question %d: %v", ErrUnprocessable, id, err)
	}

	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list questions: %v", ErrUnprocessable, err)
	}

	s.publish(EventQuestionDeleted, map[string]int64{"id": id})

	return &DeleteResult{
		DeletedID: id,
		Questions: Paginate(page, all),
		Total:     len(all),
	}, nil
}

// CreateQuestion stores a new question and returns the requested page of the list
func (s *TriviaService) CreateQuestion(ctx context.Context, q domain.Question, page int) (*CreateResult, error) {
	if q.Question == "" || q.Answer == "" {
		return nil, fmt.Errorf("%w: question and answer are required", ErrUnprocessable)
	}
	if q.Category < 1 || q.Difficulty < 1 {
		return nil, fmt.Errorf("%w: category and difficulty must be positive", ErrUnprocessable)
	}

	if err := s.questions.Create(ctx, &q); err != nil {
		return nil, fmt.Errorf("%w: create question: %v", ErrUnprocessable, err)
	}

	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list questions: %v", ErrUnprocessable, err)
	}

	s.publish(EventQuestionCreated, q)

	return &CreateResult{
		Created:   q.ID,
		Questions: Paginate(page, all),
		Total:     len(all),
	}, nil
}

// SearchQuestions returns the requested page of questions containing term
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*SearchResult, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrUnprocessable)
	}

	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("%w: search questions: %v", ErrUnprocessable, err)
	}

	return &SearchResult{
		Questions: Paginate(page, matches),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory returns the requested page of one category's questions
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*CategoryQuestions, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("%w: get category %d: %v", ErrInternal, categoryID, err)
	}

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: list category %d: %v", ErrInternal, categoryID, err)
	}

	return &CategoryQuestions{
		Questions: Paginate(page, questions),
		Total:     len(questions),
		Category:  *category,
	}, nil
}

// NextQuizQuestion picks a random question of the category (0 for all) that
// is not in previous.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int64, previous []int64) (*QuizResult, error) {
	var (
		pool []domain.Question
		err  error
	)
	if categoryID == 0 {
		pool, err = s.questions.List(ctx)
	} else {
		pool, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load quiz pool: %v", ErrInternal, err)
	}

	question, ok := SelectQuizQuestion(s.rand, pool, previous)
	if !ok {
		return &QuizResult{Exhausted: true}, nil
	}
	return &QuizResult{Question: &question}, nil
}

// CheckAnswer compares a submitted answer with the stored one
func (s *TriviaService) CheckAnswer(ctx context.Context, id int64, answer string) (*AnswerResult, error) {
	if answer == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrUnprocessable)
	}

	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: get question %d: %v", ErrInternal, id, err)
	}

	return &AnswerResult{
		Correct: validation.IsSimilarAnswer(answer, question.Answer),
		Answer:  question.Answer,
	}, nil
}

func (s *TriviaService) publish(eventType string, payload any) {
	if s.events == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Errorf("failed to marshal %s event: %v", eventType, err)
		return
	}
	s.events.Broadcast(eventType, data)
}
