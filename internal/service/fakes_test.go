package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

type fakeQuestionRepo struct {
	questions map[int64]domain.Question
	nextID    int64

	listErr   error
	createErr error
	deleteErr error
}

func newFakeQuestionRepo(questions ...domain.Question) *fakeQuestionRepo {
	f := &fakeQuestionRepo{questions: make(map[int64]domain.Question)}
	for _, q := range questions {
		f.questions[q.ID] = q
		if q.ID > f.nextID {
			f.nextID = q.ID
		}
	}
	return f
}

func (f *fakeQuestionRepo) sorted(keep func(domain.Question) bool) []domain.Question {
	out := make([]domain.Question, 0, len(f.questions))
	for _, q := range f.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeQuestionRepo) List(_ context.Context) ([]domain.Question, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sorted(func(domain.Question) bool { return true }), nil
}

func (f *fakeQuestionRepo) ListByCategory(_ context.Context, categoryID int64) ([]domain.Question, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sorted(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

func (f *fakeQuestionRepo) Search(_ context.Context, term string) ([]domain.Question, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	term = strings.ToLower(term)
	return f.sorted(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (f *fakeQuestionRepo) GetByID(_ context.Context, id int64) (*domain.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &q, nil
}

func (f *fakeQuestionRepo) Create(_ context.Context, question *domain.Question) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	question.ID = f.nextID
	f.questions[question.ID] = *question
	return nil
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(f.questions, id)
	return nil
}

type fakeCategoryRepo struct {
	categories []domain.Category
	listErr    error
	listCalls  int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	f := &fakeCategoryRepo{}
	for i, label := range domain.DefaultCategories {
		f.categories = append(f.categories, domain.Category{ID: int64(i + 1), Type: label})
	}
	return f
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

type fakeCache struct {
	categories []domain.Category
	filled     bool
	getErr     error
	setErr     error
	sets       int
}

func (f *fakeCache) GetCategories(_ context.Context) ([]domain.Category, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.categories, f.filled, nil
}

func (f *fakeCache) SetCategories(_ context.Context, categories []domain.Category) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.categories = categories
	f.filled = true
	return nil
}

type fakeLogger struct {
	warnings []string
	errors   []string
}

func (f *fakeLogger) Warnf(format string, args ...interface{}) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

func (f *fakeLogger) Errorf(format string, args ...interface{}) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

type recordedEvent struct {
	messageType string
	payload     string
}

type fakeBroadcaster struct {
	events []recordedEvent
}

func (f *fakeBroadcaster) Broadcast(messageType string, payload []byte) {
	f.events = append(f.events, recordedEvent{messageType: messageType, payload: string(payload)})
}

// sequenceRand returns the queued indexes in order, then repeats the last one
type sequenceRand struct {
	indexes []int
	calls   int
}

func (r *sequenceRand) Intn(n int) int {
	i := r.indexes[min(r.calls, len(r.indexes)-1)]
	r.calls++
	return i % n
}

var errStore = errors.New("store unavailable")

// seedQuestions builds n questions spread over the six default categories
func seedQuestions(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, domain.Question{
			ID:         int64(i),
			Question:   "Question number " + string(rune('A'+(i-1)%26)),
			Answer:     "Answer",
			Category:   int64((i-1)%6 + 1),
			Difficulty: (i-1)%5 + 1,
		})
	}
	return questions
}
