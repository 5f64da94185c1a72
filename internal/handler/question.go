package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	trivia *service.TriviaService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(trivia *service.TriviaService) *QuestionHandler {
	return &QuestionHandler{
		trivia: trivia,
	}
}

// QuestionRequest is the body of POST /questions. A search field turns the
// request into a search.
type QuestionRequest struct {
	Question   textField   `json:"question"`
	Answer     textField   `json:"answer"`
	Category   numberField `json:"category"`
	Difficulty numberField `json:"difficulty"`
	Search     textField   `json:"search"`
	SearchTerm textField   `json:"searchTerm"`
}

// CreateQuestionInput holds the validated fields of a new question
type CreateQuestionInput struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   int64  `validate:"min=1"`
	Difficulty int    `validate:"min=1,max=5"`
}

// AnswerRequest is the body of POST /questions/:id/answers
type AnswerRequest struct {
	Answer textField `json:"answer"`
}

// QuestionListResponse is returned by GET /questions
type QuestionListResponse struct {
	Success        bool              `json:"success"`
	TotalQuestions int               `json:"total_questions"`
	Questions      []domain.Question `json:"questions"`
	Categories     map[int64]string  `json:"categories"`
}

// DeleteQuestionResponse is returned by DELETE /questions/:id
type DeleteQuestionResponse struct {
	Success        bool              `json:"success"`
	DeletedID      int64             `json:"deleted_id"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// CreateQuestionResponse is returned when POST /questions creates a question
type CreateQuestionResponse struct {
	Success        bool              `json:"success"`
	Message        string            `json:"message"`
	Created        int64             `json:"created"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// SearchResponse is returned when POST /questions searches
type SearchResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// AnswerResponse is returned by POST /questions/:id/answers
type AnswerResponse struct {
	Success bool   `json:"success"`
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// ListQuestions handles GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page, err := h.trivia.ListQuestions(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionListResponse{
		Success:        true,
		TotalQuestions: page.Total,
		Questions:      page.Questions,
		Categories:     domain.CategoryLabels(page.Categories),
	})
}

// DeleteQuestion handles DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.trivia.DeleteQuestion(c.Request().Context(), id, pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		DeletedID:      res.DeletedID,
		Questions:      res.Questions,
		TotalQuestions: res.Total,
	})
}

// CreateOrSearch handles POST /questions
func (h *QuestionHandler) CreateOrSearch(c echo.Context) error {
	var req QuestionRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	if req.Question.empty() || req.Answer.empty() || req.Category.empty || req.Difficulty.empty {
		return fmt.Errorf("%w: required field is empty", service.ErrUnprocessable)
	}

	search := req.Search
	if !search.present {
		search = req.SearchTerm
	}
	if search.present {
		return h.search(c, search)
	}
	return h.create(c, req)
}

func (h *QuestionHandler) search(c echo.Context, term textField) error {
	if term.invalid {
		return fmt.Errorf("%w: search must be a string", service.ErrUnprocessable)
	}

	res, err := h.trivia.SearchQuestions(c.Request().Context(), term.value, pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Success:        true,
		Questions:      res.Questions,
		TotalQuestions: res.Total,
	})
}

func (h *QuestionHandler) create(c echo.Context, req QuestionRequest) error {
	if !req.Question.present || !req.Answer.present || !req.Category.present || !req.Difficulty.present {
		return fmt.Errorf("%w: question, answer, category and difficulty are required", service.ErrBadRequest)
	}
	if req.Question.invalid || req.Answer.invalid || !req.Category.usable() || !req.Difficulty.usable() {
		return fmt.Errorf("%w: malformed question fields", service.ErrUnprocessable)
	}

	input := CreateQuestionInput{
		Question:   req.Question.value,
		Answer:     req.Answer.value,
		Category:   req.Category.value,
		Difficulty: int(req.Difficulty.value),
	}
	if err := c.Validate(&input); err != nil {
		return fmt.Errorf("%w: %v", service.ErrUnprocessable, err)
	}

	res, err := h.trivia.CreateQuestion(c.Request().Context(), domain.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}, pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Message:        "new question was successfully added",
		Created:        res.Created,
		Questions:      res.Questions,
		TotalQuestions: res.Total,
	})
}

// CheckAnswer handles POST /questions/:id/answers
func (h *QuestionHandler) CheckAnswer(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req AnswerRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if !req.Answer.present {
		return fmt.Errorf("%w: answer is required", service.ErrBadRequest)
	}
	if req.Answer.invalid {
		return fmt.Errorf("%w: answer must be a string", service.ErrUnprocessable)
	}

	res, err := h.trivia.CheckAnswer(c.Request().Context(), id, req.Answer.value)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AnswerResponse{
		Success: true,
		Correct: res.Correct,
		Answer:  res.Answer,
	})
}
