package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler serves quiz questions
type QuizHandler struct {
	trivia *service.TriviaService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(trivia *service.TriviaService) *QuizHandler {
	return &QuizHandler{
		trivia: trivia,
	}
}

// QuizCategory selects the quiz category; ID 0 means all categories
type QuizCategory struct {
	ID   numberField `json:"id"`
	Type string      `json:"type"`
}

// QuizRequest is the body of POST /quizzes. Older clients send the category
// under "categories".
type QuizRequest struct {
	PreviousQuestions []numberField `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
	Categories        *QuizCategory `json:"categories"`
}

// QuizResponse carries the next question, or null with Exhausted set
type QuizResponse struct {
	Success   bool             `json:"success"`
	Question  *domain.Question `json:"question"`
	Exhausted bool             `json:"exhausted,omitempty"`
}

// NextQuestion handles POST /quizzes
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	category := req.QuizCategory
	if category == nil {
		category = req.Categories
	}
	if req.PreviousQuestions == nil || category == nil {
		return fmt.Errorf("%w: previous_questions and quiz_category are required", service.ErrBadRequest)
	}
	if !category.ID.usable() {
		return fmt.Errorf("%w: invalid quiz category id", service.ErrBadRequest)
	}

	previous := make([]int64, 0, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		if !id.usable() {
			return fmt.Errorf("%w: invalid previous question id", service.ErrBadRequest)
		}
		previous = append(previous, id.value)
	}

	res, err := h.trivia.NextQuizQuestion(c.Request().Context(), category.ID.value, previous)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:   true,
		Question:  res.Question,
		Exhausted: res.Exhausted,
	})
}
