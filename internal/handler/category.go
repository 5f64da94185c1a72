package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	trivia *service.TriviaService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(trivia *service.TriviaService) *CategoryHandler {
	return &CategoryHandler{
		trivia: trivia,
	}
}

// CategoryListResponse is returned by GET /categories
type CategoryListResponse struct {
	Success         bool             `json:"success"`
	Categories      map[int64]string `json:"categories"`
	TotalCategories int              `json:"total_categories"`
}

// CategoryQuestionsResponse is returned by GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory domain.Category   `json:"current_category"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.trivia.Categories(c.Request().Context())
	if err != nil {
		return err
	}

	labels := domain.CategoryLabels(categories)
	return c.JSON(http.StatusOK, CategoryListResponse{
		Success:         true,
		Categories:      labels,
		TotalCategories: len(labels),
	})
}

// CategoryQuestions handles GET /categories/:id/questions
func (h *CategoryHandler) CategoryQuestions(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.trivia.QuestionsByCategory(c.Request().Context(), id, pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       res.Questions,
		TotalQuestions:  res.Total,
		CurrentCategory: res.Category,
	})
}
