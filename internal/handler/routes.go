package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/validation"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// NewServer builds the echo instance with middleware and every route. A nil
// hub disables the /ws event feed.
func NewServer(trivia *service.TriviaService, hub *ws.Hub) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "true"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPut,
			http.MethodDelete,
			http.MethodPatch,
			http.MethodPost,
			http.MethodOptions,
		},
	}))

	categoryHandler := NewCategoryHandler(trivia)
	questionHandler := NewQuestionHandler(trivia)
	quizHandler := NewQuizHandler(trivia)

	// Category routes
	e.GET("/categories", categoryHandler.ListCategories)
	e.GET("/categories/:id/questions", categoryHandler.CategoryQuestions)

	// Question routes
	e.GET("/questions", questionHandler.ListQuestions)
	e.POST("/questions", questionHandler.CreateOrSearch)
	e.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	e.POST("/questions/:id/answers", questionHandler.CheckAnswer)

	// Quiz routes
	e.POST("/quizzes", quizHandler.NextQuestion)

	// WebSocket route
	if hub != nil {
		e.GET("/ws", NewWebSocketHandler(hub).HandleWebSocket)
	}

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	return e
}
