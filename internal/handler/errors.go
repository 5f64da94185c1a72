package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message"`
}

// Messages clients match on; keep them stable.
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request made by client",
	http.StatusNotFound:            "Resource not found. Check your request and try again",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable: Request could not be processed",
	http.StatusInternalServerError: "Request could not be processed due to internal server error. Try later",
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInternal):
		return http.StatusInternalServerError
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders errors as {"success": false, "error_message": ...}.
// Causes are logged, never returned.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := statusFor(err)
	switch {
	case code >= http.StatusInternalServerError:
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	case code == http.StatusUnprocessableEntity:
		c.Logger().Warnf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	message, ok := errorMessages[code]
	if !ok {
		message = http.StatusText(code)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, ErrorResponse{Success: false, ErrorMessage: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
