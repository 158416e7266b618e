package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError is a failure carrying the HTTP status it should be rendered with.
// Services return it for request-level failures; anything else that reaches
// the error handler renders as a 500.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates an APIError with an explicit status.
func NewAPIError(status int, format string, args ...any) *APIError {
	return &APIError{
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}

// NotFound creates a 404 APIError.
func NotFound(format string, args ...any) *APIError {
	return NewAPIError(http.StatusNotFound, format, args...)
}

// ErrorEnvelope is the JSON body every failure renders as.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// HTTPErrorHandler is the central error responder. It translates APIError,
// echo.HTTPError (router 404s, bind failures), and unexpected errors into
// the {error: {message, status}} envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	message := err.Error()

	var apiErr *APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		message = apiErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if s, ok := httpErr.Message.(string); ok {
			message = s
		} else {
			message = fmt.Sprint(httpErr.Message)
		}
	}

	if c.Response().Committed {
		return
	}
	if err := c.JSON(status, ErrorEnvelope{Error: APIError{Message: message, Status: status}}); err != nil {
		c.Logger().Error(err)
	}
}
