package middleware

import (
	"log/slog"
	"net/http"

	"scrobbler/internal/delivery/api/response"
	deliverycontext "scrobbler/internal/delivery/context"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/errors"

	"github.com/labstack/echo/v4"
)

const emptyErrorBodyKey = "emptyErrorBody"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// EmptyErrorBody marks routes whose failures are reported by status code alone.
func EmptyErrorBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(emptyErrorBodyKey, true)

		return next(c)
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := m.classify(err, c)
	if empty, _ := c.Get(emptyErrorBodyKey).(bool); empty {
		_ = response.Empty(c, status)

		return
	}

	_ = response.Error(c, status, code, message, nil)
}

// classify maps err to a status and a client-safe code and message. Unknown errors are logged and hidden.
func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(err, c)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return httpErr.Code, "HTTP_ERROR", message
	}

	m.logUnhandled(err, c)

	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later"
}

func (m *ErrorMiddleware) logUnhandled(err error, c echo.Context) {
	attrs := []any{
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}
	if stack := errors.Stack(err); stack != "" {
		attrs = append(attrs, slog.String("stack", stack))
	}
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error", attrs...)
}
