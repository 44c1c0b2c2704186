package middleware

import (
	"net/http"
	"time"

	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency per route template.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request().Method, path, responseStatus(c, err), time.Since(start).Seconds())

		return err
	}
}

// responseStatus predicts the status the error handler will write when the handler returned an error.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
