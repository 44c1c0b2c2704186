package handler

import (
	"encoding/json"
	"io"
	"net/http"

	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/errors"

	"github.com/labstack/echo/v4"
)

// EmptyList answers sync endpoints that are accepted but not tracked, so clients do not error.
func EmptyList(c echo.Context) error {
	return c.JSON(http.StatusOK, []struct{}{})
}

// EchoBody acknowledges a sync upload by sending the JSON body back unchanged.
func EchoBody(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read sync body")
	}
	if !json.Valid(body) {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed sync payload")
	}

	return c.JSONBlob(http.StatusOK, body)
}

// UserSettings refuses settings lookups; there is no account profile behind a device credential.
func UserSettings(c echo.Context) error {
	return c.JSON(http.StatusForbidden, struct{}{})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
