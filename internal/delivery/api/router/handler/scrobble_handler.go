package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"scrobbler/internal/delivery/api/middleware"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/errors"
	"scrobbler/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScrobbleHandlerParams holds dependencies for ScrobbleHandler, injected by Fx.
type ScrobbleHandlerParams struct {
	fx.In

	ScrobbleUC usecase.ScrobbleUsecase
	Logger     *slog.Logger
}

// ScrobbleHandler ingests scrobbles.
type ScrobbleHandler struct {
	scrobbleUC usecase.ScrobbleUsecase
	logger     *slog.Logger
}

// NewScrobbleHandler is the constructor for ScrobbleHandler
func NewScrobbleHandler(params ScrobbleHandlerParams) *ScrobbleHandler {
	return &ScrobbleHandler{
		scrobbleUC: params.ScrobbleUC,
		logger:     params.Logger,
	}
}

// Scrobble handles POST /scrobble.
func (h *ScrobbleHandler) Scrobble(c echo.Context) error {
	return h.scrobble(c, usecase.ScrobbleActionNone)
}

// Start handles POST /scrobble/start.
func (h *ScrobbleHandler) Start(c echo.Context) error {
	return h.scrobble(c, usecase.ScrobbleActionStart)
}

// Pause handles POST /scrobble/pause.
func (h *ScrobbleHandler) Pause(c echo.Context) error {
	return h.scrobble(c, usecase.ScrobbleActionPause)
}

// Stop handles POST /scrobble/stop.
func (h *ScrobbleHandler) Stop(c echo.Context) error {
	return h.scrobble(c, usecase.ScrobbleActionStop)
}

// scrobble stores the payload and echoes the raw body back once it is committed.
func (h *ScrobbleHandler) scrobble(c echo.Context, action usecase.ScrobbleAction) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read scrobble body")
	}

	var input usecase.ScrobbleInput
	if err := json.Unmarshal(body, &input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed scrobble payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.Action = action

	if _, err := h.scrobbleUC.Scrobble(c.Request().Context(), userID, &input); err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, body)
}
