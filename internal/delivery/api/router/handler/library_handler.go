package handler

import (
	"log/slog"
	"net/http"

	"scrobbler/internal/delivery/api/middleware"
	"scrobbler/internal/delivery/api/response"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LibraryHandlerParams holds dependencies for LibraryHandler, injected by Fx.
type LibraryHandlerParams struct {
	fx.In

	LibraryUC usecase.LibraryUsecase
	Logger    *slog.Logger
}

// LibraryHandler reads back the scrobbled library.
type LibraryHandler struct {
	libraryUC usecase.LibraryUsecase
	logger    *slog.Logger
}

// NewLibraryHandler is the constructor for LibraryHandler
func NewLibraryHandler(params LibraryHandlerParams) *LibraryHandler {
	return &LibraryHandler{
		libraryUC: params.LibraryUC,
		logger:    params.Logger,
	}
}

// ListShows handles GET /api/v1/shows.
func (h *LibraryHandler) ListShows(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	shows, err := h.libraryUC.ListShows(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, shows)
}

// ListEpisodes handles GET /api/v1/shows/:id/episodes.
func (h *LibraryHandler) ListEpisodes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrContentNotFound
	}

	episodes, err := h.libraryUC.ListEpisodes(c.Request().Context(), userID, showID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, episodes)
}

// WatchedShows handles GET /sync/watched/shows with a bare JSON array.
func (h *LibraryHandler) WatchedShows(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	shows, err := h.libraryUC.ListWatchedShows(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shows)
}

// PlaybackEpisodes handles GET /sync/playback/episodes with a bare JSON array.
func (h *LibraryHandler) PlaybackEpisodes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	episodes, err := h.libraryUC.ListPlayback(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, episodes)
}
