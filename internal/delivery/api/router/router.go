// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scrobbler/internal/delivery/api/middleware"
	"scrobbler/internal/delivery/api/router/handler"
	"scrobbler/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceAuthHandler *handler.DeviceAuthHandler
	ScrobbleHandler   *handler.ScrobbleHandler
	LibraryHandler    *handler.LibraryHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceAuthHandler *handler.DeviceAuthHandler
	scrobbleHandler   *handler.ScrobbleHandler
	libraryHandler    *handler.LibraryHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceAuthHandler: params.DeviceAuthHandler,
		scrobbleHandler:   params.ScrobbleHandler,
		libraryHandler:    params.LibraryHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Device-authorization flow; failures carry no body
	oauthGroup := e.Group("/oauth", middleware.EmptyErrorBody)
	{
		oauthGroup.POST("/device/code", r.deviceAuthHandler.IssueDeviceCode)
		oauthGroup.POST("/device/token", r.deviceAuthHandler.PollDeviceToken)
		oauthGroup.POST("/token", r.deviceAuthHandler.RefreshToken)
		oauthGroup.POST("/revoke", r.deviceAuthHandler.Revoke)
	}

	// Activation by a person on a second device
	activateGroup := e.Group("/activate")
	{
		activateGroup.GET("", r.deviceAuthHandler.ActivationPage)
		activateGroup.POST("", r.deviceAuthHandler.Activate)
		activateGroup.GET("/qr", r.deviceAuthHandler.ActivationQR)
	}

	// Scrobble ingestion
	scrobbleGroup := e.Group("/scrobble", r.authMiddleware.Authenticate)
	{
		scrobbleGroup.POST("", r.scrobbleHandler.Scrobble)
		scrobbleGroup.POST("/start", r.scrobbleHandler.Start)
		scrobbleGroup.POST("/pause", r.scrobbleHandler.Pause)
		scrobbleGroup.POST("/stop", r.scrobbleHandler.Stop)
	}

	// Sync endpoints called by media-center clients
	syncGroup := e.Group("/sync", r.authMiddleware.Authenticate)
	{
		syncGroup.GET("/watched/shows", r.libraryHandler.WatchedShows)
		syncGroup.GET("/playback/episodes", r.libraryHandler.PlaybackEpisodes)
		syncGroup.POST("/collection", handler.EchoBody)
		syncGroup.POST("/history", handler.EchoBody)

		for _, path := range []string{
			"/playback/movies",
			"/watched/movies",
			"/ratings/movies",
			"/ratings/shows",
			"/ratings/episodes",
			"/collection/movies",
			"/collection/shows",
		} {
			syncGroup.GET(path, handler.EmptyList)
		}
	}

	e.GET("/users/settings", handler.UserSettings, r.authMiddleware.Authenticate)

	// Library API
	apiV1 := e.Group("/api/v1", r.authMiddleware.Authenticate)
	{
		apiV1.GET("/shows", r.libraryHandler.ListShows)
		apiV1.GET("/shows/:id/episodes", r.libraryHandler.ListEpisodes)
	}
}
