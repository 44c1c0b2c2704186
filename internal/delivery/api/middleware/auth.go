package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "scrobbler/internal/delivery/context"
	"scrobbler/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	DeviceAuthUC usecase.DeviceAuthUsecase
	Logger       *slog.Logger
}

// AuthMiddleware resolves device bearer credentials to users.
type AuthMiddleware struct {
	deviceAuthUC usecase.DeviceAuthUsecase
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{deviceAuthUC: params.DeviceAuthUC, logger: params.Logger}
}

// Authenticate answers 403 with an empty body unless the bearer belongs to a linked credential.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return c.NoContent(http.StatusForbidden)
		}

		ctx := c.Request().Context()
		userID, err := m.deviceAuthUC.Authenticate(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Bearer rejected", slog.Any("error", err))

			return c.NoContent(http.StatusForbidden)
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(ctx, userID, m.logger)))

		return next(c)
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>". The scheme is case-insensitive.
func BearerToken(c echo.Context) (string, bool) {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

// GetUserID returns the user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserIDFromContext(c.Request().Context())
}
