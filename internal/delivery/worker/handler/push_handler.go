package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"scrobbler/config"
	deliverycontext "scrobbler/internal/delivery/context"
	"scrobbler/internal/domain/constants"
	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// eventDedupTTL is how long a handled event ID is remembered.
const eventDedupTTL = 24 * time.Hour

const (
	outcomeProcessed = "processed"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier validates the OIDC token Google attaches to push requests.
type tokenVerifier func(req *http.Request) error

// PushHandler consumes scrobble events pushed by Pub/Sub or the local publisher
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	dedup          service.EventDeduplicator
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Dedup  service.EventDeduplicator
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-signed pushes outside development carry a token worth checking
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		dedup:          params.Dedup,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed events are acknowledged with 200 so they are not redelivered; 503 asks for a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ScrobbleEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse scrobble event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	outcome, err := h.processEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process scrobble event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		metrics.IncEventConsumed(outcomeRejected)

		return c.NoContent(http.StatusOK)
	}
	metrics.IncEventConsumed(outcome)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ScrobbleEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent validates the event and acknowledges it once per event ID.
func (h *PushHandler) processEvent(ctx context.Context, event *service.ScrobbleEvent) (string, error) {
	if err := validateEvent(event); err != nil {
		return "", err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	first, err := h.dedup.FirstDelivery(ctx, event.EventID, eventDedupTTL)
	if err != nil {
		return "", newRetryableError(errors.Wrap(err, "failed to check event delivery"))
	}
	if !first {
		logger.Info("[Worker] Skipping redelivered scrobble event", slog.String("event_id", event.EventID))

		return outcomeDuplicate, nil
	}

	attrs := []any{
		slog.String("event_id", event.EventID),
		slog.String("user_id", event.UserID),
		slog.String("episode_id", event.EpisodeID),
		slog.Bool("watched", event.Watched),
	}
	if event.ShowID != "" {
		attrs = append(attrs, slog.String("show_id", event.ShowID))
	}
	if event.Progress != nil {
		attrs = append(attrs, slog.Float64("progress", *event.Progress))
	}
	logger.Info("[Worker] Scrobble event processed", attrs...)

	return outcomeProcessed, nil
}

// validateEvent rejects events missing the identifiers every publisher sets.
func validateEvent(event *service.ScrobbleEvent) error {
	if event.EventID == "" {
		return errors.New("event_id is required")
	}
	if _, err := uuid.Parse(event.UserID); err != nil {
		return errors.Wrap(err, "invalid user_id")
	}
	if _, err := uuid.Parse(event.EpisodeID); err != nil {
		return errors.Wrap(err, "invalid episode_id")
	}
	if event.ShowID != "" {
		if _, err := uuid.Parse(event.ShowID); err != nil {
			return errors.Wrap(err, "invalid show_id")
		}
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
