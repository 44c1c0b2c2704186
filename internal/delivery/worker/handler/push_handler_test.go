package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scrobbler/config"
	"scrobbler/internal/domain/constants"
	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
	mockSvc "scrobbler/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockEventDeduplicator) {
	t.Helper()

	dedup := mockSvc.NewMockEventDeduplicator(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dedup:  dedup,
	})

	return h, dedup
}

func validEvent() *service.ScrobbleEvent {
	progress := 42.5

	return &service.ScrobbleEvent{
		EventID:   uuid.NewString(),
		UserID:    uuid.NewString(),
		ShowID:    uuid.NewString(),
		EpisodeID: uuid.NewString(),
		Progress:  &progress,
		At:        time.Now().UTC().Format(time.RFC3339),
	}
}

func pushBody(t *testing.T, event any) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/scrobble-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_ProcessesFirstDelivery(t *testing.T) {
	h, dedup := newTestPushHandler(t, &config.Config{})
	event := validEvent()
	dedup.EXPECT().FirstDelivery(mock.Anything, event.EventID, eventDedupTTL).Return(true, nil).Once()

	rec := servePush(h, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_AcknowledgesDuplicates(t *testing.T) {
	h, dedup := newTestPushHandler(t, &config.Config{})
	event := validEvent()
	dedup.EXPECT().FirstDelivery(mock.Anything, event.EventID, eventDedupTTL).Return(false, nil).Once()

	rec := servePush(h, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetriesWhenDedupFails(t *testing.T) {
	h, dedup := newTestPushHandler(t, &config.Config{})
	event := validEvent()
	dedup.EXPECT().FirstDelivery(mock.Anything, event.EventID, eventDedupTTL).Return(false, errors.New("redis down")).Once()

	rec := servePush(h, pushBody(t, event))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_InvalidEventsAreNotRedelivered(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *service.ScrobbleEvent)
	}{
		{name: "missing event id", mutate: func(e *service.ScrobbleEvent) { e.EventID = "" }},
		{name: "bad user id", mutate: func(e *service.ScrobbleEvent) { e.UserID = "alice" }},
		{name: "bad episode id", mutate: func(e *service.ScrobbleEvent) { e.EpisodeID = "" }},
		{name: "bad show id", mutate: func(e *service.ScrobbleEvent) { e.ShowID = "42" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dedup := newTestPushHandler(t, &config.Config{})
			event := validEvent()
			tt.mutate(event)

			rec := servePush(h, pushBody(t, event))

			assert.Equal(t, http.StatusOK, rec.Code)
			dedup.AssertNotCalled(t, "FirstDelivery", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_MalformedEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"***"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, pushBody(t, validEvent()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationForLocalAndDevelop(t *testing.T) {
	local := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	h, _ := newTestPushHandler(t, local)
	assert.False(t, h.verifyPushAuth)

	develop := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	develop.Env.Env = constants.EnvDevelop
	h, _ = newTestPushHandler(t, develop)
	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID_Priority(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	event := validEvent()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	event.RequestID = "from-event"
	assert.Equal(t, "from-attributes", h.extractRequestID(t.Context(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(t.Context(), &msg, event))

	event.RequestID = ""
	_, err := uuid.Parse(h.extractRequestID(t.Context(), &msg, event))
	assert.NoError(t, err, "falls back to a generated id")
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}
