package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scrobbler/config"
	apimiddleware "scrobbler/internal/delivery/api/middleware"
	"scrobbler/internal/delivery/api/router"
	"scrobbler/internal/delivery/api/router/handler"
	deliverycontext "scrobbler/internal/delivery/context"
	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	mockSvc "scrobbler/internal/mocks/service"
	mockUC "scrobbler/internal/mocks/usecase"
	"scrobbler/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBearer = "good-token"

type testServer struct {
	e          *echo.Echo
	deviceAuth *mockUC.MockDeviceAuthUsecase
	scrobbles  *mockUC.MockScrobbleUsecase
	library    *mockUC.MockLibraryUsecase
	qrCodes    *mockSvc.MockQRCodeService
	userID     uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{DeviceAuth: &config.DeviceAuthConfig{VerificationURL: "http://localhost:8080/activate"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	ts := &testServer{
		deviceAuth: mockUC.NewMockDeviceAuthUsecase(t),
		scrobbles:  mockUC.NewMockScrobbleUsecase(t),
		library:    mockUC.NewMockLibraryUsecase(t),
		qrCodes:    mockSvc.NewMockQRCodeService(t),
		userID:     uuid.New(),
	}

	ts.e = newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			DeviceAuthHandler: handler.NewDeviceAuthHandler(handler.DeviceAuthHandlerParams{
				DeviceAuthUC: ts.deviceAuth,
				QRCodeSvc:    ts.qrCodes,
				Config:       cfg,
				Logger:       logger,
			}),
			ScrobbleHandler: handler.NewScrobbleHandler(handler.ScrobbleHandlerParams{ScrobbleUC: ts.scrobbles, Logger: logger}),
			LibraryHandler:  handler.NewLibraryHandler(handler.LibraryHandlerParams{LibraryUC: ts.library, Logger: logger}),
			AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{DeviceAuthUC: ts.deviceAuth, Logger: logger}),
		},
	})

	return ts
}

func (ts *testServer) allowBearer() {
	ts.deviceAuth.EXPECT().Authenticate(mock.Anything, validBearer).Return(ts.userID, nil)
}

func (ts *testServer) do(method, target, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

func TestServer_IssueDeviceCode(t *testing.T) {
	ts := newTestServer(t)
	ts.deviceAuth.EXPECT().IssueDeviceCode(mock.Anything, "kodi").Return(&usecase.DeviceCodeOutput{
		DeviceCode:      "device",
		UserCode:        "ABCD2345",
		VerificationURL: "http://localhost:8080/activate",
		ExpiresIn:       600,
		Interval:        5,
	}, nil)

	rec := ts.do(http.MethodPost, "/oauth/device/code", `{"client_id":"kodi","client_secret":"ignored"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"device_code": "device",
		"user_code": "ABCD2345",
		"verification_url": "http://localhost:8080/activate",
		"expires_in": 600,
		"interval": 5
	}`, rec.Body.String())
}

func TestServer_PollDeviceToken(t *testing.T) {
	token := &usecase.TokenOutput{
		AccessToken:  "access",
		TokenType:    usecase.TokenTypeBearer,
		ExpiresIn:    7200,
		RefreshToken: "refresh",
		Scope:        usecase.TokenScopePublic,
		CreatedAt:    1487889741,
	}

	tests := []struct {
		name       string
		output     *usecase.TokenOutput
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "linked", output: token, wantStatus: http.StatusOK},
		{name: "pending", err: domainerrors.ErrAuthorizationPending, wantStatus: http.StatusBadRequest},
		{name: "unknown", err: domainerrors.ErrDeviceCodeNotFound, wantStatus: http.StatusNotFound},
		{name: "too fast", err: domainerrors.ErrSlowDown, wantStatus: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.deviceAuth.EXPECT().Poll(mock.Anything, "device").Return(tt.output, tt.err)

			rec := ts.do(http.MethodPost, "/oauth/device/token", `{"code":"device","client_id":"kodi"}`, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.output == nil {
				assert.Empty(t, rec.Body.String(), "device-flow failures carry no body")

				return
			}
			assert.JSONEq(t, `{
				"access_token": "access",
				"token_type": "bearer",
				"expires_in": 7200,
				"refresh_token": "refresh",
				"scope": "public",
				"created_at": 1487889741
			}`, rec.Body.String())
		})
	}
}

func TestServer_RefreshToken(t *testing.T) {
	t.Run("missing bearer", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/oauth/token", `{"grant_type":"refresh_token"}`, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unknown bearer", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deviceAuth.EXPECT().Refresh(mock.Anything, "stale").Return(nil, domainerrors.ErrForbidden)

		rec := ts.do(http.MethodPost, "/oauth/token", "", "stale")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("rotates", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deviceAuth.EXPECT().Refresh(mock.Anything, validBearer).Return(&usecase.TokenOutput{
			AccessToken:  "next-access",
			TokenType:    usecase.TokenTypeBearer,
			RefreshToken: "next-refresh",
			Scope:        usecase.TokenScopePublic,
		}, nil)

		rec := ts.do(http.MethodPost, "/oauth/token", "", validBearer)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"next-access"`)
	})
}

func TestServer_Revoke(t *testing.T) {
	ts := newTestServer(t)
	ts.deviceAuth.EXPECT().Revoke(mock.Anything, validBearer).Return(nil)

	rec := ts.do(http.MethodPost, "/oauth/revoke", "", validBearer)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestServer_Activate(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deviceAuth.EXPECT().LinkUser(mock.Anything, "abcd-2345", "alice").Return(nil)

		rec := ts.do(http.MethodPost, "/activate", `{"user_code":"abcd-2345","username":"alice"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("unknown code", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deviceAuth.EXPECT().LinkUser(mock.Anything, "NOPE", "alice").Return(domainerrors.ErrDeviceCodeNotFound)

		rec := ts.do(http.MethodPost, "/activate", `{"user_code":"NOPE","username":"alice"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false}`, rec.Body.String())
	})

	t.Run("missing username", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/activate", `{"user_code":"ABCD2345"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false}`, rec.Body.String())
		ts.deviceAuth.AssertNotCalled(t, "LinkUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("form post", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deviceAuth.EXPECT().LinkUser(mock.Anything, "ABCD2345", "alice").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/activate", strings.NewReader("user_code=ABCD2345&username=alice"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		ts.e.ServeHTTP(rec, req)

		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})
}

func TestServer_ActivationPagePrefillsCode(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/activate?user_code=ABCD2345", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="ABCD2345"`)
}

func TestServer_ActivationQR(t *testing.T) {
	ts := newTestServer(t)
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	ts.qrCodes.EXPECT().GenerateActivationQR("http://localhost:8080/activate", "ABCD2345").Return(png, nil)

	rec := ts.do(http.MethodGet, "/activate/qr?user_code=ABCD2345", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = ts.do(http.MethodGet, "/activate/qr", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ScrobbleEchoesBody(t *testing.T) {
	ts := newTestServer(t)
	ts.allowBearer()

	body := `{"show":{"title":"Scrubs","ids":{"tvdb":"76156"}},"episode":{"title":"My White Whale","ids":{"episodeid":2,"tvdb":{"tvdb":"184651"}}},"progress":81.26,"app_version":"2.14.1"}`

	var received *usecase.ScrobbleInput
	ts.scrobbles.EXPECT().
		Scrobble(mock.Anything, ts.userID, mock.AnythingOfType("*usecase.ScrobbleInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.ScrobbleInput) { received = input }).
		Return(&usecase.ScrobbleOutput{Episode: &entity.Content{}}, nil)

	rec := ts.do(http.MethodPost, "/scrobble/stop", body, validBearer)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, body, rec.Body.String())
	require.NotNil(t, received)
	assert.Equal(t, usecase.ScrobbleActionStop, received.Action)
	require.NotNil(t, received.Progress)
	assert.InDelta(t, 81.26, *received.Progress, 0.0001)
	require.NotNil(t, received.Show)
	assert.Equal(t, []string{"title", "ids"}, received.Show.Keys())
}

func TestServer_ScrobbleErrors(t *testing.T) {
	t.Run("no bearer", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/scrobble/start", `{"episode":{}}`, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unknown bearer", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deviceAuth.EXPECT().Authenticate(mock.Anything, "stale").Return(uuid.Nil, domainerrors.ErrForbidden)

		rec := ts.do(http.MethodPost, "/scrobble/start", `{"episode":{}}`, "stale")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing episode", func(t *testing.T) {
		ts := newTestServer(t)
		ts.allowBearer()
		ts.scrobbles.EXPECT().Scrobble(mock.Anything, ts.userID, mock.Anything).Return(nil, domainerrors.ErrUnsupportedPayload)

		rec := ts.do(http.MethodPost, "/scrobble/pause", `{"show":{"title":"Scrubs"}}`, validBearer)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNSUPPORTED_PAYLOAD")
	})

	t.Run("malformed json", func(t *testing.T) {
		ts := newTestServer(t)
		ts.allowBearer()

		rec := ts.do(http.MethodPost, "/scrobble", `{"episode":`, validBearer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("progress out of range", func(t *testing.T) {
		ts := newTestServer(t)
		ts.allowBearer()

		rec := ts.do(http.MethodPost, "/scrobble", `{"episode":{"title":"x"},"progress":150}`, validBearer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})
}

func TestServer_Library(t *testing.T) {
	ts := newTestServer(t)
	ts.allowBearer()

	showID := uuid.New()
	show := &entity.Content{
		ID:       showID,
		Kind:     entity.ContentKindShow,
		Metadata: entity.NewMetadata(entity.Field{Key: "title", Value: []byte(`"Scrubs"`)}),
		Watched:  true,
		Plays:    1,
	}
	ts.library.EXPECT().ListShows(mock.Anything, ts.userID).Return([]usecase.ContentView{{Content: show}}, nil)
	ts.library.EXPECT().ListEpisodes(mock.Anything, ts.userID, showID).Return(nil, domainerrors.ErrContentNotFound)

	rec := ts.do(http.MethodGet, "/api/v1/shows", "", validBearer)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[{"title":"Scrubs","ids":{},"show_id":null,"id":"`+showID.String()+`","watched":true,"plays":1}]`)

	rec = ts.do(http.MethodGet, "/api/v1/shows/"+showID.String()+"/episodes", "", validBearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONTENT_NOT_FOUND")

	rec = ts.do(http.MethodGet, "/api/v1/shows/not-a-uuid/episodes", "", validBearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_SyncCompatibility(t *testing.T) {
	ts := newTestServer(t)
	ts.allowBearer()
	ts.library.EXPECT().ListWatchedShows(mock.Anything, ts.userID).Return([]usecase.WatchedShow{}, nil)

	rec := ts.do(http.MethodGet, "/sync/watched/shows", "", validBearer)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/sync/ratings/episodes", "", validBearer)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = ts.do(http.MethodPost, "/sync/history", `{"shows":[]}`, validBearer)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"shows":[]}`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/users/settings", "", validBearer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestServer_OperationalRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = ts.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scrobbler_http_requests_total")
}

func TestServer_RequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-123")
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
