package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"scrobbler/config"
	"scrobbler/internal/delivery/api/middleware"
	deliverycontext "scrobbler/internal/delivery/context"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
	"scrobbler/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceAuthHandlerParams holds dependencies for DeviceAuthHandler, injected by Fx.
type DeviceAuthHandlerParams struct {
	fx.In

	DeviceAuthUC usecase.DeviceAuthUsecase
	QRCodeSvc    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// DeviceAuthHandler serves the device-authorization endpoints.
type DeviceAuthHandler struct {
	deviceAuthUC    usecase.DeviceAuthUsecase
	qrCodeSvc       service.QRCodeService
	verificationURL string
	logger          *slog.Logger
}

// NewDeviceAuthHandler is the constructor for DeviceAuthHandler
func NewDeviceAuthHandler(params DeviceAuthHandlerParams) *DeviceAuthHandler {
	verificationURL := ""
	if params.Config.DeviceAuth != nil {
		verificationURL = params.Config.DeviceAuth.VerificationURL
	}

	return &DeviceAuthHandler{
		deviceAuthUC:    params.DeviceAuthUC,
		qrCodeSvc:       params.QRCodeSvc,
		verificationURL: verificationURL,
		logger:          params.Logger,
	}
}

// DeviceCodeRequest starts the flow. Clients also send client_secret, which is ignored.
type DeviceCodeRequest struct {
	ClientID string `json:"client_id"`
}

// DeviceTokenRequest polls with the issued device code.
type DeviceTokenRequest struct {
	Code string `json:"code"`
}

// ActivateRequest links a user code to a username.
type ActivateRequest struct {
	UserCode string `json:"user_code" form:"user_code" validate:"required"`
	Username string `json:"username" form:"username" validate:"required,max=80"`
}

// ActivateResponse reports whether linking succeeded.
type ActivateResponse struct {
	Success bool `json:"success"`
}

// IssueDeviceCode handles POST /oauth/device/code.
func (h *DeviceAuthHandler) IssueDeviceCode(c echo.Context) error {
	var req DeviceCodeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid device code request")
	}

	output, err := h.deviceAuthUC.IssueDeviceCode(c.Request().Context(), req.ClientID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, output)
}

// PollDeviceToken handles POST /oauth/device/token.
func (h *DeviceAuthHandler) PollDeviceToken(c echo.Context) error {
	var req DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid device token request")
	}

	output, err := h.deviceAuthUC.Poll(c.Request().Context(), req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, output)
}

// RefreshToken handles POST /oauth/token. The bearer is the current access token.
func (h *DeviceAuthHandler) RefreshToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	output, err := h.deviceAuthUC.Refresh(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, output)
}

// Revoke handles POST /oauth/revoke.
func (h *DeviceAuthHandler) Revoke(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	if err := h.deviceAuthUC.Revoke(c.Request().Context(), token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, struct{}{})
}

// Activate handles POST /activate. Client mistakes answer success=false; only server faults are errors.
func (h *DeviceAuthHandler) Activate(c echo.Context) error {
	var req ActivateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, ActivateResponse{Success: false})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, ActivateResponse{Success: false})
	}

	ctx := c.Request().Context()
	err := h.deviceAuthUC.LinkUser(ctx, req.UserCode, req.Username)

	var appErr domainerrors.AppError
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, ActivateResponse{Success: true})
	case errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Activation refused", slog.String("reason", appErr.ErrorCode()))

		return c.JSON(http.StatusOK, ActivateResponse{Success: false})
	default:
		return err
	}
}

// ActivationPage handles GET /activate with a minimal form posting to the same path.
// The user_code query parameter, as encoded in the QR code, pre-fills the form.
func (h *DeviceAuthHandler) ActivationPage(c echo.Context) error {
	var buf bytes.Buffer
	if err := activationPage.Execute(&buf, c.QueryParam("user_code")); err != nil {
		return errors.Wrap(err, "failed to render activation page")
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// ActivationQR handles GET /activate/qr?user_code=XXXX.
func (h *DeviceAuthHandler) ActivationQR(c echo.Context) error {
	userCode := c.QueryParam("user_code")
	if userCode == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("user_code is required")
	}

	png, err := h.qrCodeSvc.GenerateActivationQR(h.verificationURL, userCode)
	if err != nil {
		return errors.Wrap(err, "failed to render activation QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

//nolint:gochecknoglobals
var activationPage = template.Must(template.New("activate").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Activate device</title></head>
<body>
<form method="post" action="/activate">
<label>Code <input name="user_code" value="{{.}}" autocomplete="off" autofocus></label>
<label>Username <input name="username"></label>
<button type="submit">Activate</button>
</form>
</body>
</html>
`))
