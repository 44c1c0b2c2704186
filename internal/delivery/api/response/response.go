// Package response renders the JSON envelopes of the library API and the error handler.
// Device-flow and sync endpoints answer with bare bodies and do not use it.
package response

import (
	"net/http"

	deliverycontext "scrobbler/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps returned data.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "UNSUPPORTED_PAYLOAD"
	Message string `json:"message"`           // client-safe text
	Details any    `json:"details,omitempty"` // 4xx only
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data inside the envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for 5xx and for 401/403.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// Empty answers with a status code and no body, as device clients expect on failure.
func Empty(c echo.Context, statusCode int) error {
	return c.NoContent(statusCode)
}
