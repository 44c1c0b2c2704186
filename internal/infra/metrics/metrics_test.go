package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncScrobble(t *testing.T) {
	before := testutil.ToFloat64(scrobblesTotal.WithLabelValues("episode", "true"))

	IncScrobble("episode", true)
	IncScrobble("episode", true)

	assert.InDelta(t, before+2, testutil.ToFloat64(scrobblesTotal.WithLabelValues("episode", "true")), 0.0001)
}

func TestIncCredentialRotation(t *testing.T) {
	before := testutil.ToFloat64(credentialRotationsTotal.WithLabelValues("refresh"))

	IncCredentialRotation("refresh")

	assert.InDelta(t, before+1, testutil.ToFloat64(credentialRotationsTotal.WithLabelValues("refresh")), 0.0001)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveHTTPRequest(http.MethodPost, "/scrobble", http.StatusOK, 0.01)
	IncDeviceCodeIssued()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "scrobbler_http_requests_total")
	assert.Contains(t, body, "scrobbler_device_codes_issued_total")
}
