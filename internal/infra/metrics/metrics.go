// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrobbler_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scrobbler_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Domain metrics
	scrobblesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrobbler_scrobbles_total",
			Help: "Committed scrobbles by content kind and watched state",
		},
		[]string{"kind", "watched"},
	)

	deviceCodesIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scrobbler_device_codes_issued_total",
			Help: "Total number of device codes issued",
		},
	)

	credentialRotationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrobbler_credential_rotations_total",
			Help: "Credential rotations by trigger",
		},
		[]string{"trigger"},
	)

	eventPublishFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrobbler_event_publish_failures_total",
			Help: "Scrobble events that could not be published",
		},
		[]string{"provider"},
	)

	eventsConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrobbler_events_consumed_total",
			Help: "Scrobble events received by the worker, by outcome",
		},
		[]string{"outcome"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records one finished request. path must be the route pattern, not the raw URL.
func ObserveHTTPRequest(method, path string, status int, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// IncScrobble counts a committed scrobble.
func IncScrobble(kind string, watched bool) {
	scrobblesTotal.WithLabelValues(kind, strconv.FormatBool(watched)).Inc()
}

// IncDeviceCodeIssued counts a newly issued device code.
func IncDeviceCodeIssued() {
	deviceCodesIssuedTotal.Inc()
}

// IncCredentialRotation counts a rotation; trigger is "poll" or "refresh".
func IncCredentialRotation(trigger string) {
	credentialRotationsTotal.WithLabelValues(trigger).Inc()
}

// IncEventPublishFailure counts a scrobble event that was dropped.
func IncEventPublishFailure(provider string) {
	eventPublishFailuresTotal.WithLabelValues(provider).Inc()
}

// IncEventConsumed counts a pushed scrobble event; outcome is "processed", "duplicate" or "rejected".
func IncEventConsumed(outcome string) {
	eventsConsumedTotal.WithLabelValues(outcome).Inc()
}
