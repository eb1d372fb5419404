// Package metrics defines and registers all custom Prometheus metrics for
// the user dashboard BFF. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userdash"

// UpstreamRequestsTotal counts proxied calls to the external backend.
// Labels:
//   - resource: "users", "roles", "stats", "pdf"
//   - outcome: "ok", "not_found", "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests proxied to the external backend.",
	},
	[]string{"resource", "outcome"},
)

// UpstreamRequestDuration measures the latency of a single backend call.
// Label:
//   - method: HTTP method of the outbound request
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of outbound calls to the external backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ValidationFailuresTotal counts payloads rejected at the proxy boundary
// before any backend call was made.
// Label:
//   - operation: "create" or "update"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of payloads rejected by schema validation.",
	},
	[]string{"operation"},
)

// PDFExportsTotal counts PDF export requests by result.
// Label:
//   - outcome: "ok", "not_found", "error"
var PDFExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pdf_exports_total",
		Help:      "Total number of PDF export requests, by outcome.",
	},
	[]string{"outcome"},
)
