// Package metrics defines and registers the custom Prometheus metrics of the
// store admin panel. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default registry through promauto, so
// importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storeadmin"

// ── Upstream catalog API ─────────────────────────────────────────────────────

// UpstreamRequestsTotal counts requests sent to the catalog API.
// Labels:
//   - method: HTTP method
//   - code: response status code, or "error" when no response arrived
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the catalog API.",
	},
	[]string{"method", "code"},
)

// UpstreamRequestDuration measures catalog API round trips.
// Label:
//   - method: HTTP method
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of catalog API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Panel operations ─────────────────────────────────────────────────────────

// ListFetchFailuresTotal counts collection reads that ended in the error state.
// Label:
//   - resource: "product" or "category"
var ListFetchFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_fetch_failures_total",
		Help:      "Total number of collection fetches that failed.",
	},
	[]string{"resource"},
)

// DuplicateSubmissionsTotal counts writes rejected by the submission guard.
// Label:
//   - resource: "product" or "category"
var DuplicateSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_submissions_total",
		Help:      "Total number of writes rejected as duplicate submissions.",
	},
	[]string{"resource"},
)

// ImagesIngestedTotal counts uploaded image files.
// Label:
//   - result: "accepted" or "rejected"
var ImagesIngestedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_ingested_total",
		Help:      "Total number of uploaded image files, by result.",
	},
	[]string{"result"},
)

// ── Audit trail ──────────────────────────────────────────────────────────────

// AuditQueueDepth tracks records waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit records that could not be persisted.
// Label:
//   - reason: "queue_full" or "insert_failed"
var AuditDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit records that were not persisted.",
	},
	[]string{"reason"},
)
