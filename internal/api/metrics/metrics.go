// Package metrics defines all custom Prometheus metrics for the career
// advisor API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "advisor"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts account creations by outcome.
// Label:
//   - result: "created", "conflict", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verifications in the auth
// middleware. The client always sees a plain 401; the sub-reason lives here.
// Label:
//   - result: "ok", "missing", "malformed", "expired", "signature_invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, by result.",
	},
	[]string{"result"},
)

// ── Chat metrics ──────────────────────────────────────────────────────────────

// ChatRequestsTotal counts chat requests by outcome.
// Label:
//   - result: "ok", "invalid", "unavailable", "rate_limited", "error"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of advisor chat requests, by result.",
	},
	[]string{"result"},
)

// ChatUpstreamDuration measures the latency of the inference endpoint call.
var ChatUpstreamDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_upstream_duration_seconds",
		Help:      "Duration of calls to the inference endpoint.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
	},
)

// TranscriptQueueDepth tracks pending transcript writes per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var TranscriptQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "transcript_queue_depth",
		Help:      "Current number of transcript writes pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
