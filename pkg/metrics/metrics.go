package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "assetbook"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by handler, method and status code."},
		[]string{"handler", "method", "code"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by handler.", Buckets: prometheus.DefBuckets},
		[]string{"handler", "method"},
	)

	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "store_operations_total", Help: "Document store calls by operation, collection and result."},
		[]string{"operation", "collection", "result"},
	)
	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "store_operation_duration_seconds", Help: "Document store call latency.", Buckets: prometheus.DefBuckets},
		[]string{"operation", "collection"},
	)

	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "events_published_total", Help: "Domain events handed to the broker by type and result."},
		[]string{"event_type", "result"},
	)
	EventPublishDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "event_publish_duration_seconds", Help: "Broker publish latency by topic.", Buckets: prometheus.DefBuckets},
		[]string{"topic"},
	)

	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)

	IdempotentReplays = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "idempotent_replays_total", Help: "Responses served from the idempotency cache by path."},
		[]string{"path"},
	)
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(StoreOperations)
	reg.MustRegister(StoreDuration)
	reg.MustRegister(EventsPublished)
	reg.MustRegister(EventPublishDuration)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(IdempotentReplays)
}
