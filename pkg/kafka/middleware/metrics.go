package kafka_middleware

import (
	"context"
	"time"

	"assetbook/pkg/kafka"
	"assetbook/pkg/metrics"
)

// MetricsProducerMiddleware records publish results by event type and latency by topic
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		metrics.EventPublishDuration.WithLabelValues(msg.Topic).Observe(time.Since(start).Seconds())
		metrics.EventsPublished.WithLabelValues(msg.GetEventType(), metrics.Result(err)).Inc()

		return err
	}
}
