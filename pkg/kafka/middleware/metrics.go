package kafka_middleware

import (
	"context"
	"sync"
	"time"

	"dreamshoots/pkg/kafka"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	messagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dreamshoots",
			Subsystem: "kafka",
			Name:      "messages_published_total",
			Help:      "Kafka publish attempts by topic and result.",
		},
		[]string{"topic", "result"},
	)

	publishDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dreamshoots",
			Subsystem: "kafka",
			Name:      "publish_duration_seconds",
			Help:      "Kafka publish latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"topic"},
	)
)

// RegisterMetrics registers the producer collectors (idempotent).
func RegisterMetrics() {
	once.Do(func() {
		prometheus.MustRegister(messagesPublished, publishDuration)
	})
}

// MetricsProducerMiddleware tracks producer metrics
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		publishDuration.WithLabelValues(msg.Topic).Observe(time.Since(start).Seconds())

		result := "success"
		if err != nil {
			result = "failure"
		}
		messagesPublished.WithLabelValues(msg.Topic, result).Inc()
		return err
	}
}
