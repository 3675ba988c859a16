package kafka_middleware

import (
	"context"
	"time"

	"dreamshoots/pkg/kafka"
	"dreamshoots/pkg/logger"
)

// LoggingProducerMiddleware logs message publishing operations
func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		attrs := []any{
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"duration", time.Since(start),
		}
		if id := msg.GetCorrelationID(); id != "" {
			attrs = append(attrs, "correlation_id", id)
		}

		if err != nil {
			attrs = append(attrs, "error", err, "error_type", kafka.ClassifyError(err).String())
			log.Error("Failed to publish message", attrs...)
			return err
		}

		log.Debug("Published message", attrs...)
		return nil
	}
}
