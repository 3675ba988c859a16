package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dreamshoots/pkg/config"
	"dreamshoots/pkg/kafka"
	kafka_middleware "dreamshoots/pkg/kafka/middleware"
	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/middleware"
)

const schemaVersion = "1"

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	producers map[string]producer
	source    string
	log       *logger.Logger
	timeout   time.Duration
	base      context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New returns a Kafka-backed publisher when brokers are configured and a
// no-op publisher otherwise.
func New(cfg *config.Config) (Publisher, error) {
	if cfg.Kafka == nil || !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, domain events disabled")
		return NewNopPublisher(), nil
	}

	bookings, err := newProducer(cfg, cfg.KafkaBookingsTopic)
	if err != nil {
		return nil, err
	}
	reels, err := newProducer(cfg, cfg.KafkaReelsTopic)
	if err != nil {
		_ = bookings.Close()
		return nil, err
	}

	cfg.Kafka.LogConfiguration(cfg.Log.Info)
	return newKafkaPublisher(map[string]producer{
		"booking": bookings,
		"reel":    reels,
	}, cfg.ServiceName, cfg.Log, cfg.Kafka.ProducerWriteTimeout), nil
}

func newProducer(cfg *config.Config, topic string) (*kafka.Producer, error) {
	p, err := kafka.NewProducer(cfg.Kafka, topic, cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer for %s: %w", topic, err)
	}
	if cfg.Kafka.EnableMiddleware {
		kafka_middleware.RegisterMetrics()
		p.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		p.Use(kafka_middleware.MetricsProducerMiddleware())
	}
	return p, nil
}

func newKafkaPublisher(producers map[string]producer, source string, log *logger.Logger, timeout time.Duration) *kafkaPublisher {
	base, cancel := context.WithCancel(context.Background())
	return &kafkaPublisher{
		producers: producers,
		source:    source,
		log:       log,
		timeout:   timeout,
		base:      base,
		cancel:    cancel,
	}
}

// Publish sends ev in the background so request latency never depends on
// broker availability.
func (p *kafkaPublisher) Publish(ctx context.Context, ev Event) {
	prod, ok := p.producers[ev.Entity()]
	if !ok {
		p.log.Warn("No topic for event type", "event_type", ev.Type)
		return
	}

	correlationID := ev.CorrelationID
	if correlationID == "" {
		correlationID = middleware.RequestIDFromContext(ctx)
	}

	msg := kafka.NewMessage().
		WithKey(ev.Key).
		WithValue(ev.Payload).
		WithEventType(ev.Type).
		WithSource(p.source).
		WithSchemaVersion(schemaVersion).
		WithCorrelationID(correlationID).
		Build()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		pubCtx, cancel := context.WithTimeout(p.base, p.timeout)
		defer cancel()
		if err := prod.Publish(pubCtx, msg); err != nil {
			p.log.Error("Failed to publish domain event",
				"event_type", ev.Type,
				"key", ev.Key,
				"error", err,
			)
		}
	}()
}

// Close waits for in-flight publishes and closes the producers.
func (p *kafkaPublisher) Close() error {
	p.wg.Wait()
	p.cancel()

	var errs []error
	for _, prod := range p.producers {
		if err := prod.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
