package kafka

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	kafka_config "dreamshoots/pkg/kafka/config"
	"dreamshoots/pkg/logger"
)

func testConfig() *kafka_config.Config {
	return &kafka_config.Config{
		Brokers:              []string{"127.0.0.1:1"},
		ProducerMaxAttempts:  1,
		ProducerBatchTimeout: 10 * time.Millisecond,
		ProducerWriteTimeout: 100 * time.Millisecond,
		ProducerRequireAcks:  -1,
		ProducerCompression:  "none",
	}
}

func TestNewProducer_Validation(t *testing.T) {
	if _, err := NewProducer(nil, "t", logger.Discard()); err == nil {
		t.Error("nil config should fail")
	}
	if _, err := NewProducer(&kafka_config.Config{}, "t", logger.Discard()); err == nil {
		t.Error("missing brokers should fail")
	}
	if _, err := NewProducer(testConfig(), "", logger.Discard()); err == nil {
		t.Error("empty topic should fail")
	}
}

func TestPublish_RejectsBeforeWriting(t *testing.T) {
	p, err := NewProducer(testConfig(), "dreamshoots.bookings", logger.Discard())
	if err != nil {
		t.Fatalf("NewProducer() error = %v", err)
	}

	called := false
	p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
		called = true
		return next(ctx, msg)
	})

	if err := p.Publish(context.Background(), NewMessage().WithValue("x").Build()); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Publish() without key = %v, want ErrEmptyKey", err)
	}
	if err := p.Publish(context.Background(), NewMessage().WithKey("k").Build()); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("Publish() without value = %v, want ErrEmptyValue", err)
	}
	if called {
		t.Error("middleware must not run for rejected messages")
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	msg := NewMessage().WithKey("k").WithValue("v").Build()
	if err := p.Publish(context.Background(), msg); !errors.Is(err, ErrProducerClosed) {
		t.Errorf("Publish() after Close = %v, want ErrProducerClosed", err)
	}
}

func TestMessageBuilder(t *testing.T) {
	msg := NewMessage().
		WithKey("b1").
		WithValue(map[string]string{"id": "b1"}).
		WithEventType("booking.created").
		WithSource("dreamshoots-api").
		WithCorrelationID("").
		Build()

	if msg.GetEventID() == "" {
		t.Error("Build() should assign an event id")
	}
	if _, ok := msg.GetHeader(HeaderCorrelationID); ok {
		t.Error("empty correlation id should not be set")
	}
	if _, ok := msg.GetHeader(HeaderTimestamp); !ok {
		t.Error("timestamp header missing")
	}

	var payload map[string]string
	if err := msg.DecodeValue(&payload); err != nil || payload["id"] != "b1" {
		t.Errorf("DecodeValue() = %v, %v", payload, err)
	}

	bad := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	if len(bad.Value) != 0 {
		t.Error("unencodable value should leave payload empty")
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorType
	}{
		{nil, ErrorTypeUnknown},
		{ErrEmptyKey, ErrorTypePermanent},
		{fmt.Errorf("wrapped: %w", ErrProducerClosed), ErrorTypePermanent},
		{errors.New("dial tcp: connection refused"), ErrorTypeTransient},
		{errors.New("context deadline exceeded"), ErrorTypeTransient},
		{errors.New("unknown topic or partition"), ErrorTypePermanent},
	}

	for _, tt := range tests {
		if got := ClassifyError(tt.err); got != tt.want {
			t.Errorf("ClassifyError(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
