package kafka

import (
	"errors"
	"strings"
)

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
)

// ErrorType represents the type of error
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// ErrorTypeTransient represents a transient error (network issues, timeouts)
	ErrorTypeTransient

	// ErrorTypePermanent represents a permanent error (bad message, unknown topic)
	ErrorTypePermanent
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeTransient:
		return "transient"
	case ErrorTypePermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

var transientPatterns = []string{
	"connection refused",
	"timeout",
	"deadline exceeded",
	"no such host",
	"network is unreachable",
	"broken pipe",
	"connection reset",
	"temporary failure",
}

// ClassifyError classifies a publish error as transient or permanent.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	if errors.Is(err, ErrEmptyKey) || errors.Is(err, ErrEmptyValue) || errors.Is(err, ErrProducerClosed) {
		return ErrorTypePermanent
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return ErrorTypeTransient
		}
	}

	return ErrorTypePermanent
}
