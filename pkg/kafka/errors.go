package kafka

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConsumerClosed = errors.New("kafka consumer is closed")
)

// ErrorType classifies handler failures for the retry/DLQ decision.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// ErrorTypeTransient covers network issues, timeouts and store
	// unavailability. Transient failures are retried up to the configured
	// maximum before going to the DLQ.
	ErrorTypeTransient

	// ErrorTypePermanent covers malformed payloads and schema mismatches.
	// Permanent failures skip retries and go straight to the DLQ.
	ErrorTypePermanent
)

// ConsumerError wraps a handler failure with its classification.
type ConsumerError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ConsumerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConsumerError) Unwrap() error {
	return e.Err
}

func NewTransientError(message string, err error) *ConsumerError {
	return &ConsumerError{Type: ErrorTypeTransient, Message: message, Err: err}
}

func NewPermanentError(message string, err error) *ConsumerError {
	return &ConsumerError{Type: ErrorTypePermanent, Message: message, Err: err}
}

var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"deadline exceeded",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"temporary failure",
	"server selection error",
}

// ClassifyError maps an arbitrary error onto an ErrorType. Unclassifiable
// errors default to permanent so they cannot retry forever.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	var consumerErr *ConsumerError
	if errors.As(err, &consumerErr) {
		return consumerErr.Type
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return ErrorTypeTransient
		}
	}

	return ErrorTypePermanent
}

// ShouldRetry reports whether a failed delivery should be attempted again.
func ShouldRetry(err error, currentRetries, maxRetries int) bool {
	if err == nil {
		return false
	}
	if currentRetries >= maxRetries {
		return false
	}
	return ClassifyError(err) == ErrorTypeTransient
}
