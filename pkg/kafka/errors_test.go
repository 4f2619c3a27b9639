package kafka

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"explicit transient", NewTransientError("store down", nil), ErrorTypeTransient},
		{"explicit permanent", NewPermanentError("bad payload", nil), ErrorTypePermanent},
		{"wrapped transient", fmt.Errorf("handling: %w", NewTransientError("store down", nil)), ErrorTypeTransient},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeTransient},
		{"deadline exceeded", errors.New("context deadline exceeded"), ErrorTypeTransient},
		{"mongo server selection", errors.New("server selection error: timed out"), ErrorTypeTransient},
		{"unclassified defaults to permanent", errors.New("boom"), ErrorTypePermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	transient := NewTransientError("store down", nil)
	permanent := NewPermanentError("bad payload", nil)

	assert.False(t, ShouldRetry(nil, 0, 3))
	assert.True(t, ShouldRetry(transient, 0, 3))
	assert.True(t, ShouldRetry(transient, 2, 3))
	assert.False(t, ShouldRetry(transient, 3, 3), "retry budget spent")
	assert.False(t, ShouldRetry(permanent, 0, 3))
}

func TestConsumerErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewTransientError("store down", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store down: root cause", err.Error())
	assert.Equal(t, "store down", NewTransientError("store down", nil).Error())
}
