package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("listing"), CodeNotFound, http.StatusNotFound},
		{"invalid input", InvalidInput("bad guests"), CodeInvalidInput, http.StatusBadRequest},
		{"validation", Validation("bad request", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"unavailable", Unavailable("store down", nil), CodeUnavailable, http.StatusServiceUnavailable},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestAppErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Unavailable("store down", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "SERVICE_UNAVAILABLE")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("listing", "acc-1")

	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "acc-1", err.Details["id"])
	assert.Equal(t, "listing", err.Details["resource"])
}
