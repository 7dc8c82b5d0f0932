package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError_MatchesSentinel(t *testing.T) {
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrPasswordNotMatch, ErrBadRequest)
	assert.ErrorIs(t, ErrPasswordAttemptMax, ErrForbidden)
	assert.ErrorIs(t, ErrTokenUnauthorized, ErrUnauthorized)
}

func TestStatusError_WithCauseKeepsChain(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)

	assert.ErrorIs(t, err, ErrInternalServer)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")

	// The shared value must not pick up the cause.
	assert.NotErrorIs(t, ErrUserNotFound, cause)
}

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", ErrUserNotFound, http.StatusNotFound},
		{"bad request", ErrPasswordNotMatch, http.StatusBadRequest},
		{"forbidden", ErrUserBlocked, http.StatusForbidden},
		{"unauthorized", ErrTokenUnauthorized, http.StatusUnauthorized},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromError(tt.err))
		})
	}
}

func TestCodeOf(t *testing.T) {
	code, key := CodeOf(ErrPasswordAttemptMax)
	assert.Equal(t, CodeUserPasswordAttemptMax, code)
	assert.Equal(t, "user.error.passwordAttemptMax", key)

	code, key = CodeOf(errors.New("opaque"))
	assert.Equal(t, CodeUnknown, code)
	assert.Equal(t, "http.serverError.internalServerError", key)
}
