package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("wrapped domain error is unwrapped", func(t *testing.T) {
		base := NewDomainError("SESSION_NOT_FOUND", "Session not found or expired", http.StatusUnauthorized, nil)
		wrapped := fmt.Errorf("logout: %w", base)

		got := ToDomainError(wrapped)
		require.NotNil(t, got)
		assert.Same(t, base, got)
	})

	t.Run("plain error becomes internal error", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")

		got := ToDomainError(cause)
		require.NotNil(t, got)
		assert.Equal(t, "INTERNAL_ERROR", got.Code)
		assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
		assert.Equal(t, "internal server error", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("Patient", nil)

	got := ToDomainError(err)
	assert.Equal(t, "Patient not found", got.Message)
	assert.Equal(t, http.StatusNotFound, got.HTTPStatus)
	assert.NotNil(t, got.Details)
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("register: %w", NewValidationError("invalid payload", nil))

	assert.True(t, IsCode(err, "VALIDATION_FAILED"))
	assert.False(t, IsCode(err, "NOT_FOUND"))
	assert.False(t, IsCode(errors.New("boom"), "VALIDATION_FAILED"))
}
