package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Thing not found")

	assert.Equal(t, "TEST.NOT_FOUND", code.String())

	e := reg.New(code).WithDetail("id", "42")
	assert.Equal(t, TypeNotFound, e.Type)
	assert.Equal(t, http.StatusNotFound, e.HTTPStatus)
	assert.Equal(t, "Thing not found", e.Message)
	assert.Equal(t, "42", e.Details["id"])

	// instances must not share details
	other := reg.New(code)
	assert.Empty(t, other.Details)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	reg := NewRegistry("DUP")
	reg.Register("X", TypeValidation, http.StatusBadRequest, "x")
	assert.Panics(t, func() {
		reg.Register("X", TypeValidation, http.StatusBadRequest, "x")
	})
}

func TestRegistryDefaultStatus(t *testing.T) {
	reg := NewRegistry("DEF")
	code := reg.Register("LIMITED", TypeRateLimit, 0, "slow down")
	assert.Equal(t, http.StatusTooManyRequests, reg.New(code).HTTPStatus)
}

func TestWrapKeepsCauseOutOfResponse(t *testing.T) {
	cause := errors.New("pq: connection refused")
	e := Wrap(cause, "failed to create candidate", TypeInternal)

	require.NotNil(t, e)
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus)

	body := e.ToHTTPResponse()
	assert.Equal(t, "failed to create candidate", body["message"])
	assert.NotContains(t, fmt.Sprint(body), "connection refused")
}

func TestWrapPassesThroughErrx(t *testing.T) {
	reg := NewRegistry("PASS")
	code := reg.Register("BAD", TypeValidation, http.StatusBadRequest, "bad")
	orig := reg.New(code)

	wrapped := Wrap(fmt.Errorf("context: %w", orig), "ignored", TypeInternal)
	assert.Same(t, orig, wrapped)
	assert.True(t, IsCode(wrapped, code))
	assert.True(t, IsType(wrapped, TypeValidation))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing", TypeInternal))
}

func TestTypeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Type
	}{
		{http.StatusNotFound, TypeNotFound},
		{http.StatusUnauthorized, TypeAuthentication},
		{http.StatusTooManyRequests, TypeRateLimit},
		{http.StatusMethodNotAllowed, TypeValidation},
		{http.StatusRequestEntityTooLarge, TypeValidation},
		{http.StatusServiceUnavailable, TypeInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeForStatus(tt.status), "status %d", tt.status)
	}
}

func TestFromStatus(t *testing.T) {
	e := FromStatus(http.StatusMethodNotAllowed, "Method Not Allowed")
	assert.Equal(t, map[string]any{
		"error":   "Method Not Allowed",
		"type":    TypeValidation,
		"code":    "HTTP.METHOD_NOT_ALLOWED",
		"message": "Method Not Allowed",
	}, e.ToHTTPResponse())
	assert.Equal(t, http.StatusMethodNotAllowed, e.HTTPStatus)

	assert.Equal(t, "HTTP.STATUS_499", FromStatus(499, "closed").Code)
}
