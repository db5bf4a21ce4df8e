package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireBearerTokenRejectsMissingHeader(t *testing.T) {
	hash, err := HashToken("secret")
	require.NoError(t, err)

	called := false
	handler := requireBearerToken(hash, func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}

func TestRequireBearerTokenRejectsWrongToken(t *testing.T) {
	hash, err := HashToken("secret")
	require.NoError(t, err)

	handler := requireBearerToken(hash, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireBearerTokenAcceptsCorrectToken(t *testing.T) {
	hash, err := HashToken("secret")
	require.NoError(t, err)

	called := false
	handler := requireBearerToken(hash, func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireBearerTokenDisabledWithEmptyHash(t *testing.T) {
	called := false
	handler := requireBearerToken("", func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
}
