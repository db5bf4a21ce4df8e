package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bakert/manabase/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	s, err := New(cfg, nil, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestHandleSolveReturnsFeasibleSolution(t *testing.T) {
	s := newTestServer(t)
	body, err := json.Marshal(solveRequest{
		Constraints: []string{"W"},
		DeckSize:    60,
		Lands:       []string{"Plains", "Island"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp solveResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Feasible)
	require.NotNil(t, resp.Solution)
	assert.Equal(t, 14, resp.Solution.Lands["Plains"])
}

func TestHandleSolveRejectsBadConstraint(t *testing.T) {
	s := newTestServer(t)
	body, err := json.Marshal(solveRequest{Constraints: []string{"2XX"}, DeckSize: 60})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleSolveRejectsUnknownLands(t *testing.T) {
	s := newTestServer(t)
	body, err := json.Marshal(solveRequest{
		Constraints: []string{"W"},
		DeckSize:    60,
		Lands:       []string{"Not A Real Land"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleListCatalogReturnsBuiltins(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var lands []landDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &lands))
	assert.NotEmpty(t, lands)
}

func TestHandleSetCatalogOverrideRequiresAuthWhenConfigured(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	hash, err := HashToken("secret")
	require.NoError(t, err)
	cfg.Auth.TokenHash = hash

	s, err := New(cfg, nil, zap.NewNop())
	require.NoError(t, err)

	body, err := json.Marshal(catalogOverrideRequest{Typeline: "Land", Produces: []string{"W"}, Kind: "Basic", Painful: false})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/catalog/Test-Land", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleSetCatalogOverrideSucceedsWithToken(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	hash, err := HashToken("secret")
	require.NoError(t, err)
	cfg.Auth.TokenHash = hash

	s, err := New(cfg, nil, zap.NewNop())
	require.NoError(t, err)

	body, err := json.Marshal(catalogOverrideRequest{Typeline: "Land", Produces: []string{"W", "U"}, Kind: "Check", Painful: false})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/catalog/Test-Land", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	listRR := httptest.NewRecorder()
	s.Handler().ServeHTTP(listRR, listReq)

	var lands []landDTO
	require.NoError(t, json.Unmarshal(listRR.Body.Bytes(), &lands))
	found := false
	for _, l := range lands {
		if l.Name == "Test-Land" {
			found = true
			assert.Equal(t, "Check", l.Kind)
		}
	}
	assert.True(t, found)
}

func TestHandleSolveHistoryWithoutStoreReturnsEmpty(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/solves", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}
