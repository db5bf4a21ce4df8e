// Package server exposes manabase solving over HTTP: a /solve endpoint
// backed by internal/manabase, catalog-override endpoints gated by a
// bearer token, and a /ws feed of live solve activity, wired the way
// cmd/server wires handlers over its managers.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/bakert/manabase/internal/catalog"
	"github.com/bakert/manabase/internal/config"
	"github.com/bakert/manabase/internal/manabase"
	"github.com/bakert/manabase/internal/notation"
	"github.com/bakert/manabase/internal/store"
)

// Server holds the shared state every handler needs: the current land
// catalog (built-ins plus persisted overrides), an optional store for
// history, and the live-activity hub.
type Server struct {
	cfg    *config.Config
	st     *store.Store
	logger *zap.Logger
	hub    *Hub

	mu    sync.RWMutex
	lands map[string]manabase.Land
}

// New builds a Server. st may be nil, in which case history is not
// recorded and catalog overrides do not persist across restarts.
func New(cfg *config.Config, st *store.Store, logger *zap.Logger) (*Server, error) {
	lands := catalog.ByName()

	if st != nil {
		overrides, err := st.CatalogOverrides(context.Background())
		if err != nil {
			return nil, fmt.Errorf("server: loading catalog overrides: %w", err)
		}
		for _, o := range overrides {
			lands[o.Name] = manabase.NewLand(o.Name, o.Typeline, o.Produces, o.Kind, o.Painful)
		}
	}

	hub := newHub(logger)
	go hub.run()

	return &Server{cfg: cfg, st: st, logger: logger, hub: hub, lands: lands}, nil
}

// Handler builds the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /solve", s.handleSolve)
	mux.HandleFunc("GET /catalog", s.handleListCatalog)
	mux.HandleFunc("PUT /catalog/{name}", requireBearerToken(s.cfg.Auth.TokenHash, s.handleSetCatalogOverride))
	mux.HandleFunc("GET /solves", s.handleSolveHistory)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

type solveRequest struct {
	Constraints []string          `json:"constraints"`
	DeckSize    int               `json:"deck_size"`
	Weights     *manabase.Weights `json:"weights,omitempty"`
	Lands       []string          `json:"lands,omitempty"`
	ForcedLands map[string]int    `json:"forced_lands,omitempty"`
}

type solveResponse struct {
	Solution *manabase.Solution `json:"solution"`
	Feasible bool               `json:"feasible"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request body: %v", err), http.StatusBadRequest)
		return
	}

	constraints := make([]manabase.Constraint, 0, len(req.Constraints))
	for _, raw := range req.Constraints {
		c, err := notation.ParseConstraintLine(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		constraints = append(constraints, c)
	}

	deck, err := manabase.NewDeck(constraints, req.DeckSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	weights := manabase.DefaultWeights
	if req.Weights != nil {
		weights = *req.Weights
	}

	candidates := s.resolveCandidates(req.Lands)
	if len(candidates) == 0 {
		http.Error(w, "no candidate lands available", http.StatusBadRequest)
		return
	}

	s.hub.broadcastEvent("solve_started", strings.Join(req.Constraints, ","))

	solution, err := manabase.Solve(deck, weights, candidates, req.ForcedLands)
	if err != nil {
		s.logger.Error("solve failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if s.st != nil {
		description := strings.Join(req.Constraints, ",")
		if err := s.st.SaveSolve(r.Context(), description, weights, solution); err != nil {
			s.logger.Warn("failed to save solve history", zap.Error(err))
		}
	}

	s.hub.broadcastEvent("solve_finished", fmt.Sprintf("feasible=%t", solution != nil))

	writeJSON(w, http.StatusOK, solveResponse{Solution: solution, Feasible: solution != nil})
}

func (s *Server) resolveCandidates(names []string) []manabase.Land {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(names) == 0 {
		out := make([]manabase.Land, 0, len(s.lands))
		for _, l := range s.lands {
			out = append(out, l)
		}
		return out
	}
	var out []manabase.Land
	for _, name := range names {
		if l, ok := s.lands[name]; ok {
			out = append(out, l)
		}
	}
	return out
}

func (s *Server) handleListCatalog(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	out := make([]landDTO, 0, len(s.lands))
	for _, l := range s.lands {
		out = append(out, toLandDTO(l))
	}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, out)
}

type catalogOverrideRequest struct {
	Typeline string   `json:"typeline"`
	Produces []string `json:"produces"`
	Kind     string   `json:"kind"`
	Painful  bool     `json:"painful"`
}

// landDTO is the JSON-safe view of a manabase.Land: Land's Produces field
// is a []Color, and Color deliberately keeps its fields unexported, so it
// does not round-trip through encoding/json on its own.
type landDTO struct {
	Name     string   `json:"name"`
	Typeline string   `json:"typeline"`
	Produces []string `json:"produces"`
	Kind     string   `json:"kind"`
	Painful  bool     `json:"painful"`
}

func toLandDTO(l manabase.Land) landDTO {
	codes := make([]string, len(l.Produces))
	for i, c := range l.Produces {
		codes[i] = c.String()
	}
	return landDTO{Name: l.Name, Typeline: l.Typeline, Produces: codes, Kind: l.Kind.String(), Painful: l.Painful}
}

func (s *Server) handleSetCatalogOverride(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req catalogOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request body: %v", err), http.StatusBadRequest)
		return
	}
	kind, ok := manabase.KindByName(req.Kind)
	if !ok {
		http.Error(w, fmt.Sprintf("unrecognized kind %q", req.Kind), http.StatusBadRequest)
		return
	}
	produces := make([]manabase.Color, 0, len(req.Produces))
	for _, code := range req.Produces {
		color, ok := manabase.ColorByCode(code)
		if !ok {
			http.Error(w, fmt.Sprintf("unrecognized color code %q", code), http.StatusBadRequest)
			return
		}
		produces = append(produces, color)
	}

	land := manabase.NewLand(name, req.Typeline, produces, kind, req.Painful)

	if s.st != nil {
		override := store.CatalogOverride{Name: name, Typeline: req.Typeline, Produces: produces, Kind: kind, Painful: req.Painful}
		if err := s.st.SaveCatalogOverride(r.Context(), override); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	s.mu.Lock()
	s.lands[name] = land
	s.mu.Unlock()

	s.logger.Info("catalog override saved", zap.String("name", name), zap.String("kind", kind.String()))
	writeJSON(w, http.StatusOK, toLandDTO(land))
}

func (s *Server) handleSolveHistory(w http.ResponseWriter, r *http.Request) {
	if s.st == nil {
		writeJSON(w, http.StatusOK, []store.SolveHistoryEntry{})
		return
	}
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	entries, err := s.st.RecentSolves(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; nothing left to do but note it happened.
		_ = err
	}
}
