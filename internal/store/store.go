// Package store persists solve history and catalog overrides to
// PostgreSQL via pgx, the way scripts/import_cards.go talks to the
// database: a pgxpool.Pool, plain SQL, no ORM.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/bakert/manabase/internal/config"
	"github.com/bakert/manabase/internal/manabase"
)

// Store wraps a pgx connection pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Open connects to PostgreSQL and ensures the schema this package needs
// exists, mirroring scripts/import_cards.go's pgxpool.New + Ping pattern.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("store: parsing database url: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("store: connecting to database: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}

	s := &Store{pool: pool, logger: logger}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Stats exposes the pool's connection stats, logged the same way
// cmd/manabase-server reports them at startup.
func (s *Store) Stats() *pgxpool.Stat {
	return s.pool.Stat()
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS solve_history (
			id uuid PRIMARY KEY,
			deck_description text NOT NULL,
			weights jsonb NOT NULL,
			solution jsonb,
			solved_at timestamptz NOT NULL
		);
		CREATE TABLE IF NOT EXISTS catalog_overrides (
			name text PRIMARY KEY,
			typeline text NOT NULL,
			produces text NOT NULL,
			kind text NOT NULL,
			painful boolean NOT NULL,
			updated_at timestamptz NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("store: migrating schema: %w", err)
	}
	return nil
}

// SaveSolve records a solve attempt. A nil solution records an infeasible
// solve (spec's contract: infeasible is a normal outcome, not an error).
func (s *Store) SaveSolve(ctx context.Context, deckDescription string, weights manabase.Weights, solution *manabase.Solution) error {
	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("store: marshaling weights: %w", err)
	}

	var solutionJSON []byte
	id := uuid.New()
	solvedAt := time.Now()
	if solution != nil {
		solutionJSON, err = json.Marshal(solution)
		if err != nil {
			return fmt.Errorf("store: marshaling solution: %w", err)
		}
		id = solution.SolveID
		solvedAt = solution.SolvedAt
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO solve_history (id, deck_description, weights, solution, solved_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, deckDescription, weightsJSON, solutionJSON, solvedAt)
	if err != nil {
		return fmt.Errorf("store: saving solve history: %w", err)
	}
	return nil
}

// SolveHistoryEntry is one row of recorded solve history.
type SolveHistoryEntry struct {
	ID              uuid.UUID
	DeckDescription string
	Weights         manabase.Weights
	Solution        *manabase.Solution
	SolvedAt        time.Time
}

// RecentSolves returns the most recent limit solve attempts, newest first.
func (s *Store) RecentSolves(ctx context.Context, limit int) ([]SolveHistoryEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, deck_description, weights, solution, solved_at
		FROM solve_history
		ORDER BY solved_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: querying solve history: %w", err)
	}
	defer rows.Close()

	var out []SolveHistoryEntry
	for rows.Next() {
		var entry SolveHistoryEntry
		var weightsJSON, solutionJSON []byte
		if err := rows.Scan(&entry.ID, &entry.DeckDescription, &weightsJSON, &solutionJSON, &entry.SolvedAt); err != nil {
			return nil, fmt.Errorf("store: scanning solve history row: %w", err)
		}
		if err := json.Unmarshal(weightsJSON, &entry.Weights); err != nil {
			return nil, fmt.Errorf("store: unmarshaling weights: %w", err)
		}
		if len(solutionJSON) > 0 {
			entry.Solution = &manabase.Solution{}
			if err := json.Unmarshal(solutionJSON, entry.Solution); err != nil {
				return nil, fmt.Errorf("store: unmarshaling solution: %w", err)
			}
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: reading solve history rows: %w", err)
	}
	return out, nil
}

// CatalogOverride is a user-supplied replacement or addition to the
// built-in catalog, keyed by land name.
type CatalogOverride struct {
	Name     string
	Typeline string
	Produces []manabase.Color
	Kind     manabase.Kind
	Painful  bool
}

// SaveCatalogOverride upserts a catalog override.
func (s *Store) SaveCatalogOverride(ctx context.Context, o CatalogOverride) error {
	codes := ""
	for _, col := range o.Produces {
		codes += col.String()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO catalog_overrides (name, typeline, produces, kind, painful, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			typeline = EXCLUDED.typeline,
			produces = EXCLUDED.produces,
			kind = EXCLUDED.kind,
			painful = EXCLUDED.painful,
			updated_at = EXCLUDED.updated_at
	`, o.Name, o.Typeline, codes, o.Kind.String(), o.Painful, time.Now())
	if err != nil {
		return fmt.Errorf("store: saving catalog override %q: %w", o.Name, err)
	}
	return nil
}

// CatalogOverrides returns every stored override.
func (s *Store) CatalogOverrides(ctx context.Context) ([]CatalogOverride, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, typeline, produces, kind, painful FROM catalog_overrides`)
	if err != nil {
		return nil, fmt.Errorf("store: querying catalog overrides: %w", err)
	}
	defer rows.Close()

	var out []CatalogOverride
	for rows.Next() {
		var o CatalogOverride
		var codes, kindName string
		if err := rows.Scan(&o.Name, &o.Typeline, &codes, &kindName, &o.Painful); err != nil {
			return nil, fmt.Errorf("store: scanning catalog override row: %w", err)
		}
		for _, ch := range codes {
			color, ok := manabase.ColorByCode(string(ch))
			if !ok {
				return nil, fmt.Errorf("store: catalog override %q has unrecognized color code %q", o.Name, ch)
			}
			o.Produces = append(o.Produces, color)
		}
		kind, ok := manabase.KindByName(kindName)
		if !ok {
			return nil, fmt.Errorf("store: catalog override %q has unrecognized kind %q", o.Name, kindName)
		}
		o.Kind = kind
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: reading catalog override rows: %w", err)
	}
	return out, nil
}
