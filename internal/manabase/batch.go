package manabase

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveRequest is one unit of work for SolveBatch.
type SolveRequest struct {
	Deck        Deck
	Weights     Weights
	Lands       []Land
	ForcedLands map[string]int
}

// SolveBatch solves every request concurrently, one goroutine and one
// freshly built Model per request (spec §5: "each model is constructed
// fresh per solve, enabling independent parallel solves from separate
// call sites without shared state"). Results are returned in the same
// order as requests; a nil entry means that request's deck is
// unsatisfiable, exactly as a single Solve call would report it. If any
// request fails with an error (a caller error, never infeasibility), the
// first such error is returned once every request has finished; Solve
// takes no context, so an error does not stop the other solves.
func SolveBatch(ctx context.Context, requests []SolveRequest) ([]*Solution, error) {
	results := make([]*Solution, len(requests))

	g, _ := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			solution, err := Solve(req.Deck, req.Weights, req.Lands, req.ForcedLands)
			if err != nil {
				return err
			}
			results[i] = solution
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
