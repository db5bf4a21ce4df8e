// Command manabase solves a deck's manabase from a plain-text list of
// casting constraints, one per line, and prints the resulting land counts
// with the solve's totals. The per-turn source report in Solution.Sources
// is not printed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bakert/manabase/internal/catalog"
	"github.com/bakert/manabase/internal/manabase"
	"github.com/bakert/manabase/internal/notation"
)

func main() {
	deckPath := flag.String("deck", "-", "path to a constraint file, one cost per line (\"-\" for stdin)")
	deckSize := flag.Int("size", 60, "deck size (40, 60, 80, or 99)")
	lands := flag.String("lands", "", "comma-separated candidate land names (default: the whole built-in catalog)")
	manaSpendWeight := flag.Int("w-spend", manabase.DefaultWeights.ManaSpend, "objective weight on mana spend")
	totalLandsWeight := flag.Int("w-lands", manabase.DefaultWeights.TotalLands, "objective weight on total lands")
	painWeight := flag.Int("w-pain", manabase.DefaultWeights.Pain, "objective weight on painful sources")
	sourcesWeight := flag.Int("w-sources", manabase.DefaultWeights.TotalColoredSources, "objective weight on total colored sources")
	flag.Parse()

	constraints, err := readConstraints(*deckPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manabase: %v\n", err)
		os.Exit(1)
	}

	deck, err := manabase.NewDeck(constraints, *deckSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manabase: %v\n", err)
		os.Exit(1)
	}

	candidates := resolveCandidates(*lands)
	if len(candidates) == 0 {
		fmt.Fprintln(os.Stderr, "manabase: no candidate lands available")
		os.Exit(1)
	}

	weights := manabase.Weights{
		ManaSpend:           *manaSpendWeight,
		TotalLands:          *totalLandsWeight,
		Pain:                *painWeight,
		TotalColoredSources: *sourcesWeight,
	}

	solution, err := manabase.Solve(deck, weights, candidates, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manabase: %v\n", err)
		os.Exit(1)
	}
	if solution == nil {
		fmt.Fprintln(os.Stderr, "manabase: no manabase satisfies every constraint with the given candidates")
		os.Exit(1)
	}

	fmt.Print(solution.String())
}

func readConstraints(path string) ([]manabase.Constraint, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening deck file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var constraints []manabase.Constraint
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := notation.ParseConstraintLine(line)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}
	return constraints, nil
}

func resolveCandidates(names string) []manabase.Land {
	if names == "" {
		return catalog.All()
	}
	byName := catalog.ByName()
	var out []manabase.Land
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if l, ok := byName[name]; ok {
			out = append(out, l)
		}
	}
	return out
}
