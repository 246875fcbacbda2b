// Package bench defines the configuration types, adaptive limit table,
// and sentinel errors of the benchmark driver.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/tolmaren/gridsearch/grid"
	"github.com/tolmaren/gridsearch/search"
)

// Sentinel errors for benchmark configuration.
var (
	// ErrBadSize indicates a map size below the minimum of 5.
	ErrBadSize = errors.New("bench: map size must be at least 5")
	// ErrUnknownEnvKind indicates an environment family out of range.
	ErrUnknownEnvKind = errors.New("bench: unknown environment kind")
)

// EnvKind selects one of the canonical maze families.
type EnvKind int

const (
	// Empty has only the border walls.
	Empty EnvKind = iota
	// Scattered blocks 10% of interior cells at random (fixed seed).
	Scattered
	// Corridor carves a serpentine of horizontal walls.
	Corridor
	// Rooms splits the map into four sealed rooms with a cross of walls.
	Rooms
	// Dense blocks 30% of interior cells at random (fixed seed).
	Dense
)

// String returns the family's label as used in records and CSV.
func (k EnvKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Scattered:
		return "scattered"
	case Corridor:
		return "corridor"
	case Rooms:
		return "rooms"
	case Dense:
		return "dense"
	}
	return fmt.Sprintf("EnvKind(%d)", int(k))
}

// ParseEnvKind maps a label back to its EnvKind.
func ParseEnvKind(s string) (EnvKind, error) {
	for _, k := range []EnvKind{Empty, Scattered, Corridor, Rooms, Dense} {
		if k.String() == s {
			return k, nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownEnvKind, s)
}

// AllEnvKinds lists every family, in sweep order.
func AllEnvKinds() []EnvKind {
	return []EnvKind{Empty, Scattered, Corridor, Rooms, Dense}
}

// Limits bundles the three resource bounds of one search invocation.
type Limits struct {
	MaxIterations int
	MaxDepth      int
	Timeout       time.Duration
}

// GraphLimits returns the fixed graph-mode budget: explored-set dedup
// guarantees termination, so every size gets the full allowance.
func GraphLimits() Limits {
	return Limits{MaxIterations: 1_000_000, MaxDepth: 50_000, Timeout: 60 * time.Second}
}

// GraphTrials is the graph-mode trial count per configuration.
const GraphTrials = 100

// TreeLimits returns the size-dependent tree-mode budget.
func TreeLimits(size int) Limits {
	switch {
	case size <= 7:
		return Limits{MaxIterations: 500_000, MaxDepth: 10_000, Timeout: 60 * time.Second}
	case size <= 10:
		return Limits{MaxIterations: 300_000, MaxDepth: 8_000, Timeout: 45 * time.Second}
	default:
		return Limits{MaxIterations: 100_000, MaxDepth: 5_000, Timeout: 30 * time.Second}
	}
}

// TreeTrials returns the tree-mode trial count for a map size, capped at
// max.
func TreeTrials(size, max int) int {
	var n int
	switch {
	case size <= 7:
		n = 50
	case size <= 10:
		n = 20
	default:
		n = 10
	}
	if max > 0 && max < n {
		return max
	}
	return n
}

// Spec is one cell of the benchmark matrix: everything needed to build
// the environment and invoke the engine, plus how many trials to run.
type Spec struct {
	Kind      EnvKind
	Size      int
	Motion    grid.Motion
	Algorithm search.Algorithm
	Mode      search.Mode
	Heuristic search.Heuristic
	Limits    Limits
	Trials    int
}

// Label renders the conventional algorithm tag, e.g. "BFS-Graph",
// "A*-Tree-Manhattan".
func (s Spec) Label() string {
	mode := "Graph"
	if s.Mode == search.TreeSearch {
		mode = "Tree"
	}
	if s.Algorithm == search.AStar {
		h := "Euclidean"
		if s.Heuristic == search.HeuristicManhattan {
			h = "Manhattan"
		}
		return fmt.Sprintf("%s-%s-%s", s.Algorithm, mode, h)
	}
	return fmt.Sprintf("%s-%s", s.Algorithm, mode)
}

// options translates the Spec into engine options.
func (s Spec) options() []search.Option {
	opts := []search.Option{
		search.WithMode(s.Mode),
		search.WithMaxIterations(s.Limits.MaxIterations),
		search.WithMaxDepth(s.Limits.MaxDepth),
		search.WithTimeout(s.Limits.Timeout),
	}
	if s.Heuristic != search.HeuristicNone {
		opts = append(opts, search.WithHeuristic(s.Heuristic))
	}
	return opts
}

// algoSpec pairs an algorithm with the heuristic it sweeps under.
type algoSpec struct {
	algo search.Algorithm
	heur search.Heuristic
}

// sweepAlgorithms is the canonical algorithm roster of the full sweep.
var sweepAlgorithms = []algoSpec{
	{search.BFS, search.HeuristicNone},
	{search.DFS, search.HeuristicNone},
	{search.UCS, search.HeuristicNone},
	{search.AStar, search.HeuristicEuclidean},
	{search.AStar, search.HeuristicManhattan},
}

// Matrix expands kinds × sizes × motions × algorithms × both modes into
// Specs with the adaptive limit table applied. maxTrials caps the trial
// count of every Spec (0 means no cap).
func Matrix(kinds []EnvKind, sizes []int, motions []grid.Motion, maxTrials int) []Spec {
	specs := make([]Spec, 0, len(kinds)*len(sizes)*len(motions)*len(sweepAlgorithms)*2)
	for _, kind := range kinds {
		for _, size := range sizes {
			for _, motion := range motions {
				for _, as := range sweepAlgorithms {
					graphTrials := GraphTrials
					if maxTrials > 0 && maxTrials < graphTrials {
						graphTrials = maxTrials
					}
					specs = append(specs, Spec{
						Kind: kind, Size: size, Motion: motion,
						Algorithm: as.algo, Mode: search.GraphSearch, Heuristic: as.heur,
						Limits: GraphLimits(), Trials: graphTrials,
					})
				}
				for _, as := range sweepAlgorithms {
					specs = append(specs, Spec{
						Kind: kind, Size: size, Motion: motion,
						Algorithm: as.algo, Mode: search.TreeSearch, Heuristic: as.heur,
						Limits: TreeLimits(size), Trials: TreeTrials(size, maxTrials),
					})
				}
			}
		}
	}
	return specs
}
