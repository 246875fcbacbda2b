// Package search defines algorithm selectors, configuration options, and
// sentinel errors for the unified search engine.
package search

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors raised before the search loop starts. Anything that
// happens after the loop begins is reported through Result, never as an
// error.
var (
	// ErrNilProblem indicates Search was called with a nil problem.
	ErrNilProblem = errors.New("search: problem is nil")
	// ErrNilEnvironment indicates NewProblem was called with a nil environment.
	ErrNilEnvironment = errors.New("search: environment is nil")
	// ErrUnknownAlgorithm indicates an algorithm selector out of range.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
	// ErrMissingHeuristic indicates A* was requested with HeuristicNone.
	// A* without a heuristic is UCS; ask for UCS instead.
	ErrMissingHeuristic = errors.New("search: A* requires a heuristic")
	// ErrBadLimit indicates a non-positive iteration, depth, or time limit.
	ErrBadLimit = errors.New("search: limits must be positive")
)

// Algorithm selects the search algorithm.
type Algorithm int

const (
	// BFS is breadth-first search: FIFO frontier, ignores path cost.
	BFS Algorithm = iota
	// DFS is depth-first search: LIFO frontier, ignores path cost.
	DFS
	// UCS is uniform-cost search: frontier ordered by ascending path cost.
	UCS
	// AStar orders the frontier by path cost plus heuristic estimate.
	AStar
)

// String returns the conventional short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case UCS:
		return "UCS"
	case AStar:
		return "A*"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "BFS", "DFS", "UCS", "A*" (or "ASTAR") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "BFS", "bfs":
		return BFS, nil
	case "DFS", "dfs":
		return DFS, nil
	case "UCS", "ucs":
		return UCS, nil
	case "A*", "ASTAR", "astar", "AStar":
		return AStar, nil
	}
	return BFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Mode selects duplicate handling.
type Mode int

const (
	// GraphSearch deduplicates via an explored set; each state is expanded
	// at most once (or once per strictly improving cost for UCS/A*).
	GraphSearch Mode = iota
	// TreeSearch performs no duplicate detection. States may recur
	// arbitrarily often; on cyclic mazes the frontier never empties and
	// only the configured limits guarantee termination.
	TreeSearch
)

// String returns "graph" or "tree".
func (m Mode) String() string {
	if m == TreeSearch {
		return "tree"
	}
	return "graph"
}

// ParseMode maps "graph"/"tree" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "graph", "Graph", "GRAPH":
		return GraphSearch, nil
	case "tree", "Tree", "TREE":
		return TreeSearch, nil
	}
	return GraphSearch, fmt.Errorf("search: unknown mode %q", s)
}

// Heuristic selects the informed-search estimator.
type Heuristic int

const (
	// HeuristicNone disables the heuristic. Invalid for A*.
	HeuristicNone Heuristic = iota
	// HeuristicEuclidean estimates √(Δrow²+Δcol²). Admissible for both
	// motion models.
	HeuristicEuclidean
	// HeuristicManhattan estimates |Δrow|+|Δcol|. Admissible here because
	// diagonal steps cost √2 ≥ 1.
	HeuristicManhattan
)

// String returns "none", "euclidean", or "manhattan".
func (h Heuristic) String() string {
	switch h {
	case HeuristicEuclidean:
		return "euclidean"
	case HeuristicManhattan:
		return "manhattan"
	}
	return "none"
}

// ParseHeuristic maps "none"/"euclidean"/"manhattan" to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "", "none":
		return HeuristicNone, nil
	case "euclidean", "Euclidean":
		return HeuristicEuclidean, nil
	case "manhattan", "Manhattan":
		return HeuristicManhattan, nil
	}
	return HeuristicNone, fmt.Errorf("search: unknown heuristic %q", s)
}

// TerminationReason enumerates why a search ended.
type TerminationReason int

const (
	// GoalFound: the goal state was popped from the frontier.
	GoalFound TerminationReason = iota
	// IterationLimit: the iteration budget was spent before reaching the goal.
	IterationLimit
	// DepthLimit: the frontier drained, but only because nodes at the depth
	// bound were pruned; the space was not fully explored.
	DepthLimit
	// Timeout: the wall-clock deadline passed.
	Timeout
	// FrontierExhausted: every reachable state was expanded and none was
	// the goal. In graph mode this proves the goal unreachable.
	FrontierExhausted
)

// String returns a stable machine-friendly label.
func (r TerminationReason) String() string {
	switch r {
	case GoalFound:
		return "goal_found"
	case IterationLimit:
		return "iteration_limit"
	case DepthLimit:
		return "depth_limit"
	case Timeout:
		return "timeout"
	case FrontierExhausted:
		return "frontier_exhausted"
	}
	return fmt.Sprintf("TerminationReason(%d)", int(r))
}

// Options configures one Search invocation.
//
// Mode          – TreeSearch or GraphSearch (default GraphSearch).
// Heur          – heuristic selector; only A* consults it.
// MaxIterations – pop budget; every popped node counts, expanded or not.
// MaxDepth      – nodes at this depth are not expanded further.
// Timeout       – wall-clock deadline, checked at every iteration boundary.
// TrackExplored – record graph-mode expansion order in Result.Explored.
type Options struct {
	Mode          Mode
	Heur          Heuristic
	MaxIterations int
	MaxDepth      int
	Timeout       time.Duration
	TrackExplored bool
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns graph mode, no heuristic, 1e6 iterations,
// depth 50000, 60s timeout — the benchmark suite's graph-mode defaults.
func DefaultOptions() Options {
	return Options{
		Mode:          GraphSearch,
		Heur:          HeuristicNone,
		MaxIterations: 1_000_000,
		MaxDepth:      50_000,
		Timeout:       60 * time.Second,
	}
}

// WithMode selects tree or graph search.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithHeuristic selects the heuristic for A*. BFS, DFS, and UCS ignore it.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heur = h }
}

// WithMaxIterations caps the number of frontier pops.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithMaxDepth caps expansion depth. Nodes at the cap are dead ends, not
// failures of the whole search.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithTimeout sets the wall-clock deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithExploredOrder records the order in which graph-mode search expands
// states, for visualization replay. Off by default; it costs one append
// per expanded node.
func WithExploredOrder() Option {
	return func(o *Options) { o.TrackExplored = true }
}

// validate rejects configurations the loop must never see.
func (o Options) validate(algo Algorithm) error {
	if algo < BFS || algo > AStar {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	if algo == AStar && o.Heur == HeuristicNone {
		return ErrMissingHeuristic
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w: MaxIterations=%d", ErrBadLimit, o.MaxIterations)
	}
	if o.MaxDepth <= 0 {
		return fmt.Errorf("%w: MaxDepth=%d", ErrBadLimit, o.MaxDepth)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("%w: Timeout=%v", ErrBadLimit, o.Timeout)
	}
	return nil
}
