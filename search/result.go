package search

import (
	"time"

	"github.com/tolmaren/gridsearch/grid"
)

// Result is the single record every search invocation produces, success
// or not. It is created once, owned by the caller, and never mutated by
// the engine afterwards.
//
// On failure Path is nil, PathLength is 0, and PathCost is +Inf; callers
// must branch on Success / Reason, never on an error value, because a
// failed search is a successfully computed outcome.
type Result struct {
	Success         bool
	Path            []grid.Coord
	Actions         []grid.Action
	PathCost        float64
	PathLength      int
	NodesExpanded   int
	Iterations      int
	MaxFrontierSize int
	Elapsed         time.Duration
	Reason          TerminationReason

	// Explored is the graph-mode expansion order, populated only under
	// WithExploredOrder.
	Explored []grid.Coord
}
