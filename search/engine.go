package search

import (
	"math"
	"time"

	"github.com/tolmaren/gridsearch/grid"
)

// Search runs one algorithm against p under the configured limits and
// returns its Result. Every invocation is single-threaded, synchronous,
// and allocates its own frontier, explored map, and node arena, so any
// number of Searches may run concurrently over the same Problem.
//
// The only error cases are configuration mistakes caught before the loop
// starts (nil problem, unknown algorithm, A* without a heuristic,
// non-positive limits). Exhausting a limit is not an error: it yields a
// Result with Success=false and the matching TerminationReason.
//
// The loop, shared by all algorithm/mode combinations:
//
//  1. Seed the frontier with the root node; in graph mode start an empty
//     explored map.
//  2. While the frontier is non-empty, the iteration budget remains, and
//     the deadline has not passed:
//     a. Pop the next node per the algorithm's frontier ordering, count
//     the iteration, and track the peak frontier size.
//     b. If it is the goal, reconstruct the path by walking parent
//     indices to the root and return GoalFound.
//     c. If it sits at the depth bound, skip expansion: a dead end, not
//     a failure.
//     d. In graph mode, skip nodes whose state was already expanded at
//     an equal-or-better cost; otherwise record the best-known cost
//     (UCS/A* may re-expand on a strictly cheaper rediscovery — lazy
//     deletion instead of decrease-key).
//     e. Enqueue each successor: unconditionally in tree mode, and in
//     graph mode only if its state is not already explored at an
//     equal-or-better cost.
//  3. A drained frontier reports DepthLimit if any node was depth-pruned
//     along the way, otherwise FrontierExhausted.
func Search(p *Problem, algo Algorithm, opts ...Option) (Result, error) {
	r, err := newRunner(p, algo, opts...)
	if err != nil {
		return Result{}, err
	}
	for {
		if _, more := r.step(); !more {
			break
		}
	}
	return r.result, nil
}

// runner holds the mutable state of a single search invocation.
type runner struct {
	problem *Problem
	algo    Algorithm
	cfg     Options
	h       HeuristicFunc

	arena    *nodeArena
	front    frontier
	explored map[grid.Coord]float64
	order    []grid.Coord

	iterations  int
	expanded    int
	maxFrontier int
	depthPruned bool

	started  time.Time
	finished bool
	result   Result
}

// newRunner validates the configuration and seeds the frontier with the
// root node.
func newRunner(p *Problem, algo Algorithm, opts ...Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := cfg.validate(algo); err != nil {
		return nil, err
	}

	r := &runner{
		problem: p,
		algo:    algo,
		cfg:     cfg,
		h:       heuristicFor(cfg.Heur),
		arena:   newNodeArena(256),
		front:   frontierFor(algo),
		started: time.Now(),
	}
	if cfg.Mode == GraphSearch {
		r.explored = make(map[grid.Coord]float64, 256)
	}

	root := node{state: p.Initial(), parent: noParent, cost: 0, depth: 0}
	id := r.arena.add(root)
	r.front.push(id, r.priority(root))
	r.maxFrontier = 1

	return r, nil
}

// priority computes the frontier key for n. BFS and DFS ignore it.
func (r *runner) priority(n node) float64 {
	switch r.algo {
	case UCS:
		return n.cost
	case AStar:
		return n.cost + r.h(n.state, r.problem.Goal())
	}
	return 0
}

// StepInfo describes one engine iteration, for step-by-step consumers.
type StepInfo struct {
	State        grid.Coord
	Depth        int
	PathCost     float64
	FrontierSize int
	Expanded     bool
	GoalReached  bool
}

// step performs one iteration of the shared loop. It returns false once
// the search has terminated; r.result is valid from that point on.
func (r *runner) step() (StepInfo, bool) {
	if r.finished {
		return StepInfo{}, false
	}

	// Exit conditions, checked in a fixed order: empty frontier,
	// wall-clock deadline, iteration budget. The deadline is rechecked on
	// every iteration so overshoot stays bounded by one expansion
	// regardless of branching factor.
	if r.front.len() == 0 {
		if r.depthPruned {
			r.finish(DepthLimit)
		} else {
			r.finish(FrontierExhausted)
		}
		return StepInfo{}, false
	}
	if time.Since(r.started) > r.cfg.Timeout {
		r.finish(Timeout)
		return StepInfo{}, false
	}
	if r.iterations >= r.cfg.MaxIterations {
		r.finish(IterationLimit)
		return StepInfo{}, false
	}

	if l := r.front.len(); l > r.maxFrontier {
		r.maxFrontier = l
	}
	r.iterations++

	id, _ := r.front.pop()
	n := r.arena.at(id)
	info := StepInfo{
		State:        n.state,
		Depth:        n.depth,
		PathCost:     n.cost,
		FrontierSize: r.front.len(),
	}

	if r.problem.IsGoal(n.state) {
		r.finishGoal(id)
		info.GoalReached = true
		return info, false
	}

	if n.depth >= r.cfg.MaxDepth {
		r.depthPruned = true
		return info, true
	}

	if r.cfg.Mode == GraphSearch {
		if r.seenAtLeastAsCheap(n.state, n.cost) {
			return info, true
		}
		r.explored[n.state] = n.cost
		if r.cfg.TrackExplored {
			r.order = append(r.order, n.state)
		}
	}

	r.expanded++
	info.Expanded = true

	succs := r.problem.Expand(n.state)
	if r.algo == DFS {
		// Reversed pushes keep the first action on top of the stack, so
		// DFS explores actions in the same canonical order as the rest.
		for i := len(succs) - 1; i >= 0; i-- {
			r.enqueue(id, n, succs[i])
		}
	} else {
		for _, s := range succs {
			r.enqueue(id, n, s)
		}
	}

	return info, true
}

// enqueue generates the child node for s and pushes it, subject to the
// graph-mode dedup policy.
func (r *runner) enqueue(parent int32, n node, s Successor) {
	child := node{
		state:  s.State,
		parent: parent,
		action: s.Action,
		cost:   n.cost + s.Cost,
		depth:  n.depth + 1,
	}
	if r.cfg.Mode == GraphSearch && r.seenAtLeastAsCheap(child.state, child.cost) {
		return
	}
	id := r.arena.add(child)
	r.front.push(id, r.priority(child))
}

// seenAtLeastAsCheap reports whether state was already expanded at a cost
// that makes revisiting pointless. For BFS and DFS the explored map is a
// plain seen-set: any previous expansion blocks. For UCS and A* only an
// equal-or-better recorded cost blocks, which is what permits the lazy
// re-expansion of strictly cheaper rediscoveries.
func (r *runner) seenAtLeastAsCheap(state grid.Coord, cost float64) bool {
	best, ok := r.explored[state]
	if !ok {
		return false
	}
	if r.algo == BFS || r.algo == DFS {
		return true
	}
	return best <= cost
}

// finish records a failure result.
func (r *runner) finish(reason TerminationReason) {
	r.finished = true
	r.result = Result{
		Success:         false,
		PathCost:        math.Inf(1),
		NodesExpanded:   r.expanded,
		Iterations:      r.iterations,
		MaxFrontierSize: r.maxFrontier,
		Elapsed:         time.Since(r.started),
		Reason:          reason,
		Explored:        r.order,
	}
}

// finishGoal records a success result with the reconstructed path.
func (r *runner) finishGoal(id int32) {
	r.finished = true
	path := r.arena.path(id)
	r.result = Result{
		Success:         true,
		Path:            path,
		Actions:         r.arena.actions(id),
		PathCost:        r.arena.at(id).cost,
		PathLength:      len(path),
		NodesExpanded:   r.expanded,
		Iterations:      r.iterations,
		MaxFrontierSize: r.maxFrontier,
		Elapsed:         time.Since(r.started),
		Reason:          GoalFound,
		Explored:        r.order,
	}
}
