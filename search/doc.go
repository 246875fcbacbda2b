// Package search implements a unified state-space search engine over grid
// mazes: breadth-first, depth-first, uniform-cost, and A* search, each in
// tree mode (no duplicate detection) and graph mode (explored-set
// deduplication), under bounded resources.
//
// What:
//
//   - Problem binds a grid.Environment to the initial state, goal test,
//     and deterministic successor expansion.
//   - Search runs one algorithm to completion and returns a Result record:
//     path, path cost, nodes expanded, peak frontier size, elapsed time,
//     and a termination reason.
//   - Stepper drives the identical loop one expansion at a time, for
//     visualizers and debuggers.
//
// Why one engine instead of eight implementations:
//
//   - Algorithm and mode are orthogonal strategies. The frontier's pop
//     order (FIFO, LIFO, min-cost, min-cost-plus-heuristic) and the
//     explored-set policy (none, seen-set, best-cost map) are injected
//     into a single shared expansion loop, so BFS-tree and A*-graph differ
//     only in those two plug points and their outputs stay comparable.
//
// Determinism:
//
//   - Expansion enumerates actions in the environment's fixed order, and
//     priority frontiers break ties by insertion sequence (earlier first),
//     so identical inputs always produce identical results. Benchmarks
//     depend on this.
//
// Termination:
//
//   - A search always ends with one of: GoalFound, IterationLimit,
//     DepthLimit, Timeout, FrontierExhausted. Only configuration mistakes
//     are errors; running out of a resource is a normal Result with
//     Success=false. Tree-mode searches on cyclic mazes never exhaust
//     their frontier, which is precisely why the iteration and time limits
//     exist — do not bolt cycle detection onto tree mode, that would turn
//     it into graph mode and erase the contrast the benchmarks measure.
//
// Complexity (graph mode, V free cells, branching factor d):
//
//   - BFS/DFS: O(V×d) time, O(V) memory.
//   - UCS/A*:  O(V×d log V) time, O(V+E) heap entries under lazy
//     decrease-key.
//   - Tree mode is bounded only by the configured limits.
//
// Errors:
//
//   - ErrNilProblem: Search called without a problem.
//   - ErrUnknownAlgorithm: algorithm selector out of range.
//   - ErrMissingHeuristic: A* requested with HeuristicNone.
//   - ErrBadLimit: non-positive iteration, depth, or timeout limit.
package search
