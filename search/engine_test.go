package search_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolmaren/gridsearch/grid"
	"github.com/tolmaren/gridsearch/search"
)

// emptyProblem builds a borderless size×size grid with start (0,0) and
// goal (size-1,size-1).
func emptyProblem(t *testing.T, size int, motion grid.Motion) *search.Problem {
	t.Helper()
	env, err := grid.New(size, size,
		grid.WithMotion(motion),
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: size - 1, Col: size - 1}),
	)
	require.NoError(t, err)
	p, err := search.NewProblem(env)
	require.NoError(t, err)
	return p
}

// checkPath asserts the solution path is a chain of adjacent free cells
// from start to goal whose step costs sum to PathCost.
func checkPath(t *testing.T, p *search.Problem, res search.Result) {
	t.Helper()
	require.True(t, res.Success)
	require.Equal(t, search.GoalFound, res.Reason)
	require.NotEmpty(t, res.Path)
	require.Equal(t, len(res.Path), res.PathLength)
	require.Equal(t, p.Initial(), res.Path[0])
	require.Equal(t, p.Goal(), res.Path[len(res.Path)-1])

	cost := 0.0
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		require.True(t, p.Environment().IsFree(cur), "cell %v not free", cur)
		dr, dc := cur.Row-prev.Row, cur.Col-prev.Col
		require.LessOrEqual(t, dr*dr, 1)
		require.LessOrEqual(t, dc*dc, 1)
		if dr != 0 && dc != 0 {
			cost += grid.DiagonalCost
		} else {
			cost += 1
		}
	}
	assert.InDelta(t, cost, res.PathCost, 1e-9)
}

func TestSearch_Empty5x5_Motion4(t *testing.T) {
	p := emptyProblem(t, 5, grid.Motion4)

	cases := []struct {
		name string
		algo search.Algorithm
		opts []search.Option
	}{
		{"BFS", search.BFS, nil},
		{"DFS", search.DFS, nil},
		{"UCS", search.UCS, nil},
		{"AStarEuclidean", search.AStar, []search.Option{search.WithHeuristic(search.HeuristicEuclidean)}},
		{"AStarManhattan", search.AStar, []search.Option{search.WithHeuristic(search.HeuristicManhattan)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.Search(p, tc.algo, tc.opts...)
			require.NoError(t, err)
			checkPath(t, p, res)
			if tc.algo != search.DFS {
				// Unit step costs: BFS, UCS, and A* are all optimal here.
				assert.InDelta(t, 8.0, res.PathCost, 1e-9)
				assert.Equal(t, 9, res.PathLength)
			}
		})
	}
}

func TestSearch_Empty5x5_Motion8_AStarManhattan(t *testing.T) {
	p := emptyProblem(t, 5, grid.Motion8)

	res, err := search.Search(p, search.AStar,
		search.WithHeuristic(search.HeuristicManhattan),
		search.WithMaxIterations(10_000),
	)
	require.NoError(t, err)
	checkPath(t, p, res)
	// A straight diagonal run: 4 steps of cost √2.
	assert.InDelta(t, 4*math.Sqrt2, res.PathCost, 1e-9)
	assert.Equal(t, 5, res.PathLength)
}

func TestSearch_OptimalCostWithDetour(t *testing.T) {
	// Vertical wall at column 2 with a single gap at row 4 forces a detour.
	env, err := grid.New(5, 5,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 0, Col: 4}),
		grid.WithObstacles(
			grid.Coord{Row: 0, Col: 2},
			grid.Coord{Row: 1, Col: 2},
			grid.Coord{Row: 2, Col: 2},
			grid.Coord{Row: 3, Col: 2},
		),
	)
	require.NoError(t, err)
	p, err := search.NewProblem(env)
	require.NoError(t, err)

	// Down to the gap, across, and back up: 4+4+4 = 12 unit steps.
	want := 12.0
	for _, tc := range []struct {
		name string
		algo search.Algorithm
		opts []search.Option
	}{
		{"BFS", search.BFS, nil},
		{"UCS", search.UCS, nil},
		{"AStarEuclidean", search.AStar, []search.Option{search.WithHeuristic(search.HeuristicEuclidean)}},
		{"AStarManhattan", search.AStar, []search.Option{search.WithHeuristic(search.HeuristicManhattan)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.Search(p, tc.algo, tc.opts...)
			require.NoError(t, err)
			checkPath(t, p, res)
			assert.InDelta(t, want, res.PathCost, 1e-9)
		})
	}
}

func TestSearch_WalledOffGoal_FrontierExhausted(t *testing.T) {
	// Goal at (4,4) fully enclosed by obstacles.
	env, err := grid.New(5, 5,
		grid.WithMotion(grid.Motion8),
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 4, Col: 4}),
		grid.WithObstacles(
			grid.Coord{Row: 3, Col: 3},
			grid.Coord{Row: 3, Col: 4},
			grid.Coord{Row: 4, Col: 3},
		),
	)
	require.NoError(t, err)
	p, err := search.NewProblem(env)
	require.NoError(t, err)

	for _, algo := range []search.Algorithm{search.BFS, search.DFS, search.UCS} {
		res, err := search.Search(p, algo)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, search.FrontierExhausted, res.Reason)
		assert.True(t, math.IsInf(res.PathCost, 1))
		assert.Empty(t, res.Path)
		assert.Less(t, res.Iterations, 1_000_000)
	}

	res, err := search.Search(p, search.AStar, search.WithHeuristic(search.HeuristicEuclidean))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, search.FrontierExhausted, res.Reason)
}

func TestSearch_TreeBFS_IterationLimit_OnCycle(t *testing.T) {
	// 7×7 bordered grid with a center block: the free cells form a loop
	// corridor, so tree-mode BFS can never drain its frontier.
	env, err := grid.New(7, 7,
		grid.WithBorder(),
		grid.WithObstacleRect(grid.Coord{Row: 2, Col: 2}, 3, 3),
		grid.WithStart(grid.Coord{Row: 1, Col: 1}),
		grid.WithGoal(grid.Coord{Row: 5, Col: 5}),
	)
	require.NoError(t, err)
	p, err := search.NewProblem(env)
	require.NoError(t, err)

	// Goal sits on the loop, so generous limits still find it.
	res, err := search.Search(p, search.BFS, search.WithMode(search.TreeSearch))
	require.NoError(t, err)
	require.True(t, res.Success)

	// Walling the goal's neighborhood off the loop leaves tree BFS cycling
	// forever; the iteration budget is its only termination guarantee.
	env2, err := grid.New(7, 7,
		grid.WithBorder(),
		grid.WithObstacleRect(grid.Coord{Row: 2, Col: 2}, 3, 3),
		grid.WithObstacles(
			grid.Coord{Row: 4, Col: 5},
			grid.Coord{Row: 5, Col: 4},
		),
		grid.WithStart(grid.Coord{Row: 1, Col: 1}),
		grid.WithGoal(grid.Coord{Row: 5, Col: 5}),
	)
	require.NoError(t, err)
	p2, err := search.NewProblem(env2)
	require.NoError(t, err)

	res, err = search.Search(p2, search.BFS,
		search.WithMode(search.TreeSearch),
		search.WithMaxIterations(2_000),
		search.WithTimeout(10*time.Second),
	)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, search.IterationLimit, res.Reason)
	assert.Equal(t, 2_000, res.Iterations)
	assert.LessOrEqual(t, res.NodesExpanded, res.Iterations)

	// Graph mode proves the goal unreachable instead.
	res, err = search.Search(p2, search.BFS)
	require.NoError(t, err)
	assert.Equal(t, search.FrontierExhausted, res.Reason)
}

func TestSearch_TreeMatchesGraph_OnCorridor(t *testing.T) {
	// A single 1×6 corridor has exactly one route, so both modes must
	// return the identical path and cost for every algorithm.
	env, err := grid.New(6, 1,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 0, Col: 5}),
	)
	require.NoError(t, err)
	p, err := search.NewProblem(env)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		algo search.Algorithm
		opts []search.Option
	}{
		{"BFS", search.BFS, nil},
		{"DFS", search.DFS, nil},
		{"UCS", search.UCS, nil},
		{"AStar", search.AStar, []search.Option{search.WithHeuristic(search.HeuristicEuclidean)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			graphOpts := append([]search.Option{search.WithMode(search.GraphSearch)}, tc.opts...)
			treeOpts := append([]search.Option{search.WithMode(search.TreeSearch)}, tc.opts...)

			gRes, err := search.Search(p, tc.algo, graphOpts...)
			require.NoError(t, err)
			tRes, err := search.Search(p, tc.algo, treeOpts...)
			require.NoError(t, err)

			require.True(t, gRes.Success)
			require.True(t, tRes.Success)
			assert.Equal(t, gRes.Path, tRes.Path)
			assert.InDelta(t, gRes.PathCost, tRes.PathCost, 1e-9)
		})
	}
}

func TestSearch_DepthLimit(t *testing.T) {
	p := emptyProblem(t, 5, grid.Motion4)

	// The goal lies at depth 8; capping depth at 3 drains the frontier
	// through pruning alone.
	res, err := search.Search(p, search.BFS, search.WithMaxDepth(3))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, search.DepthLimit, res.Reason)
}

func TestSearch_Timeout(t *testing.T) {
	// Tree mode on an open 10×10 grid: the frontier grows without bound,
	// so a tiny deadline must fire before anything else.
	p := emptyProblem(t, 10, grid.Motion8)

	res, err := search.Search(p, search.UCS,
		search.WithMode(search.TreeSearch),
		search.WithTimeout(time.Millisecond),
		search.WithMaxDepth(4), // goal at depth 9 stays out of reach
	)
	require.NoError(t, err)
	if res.Reason != search.Timeout && res.Reason != search.DepthLimit {
		t.Fatalf("reason = %v; want timeout or depth_limit", res.Reason)
	}
	assert.False(t, res.Success)
}

func TestSearch_StartIsGoal(t *testing.T) {
	env, err := grid.New(3, 3,
		grid.WithStart(grid.Coord{Row: 1, Col: 1}),
		grid.WithGoal(grid.Coord{Row: 1, Col: 1}),
	)
	require.NoError(t, err)
	p, err := search.NewProblem(env)
	require.NoError(t, err)

	res, err := search.Search(p, search.BFS)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, res.Path)
	assert.Equal(t, 1, res.PathLength)
	assert.Zero(t, res.PathCost)
	assert.Equal(t, 0, res.NodesExpanded)
}

func TestSearch_Deterministic(t *testing.T) {
	env, err := grid.New(9, 9,
		grid.WithMotion(grid.Motion8),
		grid.WithBorder(),
		grid.WithObstacles(
			grid.Coord{Row: 2, Col: 4},
			grid.Coord{Row: 3, Col: 4},
			grid.Coord{Row: 4, Col: 4},
			grid.Coord{Row: 5, Col: 2},
			grid.Coord{Row: 6, Col: 6},
		),
		grid.WithStart(grid.Coord{Row: 1, Col: 1}),
		grid.WithGoal(grid.Coord{Row: 7, Col: 7}),
	)
	require.NoError(t, err)
	p, err := search.NewProblem(env)
	require.NoError(t, err)

	first, err := search.Search(p, search.AStar, search.WithHeuristic(search.HeuristicEuclidean))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := search.Search(p, search.AStar, search.WithHeuristic(search.HeuristicEuclidean))
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.NodesExpanded, again.NodesExpanded)
		assert.Equal(t, first.Iterations, again.Iterations)
		assert.Equal(t, first.MaxFrontierSize, again.MaxFrontierSize)
	}
}

func TestSearch_ConfigurationErrors(t *testing.T) {
	p := emptyProblem(t, 3, grid.Motion4)

	_, err := search.Search(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilProblem)

	_, err = search.Search(p, search.AStar)
	assert.ErrorIs(t, err, search.ErrMissingHeuristic)

	_, err = search.Search(p, search.Algorithm(9))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Search(p, search.BFS, search.WithMaxIterations(0))
	assert.ErrorIs(t, err, search.ErrBadLimit)

	_, err = search.Search(p, search.BFS, search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrBadLimit)

	_, err = search.Search(p, search.BFS, search.WithTimeout(0))
	assert.ErrorIs(t, err, search.ErrBadLimit)

	_, err = search.NewProblem(nil)
	assert.True(t, errors.Is(err, search.ErrNilEnvironment))
}

func TestSearch_ExploredOrder(t *testing.T) {
	p := emptyProblem(t, 4, grid.Motion4)

	res, err := search.Search(p, search.BFS, search.WithExploredOrder())
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotEmpty(t, res.Explored)
	assert.Equal(t, p.Initial(), res.Explored[0])
	assert.Equal(t, res.NodesExpanded, len(res.Explored))

	// Expansion order must never repeat a state in graph mode.
	seen := make(map[grid.Coord]bool, len(res.Explored))
	for _, c := range res.Explored {
		assert.False(t, seen[c], "state %v expanded twice", c)
		seen[c] = true
	}
}

func TestStepper(t *testing.T) {
	p := emptyProblem(t, 3, grid.Motion4)

	st, err := search.NewStepper(p, search.BFS, search.WithExploredOrder())
	require.NoError(t, err)
	require.False(t, st.Done())

	info, more := st.Step()
	require.True(t, more)
	assert.Equal(t, p.Initial(), info.State)
	assert.True(t, info.Expanded)
	assert.False(t, info.GoalReached)

	_, ok := st.Result()
	assert.False(t, ok)

	res := st.Exhaust()
	require.True(t, st.Done())
	assert.True(t, res.Success)

	final, ok := st.Result()
	require.True(t, ok)
	assert.Equal(t, res, final)

	// Stepping past the end is a no-op.
	_, more = st.Step()
	assert.False(t, more)
}

func TestStepper_ConfigurationErrors(t *testing.T) {
	_, err := search.NewStepper(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilProblem)
}
