package search_test

import (
	"testing"

	"github.com/tolmaren/gridsearch/grid"
	"github.com/tolmaren/gridsearch/search"
)

// benchProblem builds a bordered n×n grid with a central block, start
// (1,1), goal (n-2,n-2).
func benchProblem(b *testing.B, n int, motion grid.Motion) *search.Problem {
	b.Helper()
	env, err := grid.New(n, n,
		grid.WithMotion(motion),
		grid.WithBorder(),
		grid.WithObstacleRect(grid.Coord{Row: n / 3, Col: n / 3}, n/3, n/3),
		grid.WithStart(grid.Coord{Row: 1, Col: 1}),
		grid.WithGoal(grid.Coord{Row: n - 2, Col: n - 2}),
	)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	p, err := search.NewProblem(env)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	return p
}

func BenchmarkBFSGraph_50x50(b *testing.B) {
	p := benchProblem(b, 50, grid.Motion4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Search(p, search.BFS); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUCSGraph_50x50(b *testing.B) {
	p := benchProblem(b, 50, grid.Motion8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Search(p, search.UCS); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStarGraph_50x50(b *testing.B) {
	p := benchProblem(b, 50, grid.Motion8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := search.Search(p, search.AStar,
			search.WithHeuristic(search.HeuristicEuclidean))
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBFSTree_Depth12(b *testing.B) {
	p := benchProblem(b, 9, grid.Motion4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := search.Search(p, search.BFS,
			search.WithMode(search.TreeSearch),
			search.WithMaxIterations(20_000))
		if err != nil {
			b.Fatal(err)
		}
	}
}
