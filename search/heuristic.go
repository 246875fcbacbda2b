package search

import (
	"math"

	"github.com/tolmaren/gridsearch/grid"
)

// HeuristicFunc estimates the remaining cost from a state to the goal.
type HeuristicFunc func(s, goal grid.Coord) float64

// Euclidean returns √(Δrow²+Δcol²). Admissible and consistent for both
// motion models with orthogonal cost 1 and diagonal cost √2.
func Euclidean(s, goal grid.Coord) float64 {
	dr := float64(s.Row - goal.Row)
	dc := float64(s.Col - goal.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Manhattan returns |Δrow|+|Δcol|. Admissible here because every step,
// diagonal ones included, costs at least 1.
func Manhattan(s, goal grid.Coord) float64 {
	return math.Abs(float64(s.Row-goal.Row)) + math.Abs(float64(s.Col-goal.Col))
}

// heuristicFor maps a selector to its function; HeuristicNone maps to nil.
func heuristicFor(h Heuristic) HeuristicFunc {
	switch h {
	case HeuristicEuclidean:
		return Euclidean
	case HeuristicManhattan:
		return Manhattan
	}
	return nil
}
