package search

import (
	"github.com/tolmaren/gridsearch/grid"
)

// Successor is one result of expanding a state: the action taken, the
// state it leads to, and the step cost.
type Successor struct {
	Action grid.Action
	State  grid.Coord
	Cost   float64
}

// Problem binds an environment to the three operations every algorithm
// searches over: initial state, goal test, and expansion. It holds no
// mutable state, so one Problem may serve concurrent searches.
type Problem struct {
	env *grid.Environment
}

// NewProblem wraps env. Returns ErrNilEnvironment for a nil environment;
// the environment's own constructor already guarantees start and goal are
// valid free cells.
func NewProblem(env *grid.Environment) (*Problem, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	return &Problem{env: env}, nil
}

// Environment returns the wrapped environment.
func (p *Problem) Environment() *grid.Environment { return p.env }

// Initial returns the start state.
func (p *Problem) Initial() grid.Coord { return p.env.Start() }

// Goal returns the goal state.
func (p *Problem) Goal() grid.Coord { return p.env.Goal() }

// IsGoal tests s against the goal by exact equality.
func (p *Problem) IsGoal(s grid.Coord) bool { return s == p.env.Goal() }

// Expand enumerates the successors of s in the environment's fixed action
// order, filtering actions that lead to blocked or out-of-bounds cells.
// The order is part of the engine's determinism contract.
// Complexity: O(d), d = 4 or 8.
func (p *Problem) Expand(s grid.Coord) []Successor {
	actions := p.env.Actions(s)
	out := make([]Successor, 0, len(actions))
	for _, a := range actions {
		next := grid.Coord{Row: s.Row + a.DRow, Col: s.Col + a.DCol}
		if !p.env.IsFree(next) {
			continue
		}
		out = append(out, Successor{Action: a, State: next, Cost: a.Cost})
	}
	return out
}
