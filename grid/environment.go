package grid

import (
	"fmt"
	"sort"
)

// Environment is an immutable maze description: dimensions, obstacle set,
// start and goal cells, and the motion model. All query methods are pure;
// a single Environment may serve any number of concurrent searches.
type Environment struct {
	width, height int
	obstacles     map[Coord]struct{}
	start, goal   Coord
	motion        Motion
	actions       []Action
}

// New constructs an Environment from dimensions and options. The obstacle
// set is copied in, so the caller's slices may be reused afterwards.
//
// Validation order:
//  1. width, height ≥ 1 (≥ 3 with WithBorder), else ErrBadDimensions.
//  2. start and goal supplied, else ErrNoStart / ErrNoGoal.
//  3. start and goal in bounds, else ErrOutOfBounds.
//  4. start and goal free, else ErrBlockedStart / ErrBlockedGoal.
//
// Complexity: O(W×H) worst case (border + rectangle expansion), O(1) extra
// per listed obstacle.
func New(width, height int, opts ...Option) (*Environment, error) {
	cfg := Options{motion: Motion4}
	for _, opt := range opts {
		opt(&cfg)
	}

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}
	if cfg.border && (width < 3 || height < 3) {
		return nil, fmt.Errorf("%w: %dx%d leaves no interior inside a border", ErrBadDimensions, width, height)
	}
	if !cfg.hasStart {
		return nil, ErrNoStart
	}
	if !cfg.hasGoal {
		return nil, ErrNoGoal
	}

	env := &Environment{
		width:     width,
		height:    height,
		obstacles: make(map[Coord]struct{}, len(cfg.obstacles)),
		start:     cfg.start,
		goal:      cfg.goal,
		motion:    cfg.motion,
		actions:   motion4Actions,
	}
	if cfg.motion == Motion8 {
		env.actions = motion8Actions
	}

	if cfg.border {
		for col := 0; col < width; col++ {
			env.obstacles[Coord{0, col}] = struct{}{}
			env.obstacles[Coord{height - 1, col}] = struct{}{}
		}
		for row := 0; row < height; row++ {
			env.obstacles[Coord{row, 0}] = struct{}{}
			env.obstacles[Coord{row, width - 1}] = struct{}{}
		}
	}
	for _, c := range cfg.obstacles {
		if env.InBounds(c) {
			env.obstacles[c] = struct{}{}
		}
	}

	if !env.InBounds(env.start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, env.start, width, height)
	}
	if !env.InBounds(env.goal) {
		return nil, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, env.goal, width, height)
	}
	if _, blocked := env.obstacles[env.start]; blocked {
		return nil, fmt.Errorf("%w: %v", ErrBlockedStart, env.start)
	}
	if _, blocked := env.obstacles[env.goal]; blocked {
		return nil, fmt.Errorf("%w: %v", ErrBlockedGoal, env.goal)
	}

	return env, nil
}

// Width returns the number of columns.
func (e *Environment) Width() int { return e.width }

// Height returns the number of rows.
func (e *Environment) Height() int { return e.height }

// Start returns the start cell.
func (e *Environment) Start() Coord { return e.start }

// Goal returns the goal cell.
func (e *Environment) Goal() Coord { return e.goal }

// Motion returns the motion model.
func (e *Environment) Motion() Motion { return e.motion }

// InBounds reports whether c lies within the grid. O(1).
func (e *Environment) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < e.height && c.Col >= 0 && c.Col < e.width
}

// IsFree reports whether c is in bounds and not an obstacle. O(1).
func (e *Environment) IsFree(c Coord) bool {
	if !e.InBounds(c) {
		return false
	}
	_, blocked := e.obstacles[c]
	return !blocked
}

// Actions returns the motion-model actions legal at c, in the canonical
// fixed order. Diagonal actions are dropped when both adjacent orthogonal
// cells are blocked (corner-cut rule); destination cells are not checked
// here, that filtering belongs to problem expansion.
// Complexity: O(d), d = 4 or 8.
func (e *Environment) Actions(c Coord) []Action {
	if e.motion == Motion4 {
		return e.actions
	}
	out := make([]Action, 0, len(e.actions))
	for _, a := range e.actions {
		if a.Diagonal() {
			rowSide := Coord{c.Row + a.DRow, c.Col}
			colSide := Coord{c.Row, c.Col + a.DCol}
			if !e.IsFree(rowSide) && !e.IsFree(colSide) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// StepCost returns the fixed cost of one action. O(1).
func (e *Environment) StepCost(a Action) float64 {
	return a.Cost
}

// Obstacles returns the obstacle cells in row-major order. The slice is
// freshly allocated on every call.
func (e *Environment) Obstacles() []Coord {
	out := make([]Coord, 0, len(e.obstacles))
	for c := range e.obstacles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// FreeCells counts the non-obstacle cells of the grid. O(W×H).
func (e *Environment) FreeCells() int {
	return e.width*e.height - len(e.obstacles)
}
