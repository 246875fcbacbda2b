// Package grid defines core types, options, and sentinel errors for the
// maze environment of github.com/tolmaren/gridsearch.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Environment construction. All of them mean the same
// thing to a caller: the requested maze is malformed and no search may run
// against it.
var (
	// ErrBadDimensions indicates width or height below 1, or a grid too
	// small to hold any free cell inside a requested border.
	ErrBadDimensions = errors.New("grid: width and height must be at least 1")
	// ErrNoStart indicates that no start cell was supplied.
	ErrNoStart = errors.New("grid: start cell not set")
	// ErrNoGoal indicates that no goal cell was supplied.
	ErrNoGoal = errors.New("grid: goal cell not set")
	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBlockedStart indicates the start cell coincides with an obstacle.
	ErrBlockedStart = errors.New("grid: start cell is an obstacle")
	// ErrBlockedGoal indicates the goal cell coincides with an obstacle.
	ErrBlockedGoal = errors.New("grid: goal cell is an obstacle")
)

// DiagonalCost is the step cost of one diagonal move under Motion8.
// Orthogonal moves always cost 1.
const DiagonalCost = math.Sqrt2

// Coord identifies one grid cell by row and column. Value type; equality
// and map keys behave by value.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Motion selects the motion model: orthogonal only (Motion4) or
// orthogonal plus diagonals (Motion8).
type Motion int

const (
	// Motion4 allows the four orthogonal moves: N, S, E, W.
	Motion4 Motion = iota
	// Motion8 additionally allows the four diagonal moves: NE, NW, SE, SW.
	Motion8
)

// String returns "4-directional" or "8-directional".
func (m Motion) String() string {
	if m == Motion8 {
		return "8-directional"
	}
	return "4-directional"
}

// ParseMotion maps "4", "4-directional", "8", "8-directional" to a Motion.
func ParseMotion(s string) (Motion, error) {
	switch s {
	case "4", "4-directional":
		return Motion4, nil
	case "8", "8-directional":
		return Motion8, nil
	}
	return Motion4, fmt.Errorf("grid: unknown motion model %q", s)
}

// Action is one move of the motion model: a row/col delta plus its fixed
// step cost. Rows grow southward and columns grow eastward.
type Action struct {
	DRow, DCol int
	Cost       float64
	Name       string
}

// Diagonal reports whether the action moves along both axes at once.
func (a Action) Diagonal() bool {
	return a.DRow != 0 && a.DCol != 0
}

// motion4Actions and motion8Actions are the canonical action tables.
// Their order is part of the package contract: expansion enumerates
// actions exactly in this sequence.
var (
	motion4Actions = []Action{
		{-1, 0, 1, "N"},
		{1, 0, 1, "S"},
		{0, 1, 1, "E"},
		{0, -1, 1, "W"},
	}
	motion8Actions = []Action{
		{-1, 0, 1, "N"},
		{1, 0, 1, "S"},
		{0, 1, 1, "E"},
		{0, -1, 1, "W"},
		{-1, 1, DiagonalCost, "NE"},
		{-1, -1, DiagonalCost, "NW"},
		{1, 1, DiagonalCost, "SE"},
		{1, -1, DiagonalCost, "SW"},
	}
)

// Options collects construction parameters for an Environment.
type Options struct {
	motion    Motion
	border    bool
	obstacles []Coord
	start     Coord
	goal      Coord
	hasStart  bool
	hasGoal   bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithMotion selects the motion model (default Motion4).
func WithMotion(m Motion) Option {
	return func(o *Options) { o.motion = m }
}

// WithStart sets the start cell. Required.
func WithStart(c Coord) Option {
	return func(o *Options) {
		o.start = c
		o.hasStart = true
	}
}

// WithGoal sets the goal cell. Required.
func WithGoal(c Coord) Option {
	return func(o *Options) {
		o.goal = c
		o.hasGoal = true
	}
}

// WithObstacles blocks the given cells. Cells outside the grid are
// silently ignored, mirroring interactive maze editing where a drag may
// leave the canvas.
func WithObstacles(cells ...Coord) Option {
	return func(o *Options) {
		o.obstacles = append(o.obstacles, cells...)
	}
}

// WithObstacleRect blocks the axis-aligned rectangle of cells with the
// given top-left corner and extent. Portions outside the grid are ignored.
func WithObstacleRect(topLeft Coord, height, width int) Option {
	return func(o *Options) {
		for r := topLeft.Row; r < topLeft.Row+height; r++ {
			for c := topLeft.Col; c < topLeft.Col+width; c++ {
				o.obstacles = append(o.obstacles, Coord{r, c})
			}
		}
	}
}

// WithBorder blocks the outermost ring of cells, giving the maze solid
// outer walls. Requires width and height of at least 3 to leave any free
// interior.
func WithBorder() Option {
	return func(o *Options) { o.border = true }
}
