// Package grid models a 2D maze as an immutable search environment:
// a rectangular field of free and obstacle cells with a start, a goal,
// and a configurable motion model.
//
// What:
//
//   - Coord is a (row, col) value type identifying one cell.
//   - Action is one legal move of the motion model, with its step cost.
//   - Environment wraps dimensions, an obstacle set, start/goal cells and
//     a motion model (Motion4 or Motion8); it is immutable once built.
//   - Actions(c) applies the corner-cut rule: a diagonal move is legal only
//     if at least one of its two adjacent orthogonal cells is free, so a
//     unit-square robot cannot squeeze between touching obstacle corners.
//
// Why:
//
//   - Search algorithms need a pure, read-only world model: every query
//     (InBounds, IsFree, Actions, StepCost) is a function of construction
//     state, so concurrent searches over one Environment need no locking.
//
// Costs:
//
//   - Orthogonal moves cost 1; diagonal moves cost √2.
//   - Action enumeration order is fixed (N, S, E, W, NE, NW, SE, SW) so
//     downstream frontier tie-breaks stay reproducible across runs.
//
// Options:
//
//   - WithMotion: choose Motion4 (default) or Motion8.
//   - WithStart / WithGoal: required endpoints of the search.
//   - WithObstacles / WithObstacleRect: block individual cells or regions.
//   - WithBorder: wall in the outermost ring of cells.
//
// Errors:
//
//   - ErrBadDimensions: width or height < 1.
//   - ErrNoStart / ErrNoGoal: endpoint never supplied.
//   - ErrOutOfBounds: start or goal lies outside the grid.
//   - ErrBlockedStart / ErrBlockedGoal: endpoint coincides with an obstacle.
package grid
