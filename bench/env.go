package bench

import (
	"fmt"
	"math/rand"

	"github.com/tolmaren/gridsearch/grid"
)

// Seeds for the randomized families. Fixed so every run of the benchmark
// sees the same maps.
const (
	scatteredSeed = 42
	denseSeed     = 123
)

// BuildEnvironment generates one maze of the given family: a bordered
// size×size grid with start (1,1) and goal (size-2,size-2).
//
// The randomized families (Scattered, Dense) draw obstacle cells from a
// fixed-seed source and never block start or goal; they may still wall
// the goal off entirely, which is a legitimate, measurable outcome rather
// than a generation error.
func BuildEnvironment(kind EnvKind, size int, motion grid.Motion) (*grid.Environment, error) {
	if size < 5 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	start := grid.Coord{Row: 1, Col: 1}
	goal := grid.Coord{Row: size - 2, Col: size - 2}

	var obstacles []grid.Coord
	switch kind {
	case Empty:
		// Border only.
	case Scattered:
		obstacles = randomObstacles(size, 10, scatteredSeed, start, goal)
	case Dense:
		obstacles = randomObstacles(size, 30, denseSeed, start, goal)
	case Corridor:
		obstacles = corridorObstacles(size)
	case Rooms:
		obstacles = roomObstacles(size)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEnvKind, int(kind))
	}

	return grid.New(size, size,
		grid.WithBorder(),
		grid.WithMotion(motion),
		grid.WithObstacles(obstacles...),
		grid.WithStart(start),
		grid.WithGoal(goal),
	)
}

// randomObstacles draws percent% of the interior cell count from a seeded
// source, skipping start and goal. Duplicates are tolerated; the
// environment's obstacle set absorbs them.
func randomObstacles(size, percent int, seed int64, start, goal grid.Coord) []grid.Coord {
	rng := rand.New(rand.NewSource(seed))
	count := size * size * percent / 100
	out := make([]grid.Coord, 0, count)
	for i := 0; i < count; i++ {
		c := grid.Coord{
			Row: 1 + rng.Intn(size-2),
			Col: 1 + rng.Intn(size-2),
		}
		if c == start || c == goal {
			continue
		}
		out = append(out, c)
	}
	return out
}

// corridorObstacles walls every second interior row, leaving narrow gaps
// at the row ends so the free cells form long corridors.
func corridorObstacles(size int) []grid.Coord {
	var out []grid.Coord
	for row := 2; row < size-2; row += 2 {
		for col := 2; col < size-3; col++ {
			out = append(out, grid.Coord{Row: row, Col: col})
		}
	}
	return out
}

// roomObstacles splits the map into four rooms with a cross of walls.
// The center cell stays free but its orthogonal neighbors do not, so the
// rooms family measures behavior on unreachable goals.
func roomObstacles(size int) []grid.Coord {
	mid := size / 2
	var out []grid.Coord
	for row := 1; row < size-1; row++ {
		if row != mid {
			out = append(out, grid.Coord{Row: row, Col: mid})
		}
	}
	for col := 1; col < size-1; col++ {
		if col != mid {
			out = append(out, grid.Coord{Row: mid, Col: col})
		}
	}
	return out
}
