package viz

import (
	"github.com/tolmaren/gridsearch/grid"
	"github.com/tolmaren/gridsearch/search"
)

// Cell is a [row, col] pair; every coordinate on the wire uses this shape.
type Cell [2]int

func toCell(c grid.Coord) Cell { return Cell{c.Row, c.Col} }

func (c Cell) coord() grid.Coord { return grid.Coord{Row: c[0], Col: c[1]} }

func toCells(cs []grid.Coord) []Cell {
	out := make([]Cell, len(cs))
	for i, c := range cs {
		out[i] = toCell(c)
	}
	return out
}

// MazeRequest describes an environment to build.
type MazeRequest struct {
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
	Border    bool   `json:"border"`
	Motion    string `json:"motion"`
	Obstacles []Cell `json:"obstacles"`
	Start     Cell   `json:"start"`
	Goal      Cell   `json:"goal"`
}

// MazeResponse echoes a registered environment.
type MazeResponse struct {
	ID        string `json:"id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Motion    string `json:"motion"`
	Start     Cell   `json:"start"`
	Goal      Cell   `json:"goal"`
	Obstacles []Cell `json:"obstacles"`
	FreeCells int    `json:"free_cells"`
}

func newMazeResponse(id string, env *grid.Environment) MazeResponse {
	return MazeResponse{
		ID:        id,
		Width:     env.Width(),
		Height:    env.Height(),
		Motion:    env.Motion().String(),
		Start:     toCell(env.Start()),
		Goal:      toCell(env.Goal()),
		Obstacles: toCells(env.Obstacles()),
		FreeCells: env.FreeCells(),
	}
}

// SearchRequest configures one search run. Zero limits fall back to the
// engine defaults.
type SearchRequest struct {
	Algorithm      string  `json:"algorithm" binding:"required"`
	Mode           string  `json:"mode"`
	Heuristic      string  `json:"heuristic"`
	MaxIterations  int     `json:"max_iterations"`
	MaxDepth       int     `json:"max_depth"`
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

// SearchResponse is the full search outcome. PathCost is 0 on failure,
// mirroring the benchmark records.
type SearchResponse struct {
	Success         bool     `json:"success"`
	Reason          string   `json:"reason"`
	Path            []Cell   `json:"path"`
	Actions         []string `json:"actions"`
	PathCost        float64  `json:"path_cost"`
	PathLength      int      `json:"path_length"`
	NodesExpanded   int      `json:"nodes_expanded"`
	Iterations      int      `json:"iterations"`
	MaxFrontierSize int      `json:"max_frontier_size"`
	Seconds         float64  `json:"time_seconds"`
	Explored        []Cell   `json:"explored"`
}

func newSearchResponse(res search.Result) SearchResponse {
	cost := 0.0
	if res.Success {
		cost = res.PathCost
	}
	actions := make([]string, len(res.Actions))
	for i, a := range res.Actions {
		actions[i] = a.Name
	}
	return SearchResponse{
		Success:         res.Success,
		Reason:          res.Reason.String(),
		Path:            toCells(res.Path),
		Actions:         actions,
		PathCost:        cost,
		PathLength:      res.PathLength,
		NodesExpanded:   res.NodesExpanded,
		Iterations:      res.Iterations,
		MaxFrontierSize: res.MaxFrontierSize,
		Seconds:         res.Elapsed.Seconds(),
		Explored:        toCells(res.Explored),
	}
}
