package viz

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tolmaren/gridsearch/bench"
	"github.com/tolmaren/gridsearch/grid"
	"github.com/tolmaren/gridsearch/search"
)

// MazeController handles HTTP requests for building mazes, running
// searches against them, and reading the benchmark history.
type MazeController struct {
	store   *Store
	history *bench.History
}

// NewMazeController creates a controller over the given store and
// history log. history may be nil; the history routes then report 404.
func NewMazeController(store *Store, history *bench.History) *MazeController {
	return &MazeController{store: store, history: history}
}

// Register wires the controller's routes into the group.
func (c *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.createMaze)
		mazes.GET("/:id", c.getMaze)
		mazes.POST("/:id/search", c.runSearch)
	}
	history := route.Group("/history")
	{
		history.GET("", c.getHistory)
		history.DELETE("", c.clearHistory)
	}
}

// createMaze builds an environment from the request and registers it.
func (c *MazeController) createMaze(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := []grid.Option{
		grid.WithStart(request.Start.coord()),
		grid.WithGoal(request.Goal.coord()),
	}
	if request.Border {
		opts = append(opts, grid.WithBorder())
	}
	if request.Motion != "" {
		motion, err := grid.ParseMotion(request.Motion)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opts = append(opts, grid.WithMotion(motion))
	}
	if len(request.Obstacles) > 0 {
		obstacles := make([]grid.Coord, len(request.Obstacles))
		for i, cell := range request.Obstacles {
			obstacles[i] = cell.coord()
		}
		opts = append(opts, grid.WithObstacles(obstacles...))
	}

	env, err := grid.New(request.Width, request.Height, opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.store.Put(env)
	ctx.JSON(http.StatusCreated, newMazeResponse(id.String(), env))
}

// getMaze echoes a registered environment.
func (c *MazeController) getMaze(ctx *gin.Context) {
	env, id, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(id.String(), env))
}

// runSearch runs one search against a registered maze.
func (c *MazeController) runSearch(ctx *gin.Context) {
	env, _, ok := c.lookup(ctx)
	if !ok {
		return
	}

	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo, opts, err := searchOptions(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem, err := search.NewProblem(env)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	result, err := search.Search(problem, algo, opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSearchResponse(result))
}

// getHistory loads the benchmark history log.
func (c *MazeController) getHistory(ctx *gin.Context) {
	if c.history == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "history disabled"})
		return
	}
	records, err := c.history.Load()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []bench.Record{}
	}
	ctx.JSON(http.StatusOK, gin.H{"records": records, "summaries": bench.Summarize(records)})
}

// clearHistory truncates the benchmark history log.
func (c *MazeController) clearHistory(ctx *gin.Context) {
	if c.history == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "history disabled"})
		return
	}
	if err := c.history.Clear(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}

// lookup resolves the :id path parameter to a stored environment,
// writing the error response itself when resolution fails.
func (c *MazeController) lookup(ctx *gin.Context) (*grid.Environment, uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return nil, uuid.Nil, false
	}
	env, err := c.store.Get(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMazeNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return nil, uuid.Nil, false
	}
	return env, id, true
}

// searchOptions translates a SearchRequest into engine options. Explored
// order is always tracked; the response exists to be animated.
func searchOptions(request SearchRequest) (search.Algorithm, []search.Option, error) {
	algo, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return 0, nil, err
	}

	opts := []search.Option{search.WithExploredOrder()}
	if request.Mode != "" {
		mode, err := search.ParseMode(request.Mode)
		if err != nil {
			return 0, nil, err
		}
		opts = append(opts, search.WithMode(mode))
	}
	if request.Heuristic != "" {
		heur, err := search.ParseHeuristic(request.Heuristic)
		if err != nil {
			return 0, nil, err
		}
		opts = append(opts, search.WithHeuristic(heur))
	}
	if request.MaxIterations > 0 {
		opts = append(opts, search.WithMaxIterations(request.MaxIterations))
	}
	if request.MaxDepth > 0 {
		opts = append(opts, search.WithMaxDepth(request.MaxDepth))
	}
	if request.TimeoutSeconds > 0 {
		opts = append(opts, search.WithTimeout(time.Duration(request.TimeoutSeconds * float64(time.Second))))
	}
	return algo, opts, nil
}
