package bench

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tolmaren/gridsearch/search"
)

// Record is one flat benchmark row: the configuration that produced it
// plus the Result fields worth aggregating. PathCost is 0 on failed runs
// (the Success flag disambiguates); infinities never reach JSON or CSV.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	Algorithm string `json:"algorithm"`
	Mode      string `json:"mode"`
	Heuristic string `json:"heuristic"`
	EnvKind   string `json:"env_kind"`
	Size      int    `json:"env_size"`
	Motion    string `json:"motion"`
	Trial     int    `json:"trial"`

	Success         bool    `json:"success"`
	Reason          string  `json:"reason"`
	Seconds         float64 `json:"time_seconds"`
	NodesExpanded   int     `json:"nodes_expanded"`
	Iterations      int     `json:"iterations"`
	PathLength      int     `json:"path_length"`
	PathCost        float64 `json:"path_cost"`
	MaxFrontierSize int     `json:"max_frontier_size"`

	MaxIterations  int     `json:"max_iterations"`
	MaxDepth       int     `json:"max_depth"`
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

// NewRecord flattens one search Result under its Spec.
func NewRecord(s Spec, trial int, res search.Result) Record {
	cost := 0.0
	if res.Success {
		cost = res.PathCost
	}
	return Record{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),

		Algorithm: s.Label(),
		Mode:      s.Mode.String(),
		Heuristic: s.Heuristic.String(),
		EnvKind:   s.Kind.String(),
		Size:      s.Size,
		Motion:    s.Motion.String(),
		Trial:     trial,

		Success:         res.Success,
		Reason:          res.Reason.String(),
		Seconds:         res.Elapsed.Seconds(),
		NodesExpanded:   res.NodesExpanded,
		Iterations:      res.Iterations,
		PathLength:      res.PathLength,
		PathCost:        cost,
		MaxFrontierSize: res.MaxFrontierSize,

		MaxIterations:  s.Limits.MaxIterations,
		MaxDepth:       s.Limits.MaxDepth,
		TimeoutSeconds: s.Limits.Timeout.Seconds(),
	}
}

// Recorder accumulates Records from concurrent workers. It is an explicit
// object passed into Run — the package keeps no global state, so parallel
// benchmark drivers never contend on anything but their own Recorder.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder returns an empty accumulator.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Add appends one record. Safe for concurrent use.
func (r *Recorder) Add(rec Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

// Len returns the number of accumulated records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Records returns a copy of the accumulated records.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}
