package bench

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Stat is a mean/stddev pair over the successful trials of one group.
type Stat struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Summary aggregates one (algorithm, environment, size, motion) group.
// Success rate counts all trials; the Stat fields only the successful
// ones, since failed runs carry no meaningful cost or length.
type Summary struct {
	Algorithm string `json:"algorithm"`
	EnvKind   string `json:"env_kind"`
	Size      int    `json:"env_size"`
	Motion    string `json:"motion"`

	Trials      int     `json:"trials"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"success_rate"`

	Seconds       Stat `json:"time_seconds"`
	NodesExpanded Stat `json:"nodes_expanded"`
	MaxFrontier   Stat `json:"max_frontier_size"`
	PathCost      Stat `json:"path_cost"`
	PathLength    Stat `json:"path_length"`
}

// groupKey identifies one Summary row.
type groupKey struct {
	algorithm string
	envKind   string
	size      int
	motion    string
}

// Summarize groups records by algorithm label, environment family, size,
// and motion model, and aggregates each group. Output order is
// deterministic: environment, size, motion, algorithm label.
func Summarize(records []Record) []Summary {
	groups := make(map[groupKey][]Record)
	for _, r := range records {
		k := groupKey{r.Algorithm, r.EnvKind, r.Size, r.Motion}
		groups[k] = append(groups[k], r)
	}

	out := make([]Summary, 0, len(groups))
	for k, recs := range groups {
		out = append(out, summarizeGroup(k, recs))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EnvKind != b.EnvKind {
			return a.EnvKind < b.EnvKind
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		if a.Motion != b.Motion {
			return a.Motion < b.Motion
		}
		return a.Algorithm < b.Algorithm
	})
	return out
}

func summarizeGroup(k groupKey, recs []Record) Summary {
	s := Summary{
		Algorithm: k.algorithm,
		EnvKind:   k.envKind,
		Size:      k.size,
		Motion:    k.motion,
		Trials:    len(recs),
	}

	var seconds, expanded, frontier, cost, length []float64
	for _, r := range recs {
		if !r.Success {
			continue
		}
		s.Successes++
		seconds = append(seconds, r.Seconds)
		expanded = append(expanded, float64(r.NodesExpanded))
		frontier = append(frontier, float64(r.MaxFrontierSize))
		cost = append(cost, r.PathCost)
		length = append(length, float64(r.PathLength))
	}
	if s.Trials > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.Trials)
	}

	s.Seconds = newStat(seconds)
	s.NodesExpanded = newStat(expanded)
	s.MaxFrontier = newStat(frontier)
	s.PathCost = newStat(cost)
	s.PathLength = newStat(length)
	return s
}

// newStat computes mean and sample stddev; empty or single-element inputs
// yield zero where the statistic is undefined.
func newStat(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{}
	}
	mean, _ := stats.Mean(xs)
	var sd float64
	if len(xs) > 1 {
		sd, _ = stats.StandardDeviationSample(xs)
	}
	return Stat{Mean: mean, StdDev: sd}
}
