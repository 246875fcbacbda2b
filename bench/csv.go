package bench

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// csvHeader is the fixed column order of WriteCSV.
var csvHeader = []string{
	"id", "timestamp",
	"algorithm", "mode", "heuristic", "env_kind", "env_size", "motion", "trial",
	"success", "reason", "time_seconds", "nodes_expanded", "iterations",
	"path_length", "path_cost", "max_frontier_size",
	"max_iterations", "max_depth", "timeout_seconds",
}

// WriteCSV flattens records into w, one row per trial, header first.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.ID.String(),
			r.Timestamp.Format(time.RFC3339Nano),
			r.Algorithm,
			r.Mode,
			r.Heuristic,
			r.EnvKind,
			strconv.Itoa(r.Size),
			r.Motion,
			strconv.Itoa(r.Trial),
			strconv.FormatBool(r.Success),
			r.Reason,
			strconv.FormatFloat(r.Seconds, 'f', -1, 64),
			strconv.Itoa(r.NodesExpanded),
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.PathLength),
			strconv.FormatFloat(r.PathCost, 'f', -1, 64),
			strconv.Itoa(r.MaxFrontierSize),
			strconv.Itoa(r.MaxIterations),
			strconv.Itoa(r.MaxDepth),
			strconv.FormatFloat(r.TimeoutSeconds, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
