// Command bench sweeps the search algorithms across the environment
// matrix, writes a CSV of every trial, prints a summary table, and
// appends the run to the history log.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/tolmaren/gridsearch/bench"
	"github.com/tolmaren/gridsearch/grid"
)

func main() {
	var (
		sizesFlag   = flag.String("sizes", "5,10,15", "comma-separated map sizes")
		kindsFlag   = flag.String("kinds", "empty,scattered,corridor,rooms,dense", "comma-separated environment families")
		motionsFlag = flag.String("motions", "4", "comma-separated motion models (4, 8)")
		trials      = flag.Int("trials", 0, "cap on trials per configuration (0 = adaptive table)")
		workers     = flag.Int("workers", runtime.NumCPU(), "worker pool size")
		outDir      = flag.String("out", "benchmark_results", "output directory for CSV files")
		historyFile = flag.String("history", "benchmark_history.json", "history log path (empty to skip)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		logger.Fatalf("[BENCH] [FATAL] %v", err)
	}
	kinds, err := parseKinds(*kindsFlag)
	if err != nil {
		logger.Fatalf("[BENCH] [FATAL] %v", err)
	}
	motions, err := parseMotions(*motionsFlag)
	if err != nil {
		logger.Fatalf("[BENCH] [FATAL] %v", err)
	}

	specs := bench.Matrix(kinds, sizes, motions, *trials)
	logger.Printf("[BENCH] [INFO] Running %d configurations on %d workers", len(specs), *workers)

	recorder := bench.NewRecorder()
	runner := &bench.Runner{Workers: *workers, Logger: logger}
	started := time.Now()
	if err := runner.Run(specs, recorder); err != nil {
		logger.Fatalf("[BENCH] [FATAL] %v", err)
	}
	records := recorder.Records()
	logger.Printf("[BENCH] [INFO] %d trials finished in %s", len(records), time.Since(started).Round(time.Millisecond))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatalf("[BENCH] [FATAL] %v", err)
	}
	csvPath := filepath.Join(*outDir, fmt.Sprintf("benchmark_%s.csv", started.Format("20060102_150405")))
	f, err := os.Create(csvPath)
	if err != nil {
		logger.Fatalf("[BENCH] [FATAL] %v", err)
	}
	if err := bench.WriteCSV(f, records); err != nil {
		logger.Fatalf("[BENCH] [FATAL] Writing %s: %v", csvPath, err)
	}
	if err := f.Close(); err != nil {
		logger.Fatalf("[BENCH] [FATAL] Closing %s: %v", csvPath, err)
	}
	logger.Printf("[BENCH] [INFO] Wrote %s", csvPath)

	if *historyFile != "" {
		history, err := bench.NewHistory(*historyFile)
		if err != nil {
			logger.Fatalf("[BENCH] [FATAL] %v", err)
		}
		if err := history.Append(records...); err != nil {
			logger.Fatalf("[BENCH] [FATAL] Appending history: %v", err)
		}
	}

	printSummaries(bench.Summarize(records))
}

// printSummaries renders the aggregate table on stdout.
func printSummaries(summaries []bench.Summary) {
	fmt.Printf("%-22s %-10s %5s %7s %8s %12s %12s %10s\n",
		"ALGORITHM", "ENV", "SIZE", "MOTION", "SUCCESS", "TIME(s)", "EXPANDED", "COST")
	for _, s := range summaries {
		fmt.Printf("%-22s %-10s %5d %7s %7.0f%% %12.4f %12.1f %10.3f\n",
			s.Algorithm, s.EnvKind, s.Size, shortMotion(s.Motion),
			s.SuccessRate*100, s.Seconds.Mean, s.NodesExpanded.Mean, s.PathCost.Mean)
	}
}

func shortMotion(s string) string {
	return strings.TrimSuffix(s, "-directional")
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad size %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseKinds(s string) ([]bench.EnvKind, error) {
	var out []bench.EnvKind
	for _, part := range strings.Split(s, ",") {
		k, err := bench.ParseEnvKind(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func parseMotions(s string) ([]grid.Motion, error) {
	var out []grid.Motion
	for _, part := range strings.Split(s, ",") {
		m, err := grid.ParseMotion(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
