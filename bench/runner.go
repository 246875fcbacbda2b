package bench

import (
	"fmt"
	"log"
	"sync"

	"github.com/tolmaren/gridsearch/search"
)

// Runner executes benchmark Specs over a fixed-size worker pool. Each
// Spec is one job: the worker builds the environment once, then runs the
// configured number of independent trials against it.
type Runner struct {
	// Workers is the pool size; values below 1 are treated as 1.
	Workers int
	// Logger receives per-Spec progress lines. Nil disables logging.
	Logger *log.Logger
}

// Run sweeps every Spec, feeding results into rec. It returns the first
// error encountered (environment construction or engine configuration);
// remaining jobs still drain so the Recorder stays consistent.
func (rn *Runner) Run(specs []Spec, rec *Recorder) error {
	workers := rn.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan Spec)
	errs := make(chan error, len(specs))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				if err := rn.runSpec(s, rec); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, s := range specs {
		jobs <- s
	}
	close(jobs)
	wg.Wait()
	close(errs)

	for err := range errs {
		return err
	}
	return nil
}

// runSpec builds the Spec's environment and runs its trials.
func (rn *Runner) runSpec(s Spec, rec *Recorder) error {
	env, err := BuildEnvironment(s.Kind, s.Size, s.Motion)
	if err != nil {
		return fmt.Errorf("bench: build %s size=%d: %w", s.Kind, s.Size, err)
	}
	problem, err := search.NewProblem(env)
	if err != nil {
		return err
	}
	opts := s.options()

	succ := 0
	for trial := 0; trial < s.Trials; trial++ {
		res, err := search.Search(problem, s.Algorithm, opts...)
		if err != nil {
			return fmt.Errorf("bench: %s on %s size=%d: %w", s.Label(), s.Kind, s.Size, err)
		}
		if res.Success {
			succ++
		}
		rec.Add(NewRecord(s, trial, res))
	}

	if rn.Logger != nil {
		rn.Logger.Printf("[BENCH] [INFO] %s %s size=%d motion=%s: %d/%d succeeded",
			s.Label(), s.Kind, s.Size, s.Motion, succ, s.Trials)
	}
	return nil
}
