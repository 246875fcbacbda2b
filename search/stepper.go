package search

// Stepper drives the same engine loop as Search, one iteration at a time.
// It exists for visualizers and debuggers that want to animate frontier
// pops; batch callers should prefer Search.
//
// A Stepper is single-owner and not safe for concurrent use — exactly
// like the run it wraps.
type Stepper struct {
	r *runner
}

// NewStepper validates the configuration and prepares a paused search.
// It accepts the same options as Search and fails the same ways.
func NewStepper(p *Problem, algo Algorithm, opts ...Option) (*Stepper, error) {
	r, err := newRunner(p, algo, opts...)
	if err != nil {
		return nil, err
	}
	return &Stepper{r: r}, nil
}

// Step performs one iteration. The second return is false once the search
// has terminated; from then on Result returns the final record and further
// Step calls are no-ops.
func (s *Stepper) Step() (StepInfo, bool) {
	return s.r.step()
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool {
	return s.r.finished
}

// Result returns the final record; ok is false while the search is still
// running.
func (s *Stepper) Result() (Result, bool) {
	if !s.r.finished {
		return Result{}, false
	}
	return s.r.result, true
}

// Exhaust runs the remaining iterations to completion and returns the
// final record.
func (s *Stepper) Exhaust() Result {
	for {
		if _, more := s.r.step(); !more {
			return s.r.result
		}
	}
}
