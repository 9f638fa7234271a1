package core

import "context"

// StepHook is invoked at every step boundary of a long-running algorithm
// (one Brandes source, one power-iteration round, one augmenting path, …).
// A host can use it to interleave other work; returning a non-nil error stops
// the run, which then fails with ErrCancelled wrapping that error.
type StepHook func(phase string, step int) error

// Steps marks the preemptible boundaries of one algorithm run.
// The zero value is usable and only honours context cancellation.
type Steps struct {
	ctx   context.Context
	hook  StepHook
	phase string
	n     int
}

// NewSteps creates a boundary tracker for ctx. hook may be nil.
func NewSteps(ctx context.Context, phase string, hook StepHook) *Steps {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Steps{ctx: ctx, hook: hook, phase: phase}
}

// Next records one completed step and reports whether the run may continue.
// It returns an ErrCancelled-wrapped error once ctx is done or the hook refuses.
func (s *Steps) Next() error {
	if s == nil {
		return nil
	}
	s.n++
	if s.ctx != nil {
		if err := s.ctx.Err(); err != nil {
			return Cancelled(err)
		}
	}
	if s.hook != nil {
		if err := s.hook(s.phase, s.n); err != nil {
			return Cancelled(err)
		}
	}

	return nil
}

// Count returns the number of steps taken so far.
func (s *Steps) Count() int {
	if s == nil {
		return 0
	}

	return s.n
}

// Context returns the context the tracker observes.
func (s *Steps) Context() context.Context {
	if s == nil || s.ctx == nil {
		return context.Background()
	}

	return s.ctx
}

// CheckContext returns a cancellation error if ctx is done.
func CheckContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return Cancelled(err)
	}

	return nil
}
