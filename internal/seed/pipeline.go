package seed

import (
	"context"
	"fmt"
)

type step struct {
	name string
	run  func(ctx context.Context) error
}

// StepError reports the first failing step of a run. Later steps were not attempted.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return "failed to " + e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func runSteps(ctx context.Context, steps []step, onStep func(name string)) error {
	for _, s := range steps {
		if onStep != nil {
			onStep(s.name)
		}
		if err := s.call(ctx); err != nil {
			return &StepError{Step: s.name, Err: err}
		}
	}
	return nil
}

// call runs the step, turning a panic into an error so the run still finishes.
func (s step) call(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.run(ctx)
}
