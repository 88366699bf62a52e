package core

import "time"

// FixedStep converts variable frame time into a whole number of fixed
// simulation ticks. Leftover time carries over to the next frame.
type FixedStep struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFixedStep creates an accumulator for the given step. maxSteps caps
// catch-up work per frame; excess time is dropped once the cap is hit.
func NewFixedStep(step time.Duration, maxSteps int) *FixedStep {
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &FixedStep{step: step, maxSteps: maxSteps}
}

// Advance adds elapsed frame time and returns how many ticks to run.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	f.acc += elapsed

	n := int(f.acc / f.step)
	if n > f.maxSteps {
		n = f.maxSteps
		f.acc = 0
		return n
	}
	f.acc -= time.Duration(n) * f.step
	return n
}

// Step returns the fixed step in seconds, the dt handed to systems.
func (f *FixedStep) Step() float64 {
	return f.step.Seconds()
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
