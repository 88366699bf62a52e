package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	f := NewFixedStep(10*time.Millisecond, 5)

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected int
	}{
		{"less than one step", 4 * time.Millisecond, 0},
		{"carry completes a step", 7 * time.Millisecond, 1},
		{"exact multiple", 20 * time.Millisecond, 2},
		{"leftover from earlier frames", 9 * time.Millisecond, 1},
		{"negative treated as zero", -time.Second, 0},
	}

	for _, tc := range tests {
		if got := f.Advance(tc.elapsed); got != tc.expected {
			t.Errorf("%s: Advance(%v) = %d, expected %d", tc.name, tc.elapsed, got, tc.expected)
		}
	}
}

func TestFixedStepCatchUpCap(t *testing.T) {
	f := NewFixedStep(10*time.Millisecond, 3)

	if got := f.Advance(time.Second); got != 3 {
		t.Errorf("Advance(1s) = %d, expected cap of 3", got)
	}

	// Excess time is dropped, not replayed.
	if got := f.Advance(5 * time.Millisecond); got != 0 {
		t.Errorf("Advance after cap = %d, expected 0", got)
	}
}

func TestFixedStepStep(t *testing.T) {
	f := NewFixedStep(time.Second/64, 4)
	if f.Step() != 1.0/64 {
		t.Errorf("Step() = %f, expected %f", f.Step(), 1.0/64)
	}

	f.Advance(time.Second / 128)
	f.Reset()
	if got := f.Advance(time.Second / 128); got != 0 {
		t.Errorf("Advance after Reset = %d, expected 0", got)
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"unrelated action", []Action{ActionPause}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %f, expected %f", got, tc.expected)
			}
		})
	}
}
