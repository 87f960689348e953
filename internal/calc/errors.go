// Package calc implements the engineering calculators. Every function is pure:
// results depend only on the arguments and the reference tables passed in.
package calc

import "errors"

var (
	// ErrInvalidInput marks non-finite, zero-divisor or otherwise unusable input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfDomain marks input the model cannot describe, such as a sub-zero RTD reading.
	ErrOutOfDomain = errors.New("outside model domain")
	// ErrNoResult marks a calculation whose outcome is not a finite number.
	ErrNoResult = errors.New("no result")
	// ErrNotAvailable marks a reference-table miss.
	ErrNotAvailable = errors.New("not available")
)

// Phase is the number of supply phases.
type Phase int

const (
	SinglePhase Phase = 1
	ThreePhase  Phase = 3
)

// Valid reports whether p is a supported phase count.
func (p Phase) Valid() bool {
	return p == SinglePhase || p == ThreePhase
}
