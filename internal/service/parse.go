package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/calc"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/metrics"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
)

// fields parses form values and remembers the first failure.
type fields struct {
	err error
}

func (f *fields) num(name, s string) float64 {
	if f.err != nil {
		return 0
	}
	v, ok := numfmt.Parse(s)
	if !ok {
		f.err = fmt.Errorf("%s: %w", name, calc.ErrInvalidInput)
	}
	return v
}

func (f *fields) phase(s string) calc.Phase {
	if f.err != nil {
		return 0
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "single", "single_phase":
		return calc.SinglePhase
	case "3", "three", "three_phase":
		return calc.ThreePhase
	}
	f.err = fmt.Errorf("phase %q: %w", s, calc.ErrInvalidInput)
	return 0
}

// outcome buckets an error for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, calc.ErrNotAvailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, calc.ErrInvalidInput), errors.Is(err, calc.ErrOutOfDomain), errors.Is(err, calc.ErrNoResult):
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}
