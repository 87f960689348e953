package calc

import (
	"fmt"
	"math"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// RTDTemperature solves the quadratic Callendar–Van Dusen form for a platinum
// RTD reading r in ohms. Only the T >= 0 °C branch is modelled, so r below R0
// is reported as ErrOutOfDomain rather than extrapolated.
func RTDTemperature(c tables.RTDCoefficients, r float64) (float64, error) {
	if !numfmt.IsFinite(r) || r < 0 {
		return 0, fmt.Errorf("resistance %g: %w", r, ErrInvalidInput)
	}
	if r < c.R0 {
		return 0, fmt.Errorf("resistance %g below R0 %g: %w", r, c.R0, ErrOutOfDomain)
	}
	ra := c.R0 * c.A
	rb := c.R0 * c.B
	t := (-ra + math.Sqrt(ra*ra-4*rb*(c.R0-r))) / (2 * rb)
	if !numfmt.IsFinite(t) {
		return 0, ErrNoResult
	}
	return t, nil
}
