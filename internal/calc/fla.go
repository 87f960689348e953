package calc

import (
	"fmt"
	"math"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
)

// WattsPerHP converts mechanical horsepower to watts.
const WattsPerHP = 746.0

type FLAInput struct {
	Horsepower    float64 `json:"horsepower"`
	Voltage       float64 `json:"voltage"`
	Phase         Phase   `json:"phase"`
	EfficiencyPct float64 `json:"efficiency_pct"`
	PowerFactor   float64 `json:"power_factor"`
}

// EstimateFLA derives full-load current from rated power instead of the
// nameplate: P_in = HP·746/η and I = P_in / (V·PF), with √3 for three phase.
func EstimateFLA(in FLAInput) (float64, error) {
	if !numfmt.AllFinite(in.Horsepower, in.Voltage, in.EfficiencyPct, in.PowerFactor) {
		return 0, fmt.Errorf("motor FLA: %w", ErrInvalidInput)
	}
	if in.Voltage <= 0 || in.EfficiencyPct <= 0 || in.PowerFactor <= 0 {
		return 0, fmt.Errorf("motor FLA: voltage, efficiency and power factor must be positive: %w", ErrInvalidInput)
	}
	if !in.Phase.Valid() {
		return 0, fmt.Errorf("motor FLA: phase %d: %w", in.Phase, ErrInvalidInput)
	}

	eff := in.EfficiencyPct / 100
	denom := in.Voltage * eff * in.PowerFactor
	if in.Phase == ThreePhase {
		denom *= math.Sqrt(3)
	}
	fla := in.Horsepower * WattsPerHP / denom
	if !numfmt.IsFinite(fla) {
		return 0, ErrNoResult
	}
	return fla, nil
}
