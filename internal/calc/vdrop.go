package calc

import (
	"fmt"
	"math"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// FeetPerMeter normalizes metric run lengths.
const FeetPerMeter = 3.28084

// Voltage-drop rating thresholds, percent of system voltage.
const (
	AcceptableDropPct   = 3.0
	UnacceptableDropPct = 5.0
)

type DistanceUnit string

const (
	Feet   DistanceUnit = "ft"
	Meters DistanceUnit = "m"
)

type DropRating string

const (
	DropAcceptable   DropRating = "acceptable"
	DropCaution      DropRating = "caution"
	DropUnacceptable DropRating = "unacceptable"
)

// RateDrop classifies a drop: below 3% acceptable, 3–5% caution, above 5% unacceptable.
func RateDrop(pct float64) DropRating {
	switch {
	case pct < AcceptableDropPct:
		return DropAcceptable
	case pct <= UnacceptableDropPct:
		return DropCaution
	default:
		return DropUnacceptable
	}
}

type VoltageDropInput struct {
	Voltage      float64                  `json:"voltage"`
	Phase        Phase                    `json:"phase"`
	Current      float64                  `json:"current"`
	Material     tables.ConductorMaterial `json:"material"`
	Gauge        string                   `json:"gauge"`
	Distance     float64                  `json:"distance"`
	DistanceUnit DistanceUnit             `json:"distance_unit"`
}

type GaugeSuggestion struct {
	Gauge       string  `json:"gauge"`
	DropVolts   float64 `json:"drop_volts"`
	DropPercent float64 `json:"drop_percent"`
}

type VoltageDropResult struct {
	DistanceFt  float64    `json:"distance_ft"`
	DropVolts   float64    `json:"drop_volts"`
	DropPercent float64    `json:"drop_percent"`
	LoadVoltage float64    `json:"load_voltage"`
	Rating      DropRating `json:"rating"`
	// Suggestion is set only for unacceptable drops that a larger gauge fixes.
	Suggestion *GaugeSuggestion `json:"suggestion,omitempty"`
}

// VoltageDrop applies the K·I·D/CM conductor formula (2× for single phase,
// √3× for three phase) and, when the drop is unacceptable, walks up the gauge
// table for the first size that brings it back under 3%.
func VoltageDrop(set *tables.Set, in VoltageDropInput) (VoltageDropResult, error) {
	if !numfmt.AllFinite(in.Voltage, in.Current, in.Distance) ||
		in.Voltage <= 0 || in.Current <= 0 || in.Distance <= 0 {
		return VoltageDropResult{}, fmt.Errorf("voltage drop: voltage, current and distance must be positive: %w", ErrInvalidInput)
	}
	if !in.Phase.Valid() {
		return VoltageDropResult{}, fmt.Errorf("voltage drop: phase %d: %w", in.Phase, ErrInvalidInput)
	}
	k, ok := set.Resistivity[in.Material]
	if !ok {
		return VoltageDropResult{}, fmt.Errorf("conductor material %q: %w", in.Material, ErrNotAvailable)
	}
	idx, ok := set.GaugeIndex(in.Gauge)
	if !ok {
		return VoltageDropResult{}, fmt.Errorf("gauge %q: %w", in.Gauge, ErrNotAvailable)
	}

	var feet float64
	switch in.DistanceUnit {
	case Feet, "":
		feet = in.Distance
	case Meters:
		feet = in.Distance * FeetPerMeter
	default:
		return VoltageDropResult{}, fmt.Errorf("distance unit %q: %w", in.DistanceUnit, ErrInvalidInput)
	}

	drop := func(cm float64) float64 {
		mult := 2.0
		if in.Phase == ThreePhase {
			mult = math.Sqrt(3)
		}
		return mult * k * in.Current * feet / cm
	}

	res := VoltageDropResult{DistanceFt: feet}
	res.DropVolts = drop(set.WireGauges[idx].CircularMils)
	res.DropPercent = res.DropVolts / in.Voltage * 100
	res.LoadVoltage = in.Voltage - res.DropVolts
	if !numfmt.AllFinite(res.DropVolts, res.DropPercent) {
		return VoltageDropResult{}, ErrNoResult
	}
	res.Rating = RateDrop(res.DropPercent)

	if res.Rating == DropUnacceptable {
		for _, g := range set.WireGauges[idx+1:] {
			v := drop(g.CircularMils)
			if pct := v / in.Voltage * 100; pct < AcceptableDropPct {
				res.Suggestion = &GaugeSuggestion{Gauge: g.AWG, DropVolts: v, DropPercent: pct}
				break
			}
		}
	}
	return res, nil
}
