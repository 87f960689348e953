package calc

import (
	"fmt"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// NEC-style margins applied to the tabulated full-load current.
const (
	ConductorFactor   = 1.25
	OverloadMinFactor = 1.15
	OverloadMaxFactor = 1.25
	BreakerFactor     = 2.5
	FuseFactor        = 1.75
)

// DeviceSize is a standard protective-device selection. Saturated is set when
// the required rating exceeded every listed size and the largest was used.
type DeviceSize struct {
	Required  float64 `json:"required"`
	Rating    float64 `json:"rating"`
	Saturated bool    `json:"saturated"`
}

type MotorProtection struct {
	Horsepower float64 `json:"horsepower"`
	Voltage    float64 `json:"voltage"`
	FLA        float64 `json:"fla"`

	MinConductorAmpacity float64 `json:"min_conductor_ampacity"`
	// Conductor is nil when no table entry carries the required ampacity.
	Conductor *tables.WireGauge `json:"conductor"`

	OverloadMin float64    `json:"overload_min"`
	OverloadMax float64    `json:"overload_max"`
	Breaker     DeviceSize `json:"breaker"`
	Fuse        DeviceSize `json:"fuse"`
}

// SizeMotorProtection looks up the three-phase FLA for (voltage, hp) and
// derives conductor, overload, breaker and fuse sizing from it. Pairs missing
// from the table report ErrNotAvailable; nothing is interpolated.
func SizeMotorProtection(set *tables.Set, hp, voltage float64) (MotorProtection, error) {
	if !numfmt.AllFinite(hp, voltage) {
		return MotorProtection{}, fmt.Errorf("motor protection: %w", ErrInvalidInput)
	}
	fla, ok := set.LookupFLA(voltage, hp)
	if !ok {
		return MotorProtection{}, fmt.Errorf("%g HP at %g V: %w", hp, voltage, ErrNotAvailable)
	}

	mp := MotorProtection{
		Horsepower:           hp,
		Voltage:              voltage,
		FLA:                  fla,
		MinConductorAmpacity: fla * ConductorFactor,
		OverloadMin:          fla * OverloadMinFactor,
		OverloadMax:          fla * OverloadMaxFactor,
		Breaker:              SelectDeviceSize(set.BreakerSizes, fla*BreakerFactor),
		Fuse:                 SelectDeviceSize(set.FuseSizes, fla*FuseFactor),
	}
	if g, ok := SelectConductor(set.WireGauges, mp.MinConductorAmpacity); ok {
		mp.Conductor = &g
	}
	return mp, nil
}

// SelectConductor returns the smallest gauge whose ampacity covers minAmpacity.
func SelectConductor(gauges []tables.WireGauge, minAmpacity float64) (tables.WireGauge, bool) {
	for _, g := range gauges {
		if g.Ampacity >= minAmpacity {
			return g, true
		}
	}
	return tables.WireGauge{}, false
}

// SelectDeviceSize rounds required up to the next standard size, saturating
// at the largest size. sizes must be ascending and non-empty.
func SelectDeviceSize(sizes []float64, required float64) DeviceSize {
	for _, s := range sizes {
		if s >= required {
			return DeviceSize{Required: required, Rating: s}
		}
	}
	return DeviceSize{Required: required, Rating: sizes[len(sizes)-1], Saturated: true}
}
