package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

func TestVoltageDropThreePhaseAcceptable(t *testing.T) {
	res, err := VoltageDrop(tables.Default(), VoltageDropInput{
		Voltage: 460, Phase: ThreePhase, Current: 14, Material: tables.Copper,
		Gauge: "12", Distance: 150, DistanceUnit: Feet,
	})
	require.NoError(t, err)
	assert.InDelta(t, 7.18549, res.DropVolts, 1e-5)
	assert.InDelta(t, 1.56206, res.DropPercent, 1e-5)
	assert.InDelta(t, 452.81451, res.LoadVoltage, 1e-5)
	assert.Equal(t, DropAcceptable, res.Rating)
	assert.Nil(t, res.Suggestion)
}

func TestVoltageDropSinglePhaseSuggestsGauge(t *testing.T) {
	res, err := VoltageDrop(tables.Default(), VoltageDropInput{
		Voltage: 120, Phase: SinglePhase, Current: 20, Material: tables.Copper,
		Gauge: "12", Distance: 200, DistanceUnit: Feet,
	})
	require.NoError(t, err)
	assert.InDelta(t, 13.16998, res.DropPercent, 1e-5)
	assert.Equal(t, DropUnacceptable, res.Rating)
	require.NotNil(t, res.Suggestion)
	assert.Equal(t, "4", res.Suggestion.Gauge, "6 AWG still drops 3.28%")
	assert.InDelta(t, 2.06037, res.Suggestion.DropPercent, 1e-5)
}

func TestVoltageDropCautionHasNoSuggestion(t *testing.T) {
	// 6 AWG lands between 3% and 5%.
	res, err := VoltageDrop(tables.Default(), VoltageDropInput{
		Voltage: 120, Phase: SinglePhase, Current: 20, Material: tables.Copper,
		Gauge: "6", Distance: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, DropCaution, res.Rating)
	assert.Nil(t, res.Suggestion)
}

func TestVoltageDropNoGaugeLargeEnough(t *testing.T) {
	res, err := VoltageDrop(tables.Default(), VoltageDropInput{
		Voltage: 24, Phase: SinglePhase, Current: 100, Material: tables.Aluminum,
		Gauge: "4/0", Distance: 300, DistanceUnit: Meters,
	})
	require.NoError(t, err)
	assert.Equal(t, DropUnacceptable, res.Rating)
	assert.Nil(t, res.Suggestion)
	assert.InDelta(t, 984.252, res.DistanceFt, 1e-9)
}

func TestVoltageDropMetersNormalized(t *testing.T) {
	set := tables.Default()
	ft, err := VoltageDrop(set, VoltageDropInput{Voltage: 400, Phase: ThreePhase, Current: 30,
		Material: tables.Copper, Gauge: "8", Distance: 50 * FeetPerMeter, DistanceUnit: Feet})
	require.NoError(t, err)
	m, err := VoltageDrop(set, VoltageDropInput{Voltage: 400, Phase: ThreePhase, Current: 30,
		Material: tables.Copper, Gauge: "8", Distance: 50, DistanceUnit: Meters})
	require.NoError(t, err)
	assert.InDelta(t, ft.DropVolts, m.DropVolts, 1e-9)
}

func TestVoltageDropValidation(t *testing.T) {
	set := tables.Default()
	base := VoltageDropInput{Voltage: 480, Phase: ThreePhase, Current: 10,
		Material: tables.Copper, Gauge: "10", Distance: 100, DistanceUnit: Feet}

	invalid := map[string]func(in *VoltageDropInput){
		"zero voltage":     func(in *VoltageDropInput) { in.Voltage = 0 },
		"negative current": func(in *VoltageDropInput) { in.Current = -1 },
		"zero distance":    func(in *VoltageDropInput) { in.Distance = 0 },
		"bad phase":        func(in *VoltageDropInput) { in.Phase = 0 },
		"bad unit":         func(in *VoltageDropInput) { in.DistanceUnit = "yd" },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := VoltageDrop(set, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	missing := base
	missing.Gauge = "13"
	_, err := VoltageDrop(set, missing)
	assert.ErrorIs(t, err, ErrNotAvailable)

	missing = base
	missing.Material = "silver"
	_, err = VoltageDrop(set, missing)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestRateDropThresholds(t *testing.T) {
	assert.Equal(t, DropAcceptable, RateDrop(2.99))
	assert.Equal(t, DropCaution, RateDrop(3))
	assert.Equal(t, DropCaution, RateDrop(5))
	assert.Equal(t, DropUnacceptable, RateDrop(5.01))
}
