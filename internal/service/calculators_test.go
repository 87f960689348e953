package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

func newCalc() *CalculatorService {
	return New(tables.Default(), nil).Calc
}

func TestScaleRawToEng(t *testing.T) {
	resp := newCalc().Scale(domain.ScaleRequest{
		RawMin: "0", RawMax: "100", EngMin: "0", EngMax: "150", Value: "50",
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "75", resp.Result)
	assert.Equal(t, "custom", resp.Platform)
	assert.Equal(t, "editable", resp.RawMode)
	assert.Equal(t, RawToEng, resp.Direction)
}

func TestScaleEngToRawKeepsFourDecimals(t *testing.T) {
	resp := newCalc().Scale(domain.ScaleRequest{
		RawMin: "0", RawMax: "27648", EngMin: "0", EngMax: "10", Direction: EngToRaw, Value: "3.3",
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "9123.8400", resp.Result)
}

func TestScalePresetLocksRawRange(t *testing.T) {
	resp := newCalc().Scale(domain.ScaleRequest{
		Platform: "siemens_s7", RawMin: "garbage", RawMax: "", EngMin: "0", EngMax: "100", Value: "13824",
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "locked", resp.RawMode)
	assert.Equal(t, "0", resp.RawMin)
	assert.Equal(t, "27648", resp.RawMax)
	assert.Equal(t, "50", resp.Result)
}

func TestScaleZeroSpanHasNoResult(t *testing.T) {
	resp := newCalc().Scale(domain.ScaleRequest{
		RawMin: "10", RawMax: "10", EngMin: "0", EngMax: "100", Value: "5",
	})
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Result)
}

func TestScaleInvalidInputs(t *testing.T) {
	c := newCalc()

	resp := c.Scale(domain.ScaleRequest{RawMin: "0", RawMax: "x", EngMin: "0", EngMax: "1", Value: "1"})
	assert.Contains(t, resp.Error, "raw_max")
	assert.Empty(t, resp.Result)

	resp = c.Scale(domain.ScaleRequest{RawMin: "0", RawMax: "1", EngMin: "0", EngMax: "1", Value: "abc"})
	assert.Contains(t, resp.Error, "value")

	resp = c.Scale(domain.ScaleRequest{RawMin: "0", RawMax: "1", EngMin: "0", EngMax: "1", Value: "1", Direction: "sideways"})
	assert.Contains(t, resp.Error, "direction")

	resp = c.Scale(domain.ScaleRequest{Platform: "plc5", EngMin: "0", EngMax: "1", Value: "1"})
	assert.Contains(t, resp.Error, "not available")
}

func TestScaleSnippetsWithoutValue(t *testing.T) {
	resp := newCalc().Scale(domain.ScaleRequest{
		RawMin: "4", RawMax: "20", EngMin: "0", EngMax: "250", Snippets: true,
	})
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Result)
	require.Contains(t, resp.Snippets, "python")
	assert.Contains(t, resp.Snippets["python"], "(raw - 4) * 250 / 16 + 0")
}

func TestSnippetCustomTemplate(t *testing.T) {
	c := newCalc()
	resp := c.Snippet(domain.SnippetRequest{
		Platform: "rockwell_1769", EngMin: "0", EngMax: "100",
		Template: "SCP(In:={{.RawMin}},{{.RawMax}},Out:={{.EngMin}},{{.EngMax}})",
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "SCP(In:=0,32767,Out:=0,100)", resp.Code)

	resp = c.Snippet(domain.SnippetRequest{RawMin: "0", RawMax: "1", EngMin: "0", EngMax: "1", Template: "{{"})
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Code)
}

func TestConvertTemperature(t *testing.T) {
	resp := newCalc().Convert(domain.ConvertRequest{Quantity: "temperature", Unit: "f", Value: "212"})
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]string{"c": "100", "f": "212", "k": "373.15"}, resp.Values)
}

func TestConvertStripsPartialZeros(t *testing.T) {
	resp := newCalc().Convert(domain.ConvertRequest{Quantity: "pressure", Unit: "bar", Value: "1.5"})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "1.5", resp.Values["bar"])
	assert.Equal(t, "21.7557", resp.Values["psi"])
	assert.Equal(t, "150", resp.Values["kpa"])
}

func TestConvertInvalidClearsEverything(t *testing.T) {
	c := newCalc()
	for _, v := range []string{"", "12a", "NaN"} {
		resp := c.Convert(domain.ConvertRequest{Quantity: "flow", Unit: "gpm", Value: v})
		assert.NotEmpty(t, resp.Error)
		assert.Empty(t, resp.Values)
	}
}

func TestRTD(t *testing.T) {
	c := newCalc()

	resp := c.RTD(domain.RTDRequest{Resistance: "107.79"})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "19.99", resp.Temperature)

	resp = c.RTD(domain.RTDRequest{Resistance: "100"})
	assert.Equal(t, "0.00", resp.Temperature)

	resp = c.RTD(domain.RTDRequest{Resistance: "95"})
	assert.Equal(t, RTDDomainAdvisory, resp.Error)
	assert.Empty(t, resp.Temperature)

	resp = c.RTD(domain.RTDRequest{Resistance: "-4"})
	assert.NotEmpty(t, resp.Error)
	assert.NotEqual(t, RTDDomainAdvisory, resp.Error)
}

func TestMotorProtection(t *testing.T) {
	resp := newCalc().MotorProtection(domain.MotorProtectionRequest{Horsepower: "10", Voltage: "460"})
	assert.Empty(t, resp.Error)
	assert.Equal(t, domain.MotorProtectionResponse{
		FLA:                  "14",
		MinConductorAmpacity: "17.5",
		Conductor:            "14",
		ConductorAmpacity:    "20",
		OverloadMin:          "16.1",
		OverloadMax:          "17.5",
		Breaker:              "35",
		Fuse:                 "25",
	}, resp)
}

func TestMotorProtectionNotAvailable(t *testing.T) {
	resp := newCalc().MotorProtection(domain.MotorProtectionRequest{Horsepower: "11", Voltage: "460"})
	assert.Contains(t, resp.Error, "not available")
	assert.Empty(t, resp.FLA)
}

func TestEnclosure(t *testing.T) {
	c := newCalc()
	req := domain.EnclosureRequest{
		Height: "2000", Width: "800", Depth: "600",
		InternalTemp: "35", ExternalTemp: "25", HeatLoad: "1000",
		Mounting: "free_standing", Material: "painted_steel",
	}
	resp := c.Enclosure(req)
	assert.Empty(t, resp.Error)
	assert.Equal(t, "5.712", resp.SurfaceArea)
	assert.Equal(t, "314.2", resp.PassiveLoss)
	assert.Equal(t, "685.8", resp.RequiredCooling)
	assert.True(t, resp.CoolingRequired)
	assert.Equal(t, "216.7", resp.Airflow)
	assert.Equal(t, "2339", resp.CoolingBTUH)
	assert.Equal(t, "2400", resp.RecommendedBTUH)

	req.ExternalTemp = "35"
	resp = c.Enclosure(req)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.SurfaceArea)
	assert.False(t, resp.CoolingRequired)
}

func TestVoltageDrop(t *testing.T) {
	c := newCalc()
	resp := c.VoltageDrop(domain.VoltageDropRequest{
		Voltage: "460", Phase: "3", Current: "14", Material: "copper",
		Gauge: "12", Distance: "150", DistanceUnit: "ft",
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "7.19", resp.DropVolts)
	assert.Equal(t, "1.56", resp.DropPercent)
	assert.Equal(t, "acceptable", resp.Rating)
	assert.Empty(t, resp.SuggestedGauge)

	resp = c.VoltageDrop(domain.VoltageDropRequest{
		Voltage: "120", Phase: "single", Current: "20", Material: "copper",
		Gauge: "12", Distance: "200", DistanceUnit: "ft",
	})
	assert.Equal(t, "unacceptable", resp.Rating)
	assert.Equal(t, "4", resp.SuggestedGauge)
	assert.Equal(t, "2.06", resp.SuggestedPercent)

	resp = c.VoltageDrop(domain.VoltageDropRequest{Voltage: "120", Phase: "2", Current: "20",
		Material: "copper", Gauge: "12", Distance: "200"})
	assert.Contains(t, resp.Error, "phase")
}

func TestMotorFLA(t *testing.T) {
	c := newCalc()
	resp := c.MotorFLA(domain.MotorFLARequest{Horsepower: "10", Voltage: "460", Phase: "3", Efficiency: "90", PowerFactor: "0.85"})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "12.24", resp.FLA)

	resp = c.MotorFLA(domain.MotorFLARequest{Horsepower: "10", Voltage: "460", Phase: "3", Efficiency: "0", PowerFactor: "0.85"})
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.FLA)
}

func TestCalculatorsAreIdempotent(t *testing.T) {
	c := newCalc()
	req := domain.VoltageDropRequest{Voltage: "480", Phase: "3", Current: "40", Material: "aluminum",
		Gauge: "6", Distance: "90", DistanceUnit: "m"}
	assert.Equal(t, c.VoltageDrop(req), c.VoltageDrop(req))
}
