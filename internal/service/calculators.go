package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/calc"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/metrics"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// Calculator names, used for metrics labels and sheet paths.
const (
	CalcScale           = "scale"
	CalcSnippet         = "snippet"
	CalcConvert         = "convert"
	CalcRTD             = "rtd"
	CalcMotorProtection = "motor-protection"
	CalcEnclosure       = "enclosure"
	CalcVoltageDrop     = "voltage-drop"
	CalcMotorFLA        = "motor-fla"
)

// Direction values for ScaleRequest.
const (
	RawToEng = "raw_to_eng"
	EngToRaw = "eng_to_raw"
)

// RTDDomainAdvisory is shown for readings below 0 °C.
const RTDDomainAdvisory = "Resistance below R0 (0 °C): sub-zero temperatures are outside this RTD model"

// CalculatorService turns form strings into calculator inputs and formatted
// results. It never returns an error: failures surface as an advisory in the
// response's Error field with every result field left empty.
type CalculatorService struct {
	tables *tables.Set
}

func (s *CalculatorService) record(name string, err error) {
	metrics.Calculations.WithLabelValues(name, outcome(err)).Inc()
	if err != nil {
		log.Debug().Str("calculator", name).Err(err).Msg("no result")
	}
}

func display(v float64) string { return numfmt.Quantity(v, 4, numfmt.TrimWhole) }

func (s *CalculatorService) Scale(req domain.ScaleRequest) (resp domain.ScaleResponse) {
	platform := tables.Platform(strings.TrimSpace(req.Platform))
	if platform == "" {
		platform = tables.PlatformCustom
	}
	dir := req.Direction
	if dir == "" {
		dir = RawToEng
	}
	resp = domain.ScaleResponse{Platform: string(platform), Direction: dir}

	var err error
	defer func() { s.record(CalcScale, err) }()

	var f fields
	var custom calc.Range
	if platform == tables.PlatformCustom {
		custom = calc.Range{Min: f.num("raw_min", req.RawMin), Max: f.num("raw_max", req.RawMax)}
	}
	raw, mode, err := calc.ResolveRawRange(s.tables, platform, custom)
	resp.RawMode = string(mode)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	eng := calc.Range{Min: f.num("eng_min", req.EngMin), Max: f.num("eng_max", req.EngMax)}
	if err = f.err; err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.RawMin, resp.RawMax = display(raw.Min), display(raw.Max)

	sc := calc.Scaling{Raw: raw, Eng: eng}
	if err = sc.Validate(); err != nil {
		resp.Error = err.Error()
		return resp
	}
	if req.Snippets {
		if resp.Snippets, err = calc.RenderBuiltinSnippets(sc); err != nil {
			resp.Error = err.Error()
			return resp
		}
	}
	// An empty value is a form still being filled in, not a failure.
	if strings.TrimSpace(req.Value) == "" {
		return resp
	}

	v := f.num("value", req.Value)
	if err = f.err; err != nil {
		resp.Error = err.Error()
		return resp
	}
	var out float64
	switch dir {
	case RawToEng:
		out, err = sc.ToEngineering(v)
	case EngToRaw:
		out, err = sc.ToRaw(v)
	default:
		err = fmt.Errorf("direction %q: %w", dir, calc.ErrInvalidInput)
	}
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Result = display(out)
	return resp
}

// Snippet renders a caller-supplied template with the resolved scaling constants.
func (s *CalculatorService) Snippet(req domain.SnippetRequest) (resp domain.SnippetResponse) {
	var err error
	defer func() { s.record(CalcSnippet, err) }()

	platform := tables.Platform(strings.TrimSpace(req.Platform))
	var f fields
	var custom calc.Range
	if platform == "" || platform == tables.PlatformCustom {
		custom = calc.Range{Min: f.num("raw_min", req.RawMin), Max: f.num("raw_max", req.RawMax)}
	}
	raw, _, err := calc.ResolveRawRange(s.tables, platform, custom)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	eng := calc.Range{Min: f.num("eng_min", req.EngMin), Max: f.num("eng_max", req.EngMax)}
	if err = f.err; err != nil {
		resp.Error = err.Error()
		return resp
	}
	if resp.Code, err = calc.RenderSnippet(req.Template, calc.Scaling{Raw: raw, Eng: eng}); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// Convert fills every sibling unit of the quantity. Any failure clears all values.
func (s *CalculatorService) Convert(req domain.ConvertRequest) domain.ConvertResponse {
	resp := domain.ConvertResponse{Quantity: req.Quantity, Values: map[string]string{}}
	var f fields
	v := f.num("value", req.Value)
	err := f.err
	var out map[string]float64
	if err == nil {
		out, err = calc.ConvertUnits(s.tables, tables.Quantity(req.Quantity), req.Unit, v)
	}
	s.record(CalcConvert, err)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	for unit, val := range out {
		resp.Values[unit] = numfmt.Quantity(val, 4, numfmt.TrimZeros)
	}
	return resp
}

func (s *CalculatorService) RTD(req domain.RTDRequest) domain.RTDResponse {
	var f fields
	r := f.num("resistance", req.Resistance)
	err := f.err
	var t float64
	if err == nil {
		t, err = calc.RTDTemperature(s.tables.RTD, r)
	}
	s.record(CalcRTD, err)
	switch {
	case errors.Is(err, calc.ErrOutOfDomain):
		return domain.RTDResponse{Error: RTDDomainAdvisory}
	case err != nil:
		return domain.RTDResponse{Error: err.Error()}
	}
	return domain.RTDResponse{Temperature: numfmt.Fixed(t, 2)}
}

func (s *CalculatorService) MotorProtection(req domain.MotorProtectionRequest) domain.MotorProtectionResponse {
	var f fields
	hp := f.num("horsepower", req.Horsepower)
	volts := f.num("voltage", req.Voltage)
	err := f.err
	var mp calc.MotorProtection
	if err == nil {
		mp, err = calc.SizeMotorProtection(s.tables, hp, volts)
	}
	s.record(CalcMotorProtection, err)
	if err != nil {
		return domain.MotorProtectionResponse{Error: err.Error()}
	}

	amps := func(v float64) string { return numfmt.Quantity(v, 2, numfmt.TrimZeros) }
	resp := domain.MotorProtectionResponse{
		FLA:                  amps(mp.FLA),
		MinConductorAmpacity: amps(mp.MinConductorAmpacity),
		Conductor:            "N/A",
		OverloadMin:          amps(mp.OverloadMin),
		OverloadMax:          amps(mp.OverloadMax),
		Breaker:              amps(mp.Breaker.Rating),
		BreakerSaturated:     mp.Breaker.Saturated,
		Fuse:                 amps(mp.Fuse.Rating),
		FuseSaturated:        mp.Fuse.Saturated,
	}
	if mp.Conductor != nil {
		resp.Conductor = mp.Conductor.AWG
		resp.ConductorAmpacity = amps(mp.Conductor.Ampacity)
	}
	return resp
}

func (s *CalculatorService) Enclosure(req domain.EnclosureRequest) domain.EnclosureResponse {
	var f fields
	in := calc.EnclosureInput{
		HeightMM:      f.num("height", req.Height),
		WidthMM:       f.num("width", req.Width),
		DepthMM:       f.num("depth", req.Depth),
		InternalTempC: f.num("internal_temp", req.InternalTemp),
		ExternalTempC: f.num("external_temp", req.ExternalTemp),
		HeatLoadW:     f.num("heat_load", req.HeatLoad),
		Mounting:      tables.Mounting(req.Mounting),
		Material:      tables.EnclosureMaterial(req.Material),
	}
	err := f.err
	var res calc.EnclosureResult
	if err == nil {
		res, err = calc.EnclosureCooling(s.tables, in)
	}
	s.record(CalcEnclosure, err)
	if err != nil {
		return domain.EnclosureResponse{Error: err.Error()}
	}

	resp := domain.EnclosureResponse{
		SurfaceArea:     numfmt.Quantity(res.SurfaceAreaM2, 3, numfmt.TrimZeros),
		DeltaT:          numfmt.Quantity(res.DeltaT, 2, numfmt.TrimZeros),
		PassiveLoss:     numfmt.Fixed(res.PassiveLossW, 1),
		RequiredCooling: numfmt.Fixed(res.RequiredCoolingW, 1),
		CoolingRequired: res.CoolingRequired,
	}
	if res.CoolingRequired {
		resp.Airflow = numfmt.Fixed(res.AirflowCFM, 1)
		resp.CoolingBTUH = numfmt.Fixed(res.CoolingBTUH, 0)
		resp.RecommendedBTUH = numfmt.Fixed(res.RecommendedBTUH, 0)
	}
	return resp
}

func (s *CalculatorService) VoltageDrop(req domain.VoltageDropRequest) domain.VoltageDropResponse {
	var f fields
	in := calc.VoltageDropInput{
		Voltage:      f.num("voltage", req.Voltage),
		Phase:        f.phase(req.Phase),
		Current:      f.num("current", req.Current),
		Material:     tables.ConductorMaterial(req.Material),
		Gauge:        strings.TrimSpace(req.Gauge),
		Distance:     f.num("distance", req.Distance),
		DistanceUnit: calc.DistanceUnit(req.DistanceUnit),
	}
	err := f.err
	var res calc.VoltageDropResult
	if err == nil {
		res, err = calc.VoltageDrop(s.tables, in)
	}
	s.record(CalcVoltageDrop, err)
	if err != nil {
		return domain.VoltageDropResponse{Error: err.Error()}
	}

	resp := domain.VoltageDropResponse{
		DistanceFt:  numfmt.Quantity(res.DistanceFt, 2, numfmt.TrimZeros),
		DropVolts:   numfmt.Fixed(res.DropVolts, 2),
		DropPercent: numfmt.Fixed(res.DropPercent, 2),
		LoadVoltage: numfmt.Fixed(res.LoadVoltage, 2),
		Rating:      string(res.Rating),
	}
	if res.Suggestion != nil {
		resp.SuggestedGauge = res.Suggestion.Gauge
		resp.SuggestedPercent = numfmt.Fixed(res.Suggestion.DropPercent, 2)
	}
	return resp
}

func (s *CalculatorService) MotorFLA(req domain.MotorFLARequest) domain.MotorFLAResponse {
	var f fields
	in := calc.FLAInput{
		Horsepower:    f.num("horsepower", req.Horsepower),
		Voltage:       f.num("voltage", req.Voltage),
		Phase:         f.phase(req.Phase),
		EfficiencyPct: f.num("efficiency", req.Efficiency),
		PowerFactor:   f.num("power_factor", req.PowerFactor),
	}
	err := f.err
	var fla float64
	if err == nil {
		fla, err = calc.EstimateFLA(in)
	}
	s.record(CalcMotorFLA, err)
	if err != nil {
		return domain.MotorFLAResponse{Error: err.Error()}
	}
	return domain.MotorFLAResponse{FLA: numfmt.Fixed(fla, 2)}
}
