package calc

import (
	"fmt"
	"math"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

const (
	// CFMPerWattKelvin is the empirical fan sizing ratio CFM = 3.16·W/ΔT.
	// ΔT is taken in °C; the approximation holds for this ratio.
	CFMPerWattKelvin = 3.16
	// BTUHPerWatt converts watts to BTU/hr.
	BTUHPerWatt = 3.41
	// BTUHStep is the granularity of cooling-unit recommendations.
	BTUHStep = 100.0
)

type EnclosureInput struct {
	HeightMM      float64                  `json:"height_mm"`
	WidthMM       float64                  `json:"width_mm"`
	DepthMM       float64                  `json:"depth_mm"`
	InternalTempC float64                  `json:"internal_temp_c"`
	ExternalTempC float64                  `json:"external_temp_c"`
	HeatLoadW     float64                  `json:"heat_load_w"`
	Mounting      tables.Mounting          `json:"mounting"`
	Material      tables.EnclosureMaterial `json:"material"`
}

type EnclosureResult struct {
	SurfaceAreaM2    float64 `json:"surface_area_m2"`
	DeltaT           float64 `json:"delta_t"`
	PassiveLossW     float64 `json:"passive_loss_w"`
	RequiredCoolingW float64 `json:"required_cooling_w"`
	CoolingRequired  bool    `json:"cooling_required"`
	// Zero unless CoolingRequired.
	AirflowCFM      float64 `json:"airflow_cfm"`
	CoolingBTUH     float64 `json:"cooling_btuh"`
	RecommendedBTUH float64 `json:"recommended_btuh"`
}

// EffectiveArea weights the three face-pair areas (m²) for a mounting style.
func EffectiveArea(w tables.FaceWeights, h, wd, d float64) float64 {
	return w.FrontBack*h*wd + w.Sides*h*d + w.TopBottom*wd*d
}

// EnclosureCooling estimates passive heat loss through the enclosure walls and
// the active cooling needed to hold the internal temperature. The ambient must
// be strictly cooler than the interior; otherwise there is no passive path.
func EnclosureCooling(set *tables.Set, in EnclosureInput) (EnclosureResult, error) {
	if !numfmt.AllFinite(in.HeightMM, in.WidthMM, in.DepthMM, in.InternalTempC, in.ExternalTempC, in.HeatLoadW) {
		return EnclosureResult{}, fmt.Errorf("enclosure: %w", ErrInvalidInput)
	}
	if in.HeightMM <= 0 || in.WidthMM <= 0 || in.DepthMM <= 0 {
		return EnclosureResult{}, fmt.Errorf("enclosure dimensions must be positive: %w", ErrInvalidInput)
	}
	if in.ExternalTempC >= in.InternalTempC {
		return EnclosureResult{}, fmt.Errorf("ambient %g °C not below interior %g °C: %w",
			in.ExternalTempC, in.InternalTempC, ErrInvalidInput)
	}
	weights, ok := set.Mountings[in.Mounting]
	if !ok {
		return EnclosureResult{}, fmt.Errorf("mounting %q: %w", in.Mounting, ErrNotAvailable)
	}
	k, ok := set.EnclosureMaterials[in.Material]
	if !ok {
		return EnclosureResult{}, fmt.Errorf("material %q: %w", in.Material, ErrNotAvailable)
	}

	h, w, d := in.HeightMM/1000, in.WidthMM/1000, in.DepthMM/1000
	res := EnclosureResult{
		SurfaceAreaM2: EffectiveArea(weights, h, w, d),
		DeltaT:        in.InternalTempC - in.ExternalTempC,
	}
	res.PassiveLossW = k * res.SurfaceAreaM2 * res.DeltaT
	res.RequiredCoolingW = in.HeatLoadW - res.PassiveLossW
	if res.RequiredCoolingW <= 0 {
		return res, nil
	}

	res.CoolingRequired = true
	res.AirflowCFM = CFMPerWattKelvin * res.RequiredCoolingW / res.DeltaT
	res.CoolingBTUH = res.RequiredCoolingW * BTUHPerWatt
	res.RecommendedBTUH = math.Ceil(res.CoolingBTUH/BTUHStep) * BTUHStep
	if !numfmt.AllFinite(res.AirflowCFM, res.CoolingBTUH) {
		return EnclosureResult{}, ErrNoResult
	}
	return res, nil
}
