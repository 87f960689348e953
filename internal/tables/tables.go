// Package tables holds the reference data the calculators read: conductor
// ampacities and areas, motor full-load currents, standard protective device
// sizes, enclosure heat-transfer coefficients, unit factors and analog card presets.
//
// A Set is immutable once built. Calculation code never embeds these numbers;
// a new edition of a standard is a new Set, not a code change.
package tables

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

type ConductorMaterial string

const (
	Copper   ConductorMaterial = "copper"
	Aluminum ConductorMaterial = "aluminum"
)

type EnclosureMaterial string

const (
	PaintedSteel   EnclosureMaterial = "painted_steel"
	StainlessSteel EnclosureMaterial = "stainless_steel"
	AluminumSheet  EnclosureMaterial = "aluminum"
	Polycarbonate  EnclosureMaterial = "polycarbonate"
)

type Mounting string

const (
	FreeStanding      Mounting = "free_standing"
	WallMounted       Mounting = "wall_mounted"
	GroundMounted     Mounting = "ground_mounted"
	GroundWallMounted Mounting = "ground_wall_mounted"
)

type Quantity string

const (
	Pressure    Quantity = "pressure"
	Temperature Quantity = "temperature"
	Flow        Quantity = "flow"
	Distance    Quantity = "distance"
	Torque      Quantity = "torque"
)

type Platform string

const (
	PlatformCustom     Platform = "custom"
	PlatformSiemensS7  Platform = "siemens_s7"
	PlatformRockwell   Platform = "rockwell_1769"
	PlatformRockwell4k Platform = "rockwell_4_20ma"
)

// WireGauge is one AWG/kcmil row: 75°C copper ampacity and conductor area.
type WireGauge struct {
	AWG          string  `json:"awg"`
	Ampacity     float64 `json:"ampacity"`
	CircularMils float64 `json:"circular_mils"`
}

// FaceWeights are the multipliers applied to the three face-pair areas
// (front/back H×W, sides H×D, top/bottom W×D) for one mounting style.
type FaceWeights struct {
	FrontBack float64 `json:"front_back"`
	Sides     float64 `json:"sides"`
	TopBottom float64 `json:"top_bottom"`
}

// Unit converts from the quantity's canonical unit: value = canonical*Factor + Offset.
type Unit struct {
	Key    string  `json:"key"`
	Symbol string  `json:"symbol"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
	Offset float64 `json:"offset"`
}

// FromCanonical converts a canonical value into this unit.
func (u Unit) FromCanonical(v float64) float64 { return v*u.Factor + u.Offset }

// ToCanonical converts a value in this unit into the canonical unit.
func (u Unit) ToCanonical(v float64) float64 { return (v - u.Offset) / u.Factor }

// QuantityDef is a family of interconvertible units. Units[0] is canonical.
type QuantityDef struct {
	Canonical string `json:"canonical"`
	Units     []Unit `json:"units"`
}

// Unit looks a member unit up by key.
func (q QuantityDef) Unit(key string) (Unit, bool) {
	for _, u := range q.Units {
		if u.Key == key {
			return u, true
		}
	}
	return Unit{}, false
}

// PlatformPreset fixes the raw range of a known analog input card.
type PlatformPreset struct {
	Label  string  `json:"label"`
	RawMin float64 `json:"raw_min"`
	RawMax float64 `json:"raw_max"`
}

// RTDCoefficients are the Callendar–Van Dusen constants for T >= 0 °C.
type RTDCoefficients struct {
	R0 float64 `json:"r0"`
	A  float64 `json:"a"`
	B  float64 `json:"b"`
}

// Set is one version of every reference table.
type Set struct {
	Version            string                          `json:"version"`
	WireGauges         []WireGauge                     `json:"wire_gauges"`
	Resistivity        map[ConductorMaterial]float64   `json:"resistivity"`
	MotorFLA           map[float64]map[float64]float64 `json:"-"`
	BreakerSizes       []float64                       `json:"breaker_sizes"`
	FuseSizes          []float64                       `json:"fuse_sizes"`
	EnclosureMaterials map[EnclosureMaterial]float64   `json:"enclosure_materials"`
	Mountings          map[Mounting]FaceWeights        `json:"mountings"`
	Quantities         map[Quantity]QuantityDef        `json:"quantities"`
	Platforms          map[Platform]PlatformPreset     `json:"platforms"`
	RTD                RTDCoefficients                 `json:"rtd"`
}

// MotorFLARow is the flattened form of one MotorFLA entry.
type MotorFLARow struct {
	Volts float64 `json:"volts"`
	HP    float64 `json:"hp"`
	FLA   float64 `json:"fla"`
}

// MotorFLARows lists the motor table ordered by voltage then horsepower.
func (s *Set) MotorFLARows() []MotorFLARow {
	var rows []MotorFLARow
	for v, byHP := range s.MotorFLA {
		for hp, fla := range byHP {
			rows = append(rows, MotorFLARow{Volts: v, HP: hp, FLA: fla})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Volts != rows[j].Volts {
			return rows[i].Volts < rows[j].Volts
		}
		return rows[i].HP < rows[j].HP
	})
	return rows
}

// LookupFLA returns the tabulated three-phase full-load current.
func (s *Set) LookupFLA(volts, hp float64) (float64, bool) {
	byHP, ok := s.MotorFLA[volts]
	if !ok {
		return 0, false
	}
	fla, ok := byHP[hp]
	return fla, ok
}

// GaugeIndex returns the position of an AWG size in WireGauges.
func (s *Set) GaugeIndex(awg string) (int, bool) {
	for i, g := range s.WireGauges {
		if g.AWG == awg {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a deep copy so overrides never mutate a shared Set.
func (s *Set) Clone() *Set {
	c := *s
	c.WireGauges = append([]WireGauge(nil), s.WireGauges...)
	c.BreakerSizes = append([]float64(nil), s.BreakerSizes...)
	c.FuseSizes = append([]float64(nil), s.FuseSizes...)
	c.Resistivity = make(map[ConductorMaterial]float64, len(s.Resistivity))
	for k, v := range s.Resistivity {
		c.Resistivity[k] = v
	}
	c.MotorFLA = make(map[float64]map[float64]float64, len(s.MotorFLA))
	for v, byHP := range s.MotorFLA {
		m := make(map[float64]float64, len(byHP))
		for hp, fla := range byHP {
			m[hp] = fla
		}
		c.MotorFLA[v] = m
	}
	c.EnclosureMaterials = make(map[EnclosureMaterial]float64, len(s.EnclosureMaterials))
	for k, v := range s.EnclosureMaterials {
		c.EnclosureMaterials[k] = v
	}
	c.Mountings = make(map[Mounting]FaceWeights, len(s.Mountings))
	for k, v := range s.Mountings {
		c.Mountings[k] = v
	}
	c.Quantities = make(map[Quantity]QuantityDef, len(s.Quantities))
	for k, q := range s.Quantities {
		q.Units = append([]Unit(nil), q.Units...)
		c.Quantities[k] = q
	}
	c.Platforms = make(map[Platform]PlatformPreset, len(s.Platforms))
	for k, v := range s.Platforms {
		c.Platforms[k] = v
	}
	return &c
}

// Validate checks every table invariant the calculators rely on.
func (s *Set) Validate() error {
	var errs []error
	if s.Version == "" {
		errs = append(errs, errors.New("empty version"))
	}
	if len(s.WireGauges) == 0 {
		errs = append(errs, errors.New("wire gauge table is empty"))
	}
	seen := make(map[string]bool, len(s.WireGauges))
	for i, g := range s.WireGauges {
		if seen[g.AWG] {
			errs = append(errs, fmt.Errorf("wire gauge %q listed twice", g.AWG))
		}
		seen[g.AWG] = true
		if !positive(g.Ampacity) || !positive(g.CircularMils) {
			errs = append(errs, fmt.Errorf("wire gauge %q: ampacity and area must be positive", g.AWG))
		}
		if i > 0 {
			prev := s.WireGauges[i-1]
			if g.Ampacity < prev.Ampacity {
				errs = append(errs, fmt.Errorf("wire gauge %q: ampacity not ascending", g.AWG))
			}
			if g.CircularMils <= prev.CircularMils {
				errs = append(errs, fmt.Errorf("wire gauge %q: circular mils not strictly ascending", g.AWG))
			}
		}
	}
	for m, k := range s.Resistivity {
		if !positive(k) {
			errs = append(errs, fmt.Errorf("resistivity %q must be positive", m))
		}
	}
	for v, byHP := range s.MotorFLA {
		for hp, fla := range byHP {
			if !positive(v) || !positive(hp) || !positive(fla) {
				errs = append(errs, fmt.Errorf("motor FLA %gV %gHP: values must be positive", v, hp))
			}
		}
	}
	errs = append(errs, ascending("breaker", s.BreakerSizes)...)
	errs = append(errs, ascending("fuse", s.FuseSizes)...)
	for m, k := range s.EnclosureMaterials {
		if !positive(k) {
			errs = append(errs, fmt.Errorf("enclosure material %q: k must be positive", m))
		}
	}
	for m, w := range s.Mountings {
		if w.FrontBack < 0 || w.Sides < 0 || w.TopBottom < 0 {
			errs = append(errs, fmt.Errorf("mounting %q: negative face weight", m))
		}
	}
	for q, def := range s.Quantities {
		if len(def.Units) == 0 || def.Units[0].Key != def.Canonical {
			errs = append(errs, fmt.Errorf("quantity %q: canonical unit must be listed first", q))
		}
		keys := make(map[string]bool, len(def.Units))
		for _, u := range def.Units {
			if keys[u.Key] {
				errs = append(errs, fmt.Errorf("quantity %q: unit %q has more than one factor", q, u.Key))
			}
			keys[u.Key] = true
			if u.Factor == 0 || math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) {
				errs = append(errs, fmt.Errorf("quantity %q: unit %q has no usable factor", q, u.Key))
			}
		}
	}
	for p, preset := range s.Platforms {
		if p != PlatformCustom && preset.RawMax == preset.RawMin {
			errs = append(errs, fmt.Errorf("platform %q: raw range is empty", p))
		}
	}
	if !positive(s.RTD.R0) || s.RTD.A == 0 || s.RTD.B == 0 {
		errs = append(errs, errors.New("RTD coefficients incomplete"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("reference tables %s: %w", s.Version, errors.Join(errs...))
	}
	return nil
}

func ascending(name string, sizes []float64) []error {
	var errs []error
	if len(sizes) == 0 {
		return []error{fmt.Errorf("%s size table is empty", name)}
	}
	for i, v := range sizes {
		if !positive(v) {
			errs = append(errs, fmt.Errorf("%s size %g must be positive", name, v))
		}
		if i > 0 && v <= sizes[i-1] {
			errs = append(errs, fmt.Errorf("%s size %g not strictly ascending", name, v))
		}
	}
	return errs
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
