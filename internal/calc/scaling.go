package calc

import (
	"fmt"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// Range is a raw or engineering interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span is Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Scaling is a two-point linear map between a raw and an engineering range.
type Scaling struct {
	Raw Range `json:"raw"`
	Eng Range `json:"eng"`
}

// Validate rejects non-finite bounds and empty spans.
func (s Scaling) Validate() error {
	if !numfmt.AllFinite(s.Raw.Min, s.Raw.Max, s.Eng.Min, s.Eng.Max) {
		return fmt.Errorf("scaling bounds: %w", ErrInvalidInput)
	}
	if s.Raw.Span() == 0 || s.Eng.Span() == 0 {
		return fmt.Errorf("scaling span is zero: %w", ErrInvalidInput)
	}
	return nil
}

// ToEngineering maps a raw value into the engineering range.
func (s Scaling) ToEngineering(raw float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	eng := (raw-s.Raw.Min)*s.Eng.Span()/s.Raw.Span() + s.Eng.Min
	if !numfmt.IsFinite(eng) {
		return 0, ErrNoResult
	}
	return eng, nil
}

// ToRaw maps an engineering value back into the raw range.
func (s Scaling) ToRaw(eng float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	raw := (eng-s.Eng.Min)*s.Raw.Span()/s.Eng.Span() + s.Raw.Min
	if !numfmt.IsFinite(raw) {
		return 0, ErrNoResult
	}
	return raw, nil
}

// FieldMode says whether the UI may edit the raw range fields.
type FieldMode string

const (
	FieldEditable FieldMode = "editable"
	FieldLocked   FieldMode = "locked"
)

// ResolveRawRange applies a platform preset. The custom platform keeps the
// caller's range and leaves the fields editable; every other preset replaces
// it with the card's fixed raw range and locks the fields.
func ResolveRawRange(set *tables.Set, platform tables.Platform, custom Range) (Range, FieldMode, error) {
	if platform == "" || platform == tables.PlatformCustom {
		return custom, FieldEditable, nil
	}
	preset, ok := set.Platforms[platform]
	if !ok {
		return custom, FieldEditable, fmt.Errorf("platform %q: %w", platform, ErrNotAvailable)
	}
	return Range{Min: preset.RawMin, Max: preset.RawMax}, FieldLocked, nil
}
