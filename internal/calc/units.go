package calc

import (
	"fmt"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// ConvertUnits converts value from unit into every member unit of the
// quantity family, passing through the family's canonical unit. The result
// includes the source unit itself.
func ConvertUnits(set *tables.Set, q tables.Quantity, unit string, value float64) (map[string]float64, error) {
	def, ok := set.Quantities[q]
	if !ok {
		return nil, fmt.Errorf("quantity %q: %w", q, ErrNotAvailable)
	}
	src, ok := def.Unit(unit)
	if !ok {
		return nil, fmt.Errorf("unit %q of %s: %w", unit, q, ErrNotAvailable)
	}
	if !numfmt.IsFinite(value) {
		return nil, fmt.Errorf("%s value: %w", q, ErrInvalidInput)
	}

	canonical := src.ToCanonical(value)
	out := make(map[string]float64, len(def.Units))
	for _, u := range def.Units {
		if u.Key == src.Key {
			out[u.Key] = value
			continue
		}
		v := u.FromCanonical(canonical)
		if !numfmt.IsFinite(v) {
			return nil, fmt.Errorf("%s to %s: %w", src.Key, u.Key, ErrNoResult)
		}
		out[u.Key] = v
	}
	return out, nil
}
