package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

func TestScalingToEngineering(t *testing.T) {
	s := Scaling{Raw: Range{0, 100}, Eng: Range{0, 150}}
	eng, err := s.ToEngineering(50)
	require.NoError(t, err)
	assert.Equal(t, 75.0, eng)
}

func TestScalingFourToTwenty(t *testing.T) {
	s := Scaling{Raw: Range{4, 20}, Eng: Range{-50, 150}}

	eng, err := s.ToEngineering(12)
	require.NoError(t, err)
	assert.InDelta(t, 50, eng, 1e-9)

	raw, err := s.ToRaw(150)
	require.NoError(t, err)
	assert.InDelta(t, 20, raw, 1e-9)
}

func TestScalingRoundTrip(t *testing.T) {
	scalings := []Scaling{
		{Raw: Range{0, 27648}, Eng: Range{0, 10}},
		{Raw: Range{3277, 16384}, Eng: Range{-40, 120}},
		{Raw: Range{100, 0}, Eng: Range{0, 1}},
	}
	for _, s := range scalings {
		for _, v := range []float64{-5, 0, 0.1, 1234.5678, 27648} {
			eng, err := s.ToEngineering(v)
			require.NoError(t, err)
			raw, err := s.ToRaw(eng)
			require.NoError(t, err)
			assert.InDelta(t, v, raw, 1e-6)

			raw, err = s.ToRaw(v)
			require.NoError(t, err)
			eng, err = s.ToEngineering(raw)
			require.NoError(t, err)
			assert.InDelta(t, v, eng, 1e-6)
		}
	}
}

func TestScalingZeroSpan(t *testing.T) {
	_, err := Scaling{Raw: Range{5, 5}, Eng: Range{0, 1}}.ToEngineering(1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Scaling{Raw: Range{0, 1}, Eng: Range{7, 7}}.ToRaw(1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScalingNonFinite(t *testing.T) {
	s := Scaling{Raw: Range{0, 1}, Eng: Range{0, 1}}
	_, err := s.ToEngineering(math.Inf(1))
	assert.ErrorIs(t, err, ErrNoResult)

	_, err = Scaling{Raw: Range{0, math.NaN()}, Eng: Range{0, 1}}.ToEngineering(1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	huge := Scaling{Raw: Range{0, 1e-300}, Eng: Range{0, 1e300}}
	_, err = huge.ToEngineering(1e300)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestScalingIdempotent(t *testing.T) {
	s := Scaling{Raw: Range{0, 32767}, Eng: Range{0, 250}}
	a, _ := s.ToEngineering(12345)
	b, _ := s.ToEngineering(12345)
	assert.Equal(t, a, b)
}

func TestResolveRawRange(t *testing.T) {
	set := tables.Default()
	custom := Range{Min: 4, Max: 20}

	r, mode, err := ResolveRawRange(set, tables.PlatformCustom, custom)
	require.NoError(t, err)
	assert.Equal(t, custom, r)
	assert.Equal(t, FieldEditable, mode)

	r, mode, err = ResolveRawRange(set, "", custom)
	require.NoError(t, err)
	assert.Equal(t, custom, r)
	assert.Equal(t, FieldEditable, mode)

	r, mode, err = ResolveRawRange(set, tables.PlatformSiemensS7, custom)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 0, Max: 27648}, r)
	assert.Equal(t, FieldLocked, mode)

	_, _, err = ResolveRawRange(set, "beckhoff", custom)
	assert.ErrorIs(t, err, ErrNotAvailable)
}
