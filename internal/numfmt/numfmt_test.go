package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{" 7 ", 7, true},
		{"-3e2", -300, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"1,5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestQuantityTrimWhole(t *testing.T) {
	assert.Equal(t, "75", Quantity(75, 4, TrimWhole))
	assert.Equal(t, "37.5000", Quantity(37.5, 4, TrimWhole))
	assert.Equal(t, "0.3333", Quantity(1.0/3, 4, TrimWhole))
}

func TestQuantityTrimZeros(t *testing.T) {
	assert.Equal(t, "37.5", Quantity(37.5, 4, TrimZeros))
	assert.Equal(t, "373.15", Quantity(100+273.15, 4, TrimZeros))
	assert.Equal(t, "100", Quantity(100, 4, TrimZeros))
	assert.Equal(t, "1.25", Quantity(1.2500, 4, TrimZeros))
	assert.Equal(t, "0", Quantity(0.00001, 4, TrimZeros))
}

func TestQuantityNegativeZero(t *testing.T) {
	assert.Equal(t, "0", Quantity(-0.00001, 4, TrimZeros))
	assert.Equal(t, "0.00", Fixed(math.Copysign(0, -1), 2))
	assert.Equal(t, "-0.01", Fixed(-0.006, 2))
}

func TestQuantityNonFinite(t *testing.T) {
	assert.Equal(t, "", Quantity(math.NaN(), 4, TrimZeros))
	assert.Equal(t, "", Quantity(math.Inf(1), 2, TrimNone))
}

func TestAllFinite(t *testing.T) {
	assert.True(t, AllFinite(1, 2, 3))
	assert.False(t, AllFinite(1, math.NaN()))
	assert.True(t, AllFinite())
}
