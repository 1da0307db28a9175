package aggregate

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/health/formula"
	"Pulse/internal/health/measure"
)

func TestDeviation(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		reference float64
		want      float64
	}{
		{"equal", 100, 100, 0},
		{"above", 110, 100, 10},
		{"below", 90, 100, -10},
		{"rounds to two places", 101.2345, 100, 1.23},
		{"tiny positive never shows zero", 100.001, 100, 0.01},
		{"tiny negative never shows zero", 99.999, 100, -0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deviation(tt.value, tt.reference))
		})
	}

	assert.False(t, math.Signbit(Deviation(100, 100)), "zero deviation is never negative zero")
}

func newSet() *Set {
	s := NewSet("bsa", formula.UnitSquareM)
	s.Add(formula.DuBois, 1.9964)
	s.Add(formula.Mosteller, 2.0)
	s.Add(formula.Haycock, 2.0066)
	return s
}

func TestMean(t *testing.T) {
	s := newSet()
	s.Skip(formula.Boyd, "not applicable")

	c, err := s.Mean(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Value)
	assert.Equal(t, PolicyMean, c.Policy)
	assert.Equal(t, 2, c.Precision)
	assert.Equal(t, []formula.ID{formula.DuBois, formula.Mosteller, formula.Haycock}, c.Methods)
	require.Len(t, c.Skipped, 1)
	assert.Equal(t, "Boyd", c.Skipped[0].Name)
	for _, r := range c.Results {
		assert.Nil(t, r.DeviationPct)
		assert.False(t, r.Reference)
	}

	r, ok := c.Result(formula.DuBois)
	require.True(t, ok)
	assert.Equal(t, 1.9964, r.Value, "per-formula values keep full precision")
}

func TestReference(t *testing.T) {
	c, err := newSet().Reference(formula.Mosteller, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Value)
	assert.Equal(t, PolicyReference, c.Policy)
	assert.Equal(t, formula.Mosteller, c.Reference)

	ref, _ := c.Result(formula.Mosteller)
	assert.True(t, ref.Reference)
	assert.Nil(t, ref.DeviationPct)

	dubois, _ := c.Result(formula.DuBois)
	require.NotNil(t, dubois.DeviationPct)
	assert.Equal(t, -0.18, *dubois.DeviationPct)
	haycock, _ := c.Result(formula.Haycock)
	assert.Equal(t, 0.33, *haycock.DeviationPct)
}

func TestWithDeviationsKeepsValue(t *testing.T) {
	mean, err := newSet().Mean(2)
	require.NoError(t, err)

	c, err := WithDeviations(mean, formula.Mosteller)
	require.NoError(t, err)
	assert.Equal(t, mean.Value, c.Value)
	assert.Equal(t, PolicyMean, c.Policy)
	assert.Equal(t, formula.Mosteller, c.Reference)
	assert.Nil(t, mean.Results[0].DeviationPct, "the input composite is not modified")
}

func TestErrors(t *testing.T) {
	empty := NewSet("bmr", formula.UnitKcalDay)
	empty.Skip(formula.KatchMcArdle, "body_fat not supplied")

	_, err := empty.Mean(0)
	assert.ErrorIs(t, err, ErrNoResults)
	_, err = empty.Reference(formula.MifflinStJeor, 0)
	assert.ErrorIs(t, err, ErrNoResults)

	_, err = newSet().Reference(formula.Boyd, 2)
	assert.ErrorIs(t, err, ErrMissingReference)
}

func TestSetIsolation(t *testing.T) {
	s := newSet()
	c, err := s.Mean(2)
	require.NoError(t, err)
	s.Add(formula.Boyd, 2.0074)

	assert.Len(t, c.Results, 3, "later additions do not leak into an earlier composite")
	assert.Equal(t, 4, s.Len())
}

func TestAddWithin(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"inside", 18.5, true},
		{"lower bound", 2, true},
		{"negative", -8.9, false},
		{"above", 71, false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet("body_fat", formula.UnitPercent)
			assert.Equal(t, tt.ok, s.AddWithin(formula.Deurenberg, tt.value, measure.PlausibleBodyFat))
			if tt.ok {
				assert.Equal(t, 1, s.Len())
				return
			}
			assert.Zero(t, s.Len())
			c, err := s.Mean(1)
			assert.ErrorIs(t, err, ErrNoResults)
			assert.Empty(t, c.Skipped)
			assert.Len(t, s.skipped, 1)
			assert.Contains(t, s.skipped[0].Reason, "outside the plausible range 2-70")
		})
	}
}

func TestMethodsSerialized(t *testing.T) {
	s := newSet()
	s.Skip(formula.Boyd, "not applicable")
	c, err := s.Reference(formula.Mosteller, 2)
	require.NoError(t, err)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	var out struct {
		Methods []formula.ID `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, []formula.ID{formula.DuBois, formula.Mosteller, formula.Haycock}, out.Methods)
}
