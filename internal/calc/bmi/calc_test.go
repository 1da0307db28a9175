package bmi

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/health/formula"
	"Pulse/internal/health/measure"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Weight: 80, Height: 180, Ethnicity: measure.EthnicityEuropean})
	require.NoError(t, err)

	assert.Equal(t, 24.7, res.BMI.Value)
	assert.Equal(t, formula.Quetelet, res.BMI.Reference)
	tr, ok := res.BMI.Result(formula.Trefethen)
	require.True(t, ok)
	assert.Equal(t, -3.1, *tr.DeviationPct)

	assert.Equal(t, "normal", res.Category.Category)
	assert.Equal(t, 59.9, res.HealthyWeight.Lower)
	assert.Equal(t, 81.0, res.HealthyWeight.Upper)
	assert.Equal(t, 13.7, res.PonderalIndex)
}

func TestCalculateAsiaPacific(t *testing.T) {
	res, err := Calculate(Input{Weight: 80, Height: 180, Ethnicity: measure.EthnicityEastAsian})
	require.NoError(t, err)

	assert.Equal(t, "overweight", res.Category.Category)
	assert.Equal(t, 74.5, res.HealthyWeight.Upper)
}

func TestCalculateBoundary(t *testing.T) {
	// 81 kg at 180 cm is exactly 25.0.
	res, err := Calculate(Input{Weight: 81, Height: 180, Ethnicity: measure.EthnicityOther})
	require.NoError(t, err)
	assert.Equal(t, 25.0, res.BMI.Value)
	assert.Equal(t, "overweight", res.Category.Category)
}

func TestCalculateRequiresEthnicity(t *testing.T) {
	_, err := Calculate(Input{Weight: 80, Height: 180})
	var ve measure.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ethnicity", ve.Field)
}

func TestCalculateCorners(t *testing.T) {
	for _, w := range []float64{measure.BodyWeight.Min, measure.BodyWeight.Max} {
		for _, h := range []float64{measure.Height.Min, measure.Height.Max} {
			t.Run(fmt.Sprintf("%gkg %gcm", w, h), func(t *testing.T) {
				res, err := Calculate(Input{Weight: w, Height: h, Ethnicity: measure.EthnicityOther})
				require.NoError(t, err)
				for _, r := range res.BMI.Results {
					assert.False(t, math.IsNaN(r.Value) || math.IsInf(r.Value, 0), r.Formula)
					assert.Greater(t, r.Value, 0.0, r.Formula)
				}
				assert.Greater(t, res.PonderalIndex, 0.0)
				assert.Greater(t, res.HealthyWeight.Lower, 0.0)
				assert.Greater(t, res.HealthyWeight.Upper, res.HealthyWeight.Lower)
				assert.NotEmpty(t, res.Category.Category)
			})
		}
	}
}
