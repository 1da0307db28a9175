package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/health/measure"
)

func TestTablesAreGapless(t *testing.T) {
	for _, table := range Tables() {
		t.Run(table.Metric, func(t *testing.T) {
			require.NotEmpty(t, table.Keys())
			for _, key := range table.Keys() {
				bands := table.BandsFor(key)
				require.NotEmpty(t, bands, "%+v", key)
				assert.True(t, math.IsInf(bands[0].Lower, -1), "%+v starts at -Inf", key)
				assert.True(t, math.IsInf(bands[len(bands)-1].Upper, 1), "%+v ends at +Inf", key)
				for i := 1; i < len(bands); i++ {
					assert.Equal(t, bands[i-1].Upper, bands[i].Lower, "%+v band %d", key, i)
				}
			}
		})
	}
}

func TestTablesFollowDirection(t *testing.T) {
	for _, table := range Tables() {
		t.Run(table.Metric, func(t *testing.T) {
			for _, key := range table.Keys() {
				bands := table.BandsFor(key)
				for i := 1; i < len(bands); i++ {
					prev, next := bands[i-1].Risk.Level(), bands[i].Risk.Level()
					if table.Direction == HigherIsWorse {
						assert.GreaterOrEqual(t, next, prev, "%+v band %d", key, i)
					} else {
						assert.LessOrEqual(t, next, prev, "%+v band %d", key, i)
					}
				}
			}
		})
	}
}

func TestBoundariesBelongToUpperBand(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		value float64
		cov   Covariates
		want  string
	}{
		{"BMI just below 25", BMI, 24.99, Covariates{Ethnicity: measure.EthnicityOther}, "normal"},
		{"BMI at 25", BMI, 25, Covariates{Ethnicity: measure.EthnicityOther}, "overweight"},
		{"BMI at 18.5", BMI, 18.5, Covariates{Ethnicity: measure.EthnicityEuropean}, "normal"},
		{"BMI 24 Asia-Pacific", BMI, 24, Covariates{Ethnicity: measure.EthnicityEastAsian}, "overweight"},
		{"BMI 24 international", BMI, 24, Covariates{Ethnicity: measure.EthnicityAfrican}, "normal"},
		{"BMI 45", BMI, 45, Covariates{Ethnicity: measure.EthnicityOther}, "obese_3"},
		{"BMI 45 Asia-Pacific", BMI, 45, Covariates{Ethnicity: measure.EthnicitySouthAsian}, "obese_2"},
		{"WHR male at 0.90", WaistHip, 0.90, Covariates{Sex: measure.Male}, "moderate"},
		{"WHR female at 0.85", WaistHip, 0.85, Covariates{Sex: measure.Female}, "high"},
		{"WHtR at 0.5", WaistHeight, 0.5, Covariates{}, "increased"},
		{"waist 94 male general", WaistCircumference, 94, Covariates{Sex: measure.Male, Ethnicity: measure.EthnicityEuropean}, "increased"},
		{"waist 90 male south asian", WaistCircumference, 90, Covariates{Sex: measure.Male, Ethnicity: measure.EthnicitySouthAsian}, "high"},
		{"waist 90 male hispanic", WaistCircumference, 90, Covariates{Sex: measure.Male, Ethnicity: measure.EthnicityHispanic}, "high"},
		{"body fat 25 male", BodyFat, 25, Covariates{Sex: measure.Male}, "obese"},
		{"body fat 25 female", BodyFat, 25, Covariates{Sex: measure.Female}, "average"},
		{"FFMI 22 male", FFMI, 22, Covariates{Sex: measure.Male}, "excellent"},
		{"VO2max 51 male 25", VO2Max, 51, Covariates{Sex: measure.Male, Age: 25}, "excellent"},
		{"VO2max 50 male 25", VO2Max, 50, Covariates{Sex: measure.Male, Age: 25}, "good"},
		{"VO2max 50 male 30", VO2Max, 50, Covariates{Sex: measure.Male, Age: 30}, "excellent"},
		{"VO2max female 65", VO2Max, 20, Covariates{Sex: measure.Female, Age: 65}, "very_poor"},
		{"bench 1.55 male", Strength, 1.55, Covariates{Sex: measure.Male, Lift: LiftBenchPress}, "intermediate"},
		{"deadlift 3.0 male", Strength, 3.0, Covariates{Sex: measure.Male, Lift: LiftDeadlift}, "elite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.table.Classify(tt.value, tt.cov)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Category)
			assert.Equal(t, tt.table.Metric, c.Metric)
		})
	}
}

func TestClassificationBounds(t *testing.T) {
	c, err := BMI.Classify(22, Covariates{Ethnicity: measure.EthnicityOther})
	require.NoError(t, err)
	require.NotNil(t, c.Lower)
	require.NotNil(t, c.Upper)
	assert.Equal(t, 18.5, *c.Lower)
	assert.Equal(t, 25.0, *c.Upper)
	assert.Equal(t, 1, c.Rank)
	assert.Equal(t, RiskLow, c.Risk)

	c, err = BMI.Classify(15, Covariates{Ethnicity: measure.EthnicityOther})
	require.NoError(t, err)
	assert.Nil(t, c.Lower, "the first band is open below")
	assert.Equal(t, 0, c.Rank)
}

func TestMissingCovariates(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		cov   Covariates
		field string
	}{
		{"sex", WaistHip, Covariates{}, "sex"},
		{"unknown sex", BodyFat, Covariates{Sex: "x"}, "sex"},
		{"age", VO2Max, Covariates{Sex: measure.Male}, "age"},
		{"ethnicity", BMI, Covariates{}, "ethnicity"},
		{"unknown ethnicity", WaistCircumference, Covariates{Sex: measure.Male, Ethnicity: "martian"}, "ethnicity"},
		{"lift", Strength, Covariates{Sex: measure.Male}, "lift"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.table.Classify(20, tt.cov)
			var ve measure.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestUnknownGroupIsGap(t *testing.T) {
	_, err := Strength.Classify(1.0, Covariates{Sex: measure.Male, Lift: "curl"})
	assert.ErrorIs(t, err, ErrClassificationGap)
}

func TestAddPanicsOnAuthoringMistakes(t *testing.T) {
	low := Category{Key: "low", Risk: RiskLow}
	high := Category{Key: "high", Risk: RiskHigh}

	assert.Panics(t, func() {
		newTable("t", HigherIsWorse, 0).add(Key{}, []float64{1, 2}, low, high)
	}, "cut and category counts differ")
	assert.Panics(t, func() {
		newTable("t", HigherIsWorse, 0).add(Key{}, []float64{2, 1}, low, low, high)
	}, "cuts not ascending")
	assert.Panics(t, func() {
		newTable("t", HigherIsWorse, 0).add(Key{}, []float64{1}, high, low)
	}, "risk falls in a higher-is-worse table")
	assert.Panics(t, func() {
		newTable("t", HigherIsBetter, 0).add(Key{}, []float64{1}, low, high)
	}, "risk rises in a higher-is-better table")
	assert.Panics(t, func() {
		tb := newTable("t", HigherIsWorse, 0)
		tb.add(Key{}, []float64{1}, low, high)
		tb.add(Key{}, []float64{1}, low, high)
	}, "duplicate key")
}
