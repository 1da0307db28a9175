package onerm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/health/formula"
	"Pulse/internal/health/measure"
)

func ptr(v float64) *float64 { return &v }

func TestCalculateHundredByEight(t *testing.T) {
	res, err := Calculate(Input{Weight: 100, Repetitions: 8})
	require.NoError(t, err)

	want := map[formula.ID]float64{
		formula.Brzycki:  124.1,
		formula.Epley:    126.7,
		formula.Lander:   125.1,
		formula.OConner:  120.0,
		formula.Lombardi: 123.1,
	}
	require.Len(t, res.OneRepMax.Results, len(want))
	for id, v := range want {
		r, ok := res.OneRepMax.Result(id)
		require.True(t, ok, id)
		assert.Equal(t, v, measure.Round(r.Value, 1), id)
	}
	assert.Equal(t, 123.8, res.OneRepMax.Value)
	assert.Equal(t, formula.UnitKg, res.OneRepMax.Unit)
	assert.Nil(t, res.Strength)
	assert.NotEmpty(t, res.Narrative)
	assert.Subset(t, res.Recommendations, []string{"Stop immediately if you feel sharp pain, dizziness or chest discomfort."})
}

func TestCalculatePercentageTable(t *testing.T) {
	res, err := Calculate(Input{Weight: 100, Repetitions: 8})
	require.NoError(t, err)

	require.NotEmpty(t, res.Percentages)
	assert.Equal(t, 100.0, res.Percentages[0].Percent)
	assert.Equal(t, res.OneRepMax.Value, res.Percentages[0].Load)
	for _, row := range res.Percentages {
		assert.Equal(t, measure.Round(res.OneRepMax.Value*row.Percent/100, 1), row.Load)
	}
}

func TestCalculateRepetitionDomain(t *testing.T) {
	tests := []struct {
		reps int
		ok   bool
	}{
		{0, false},
		{1, true},
		{20, true},
		{21, false},
		{25, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("reps=%d", tt.reps), func(t *testing.T) {
			_, err := Calculate(Input{Weight: 80, Repetitions: tt.reps})
			if tt.ok {
				require.NoError(t, err)
				return
			}
			var ve measure.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "repetitions", ve.Field)
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"missing weight", Input{Repetitions: 5}, "weight"},
		{"heavy load", Input{Weight: 501, Repetitions: 5}, "weight"},
		{"body weight without sex", Input{Weight: 100, Repetitions: 5, BodyWeight: ptr(80), Lift: "squat"}, "sex"},
		{"body weight without lift", Input{Weight: 100, Repetitions: 5, BodyWeight: ptr(80), Sex: measure.Male}, "lift"},
		{"unknown lift", Input{Weight: 100, Repetitions: 5, Lift: "curl"}, "lift"},
		{"light body", Input{Weight: 100, Repetitions: 5, BodyWeight: ptr(10)}, "body_weight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			var ve measure.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCalculateStrengthStandard(t *testing.T) {
	res, err := Calculate(Input{Weight: 100, Repetitions: 8, BodyWeight: ptr(80), Sex: measure.Male, Lift: "Bench_Press"})
	require.NoError(t, err)

	require.NotNil(t, res.StrengthRatio)
	assert.Equal(t, 1.55, *res.StrengthRatio)
	require.NotNil(t, res.Strength)
	assert.Equal(t, "intermediate", res.Strength.Category)
	assert.Contains(t, res.Narrative, "intermediate standards")
	assert.Len(t, res.Summary().Classifications, 1)
}

func TestCalculateDeterministic(t *testing.T) {
	in := Input{Weight: 62.5, Repetitions: 11, BodyWeight: ptr(58), Sex: measure.Female, Lift: "deadlift"}
	a, err := Calculate(in)
	require.NoError(t, err)
	b, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHandler(t *testing.T) {
	h := &Handler{}

	body, _ := json.Marshal(Input{Weight: 100, Repetitions: 8})
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/onerm/calc", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 123.8, res.OneRepMax.Value)

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/onerm/calc", bytes.NewBufferString(`{"weight":100,"repetitions":25}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"repetitions"`)
}

func TestCalculateCorners(t *testing.T) {
	for _, load := range []float64{measure.LiftedLoad.Min, measure.LiftedLoad.Max} {
		for _, reps := range []int{int(measure.Repetitions.Min), int(measure.Repetitions.Max)} {
			t.Run(fmt.Sprintf("%gkg x%d", load, reps), func(t *testing.T) {
				res, err := Calculate(Input{Weight: load, Repetitions: reps})
				require.NoError(t, err)
				for _, r := range res.OneRepMax.Results {
					assert.False(t, math.IsNaN(r.Value) || math.IsInf(r.Value, 0), r.Formula)
					assert.GreaterOrEqual(t, r.Value, load, r.Formula)
				}
				for _, row := range res.Percentages {
					assert.Greater(t, row.Load, 0.0, row.Reps)
				}
				for _, z := range res.Zones {
					assert.Greater(t, z.Lower, 0.0, z.Name)
				}
			})
		}
	}
}
