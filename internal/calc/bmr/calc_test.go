package bmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

func ptr(v float64) *float64 { return &v }

var base = Input{Sex: measure.Male, Age: 30, Weight: 80, Height: 180}

func TestCalculateReference(t *testing.T) {
	res, err := Calculate(base)
	require.NoError(t, err)

	assert.Equal(t, aggregate.PolicyReference, res.BMR.Policy)
	assert.Equal(t, formula.MifflinStJeor, res.BMR.Reference)
	assert.Equal(t, 1780.0, res.BMR.Value)
	require.Len(t, res.BMR.Results, 2)

	hb, ok := res.BMR.Result(formula.HarrisBenedict)
	require.True(t, ok)
	require.NotNil(t, hb.DeviationPct)
	assert.Equal(t, 4.14, *hb.DeviationPct)

	require.Len(t, res.BMR.Skipped, 2)
	assert.Equal(t, formula.KatchMcArdle, res.BMR.Skipped[0].Formula)
	assert.Nil(t, res.LeanMass)
	assert.Nil(t, res.Goals)
	assert.Subset(t, res.Recommendations, interpret.ClinicalSafety)
}

func TestCalculateLeanMassFormulas(t *testing.T) {
	in := base
	in.BodyFat = ptr(20)
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, 1780.0, res.BMR.Value, "reference must not move when optional formulas join")
	assert.Empty(t, res.BMR.Skipped)
	require.NotNil(t, res.LeanMass)
	assert.Equal(t, 64.0, *res.LeanMass)

	km, _ := res.BMR.Result(formula.KatchMcArdle)
	assert.InDelta(t, 1752.4, km.Value, 1e-9)
	assert.Equal(t, -1.55, *km.DeviationPct)
	cu, _ := res.BMR.Result(formula.Cunningham)
	assert.Equal(t, 7.19, *cu.DeviationPct)

	hbWithout, _ := mustCalc(t, base).BMR.Result(formula.HarrisBenedict)
	hbWith, _ := res.BMR.Result(formula.HarrisBenedict)
	assert.Equal(t, hbWithout, hbWith)
}

func TestCalculateActivity(t *testing.T) {
	in := base
	in.Activity = " Moderate "
	res, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, res.TDEE, 5)
	assert.Equal(t, 2136.0, res.TDEE[0].Calories)
	assert.Equal(t, 2759.0, res.TDEE[2].Calories)
	require.Len(t, res.Goals, 5)
	assert.Equal(t, "loss", res.Goals[0].Goal)
	assert.Equal(t, 2259.0, res.Goals[0].Calories)
	assert.Equal(t, "moderate", res.Activity)
	assert.Len(t, res.Summary().Tables, 3)
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Input)
		field string
	}{
		{"no sex", func(in *Input) { in.Sex = "" }, "sex"},
		{"bad sex", func(in *Input) { in.Sex = "x" }, "sex"},
		{"child", func(in *Input) { in.Age = 10 }, "age"},
		{"no height", func(in *Input) { in.Height = 0 }, "height"},
		{"body fat", func(in *Input) { in.BodyFat = ptr(70) }, "body_fat"},
		{"activity", func(in *Input) { in.Activity = "couch" }, "activity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mut(&in)
			_, err := Calculate(in)
			var ve measure.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func mustCalc(t *testing.T, in Input) Result {
	t.Helper()
	res, err := Calculate(in)
	require.NoError(t, err)
	return res
}

func TestCalculateCorners(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		invalid bool
		methods []formula.ID
	}{
		{
			name:    "light short young",
			in:      Input{Sex: measure.Male, Age: 15, Weight: 20, Height: 100, Activity: "moderate"},
			methods: []formula.ID{formula.MifflinStJeor, formula.HarrisBenedict},
		},
		{
			name:    "light short old",
			in:      Input{Sex: measure.Male, Age: 120, Weight: 20, Height: 100},
			invalid: true,
		},
		{
			name:    "light short old with body fat",
			in:      Input{Sex: measure.Male, Age: 120, Weight: 20, Height: 100, BodyFat: ptr(50)},
			invalid: true,
		},
		{
			name:    "light old woman",
			in:      Input{Sex: measure.Female, Age: 120, Weight: 20, Height: 141},
			invalid: true,
		},
		{
			name:    "impossible build",
			in:      Input{Sex: measure.Female, Age: 30, Weight: 300, Height: 100},
			invalid: true,
		},
		{
			name:    "heavy tall lean",
			in:      Input{Sex: measure.Male, Age: 15, Weight: 300, Height: 250, BodyFat: ptr(3), Activity: "sedentary"},
			methods: []formula.ID{formula.MifflinStJeor, formula.HarrisBenedict},
		},
		{
			name: "heavy tall old",
			in:   Input{Sex: measure.Female, Age: 120, Weight: 300, Height: 250, BodyFat: ptr(50)},
			methods: []formula.ID{
				formula.MifflinStJeor, formula.HarrisBenedict, formula.KatchMcArdle, formula.Cunningham,
			},
		},
		{
			name:    "heaviest short old",
			in:      Input{Sex: measure.Female, Age: 120, Weight: 100, Height: 100, Activity: "sedentary"},
			methods: []formula.ID{formula.MifflinStJeor, formula.HarrisBenedict},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.in)
			if tt.invalid {
				var ve measure.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "weight", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.methods, res.BMR.Methods)
			for _, r := range res.BMR.Results {
				assert.True(t, measure.PlausibleBMR.Contains(r.Value), r.Formula)
			}
			for _, s := range res.BMR.Skipped {
				if tt.in.BodyFat != nil {
					assert.Contains(t, s.Reason, "plausible", s.Formula)
				}
			}
			for _, l := range res.TDEE {
				assert.Greater(t, l.Calories, res.BMR.Value, l.Level)
			}
			for _, g := range res.Goals {
				assert.GreaterOrEqual(t, g.Calories, res.BMR.Value, g.Goal)
			}
		})
	}
}
