package bmr

import (
	"errors"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "bmr"

type Input struct {
	Sex      measure.Sex `json:"sex"`
	Age      float64     `json:"age"`
	Weight   float64     `json:"weight"` // kg
	Height   float64     `json:"height"` // cm
	BodyFat  *float64    `json:"body_fat,omitempty"`
	Activity string      `json:"activity,omitempty"`
}

type Result struct {
	BMR             aggregate.Composite       `json:"bmr"`
	LeanMass        *float64                  `json:"lean_mass,omitempty"`
	TDEE            []interpret.ActivityLevel `json:"tdee"`
	Activity        string                    `json:"activity,omitempty"`
	Goals           []interpret.GoalCalories  `json:"goals,omitempty"`
	Narrative       string                    `json:"narrative"`
	Recommendations []string                  `json:"recommendations"`
	Notes           string                    `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	in.Activity = measure.Normalize(in.Activity)
	if err := measure.First(
		measure.RequireSex(in.Sex),
		measure.Require("age", in.Age, measure.Age),
		measure.Require("weight", in.Weight, measure.BodyWeight),
		measure.Require("height", in.Height, measure.Height),
		measure.RequireBuild(in.Weight, in.Height),
		measure.Optional("body_fat", in.BodyFat, measure.BodyFat),
	); err != nil {
		return Result{}, err
	}
	if in.Activity != "" && !interpret.ValidActivity(in.Activity) {
		return Result{}, measure.Invalid("activity", "unknown value %q", in.Activity)
	}

	male := in.Sex == measure.Male
	set := aggregate.NewSet(Metric, formula.UnitKcalDay)
	set.AddWithin(formula.MifflinStJeor, formula.MifflinStJeorBMR(male, in.Weight, in.Height, in.Age), measure.PlausibleBMR)
	set.AddWithin(formula.HarrisBenedict, formula.HarrisBenedictBMR(male, in.Weight, in.Height, in.Age), measure.PlausibleBMR)

	var lean *float64
	if in.BodyFat != nil {
		lbm := formula.LeanMass(in.Weight, *in.BodyFat)
		set.AddWithin(formula.KatchMcArdle, formula.KatchMcArdleBMR(lbm), measure.PlausibleBMR)
		set.AddWithin(formula.Cunningham, formula.CunninghamBMR(lbm), measure.PlausibleBMR)
		rounded := measure.Round(lbm, 1)
		lean = &rounded
	} else {
		set.Skip(formula.KatchMcArdle, "body_fat not supplied")
		set.Skip(formula.Cunningham, "body_fat not supplied")
	}

	bmr, err := set.Reference(formula.MifflinStJeor, 0)
	if errors.Is(err, aggregate.ErrMissingReference) || errors.Is(err, aggregate.ErrNoResults) {
		return Result{}, measure.Invalid("weight", "%s gives no plausible BMR for these measurements", formula.MifflinStJeor.Name())
	}
	if err != nil {
		return Result{}, err
	}
	narrative, err := interpret.Narrative(Metric, interpret.Overall)
	if err != nil {
		return Result{}, err
	}
	advice, err := interpret.Advice(Metric, interpret.Overall, interpret.ClinicalSafety)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		BMR:             bmr,
		LeanMass:        lean,
		TDEE:            interpret.TDEE(bmr.Value),
		Activity:        in.Activity,
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Mifflin-St Jeor is the reference; lean-mass equations need a body-fat percentage.",
	}
	for _, lvl := range res.TDEE {
		if lvl.Level == in.Activity {
			res.Goals = interpret.Goals(lvl.Calories, bmr.Value)
		}
	}
	return res, nil
}

func (r Result) Summary() analysis.Summary {
	tdee := analysis.Table{Title: "Daily energy expenditure", Columns: []string{"Activity", "Factor", "kcal/day"}}
	for _, l := range r.TDEE {
		tdee.Rows = append(tdee.Rows, []string{l.Description, analysis.Number(l.Factor, 3), analysis.Number(l.Calories, 0)})
	}
	s := analysis.Summary{
		Calculator:      "bmr",
		Title:           "Basal metabolic rate",
		Primary:         r.BMR,
		Tables:          []analysis.Table{analysis.Breakdown(r.BMR), tdee},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
	if len(r.Goals) > 0 {
		goals := analysis.Table{Title: "Calorie targets (" + r.Activity + ")", Columns: []string{"Goal", "kcal/day"}}
		for _, g := range r.Goals {
			goals.Rows = append(goals.Rows, []string{g.Goal, analysis.Number(g.Calories, 0)})
		}
		s.Tables = append(s.Tables, goals)
	}
	return s
}
