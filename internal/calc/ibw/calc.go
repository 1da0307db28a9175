package ibw

import (
	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "ibw"

type Input struct {
	Sex    measure.Sex `json:"sex"`
	Height float64     `json:"height"`           // cm
	Weight *float64    `json:"weight,omitempty"` // actual weight, kg
}

type Result struct {
	IBW             aggregate.Composite     `json:"ibw"`
	Dosing          *interpret.DosingWeight `json:"dosing,omitempty"`
	Narrative       string                  `json:"narrative"`
	Recommendations []string                `json:"recommendations"`
	Notes           string                  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := measure.First(
		measure.RequireSex(in.Sex),
		measure.Require("height", in.Height, measure.IBWHeight),
		measure.Optional("weight", in.Weight, measure.BodyWeight),
	); err != nil {
		return Result{}, err
	}
	male := in.Sex == measure.Male
	inches := formula.InchesOver5Feet(in.Height)

	set := aggregate.NewSet(Metric, formula.UnitKg)
	set.Add(formula.Devine, formula.DevineIBW(male, inches))
	set.Add(formula.Robinson, formula.RobinsonIBW(male, inches))
	set.Add(formula.Miller, formula.MillerIBW(male, inches))
	set.Add(formula.Hamwi, formula.HamwiIBW(male, inches))
	ibw, err := set.Reference(formula.Devine, 1)
	if err != nil {
		return Result{}, err
	}

	narrative, err := interpret.Narrative(Metric, interpret.Overall)
	if err != nil {
		return Result{}, err
	}
	universal := [][]string{interpret.ClinicalSafety}
	res := Result{
		IBW:       ibw,
		Narrative: narrative,
		Notes:     "Devine is the reference; formulas are validated from 130 cm upward.",
	}
	if in.Weight != nil {
		devine, _ := ibw.Result(formula.Devine)
		dw := interpret.ChooseDosingWeight(devine.Value, *in.Weight)
		res.Dosing = &dw
		universal = [][]string{interpret.DosingSafety, interpret.ClinicalSafety}
	}
	res.Recommendations, err = interpret.Advice(Metric, interpret.Overall, universal...)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (r Result) Summary() analysis.Summary {
	s := analysis.Summary{
		Calculator:      "ibw",
		Title:           "Ideal body weight",
		Primary:         r.IBW,
		Tables:          []analysis.Table{analysis.Breakdown(r.IBW)},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
	if d := r.Dosing; d != nil {
		s.Tables = append(s.Tables, analysis.Table{
			Title:   "Dosing weight",
			Columns: []string{"Measure", "Value"},
			Rows: [][]string{
				{"Actual weight, % of ideal", analysis.Number(d.PercentOfIdeal, 1) + "%"},
				{"Adjusted body weight", analysis.Number(d.Adjusted, 1) + " kg"},
				{"Dosing basis", d.Basis},
				{"Dosing weight", analysis.Number(d.Weight, 1) + " kg"},
			},
		})
	}
	return s
}
