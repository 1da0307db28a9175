package bsa

import (
	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "bsa"

type Input struct {
	Weight float64 `json:"weight"` // kg
	Height float64 `json:"height"` // cm
}

type Result struct {
	BSA             aggregate.Composite     `json:"bsa"`
	Doses           []interpret.DoseExample `json:"doses"`
	Comparison      []interpret.Comparison  `json:"comparison"`
	Narrative       string                  `json:"narrative"`
	Recommendations []string                `json:"recommendations"`
	Notes           string                  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := measure.First(
		measure.Require("weight", in.Weight, measure.BodyWeight),
		measure.Require("height", in.Height, measure.Height),
	); err != nil {
		return Result{}, err
	}

	set := aggregate.NewSet(Metric, formula.UnitSquareM)
	set.Add(formula.DuBois, formula.DuBoisBSA(in.Weight, in.Height))
	set.Add(formula.Mosteller, formula.MostellerBSA(in.Weight, in.Height))
	set.Add(formula.Haycock, formula.HaycockBSA(in.Weight, in.Height))
	set.Add(formula.GehanGeorge, formula.GehanGeorgeBSA(in.Weight, in.Height))
	set.Add(formula.Boyd, formula.BoydBSA(in.Weight, in.Height))
	mean, err := set.Mean(2)
	if err != nil {
		return Result{}, err
	}
	bsa, err := aggregate.WithDeviations(mean, formula.Mosteller)
	if err != nil {
		return Result{}, err
	}

	narrative, err := interpret.Narrative(Metric, interpret.Overall)
	if err != nil {
		return Result{}, err
	}
	advice, err := interpret.Advice(Metric, interpret.Overall, interpret.DosingSafety, interpret.ClinicalSafety)
	if err != nil {
		return Result{}, err
	}
	return Result{
		BSA:             bsa,
		Doses:           interpret.Doses(bsa.Value),
		Comparison:      interpret.CompareBSA(bsa.Value),
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Mean of five equations; deviations are relative to Mosteller.",
	}, nil
}

func (r Result) Summary() analysis.Summary {
	doses := analysis.Table{Title: "Dose examples", Columns: []string{"Agent", "mg/m²", "Dose (mg)", "Schedule"}}
	for _, d := range r.Doses {
		doses.Rows = append(doses.Rows, []string{d.Agent, analysis.Number(d.PerSqM, 0), analysis.Number(d.Dose, 0), d.Comment})
	}
	cmp := analysis.Table{Title: "Compared with average adults", Columns: []string{"Reference", "m²", "Difference", "%"}}
	for _, c := range r.Comparison {
		cmp.Rows = append(cmp.Rows, []string{c.Reference, analysis.Number(c.Value, 2), analysis.Number(c.Diff, 2), analysis.Number(c.DiffPct, 1)})
	}
	return analysis.Summary{
		Calculator:      "bsa",
		Title:           "Body surface area",
		Primary:         r.BSA,
		Tables:          []analysis.Table{analysis.Breakdown(r.BSA), doses, cmp},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
}
