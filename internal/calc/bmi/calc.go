package bmi

import (
	"fmt"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/classify"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "bmi"

type Input struct {
	Weight    float64           `json:"weight"` // kg
	Height    float64           `json:"height"` // cm
	Ethnicity measure.Ethnicity `json:"ethnicity"`
}

type Result struct {
	BMI             aggregate.Composite     `json:"bmi"`
	Category        classify.Classification `json:"category"`
	HealthyWeight   interpret.WeightRange   `json:"healthy_weight"`
	PonderalIndex   float64                 `json:"ponderal_index"`
	Narrative       string                  `json:"narrative"`
	Recommendations []string                `json:"recommendations"`
	Notes           string                  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := measure.First(
		measure.Require("weight", in.Weight, measure.BodyWeight),
		measure.Require("height", in.Height, measure.Height),
		measure.RequireEthnicity(in.Ethnicity),
	); err != nil {
		return Result{}, err
	}
	cov := classify.Covariates{Ethnicity: in.Ethnicity}
	hM := in.Height / 100

	set := aggregate.NewSet(Metric, formula.UnitKgM2)
	set.Add(formula.Quetelet, formula.BMI(in.Weight, hM))
	set.Add(formula.Trefethen, formula.TrefethenBMI(in.Weight, hM))
	bmi, err := set.Reference(formula.Quetelet, 1)
	if err != nil {
		return Result{}, err
	}

	cls, err := classify.BMI.Classify(bmi.Value, cov)
	if err != nil {
		return Result{}, err
	}
	healthy, err := healthyWeight(cov, hM)
	if err != nil {
		return Result{}, err
	}
	narrative, err := interpret.Narrative(Metric, cls.Category)
	if err != nil {
		return Result{}, err
	}
	advice, err := interpret.Advice(Metric, cls.Category, interpret.ClinicalSafety)
	if err != nil {
		return Result{}, err
	}
	return Result{
		BMI:             bmi,
		Category:        cls,
		HealthyWeight:   healthy,
		PonderalIndex:   measure.Round(formula.PonderalIndex(in.Weight, hM), 1),
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Asia-Pacific cut-offs apply to South and East Asian groups.",
	}, nil
}

// healthyWeight maps the normal band of the applicable table back to kg.
func healthyWeight(cov classify.Covariates, hM float64) (interpret.WeightRange, error) {
	bands, err := classify.BMI.Bands(cov)
	if err != nil {
		return interpret.WeightRange{}, err
	}
	for _, b := range bands {
		if b.Key == "normal" {
			return interpret.HealthyWeight(b.Lower, b.Upper, hM), nil
		}
	}
	return interpret.WeightRange{}, fmt.Errorf("%w: bmi table has no normal band", classify.ErrClassificationGap)
}

func (r Result) Summary() analysis.Summary {
	extra := analysis.Table{
		Title:   "Related measures",
		Columns: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Healthy weight range", analysis.Number(r.HealthyWeight.Lower, 1) + " - " + analysis.Number(r.HealthyWeight.Upper, 1) + " kg"},
			{"Ponderal index", analysis.Number(r.PonderalIndex, 1) + " kg/m³"},
		},
	}
	return analysis.Summary{
		Calculator:      "bmi",
		Title:           "Body mass index",
		Primary:         r.BMI,
		Classifications: []classify.Classification{r.Category},
		Tables:          []analysis.Table{analysis.Breakdown(r.BMI), extra},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
}
