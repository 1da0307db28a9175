package ffmi

import (
	"errors"
	"fmt"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/classify"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "ffmi"

const jamesMaxBMI = 40.0

type Input struct {
	Sex     measure.Sex `json:"sex"`
	Weight  float64     `json:"weight"` // kg
	Height  float64     `json:"height"` // cm
	BodyFat *float64    `json:"body_fat,omitempty"`
}

type Result struct {
	FFMI            aggregate.Composite     `json:"ffmi"`
	LeanMass        aggregate.Composite     `json:"lean_mass"`
	Normalized      float64                 `json:"normalized_ffmi"`
	Category        classify.Classification `json:"category"`
	Narrative       string                  `json:"narrative"`
	Recommendations []string                `json:"recommendations"`
	Notes           string                  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := measure.First(
		measure.RequireSex(in.Sex),
		measure.Require("weight", in.Weight, measure.BodyWeight),
		measure.Require("height", in.Height, measure.Height),
		measure.RequireBuild(in.Weight, in.Height),
		measure.Optional("body_fat", in.BodyFat, measure.BodyFat),
	); err != nil {
		return Result{}, err
	}
	male := in.Sex == measure.Male
	hM := in.Height / 100

	lean := aggregate.NewSet("lean_mass", formula.UnitKg)
	index := aggregate.NewSet(Metric, formula.UnitKgM2)
	skip := func(id formula.ID, reason string) {
		lean.Skip(id, reason)
		index.Skip(id, reason)
	}
	// Lean mass must leave a plausible body-fat share of the weight.
	plausible := measure.Range{
		Min:  formula.LeanMass(in.Weight, measure.PlausibleBodyFat.Max),
		Max:  formula.LeanMass(in.Weight, measure.PlausibleBodyFat.Min),
		Unit: string(formula.UnitKg),
	}
	add := func(id formula.ID, lbm float64) {
		if !plausible.Contains(lbm) {
			skip(id, fmt.Sprintf("estimate %.1f kg outside the plausible range %.1f-%.1f kg for this weight", lbm, plausible.Min, plausible.Max))
			return
		}
		lean.Add(id, lbm)
		index.Add(id, formula.FFMI(lbm, hM))
	}

	// Measured body fat is the reference; without it Boer takes its place.
	ref := formula.Boer
	if in.BodyFat != nil {
		add(formula.LeanMassFromBodyFat, formula.LeanMass(in.Weight, *in.BodyFat))
		ref = formula.LeanMassFromBodyFat
	} else {
		skip(formula.LeanMassFromBodyFat, "body_fat not supplied")
	}
	add(formula.Boer, formula.BoerLeanMass(male, in.Weight, in.Height))
	// James turns over and goes negative in obesity.
	if bmi := formula.BMI(in.Weight, hM); bmi > jamesMaxBMI {
		skip(formula.James, fmt.Sprintf("not valid above BMI %g (BMI %.1f)", jamesMaxBMI, bmi))
	} else {
		add(formula.James, formula.JamesLeanMass(male, in.Weight, in.Height))
	}
	add(formula.Hume, formula.HumeLeanMass(male, in.Weight, in.Height))

	lbm, err := lean.Reference(ref, 1)
	if errors.Is(err, aggregate.ErrMissingReference) || errors.Is(err, aggregate.ErrNoResults) {
		return Result{}, measure.Invalid("weight", "%s gives no plausible lean mass for %g kg at %g cm", ref.Name(), in.Weight, in.Height)
	}
	if err != nil {
		return Result{}, err
	}
	ffmi, err := index.Reference(ref, 1)
	if err != nil {
		return Result{}, err
	}
	r, _ := ffmi.Result(ref)
	normalized := measure.Round(formula.NormalizedFFMI(r.Value, hM), 1)

	cls, err := classify.FFMI.Classify(normalized, classify.Covariates{Sex: in.Sex})
	if err != nil {
		return Result{}, err
	}
	narrative, err := interpret.Narrative(Metric, cls.Category)
	if err != nil {
		return Result{}, err
	}
	advice, err := interpret.Advice(Metric, cls.Category, interpret.TrainingSafety)
	if err != nil {
		return Result{}, err
	}
	return Result{
		FFMI:            ffmi,
		LeanMass:        lbm,
		Normalized:      normalized,
		Category:        cls,
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Categories use FFMI normalised to 1.8 m.",
	}, nil
}

func (r Result) Summary() analysis.Summary {
	return analysis.Summary{
		Calculator:      "ffmi",
		Title:           "Fat-free mass index",
		Primary:         r.FFMI,
		Extra:           []aggregate.Composite{r.LeanMass},
		Classifications: []classify.Classification{r.Category},
		Tables:          []analysis.Table{analysis.Breakdown(r.FFMI), analysis.Breakdown(r.LeanMass)},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
}
