package bodyfat

import (
	"fmt"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/classify"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "body_fat"

// deurenbergBMI is the BMI range the Deurenberg equation was fitted on.
var deurenbergBMI = measure.Range{Min: 15, Max: 45, Unit: "kg/m²"}

// Skinfolds in mm. Only the sites a formula needs have to be measured.
type Skinfolds struct {
	Chest       *float64 `json:"chest,omitempty"`
	Midaxillary *float64 `json:"midaxillary,omitempty"`
	Triceps     *float64 `json:"triceps,omitempty"`
	Subscapular *float64 `json:"subscapular,omitempty"`
	Abdomen     *float64 `json:"abdomen,omitempty"`
	Suprailiac  *float64 `json:"suprailiac,omitempty"`
	Thigh       *float64 `json:"thigh,omitempty"`
	Biceps      *float64 `json:"biceps,omitempty"`
}

type Input struct {
	Sex       measure.Sex `json:"sex"`
	Age       float64     `json:"age"`
	Weight    float64     `json:"weight"` // kg
	Height    float64     `json:"height"` // cm
	Skinfolds Skinfolds   `json:"skinfolds"`
	Waist     *float64    `json:"waist,omitempty"` // cm, at the navel
	Neck      *float64    `json:"neck,omitempty"`
	Hip       *float64    `json:"hip,omitempty"`
}

type Result struct {
	BodyFat         aggregate.Composite     `json:"body_fat"`
	Category        classify.Classification `json:"category"`
	FatMass         float64                 `json:"fat_mass"`
	LeanMass        float64                 `json:"lean_mass"`
	Narrative       string                  `json:"narrative"`
	Recommendations []string                `json:"recommendations"`
	Notes           string                  `json:"notes"`
}

func validate(in Input) error {
	sf := in.Skinfolds
	return measure.First(
		measure.RequireSex(in.Sex),
		measure.Require("age", in.Age, measure.Age),
		measure.Require("weight", in.Weight, measure.BodyWeight),
		measure.Require("height", in.Height, measure.Height),
		measure.RequireBuild(in.Weight, in.Height),
		measure.Optional("skinfolds.chest", sf.Chest, measure.Skinfold),
		measure.Optional("skinfolds.midaxillary", sf.Midaxillary, measure.Skinfold),
		measure.Optional("skinfolds.triceps", sf.Triceps, measure.Skinfold),
		measure.Optional("skinfolds.subscapular", sf.Subscapular, measure.Skinfold),
		measure.Optional("skinfolds.abdomen", sf.Abdomen, measure.Skinfold),
		measure.Optional("skinfolds.suprailiac", sf.Suprailiac, measure.Skinfold),
		measure.Optional("skinfolds.thigh", sf.Thigh, measure.Skinfold),
		measure.Optional("skinfolds.biceps", sf.Biceps, measure.Skinfold),
		measure.Optional("waist", in.Waist, measure.Circumference),
		measure.Optional("neck", in.Neck, measure.Neck),
		measure.Optional("hip", in.Hip, measure.Circumference),
	)
}

// sum adds the supplied sites; ok is false when any of them is missing.
func sum(sites ...*float64) (total float64, ok bool) {
	for _, s := range sites {
		if s == nil {
			return 0, false
		}
		total += *s
	}
	return total, true
}

func Calculate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}
	cov := classify.Covariates{Sex: in.Sex}
	male := in.Sex == measure.Male
	sf := in.Skinfolds

	set := aggregate.NewSet(Metric, formula.UnitPercent)

	jp3Sites := []*float64{sf.Triceps, sf.Suprailiac, sf.Thigh}
	jp3Need := "triceps, suprailiac and thigh skinfolds required"
	if male {
		jp3Sites = []*float64{sf.Chest, sf.Abdomen, sf.Thigh}
		jp3Need = "chest, abdomen and thigh skinfolds required"
	}
	if s, ok := sum(jp3Sites...); ok {
		set.AddWithin(formula.JacksonPollock3, formula.SiriBodyFat(formula.JacksonPollock3Density(male, s, in.Age)), measure.PlausibleBodyFat)
	} else {
		set.Skip(formula.JacksonPollock3, jp3Need)
	}

	if s, ok := sum(sf.Chest, sf.Midaxillary, sf.Triceps, sf.Subscapular, sf.Abdomen, sf.Suprailiac, sf.Thigh); ok {
		set.AddWithin(formula.JacksonPollock7, formula.SiriBodyFat(formula.JacksonPollock7Density(male, s, in.Age)), measure.PlausibleBodyFat)
	} else {
		set.Skip(formula.JacksonPollock7, "all seven skinfold sites required")
	}

	if s, ok := sum(sf.Biceps, sf.Triceps, sf.Subscapular, sf.Suprailiac); ok {
		set.AddWithin(formula.DurninWomersley, formula.SiriBodyFat(formula.DurninWomersleyDensity(male, s, in.Age)), measure.PlausibleBodyFat)
	} else {
		set.Skip(formula.DurninWomersley, "biceps, triceps, subscapular and suprailiac skinfolds required")
	}

	if reason := navyPrecondition(in); reason != "" {
		set.Skip(formula.USNavy, reason)
	} else {
		hip := 0.0
		if in.Hip != nil {
			hip = *in.Hip
		}
		set.AddWithin(formula.USNavy, formula.USNavyBodyFat(male, *in.Waist, *in.Neck, hip, in.Height), measure.PlausibleBodyFat)
	}

	bmi := formula.BMI(in.Weight, in.Height/100)
	if !deurenbergBMI.Contains(bmi) {
		set.Skip(formula.Deurenberg, fmt.Sprintf("BMI %.1f outside %g-%g", bmi, deurenbergBMI.Min, deurenbergBMI.Max))
	} else {
		set.AddWithin(formula.Deurenberg, formula.DeurenbergBodyFat(male, bmi, in.Age), measure.PlausibleBodyFat)
	}

	if set.Len() == 0 {
		return Result{}, measure.Invalid("skinfolds", "no body-fat equation gives a plausible estimate; add skinfolds or circumferences")
	}
	bf, err := set.Mean(1)
	if err != nil {
		return Result{}, err
	}
	cls, err := classify.BodyFat.Classify(bf.Value, cov)
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

	fat := measure.Round(in.Weight*bf.Value/100, 1)
	return Result{
		BodyFat:         bf,
		Category:        cls,
		FatMass:         fat,
		LeanMass:        measure.Round(in.Weight-fat, 1),
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Skinfold densities are converted with the Siri equation.",
	}, nil
}

func navyPrecondition(in Input) string {
	male := in.Sex == measure.Male
	switch {
	case in.Waist == nil || in.Neck == nil:
		return "waist and neck circumferences required"
	case !male && in.Hip == nil:
		return "hip circumference required for women"
	case male && *in.Waist <= *in.Neck:
		return "waist must exceed neck circumference"
	case !male && *in.Waist+*in.Hip <= *in.Neck:
		return "waist plus hip must exceed neck circumference"
	}
	return ""
}

func (r Result) Summary() analysis.Summary {
	mass := analysis.Table{
		Title:   "Body composition",
		Columns: []string{"Component", "kg"},
		Rows: [][]string{
			{"Fat mass", analysis.Number(r.FatMass, 1)},
			{"Lean mass", analysis.Number(r.LeanMass, 1)},
		},
	}
	return analysis.Summary{
		Calculator:      "bodyfat",
		Title:           "Body fat",
		Primary:         r.BodyFat,
		Classifications: []classify.Classification{r.Category},
		Tables:          []analysis.Table{analysis.Breakdown(r.BodyFat), mass},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
}
