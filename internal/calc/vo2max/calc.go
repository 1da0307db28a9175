package vo2max

import (
	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/classify"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "vo2max"

// Input carries the results of whichever field tests were performed.
type Input struct {
	Sex            measure.Sex `json:"sex"`
	Age            float64     `json:"age"`
	Weight         *float64    `json:"weight,omitempty"`          // kg, Rockport
	CooperDistance *float64    `json:"cooper_distance,omitempty"` // m in 12 min
	WalkTime       *float64    `json:"walk_time,omitempty"`       // min for 1 mile
	WalkHeartRate  *float64    `json:"walk_heart_rate,omitempty"` // bpm at finish
	RunTime        *float64    `json:"run_time,omitempty"`        // min for 1.5 miles
	RestingHR      *float64    `json:"resting_hr,omitempty"`
	MaxHR          *float64    `json:"max_hr,omitempty"` // measured; Tanaka otherwise
}

type Result struct {
	VO2Max          aggregate.Composite     `json:"vo2max"`
	Category        classify.Classification `json:"category"`
	Narrative       string                  `json:"narrative"`
	Recommendations []string                `json:"recommendations"`
	Notes           string                  `json:"notes"`
}

func validate(in Input) error {
	if err := measure.First(
		measure.RequireSex(in.Sex),
		measure.Require("age", in.Age, measure.Age),
		measure.Optional("weight", in.Weight, measure.BodyWeight),
		measure.Optional("cooper_distance", in.CooperDistance, measure.Distance),
		measure.Optional("walk_time", in.WalkTime, measure.Duration),
		measure.Optional("walk_heart_rate", in.WalkHeartRate, measure.HeartRate),
		measure.Optional("run_time", in.RunTime, measure.Duration),
		measure.Optional("resting_hr", in.RestingHR, measure.HeartRate),
		measure.Optional("max_hr", in.MaxHR, measure.HeartRate),
	); err != nil {
		return err
	}
	if in.CooperDistance == nil && in.RunTime == nil && in.RestingHR == nil &&
		(in.Weight == nil || in.WalkTime == nil || in.WalkHeartRate == nil) {
		return measure.Invalid("tests", "at least one complete field test is required")
	}
	if in.RestingHR != nil {
		if maxHR := maxHeartRate(in); *in.RestingHR >= maxHR {
			return measure.Invalid("resting_hr", "must be below the maximum heart rate of %g bpm", measure.Round(maxHR, 1))
		}
	}
	return nil
}

// maxHeartRate is the measured maximum, or the Tanaka prediction for age.
func maxHeartRate(in Input) float64 {
	if in.MaxHR != nil {
		return *in.MaxHR
	}
	return formula.TanakaMaxHR(in.Age)
}

func Calculate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}
	male := in.Sex == measure.Male
	set := aggregate.NewSet(Metric, formula.UnitMlKgMin)

	if in.CooperDistance != nil {
		set.AddWithin(formula.Cooper, formula.CooperVO2Max(*in.CooperDistance), measure.PlausibleVO2Max)
	} else {
		set.Skip(formula.Cooper, "cooper_distance not supplied")
	}

	if in.Weight != nil && in.WalkTime != nil && in.WalkHeartRate != nil {
		set.AddWithin(formula.Rockport, formula.RockportVO2Max(male, *in.Weight, in.Age, *in.WalkTime, *in.WalkHeartRate), measure.PlausibleVO2Max)
	} else {
		set.Skip(formula.Rockport, "weight, walk_time and walk_heart_rate required")
	}

	if in.RestingHR != nil {
		set.AddWithin(formula.Uth, formula.UthVO2Max(maxHeartRate(in), *in.RestingHR), measure.PlausibleVO2Max)
	} else {
		set.Skip(formula.Uth, "resting_hr not supplied")
	}

	if in.RunTime != nil {
		set.AddWithin(formula.OneAndHalfMile, formula.OneAndHalfMileVO2Max(*in.RunTime), measure.PlausibleVO2Max)
	} else {
		set.Skip(formula.OneAndHalfMile, "run_time not supplied")
	}

	if set.Len() == 0 {
		return Result{}, measure.Invalid("tests", "no field test gives a plausible estimate")
	}
	vo2, err := set.Mean(1)
	if err != nil {
		return Result{}, err
	}
	cls, err := classify.VO2Max.Classify(vo2.Value, classify.Covariates{Sex: in.Sex, Age: in.Age})
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
		VO2Max:          vo2,
		Category:        cls,
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Mean of the field tests supplied; norms are by sex and age decade.",
	}, nil
}

func (r Result) Summary() analysis.Summary {
	return analysis.Summary{
		Calculator:      "vo2max",
		Title:           "VO2max",
		Primary:         r.VO2Max,
		Classifications: []classify.Classification{r.Category},
		Tables:          []analysis.Table{analysis.Breakdown(r.VO2Max)},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
}
