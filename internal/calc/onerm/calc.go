package onerm

import (
	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/classify"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "one_rep_max"

type Input struct {
	Weight      float64     `json:"weight"` // load lifted, kg
	Repetitions int         `json:"repetitions"`
	BodyWeight  *float64    `json:"body_weight,omitempty"`
	Sex         measure.Sex `json:"sex,omitempty"`
	Lift        string      `json:"lift,omitempty"` // bench_press, squat or deadlift
}

type Result struct {
	OneRepMax       aggregate.Composite      `json:"one_rep_max"`
	StrengthRatio   *float64                 `json:"strength_ratio,omitempty"`
	Strength        *classify.Classification `json:"strength,omitempty"`
	Percentages     []interpret.RepRow       `json:"percentages"`
	Zones           []interpret.Zone         `json:"zones"`
	Narrative       string                   `json:"narrative"`
	Recommendations []string                 `json:"recommendations"`
	Notes           string                   `json:"notes"`
}

func validate(in Input) error {
	if err := measure.First(
		measure.Require("weight", in.Weight, measure.LiftedLoad),
		measure.RequireInt("repetitions", in.Repetitions, measure.Repetitions),
		measure.Optional("body_weight", in.BodyWeight, measure.BodyWeight),
		measure.OptionalSex(in.Sex),
	); err != nil {
		return err
	}
	if in.Lift != "" && !classify.ValidLift(in.Lift) {
		return measure.Invalid("lift", "unknown value %q", in.Lift)
	}
	if in.BodyWeight != nil {
		if _, err := classify.Strength.Key(covariates(in)); err != nil {
			return err
		}
	}
	return nil
}

func covariates(in Input) classify.Covariates {
	return classify.Covariates{Sex: in.Sex, Lift: in.Lift}
}

func Calculate(in Input) (Result, error) {
	in.Lift = measure.Normalize(in.Lift)
	if err := validate(in); err != nil {
		return Result{}, err
	}

	set := aggregate.NewSet(Metric, formula.UnitKg)
	set.Add(formula.Brzycki, formula.BrzyckiOneRM(in.Weight, in.Repetitions))
	set.Add(formula.Epley, formula.EpleyOneRM(in.Weight, in.Repetitions))
	set.Add(formula.Lander, formula.LanderOneRM(in.Weight, in.Repetitions))
	set.Add(formula.OConner, formula.OConnerOneRM(in.Weight, in.Repetitions))
	set.Add(formula.Lombardi, formula.LombardiOneRM(in.Weight, in.Repetitions))
	orm, err := set.Mean(1)
	if err != nil {
		return Result{}, err
	}

	narrative, err := interpret.Narrative(Metric, interpret.Overall)
	if err != nil {
		return Result{}, err
	}
	advice, err := interpret.Advice(Metric, interpret.Overall)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		OneRepMax:   orm,
		Percentages: interpret.RepTable(orm.Value),
		Zones:       interpret.StrengthZones(orm.Value),
		Notes:       "Mean of five rep-based 1RM equations; most accurate at 10 reps or fewer.",
	}

	if in.BodyWeight != nil {
		ratio := measure.Round(orm.Value / *in.BodyWeight, 2)
		cls, err := classify.Strength.Classify(ratio, covariates(in))
		if err != nil {
			return Result{}, err
		}
		text, err := interpret.Narrative(classify.Strength.Metric, cls.Category)
		if err != nil {
			return Result{}, err
		}
		extra, err := interpret.Advice(classify.Strength.Metric, cls.Category)
		if err != nil {
			return Result{}, err
		}
		res.StrengthRatio = &ratio
		res.Strength = &cls
		narrative += " " + text
		advice = append(advice, extra...)
	}

	res.Narrative = narrative
	res.Recommendations = append(advice, interpret.TrainingSafety...)
	return res, nil
}

func (r Result) Summary() analysis.Summary {
	s := analysis.Summary{
		Calculator:      "onerm",
		Title:           "One-rep max",
		Primary:         r.OneRepMax,
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
		Tables: []analysis.Table{
			analysis.Breakdown(r.OneRepMax),
			analysis.RepTable(r.Percentages),
			analysis.ZoneTable("Training zones", "kg", 1, r.Zones),
		},
	}
	if r.Strength != nil {
		s.Classifications = append(s.Classifications, *r.Strength)
	}
	return s
}
