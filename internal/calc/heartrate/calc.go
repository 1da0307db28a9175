package heartrate

import (
	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "max_heart_rate"

type Input struct {
	Age       float64     `json:"age"`
	Sex       measure.Sex `json:"sex,omitempty"`
	RestingHR *float64    `json:"resting_hr,omitempty"`
}

type Result struct {
	MaxHR           aggregate.Composite `json:"max_hr"`
	Reserve         *float64            `json:"heart_rate_reserve,omitempty"`
	Zones           []interpret.Zone    `json:"zones"`
	KarvonenZones   []interpret.Zone    `json:"karvonen_zones,omitempty"`
	Narrative       string              `json:"narrative"`
	Recommendations []string            `json:"recommendations"`
	Notes           string              `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := measure.First(
		measure.Require("age", in.Age, measure.Age),
		measure.OptionalSex(in.Sex),
		measure.Optional("resting_hr", in.RestingHR, measure.HeartRate),
	); err != nil {
		return Result{}, err
	}

	set := aggregate.NewSet(Metric, formula.UnitBPM)
	set.Add(formula.Fox, formula.FoxMaxHR(in.Age))
	set.Add(formula.Tanaka, formula.TanakaMaxHR(in.Age))
	set.Add(formula.Gellish, formula.GellishMaxHR(in.Age))
	set.Add(formula.Nes, formula.NesMaxHR(in.Age))
	if in.Sex == measure.Female {
		set.Add(formula.Gulati, formula.GulatiMaxHR(in.Age))
	} else {
		set.Skip(formula.Gulati, "derived for women only")
	}
	maxHR, err := set.Mean(0)
	if err != nil {
		return Result{}, err
	}
	if in.RestingHR != nil && *in.RestingHR >= maxHR.Value {
		return Result{}, measure.Invalid("resting_hr", "must be below the predicted maximum of %g bpm", maxHR.Value)
	}

	narrative, err := interpret.Narrative(Metric, interpret.Overall)
	if err != nil {
		return Result{}, err
	}
	advice, err := interpret.Advice(Metric, interpret.Overall, interpret.TrainingSafety)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		MaxHR:           maxHR,
		Zones:           interpret.HeartRateZones(maxHR.Value),
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Gulati is only applied to women.",
	}
	if in.RestingHR != nil {
		reserve := maxHR.Value - *in.RestingHR
		res.Reserve = &reserve
		res.KarvonenZones = interpret.KarvonenZones(maxHR.Value, *in.RestingHR)
	}
	return res, nil
}

func (r Result) Summary() analysis.Summary {
	s := analysis.Summary{
		Calculator:      "heartrate",
		Title:           "Maximum heart rate",
		Primary:         r.MaxHR,
		Tables:          []analysis.Table{analysis.Breakdown(r.MaxHR), analysis.ZoneTable("Heart-rate zones", "bpm", 0, r.Zones)},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
	if len(r.KarvonenZones) > 0 {
		s.Tables = append(s.Tables, analysis.ZoneTable("Karvonen zones", "bpm", 0, r.KarvonenZones))
	}
	return s
}
