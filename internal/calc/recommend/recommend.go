package recommend

import (
	"math"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

const Metric = "working_load"

type WorkingLoadInput struct {
	OneRepMax   float64 `json:"one_rep_max"` // kg
	Repetitions int     `json:"repetitions"`
	Increment   float64 `json:"increment"` // smallest plate step, kg
}

type WorkingLoadResult struct {
	Load            aggregate.Composite `json:"load"`
	PlateLoad       float64             `json:"plate_load"`
	Increment       float64             `json:"increment"`
	Narrative       string              `json:"narrative"`
	Recommendations []string            `json:"recommendations"`
	Notes           string              `json:"notes"`
}

// WorkingLoad inverts the one-rep-max equations: the load that can be lifted
// for the requested repetitions, rounded to what can be loaded on the bar.
func WorkingLoad(in WorkingLoadInput) (WorkingLoadResult, error) {
	if in.Increment == 0 {
		in.Increment = 2.5
	}
	if err := measure.First(
		measure.Require("one_rep_max", in.OneRepMax, measure.LiftedLoad),
		measure.RequireInt("repetitions", in.Repetitions, measure.Repetitions),
	); err != nil {
		return WorkingLoadResult{}, err
	}
	if in.Increment < 0.25 || in.Increment > 10 {
		return WorkingLoadResult{}, measure.Invalid("increment", "must be between 0.25 and 10 kg")
	}

	set := aggregate.NewSet(Metric, formula.UnitKg)
	set.Add(formula.Brzycki, formula.BrzyckiLoad(in.OneRepMax, in.Repetitions))
	set.Add(formula.Epley, formula.EpleyLoad(in.OneRepMax, in.Repetitions))
	load, err := set.Mean(1)
	if err != nil {
		return WorkingLoadResult{}, err
	}
	narrative, err := interpret.Narrative(Metric, interpret.Overall)
	if err != nil {
		return WorkingLoadResult{}, err
	}
	advice, err := interpret.Advice(Metric, interpret.Overall, interpret.TrainingSafety)
	if err != nil {
		return WorkingLoadResult{}, err
	}
	return WorkingLoadResult{
		Load:            load,
		PlateLoad:       measure.Round(math.Round(load.Value/in.Increment)*in.Increment, 2),
		Increment:       in.Increment,
		Narrative:       narrative,
		Recommendations: advice,
		Notes:           "Mean of inverted Brzycki and Epley, rounded to the nearest plate step.",
	}, nil
}

func (r WorkingLoadResult) Summary() analysis.Summary {
	return analysis.Summary{
		Calculator: "recommend",
		Title:      "Working load",
		Primary:    r.Load,
		Tables: []analysis.Table{
			analysis.Breakdown(r.Load),
			{
				Title:   "Bar load",
				Columns: []string{"Plate step (kg)", "Load (kg)"},
				Rows:    [][]string{{analysis.Number(r.Increment, 2), analysis.Number(r.PlateLoad, 2)}},
			},
		},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
}
