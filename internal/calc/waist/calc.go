package waist

import (
	"strings"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/classify"
	"Pulse/internal/health/formula"
	"Pulse/internal/health/interpret"
	"Pulse/internal/health/measure"
)

type Input struct {
	Sex       measure.Sex       `json:"sex"`
	Waist     float64           `json:"waist"` // cm
	Hip       float64           `json:"hip"`   // cm
	Height    *float64          `json:"height,omitempty"`
	Ethnicity measure.Ethnicity `json:"ethnicity,omitempty"`
}

type Result struct {
	WaistHip            aggregate.Composite      `json:"waist_hip_ratio"`
	WaistHipCategory    classify.Classification  `json:"waist_hip_category"`
	WaistHeight         *aggregate.Composite     `json:"waist_height_ratio,omitempty"`
	WaistHeightCategory *classify.Classification `json:"waist_height_category,omitempty"`
	Circumference       *classify.Classification `json:"circumference_category,omitempty"`
	Narrative           string                   `json:"narrative"`
	Recommendations     []string                 `json:"recommendations"`
	Notes               string                   `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := measure.First(
		measure.RequireSex(in.Sex),
		measure.Require("waist", in.Waist, measure.Circumference),
		measure.Require("hip", in.Hip, measure.Circumference),
		measure.Optional("height", in.Height, measure.Height),
		measure.OptionalEthnicity(in.Ethnicity),
	); err != nil {
		return Result{}, err
	}
	cov := classify.Covariates{Sex: in.Sex, Ethnicity: in.Ethnicity}

	var (
		res       Result
		narrative []string
		advice    []string
	)
	explain := func(c classify.Classification) error {
		text, err := interpret.Narrative(c.Metric, c.Category)
		if err != nil {
			return err
		}
		adv, err := interpret.Advice(c.Metric, c.Category)
		if err != nil {
			return err
		}
		narrative = append(narrative, text)
		advice = append(advice, adv...)
		return nil
	}

	whr := aggregate.NewSet(classify.WaistHip.Metric, formula.UnitRatio)
	whr.Add(formula.WaistHipRatio, formula.WaistHip(in.Waist, in.Hip))
	c, err := whr.Mean(2)
	if err != nil {
		return Result{}, err
	}
	cls, err := classify.WaistHip.Classify(c.Value, cov)
	if err != nil {
		return Result{}, err
	}
	if err := explain(cls); err != nil {
		return Result{}, err
	}
	res.WaistHip, res.WaistHipCategory = c, cls

	if in.Height != nil {
		whtr := aggregate.NewSet(classify.WaistHeight.Metric, formula.UnitRatio)
		whtr.Add(formula.WaistHeightRatio, formula.WaistHeight(in.Waist, *in.Height))
		c, err := whtr.Mean(2)
		if err != nil {
			return Result{}, err
		}
		cls, err := classify.WaistHeight.Classify(c.Value, cov)
		if err != nil {
			return Result{}, err
		}
		if err := explain(cls); err != nil {
			return Result{}, err
		}
		res.WaistHeight, res.WaistHeightCategory = &c, &cls
	}

	if in.Ethnicity != "" {
		cls, err := classify.WaistCircumference.Classify(in.Waist, cov)
		if err != nil {
			return Result{}, err
		}
		if err := explain(cls); err != nil {
			return Result{}, err
		}
		res.Circumference = &cls
	}

	res.Narrative = strings.Join(narrative, " ")
	res.Recommendations = append(advice, interpret.ClinicalSafety...)
	res.Notes = "Waist-to-height needs height; waist circumference is graded only when ethnicity is given."
	return res, nil
}

func (r Result) Summary() analysis.Summary {
	s := analysis.Summary{
		Calculator:      "waist",
		Title:           "Waist ratios",
		Primary:         r.WaistHip,
		Classifications: []classify.Classification{r.WaistHipCategory},
		Recommendations: r.Recommendations,
		Narrative:       r.Narrative,
	}
	if r.WaistHeight != nil {
		s.Extra = append(s.Extra, *r.WaistHeight)
		s.Classifications = append(s.Classifications, *r.WaistHeightCategory)
	}
	if r.Circumference != nil {
		s.Classifications = append(s.Classifications, *r.Circumference)
	}
	s.Tables = []analysis.Table{analysis.Breakdown(r.WaistHip), analysis.ClassificationTable(s.Classifications)}
	return s
}
