// Package catalog lists every calculator and runs one from raw JSON input.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"Pulse/internal/calc"
	"Pulse/internal/calc/bmi"
	"Pulse/internal/calc/bmr"
	"Pulse/internal/calc/bodyfat"
	"Pulse/internal/calc/bsa"
	"Pulse/internal/calc/ffmi"
	"Pulse/internal/calc/heartrate"
	"Pulse/internal/calc/ibw"
	"Pulse/internal/calc/onerm"
	"Pulse/internal/calc/recommend"
	"Pulse/internal/calc/vo2max"
	"Pulse/internal/calc/waist"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/measure"
)

type Entry struct {
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Example     json.RawMessage  `json:"example"`
	Handler     http.HandlerFunc `json:"-"`
	run         func(json.RawMessage) (analysis.Summarizer, error)
}

// Run decodes raw into the calculator's input and evaluates it.
func (e Entry) Run(raw json.RawMessage) (analysis.Summarizer, error) {
	return e.run(raw)
}

func register[I any, R analysis.Summarizer](name, title, desc, example string, h http.HandlerFunc, fn func(I) (R, error)) Entry {
	return Entry{
		Name:        name,
		Title:       title,
		Description: desc,
		Example:     json.RawMessage(example),
		Handler:     h,
		run: func(raw json.RawMessage) (analysis.Summarizer, error) {
			var in I
			if err := Decode(raw, &in); err != nil {
				return nil, err
			}
			res, err := fn(in)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}
}

var entries = []Entry{
	register("onerm", "One-rep max", "Estimated one-rep max, percentage table, training zones and strength standard.",
		`{"weight":100,"repetitions":8,"body_weight":80,"sex":"male","lift":"bench_press"}`,
		(&onerm.Handler{}).Calc, onerm.Calculate),
	register("recommend", "Working load", "Load for a target number of repetitions from a known one-rep max.",
		`{"one_rep_max":120,"repetitions":5,"increment":2.5}`,
		(&recommend.Handler{}).Load, recommend.WorkingLoad),
	register("bmr", "Basal metabolic rate", "Resting energy use, daily expenditure by activity level and calorie targets.",
		`{"sex":"female","age":35,"weight":65,"height":168,"body_fat":27,"activity":"moderate"}`,
		(&bmr.Handler{}).Calc, bmr.Calculate),
	register("bsa", "Body surface area", "Five-formula BSA with dosing examples.",
		`{"weight":80,"height":180}`,
		(&bsa.Handler{}).Calc, bsa.Calculate),
	register("bodyfat", "Body fat", "Skinfold, circumference and BMI-based body fat with ACE categories.",
		`{"sex":"male","age":30,"weight":80,"height":180,"skinfolds":{"chest":10,"abdomen":20,"thigh":15},"waist":85,"neck":38}`,
		(&bodyfat.Handler{}).Calc, bodyfat.Calculate),
	register("waist", "Waist ratios", "Waist-to-hip and waist-to-height ratios and waist circumference risk.",
		`{"sex":"female","waist":76,"hip":100,"height":165,"ethnicity":"european"}`,
		(&waist.Handler{}).Calc, waist.Calculate),
	register("ffmi", "Fat-free mass index", "Lean mass and FFMI with normalised categories.",
		`{"sex":"male","weight":80,"height":180,"body_fat":15}`,
		(&ffmi.Handler{}).Calc, ffmi.Calculate),
	register("vo2max", "VO2max", "Aerobic capacity from field tests, graded by age and sex.",
		`{"sex":"male","age":25,"cooper_distance":2800,"run_time":10}`,
		(&vo2max.Handler{}).Calc, vo2max.Calculate),
	register("heartrate", "Maximum heart rate", "Age-predicted maximum heart rate with training zones.",
		`{"age":40,"sex":"female","resting_hr":60}`,
		(&heartrate.Handler{}).Calc, heartrate.Calculate),
	register("bmi", "Body mass index", "BMI with WHO or Asia-Pacific categories and healthy weight range.",
		`{"weight":80,"height":180,"ethnicity":"other"}`,
		(&bmi.Handler{}).Calc, bmi.Calculate),
	register("ibw", "Ideal body weight", "Ideal, adjusted and dosing body weight.",
		`{"sex":"male","height":180,"weight":100}`,
		(&ibw.Handler{}).Calc, ibw.Calculate),
}

// All returns the catalog in display order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func Lookup(name string) (Entry, error) {
	name = measure.Normalize(name)
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w %q", calc.ErrUnknownCalculator, name)
}

func Run(name string, raw json.RawMessage) (analysis.Summarizer, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Run(raw)
}

// Decode unmarshals raw into v, reporting malformed input as a validation
// error so callers can answer it like any other bad field.
func Decode(raw json.RawMessage, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return measure.Invalid("input", "is required")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return measure.Invalid(te.Field, "must be a %s, got %s", te.Type, te.Value)
		}
		return measure.Invalid("input", "malformed JSON: %v", err)
	}
	return nil
}

// List answers with every calculator and its example input.
func List(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, All())
}
