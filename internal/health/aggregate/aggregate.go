package aggregate

import (
	"errors"
	"fmt"
	"math"

	"Pulse/internal/health/formula"
	"Pulse/internal/health/measure"
)

type Policy string

const (
	// PolicyMean averages every evaluated formula without weights.
	PolicyMean Policy = "mean"
	// PolicyReference reports the reference formula as the composite.
	PolicyReference Policy = "reference"
)

// DeviationPlaces is the rounding applied to percentage deviations.
const DeviationPlaces = 2

var (
	ErrNoResults        = errors.New("no formula could be evaluated")
	ErrMissingReference = errors.New("reference formula was not evaluated")
)

type FormulaResult struct {
	Formula      formula.ID   `json:"formula"`
	Name         string       `json:"name"`
	Value        float64      `json:"value"`
	Unit         formula.Unit `json:"unit"`
	DeviationPct *float64     `json:"deviation_pct,omitempty"`
	Reference    bool         `json:"reference,omitempty"`
}

// Skip records a formula left out because an optional input was not supplied
// or the inputs lie outside its domain.
type Skip struct {
	Formula formula.ID `json:"formula"`
	Name    string     `json:"name"`
	Reason  string     `json:"reason"`
}

type Composite struct {
	Metric    string          `json:"metric"`
	Value     float64         `json:"value"`
	Unit      formula.Unit    `json:"unit"`
	Precision int             `json:"precision"`
	Policy    Policy          `json:"policy"`
	Reference formula.ID      `json:"reference,omitempty"`
	Methods   []formula.ID    `json:"methods"`
	Results   []FormulaResult `json:"results"`
	Skipped   []Skip          `json:"skipped,omitempty"`
}

func (c Composite) Result(id formula.ID) (FormulaResult, bool) {
	for _, r := range c.Results {
		if r.Formula == id {
			return r, true
		}
	}
	return FormulaResult{}, false
}

// Set collects the formula results for one metric before aggregation.
// Values are kept at full precision; only the composite is rounded.
type Set struct {
	metric  string
	unit    formula.Unit
	results []FormulaResult
	skipped []Skip
}

func NewSet(metric string, unit formula.Unit) *Set {
	return &Set{metric: metric, unit: unit}
}

func (s *Set) Add(id formula.ID, value float64) {
	s.results = append(s.results, FormulaResult{
		Formula: id,
		Name:    id.Name(),
		Value:   value,
		Unit:    s.unit,
	})
}

// AddWithin adds value when it lies inside r. An estimate outside r, or one
// that is not finite, is recorded as a skip instead; ok reports which.
func (s *Set) AddWithin(id formula.ID, value float64, r measure.Range) (ok bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || !r.Contains(value) {
		s.Skip(id, fmt.Sprintf("estimate %.1f %s outside the plausible range %g-%g", value, r.Unit, r.Min, r.Max))
		return false
	}
	s.Add(id, value)
	return true
}

func (s *Set) Skip(id formula.ID, reason string) {
	s.skipped = append(s.skipped, Skip{Formula: id, Name: id.Name(), Reason: reason})
}

func (s *Set) Len() int {
	return len(s.results)
}

// Mean returns the unweighted mean of every evaluated formula.
func (s *Set) Mean(precision int) (Composite, error) {
	if len(s.results) == 0 {
		return Composite{}, fmt.Errorf("%s: %w", s.metric, ErrNoResults)
	}
	sum := 0.0
	for _, r := range s.results {
		sum += r.Value
	}
	return Composite{
		Metric:    s.metric,
		Value:     measure.Round(sum/float64(len(s.results)), precision),
		Unit:      s.unit,
		Precision: precision,
		Policy:    PolicyMean,
		Methods:   s.methods(),
		Results:   s.copyResults(),
		Skipped:   s.copySkipped(),
	}, nil
}

// Reference uses the value of formula ref as the composite and reports every
// other formula's deviation from it.
func (s *Set) Reference(ref formula.ID, precision int) (Composite, error) {
	if len(s.results) == 0 {
		return Composite{}, fmt.Errorf("%s: %w", s.metric, ErrNoResults)
	}
	c := Composite{
		Metric:    s.metric,
		Unit:      s.unit,
		Precision: precision,
		Policy:    PolicyReference,
		Methods:   s.methods(),
		Results:   s.copyResults(),
		Skipped:   s.copySkipped(),
	}
	c, err := WithDeviations(c, ref)
	if err != nil {
		return Composite{}, err
	}
	r, _ := c.Result(ref)
	c.Value = measure.Round(r.Value, precision)
	return c, nil
}

// WithDeviations marks ref as the recommended formula of c and fills in the
// deviation of every other result. The composite value is left unchanged.
func WithDeviations(c Composite, ref formula.ID) (Composite, error) {
	var refValue float64
	found := false
	for _, r := range c.Results {
		if r.Formula == ref {
			refValue, found = r.Value, true
			break
		}
	}
	if !found {
		return Composite{}, fmt.Errorf("%s: %s: %w", c.Metric, ref, ErrMissingReference)
	}

	results := make([]FormulaResult, len(c.Results))
	for i, r := range c.Results {
		r.DeviationPct = nil
		r.Reference = r.Formula == ref
		if !r.Reference {
			d := Deviation(r.Value, refValue)
			r.DeviationPct = &d
		}
		results[i] = r
	}
	c.Results = results
	c.Reference = ref
	return c, nil
}

// Deviation is (value - reference) / reference * 100 rounded to two decimals.
// A non-zero difference never rounds to 0.00; it is reported as ±0.01.
func Deviation(value, reference float64) float64 {
	raw := (value - reference) / reference * 100
	d := measure.Round(raw, DeviationPlaces)
	if d == 0 && raw != 0 {
		if raw > 0 {
			return 0.01
		}
		return -0.01
	}
	// normalise -0
	if d == 0 {
		return 0
	}
	return d
}

// methods lists the formulas that contributed, in evaluation order.
func (s *Set) methods() []formula.ID {
	ids := make([]formula.ID, 0, len(s.results))
	for _, r := range s.results {
		ids = append(ids, r.Formula)
	}
	return ids
}

func (s *Set) copyResults() []FormulaResult {
	out := make([]FormulaResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Set) copySkipped() []Skip {
	if len(s.skipped) == 0 {
		return nil
	}
	out := make([]Skip, len(s.skipped))
	copy(out, s.skipped)
	return out
}
