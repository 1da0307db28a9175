package classify

import (
	"errors"
	"fmt"
	"math"

	"Pulse/internal/health/measure"
)

// ErrClassificationGap means a value or covariate key is not covered by a
// table. Tables are built gapless, so this is a defect, not bad input.
var ErrClassificationGap = errors.New("classification gap")

type Risk string

const (
	RiskNone     Risk = "none"
	RiskLow      Risk = "low"
	RiskModerate Risk = "moderate"
	RiskHigh     Risk = "high"
	RiskVeryHigh Risk = "very_high"
)

// Level orders risks from none (0) to very high (4).
func (r Risk) Level() int {
	switch r {
	case RiskLow:
		return 1
	case RiskModerate:
		return 2
	case RiskHigh:
		return 3
	case RiskVeryHigh:
		return 4
	default:
		return 0
	}
}

type Direction int

const (
	// HigherIsWorse tables never lower the risk as the value grows.
	HigherIsWorse Direction = iota
	// HigherIsBetter tables never raise the risk as the value grows.
	HigherIsBetter
)

// Requires lists the covariates a table is partitioned by.
type Requires uint8

const (
	NeedSex Requires = 1 << iota
	NeedAge
	NeedEthnicity
	NeedLift
)

type Covariates struct {
	Sex       measure.Sex
	Age       float64
	Ethnicity measure.Ethnicity
	Lift      string
}

type Category struct {
	Key   string
	Label string
	Risk  Risk
}

// Band covers [Lower, Upper). The first band starts at -Inf and the last
// ends at +Inf.
type Band struct {
	Lower float64
	Upper float64
	Category
}

func (b Band) Contains(v float64) bool {
	return v >= b.Lower && v < b.Upper
}

type Key struct {
	Sex     measure.Sex
	Bracket string
	Group   string
}

type Classification struct {
	Metric   string   `json:"metric"`
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Risk     Risk     `json:"risk"`
	Rank     int      `json:"rank"`
	Lower    *float64 `json:"lower,omitempty"`
	Upper    *float64 `json:"upper,omitempty"`
}

type Table struct {
	Metric    string
	Direction Direction
	Requires  Requires
	bracket   func(age float64) string
	group     func(Covariates) string
	bands     map[Key][]Band
	keys      []Key
}

func newTable(metric string, dir Direction, req Requires) *Table {
	return &Table{
		Metric:    metric,
		Direction: dir,
		Requires:  req,
		bands:     make(map[Key][]Band),
	}
}

// add registers the bands for key from ascending cut points. There must be
// one more category than cuts. Authoring mistakes panic at package init.
func (t *Table) add(key Key, cuts []float64, cats ...Category) {
	if len(cats) != len(cuts)+1 {
		panic(fmt.Sprintf("classify: %s %v: %d cuts need %d categories, got %d", t.Metric, key, len(cuts), len(cuts)+1, len(cats)))
	}
	if _, dup := t.bands[key]; dup {
		panic(fmt.Sprintf("classify: %s %v: duplicate key", t.Metric, key))
	}
	bands := make([]Band, len(cats))
	lower := math.Inf(-1)
	for i, c := range cats {
		upper := math.Inf(1)
		if i < len(cuts) {
			upper = cuts[i]
		}
		if !(upper > lower) {
			panic(fmt.Sprintf("classify: %s %v: cut points not ascending at %g", t.Metric, key, upper))
		}
		if i > 0 && !t.ordered(cats[i-1].Risk, c.Risk) {
			panic(fmt.Sprintf("classify: %s %v: risk %s after %s breaks table direction", t.Metric, key, c.Risk, cats[i-1].Risk))
		}
		bands[i] = Band{Lower: lower, Upper: upper, Category: c}
		lower = upper
	}
	t.bands[key] = bands
	t.keys = append(t.keys, key)
}

func (t *Table) ordered(prev, next Risk) bool {
	if t.Direction == HigherIsBetter {
		return next.Level() <= prev.Level()
	}
	return next.Level() >= prev.Level()
}

// Keys returns every partition of the table in authoring order.
func (t *Table) Keys() []Key {
	out := make([]Key, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *Table) BandsFor(key Key) []Band {
	bands := t.bands[key]
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Key builds the lookup key for cov. A covariate the table needs but cov
// lacks is a validation error; nothing is defaulted.
func (t *Table) Key(cov Covariates) (Key, error) {
	var key Key
	if t.Requires&NeedSex != 0 {
		if cov.Sex == "" {
			return Key{}, measure.Invalid("sex", "is required for %s classification", t.Metric)
		}
		if err := measure.RequireSex(cov.Sex); err != nil {
			return Key{}, err
		}
		key.Sex = cov.Sex
	}
	if t.Requires&NeedAge != 0 {
		if cov.Age == 0 {
			return Key{}, measure.Invalid("age", "is required for %s classification", t.Metric)
		}
		key.Bracket = t.bracket(cov.Age)
	}
	if t.Requires&NeedEthnicity != 0 {
		if cov.Ethnicity == "" {
			return Key{}, measure.Invalid("ethnicity", "is required for %s classification", t.Metric)
		}
		if err := measure.RequireEthnicity(cov.Ethnicity); err != nil {
			return Key{}, err
		}
	}
	if t.Requires&NeedLift != 0 && cov.Lift == "" {
		return Key{}, measure.Invalid("lift", "is required for %s classification", t.Metric)
	}
	if t.group != nil {
		key.Group = t.group(cov)
	}
	return key, nil
}

// Bands returns the bands that apply to cov.
func (t *Table) Bands(cov Covariates) ([]Band, error) {
	key, err := t.Key(cov)
	if err != nil {
		return nil, err
	}
	bands, ok := t.bands[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no bands for %+v", ErrClassificationGap, t.Metric, key)
	}
	return bands, nil
}

func (t *Table) Classify(v float64, cov Covariates) (Classification, error) {
	bands, err := t.Bands(cov)
	if err != nil {
		return Classification{}, err
	}
	for i, b := range bands {
		if b.Contains(v) {
			return Classification{
				Metric:   t.Metric,
				Category: b.Key,
				Label:    b.Label,
				Risk:     b.Risk,
				Rank:     i,
				Lower:    finite(b.Lower),
				Upper:    finite(b.Upper),
			}, nil
		}
	}
	return Classification{}, fmt.Errorf("%w: %s value %g outside every band", ErrClassificationGap, t.Metric, v)
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}
	return &v
}
