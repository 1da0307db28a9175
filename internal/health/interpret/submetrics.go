package interpret

import (
	"Pulse/internal/health/formula"
	"Pulse/internal/health/measure"
)

// RepRow is one line of a percentage-of-one-rep-max table.
type RepRow struct {
	Percent float64 `json:"percent"`
	Reps    int     `json:"reps"`
	Load    float64 `json:"load"`
}

// NSCA load-repetition relationship.
var repPercentages = []struct {
	pct  float64
	reps int
}{
	{100, 1}, {95, 2}, {93, 3}, {90, 4}, {87, 5}, {85, 6},
	{83, 7}, {80, 8}, {77, 9}, {75, 10}, {70, 11}, {67, 12}, {65, 15},
}

// RepTable returns round(oneRM * pct / 100, 1) for every tabulated percentage.
func RepTable(oneRM float64) []RepRow {
	rows := make([]RepRow, 0, len(repPercentages))
	for _, p := range repPercentages {
		rows = append(rows, RepRow{
			Percent: p.pct,
			Reps:    p.reps,
			Load:    measure.Round(oneRM*p.pct/100, 1),
		})
	}
	return rows
}

// Zone is a band of intensity expressed as a percentage range of a base value.
type Zone struct {
	Name   string  `json:"name"`
	Focus  string  `json:"focus"`
	MinPct float64 `json:"min_pct"`
	MaxPct float64 `json:"max_pct"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
}

type zoneDef struct {
	name, focus    string
	minPct, maxPct float64
}

var strengthZones = []zoneDef{
	{"Maximal strength", "1-5 reps, 3-5 min rest", 85, 100},
	{"Hypertrophy", "6-12 reps, 1-2 min rest", 67, 85},
	{"Muscular endurance", "12-20 reps, under 1 min rest", 50, 67},
	{"Warm-up", "technique and ramp-up sets", 40, 50},
}

var heartRateZones = []zoneDef{
	{"Zone 1", "recovery", 50, 60},
	{"Zone 2", "aerobic base", 60, 70},
	{"Zone 3", "tempo", 70, 80},
	{"Zone 4", "threshold", 80, 90},
	{"Zone 5", "maximal", 90, 100},
}

func zones(base float64, places int, defs []zoneDef) []Zone {
	out := make([]Zone, 0, len(defs))
	for _, d := range defs {
		out = append(out, Zone{
			Name:   d.name,
			Focus:  d.focus,
			MinPct: d.minPct,
			MaxPct: d.maxPct,
			Lower:  measure.Round(base*d.minPct/100, places),
			Upper:  measure.Round(base*d.maxPct/100, places),
		})
	}
	return out
}

// StrengthZones returns training loads in kg for each strength quality.
func StrengthZones(oneRM float64) []Zone {
	return zones(oneRM, 1, strengthZones)
}

// HeartRateZones returns the five percent-of-maximum zones in bpm.
func HeartRateZones(maxHR float64) []Zone {
	return zones(maxHR, 0, heartRateZones)
}

// KarvonenZones applies the same percentages to heart-rate reserve.
func KarvonenZones(maxHR, restingHR float64) []Zone {
	out := make([]Zone, 0, len(heartRateZones))
	for _, d := range heartRateZones {
		out = append(out, Zone{
			Name:   d.name,
			Focus:  d.focus,
			MinPct: d.minPct,
			MaxPct: d.maxPct,
			Lower:  measure.Round(formula.Karvonen(maxHR, restingHR, d.minPct), 0),
			Upper:  measure.Round(formula.Karvonen(maxHR, restingHR, d.maxPct), 0),
		})
	}
	return out
}

// ActivityLevel is total daily energy expenditure at one activity factor.
type ActivityLevel struct {
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Factor      float64 `json:"factor"`
	Calories    float64 `json:"calories"`
}

var activityFactors = []struct {
	level, description string
	factor             float64
}{
	{"sedentary", "little or no exercise", 1.2},
	{"light", "exercise 1-3 days per week", 1.375},
	{"moderate", "exercise 3-5 days per week", 1.55},
	{"active", "exercise 6-7 days per week", 1.725},
	{"very_active", "hard exercise or a physical job", 1.9},
}

func ValidActivity(level string) bool {
	for _, a := range activityFactors {
		if a.level == level {
			return true
		}
	}
	return false
}

// TDEE multiplies BMR by every activity factor.
func TDEE(bmr float64) []ActivityLevel {
	out := make([]ActivityLevel, 0, len(activityFactors))
	for _, a := range activityFactors {
		out = append(out, ActivityLevel{
			Level:       a.level,
			Description: a.description,
			Factor:      a.factor,
			Calories:    measure.Round(bmr*a.factor, 0),
		})
	}
	return out
}

// GoalCalories are daily targets derived from maintenance calories.
type GoalCalories struct {
	Goal     string  `json:"goal"`
	Calories float64 `json:"calories"`
}

var goalOffsets = []struct {
	goal   string
	offset float64
}{
	{"extreme_loss", -1000},
	{"loss", -500},
	{"mild_loss", -250},
	{"maintain", 0},
	{"mild_gain", 250},
	{"gain", 500},
}

// Goals offsets maintenance calories. Targets below floor, normally the BMR,
// are left out.
func Goals(maintenance, floor float64) []GoalCalories {
	out := make([]GoalCalories, 0, len(goalOffsets))
	for _, g := range goalOffsets {
		kcal := measure.Round(maintenance+g.offset, 0)
		if kcal < floor {
			continue
		}
		out = append(out, GoalCalories{Goal: g.goal, Calories: kcal})
	}
	return out
}

// DoseExample scales a published per-m² dose by body surface area.
type DoseExample struct {
	Agent   string  `json:"agent"`
	PerSqM  float64 `json:"per_sq_m"`
	Unit    string  `json:"unit"`
	Dose    float64 `json:"dose"`
	Comment string  `json:"comment"`
}

var doseFactors = []struct {
	agent   string
	perSqM  float64
	comment string
}{
	{"Cisplatin", 75, "every 3 weeks"},
	{"Doxorubicin", 60, "every 3 weeks"},
	{"Paclitaxel", 175, "every 3 weeks"},
	{"5-Fluorouracil", 400, "bolus"},
}

func Doses(bsa float64) []DoseExample {
	out := make([]DoseExample, 0, len(doseFactors))
	for _, d := range doseFactors {
		out = append(out, DoseExample{
			Agent:   d.agent,
			PerSqM:  d.perSqM,
			Unit:    "mg",
			Dose:    measure.Round(bsa*d.perSqM, 0),
			Comment: d.comment,
		})
	}
	return out
}

// Comparison sets a composite against a reference population value.
type Comparison struct {
	Reference string  `json:"reference"`
	Value     float64 `json:"value"`
	Diff      float64 `json:"diff"`
	DiffPct   float64 `json:"diff_pct"`
}

// Average adult body surface areas in m².
var bsaAverages = []struct {
	label string
	value float64
}{
	{"Average adult man", 1.9},
	{"Average adult woman", 1.6},
}

func CompareBSA(bsa float64) []Comparison {
	out := make([]Comparison, 0, len(bsaAverages))
	for _, a := range bsaAverages {
		out = append(out, Comparison{
			Reference: a.label,
			Value:     a.value,
			Diff:      measure.Round(bsa-a.value, 2),
			DiffPct:   measure.Round((bsa-a.value)/a.value*100, 1),
		})
	}
	return out
}

// WeightRange is the body-weight interval matching one BMI band.
type WeightRange struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

func HealthyWeight(lowerBMI, upperBMI, heightM float64) WeightRange {
	return WeightRange{
		Lower: measure.Round(formula.WeightForBMI(lowerBMI, heightM), 1),
		Upper: measure.Round(formula.WeightForBMI(upperBMI, heightM), 1),
	}
}

// DosingWeight picks the weight used for weight-based drug dosing.
type DosingWeight struct {
	PercentOfIdeal float64 `json:"percent_of_ideal"`
	Adjusted       float64 `json:"adjusted"`
	Basis          string  `json:"basis"`
	Weight         float64 `json:"weight"`
}

// ChooseDosingWeight uses actual weight below ideal, adjusted weight above
// 120% of ideal, and ideal weight otherwise.
func ChooseDosingWeight(ideal, actual float64) DosingWeight {
	pct := actual / ideal * 100
	adjusted := measure.Round(formula.AdjustedBodyWeight(ideal, actual), 1)
	dw := DosingWeight{PercentOfIdeal: measure.Round(pct, 1), Adjusted: adjusted}
	switch {
	case actual < ideal:
		dw.Basis, dw.Weight = "actual", measure.Round(actual, 1)
	case pct >= 120:
		dw.Basis, dw.Weight = "adjusted", adjusted
	default:
		dw.Basis, dw.Weight = "ideal", measure.Round(ideal, 1)
	}
	return dw
}
