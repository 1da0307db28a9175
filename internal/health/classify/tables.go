package classify

import (
	"Pulse/internal/health/measure"
)

// Canonical threshold tables, one per metric. Every band is closed on its
// lower bound and open on its upper bound.

const (
	LiftBenchPress = "bench_press"
	LiftSquat      = "squat"
	LiftDeadlift   = "deadlift"
)

func ValidLift(lift string) bool {
	return lift == LiftBenchPress || lift == LiftSquat || lift == LiftDeadlift
}

const (
	groupGeneral = "general"
	groupAsian   = "asian"
)

func cat(key, label string, risk Risk) Category {
	return Category{Key: key, Label: label, Risk: risk}
}

var (
	whrLow      = cat("low", "Low risk", RiskLow)
	whrModerate = cat("moderate", "Moderate risk", RiskModerate)
	whrHigh     = cat("high", "High risk", RiskHigh)
)

// WaistHip follows WHO (2008) waist-to-hip cut-offs.
var WaistHip = func() *Table {
	t := newTable("waist_hip_ratio", HigherIsWorse, NeedSex)
	t.add(Key{Sex: measure.Male}, []float64{0.90, 1.00}, whrLow, whrModerate, whrHigh)
	t.add(Key{Sex: measure.Female}, []float64{0.80, 0.85}, whrLow, whrModerate, whrHigh)
	return t
}()

// WaistHeight uses Ashwell's 0.4 / 0.5 / 0.6 boundaries for both sexes.
var WaistHeight = func() *Table {
	t := newTable("waist_height_ratio", HigherIsWorse, 0)
	t.add(Key{}, []float64{0.4, 0.5, 0.6},
		cat("take_care", "Take care", RiskLow),
		cat("healthy", "Healthy", RiskLow),
		cat("increased", "Increased risk", RiskModerate),
		cat("high", "High risk", RiskHigh),
	)
	return t
}()

// WaistCircumference uses WHO cut-offs for general populations and IDF
// cut-offs for South Asian, East Asian and Central/South American groups.
var WaistCircumference = func() *Table {
	t := newTable("waist_circumference", HigherIsWorse, NeedSex|NeedEthnicity)
	t.group = func(cov Covariates) string { return waistGroup(cov.Ethnicity) }
	low := cat("low", "Low risk", RiskLow)
	increased := cat("increased", "Increased risk", RiskModerate)
	high := cat("high", "Substantially increased risk", RiskHigh)
	t.add(Key{Sex: measure.Male, Group: groupGeneral}, []float64{94, 102}, low, increased, high)
	t.add(Key{Sex: measure.Female, Group: groupGeneral}, []float64{80, 88}, low, increased, high)
	t.add(Key{Sex: measure.Male, Group: groupAsian}, []float64{90}, low, high)
	t.add(Key{Sex: measure.Female, Group: groupAsian}, []float64{80}, low, high)
	return t
}()

func waistGroup(e measure.Ethnicity) string {
	switch e {
	case measure.EthnicitySouthAsian, measure.EthnicityEastAsian, measure.EthnicityHispanic:
		return groupAsian
	default:
		return groupGeneral
	}
}

// BMI uses the WHO international table, or the WHO Asia-Pacific table for
// South and East Asian groups.
var BMI = func() *Table {
	t := newTable("bmi", HigherIsWorse, NeedEthnicity)
	t.group = func(cov Covariates) string { return bmiGroup(cov.Ethnicity) }
	under := cat("underweight", "Underweight", RiskLow)
	normal := cat("normal", "Normal weight", RiskLow)
	over := cat("overweight", "Overweight", RiskModerate)
	t.add(Key{Group: groupGeneral}, []float64{18.5, 25, 30, 35, 40},
		under, normal, over,
		cat("obese_1", "Obesity class I", RiskHigh),
		cat("obese_2", "Obesity class II", RiskVeryHigh),
		cat("obese_3", "Obesity class III", RiskVeryHigh),
	)
	t.add(Key{Group: groupAsian}, []float64{18.5, 23, 25, 30},
		under, normal, over,
		cat("obese_1", "Obesity class I", RiskHigh),
		cat("obese_2", "Obesity class II", RiskVeryHigh),
	)
	return t
}()

func bmiGroup(e measure.Ethnicity) string {
	switch e {
	case measure.EthnicitySouthAsian, measure.EthnicityEastAsian:
		return groupAsian
	default:
		return groupGeneral
	}
}

// BodyFat follows the American Council on Exercise categories.
var BodyFat = func() *Table {
	t := newTable("body_fat", HigherIsWorse, NeedSex)
	essential := cat("essential", "Essential fat", RiskLow)
	athletes := cat("athletes", "Athletes", RiskLow)
	fitness := cat("fitness", "Fitness", RiskLow)
	average := cat("average", "Average", RiskModerate)
	obese := cat("obese", "Obese", RiskHigh)
	t.add(Key{Sex: measure.Male}, []float64{6, 14, 18, 25}, essential, athletes, fitness, average, obese)
	t.add(Key{Sex: measure.Female}, []float64{14, 21, 25, 32}, essential, athletes, fitness, average, obese)
	return t
}()

// FFMI bands are descriptive; they carry no health risk.
var FFMI = func() *Table {
	t := newTable("ffmi", HigherIsBetter, NeedSex)
	cats := []Category{
		cat("below_average", "Below average", RiskNone),
		cat("average", "Average", RiskNone),
		cat("above_average", "Above average", RiskNone),
		cat("excellent", "Excellent", RiskNone),
		cat("superior", "Superior", RiskNone),
		cat("exceptional", "Beyond typical natural limit", RiskNone),
	}
	t.add(Key{Sex: measure.Male}, []float64{18, 20, 22, 23, 26}, cats...)
	t.add(Key{Sex: measure.Female}, []float64{15, 17, 18, 19, 22}, cats...)
	return t
}()

const (
	bracketUnder30 = "under_30"
	bracket30s     = "30_39"
	bracket40s     = "40_49"
	bracket50s     = "50_59"
	bracket60Plus  = "60_plus"
)

func decadeBracket(age float64) string {
	switch {
	case age < 30:
		return bracketUnder30
	case age < 40:
		return bracket30s
	case age < 50:
		return bracket40s
	case age < 60:
		return bracket50s
	default:
		return bracket60Plus
	}
}

// VO2Max norms by sex and age decade, in ml/kg/min.
var VO2Max = func() *Table {
	t := newTable("vo2max", HigherIsBetter, NeedSex|NeedAge)
	t.bracket = decadeBracket
	cats := []Category{
		cat("very_poor", "Very poor", RiskHigh),
		cat("poor", "Poor", RiskHigh),
		cat("fair", "Fair", RiskModerate),
		cat("good", "Good", RiskLow),
		cat("excellent", "Excellent", RiskLow),
		cat("superior", "Superior", RiskLow),
	}
	rows := []struct {
		sex     measure.Sex
		bracket string
		cuts    []float64
	}{
		{measure.Male, bracketUnder30, []float64{38, 42, 46, 51, 56}},
		{measure.Male, bracket30s, []float64{36, 40, 44, 48, 53}},
		{measure.Male, bracket40s, []float64{34, 38, 42, 46, 51}},
		{measure.Male, bracket50s, []float64{31, 35, 39, 43, 48}},
		{measure.Male, bracket60Plus, []float64{28, 32, 36, 40, 45}},
		{measure.Female, bracketUnder30, []float64{31, 35, 39, 43, 48}},
		{measure.Female, bracket30s, []float64{29, 33, 37, 41, 46}},
		{measure.Female, bracket40s, []float64{27, 31, 35, 39, 44}},
		{measure.Female, bracket50s, []float64{24, 28, 32, 36, 41}},
		{measure.Female, bracket60Plus, []float64{22, 26, 30, 34, 38}},
	}
	for _, r := range rows {
		t.add(Key{Sex: r.sex, Bracket: r.bracket}, r.cuts, cats...)
	}
	return t
}()

// Strength grades a one-rep max as a multiple of body weight.
var Strength = func() *Table {
	t := newTable("strength_ratio", HigherIsBetter, NeedSex|NeedLift)
	t.group = func(cov Covariates) string { return cov.Lift }
	cats := []Category{
		cat("untrained", "Untrained", RiskNone),
		cat("beginner", "Beginner", RiskNone),
		cat("novice", "Novice", RiskNone),
		cat("intermediate", "Intermediate", RiskNone),
		cat("advanced", "Advanced", RiskNone),
		cat("elite", "Elite", RiskNone),
	}
	rows := []struct {
		sex  measure.Sex
		lift string
		cuts []float64
	}{
		{measure.Male, LiftBenchPress, []float64{0.5, 0.75, 1.25, 1.75, 2.0}},
		{measure.Male, LiftSquat, []float64{0.75, 1.25, 1.5, 2.25, 2.75}},
		{measure.Male, LiftDeadlift, []float64{1.0, 1.5, 2.0, 2.5, 3.0}},
		{measure.Female, LiftBenchPress, []float64{0.25, 0.5, 0.75, 1.0, 1.5}},
		{measure.Female, LiftSquat, []float64{0.5, 0.75, 1.25, 1.5, 2.0}},
		{measure.Female, LiftDeadlift, []float64{0.5, 1.0, 1.25, 1.75, 2.5}},
	}
	for _, r := range rows {
		t.add(Key{Sex: r.sex, Group: r.lift}, r.cuts, cats...)
	}
	return t
}()

// Tables lists every canonical table.
func Tables() []*Table {
	return []*Table{WaistHip, WaistHeight, WaistCircumference, BMI, BodyFat, FFMI, VO2Max, Strength}
}
