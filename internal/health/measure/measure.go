package measure

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

func (s Sex) Valid() bool {
	return s == Male || s == Female
}

func (s *Sex) UnmarshalText(b []byte) error {
	*s = Sex(Normalize(string(b)))
	return nil
}

// Ethnicity is the self-reported population group used by the BMI and
// waist-circumference tables. EthnicityOther selects the WHO international tables.
type Ethnicity string

const (
	EthnicityEuropean      Ethnicity = "european"
	EthnicityAfrican       Ethnicity = "african"
	EthnicityMiddleEastern Ethnicity = "middle_eastern"
	EthnicitySouthAsian    Ethnicity = "south_asian"
	EthnicityEastAsian     Ethnicity = "east_asian"
	EthnicityHispanic      Ethnicity = "hispanic"
	EthnicityOther         Ethnicity = "other"
)

var ethnicities = []Ethnicity{
	EthnicityEuropean,
	EthnicityAfrican,
	EthnicityMiddleEastern,
	EthnicitySouthAsian,
	EthnicityEastAsian,
	EthnicityHispanic,
	EthnicityOther,
}

func (e Ethnicity) Valid() bool {
	for _, v := range ethnicities {
		if v == e {
			return true
		}
	}
	return false
}

func (e *Ethnicity) UnmarshalText(b []byte) error {
	*e = Ethnicity(Normalize(string(b)))
	return nil
}

// Range is a closed interval of accepted values for one input field.
type Range struct {
	Min  float64
	Max  float64
	Unit string
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var (
	BodyWeight    = Range{Min: 20, Max: 300, Unit: "kg"}
	LiftedLoad    = Range{Min: 1, Max: 500, Unit: "kg"}
	Height        = Range{Min: 100, Max: 250, Unit: "cm"}
	IBWHeight     = Range{Min: 130, Max: 250, Unit: "cm"}
	Age           = Range{Min: 15, Max: 120, Unit: "years"}
	Repetitions   = Range{Min: 1, Max: 20, Unit: "reps"}
	BodyFat       = Range{Min: 3, Max: 50, Unit: "%"}
	Skinfold      = Range{Min: 1, Max: 50, Unit: "mm"}
	Circumference = Range{Min: 50, Max: 160, Unit: "cm"}
	Neck          = Range{Min: 20, Max: 80, Unit: "cm"}
	Distance      = Range{Min: 1000, Max: 5000, Unit: "m"}
	Duration      = Range{Min: 5, Max: 60, Unit: "min"}
	HeartRate     = Range{Min: 30, Max: 230, Unit: "bpm"}
)

// Plausible adult values for computed estimates. An equation whose estimate
// falls outside these has left its fitted domain.
var (
	PlausibleBMI     = Range{Min: 10, Max: 100, Unit: "kg/m²"}
	PlausibleBodyFat = Range{Min: 2, Max: 70, Unit: "%"}
	PlausibleBMR     = Range{Min: 500, Max: 6000, Unit: "kcal/day"}
	PlausibleVO2Max  = Range{Min: 5, Max: 95, Unit: "ml/kg/min"}
)

// ValidationError reports a missing or out-of-range input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func Invalid(field, format string, args ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Require checks a mandatory numeric field. Zero counts as not supplied.
func Require(field string, v float64, r Range) error {
	if v == 0 {
		return ValidationError{Field: field, Message: "is required"}
	}
	return check(field, v, r)
}

func RequireInt(field string, v int, r Range) error {
	if !r.Contains(float64(v)) {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be between %g and %g %s", r.Min, r.Max, r.Unit)}
	}
	return nil
}

// Optional checks a field only when it was supplied.
func Optional(field string, v *float64, r Range) error {
	if v == nil {
		return nil
	}
	return check(field, *v, r)
}

// RequireBuild rejects a weight and height (cm) pair whose BMI no adult body
// has. Both values are assumed to have passed their own range checks.
func RequireBuild(weight, height float64) error {
	hM := height / 100
	bmi := weight / (hM * hM)
	if !PlausibleBMI.Contains(bmi) {
		return ValidationError{Field: "weight", Message: fmt.Sprintf("%g kg at %g cm gives a BMI of %.1f, outside %g-%g %s",
			weight, height, bmi, PlausibleBMI.Min, PlausibleBMI.Max, PlausibleBMI.Unit)}
	}
	return nil
}

func RequireSex(s Sex) error {
	if s == "" {
		return ValidationError{Field: "sex", Message: "is required"}
	}
	if !s.Valid() {
		return ValidationError{Field: "sex", Message: fmt.Sprintf("unknown value %q", s)}
	}
	return nil
}

func OptionalSex(s Sex) error {
	if s == "" {
		return nil
	}
	return RequireSex(s)
}

func RequireEthnicity(e Ethnicity) error {
	if e == "" {
		return ValidationError{Field: "ethnicity", Message: "is required"}
	}
	return OptionalEthnicity(e)
}

func OptionalEthnicity(e Ethnicity) error {
	if e != "" && !e.Valid() {
		return ValidationError{Field: "ethnicity", Message: fmt.Sprintf("unknown value %q", e)}
	}
	return nil
}

// First returns the first non-nil error, so entry points can list their
// checks in field order.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func check(field string, v float64, r Range) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || !r.Contains(v) {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be between %g and %g %s", r.Min, r.Max, r.Unit)}
	}
	return nil
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Normalize lower-cases and trims enum-like inputs from forms and spreadsheets.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
