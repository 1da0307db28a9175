package formula

import "math"

const (
	JacksonPollock3 ID = "jackson_pollock_3"
	JacksonPollock7 ID = "jackson_pollock_7"
	DurninWomersley ID = "durnin_womersley"
	USNavy          ID = "us_navy"
	Deurenberg      ID = "deurenberg"
)

// SiriBodyFat converts body density (g/cm³) to body fat %.
func SiriBodyFat(density float64) float64 {
	return 495/density - 450
}

// JacksonPollock3Density takes the 3-site sum in mm: chest, abdomen and thigh
// for men; triceps, suprailiac and thigh for women.
func JacksonPollock3Density(male bool, sum, age float64) float64 {
	if male {
		return 1.10938 - 0.0008267*sum + 0.0000016*sum*sum - 0.0002574*age
	}
	return 1.0994921 - 0.0009929*sum + 0.0000023*sum*sum - 0.0001392*age
}

// JacksonPollock7Density takes the sum of chest, midaxillary, triceps,
// subscapular, abdomen, suprailiac and thigh in mm.
func JacksonPollock7Density(male bool, sum, age float64) float64 {
	if male {
		return 1.112 - 0.00043499*sum + 0.00000055*sum*sum - 0.00028826*age
	}
	return 1.097 - 0.00046971*sum + 0.00000056*sum*sum - 0.00012828*age
}

type durninCoefficients struct {
	maxAge float64
	c, m   float64
}

// Durnin & Womersley (1974) age brackets. Ages under 20 use the 17-19 row.
var (
	durninMale = []durninCoefficients{
		{20, 1.1620, 0.0630},
		{30, 1.1631, 0.0632},
		{40, 1.1422, 0.0544},
		{50, 1.1620, 0.0700},
		{math.Inf(1), 1.1715, 0.0779},
	}
	durninFemale = []durninCoefficients{
		{20, 1.1549, 0.0678},
		{30, 1.1599, 0.0717},
		{40, 1.1423, 0.0632},
		{50, 1.1333, 0.0612},
		{math.Inf(1), 1.1339, 0.0645},
	}
)

// DurninWomersleyDensity takes the sum of biceps, triceps, subscapular and
// suprailiac skinfolds in mm.
func DurninWomersleyDensity(male bool, sum, age float64) float64 {
	rows := durninFemale
	if male {
		rows = durninMale
	}
	for _, r := range rows {
		if age < r.maxAge {
			return r.c - r.m*math.Log10(sum)
		}
	}
	last := rows[len(rows)-1]
	return last.c - last.m*math.Log10(sum)
}

// USNavyBodyFat uses circumferences and height in cm. hip is ignored for men.
// Undefined when waist-neck (men) or waist+hip-neck (women) is not positive.
func USNavyBodyFat(male bool, waist, neck, hip, height float64) float64 {
	if male {
		return 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(height)) - 450
	}
	return 495/(1.29579-0.35004*math.Log10(waist+hip-neck)+0.22100*math.Log10(height)) - 450
}

// DeurenbergBodyFat estimates body fat % from BMI for adults.
func DeurenbergBodyFat(male bool, bmi, age float64) float64 {
	sex := 0.0
	if male {
		sex = 1
	}
	return 1.20*bmi + 0.23*age - 10.8*sex - 5.4
}
