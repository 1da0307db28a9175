package formula

const (
	MifflinStJeor  ID = "mifflin_st_jeor"
	HarrisBenedict ID = "harris_benedict"
	KatchMcArdle   ID = "katch_mcardle"
	Cunningham     ID = "cunningham"
)

// Basal metabolic rate in kcal/day. Weight in kg, height in cm, age in years.

func MifflinStJeorBMR(male bool, weight, height, age float64) float64 {
	bmr := 10*weight + 6.25*height - 5*age
	if male {
		return bmr + 5
	}
	return bmr - 161
}

// HarrisBenedictBMR uses the Roza & Shizgal (1984) revision.
func HarrisBenedictBMR(male bool, weight, height, age float64) float64 {
	if male {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*age
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*age
}

func KatchMcArdleBMR(leanMass float64) float64 {
	return 370 + 21.6*leanMass
}

func CunninghamBMR(leanMass float64) float64 {
	return 500 + 22*leanMass
}

// LeanMass is body weight minus fat mass for a body-fat percentage.
func LeanMass(weight, bodyFatPct float64) float64 {
	return weight * (1 - bodyFatPct/100)
}
