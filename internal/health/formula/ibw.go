package formula

const (
	Devine   ID = "devine"
	Robinson ID = "robinson"
	Miller   ID = "miller"
	Hamwi    ID = "hamwi"
)

const cmPerInch = 2.54

// InchesOver5Feet converts a height in cm to inches above 60 in, the common
// term of every ideal-body-weight formula. Negative below 152.4 cm.
func InchesOver5Feet(height float64) float64 {
	return height/cmPerInch - 60
}

// Ideal body weight in kg from inches over five feet.

func DevineIBW(male bool, inches float64) float64 {
	if male {
		return 50 + 2.3*inches
	}
	return 45.5 + 2.3*inches
}

func RobinsonIBW(male bool, inches float64) float64 {
	if male {
		return 52 + 1.9*inches
	}
	return 49 + 1.7*inches
}

func MillerIBW(male bool, inches float64) float64 {
	if male {
		return 56.2 + 1.41*inches
	}
	return 53.1 + 1.36*inches
}

func HamwiIBW(male bool, inches float64) float64 {
	if male {
		return 48 + 2.7*inches
	}
	return 45.5 + 2.2*inches
}

// AdjustedBodyWeight is used for dosing in patients well above ideal weight.
func AdjustedBodyWeight(ideal, actual float64) float64 {
	return ideal + 0.4*(actual-ideal)
}
