package formula

const (
	LeanMassFromBodyFat ID = "body_fat"
	Boer                ID = "boer"
	James               ID = "james"
	Hume                ID = "hume"
)

// Lean body mass estimates in kg. Weight in kg, height in cm.

func BoerLeanMass(male bool, weight, height float64) float64 {
	if male {
		return 0.407*weight + 0.267*height - 19.2
	}
	return 0.252*weight + 0.473*height - 48.3
}

func JamesLeanMass(male bool, weight, height float64) float64 {
	r := weight / height
	if male {
		return 1.1*weight - 128*r*r
	}
	return 1.07*weight - 148*r*r
}

func HumeLeanMass(male bool, weight, height float64) float64 {
	if male {
		return 0.32810*weight + 0.33929*height - 29.5336
	}
	return 0.29569*weight + 0.41813*height - 43.2933
}

// FFMI is fat-free mass (kg) over height (m) squared.
func FFMI(fatFreeMass, heightM float64) float64 {
	return fatFreeMass / (heightM * heightM)
}

// NormalizedFFMI scales FFMI to a 1.8 m reference height.
func NormalizedFFMI(ffmi, heightM float64) float64 {
	return ffmi + 6.1*(1.8-heightM)
}
