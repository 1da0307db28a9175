package formula

const (
	Fox     ID = "fox"
	Tanaka  ID = "tanaka"
	Gellish ID = "gellish"
	Nes     ID = "nes"
	Gulati  ID = "gulati"
)

// Age-predicted maximal heart rate in bpm.

func FoxMaxHR(age float64) float64 {
	return 220 - age
}

func TanakaMaxHR(age float64) float64 {
	return 208 - 0.7*age
}

func GellishMaxHR(age float64) float64 {
	return 207 - 0.7*age
}

func NesMaxHR(age float64) float64 {
	return 211 - 0.64*age
}

// GulatiMaxHR was derived from women only.
func GulatiMaxHR(age float64) float64 {
	return 206 - 0.88*age
}

// Karvonen returns the target heart rate at intensity pct (0-100) of heart
// rate reserve.
func Karvonen(maxHR, restingHR, pct float64) float64 {
	return restingHR + (maxHR-restingHR)*pct/100
}
