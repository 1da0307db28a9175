package formula

import "math"

const (
	Brzycki  ID = "brzycki"
	Epley    ID = "epley"
	Lander   ID = "lander"
	OConner  ID = "oconner"
	Lombardi ID = "lombardi"
)

// One-rep-max estimates from a load lifted for reps repetitions.
// BrzyckiOneRM is singular at reps = 37; every caller restricts reps to [1, 20].

func BrzyckiOneRM(load float64, reps int) float64 {
	return load * 36 / (37 - float64(reps))
}

func EpleyOneRM(load float64, reps int) float64 {
	return load * (1 + float64(reps)/30)
}

// LanderOneRM is singular near reps = 37.9.
func LanderOneRM(load float64, reps int) float64 {
	return 100 * load / (101.3 - 2.67123*float64(reps))
}

func OConnerOneRM(load float64, reps int) float64 {
	return load * (1 + 0.025*float64(reps))
}

func LombardiOneRM(load float64, reps int) float64 {
	return load * math.Pow(float64(reps), 0.10)
}

// BrzyckiLoad inverts BrzyckiOneRM: the load that can be lifted reps times.
func BrzyckiLoad(oneRM float64, reps int) float64 {
	return oneRM * (37 - float64(reps)) / 36
}

// EpleyLoad inverts EpleyOneRM.
func EpleyLoad(oneRM float64, reps int) float64 {
	return oneRM / (1 + float64(reps)/30)
}
