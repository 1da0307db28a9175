package formula

import "math"

const (
	Quetelet  ID = "quetelet"
	Trefethen ID = "trefethen"
)

// Weight in kg, height in metres.

func BMI(weight, heightM float64) float64 {
	return weight / (heightM * heightM)
}

func TrefethenBMI(weight, heightM float64) float64 {
	return 1.3 * weight / math.Pow(heightM, 2.5)
}

func PonderalIndex(weight, heightM float64) float64 {
	return weight / (heightM * heightM * heightM)
}

// WeightForBMI is the body weight that gives bmi at the given height.
func WeightForBMI(bmi, heightM float64) float64 {
	return bmi * heightM * heightM
}
