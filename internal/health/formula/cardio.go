package formula

const (
	Cooper         ID = "cooper"
	Rockport       ID = "rockport"
	Uth            ID = "uth"
	OneAndHalfMile ID = "one_and_half_mile"
)

// VO2max estimates in ml/kg/min.

// CooperVO2Max takes the distance covered in 12 minutes, in metres.
func CooperVO2Max(distance float64) float64 {
	return (distance - 504.9) / 44.73
}

// RockportVO2Max takes body weight in kg (converted to lb as in the original
// regression), walk time in minutes and heart rate at the finish.
func RockportVO2Max(male bool, weight, age, minutes, heartRate float64) float64 {
	sex := 0.0
	if male {
		sex = 1
	}
	pounds := weight * 2.20462
	return 132.853 - 0.0769*pounds - 0.3877*age + 6.315*sex - 3.2649*minutes - 0.1565*heartRate
}

func UthVO2Max(maxHR, restingHR float64) float64 {
	return 15.3 * maxHR / restingHR
}

// OneAndHalfMileVO2Max takes the 1.5-mile run time in minutes.
func OneAndHalfMileVO2Max(minutes float64) float64 {
	return 3.5 + 483/minutes
}
