package formula

import "math"

const (
	DuBois      ID = "du_bois"
	Mosteller   ID = "mosteller"
	Haycock     ID = "haycock"
	GehanGeorge ID = "gehan_george"
	Boyd        ID = "boyd"
)

// Body surface area in m². Weight in kg, height in cm.

func DuBoisBSA(weight, height float64) float64 {
	return 0.007184 * math.Pow(weight, 0.425) * math.Pow(height, 0.725)
}

func MostellerBSA(weight, height float64) float64 {
	return math.Sqrt(height * weight / 3600)
}

func HaycockBSA(weight, height float64) float64 {
	return 0.024265 * math.Pow(weight, 0.5378) * math.Pow(height, 0.3964)
}

func GehanGeorgeBSA(weight, height float64) float64 {
	return 0.0235 * math.Pow(weight, 0.51456) * math.Pow(height, 0.42246)
}

// BoydBSA takes weight in grams internally, hence the 1000 factor.
func BoydBSA(weight, height float64) float64 {
	grams := weight * 1000
	return 0.0003207 * math.Pow(height, 0.3) * math.Pow(grams, 0.7285-0.0188*math.Log10(grams))
}
