package formula

const (
	WaistHipRatio    ID = "waist_hip_ratio"
	WaistHeightRatio ID = "waist_height_ratio"
)

func WaistHip(waist, hip float64) float64 {
	return waist / hip
}

func WaistHeight(waist, height float64) float64 {
	return waist / height
}
