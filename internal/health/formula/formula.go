// Package formula holds one pure function per published equation, grouped by
// metric family. Functions do no validation: callers must keep arguments
// inside each equation's documented domain.
package formula

// ID names a single published equation.
type ID string

type Unit string

const (
	UnitKg      Unit = "kg"
	UnitKcalDay Unit = "kcal/day"
	UnitSquareM Unit = "m²"
	UnitPercent Unit = "%"
	UnitRatio   Unit = "ratio"
	UnitKgM2    Unit = "kg/m²"
	UnitMlKgMin Unit = "ml/kg/min"
	UnitBPM     Unit = "bpm"
)

var names = map[ID]string{
	Brzycki:  "Brzycki",
	Epley:    "Epley",
	Lander:   "Lander",
	OConner:  "O'Conner",
	Lombardi: "Lombardi",

	MifflinStJeor:  "Mifflin-St Jeor",
	HarrisBenedict: "Harris-Benedict (revised)",
	KatchMcArdle:   "Katch-McArdle",
	Cunningham:     "Cunningham",

	DuBois:      "Du Bois",
	Mosteller:   "Mosteller",
	Haycock:     "Haycock",
	GehanGeorge: "Gehan-George",
	Boyd:        "Boyd",

	JacksonPollock3: "Jackson-Pollock 3-site",
	JacksonPollock7: "Jackson-Pollock 7-site",
	DurninWomersley: "Durnin-Womersley 4-site",
	USNavy:          "U.S. Navy circumference",
	Deurenberg:      "Deurenberg (BMI)",

	WaistHipRatio:    "Waist-to-hip ratio",
	WaistHeightRatio: "Waist-to-height ratio",

	LeanMassFromBodyFat: "Measured body fat",
	Boer:                "Boer",
	James:               "James",
	Hume:                "Hume",

	Cooper:         "Cooper 12-minute run",
	Rockport:       "Rockport 1-mile walk",
	Uth:            "Uth heart-rate ratio",
	OneAndHalfMile: "1.5-mile run",

	Fox:     "Fox",
	Tanaka:  "Tanaka",
	Gellish: "Gellish",
	Nes:     "Nes",
	Gulati:  "Gulati",

	Quetelet:  "Quetelet (BMI)",
	Trefethen: "Trefethen (new BMI)",

	Devine:   "Devine",
	Robinson: "Robinson",
	Miller:   "Miller",
	Hamwi:    "Hamwi",
}

// Name is the display name of the equation; unknown ids fall back to the id.
func (id ID) Name() string {
	if n, ok := names[id]; ok {
		return n
	}
	return string(id)
}
