package interpret

import (
	"errors"
	"fmt"
)

// ErrMissingText means no narrative was authored for a metric/category pair.
var ErrMissingText = errors.New("no interpretation text")

// Overall is the category key used by metrics that are not classified.
const Overall = "overall"

type entry struct {
	narrative string
	advice    []string
}

// Universal advice blocks appended after the category-specific block.
var (
	ClinicalSafety = []string{
		"These estimates support, but do not replace, assessment by a qualified clinician.",
		"Discuss significant changes in weight, diet or medication with your doctor first.",
	}
	TrainingSafety = []string{
		"Warm up thoroughly and use a spotter or safety bars for near-maximal attempts.",
		"Stop immediately if you feel sharp pain, dizziness or chest discomfort.",
	}
	DosingSafety = []string{
		"Dose examples are illustrative only; prescribing must follow the product label and local protocol.",
		"Cap or adjust doses for renal function, toxicity and the prescriber's clinical judgement.",
	}
)

var texts = map[string]map[string]entry{
	"one_rep_max": {
		Overall: {
			narrative: "Your estimated one-rep max is the average of five published prediction equations. Estimates are most accurate for sets of ten repetitions or fewer.",
			advice: []string{
				"Use the percentage table to choose working loads rather than testing true maximums often.",
				"Re-estimate every four to six weeks as strength improves.",
			},
		},
	},
	"working_load": {
		Overall: {
			narrative: "The working load is the weight you should manage for the chosen number of repetitions, derived from your one-rep max.",
			advice: []string{
				"Leave one or two repetitions in reserve on most working sets.",
			},
		},
	},
	"strength_ratio": {
		"untrained": {
			narrative: "Your lift relative to body weight is below typical beginner standards.",
			advice:    []string{"Focus on technique with light loads two to three times per week.", "Add weight in small steps while every repetition stays controlled."},
		},
		"beginner": {
			narrative: "Your lift relative to body weight matches a beginner who has trained for a few months.",
			advice:    []string{"Linear progression, adding a little load each session, still works well at this stage."},
		},
		"novice": {
			narrative: "Your lift relative to body weight matches a novice with steady training history.",
			advice:    []string{"Move to weekly progression and track volume across the week."},
		},
		"intermediate": {
			narrative: "Your lift relative to body weight reaches intermediate standards.",
			advice:    []string{"Periodised programmes with planned deloads will help you keep progressing."},
		},
		"advanced": {
			narrative: "Your lift relative to body weight is at an advanced level reached after years of training.",
			advice:    []string{"Progress will be slow; prioritise recovery, sleep and targeted accessory work."},
		},
		"elite": {
			narrative: "Your lift relative to body weight is at an elite, competitive level.",
			advice:    []string{"Work with a coach on peaking and long-term injury prevention."},
		},
	},
	"bmr": {
		Overall: {
			narrative: "Basal metabolic rate is the energy your body uses at complete rest. Mifflin-St Jeor is reported as the reference estimate; the other equations are shown as deviations from it.",
			advice: []string{
				"Multiply BMR by your activity factor to estimate daily energy needs.",
				"A deficit of about 500 kcal per day leads to roughly 0.5 kg of weight loss per week.",
			},
		},
	},
	"bsa": {
		Overall: {
			narrative: "Body surface area is the mean of five published equations. Mosteller is the recommended formula and the other equations are shown as deviations from it.",
			advice: []string{
				"Use the same BSA formula consistently across treatment cycles.",
				"Recalculate BSA when body weight changes by more than 10 percent.",
			},
		},
	},
	"body_fat": {
		"essential": {
			narrative: "Your body fat is at or below the essential level needed for basic physiological function.",
			advice:    []string{"Avoid further fat loss and increase energy intake if you are still dieting.", "Very low body fat can disrupt hormones; seek medical advice if it persists."},
		},
		"athletes": {
			narrative: "Your body fat is in the range typical for athletes.",
			advice:    []string{"Maintain intake that matches training load to protect performance and recovery."},
		},
		"fitness": {
			narrative: "Your body fat is in the fitness range, associated with good health.",
			advice:    []string{"Keep up regular resistance and aerobic training to maintain this level."},
		},
		"average": {
			narrative: "Your body fat is in the average range for adults.",
			advice:    []string{"A modest energy deficit combined with strength training will lower body fat while keeping muscle."},
		},
		"obese": {
			narrative: "Your body fat is in the obese range, which is associated with higher cardiometabolic risk.",
			advice:    []string{"Aim for gradual loss of 0.5 to 1 percent of body weight per week.", "Combine dietary change with daily activity and discuss a plan with your doctor."},
		},
	},
	"waist_hip_ratio": {
		"low": {
			narrative: "Your waist-to-hip ratio indicates low risk from abdominal fat.",
			advice:    []string{"Maintain current activity and diet habits."},
		},
		"moderate": {
			narrative: "Your waist-to-hip ratio indicates moderate risk from abdominal fat.",
			advice:    []string{"Reducing refined carbohydrates and alcohol helps lower abdominal fat.", "Aim for at least 150 minutes of moderate activity per week."},
		},
		"high": {
			narrative: "Your waist-to-hip ratio indicates high risk of metabolic complications from abdominal fat.",
			advice:    []string{"Ask your doctor about blood pressure, lipid and glucose screening.", "Start with daily walking and gradually add resistance training."},
		},
	},
	"waist_height_ratio": {
		"take_care": {
			narrative: "Your waist is small relative to your height.",
			advice:    []string{"Check that your body weight is not too low for your height."},
		},
		"healthy": {
			narrative: "Your waist is less than half your height, the commonly recommended target.",
			advice:    []string{"Keep your waist below half your height."},
		},
		"increased": {
			narrative: "Your waist is more than half your height, which indicates increased risk.",
			advice:    []string{"Small reductions in waist size lower cardiometabolic risk."},
		},
		"high": {
			narrative: "Your waist is at least 60 percent of your height, which indicates high risk.",
			advice:    []string{"Seek professional support to reduce abdominal fat."},
		},
	},
	"waist_circumference": {
		"low": {
			narrative: "Your waist circumference is below the threshold for your sex and population group.",
			advice:    []string{"Re-measure every few months at the midpoint between the lowest rib and the hip bone."},
		},
		"increased": {
			narrative: "Your waist circumference is above the increased-risk threshold for your sex and population group.",
			advice:    []string{"Avoid further gains in waist size."},
		},
		"high": {
			narrative: "Your waist circumference is above the substantially-increased-risk threshold for your sex and population group.",
			advice:    []string{"Waist reduction should be a priority; discuss screening with your doctor."},
		},
	},
	"ffmi": {
		"below_average": {
			narrative: "Your fat-free mass index is below average.",
			advice:    []string{"Progressive resistance training and adequate protein (1.6 g/kg/day) will build lean mass."},
		},
		"average": {
			narrative: "Your fat-free mass index is average.",
			advice:    []string{"Consistent resistance training can move you into the above-average range."},
		},
		"above_average": {
			narrative: "Your fat-free mass index is above average.",
			advice:    []string{"Keep training volume progressive to continue gaining lean mass."},
		},
		"excellent": {
			narrative: "Your fat-free mass index is excellent.",
			advice:    []string{"Further gains will be slow; focus on strength and recovery."},
		},
		"superior": {
			narrative: "Your fat-free mass index is superior and close to the typical natural limit.",
			advice:    []string{"Maintain with balanced training and nutrition."},
		},
		"exceptional": {
			narrative: "Your fat-free mass index is beyond what is typically reached without pharmacological aid.",
			advice:    []string{"Double-check the body-fat measurement; skinfold errors inflate this index."},
		},
	},
	"vo2max": {
		"very_poor": {
			narrative: "Your estimated VO2max is very poor for your age and sex.",
			advice:    []string{"Start with brisk walking most days and build duration gradually.", "Get medical clearance before vigorous exercise."},
		},
		"poor": {
			narrative: "Your estimated VO2max is poor for your age and sex.",
			advice:    []string{"Three to five aerobic sessions per week will raise VO2max within weeks."},
		},
		"fair": {
			narrative: "Your estimated VO2max is fair for your age and sex.",
			advice:    []string{"Add one interval session per week to your aerobic base training."},
		},
		"good": {
			narrative: "Your estimated VO2max is good for your age and sex.",
			advice:    []string{"Mix long easy sessions with intervals to keep improving."},
		},
		"excellent": {
			narrative: "Your estimated VO2max is excellent for your age and sex.",
			advice:    []string{"Maintain with structured training and adequate recovery."},
		},
		"superior": {
			narrative: "Your estimated VO2max is superior for your age and sex.",
			advice:    []string{"You are in the top range; periodise training around your performance goals."},
		},
	},
	"max_heart_rate": {
		Overall: {
			narrative: "Maximum heart rate is predicted from age by several equations and averaged. Individual values can differ by 10 to 12 bpm.",
			advice: []string{
				"Spend most aerobic training time in zones 1 and 2.",
				"A supervised exercise test gives a measured maximum if you need precise zones.",
			},
		},
	},
	"bmi": {
		"underweight": {
			narrative: "Your BMI is in the underweight range.",
			advice:    []string{"Increase energy intake with nutrient-dense foods.", "Unintentional weight loss should be assessed by a doctor."},
		},
		"normal": {
			narrative: "Your BMI is in the normal range.",
			advice:    []string{"Maintain your weight with balanced nutrition and regular activity."},
		},
		"overweight": {
			narrative: "Your BMI is in the overweight range.",
			advice:    []string{"Losing 5 percent of body weight brings measurable health benefits.", "Check waist circumference too, since BMI does not show fat distribution."},
		},
		"obese_1": {
			narrative: "Your BMI is in obesity class I.",
			advice:    []string{"A structured weight-management programme is recommended."},
		},
		"obese_2": {
			narrative: "Your BMI is in obesity class II.",
			advice:    []string{"Discuss medical weight-management options with your doctor."},
		},
		"obese_3": {
			narrative: "Your BMI is in obesity class III.",
			advice:    []string{"Seek specialist care; medical and surgical options may be appropriate."},
		},
	},
	"ibw": {
		Overall: {
			narrative: "Ideal body weight is reported from the Devine equation, the usual clinical dosing reference, with Robinson, Miller and Hamwi shown as deviations.",
			advice: []string{
				"Ideal body weight is a dosing reference, not a personal weight goal.",
			},
		},
	},
}

// Narrative returns the fixed interpretation text for a metric category.
func Narrative(metric, category string) (string, error) {
	e, err := lookup(metric, category)
	if err != nil {
		return "", err
	}
	return e.narrative, nil
}

// Advice returns the category block followed by the universal blocks.
func Advice(metric, category string, universal ...[]string) ([]string, error) {
	e, err := lookup(metric, category)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(e.advice)+2*len(universal))
	out = append(out, e.advice...)
	for _, block := range universal {
		out = append(out, block...)
	}
	return out, nil
}

func lookup(metric, category string) (entry, error) {
	e, ok := texts[metric][category]
	if !ok {
		return entry{}, fmt.Errorf("%w: %s/%s", ErrMissingText, metric, category)
	}
	return e, nil
}
