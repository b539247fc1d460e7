package trainer

// modeOrder is the display order of the modes.
var modeOrder = []Mode{
	ModeBodyAnalysis,
	ModeWorkoutPlan,
	ModeNutritionPlan,
	ModeFitnessTips,
}

var modeTable = map[Mode]ModeSpec{
	ModeBodyAnalysis: {
		Mode:     ModeBodyAnalysis,
		Label:    "Body Analysis",
		Heading:  "Body Analysis:",
		Hint:     "Upload a full-body picture",
		Action:   "Analyze Body",
		Template: BodyAnalysisPrompt,
		Input:    InputImage,
		Entry:    EntryVision,
	},
	ModeWorkoutPlan: {
		Mode:     ModeWorkoutPlan,
		Label:    "Workout Plan",
		Heading:  "Workout Plan:",
		Hint:     "Enter your fitness goals, level, time, and equipment:",
		Action:   "Generate Workout Plan",
		Template: WorkoutPlanPrompt,
		Input:    InputText,
		Entry:    EntryText,
	},
	ModeNutritionPlan: {
		Mode:     ModeNutritionPlan,
		Label:    "Nutrition Plan",
		Heading:  "Nutrition Plan:",
		Hint:     "Enter your fitness goals, dietary preferences, and calorie intake:",
		Action:   "Generate Nutrition Plan",
		Template: NutritionPlanPrompt,
		Input:    InputText,
		Entry:    EntryText,
	},
	ModeFitnessTips: {
		Mode:     ModeFitnessTips,
		Label:    "Fitness Tips",
		Heading:  "Fitness Tips:",
		Hint:     "Enter your fitness questions or topics:",
		Action:   "Get Fitness Tips",
		Template: FitnessTipsPrompt,
		Input:    InputText,
		Entry:    EntryText,
	},
}

// Lookup returns the ModeSpec for mode.
func Lookup(mode Mode) (ModeSpec, error) {
	spec, ok := modeTable[mode]
	if !ok {
		return ModeSpec{}, ErrUnknownMode
	}
	return spec, nil
}

// Modes returns all mode specs in display order.
func Modes() []ModeSpec {
	out := make([]ModeSpec, 0, len(modeOrder))
	for _, m := range modeOrder {
		out = append(out, modeTable[m])
	}
	return out
}
