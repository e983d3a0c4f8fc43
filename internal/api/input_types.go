package api

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type cycleEntryInput struct {
	Date             string   `json:"date"`
	IsPeriodDay      bool     `json:"is_period_day"`
	FlowIntensity    string   `json:"flow_intensity"`
	Moods            []string `json:"moods"`
	PhysicalSymptoms []string `json:"physical_symptoms"`
	Notes            string   `json:"notes"`
	SleepHours       *float64 `json:"sleep_hours"`
	ExerciseMinutes  *int     `json:"exercise_minutes"`
	WaterIntake      *float64 `json:"water_intake"`
}

type symptomEntryInput struct {
	Mood         string `json:"mood"`
	Cramps       string `json:"cramps"`
	Headache     bool   `json:"headache"`
	Nausea       bool   `json:"nausea"`
	Fatigue      bool   `json:"fatigue"`
	FlowLevel    string `json:"flow_level"`
	SleepQuality string `json:"sleep_quality"`
	FoodCravings string `json:"food_cravings"`
	Notes        string `json:"notes"`
}
