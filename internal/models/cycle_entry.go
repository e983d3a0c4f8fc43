package models

import "time"

const (
	FlowIntensityLight    = "light"
	FlowIntensityMedium   = "medium"
	FlowIntensityHeavy    = "heavy"
	FlowIntensitySpotting = "spotting"
)

const (
	MoodHappy     = "happy"
	MoodSad       = "sad"
	MoodAnxious   = "anxious"
	MoodIrritable = "irritable"
	MoodCalm      = "calm"
	MoodEnergetic = "energetic"
	MoodTired     = "tired"
	MoodEmotional = "emotional"
)

const (
	SymptomCramps           = "cramps"
	SymptomBloating         = "bloating"
	SymptomHeadache         = "headache"
	SymptomBreastTenderness = "breast_tenderness"
	SymptomBackPain         = "back_pain"
	SymptomNausea           = "nausea"
	SymptomAcne             = "acne"
	SymptomFoodCravings     = "food_cravings"
)

// CycleEntry is one tracked day of the menstrual calendar. Moods and
// physical symptoms are free-form sets constrained to the enums above
// by input validation, not by the schema.
type CycleEntry struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:uidx_cycle_user_date" json:"user_id"`
	Date             time.Time `gorm:"type:date;not null;uniqueIndex:uidx_cycle_user_date" json:"date"`
	IsPeriodDay      bool      `gorm:"not null;default:false" json:"is_period_day"`
	FlowIntensity    string    `json:"flow_intensity,omitempty"`
	Moods            []string  `gorm:"serializer:json" json:"moods"`
	PhysicalSymptoms []string  `gorm:"serializer:json" json:"physical_symptoms"`
	Notes            string    `json:"notes,omitempty"`
	SleepHours       *float64  `json:"sleep_hours,omitempty"`
	ExerciseMinutes  *int      `json:"exercise_minutes,omitempty"`
	WaterIntake      *float64  `json:"water_intake,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ValidFlowIntensities() []string {
	return []string{FlowIntensityLight, FlowIntensityMedium, FlowIntensityHeavy, FlowIntensitySpotting}
}

func ValidMoods() []string {
	return []string{
		MoodHappy, MoodSad, MoodAnxious, MoodIrritable,
		MoodCalm, MoodEnergetic, MoodTired, MoodEmotional,
	}
}

func ValidPhysicalSymptoms() []string {
	return []string{
		SymptomCramps, SymptomBloating, SymptomHeadache, SymptomBreastTenderness,
		SymptomBackPain, SymptomNausea, SymptomAcne, SymptomFoodCravings,
	}
}
