package models

import "time"

const (
	CrampsNone     = "none"
	CrampsMild     = "mild"
	CrampsModerate = "moderate"
	CrampsStrong   = "strong"
)

const (
	FlowLevelNone   = "none"
	FlowLevelLight  = "light"
	FlowLevelMedium = "medium"
	FlowLevelHeavy  = "heavy"
)

const (
	SleepPoor      = "poor"
	SleepFair      = "fair"
	SleepGood      = "good"
	SleepExcellent = "excellent"
)

// Daily-log moods differ from the cycle-calendar mood set; both come
// from the tracking UI and are validated independently.
const (
	LogMoodHappy     = "happy"
	LogMoodSad       = "sad"
	LogMoodIrritated = "irritated"
	LogMoodAnxious   = "anxious"
	LogMoodCalm      = "calm"
	LogMoodExcited   = "excited"
	LogMoodDepressed = "depressed"
)

// SymptomEntry is one day of the lightweight symptom log that feeds the
// next-day predictor, kept separate from CycleEntry on purpose.
type SymptomEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_symptom_user_date" json:"user_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_symptom_user_date" json:"date"`
	Mood         string    `json:"mood,omitempty"`
	Cramps       string    `json:"cramps,omitempty"`
	Headache     bool      `gorm:"not null;default:false" json:"headache"`
	Nausea       bool      `gorm:"not null;default:false" json:"nausea"`
	Fatigue      bool      `gorm:"not null;default:false" json:"fatigue"`
	FlowLevel    string    `json:"flow_level,omitempty"`
	SleepQuality string    `json:"sleep_quality,omitempty"`
	FoodCravings string    `json:"food_cravings,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ValidLogMoods() []string {
	return []string{
		LogMoodHappy, LogMoodSad, LogMoodIrritated, LogMoodAnxious,
		LogMoodCalm, LogMoodExcited, LogMoodDepressed,
	}
}

func ValidCrampsLevels() []string {
	return []string{CrampsNone, CrampsMild, CrampsModerate, CrampsStrong}
}

func ValidFlowLevels() []string {
	return []string{FlowLevelNone, FlowLevelLight, FlowLevelMedium, FlowLevelHeavy}
}

func ValidSleepQualities() []string {
	return []string{SleepPoor, SleepFair, SleepGood, SleepExcellent}
}
