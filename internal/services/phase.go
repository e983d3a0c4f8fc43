package services

import "math"

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	// LutealPhaseDays is the fixed interval between ovulation and the
	// next period, shared by every phase and fertility calculation.
	LutealPhaseDays = 14

	menstrualPhaseDays  = 5
	ovulationWindowDays = 2

	fertileWindowHighDays   = 1
	fertileWindowMediumDays = 3

	midFollicularDay = 10
)

type HormoneLevels struct {
	EstrogenLevel     string `json:"estrogen_level"`
	ProgesteroneLevel string `json:"progesterone_level"`
	TestosteroneLevel string `json:"testosterone_level"`
}

// PhaseForDay maps a 1-based cycle day onto one of the four phases.
// The follicular bound is strict so the estimated ovulation day itself
// falls into the ovulation window.
func PhaseForDay(cycleDay int, cycleLength float64) string {
	ovulationDay := cycleLength - LutealPhaseDays

	switch {
	case cycleDay <= menstrualPhaseDays:
		return PhaseMenstrual
	case float64(cycleDay) < ovulationDay:
		return PhaseFollicular
	case math.Abs(float64(cycleDay)-ovulationDay) <= ovulationWindowDays:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

// HormoneLevelsForDay returns the qualitative hormone profile for a
// cycle day. Estrogen climbs through the follicular phase, peaks around
// ovulation, and progesterone dominates the luteal phase.
func HormoneLevelsForDay(cycleDay int, cycleLength float64) HormoneLevels {
	switch PhaseForDay(cycleDay, cycleLength) {
	case PhaseMenstrual:
		return HormoneLevels{EstrogenLevel: LevelLow, ProgesteroneLevel: LevelLow, TestosteroneLevel: LevelMedium}
	case PhaseFollicular:
		estrogen := LevelHigh
		if cycleDay < midFollicularDay {
			estrogen = LevelMedium
		}
		return HormoneLevels{EstrogenLevel: estrogen, ProgesteroneLevel: LevelLow, TestosteroneLevel: LevelMedium}
	case PhaseOvulation:
		return HormoneLevels{EstrogenLevel: LevelHigh, ProgesteroneLevel: LevelLow, TestosteroneLevel: LevelHigh}
	default:
		return HormoneLevels{EstrogenLevel: LevelMedium, ProgesteroneLevel: LevelHigh, TestosteroneLevel: LevelLow}
	}
}

// FertilityForDay grades how close a cycle day sits to the estimated
// ovulation day.
func FertilityForDay(cycleDay int, cycleLength float64) string {
	distance := math.Abs(float64(cycleDay) - (cycleLength - LutealPhaseDays))

	switch {
	case distance <= fertileWindowHighDays:
		return LevelHigh
	case distance <= fertileWindowMediumDays:
		return LevelMedium
	default:
		return LevelLow
	}
}
