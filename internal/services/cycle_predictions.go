package services

import (
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	// historicalMoodShare is the fraction of all entries a mood must
	// appear in before personal history supplements the phase table.
	historicalMoodShare = 0.1

	maxPredictedMoods = 3
)

type CyclePrediction struct {
	Date              time.Time     `json:"date"`
	CycleDay          int           `json:"cycle_day"`
	Phase             string        `json:"phase"`
	PredictedMood     []string      `json:"predicted_mood"`
	PredictedSymptoms []string      `json:"predicted_symptoms"`
	HormoneLevels     HormoneLevels `json:"hormone_levels"`
	FertilityStatus   string        `json:"fertility_status"`
}

// GeneratePredictions projects one prediction per day starting at
// today. Without a known period start there is nothing to anchor the
// projection, so the result is empty.
func GeneratePredictions(entries []models.CycleEntry, daysAhead int, today time.Time) []CyclePrediction {
	stats := CalculateCycleStats(entries, today)
	predictions := make([]CyclePrediction, 0, daysAhead)

	if stats.LastPeriodStart == nil {
		return predictions
	}

	cycleLength := float64(DefaultCycleLength)
	if stats.AverageCycleLength != nil {
		cycleLength = *stats.AverageCycleLength
	}

	frequentMoods := frequentHistoricalMoods(entries)
	start := dateOnly(today)

	for i := 0; i < daysAhead; i++ {
		predictionDate := start.AddDate(0, 0, i)

		// Wrapped, unlike CurrentCycleDay in CalculateCycleStats: a
		// future date is located inside the repeating cycle.
		daysSinceLastPeriod := daysBetween(*stats.LastPeriodStart, predictionDate)
		cycleDay := flooredMod(daysSinceLastPeriod, int(cycleLength)) + 1

		phase := PhaseForDay(cycleDay, cycleLength)
		predictions = append(predictions, CyclePrediction{
			Date:              predictionDate,
			CycleDay:          cycleDay,
			Phase:             phase,
			PredictedMood:     predictedMoodsFor(phase, frequentMoods),
			PredictedSymptoms: symptomsForPhase(phase),
			HormoneLevels:     HormoneLevelsForDay(cycleDay, cycleLength),
			FertilityStatus:   FertilityForDay(cycleDay, cycleLength),
		})
	}

	return predictions
}

func moodsForPhase(phase string) []string {
	switch phase {
	case PhaseMenstrual:
		return []string{models.MoodTired, models.MoodEmotional, models.MoodIrritable}
	case PhaseFollicular:
		return []string{models.MoodEnergetic, models.MoodHappy, models.MoodCalm}
	case PhaseOvulation:
		return []string{models.MoodHappy, models.MoodEnergetic, "confident"}
	case PhaseLuteal:
		return []string{models.MoodAnxious, models.MoodIrritable, models.MoodSad}
	default:
		return nil
	}
}

func symptomsForPhase(phase string) []string {
	switch phase {
	case PhaseMenstrual:
		return []string{models.SymptomCramps, models.SymptomBloating, models.SymptomBackPain}
	case PhaseOvulation:
		return []string{models.SymptomBreastTenderness}
	case PhaseLuteal:
		return []string{models.SymptomBloating, models.SymptomHeadache, models.SymptomFoodCravings, models.SymptomAcne}
	default:
		return []string{}
	}
}

// frequentHistoricalMoods lists moods logged in more than
// historicalMoodShare of all entries, sorted for deterministic merging.
func frequentHistoricalMoods(entries []models.CycleEntry) []string {
	if len(entries) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		for _, mood := range entry.Moods {
			counts[mood]++
		}
	}

	threshold := float64(len(entries)) * historicalMoodShare
	frequent := make([]string, 0, len(counts))
	for mood, count := range counts {
		if float64(count) > threshold {
			frequent = append(frequent, mood)
		}
	}
	sort.Strings(frequent)
	return frequent
}

// predictedMoodsFor merges the phase table with frequent personal moods
// and keeps the first three unique values, table entries first.
func predictedMoodsFor(phase string, frequentMoods []string) []string {
	merged := make([]string, 0, maxPredictedMoods)
	seen := make(map[string]struct{})

	for _, mood := range moodsForPhase(phase) {
		if _, ok := seen[mood]; ok {
			continue
		}
		seen[mood] = struct{}{}
		merged = append(merged, mood)
	}
	for _, mood := range frequentMoods {
		if _, ok := seen[mood]; ok {
			continue
		}
		seen[mood] = struct{}{}
		merged = append(merged, mood)
	}

	if len(merged) > maxPredictedMoods {
		merged = merged[:maxPredictedMoods]
	}
	return merged
}

// flooredMod keeps the wrapped cycle day positive even when the
// prediction date precedes the last recorded period start.
func flooredMod(value int, modulus int) int {
	remainder := value % modulus
	if remainder < 0 {
		remainder += modulus
	}
	return remainder
}
