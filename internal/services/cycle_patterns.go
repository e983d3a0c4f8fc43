package services

import (
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

// CycleAnalysis bundles the full exploratory report served by the
// analysis endpoint.
type CycleAnalysis struct {
	Stats           CycleStats          `json:"stats"`
	Predictions     []CyclePrediction   `json:"predictions"`
	MoodPatterns    map[string][]string `json:"mood_patterns"`
	SymptomPatterns map[string][]string `json:"symptom_patterns"`
}

func BuildCycleAnalysis(entries []models.CycleEntry, daysAhead int, today time.Time) CycleAnalysis {
	return CycleAnalysis{
		Stats:           CalculateCycleStats(entries, today),
		Predictions:     GeneratePredictions(entries, daysAhead, today),
		MoodPatterns:    AnalyzeMoodPatterns(entries),
		SymptomPatterns: AnalyzeSymptomPatterns(entries),
	}
}

// AnalyzeMoodPatterns buckets every logged mood under the phase the
// entry's date fell into, relative to the nearest preceding period
// start. Entries before the first tracked period are skipped.
func AnalyzeMoodPatterns(entries []models.CycleEntry) map[string][]string {
	return analyzePatternsByPhase(entries, func(entry models.CycleEntry) []string {
		return entry.Moods
	})
}

// AnalyzeSymptomPatterns is the physical-symptom counterpart of
// AnalyzeMoodPatterns.
func AnalyzeSymptomPatterns(entries []models.CycleEntry) map[string][]string {
	return analyzePatternsByPhase(entries, func(entry models.CycleEntry) []string {
		return entry.PhysicalSymptoms
	})
}

func analyzePatternsByPhase(entries []models.CycleEntry, values func(models.CycleEntry) []string) map[string][]string {
	sorted := sortedByDate(entries)
	starts := periodStarts(sorted)
	cycleLength := observedCycleLength(starts)

	buckets := map[string]map[string]struct{}{
		PhaseMenstrual:  {},
		PhaseFollicular: {},
		PhaseOvulation:  {},
		PhaseLuteal:     {},
	}

	for _, entry := range sorted {
		observed := values(entry)
		if len(observed) == 0 {
			continue
		}

		start, ok := nearestPrecedingStart(starts, dateOnly(entry.Date))
		if !ok {
			continue
		}

		cycleDay := daysBetween(start, dateOnly(entry.Date)) + 1
		phase := PhaseForDay(cycleDay, cycleLength)
		for _, value := range observed {
			buckets[phase][value] = struct{}{}
		}
	}

	patterns := make(map[string][]string, len(buckets))
	for phase, set := range buckets {
		unique := make([]string, 0, len(set))
		for value := range set {
			unique = append(unique, value)
		}
		sort.Strings(unique)
		patterns[phase] = unique
	}
	return patterns
}

// observedCycleLength mirrors the averaging in CalculateCycleStats so
// pattern bucketing and stats agree on phase boundaries.
func observedCycleLength(starts []time.Time) float64 {
	lengths := make([]int, 0, len(starts))
	for i := 1; i < len(starts); i++ {
		length := daysBetween(starts[i-1], starts[i])
		if length >= minPlausibleCycleDays && length <= maxPlausibleCycleDays {
			lengths = append(lengths, length)
		}
	}
	if len(lengths) == 0 {
		return DefaultCycleLength
	}
	return averageInts(lengths)
}

func nearestPrecedingStart(starts []time.Time, day time.Time) (time.Time, bool) {
	for i := len(starts) - 1; i >= 0; i-- {
		if !starts[i].After(day) {
			return starts[i], true
		}
	}
	return time.Time{}, false
}
