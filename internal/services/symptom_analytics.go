package services

import (
	"math"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	frequentHeadacheShare = 0.3
	regularCrampingShare  = 0.4
	highFatigueShare      = 0.5
)

type AnalyticsDateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SymptomAnalytics summarizes the raw symptom log for the analytics
// endpoint; it carries observations, not predictions.
type SymptomAnalytics struct {
	TotalEntries          int                `json:"total_entries"`
	DateRange             AnalyticsDateRange `json:"date_range"`
	MostCommonMood        string             `json:"most_common_mood,omitempty"`
	AverageCrampIntensity string             `json:"average_cramp_intensity,omitempty"`
	SymptomFrequency      map[string]int     `json:"symptom_frequency"`
	Patterns              []string           `json:"patterns"`
}

func BuildSymptomAnalytics(entries []models.SymptomEntry) SymptomAnalytics {
	analytics := SymptomAnalytics{
		SymptomFrequency: map[string]int{},
		Patterns:         []string{},
	}
	if len(entries) == 0 {
		return analytics
	}

	analytics.TotalEntries = len(entries)
	analytics.DateRange = symptomDateRange(entries)
	analytics.MostCommonMood = mostCommonMood(entries)
	analytics.AverageCrampIntensity = averageCrampIntensity(entries)

	frequency := map[string]int{
		predictedHeadache: 0,
		predictedNausea:   0,
		predictedFatigue:  0,
		predictedCramps:   0,
	}
	for _, entry := range entries {
		if entry.Headache {
			frequency[predictedHeadache]++
		}
		if entry.Nausea {
			frequency[predictedNausea]++
		}
		if entry.Fatigue {
			frequency[predictedFatigue]++
		}
		if entry.Cramps != "" && entry.Cramps != models.CrampsNone {
			frequency[predictedCramps]++
		}
	}
	analytics.SymptomFrequency = frequency

	total := float64(len(entries))
	if float64(frequency[predictedHeadache]) > total*frequentHeadacheShare {
		analytics.Patterns = append(analytics.Patterns, "Frequent headaches detected")
	}
	if float64(frequency[predictedCramps]) > total*regularCrampingShare {
		analytics.Patterns = append(analytics.Patterns, "Regular cramping pattern")
	}
	if float64(frequency[predictedFatigue]) > total*highFatigueShare {
		analytics.Patterns = append(analytics.Patterns, "High fatigue frequency")
	}

	return analytics
}

func symptomDateRange(entries []models.SymptomEntry) AnalyticsDateRange {
	dateRange := AnalyticsDateRange{
		Start: dateOnly(entries[0].Date),
		End:   dateOnly(entries[0].Date),
	}
	for _, entry := range entries[1:] {
		day := dateOnly(entry.Date)
		if day.Before(dateRange.Start) {
			dateRange.Start = day
		}
		if day.After(dateRange.End) {
			dateRange.End = day
		}
	}
	return dateRange
}

// mostCommonMood breaks count ties lexicographically so the report is
// deterministic.
func mostCommonMood(entries []models.SymptomEntry) string {
	counts := make(map[string]int)
	for _, entry := range entries {
		if entry.Mood != "" {
			counts[entry.Mood]++
		}
	}

	best := ""
	bestCount := 0
	for mood, count := range counts {
		if count > bestCount || (count == bestCount && mood < best) {
			best = mood
			bestCount = count
		}
	}
	return best
}

func averageCrampIntensity(entries []models.SymptomEntry) string {
	intensities := map[string]int{
		models.CrampsMild:     1,
		models.CrampsModerate: 2,
		models.CrampsStrong:   3,
	}

	total := 0
	count := 0
	for _, entry := range entries {
		if value, ok := intensities[entry.Cramps]; ok {
			total += value
			count++
		}
	}
	if count == 0 {
		return ""
	}

	switch int(math.Round(float64(total) / float64(count))) {
	case 3:
		return models.CrampsStrong
	case 2:
		return models.CrampsModerate
	default:
		return models.CrampsMild
	}
}
