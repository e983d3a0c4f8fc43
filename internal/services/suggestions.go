package services

import (
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	maxSuggestions = 10

	// preventionThreshold gates which predicted symptoms earn a
	// preventive suggestion.
	preventionThreshold = 0.7
)

// SuggestionReport pairs the ranked advice list with the condition
// names that produced it.
type SuggestionReport struct {
	Suggestions     []Suggestion `json:"suggestions"`
	BasedOnSymptoms []string     `json:"based_on_symptoms"`
	Date            time.Time    `json:"date"`
}

// GenerateSuggestions maps today's logged symptoms plus high-probability
// predictions onto the static advice catalog, deduplicates by title and
// category, and keeps the ten highest-priority entries.
func GenerateSuggestions(current *models.SymptomEntry, predicted []PredictedSymptom, today time.Time) SuggestionReport {
	catalog := suggestionCatalog()

	suggestions := make([]Suggestion, 0)
	basedOn := make([]string, 0)

	if current != nil {
		currentSuggestions, currentConditions := currentSymptomSuggestions(catalog, current)
		suggestions = append(suggestions, currentSuggestions...)
		basedOn = append(basedOn, currentConditions...)
	}

	preventive, preventiveConditions := preventiveSuggestions(catalog, predicted)
	suggestions = append(suggestions, preventive...)
	basedOn = append(basedOn, preventiveConditions...)

	suggestions = append(suggestions, generalWellnessSuggestions()...)

	reportDate := dateOnly(today)
	if current != nil {
		reportDate = dateOnly(current.Date)
	}

	return SuggestionReport{
		Suggestions:     deduplicateSuggestions(suggestions),
		BasedOnSymptoms: uniqueStrings(basedOn),
		Date:            reportDate,
	}
}

func currentSymptomSuggestions(catalog map[string][]Suggestion, current *models.SymptomEntry) ([]Suggestion, []string) {
	suggestions := make([]Suggestion, 0)
	basedOn := make([]string, 0)

	if current.Headache {
		suggestions = append(suggestions, catalog[conditionHeadache]...)
		basedOn = append(basedOn, "headache")
	}
	if current.Cramps == models.CrampsModerate || current.Cramps == models.CrampsStrong {
		suggestions = append(suggestions, catalog[conditionCramps]...)
		basedOn = append(basedOn, "cramps")
	}
	if current.Nausea {
		suggestions = append(suggestions, catalog[conditionNausea]...)
		basedOn = append(basedOn, "nausea")
	}
	if current.Fatigue {
		suggestions = append(suggestions, catalog[conditionFatigue]...)
		basedOn = append(basedOn, "fatigue")
	}
	if lowMood(current.Mood) {
		suggestions = append(suggestions, catalog[conditionMood]...)
		basedOn = append(basedOn, "mood")
	}
	if current.SleepQuality == models.SleepPoor || current.SleepQuality == models.SleepFair {
		suggestions = append(suggestions, catalog[conditionSleep]...)
		basedOn = append(basedOn, "sleep_quality")
	}

	return suggestions, basedOn
}

func lowMood(mood string) bool {
	switch mood {
	case models.LogMoodSad, models.LogMoodIrritated, models.LogMoodAnxious, models.LogMoodDepressed:
		return true
	default:
		return false
	}
}

// preventiveSuggestions reshapes the lifestyle advice for likely
// upcoming symptoms into low-priority preventive entries.
func preventiveSuggestions(catalog map[string][]Suggestion, predicted []PredictedSymptom) ([]Suggestion, []string) {
	suggestions := make([]Suggestion, 0)
	basedOn := make([]string, 0)

	for _, prediction := range predicted {
		if prediction.Probability <= preventionThreshold {
			continue
		}
		entries, ok := catalog[prediction.Symptom]
		if !ok {
			continue
		}

		for _, entry := range entries {
			if entry.Category != CategoryLifestyle {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Category:    CategoryPreventive,
				Title:       "Prevent: " + entry.Title,
				Description: "To prevent symptoms: " + entry.Description,
				Priority:    PriorityLow,
			})
		}
		basedOn = append(basedOn, "predicted_"+prediction.Symptom)
	}

	return suggestions, basedOn
}

// deduplicateSuggestions sorts by priority rank, keeps the first
// occurrence of each title/category pair, and caps the list.
func deduplicateSuggestions(suggestions []Suggestion) []Suggestion {
	sorted := make([]Suggestion, 0, len(suggestions))
	sorted = append(sorted, suggestions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityRank(sorted[i].Priority) < priorityRank(sorted[j].Priority)
	})

	type dedupeKey struct {
		title    string
		category string
	}
	seen := make(map[dedupeKey]struct{}, len(sorted))

	unique := make([]Suggestion, 0, len(sorted))
	for _, suggestion := range sorted {
		key := dedupeKey{title: suggestion.Title, category: suggestion.Category}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, suggestion)
		if len(unique) == maxSuggestions {
			break
		}
	}
	return unique
}

func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}
