package services

import (
	"reflect"
	"testing"

	"github.com/selene-health/selene/internal/models"
)

func TestGenerateSuggestionsAllCurrentConditions(t *testing.T) {
	current := &models.SymptomEntry{
		Date:         mustParseDay("2024-03-01"),
		Mood:         models.LogMoodSad,
		Cramps:       models.CrampsStrong,
		Headache:     true,
		Nausea:       true,
		Fatigue:      true,
		SleepQuality: models.SleepPoor,
	}

	report := GenerateSuggestions(current, nil, mustParseDay("2024-03-01"))

	if len(report.Suggestions) != maxSuggestions {
		t.Fatalf("expected the list capped at %d, got %d", maxSuggestions, len(report.Suggestions))
	}
	for i, suggestion := range report.Suggestions {
		if suggestion.Priority != PriorityHigh {
			t.Fatalf("expected only high-priority advice to survive the cap, got %s at %d", suggestion.Priority, i)
		}
	}
	if report.Suggestions[0].Title != "Stay Hydrated" || report.Suggestions[0].Category != CategoryRemedy {
		t.Fatalf("unexpected first suggestion: %+v", report.Suggestions[0])
	}

	expectedBasis := []string{"headache", "cramps", "nausea", "fatigue", "mood", "sleep_quality"}
	if !reflect.DeepEqual(report.BasedOnSymptoms, expectedBasis) {
		t.Fatalf("unexpected basis: %v", report.BasedOnSymptoms)
	}
}

func TestGenerateSuggestionsPriorityOrdering(t *testing.T) {
	current := &models.SymptomEntry{
		Date:     mustParseDay("2024-03-01"),
		Headache: true,
	}

	report := GenerateSuggestions(current, nil, mustParseDay("2024-03-01"))

	previous := 0
	for _, suggestion := range report.Suggestions {
		rank := priorityRank(suggestion.Priority)
		if rank < previous {
			t.Fatalf("priority order violated at %+v", suggestion)
		}
		previous = rank
	}
}

func TestGenerateSuggestionsMildCrampsIgnored(t *testing.T) {
	current := &models.SymptomEntry{
		Date:   mustParseDay("2024-03-01"),
		Cramps: models.CrampsMild,
	}

	report := GenerateSuggestions(current, nil, mustParseDay("2024-03-01"))
	for _, basis := range report.BasedOnSymptoms {
		if basis == "cramps" {
			t.Fatal("mild cramps must not trigger cramp advice")
		}
	}
}

func TestGenerateSuggestionsPreventiveTransform(t *testing.T) {
	predicted := []PredictedSymptom{
		{Symptom: predictedCramps, Probability: 0.8, Confidence: LevelHigh},
	}

	report := GenerateSuggestions(nil, predicted, mustParseDay("2024-03-01"))

	var preventive *Suggestion
	for i := range report.Suggestions {
		if report.Suggestions[i].Category == CategoryPreventive {
			preventive = &report.Suggestions[i]
			break
		}
	}
	if preventive == nil {
		t.Fatal("expected a preventive suggestion for likely cramps")
	}
	if preventive.Title != "Prevent: Gentle Exercise" {
		t.Fatalf("unexpected preventive title: %s", preventive.Title)
	}
	if preventive.Description != "To prevent symptoms: Try light walking, yoga, or stretching to help relieve cramps." {
		t.Fatalf("unexpected preventive description: %s", preventive.Description)
	}
	if preventive.Priority != PriorityLow {
		t.Fatalf("expected low priority, got %s", preventive.Priority)
	}
	if !reflect.DeepEqual(report.BasedOnSymptoms, []string{"predicted_cramps"}) {
		t.Fatalf("unexpected basis: %v", report.BasedOnSymptoms)
	}
}

func TestGenerateSuggestionsPreventionThreshold(t *testing.T) {
	predicted := []PredictedSymptom{
		{Symptom: predictedCramps, Probability: 0.7, Confidence: LevelMedium},
	}

	report := GenerateSuggestions(nil, predicted, mustParseDay("2024-03-01"))
	for _, suggestion := range report.Suggestions {
		if suggestion.Category == CategoryPreventive {
			t.Fatalf("probability at the threshold must not trigger prevention: %+v", suggestion)
		}
	}
	if len(report.BasedOnSymptoms) != 0 {
		t.Fatalf("expected empty basis, got %v", report.BasedOnSymptoms)
	}
}

func TestGenerateSuggestionsUnknownPredictedSymptomSkipped(t *testing.T) {
	predicted := []PredictedSymptom{
		{Symptom: predictedMoodChanges, Probability: 0.9, Confidence: LevelHigh},
	}

	report := GenerateSuggestions(nil, predicted, mustParseDay("2024-03-01"))
	if len(report.BasedOnSymptoms) != 0 {
		t.Fatalf("symptom without catalog advice must not appear in basis, got %v", report.BasedOnSymptoms)
	}
}

func TestGenerateSuggestionsFallsBackToGeneralWellness(t *testing.T) {
	report := GenerateSuggestions(nil, nil, mustParseDay("2024-03-01"))

	if len(report.Suggestions) != 2 {
		t.Fatalf("expected the two general wellness entries, got %d", len(report.Suggestions))
	}
	if report.Suggestions[0].Title != "Stay Hydrated" || report.Suggestions[1].Title != "Balanced Nutrition" {
		t.Fatalf("unexpected wellness entries: %+v", report.Suggestions)
	}
	if report.Date.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("unexpected report date: %s", report.Date.Format("2006-01-02"))
	}
}

func TestGenerateSuggestionsDeduplicatesByTitleAndCategory(t *testing.T) {
	predicted := []PredictedSymptom{
		{Symptom: predictedFatigue, Probability: 0.9, Confidence: LevelHigh},
		{Symptom: predictedFatigue, Probability: 0.8, Confidence: LevelHigh},
	}

	report := GenerateSuggestions(nil, predicted, mustParseDay("2024-03-01"))

	seen := map[string]int{}
	for _, suggestion := range report.Suggestions {
		seen[suggestion.Title+"|"+suggestion.Category]++
	}
	for key, count := range seen {
		if count > 1 {
			t.Fatalf("duplicate suggestion %s appeared %d times", key, count)
		}
	}
}

func TestGenerateSuggestionsUsesEntryDate(t *testing.T) {
	current := &models.SymptomEntry{Date: mustParseDay("2024-02-20")}

	report := GenerateSuggestions(current, nil, mustParseDay("2024-03-01"))
	if report.Date.Format("2006-01-02") != "2024-02-20" {
		t.Fatalf("expected the entry date on the report, got %s", report.Date.Format("2006-01-02"))
	}
}
