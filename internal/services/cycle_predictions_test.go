package services

import (
	"reflect"
	"testing"

	"github.com/selene-health/selene/internal/models"
)

func TestGeneratePredictionsEmptyWithoutHistory(t *testing.T) {
	predictions := GeneratePredictions(nil, 30, mustParseDay("2024-03-01"))
	if len(predictions) != 0 {
		t.Fatalf("expected no predictions without a period start, got %d", len(predictions))
	}
}

func TestGeneratePredictionsIsDeterministic(t *testing.T) {
	entries := twoTrackedCycles()
	today := mustParseDay("2024-02-05")

	first := GeneratePredictions(entries, 30, today)
	second := GeneratePredictions(entries, 30, today)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical prediction lists for identical input")
	}
}

func TestGeneratePredictionsWrapsCycleDay(t *testing.T) {
	entries := twoTrackedCycles()

	// 28 days after the last period start wraps back to cycle day 1.
	predictions := GeneratePredictions(entries, 3, mustParseDay("2024-02-26"))
	if len(predictions) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(predictions))
	}
	if predictions[0].CycleDay != 1 {
		t.Fatalf("expected wrapped cycle day 1, got %d", predictions[0].CycleDay)
	}
	if predictions[0].Phase != PhaseMenstrual {
		t.Fatalf("expected menstrual phase, got %s", predictions[0].Phase)
	}
	if predictions[1].CycleDay != 2 || predictions[2].CycleDay != 3 {
		t.Fatalf("expected consecutive cycle days, got %d and %d", predictions[1].CycleDay, predictions[2].CycleDay)
	}
}

func TestGeneratePredictionsCoversDaysAhead(t *testing.T) {
	entries := twoTrackedCycles()
	today := mustParseDay("2024-02-05")

	predictions := GeneratePredictions(entries, 30, today)
	if len(predictions) != 30 {
		t.Fatalf("expected 30 predictions, got %d", len(predictions))
	}
	if !predictions[0].Date.Equal(today) {
		t.Fatalf("expected first prediction today, got %s", predictions[0].Date.Format("2006-01-02"))
	}
	if !predictions[29].Date.Equal(today.AddDate(0, 0, 29)) {
		t.Fatalf("unexpected last prediction date: %s", predictions[29].Date.Format("2006-01-02"))
	}
}

func TestPredictedMoodsFollowPhaseTable(t *testing.T) {
	entries := twoTrackedCycles()

	// 2024-02-26 wraps to cycle day 1: menstrual.
	predictions := GeneratePredictions(entries, 1, mustParseDay("2024-02-26"))
	expected := []string{models.MoodTired, models.MoodEmotional, models.MoodIrritable}
	if !reflect.DeepEqual(predictions[0].PredictedMood, expected) {
		t.Fatalf("expected moods %v, got %v", expected, predictions[0].PredictedMood)
	}
	if len(predictions[0].PredictedMood) > 3 {
		t.Fatalf("expected at most 3 moods, got %d", len(predictions[0].PredictedMood))
	}
}

func TestPredictedSymptomsIgnoreHistory(t *testing.T) {
	entries := twoTrackedCycles()
	for i := range entries {
		entries[i].PhysicalSymptoms = []string{models.SymptomNausea}
	}

	predictions := GeneratePredictions(entries, 1, mustParseDay("2024-02-26"))
	expected := []string{models.SymptomCramps, models.SymptomBloating, models.SymptomBackPain}
	if !reflect.DeepEqual(predictions[0].PredictedSymptoms, expected) {
		t.Fatalf("expected phase-table symptoms %v, got %v", expected, predictions[0].PredictedSymptoms)
	}
}

func TestFrequentHistoricalMoodsSupplementPhaseTable(t *testing.T) {
	frequent := frequentHistoricalMoods([]models.CycleEntry{
		{Date: mustParseDay("2024-01-01"), Moods: []string{models.MoodCalm}},
		{Date: mustParseDay("2024-01-02"), Moods: []string{models.MoodCalm}},
		{Date: mustParseDay("2024-01-03")},
	})
	if !reflect.DeepEqual(frequent, []string{models.MoodCalm}) {
		t.Fatalf("expected frequent mood [calm], got %v", frequent)
	}

	merged := predictedMoodsFor(PhaseOvulation, frequent)
	if len(merged) != 3 {
		t.Fatalf("expected 3 moods after truncation, got %d", len(merged))
	}
	if merged[0] != models.MoodHappy {
		t.Fatalf("expected phase-table moods first, got %v", merged)
	}
}

func TestFertilityStatusAroundOvulation(t *testing.T) {
	entries := twoTrackedCycles()

	// Cycle day 14 relative to the 2024-01-29 start: 2024-02-11.
	predictions := GeneratePredictions(entries, 1, mustParseDay("2024-02-11"))
	if predictions[0].CycleDay != 14 {
		t.Fatalf("expected cycle day 14, got %d", predictions[0].CycleDay)
	}
	if predictions[0].FertilityStatus != LevelHigh {
		t.Fatalf("expected high fertility, got %s", predictions[0].FertilityStatus)
	}
	if predictions[0].Phase != PhaseOvulation {
		t.Fatalf("expected ovulation phase, got %s", predictions[0].Phase)
	}
}

func twoTrackedCycles() []models.CycleEntry {
	entries := []models.CycleEntry{}
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		entries = append(entries, makeEntry(day, true))
	}
	for _, day := range []string{"2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"} {
		entries = append(entries, makeEntry(day, true))
	}
	return entries
}
