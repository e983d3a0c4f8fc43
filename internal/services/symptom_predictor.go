package services

import (
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	// recentWindowDays bounds every heuristic to the freshest slice of
	// the symptom log.
	recentWindowDays = 7

	// minPatternDays is the fewest logged days the frequency heuristic
	// will draw conclusions from.
	minPatternDays = 3

	patternThreshold       = 0.6
	strongPatternThreshold = 0.8

	highConfidenceThreshold   = 0.7
	mediumConfidenceThreshold = 0.4

	earlyCycleLastDay = 5
	lateCycleFirstDay = 15
	lateCycleLastDay  = 28
)

// Symptom names shared by the predictor and the suggestion catalog.
const (
	predictedHeadache    = "headache"
	predictedNausea      = "nausea"
	predictedFatigue     = "fatigue"
	predictedCramps      = "cramps"
	predictedMoodChanges = "mood_changes"
)

type PredictedSymptom struct {
	Symptom     string  `json:"symptom"`
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
}

// SymptomPrediction is the next-day forecast served to the caller.
type SymptomPrediction struct {
	Date              time.Time          `json:"date"`
	PredictedSymptoms []PredictedSymptom `json:"predicted_symptoms"`
	ConfidenceScore   float64            `json:"confidence_score"`
	BasedOnDays       int                `json:"based_on_days"`
}

// PredictTomorrowSymptoms forecasts symptoms for targetDate from at
// most the seven most recent log entries, combining frequency,
// cycle-phase, and day-over-day sequence heuristics.
func PredictTomorrowSymptoms(symptomLog []models.SymptomEntry, targetDate time.Time) SymptomPrediction {
	prediction := SymptomPrediction{
		Date:              dateOnly(targetDate),
		PredictedSymptoms: []PredictedSymptom{},
	}
	if len(symptomLog) == 0 {
		return prediction
	}

	recent := recentEntries(symptomLog, recentWindowDays)

	candidates := make([]PredictedSymptom, 0)
	candidates = append(candidates, frequencyCandidates(recent)...)
	candidates = append(candidates, cyclePhaseCandidates(recent, targetDate)...)
	candidates = append(candidates, sequenceCandidates(recent)...)

	merged := mergePredictions(candidates)

	prediction.PredictedSymptoms = merged
	prediction.ConfidenceScore = overallConfidence(len(recent), merged)
	prediction.BasedOnDays = len(recent)
	return prediction
}

func recentEntries(symptomLog []models.SymptomEntry, window int) []models.SymptomEntry {
	sorted := make([]models.SymptomEntry, 0, len(symptomLog))
	sorted = append(sorted, symptomLog...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	if len(sorted) > window {
		sorted = sorted[len(sorted)-window:]
	}
	return sorted
}

// frequencyCandidates promotes symptoms that recurred on most recent
// days into predictions for the next one.
func frequencyCandidates(recent []models.SymptomEntry) []PredictedSymptom {
	if len(recent) < minPatternDays {
		return nil
	}

	counts := map[string]int{}
	for _, entry := range recent {
		if entry.Headache {
			counts[predictedHeadache]++
		}
		if entry.Nausea {
			counts[predictedNausea]++
		}
		if entry.Fatigue {
			counts[predictedFatigue]++
		}
		if entry.Cramps != "" && entry.Cramps != models.CrampsNone {
			counts[predictedCramps]++
		}
	}

	candidates := make([]PredictedSymptom, 0, len(counts))
	for _, symptom := range []string{predictedHeadache, predictedNausea, predictedFatigue, predictedCramps} {
		rate := float64(counts[symptom]) / float64(len(recent))
		if rate <= patternThreshold {
			continue
		}

		confidence := LevelMedium
		if rate > strongPatternThreshold {
			confidence = LevelHigh
		}
		candidates = append(candidates, PredictedSymptom{
			Symptom:     symptom,
			Probability: rate,
			Confidence:  confidence,
		})
	}
	return candidates
}

// cyclePhaseCandidates anchors on the most recent day with recorded
// flow and predicts period or premenstrual symptoms from the estimated
// cycle day. Days 6-14 carry no phase-driven prediction.
func cyclePhaseCandidates(recent []models.SymptomEntry, targetDate time.Time) []PredictedSymptom {
	lastFlow, ok := lastFlowDate(recent)
	if !ok {
		return nil
	}

	cycleDay := daysBetween(lastFlow, dateOnly(targetDate)) + 1
	switch {
	case cycleDay >= 1 && cycleDay <= earlyCycleLastDay:
		return []PredictedSymptom{
			{Symptom: predictedCramps, Probability: 0.7, Confidence: LevelMedium},
			{Symptom: predictedFatigue, Probability: 0.6, Confidence: LevelMedium},
		}
	case cycleDay >= lateCycleFirstDay && cycleDay <= lateCycleLastDay:
		return []PredictedSymptom{
			{Symptom: predictedMoodChanges, Probability: 0.6, Confidence: LevelMedium},
			{Symptom: predictedHeadache, Probability: 0.5, Confidence: LevelLow},
		}
	default:
		return nil
	}
}

func lastFlowDate(recent []models.SymptomEntry) (time.Time, bool) {
	for i := len(recent) - 1; i >= 0; i-- {
		switch recent[i].FlowLevel {
		case models.FlowLevelLight, models.FlowLevelMedium, models.FlowLevelHeavy:
			return dateOnly(recent[i].Date), true
		}
	}
	return time.Time{}, false
}

// sequenceCandidates looks only at yesterday: strong cramps tend to
// continue, and poor sleep predicts fatigue.
func sequenceCandidates(recent []models.SymptomEntry) []PredictedSymptom {
	if len(recent) < 2 {
		return nil
	}

	yesterday := recent[len(recent)-1]
	candidates := make([]PredictedSymptom, 0, 2)

	if yesterday.Cramps == models.CrampsStrong {
		candidates = append(candidates, PredictedSymptom{
			Symptom:     predictedCramps,
			Probability: 0.6,
			Confidence:  LevelMedium,
		})
	}
	if yesterday.SleepQuality == models.SleepPoor {
		candidates = append(candidates, PredictedSymptom{
			Symptom:     predictedFatigue,
			Probability: 0.8,
			Confidence:  LevelHigh,
		})
	}
	return candidates
}

// mergePredictions averages duplicate candidates per symptom,
// re-derives confidence from the averaged probability, and orders the
// result by probability with first-candidate order breaking ties.
func mergePredictions(candidates []PredictedSymptom) []PredictedSymptom {
	type group struct {
		order int
		total float64
		count int
	}

	groups := make(map[string]*group, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		entry, ok := groups[candidate.Symptom]
		if !ok {
			entry = &group{order: len(names)}
			groups[candidate.Symptom] = entry
			names = append(names, candidate.Symptom)
		}
		entry.total += candidate.Probability
		entry.count++
	}

	merged := make([]PredictedSymptom, 0, len(names))
	for _, name := range names {
		entry := groups[name]
		probability := entry.total / float64(entry.count)
		merged = append(merged, PredictedSymptom{
			Symptom:     name,
			Probability: probability,
			Confidence:  confidenceForProbability(probability),
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Probability > merged[j].Probability
	})
	return merged
}

func confidenceForProbability(probability float64) string {
	switch {
	case probability > highConfidenceThreshold:
		return LevelHigh
	case probability > mediumConfidenceThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// overallConfidence averages data availability against prediction
// strength; no predictions means no confidence.
func overallConfidence(recentDays int, merged []PredictedSymptom) float64 {
	if len(merged) == 0 {
		return 0.0
	}

	dataConfidence := float64(recentDays) / recentWindowDays
	if dataConfidence > 1.0 {
		dataConfidence = 1.0
	}

	var total float64
	for _, prediction := range merged {
		total += prediction.Probability
	}
	predictionConfidence := total / float64(len(merged))

	return (dataConfidence + predictionConfidence) / 2
}
