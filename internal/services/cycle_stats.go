package services

import (
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	minPlausibleCycleDays = 21
	maxPlausibleCycleDays = 35
)

// CycleStats is derived entirely from the caller's entry snapshot.
// Optional fields stay nil until at least two period starts exist.
type CycleStats struct {
	AverageCycleLength     *float64   `json:"average_cycle_length"`
	AveragePeriodLength    *float64   `json:"average_period_length"`
	LastPeriodStart        *time.Time `json:"last_period_start"`
	NextPredictedPeriod    *time.Time `json:"next_predicted_period"`
	NextPredictedOvulation *time.Time `json:"next_predicted_ovulation"`
	CurrentCycleDay        *int       `json:"current_cycle_day"`
	CurrentPhase           *string    `json:"current_phase"`
	TotalCyclesTracked     int        `json:"total_cycles_tracked"`
}

// CalculateCycleStats derives period starts, averaged lengths, and the
// current phase from a snapshot of cycle entries. It never fails:
// sparse input produces a stats value with nil optional fields.
func CalculateCycleStats(entries []models.CycleEntry, today time.Time) CycleStats {
	sorted := sortedByDate(entries)
	starts := periodStarts(sorted)

	stats := CycleStats{TotalCyclesTracked: len(starts)}
	if len(starts) < 2 {
		if len(starts) == 1 {
			start := starts[0]
			stats.LastPeriodStart = &start
		}
		return stats
	}

	// Every gap between consecutive starts counts as a tracked cycle,
	// but only plausible lengths feed the average.
	cycleLengths := make([]int, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		length := daysBetween(starts[i-1], starts[i])
		if length >= minPlausibleCycleDays && length <= maxPlausibleCycleDays {
			cycleLengths = append(cycleLengths, length)
		}
	}

	periodLengths := make([]int, 0, len(starts))
	for _, start := range starts {
		if length := periodLengthFrom(sorted, start); length > 0 {
			periodLengths = append(periodLengths, length)
		}
	}

	avgCycle := float64(DefaultCycleLength)
	if len(cycleLengths) > 0 {
		avgCycle = averageInts(cycleLengths)
	}
	avgPeriod := float64(DefaultPeriodLength)
	if len(periodLengths) > 0 {
		avgPeriod = averageInts(periodLengths)
	}

	last := starts[len(starts)-1]
	nextPeriod := last.AddDate(0, 0, int(avgCycle))
	nextOvulation := last.AddDate(0, 0, int(avgCycle)-LutealPhaseDays)

	// Unwrapped on purpose: an overdue cycle runs past the average
	// length, and a future-dated start yields a day of zero or less.
	currentDay := daysBetween(last, dateOnly(today)) + 1
	currentPhase := PhaseForDay(currentDay, avgCycle)

	stats.AverageCycleLength = &avgCycle
	stats.AveragePeriodLength = &avgPeriod
	stats.LastPeriodStart = &last
	stats.NextPredictedPeriod = &nextPeriod
	stats.NextPredictedOvulation = &nextOvulation
	stats.CurrentCycleDay = &currentDay
	stats.CurrentPhase = &currentPhase
	return stats
}

// periodStarts returns the first date of each maximal consecutive run
// of period days. Entries must already be date-sorted.
func periodStarts(sorted []models.CycleEntry) []time.Time {
	starts := make([]time.Time, 0)

	inPeriod := false
	for _, entry := range sorted {
		if entry.IsPeriodDay && !inPeriod {
			starts = append(starts, dateOnly(entry.Date))
			inPeriod = true
		} else if !entry.IsPeriodDay {
			inPeriod = false
		}
	}

	return starts
}

// periodLengthFrom counts period days from a start date while each
// logged day exactly continues the previous one. A missing entry ends
// the count even if the period itself continued.
func periodLengthFrom(sorted []models.CycleEntry, start time.Time) int {
	length := 0
	expected := start

	for _, entry := range sorted {
		day := dateOnly(entry.Date)
		if !day.Before(start) && entry.IsPeriodDay {
			if !day.Equal(expected) {
				break
			}
			length++
			expected = expected.AddDate(0, 0, 1)
		} else if day.After(start) {
			break
		}
	}

	return length
}

func sortedByDate(entries []models.CycleEntry) []models.CycleEntry {
	sorted := make([]models.CycleEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func daysBetween(from time.Time, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
