package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
	"github.com/selene-health/selene/internal/services"
)

const (
	// statsLookbackDays bounds the history fed into the engine: twelve
	// months is enough to average every plausible cycle.
	statsLookbackDays = 365

	defaultDaysAhead  = 30
	maxDaysAhead      = 90
	calendarDaysAhead = 60
)

func (handler *Handler) GetCycleStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.cycleHistory(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	return c.JSON(services.CalculateCycleStats(entries, handler.today()))
}

func (handler *Handler) GetCyclePredictions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	daysAhead := c.QueryInt("days_ahead", defaultDaysAhead)
	if daysAhead < 1 || daysAhead > maxDaysAhead {
		return apiError(c, fiber.StatusBadRequest, "days_ahead must be between 1 and 90")
	}

	entries, err := handler.cycleHistory(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	return c.JSON(services.GeneratePredictions(entries, daysAhead, handler.today()))
}

func (handler *Handler) GetCycleAnalysis(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.cycleHistory(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	return c.JSON(services.BuildCycleAnalysis(entries, defaultDaysAhead, handler.today()))
}

// GetCycleCalendar returns the month's logged entries together with the
// slice of the forward forecast that falls inside the month.
func (handler *Handler) GetCycleCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := handler.today()
	year := c.QueryInt("year", today.Year())
	month := c.QueryInt("month", int(today.Month()))
	if month < 1 || month > 12 {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, handler.location)
	monthEnd := monthStart.AddDate(0, 1, -1)

	monthEntries, err := handler.repositories.CycleEntries.ListByUserRange(user.ID, &monthStart, &monthEnd, 0)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	history, err := handler.cycleHistory(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	predictions := services.GeneratePredictions(history, calendarDaysAhead, today)
	monthPredictions := make([]services.CyclePrediction, 0, len(predictions))
	for _, prediction := range predictions {
		if prediction.Date.Year() == year && int(prediction.Date.Month()) == month {
			monthPredictions = append(monthPredictions, prediction)
		}
	}

	return c.JSON(fiber.Map{
		"entries":     monthEntries,
		"predictions": monthPredictions,
		"month":       month,
		"year":        year,
	})
}

func (handler *Handler) cycleHistory(userID uint) ([]models.CycleEntry, error) {
	since := handler.today().AddDate(0, 0, -statsLookbackDays)
	return handler.repositories.CycleEntries.ListByUserSince(userID, since)
}
