package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
	"github.com/selene-health/selene/internal/services"
)

const (
	// predictorLookbackDays is how much history the next-day predictor
	// is offered; it trims further to its own window.
	predictorLookbackDays = 30

	defaultHistoryDays   = 30
	maxHistoryDays       = 365
	defaultAnalyticsDays = 90
)

// SaveTodaySymptoms upserts the log entry for the current date.
func (handler *Handler) SaveTodaySymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload, err := parseSymptomEntryInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	today := handler.today()
	entry, found, err := handler.repositories.SymptomEntries.FindByUserAndDate(user.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}

	if !found {
		entry = models.SymptomEntry{UserID: user.ID, Date: today}
	}
	applySymptomEntryInput(&entry, payload)

	if found {
		err = handler.repositories.SymptomEntries.Save(&entry)
	} else {
		err = handler.repositories.SymptomEntries.Create(&entry)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	status := fiber.StatusOK
	if !found {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(entry)
}

func (handler *Handler) GetSymptomHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days := c.QueryInt("days", defaultHistoryDays)
	if days < 1 || days > maxHistoryDays {
		return apiError(c, fiber.StatusBadRequest, "days must be between 1 and 365")
	}

	entries, err := handler.symptomHistory(user.ID, days)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}

	// Newest first, matching how the log is browsed.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return c.JSON(entries)
}

func (handler *Handler) PredictTomorrowSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.symptomHistory(user.ID, predictorLookbackDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}
	if len(entries) == 0 {
		return apiError(c, fiber.StatusNotFound, "no symptom history found")
	}

	tomorrow := handler.today().AddDate(0, 0, 1)
	return c.JSON(services.PredictTomorrowSymptoms(entries, tomorrow))
}

func (handler *Handler) GetSuggestions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := handler.today()

	var current *models.SymptomEntry
	entry, found, err := handler.repositories.SymptomEntries.FindByUserAndDate(user.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	if found {
		current = &entry
	}

	predicted := []services.PredictedSymptom{}
	if c.QueryBool("include_predictions", true) {
		entries, err := handler.symptomHistory(user.ID, predictorLookbackDays)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
		}
		if len(entries) > 0 {
			prediction := services.PredictTomorrowSymptoms(entries, today.AddDate(0, 0, 1))
			predicted = prediction.PredictedSymptoms
		}
	}

	return c.JSON(services.GenerateSuggestions(current, predicted, today))
}

func (handler *Handler) GetSymptomAnalytics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days := c.QueryInt("days", defaultAnalyticsDays)
	if days < 1 || days > maxHistoryDays {
		return apiError(c, fiber.StatusBadRequest, "days must be between 1 and 365")
	}

	entries, err := handler.symptomHistory(user.ID, days)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}
	if len(entries) == 0 {
		return apiError(c, fiber.StatusNotFound, "no symptom data found for analytics")
	}

	return c.JSON(services.BuildSymptomAnalytics(entries))
}

func (handler *Handler) DeleteSymptomEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	parsed, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	entry, err := handler.repositories.SymptomEntries.FindByIDForUser(uint(parsed), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}

	if err := handler.repositories.SymptomEntries.Delete(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.JSON(fiber.Map{"message": "entry deleted successfully"})
}

func (handler *Handler) symptomHistory(userID uint, days int) ([]models.SymptomEntry, error) {
	since := handler.today().AddDate(0, 0, -days)
	return handler.repositories.SymptomEntries.ListByUserSince(userID, since)
}

func applySymptomEntryInput(entry *models.SymptomEntry, payload symptomEntryInput) {
	entry.Mood = payload.Mood
	entry.Cramps = payload.Cramps
	entry.Headache = payload.Headache
	entry.Nausea = payload.Nausea
	entry.Fatigue = payload.Fatigue
	entry.FlowLevel = payload.FlowLevel
	entry.SleepQuality = payload.SleepQuality
	entry.FoodCravings = payload.FoodCravings
	entry.Notes = payload.Notes
}
