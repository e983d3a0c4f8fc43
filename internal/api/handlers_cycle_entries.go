package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
)

const (
	defaultEntryListLimit = 100
	maxEntryListLimit     = 365
)

func (handler *Handler) CreateCycleEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload, day, err := handler.parseCycleEntryInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	exists, err := handler.repositories.CycleEntries.ExistsByUserAndDate(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check existing entry")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "entry already exists for this date")
	}

	entry := models.CycleEntry{UserID: user.ID, Date: day}
	applyCycleEntryInput(&entry, payload)

	if err := handler.repositories.CycleEntries.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListCycleEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var from, to *time.Time
	if raw := c.Query("start_date"); raw != "" {
		day, err := handler.parseDay(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		from = &day
	}
	if raw := c.Query("end_date"); raw != "" {
		day, err := handler.parseDay(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end_date")
		}
		to = &day
	}

	limit := c.QueryInt("limit", defaultEntryListLimit)
	if limit < 1 || limit > maxEntryListLimit {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}

	entries, err := handler.repositories.CycleEntries.ListByUserRange(user.ID, from, to, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) UpdateCycleEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	payload, day, err := handler.parseCycleEntryInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.repositories.CycleEntries.FindByIDForUser(entryID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}

	entry.Date = day
	applyCycleEntryInput(&entry, payload)

	if err := handler.repositories.CycleEntries.Save(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteCycleEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	entry, err := handler.repositories.CycleEntries.FindByIDForUser(entryID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}

	if err := handler.repositories.CycleEntries.Delete(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.JSON(fiber.Map{"message": "entry deleted successfully"})
}

func applyCycleEntryInput(entry *models.CycleEntry, payload cycleEntryInput) {
	entry.IsPeriodDay = payload.IsPeriodDay
	entry.FlowIntensity = payload.FlowIntensity
	entry.Moods = payload.Moods
	entry.PhysicalSymptoms = payload.PhysicalSymptoms
	entry.Notes = payload.Notes
	entry.SleepHours = payload.SleepHours
	entry.ExerciseMinutes = payload.ExerciseMinutes
	entry.WaterIntake = payload.WaterIntake
}

func parseEntryID(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
