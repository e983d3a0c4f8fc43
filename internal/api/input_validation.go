package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
)

const (
	dayFormat = "2006-01-02"

	maxNotesLength        = 500
	maxFoodCravingsLength = 100
	maxSleepHours         = 24
)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, errors.New("invalid request body")
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)
	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}

	return credentials, nil
}

func (handler *Handler) parseCycleEntryInput(c *fiber.Ctx) (cycleEntryInput, time.Time, error) {
	payload := cycleEntryInput{Moods: []string{}, PhysicalSymptoms: []string{}}
	if err := c.BodyParser(&payload); err != nil {
		return payload, time.Time{}, errors.New("invalid request body")
	}

	day, err := handler.parseDay(payload.Date)
	if err != nil {
		return payload, time.Time{}, err
	}

	payload.FlowIntensity = strings.ToLower(strings.TrimSpace(payload.FlowIntensity))
	if payload.IsPeriodDay && payload.FlowIntensity == "" {
		return payload, time.Time{}, errors.New("flow intensity required for period days")
	}
	if !payload.IsPeriodDay && payload.FlowIntensity != "" {
		return payload, time.Time{}, errors.New("flow intensity only allowed for period days")
	}
	if payload.FlowIntensity != "" && !containsValue(models.ValidFlowIntensities(), payload.FlowIntensity) {
		return payload, time.Time{}, errors.New("invalid flow intensity")
	}

	for _, mood := range payload.Moods {
		if !containsValue(models.ValidMoods(), mood) {
			return payload, time.Time{}, errors.New("invalid mood")
		}
	}
	for _, symptom := range payload.PhysicalSymptoms {
		if !containsValue(models.ValidPhysicalSymptoms(), symptom) {
			return payload, time.Time{}, errors.New("invalid physical symptom")
		}
	}

	if len(payload.Notes) > maxNotesLength {
		return payload, time.Time{}, errors.New("notes too long")
	}
	if payload.SleepHours != nil && (*payload.SleepHours < 0 || *payload.SleepHours > maxSleepHours) {
		return payload, time.Time{}, errors.New("invalid sleep hours")
	}
	if payload.ExerciseMinutes != nil && *payload.ExerciseMinutes < 0 {
		return payload, time.Time{}, errors.New("invalid exercise minutes")
	}
	if payload.WaterIntake != nil && *payload.WaterIntake < 0 {
		return payload, time.Time{}, errors.New("invalid water intake")
	}

	return payload, day, nil
}

func parseSymptomEntryInput(c *fiber.Ctx) (symptomEntryInput, error) {
	payload := symptomEntryInput{}
	if err := c.BodyParser(&payload); err != nil {
		return payload, errors.New("invalid request body")
	}

	payload.Mood = strings.ToLower(strings.TrimSpace(payload.Mood))
	payload.Cramps = strings.ToLower(strings.TrimSpace(payload.Cramps))
	payload.FlowLevel = strings.ToLower(strings.TrimSpace(payload.FlowLevel))
	payload.SleepQuality = strings.ToLower(strings.TrimSpace(payload.SleepQuality))

	if payload.Mood != "" && !containsValue(models.ValidLogMoods(), payload.Mood) {
		return payload, errors.New("invalid mood")
	}
	if payload.Cramps != "" && !containsValue(models.ValidCrampsLevels(), payload.Cramps) {
		return payload, errors.New("invalid cramps level")
	}
	if payload.FlowLevel != "" && !containsValue(models.ValidFlowLevels(), payload.FlowLevel) {
		return payload, errors.New("invalid flow level")
	}
	if payload.SleepQuality != "" && !containsValue(models.ValidSleepQualities(), payload.SleepQuality) {
		return payload, errors.New("invalid sleep quality")
	}
	if len(payload.FoodCravings) > maxFoodCravingsLength {
		return payload, errors.New("food cravings too long")
	}
	if len(payload.Notes) > maxNotesLength {
		return payload, errors.New("notes too long")
	}

	return payload, nil
}

func (handler *Handler) parseDay(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(dayFormat, strings.TrimSpace(raw), handler.location)
	if err != nil {
		return time.Time{}, errors.New("invalid date")
	}
	return day, nil
}

func containsValue(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
