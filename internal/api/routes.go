package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	cycle := api.Group("/cycle", handler.AuthRequired)
	cycle.Post("/entries", handler.CreateCycleEntry)
	cycle.Get("/entries", handler.ListCycleEntries)
	cycle.Put("/entries/:id", handler.UpdateCycleEntry)
	cycle.Delete("/entries/:id", handler.DeleteCycleEntry)
	cycle.Get("/stats", handler.GetCycleStats)
	cycle.Get("/predictions", handler.GetCyclePredictions)
	cycle.Get("/analysis", handler.GetCycleAnalysis)
	cycle.Get("/calendar", handler.GetCycleCalendar)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Post("/today", handler.SaveTodaySymptoms)
	symptoms.Get("/history", handler.GetSymptomHistory)
	symptoms.Get("/tomorrow", handler.PredictTomorrowSymptoms)
	symptoms.Get("/suggestions", handler.GetSuggestions)
	symptoms.Get("/analytics", handler.GetSymptomAnalytics)
	symptoms.Delete("/:id", handler.DeleteSymptomEntry)
}
