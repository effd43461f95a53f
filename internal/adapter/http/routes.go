package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/handlers"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Task       *handlers.TaskHandler
	Plant      *handlers.PlantHandler
	Weather    *handlers.WeatherHandler
	Suggestion *handlers.SuggestionHandler
	Calendar   *handlers.CalendarHandler
	Report     *handlers.ReportHandler
}

// RegisterRoutes wires the API surface. Everything except health requires an
// authenticated user; routes that call external providers are additionally
// rate limited.
func RegisterRoutes(r *gin.Engine, h Handlers, limiter middleware.RateLimiter) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	user := api.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/tasks", h.Task.ListToday)
		user.POST("/tasks/:id/complete", h.Task.CompleteTask)
		user.POST("/tasks/:id/postpone", h.Task.PostponeTask)

		user.POST("/plants", h.Plant.CreatePlant)
		user.GET("/plants", h.Plant.ListPlants)
		user.DELETE("/plants/:id", h.Plant.DeletePlant)

		user.GET("/suggestions", h.Suggestion.ListSuggestions)
		user.GET("/calendar", h.Calendar.ZoneCalendar)
		user.GET("/report", h.Report.GetReport)
	}

	limited := api.Group("")
	limited.Use(middleware.AuthMiddleware(), middleware.RateLimitMiddleware(limiter))
	{
		limited.POST("/tasks/generate", h.Task.GenerateTasks)
		limited.POST("/tasks/plan-month", h.Task.PlanMonth)
		limited.POST("/plants/estimate-freq", h.Plant.EstimateWateringFreq)
		limited.POST("/weather/advice", h.Weather.Advice)
	}
}
