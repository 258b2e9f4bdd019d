package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/666akuma13/interview-agent/internal/handlers"
	"github.com/666akuma13/interview-agent/internal/middleware"
	"github.com/666akuma13/interview-agent/internal/models"
)

// AdminRoutes registers the authenticated admin surface: scheduling,
// admin-conducted interviews, the question bank, and results.
func AdminRoutes(
	router *chi.Mux,
	authHandler *handlers.AuthHandler,
	interviewHandler *handlers.InterviewHandler,
	scheduleHandler *handlers.ScheduleHandler,
	questionBankHandler *handlers.QuestionBankHandler,
	resultsHandler *handlers.ResultsHandler,
	jwtSecret string,
) {
	router.Route("/api/v1/admin", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", authHandler.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly(jwtSecret))

			r.With(middleware.ValidateRequest[*models.AdminStartRequest]()).Post("/interviews", interviewHandler.StartAdminHandler)

			r.With(middleware.ValidateRequest[*models.ScheduleRequest]()).Post("/schedules", scheduleHandler.CreateHandler)
			r.Get("/schedules", scheduleHandler.ListHandler)

			r.With(middleware.ValidateRequest[*models.QuestionBankRequest]()).Post("/questions", questionBankHandler.SaveHandler)
			r.Get("/questions", questionBankHandler.ListHandler)
			r.Delete("/questions/{role}", questionBankHandler.DeleteHandler)

			r.Get("/results", resultsHandler.ListHandler)
			r.Get("/results/analytics", resultsHandler.AnalyticsHandler)
			r.Get("/results/{roundID}/export", resultsHandler.ExportHandler)
		})
	})
}
