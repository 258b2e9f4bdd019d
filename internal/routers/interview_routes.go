package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/666akuma13/interview-agent/internal/handlers"
	"github.com/666akuma13/interview-agent/internal/middleware"
	"github.com/666akuma13/interview-agent/internal/models"
)

// InterviewRoutes registers the candidate-facing interview endpoints.
func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler) {
	router.Route("/api/v1/interviews", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.StartByTokenRequest]()).Post("/", interviewHandler.StartScheduledHandler)
		r.With(middleware.ValidateRequest[*models.AnswerRequest]()).Post("/{sessionID}/answers", interviewHandler.AnswerHandler)
		r.Post("/{sessionID}/submit", interviewHandler.SubmitHandler)
	})
}
