package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/666akuma13/interview-agent/internal/handlers"
)

func HealthRoutes(router *chi.Mux, healthHandler *handlers.HealthHandler) {
	router.Get("/healthz", healthHandler.LivenessHandler)
	router.Get("/readyz", healthHandler.ReadinessHandler)
}
