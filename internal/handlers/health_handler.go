package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/666akuma13/interview-agent/internal/llm"
	"github.com/666akuma13/interview-agent/internal/prompts"
	"github.com/666akuma13/interview-agent/internal/utils"
)

// HealthHandler reports liveness and readiness.
type HealthHandler struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	db            *gorm.DB
}

func NewHealthHandler(provider llm.Provider, promptManager prompts.PromptProvider, db *gorm.DB) *HealthHandler {
	return &HealthHandler{provider: provider, promptManager: promptManager, db: db}
}

func (h *HealthHandler) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessHandler verifies the provider is wired, prompt templates are
// loaded, and the database answers a ping.
func (h *HealthHandler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"provider":  "ok",
		"templates": "ok",
		"database":  "ok",
	}
	status := http.StatusOK

	if h.provider == nil || h.provider.GetProviderName() == "" {
		checks["provider"] = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if len(h.promptManager.GetTemplates()) == 0 {
		checks["templates"] = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	utils.JSON(w, status, checks)
}
