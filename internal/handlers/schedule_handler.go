package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/666akuma13/interview-agent/internal/middleware"
	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/repositories"
	"github.com/666akuma13/interview-agent/internal/utils"
)

// ScheduleHandler manages single-use interview links.
type ScheduleHandler struct {
	schedules *repositories.ScheduleRepository
	logger    *zap.Logger
	ttl       time.Duration
}

func NewScheduleHandler(schedules *repositories.ScheduleRepository, logger *zap.Logger, ttl time.Duration) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, logger: logger, ttl: ttl}
}

func (h *ScheduleHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ScheduleRequest](r)

	token := &models.ScheduleToken{
		Token:           utils.GenerateInterviewToken(req.CandidateName, req.Role, req.RoundName),
		CandidateName:   req.CandidateName,
		Role:            req.Role,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		Experience:      req.Experience,
		Difficulty:      req.Difficulty,
		RoundName:       req.RoundName,
		QuestionBudget:  req.QuestionBudget,
		ExpiresAt:       time.Now().Add(h.ttl),
	}

	if err := h.schedules.Create(token); err != nil {
		h.logger.Error("Failed to create schedule token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to schedule interview",
		})
		return
	}

	h.logger.Info("Interview scheduled",
		zap.String("candidate", req.CandidateName),
		zap.String("role", req.Role),
		zap.String("round", req.RoundName))

	utils.JSON(w, http.StatusCreated, models.ScheduleResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	})
}

func (h *ScheduleHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.schedules.List()
	if err != nil {
		h.logger.Error("Failed to list schedules", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to list scheduled interviews",
		})
		return
	}
	utils.JSON(w, http.StatusOK, tokens)
}
