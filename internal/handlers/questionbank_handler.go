package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/666akuma13/interview-agent/internal/middleware"
	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/repositories"
	"github.com/666akuma13/interview-agent/internal/utils"
)

// QuestionBankHandler manages per-role must-ask question lists.
type QuestionBankHandler struct {
	bank   *repositories.QuestionBankRepository
	logger *zap.Logger
}

func NewQuestionBankHandler(bank *repositories.QuestionBankRepository, logger *zap.Logger) *QuestionBankHandler {
	return &QuestionBankHandler{bank: bank, logger: logger}
}

func (h *QuestionBankHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.QuestionBankRequest](r)

	if err := h.bank.Append(req.Role, req.Questions); err != nil {
		h.logger.Error("Failed to save question bank", zap.Error(err), zap.String("role", req.Role))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to save questions",
		})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "saved", "role": req.Role})
}

func (h *QuestionBankHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	bank, err := h.bank.List()
	if err != nil {
		h.logger.Error("Failed to list question bank", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to list questions",
		})
		return
	}
	utils.JSON(w, http.StatusOK, bank)
}

func (h *QuestionBankHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	if err := h.bank.Delete(role); err != nil {
		h.logger.Error("Failed to delete question bank entry", zap.Error(err), zap.String("role", role))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to delete questions",
		})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted", "role": role})
}
