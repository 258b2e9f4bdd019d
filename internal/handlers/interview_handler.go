package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/666akuma13/interview-agent/internal/integrity"
	"github.com/666akuma13/interview-agent/internal/interview"
	"github.com/666akuma13/interview-agent/internal/llm"
	"github.com/666akuma13/interview-agent/internal/middleware"
	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/prompts"
	"github.com/666akuma13/interview-agent/internal/report"
	"github.com/666akuma13/interview-agent/internal/repositories"
	"github.com/666akuma13/interview-agent/internal/utils"
)

// InterviewHandler drives interview sessions end to end: start (by token
// or admin), per-turn answers, and final submission.
type InterviewHandler struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	sessions      *interview.Store
	synthesizer   *report.Synthesizer
	schedules     *repositories.ScheduleRepository
	rounds        *repositories.RoundRepository
	questionBank  *repositories.QuestionBankRepository
	logger        *zap.Logger
	defaultBudget int
}

func NewInterviewHandler(
	provider llm.Provider,
	promptManager prompts.PromptProvider,
	sessions *interview.Store,
	synthesizer *report.Synthesizer,
	schedules *repositories.ScheduleRepository,
	rounds *repositories.RoundRepository,
	questionBank *repositories.QuestionBankRepository,
	logger *zap.Logger,
	defaultBudget int,
) *InterviewHandler {
	return &InterviewHandler{
		provider:      provider,
		promptManager: promptManager,
		sessions:      sessions,
		synthesizer:   synthesizer,
		schedules:     schedules,
		rounds:        rounds,
		questionBank:  questionBank,
		logger:        logger,
		defaultBudget: defaultBudget,
	}
}

// StartScheduledHandler consumes a single-use schedule token and opens
// the session. The token is consumed before any gateway call; a used,
// unknown or expired token never reaches the provider.
func (h *InterviewHandler) StartScheduledHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartByTokenRequest](r)

	schedule, err := h.schedules.Consume(req.Token, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) || errors.Is(err, repositories.ErrTokenConsumed) {
			utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
				Code:    "invalid_token",
				Message: "Invalid or expired interview link. Please contact HR.",
			})
			return
		}
		h.logger.Error("Failed to consume schedule token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to start interview",
		})
		return
	}

	profile := models.RoleProfile{
		Title:           schedule.Role,
		TechnicalSkills: schedule.TechnicalSkills,
		SoftSkills:      schedule.SoftSkills,
		Experience:      schedule.Experience,
		Difficulty:      schedule.Difficulty,
	}
	profile.Normalize()

	budget := schedule.QuestionBudget
	if budget <= 0 {
		budget = h.defaultBudget
	}

	h.startSession(w, r, schedule.CandidateName, profile, schedule.RoundName, budget)
}

// StartAdminHandler opens an admin-conducted session without a token.
func (h *InterviewHandler) StartAdminHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AdminStartRequest](r)

	profile := models.RoleProfile{
		Title:           req.Role,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		Experience:      req.Experience,
		Difficulty:      req.Difficulty,
	}
	profile.Normalize()

	h.startSession(w, r, req.CandidateName, profile, req.RoundName, req.QuestionBudget)
}

func (h *InterviewHandler) startSession(w http.ResponseWriter, r *http.Request, candidateName string, profile models.RoleProfile, roundName string, budget int) {
	mustAsk, err := h.questionBank.Get(profile.Title)
	if err != nil {
		h.logger.Error("Failed to load question bank", zap.Error(err), zap.String("role", profile.Title))
		mustAsk = []string{}
	}

	systemPrompt, err := h.promptManager.BuildSystemPrompt(candidateName, profile, roundName, budget, mustAsk)
	if err != nil {
		h.logger.Error("Failed to build system prompt", zap.Error(err), zap.String("round", roundName))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "prompt_error",
			Message: "Failed to build interview prompt",
		})
		return
	}

	session := interview.NewSession(h.provider, systemPrompt, candidateName, profile, roundName, budget)
	opening, err := session.Start(r.Context())
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "session_error",
			Message: "Failed to start interview session",
		})
		return
	}
	h.sessions.Put(session)

	h.logger.Info("Interview session started",
		zap.String("session_id", session.ID),
		zap.String("candidate", candidateName),
		zap.String("round", roundName),
		zap.Int("budget", budget))

	utils.JSON(w, http.StatusCreated, models.StartResponse{
		SessionID:      session.ID,
		CandidateName:  candidateName,
		Role:           profile.Title,
		RoundName:      roundName,
		QuestionBudget: budget,
		Message:        opening,
	})
}

// AnswerHandler processes one candidate answer.
func (h *InterviewHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnswerRequest](r)

	session, ok := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Interview session not found",
		})
		return
	}

	reply, err := session.SubmitAnswer(r.Context(), req.Answer)
	switch {
	case errors.Is(err, interview.ErrSessionComplete):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "session_complete",
			Message: "The interview is complete; submit it to receive the report",
		})
		return
	case errors.Is(err, interview.ErrContextTooLarge):
		utils.JSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Code:    "context_too_large",
			Message: "The conversation exceeds the supported interview length",
		})
		return
	case err != nil:
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "session_error",
			Message: err.Error(),
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.AnswerResponse{
		SessionID: session.ID,
		Question:  session.Turns(),
		Budget:    session.Budget,
		Message:   reply,
		Complete:  session.IsComplete(),
	})
}

// SubmitHandler finalizes a completed session: synthesizes the report,
// runs the integrity analysis, persists the round, and drops the session.
func (h *InterviewHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Interview session not found",
		})
		return
	}
	if !session.IsComplete() {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "session_incomplete",
			Message: "The interview has remaining questions",
		})
		return
	}

	transcript := session.Transcript()
	rawReport, evaluation := h.synthesizer.Synthesize(r.Context(), transcript, session.Profile, session.RoundName)
	flags := integrity.Analyze(transcript, session.Latencies())

	if err := h.persistRound(session, rawReport, evaluation, transcript, flags); err != nil {
		h.logger.Error("Failed to persist interview round", zap.Error(err), zap.String("session_id", session.ID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to store interview results",
		})
		return
	}
	h.sessions.Delete(session.ID)

	h.logger.Info("Interview round submitted",
		zap.String("session_id", session.ID),
		zap.String("candidate", session.CandidateName),
		zap.Float64("score", evaluation.OverallScore),
		zap.Bool("clean", integrity.IsClean(flags)))

	utils.JSON(w, http.StatusOK, models.SubmitResponse{
		SessionID:      session.ID,
		Report:         rawReport,
		Evaluation:     evaluation,
		AnticheatFlags: flags,
		Transcript:     transcript,
	})
}

// Persisted records are always well-formed even when report generation
// degraded upstream; serialization failures here are real storage errors.
func (h *InterviewHandler) persistRound(session *interview.Session, rawReport string, evaluation models.Evaluation, transcript []models.TranscriptEntry, flags []string) error {
	transcriptJSON, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		return err
	}

	return h.rounds.Create(&models.CandidateRound{
		CandidateName:  session.CandidateName,
		Role:           session.Profile.Title,
		RoundName:      session.RoundName,
		Report:         rawReport,
		Transcript:     string(transcriptJSON),
		AnticheatFlags: string(flagsJSON),
		Score:          evaluation.OverallScore,
		Recommendation: evaluation.Recommendation,
		CompletedAt:    time.Now(),
	})
}
