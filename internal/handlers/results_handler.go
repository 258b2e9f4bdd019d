package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/repositories"
	"github.com/666akuma13/interview-agent/internal/utils"
)

// ResultsHandler serves the admin views over completed interview rounds:
// grouped candidate listings, aggregate analytics, and report downloads.
type ResultsHandler struct {
	rounds *repositories.RoundRepository
	logger *zap.Logger
}

func NewResultsHandler(rounds *repositories.RoundRepository, logger *zap.Logger) *ResultsHandler {
	return &ResultsHandler{rounds: rounds, logger: logger}
}

// ListHandler groups rounds by (candidate, role). The latest round's
// score and recommendation stand for the candidate in the listing.
func (h *ResultsHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.rounds.ListAll()
	if err != nil {
		h.logger.Error("Failed to list interview rounds", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to list interview results",
		})
		return
	}

	summaries := []models.CandidateSummary{}
	index := map[string]int{}
	for _, round := range rounds {
		key := round.CandidateName + "\x00" + round.Role
		pos, ok := index[key]
		if !ok {
			pos = len(summaries)
			index[key] = pos
			summaries = append(summaries, models.CandidateSummary{
				CandidateName: round.CandidateName,
				Role:          round.Role,
			})
		}
		summaries[pos].Rounds = append(summaries[pos].Rounds, models.RoundSummary{
			ID:             round.ID,
			RoundName:      round.RoundName,
			Score:          round.Score,
			Recommendation: round.Recommendation,
			AnticheatFlags: decodeFlags(round.AnticheatFlags),
			CompletedAt:    round.CompletedAt,
		})
		// rounds arrive in completion order, so the last one wins
		summaries[pos].LatestScore = round.Score
		summaries[pos].Recommendation = round.Recommendation
	}

	utils.JSON(w, http.StatusOK, summaries)
}

// AnalyticsHandler aggregates hiring metrics over all stored rounds.
// Scores of zero mark degraded reports and are excluded from the mean.
func (h *ResultsHandler) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.rounds.ListAll()
	if err != nil {
		h.logger.Error("Failed to load rounds for analytics", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to compute analytics",
		})
		return
	}

	candidates := map[string]struct{}{}
	recommendations := map[string]int{"recommended": 0, "not_recommended": 0, "hold": 0}
	var scoreSum float64
	var scored int
	for _, round := range rounds {
		candidates[round.CandidateName+"\x00"+round.Role] = struct{}{}
		recommendations[classifyRecommendation(round.Recommendation)]++
		if round.Score > 0 {
			scoreSum += round.Score
			scored++
		}
	}

	var average float64
	if scored > 0 {
		average = scoreSum / float64(scored)
	}

	utils.JSON(w, http.StatusOK, models.AnalyticsResponse{
		TotalCandidates: len(candidates),
		TotalInterviews: len(rounds),
		AverageScore:    average,
		Recommendations: recommendations,
	})
}

// ExportHandler streams one round's report as a plain-text download.
func (h *ResultsHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "roundID"), 10, 64)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_round_id",
			Message: "Round id must be a positive integer",
		})
		return
	}

	round, err := h.rounds.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrRoundNotFound) {
			utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "round_not_found",
				Message: "Interview round not found",
			})
			return
		}
		h.logger.Error("Failed to load round for export", zap.Error(err), zap.Uint64("round_id", id))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to export report",
		})
		return
	}

	body := utils.FormatReportExport(round.CandidateName, round.Role, round.CompletedAt, round.Report, round.RoundName)
	utils.Text(w, utils.ExportFilename(round.CandidateName, round.RoundName), body)
}

func classifyRecommendation(recommendation string) string {
	upper := strings.ToUpper(recommendation)
	switch {
	case strings.HasPrefix(upper, "YES"):
		return "recommended"
	case strings.HasPrefix(upper, "NO"):
		return "not_recommended"
	default:
		return "hold"
	}
}

func decodeFlags(raw string) []string {
	flags := []string{}
	if raw == "" {
		return flags
	}
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return []string{}
	}
	return flags
}
