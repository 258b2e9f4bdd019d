package report

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/666akuma13/interview-agent/internal/llm"
	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/prompts"
)

// Synthesizer turns a finished transcript into a raw evaluation report
// plus its structured extraction.
type Synthesizer struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewSynthesizer(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		prompts:  promptManager,
		logger:   logger,
	}
}

// Synthesize issues one evaluation request over the transcript. A failed
// gateway call degrades to a literal failure message as the report text;
// extraction still runs over it and yields the documented defaults.
func (s *Synthesizer) Synthesize(ctx context.Context, transcript []models.TranscriptEntry, profile models.RoleProfile, roundName string) (string, models.Evaluation) {
	raw := s.rawReport(ctx, transcript, profile, roundName)
	return raw, Evaluate(raw)
}

func (s *Synthesizer) rawReport(ctx context.Context, transcript []models.TranscriptEntry, profile models.RoleProfile, roundName string) string {
	system, user, err := s.prompts.BuildEvaluationPrompt(profile, roundName, FormatTranscript(transcript))
	if err != nil {
		s.logger.Error("Failed to build evaluation prompt", zap.Error(err))
		return "Report generation failed: " + err.Error()
	}

	raw, err := s.provider.Complete(ctx, system, []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: user},
	})
	if err != nil {
		s.logger.Error("Report generation failed",
			zap.Error(err),
			zap.String("provider", s.provider.GetProviderName()))
		return "Report generation failed: " + err.Error()
	}
	return raw
}

// FormatTranscript renders the conversation log as one text block with
// each line prefixed by the upper-cased speaker.
func FormatTranscript(transcript []models.TranscriptEntry) string {
	lines := make([]string, 0, len(transcript))
	for _, entry := range transcript {
		lines = append(lines, strings.ToUpper(entry.Speaker)+": "+entry.Content)
	}
	return strings.Join(lines, "\n")
}
