package llm

import (
	"context"

	"github.com/666akuma13/interview-agent/internal/models"
)

// defines the interface for LLM providers
//
// Complete sends a fixed system instruction plus the full ordered channel
// history and returns the next assistant message. The caller owns all
// session state; providers are stateless between calls.
type Provider interface {
	Complete(ctx context.Context, systemInstruction string, history []models.ChatMessage) (string, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
