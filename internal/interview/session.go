package interview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/666akuma13/interview-agent/internal/llm"
	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/prompts"
)

var (
	ErrNotStarted      = errors.New("interview session not started")
	ErrAlreadyStarted  = errors.New("interview session already started")
	ErrSessionComplete = errors.New("interview session already complete")
	ErrContextTooLarge = errors.New("interview channel history exceeds the context budget")
)

// State is the explicit lifecycle of a session.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateComplete
)

// The full channel history is resent on every turn, so its total size is
// capped; a session that outgrows the cap fails fast instead of silently
// truncating.
const maxChannelChars = 120000

// Session drives exactly one interview to completion. The system
// instruction is fixed at construction; the channel history carries all
// conversation state. A session is owned by a single caller; the internal
// mutex only guards against accidental concurrent use.
type Session struct {
	ID            string
	CandidateName string
	Profile       models.RoleProfile
	RoundName     string
	Budget        int

	mu           sync.Mutex
	provider     llm.Provider
	systemPrompt string
	state        State
	turns        int
	history      []models.ChatMessage      // raw LLM channel
	log          []models.TranscriptEntry  // visible conversation log
	latencies    []float64                 // seconds per candidate turn
	lastReplyAt  time.Time
	now          func() time.Time
}

func NewSession(provider llm.Provider, systemPrompt, candidateName string, profile models.RoleProfile, roundName string, budget int) *Session {
	return &Session{
		ID:            uuid.NewString(),
		CandidateName: candidateName,
		Profile:       profile,
		RoundName:     roundName,
		Budget:        budget,
		provider:      provider,
		systemPrompt:  systemPrompt,
		now:           time.Now,
	}
}

// Start sends the synthetic opener and returns the interviewer's opening
// message. Gateway failures degrade to an in-band error turn; the session
// still becomes Active so the caller may let the candidate retry.
func (s *Session) Start(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return "", ErrAlreadyStarted
	}

	opener := "Hello, I am " + s.CandidateName + ". I am ready to start."
	reply := s.exchange(ctx, opener)

	s.log = append(s.log, models.TranscriptEntry{Speaker: models.SpeakerInterviewer, Content: reply})
	s.state = StateActive
	s.lastReplyAt = s.now()
	return reply, nil
}

// SubmitAnswer processes one candidate answer and returns the next
// interviewer message. The visible log stores the original answer text;
// only the outbound copy of the final turn carries the wrap-up directive.
// Once the budget-th answer has been processed the session is Complete
// and further calls fail with ErrSessionComplete.
func (s *Session) SubmitAnswer(ctx context.Context, answer string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateUninitialized:
		return "", ErrNotStarted
	case StateComplete:
		return "", ErrSessionComplete
	}

	if s.channelSize()+len(answer) > maxChannelChars {
		return "", ErrContextTooLarge
	}

	s.turns++
	if !s.lastReplyAt.IsZero() {
		s.latencies = append(s.latencies, s.now().Sub(s.lastReplyAt).Seconds())
	}
	s.log = append(s.log, models.TranscriptEntry{Speaker: models.SpeakerCandidate, Content: answer})

	outbound := answer
	if s.turns >= s.Budget {
		outbound += prompts.WrapUpDirective
	}

	reply := s.exchange(ctx, outbound)
	s.log = append(s.log, models.TranscriptEntry{Speaker: models.SpeakerInterviewer, Content: reply})

	if s.turns >= s.Budget {
		s.state = StateComplete
	}
	s.lastReplyAt = s.now()
	return reply, nil
}

// exchange appends the outbound user message, calls the provider with the
// full accumulated channel, and appends the reply. Provider errors are
// converted to an error-text assistant turn rather than propagated.
func (s *Session) exchange(ctx context.Context, outbound string) string {
	s.history = append(s.history, models.ChatMessage{Role: models.ChatRoleUser, Content: outbound})

	reply, err := s.provider.Complete(ctx, s.systemPrompt, s.history)
	if err != nil {
		reply = "Error: " + err.Error()
	}

	s.history = append(s.history, models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply})
	return reply
}

// IsComplete reports whether the question budget has been reached.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns >= s.Budget
}

// Turns returns the number of candidate answers processed so far.
func (s *Session) Turns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the visible conversation log. This, not
// the raw LLM channel, is the artifact consumed downstream.
func (s *Session) Transcript() []models.TranscriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]models.TranscriptEntry, len(s.log))
	copy(copied, s.log)
	return copied
}

// Latencies returns seconds between each interviewer message and the
// candidate answer that followed it, aligned with candidate turn order.
func (s *Session) Latencies() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]float64, len(s.latencies))
	copy(copied, s.latencies)
	return copied
}

func (s *Session) channelSize() int {
	size := len(s.systemPrompt)
	for _, msg := range s.history {
		size += len(msg.Content)
	}
	return size
}
