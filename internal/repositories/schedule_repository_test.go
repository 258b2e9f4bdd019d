package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/testhelpers"
)

func newScheduleToken(token string, expiresAt time.Time) *models.ScheduleToken {
	return &models.ScheduleToken{
		Token:          token,
		CandidateName:  "Dana",
		Role:           "backend engineer",
		Difficulty:     "mid",
		RoundName:      "technical",
		QuestionBudget: 8,
		ExpiresAt:      expiresAt,
	}
}

func TestConsumeValidToken(t *testing.T) {
	repo := &ScheduleRepository{DB: testhelpers.SetupTestDB(t)}
	now := time.Now()
	if err := repo.Create(newScheduleToken("abc123def4", now.Add(time.Hour))); err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	consumed, err := repo.Consume("abc123def4", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !consumed.Used {
		t.Fatal("consumed token should be marked used")
	}
	if consumed.UsedAt == nil {
		t.Fatal("consumed token should record the usage time")
	}
	if consumed.CandidateName != "Dana" || consumed.RoundName != "technical" {
		t.Fatalf("consumed token lost its parameters: %+v", consumed)
	}
}

func TestConsumeTwiceFails(t *testing.T) {
	repo := &ScheduleRepository{DB: testhelpers.SetupTestDB(t)}
	now := time.Now()
	if err := repo.Create(newScheduleToken("abc123def4", now.Add(time.Hour))); err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	if _, err := repo.Consume("abc123def4", now); err != nil {
		t.Fatalf("first consume failed: %v", err)
	}
	if _, err := repo.Consume("abc123def4", now); !errors.Is(err, ErrTokenConsumed) {
		t.Fatalf("expected ErrTokenConsumed, got %v", err)
	}
}

func TestConsumeUnknownToken(t *testing.T) {
	repo := &ScheduleRepository{DB: testhelpers.SetupTestDB(t)}
	if _, err := repo.Consume("nope", time.Now()); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestConsumeExpiredToken(t *testing.T) {
	repo := &ScheduleRepository{DB: testhelpers.SetupTestDB(t)}
	now := time.Now()
	if err := repo.Create(newScheduleToken("abc123def4", now.Add(-time.Hour))); err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	if _, err := repo.Consume("abc123def4", now); !errors.Is(err, ErrTokenConsumed) {
		t.Fatalf("expected ErrTokenConsumed for expired token, got %v", err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	repo := &ScheduleRepository{DB: testhelpers.SetupTestDB(t)}
	now := time.Now()
	for _, token := range []string{"tok1aaaaaa", "tok2bbbbbb"} {
		if err := repo.Create(newScheduleToken(token, now.Add(time.Hour))); err != nil {
			t.Fatalf("failed to create token: %v", err)
		}
	}

	tokens, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
}

func TestDeleteExpiredKeepsUsedAndLiveTokens(t *testing.T) {
	repo := &ScheduleRepository{DB: testhelpers.SetupTestDB(t)}
	now := time.Now()

	// expired and unused: should be removed
	if err := repo.Create(newScheduleToken("expired000", now.Add(-time.Hour))); err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	// live and unused: should survive
	if err := repo.Create(newScheduleToken("live000000", now.Add(time.Hour))); err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	// expired but used: should survive as an audit record
	used := newScheduleToken("used000000", now.Add(-time.Minute))
	used.Used = true
	if err := repo.Create(used); err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	deleted, err := repo.DeleteExpired(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deletion, got %d", deleted)
	}

	remaining, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 surviving tokens, got %d", len(remaining))
	}
	for _, token := range remaining {
		if token.Token == "expired000" {
			t.Fatal("expired unused token should have been removed")
		}
	}
}
