package config

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_PASSWORD", "correct-horse")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setValidEnv(t)
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("QUESTION_BUDGET", "")
	t.Setenv("SCHEDULE_TTL_DAYS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected default provider gemini, got %q", cfg.Provider)
	}
	if cfg.AdminUsername != "admin" {
		t.Fatalf("expected default admin username, got %q", cfg.AdminUsername)
	}
	if cfg.QuestionBudget != 8 {
		t.Fatalf("expected default budget 8, got %d", cfg.QuestionBudget)
	}
	if cfg.ScheduleTTLDays != 14 {
		t.Fatalf("expected default ttl 14, got %d", cfg.ScheduleTTLDays)
	}
	if cfg.CleanupSchedule != "0 2 * * *" {
		t.Fatalf("unexpected default cleanup schedule %q", cfg.CleanupSchedule)
	}
}

func TestLoadConfigHashesPlaintextPassword(t *testing.T) {
	setValidEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AdminPasswordHash == "correct-horse" {
		t.Fatal("plaintext password must not be stored as-is")
	}
	if !cfg.CheckAdminPassword("correct-horse") {
		t.Fatal("configured password should verify")
	}
	if cfg.CheckAdminPassword("wrong") {
		t.Fatal("wrong password should not verify")
	}
}

func TestLoadConfigPrefersPrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("ADMIN_PASSWORD", "ignored")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.CheckAdminPassword("hunter2") {
		t.Fatal("hash-configured password should verify")
	}
}

func TestLoadConfigRequiresAdminCredential(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when no admin credential is configured")
	}
}

func TestLoadConfigRejectsUnsupportedProvider(t *testing.T) {
	setValidEnv(t)
	t.Setenv("AI_PROVIDER", "openai")

	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "unsupported AI provider") {
		t.Fatalf("expected unsupported provider error, got %v", err)
	}
}

func TestLoadConfigRejectsNonPositiveBudget(t *testing.T) {
	setValidEnv(t)
	t.Setenv("QUESTION_BUDGET", "-1")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for negative budget")
	}
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ADMIN_USERNAME", "hiring-ops")
	t.Setenv("QUESTION_BUDGET", "5")
	t.Setenv("SCHEDULE_TTL_DAYS", "30")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AdminUsername != "hiring-ops" || cfg.QuestionBudget != 5 || cfg.ScheduleTTLDays != 30 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
