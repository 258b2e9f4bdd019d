package prompts

import (
	"strings"
	"testing"

	"github.com/666akuma13/interview-agent/internal/models"
)

func testProfile() models.RoleProfile {
	return models.RoleProfile{
		Title:           "backend engineer",
		TechnicalSkills: "Go, PostgreSQL",
		SoftSkills:      "communication",
		Experience:      "5 years",
		Difficulty:      "mid",
	}
}

func TestNewManagerLoadsAllRoundTemplates(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	templates := manager.GetTemplates()
	found := map[string]bool{}
	for _, name := range templates {
		found[name] = true
	}
	for _, round := range models.ValidRoundsList() {
		if !found[round] {
			t.Fatalf("expected round template %q to be loaded, have %v", round, templates)
		}
	}
}

func TestBuildSystemPromptSubstitutesPlaceholders(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	prompt, err := manager.BuildSystemPrompt("Dana", testProfile(), "technical", 8, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Dana", "backend engineer", "Go, PostgreSQL", "8"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "{{.") {
		t.Fatalf("unsubstituted placeholder left in prompt:\n%s", prompt)
	}
}

func TestBuildSystemPromptIncludesDifficultyTier(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	profile := testProfile()
	profile.Difficulty = "junior"
	junior, err := manager.BuildSystemPrompt("Dana", profile, "technical", 8, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile.Difficulty = "senior"
	senior, err := manager.BuildSystemPrompt("Dana", profile, "technical", 8, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if junior == senior {
		t.Fatal("difficulty tiers should produce different prompts")
	}
}

func TestBuildSystemPromptAppendsMustAskVerbatim(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mustAsk := []string{
		"Describe a time you disagreed with your manager.",
		"How do you size a connection pool?",
	}
	prompt, err := manager.BuildSystemPrompt("Dana", testProfile(), "hr", 8, mustAsk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "MUST-ASK QUESTIONS") {
		t.Fatalf("prompt missing must-ask heading:\n%s", prompt)
	}
	for _, q := range mustAsk {
		if !strings.Contains(prompt, "- "+q) {
			t.Fatalf("prompt missing verbatim question %q", q)
		}
	}
}

func TestBuildSystemPromptOmitsMustAskSectionWhenEmpty(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	prompt, err := manager.BuildSystemPrompt("Dana", testProfile(), "managerial", 8, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(prompt, "MUST-ASK QUESTIONS") {
		t.Fatal("must-ask heading present despite empty question list")
	}
}

func TestBuildSystemPromptUnknownRound(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	if _, err := manager.BuildSystemPrompt("Dana", testProfile(), "trivia", 8, nil); err == nil {
		t.Fatal("expected error for unknown round")
	}
}

func TestBuildSystemPromptUnknownDifficulty(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	profile := testProfile()
	profile.Difficulty = "expert"
	if _, err := manager.BuildSystemPrompt("Dana", profile, "technical", 8, nil); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestBuildEvaluationPrompt(t *testing.T) {
	manager, err := NewManager()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	transcriptBlock := "INTERVIEWER: Hello\nCANDIDATE: Hi"
	system, user, err := manager.BuildEvaluationPrompt(testProfile(), "technical", transcriptBlock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if system != "You are a senior hiring manager. Evaluate interview transcripts objectively." {
		t.Fatalf("unexpected system prompt: %q", system)
	}
	if !strings.Contains(user, transcriptBlock) {
		t.Fatalf("user prompt missing transcript block:\n%s", user)
	}
	if !strings.Contains(user, "backend engineer") {
		t.Fatalf("user prompt missing role:\n%s", user)
	}
	if !strings.Contains(user, "HIRE RECOMMENDATION") {
		t.Fatalf("user prompt missing recommendation instruction:\n%s", user)
	}
}

func TestWrapUpDirectiveText(t *testing.T) {
	if !strings.Contains(WrapUpDirective, "wrap up the interview") {
		t.Fatalf("unexpected wrap-up directive: %q", WrapUpDirective)
	}
	if !strings.HasPrefix(WrapUpDirective, " ") {
		t.Fatal("wrap-up directive must be directly appendable to the answer text")
	}
}
