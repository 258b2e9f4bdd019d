package utils

import (
	"regexp"
	"testing"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{10}$`)

func TestGenerateInterviewTokenShape(t *testing.T) {
	token := GenerateInterviewToken("Dana", "backend engineer", "technical")
	if !hexToken.MatchString(token) {
		t.Fatalf("token %q is not 10 lowercase hex characters", token)
	}
}

func TestGenerateInterviewTokenVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateInterviewToken("Dana", "backend engineer", "technical")] = true
	}
	if len(seen) < 2 {
		t.Fatal("tokens for repeated calls should differ via the timestamp component")
	}
}
