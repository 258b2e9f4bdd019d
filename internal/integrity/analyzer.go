package integrity

import (
	"fmt"
	"strings"

	"github.com/666akuma13/interview-agent/internal/models"
)

// CleanSentinel is returned as the only element when no rule fires.
// Callers branch on this exact string; treat it as a contract.
const CleanSentinel = "No suspicious activity detected"

// Fixed heuristic thresholds.
const (
	minAnswerWords     = 5
	maxAnswerWords     = 200
	fastAnswerSeconds  = 3.0
	fastAnswerMinWords = 50
)

// Analyze applies deterministic heuristics over the conversation log.
// latencies, when supplied, holds seconds per candidate turn in turn
// order; pass nil when no timing data exists. Interviewer turns are
// ignored. Turn indices in flags count conversation-log entries from 1.
func Analyze(transcript []models.TranscriptEntry, latencies []float64) []string {
	flags := []string{}
	answerIdx := 0
	for i, entry := range transcript {
		if entry.Speaker != models.SpeakerCandidate {
			continue
		}

		wordCount := len(strings.Fields(entry.Content))
		if wordCount < minAnswerWords {
			flags = append(flags, fmt.Sprintf("Q%d: Very short answer (%d words)", i+1, wordCount))
		}
		if wordCount > maxAnswerWords {
			flags = append(flags, fmt.Sprintf("Q%d: Very long answer (%d words) — possible pre-written", i+1, wordCount))
		}
		if answerIdx < len(latencies) {
			latency := latencies[answerIdx]
			if latency < fastAnswerSeconds && wordCount > fastAnswerMinWords {
				flags = append(flags, fmt.Sprintf("Q%d: Fast response for long answer (%d words in %.1fs) — possible copy-paste", i+1, wordCount, latency))
			}
		}
		answerIdx++
	}

	if len(flags) == 0 {
		return []string{CleanSentinel}
	}
	return flags
}

// IsClean reports whether a flag list is the clean sentinel.
func IsClean(flags []string) bool {
	return len(flags) == 1 && flags[0] == CleanSentinel
}
