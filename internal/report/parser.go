package report

import (
	"strconv"
	"strings"

	"github.com/666akuma13/interview-agent/internal/models"
)

// Best-effort extraction over free-form model output. Every function here
// is total: malformed or missing fields degrade to the documented
// defaults (0, "N/A", empty list) and never return an error. Downstream
// comparison logic depends on these exact sentinels.

// ExtractScore returns the overall score from the first line containing
// both "Overall" and "/10", or 0 when absent or unparseable.
func ExtractScore(reportText string) float64 {
	for _, line := range strings.Split(reportText, "\n") {
		if strings.Contains(line, "Overall") && strings.Contains(line, "/10") {
			return parseScoreLine(line)
		}
	}
	return 0
}

// ExtractRecommendation returns the trimmed text after the first colon of
// the first "HIRE RECOMMENDATION" line, or "N/A".
func ExtractRecommendation(reportText string) string {
	for _, line := range strings.Split(reportText, "\n") {
		if strings.Contains(strings.ToUpper(line), "HIRE RECOMMENDATION") {
			if idx := strings.Index(line, ":"); idx >= 0 {
				return strings.TrimSpace(line[idx+1:])
			}
			return "N/A"
		}
	}
	return "N/A"
}

// ExtractCategoryScores maps each fixed category name to its score,
// taking the first line that mentions the category together with "/10".
// Categories with no such line are omitted.
func ExtractCategoryScores(reportText string) map[string]float64 {
	scores := make(map[string]float64)
	lines := strings.Split(reportText, "\n")
	for _, category := range models.ScoreCategories {
		for _, line := range lines {
			if strings.Contains(line, category) && strings.Contains(line, "/10") {
				scores[category] = parseScoreLine(line)
				break
			}
		}
	}
	return scores
}

// ExtractWeaknesses captures the "-" bullet lines following an
// "AREAS FOR IMPROVEMENT" heading, stopping at a blank line or a line
// mentioning HIRE, SUMMARY or STRENGTH.
func ExtractWeaknesses(reportText string) []string {
	weaknesses := make([]string, 0)
	capture := false
	for _, line := range strings.Split(reportText, "\n") {
		if strings.Contains(strings.ToUpper(line), "AREAS FOR IMPROVEMENT") {
			capture = true
			continue
		}
		if !capture {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		upper := strings.ToUpper(trimmed)
		if strings.Contains(upper, "HIRE") || strings.Contains(upper, "SUMMARY") || strings.Contains(upper, "STRENGTH") {
			break
		}
		if strings.HasPrefix(trimmed, "-") {
			weaknesses = append(weaknesses, strings.TrimSpace(strings.TrimLeft(trimmed, "- ")))
		}
	}
	return weaknesses
}

// Evaluate runs every extractor over the raw report text.
func Evaluate(reportText string) models.Evaluation {
	return models.Evaluation{
		OverallScore:   ExtractScore(reportText),
		CategoryScores: ExtractCategoryScores(reportText),
		Recommendation: ExtractRecommendation(reportText),
		Weaknesses:     ExtractWeaknesses(reportText),
	}
}

// parseScoreLine handles "<label>: <value>/10" shaped lines.
func parseScoreLine(line string) float64 {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) < 2 {
		return 0
	}
	raw := strings.TrimSpace(strings.ReplaceAll(parts[1], "/10", ""))
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return score
}
