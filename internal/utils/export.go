package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatReportExport renders the downloadable text version of an
// evaluation report: (candidate, role, date, report text, round).
func FormatReportExport(candidateName, role string, date time.Time, reportText, roundName string) string {
	var b strings.Builder
	b.WriteString("AI Interview Evaluation Report\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	fmt.Fprintf(&b, "Candidate: %s\n", candidateName)
	fmt.Fprintf(&b, "Role: %s\n", role)
	fmt.Fprintf(&b, "Round: %s\n", roundName)
	fmt.Fprintf(&b, "Date: %s\n\n", date.Format("2006-01-02 15:04"))
	b.WriteString(reportText)
	b.WriteString("\n")
	return b.String()
}

// ExportFilename builds a safe download filename for a report.
func ExportFilename(candidateName, roundName string) string {
	sanitize := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				return r
			default:
				return '_'
			}
		}, s)
	}
	return fmt.Sprintf("%s_%s_report.txt", sanitize(candidateName), sanitize(roundName))
}
