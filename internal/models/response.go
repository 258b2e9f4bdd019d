package models

import "time"

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// StartResponse returns the opening interviewer message of a session.
type StartResponse struct {
	SessionID      string `json:"session_id"`
	CandidateName  string `json:"candidate_name"`
	Role           string `json:"role"`
	RoundName      string `json:"round_name"`
	QuestionBudget int    `json:"question_budget"`
	Message        string `json:"message"`
}

// AnswerResponse returns the interviewer reply to one candidate answer.
type AnswerResponse struct {
	SessionID string `json:"session_id"`
	Question  int    `json:"question"`
	Budget    int    `json:"budget"`
	Message   string `json:"message"`
	Complete  bool   `json:"complete"`
}

// Evaluation is the structured view extracted from a raw report.
type Evaluation struct {
	OverallScore   float64            `json:"overall_score"`
	CategoryScores map[string]float64 `json:"category_scores"`
	Recommendation string             `json:"recommendation"`
	Weaknesses     []string           `json:"weaknesses"`
}

// SubmitResponse returns the synthesized report for a finished session.
type SubmitResponse struct {
	SessionID      string            `json:"session_id"`
	Report         string            `json:"report"`
	Evaluation     Evaluation        `json:"evaluation"`
	AnticheatFlags []string          `json:"anticheat_flags"`
	Transcript     []TranscriptEntry `json:"transcript"`
}

// ScheduleResponse returns a freshly created interview link token.
type ScheduleResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RoundSummary is one completed round in a candidate listing.
type RoundSummary struct {
	ID             uint      `json:"id"`
	RoundName      string    `json:"round_name"`
	Score          float64   `json:"score"`
	Recommendation string    `json:"recommendation"`
	AnticheatFlags []string  `json:"anticheat_flags"`
	CompletedAt    time.Time `json:"completed_at"`
}

// CandidateSummary groups a candidate's rounds for the results listing.
type CandidateSummary struct {
	CandidateName  string         `json:"candidate_name"`
	Role           string         `json:"role"`
	LatestScore    float64        `json:"latest_score"`
	Recommendation string         `json:"recommendation"`
	Rounds         []RoundSummary `json:"rounds"`
}

// AnalyticsResponse aggregates hiring metrics over all stored rounds.
type AnalyticsResponse struct {
	TotalCandidates int            `json:"total_candidates"`
	TotalInterviews int            `json:"total_interviews"`
	AverageScore    float64        `json:"average_score"`
	Recommendations map[string]int `json:"recommendations"`
}
