package models

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleToken is a single-use credential binding an interview link to
// its session parameters. It flips unused -> used exactly once, when the
// candidate starts the interview.
type ScheduleToken struct {
	gorm.Model
	Token           string     `gorm:"uniqueIndex;not null" json:"token"`
	CandidateName   string     `gorm:"not null" json:"candidate_name"`
	Role            string     `gorm:"not null" json:"role"`
	TechnicalSkills string     `json:"technical_skills"`
	SoftSkills      string     `json:"soft_skills"`
	Experience      string     `json:"experience"`
	Difficulty      string     `gorm:"not null" json:"difficulty"`
	RoundName       string     `gorm:"not null" json:"round_name"`
	QuestionBudget  int        `gorm:"not null" json:"question_budget"`
	Used            bool       `gorm:"not null;default:false;index" json:"used"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	ExpiresAt       time.Time  `gorm:"index" json:"expires_at"`
}

// CandidateRound stores one completed interview round. The transcript and
// anti-cheat flags are serialized JSON; score and recommendation are
// denormalized from the report text so listings never re-parse it.
type CandidateRound struct {
	gorm.Model
	CandidateName  string    `gorm:"not null;index" json:"candidate_name"`
	Role           string    `gorm:"not null;index" json:"role"`
	RoundName      string    `gorm:"not null" json:"round_name"`
	Report         string    `gorm:"type:text" json:"report"`
	Transcript     string    `gorm:"type:text" json:"transcript"`
	AnticheatFlags string    `gorm:"type:text" json:"anticheat_flags"`
	Score          float64   `json:"score"`
	Recommendation string    `json:"recommendation"`
	CompletedAt    time.Time `gorm:"not null" json:"completed_at"`
}

// QuestionSet is the per-role must-ask question bank entry.
type QuestionSet struct {
	gorm.Model
	Role      string `gorm:"uniqueIndex;not null" json:"role"`
	Questions string `gorm:"type:text;not null" json:"questions"` // JSON array of strings
}
