package models

import "strings"

// RoleProfile carries the job metadata a session is interviewed against.
type RoleProfile struct {
	Title           string `json:"role"`
	TechnicalSkills string `json:"technical_skills"`
	SoftSkills      string `json:"soft_skills,omitempty"`
	Experience      string `json:"experience,omitempty"`
	Difficulty      string `json:"difficulty"`
}

// Normalize lowercases the difficulty tier and applies the default when absent.
func (p *RoleProfile) Normalize() {
	p.Difficulty = strings.ToLower(strings.TrimSpace(p.Difficulty))
	if p.Difficulty == "" {
		p.Difficulty = DefaultDifficulty
	}
}
