package models

import "strings"

// StartByTokenRequest begins a scheduled interview from a candidate link.
type StartByTokenRequest struct {
	Token string `json:"token"`
}

// implements the Validator interface
func (r *StartByTokenRequest) Validate() error {
	r.Token = strings.TrimSpace(r.Token)
	if r.Token == "" {
		return &ErrorResponse{
			Code:    "missing_token",
			Message: "Token field is required",
		}
	}
	return nil
}

// AdminStartRequest begins an admin-conducted interview without a token.
type AdminStartRequest struct {
	CandidateName   string `json:"candidate_name"`
	Role            string `json:"role"`
	TechnicalSkills string `json:"technical_skills"`
	SoftSkills      string `json:"soft_skills"`
	Experience      string `json:"experience"`
	Difficulty      string `json:"difficulty"`
	RoundName       string `json:"round_name"`
	QuestionBudget  int    `json:"question_budget"`
}

func (r *AdminStartRequest) Validate() error {
	if strings.TrimSpace(r.CandidateName) == "" {
		return &ErrorResponse{Code: "missing_candidate_name", Message: "Candidate name is required"}
	}
	if strings.TrimSpace(r.Role) == "" {
		return &ErrorResponse{Code: "missing_role", Message: "Job role is required"}
	}

	r.RoundName = strings.ToLower(strings.TrimSpace(r.RoundName))
	if r.RoundName == "" {
		r.RoundName = "technical"
	}
	if !ValidRounds[r.RoundName] {
		return &ErrorResponse{Code: "invalid_round", Message: "Round must be one of: technical, hr, managerial"}
	}

	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{Code: "invalid_difficulty", Message: "Difficulty must be one of: junior, mid, senior"}
	}

	if r.QuestionBudget < 0 {
		return &ErrorResponse{Code: "invalid_question_budget", Message: "Question budget must not be negative"}
	}
	if r.QuestionBudget == 0 {
		r.QuestionBudget = DefaultQuestionBudget
	}
	return nil
}

// AnswerRequest carries one candidate answer for an active session.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *AnswerRequest) Validate() error {
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "Answer field is required"}
	}
	return nil
}

// ScheduleRequest creates a single-use interview link.
type ScheduleRequest struct {
	CandidateName   string `json:"candidate_name"`
	Role            string `json:"role"`
	TechnicalSkills string `json:"technical_skills"`
	SoftSkills      string `json:"soft_skills"`
	Experience      string `json:"experience"`
	Difficulty      string `json:"difficulty"`
	RoundName       string `json:"round_name"`
	QuestionBudget  int    `json:"question_budget"`
}

func (r *ScheduleRequest) Validate() error {
	if strings.TrimSpace(r.CandidateName) == "" {
		return &ErrorResponse{Code: "missing_candidate_name", Message: "Candidate name is required"}
	}
	if strings.TrimSpace(r.Role) == "" {
		return &ErrorResponse{Code: "missing_role", Message: "Job role is required"}
	}

	r.RoundName = strings.ToLower(strings.TrimSpace(r.RoundName))
	if r.RoundName == "" {
		r.RoundName = "technical"
	}
	if !ValidRounds[r.RoundName] {
		return &ErrorResponse{Code: "invalid_round", Message: "Round must be one of: technical, hr, managerial"}
	}

	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{Code: "invalid_difficulty", Message: "Difficulty must be one of: junior, mid, senior"}
	}

	if r.QuestionBudget < 0 {
		return &ErrorResponse{Code: "invalid_question_budget", Message: "Question budget must not be negative"}
	}
	if r.QuestionBudget == 0 {
		r.QuestionBudget = DefaultQuestionBudget
	}
	return nil
}

// QuestionBankRequest stores must-ask questions for a role.
type QuestionBankRequest struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
}

func (r *QuestionBankRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return &ErrorResponse{Code: "missing_role", Message: "Role name is required"}
	}

	cleaned := make([]string, 0, len(r.Questions))
	for _, q := range r.Questions {
		if q = strings.TrimSpace(q); q != "" {
			cleaned = append(cleaned, q)
		}
	}
	if len(cleaned) == 0 {
		return &ErrorResponse{Code: "missing_questions", Message: "At least one question is required"}
	}
	r.Questions = cleaned
	return nil
}

// LoginRequest authenticates an admin.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return &ErrorResponse{Code: "missing_credentials", Message: "Username and password are required"}
	}
	return nil
}
