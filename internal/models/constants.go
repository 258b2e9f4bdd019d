package models

// contains all supported interview rounds (in lowercase)
var ValidRounds = map[string]bool{
	"technical":  true,
	"hr":         true,
	"managerial": true,
}

// contains all valid difficulty tiers (in lowercase)
var ValidDifficulties = map[string]bool{
	"junior": true,
	"mid":    true,
	"senior": true,
}

func ValidRoundsList() []string {
	return []string{"technical", "hr", "managerial"}
}

func ValidDifficultiesList() []string {
	return []string{"junior", "mid", "senior"}
}

// the five score categories every evaluation report is asked to produce
var ScoreCategories = []string{
	"Technical Knowledge",
	"Communication",
	"Problem Solving",
	"Confidence",
	"Overall",
}

const (
	DefaultDifficulty     = "mid"
	DefaultQuestionBudget = 8
)
