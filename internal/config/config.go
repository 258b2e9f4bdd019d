package config

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// app config: AI provider, admin credentials, interview defaults.
// Everything is injected from the environment; nothing is hardcoded.
type Config struct {
	Provider          string
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	QuestionBudget    int
	ScheduleTTLDays   int
	CleanupSchedule   string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:        getEnvOrDefault("AI_PROVIDER", "gemini"),
		AdminUsername:   getEnvOrDefault("ADMIN_USERNAME", "admin"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "dev"),
		QuestionBudget:  getEnvInt("QUESTION_BUDGET", 8),
		ScheduleTTLDays: getEnvInt("SCHEDULE_TTL_DAYS", 14),
		CleanupSchedule: getEnvOrDefault("SCHEDULE_CLEANUP_CRON", "0 2 * * *"),
	}

	hash, err := loadAdminPasswordHash()
	if err != nil {
		return nil, err
	}
	config.AdminPasswordHash = hash

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// CheckAdminPassword compares a login attempt against the configured hash.
func (c *Config) CheckAdminPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.AdminPasswordHash), []byte(password)) == nil
}

// Accepts either a pre-computed bcrypt hash or a plaintext password that
// is hashed at boot. One of the two must be configured.
func loadAdminPasswordHash() (string, error) {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return hash, nil
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(hashed), nil
	}
	return "", errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH environment variable is required")
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.QuestionBudget <= 0 {
		return errors.New("QUESTION_BUDGET must be positive")
	}
	if config.ScheduleTTLDays <= 0 {
		return errors.New("SCHEDULE_TTL_DAYS must be positive")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
