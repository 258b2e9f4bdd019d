package prompts

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/666akuma13/interview-agent/internal/models"
)

// embeds all .yaml files in the templates folder into Go program at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// WrapUpDirective is appended to the outbound copy of the final candidate
// answer so the model closes the interview gracefully. It is never stored
// in the visible transcript.
const WrapUpDirective = " (This is the final response. Please wrap up the interview now.)"

// RoundTemplate is one loaded interview-round template.
type RoundTemplate struct {
	BasePrompt       string            `yaml:"base_prompt"`
	DifficultyLevels map[string]string `yaml:"difficulty_levels"`
}

// EvaluationTemplate drives the post-interview report request.
type EvaluationTemplate struct {
	SystemPrompt string `yaml:"system_prompt"`
	UserPrompt   string `yaml:"user_prompt"`
}

// PromptProvider is what handlers and the dialogue engine depend on.
type PromptProvider interface {
	BuildSystemPrompt(candidateName string, profile models.RoleProfile, roundName string, budget int, mustAsk []string) (string, error)
	BuildEvaluationPrompt(profile models.RoleProfile, roundName, transcriptBlock string) (system string, user string, err error)
	GetTemplates() []string
}

type Manager struct {
	rounds     map[string]*RoundTemplate
	evaluation *EvaluationTemplate
}

// creates a new prompt manager and loads templates
func NewManager() (*Manager, error) {
	m := &Manager{rounds: make(map[string]*RoundTemplate)}
	if err := m.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	if m.evaluation == nil {
		return nil, fmt.Errorf("evaluation template missing")
	}
	return m, nil
}

// BuildSystemPrompt composes the fixed system instruction for a session.
// It is built once at session start; the channel history, not this
// instruction, carries conversation state.
func (m *Manager) BuildSystemPrompt(candidateName string, profile models.RoleProfile, roundName string, budget int, mustAsk []string) (string, error) {
	tmpl, exists := m.rounds[roundName]
	if !exists {
		return "", fmt.Errorf("template not found for round: %s", roundName)
	}

	tier, exists := tmpl.DifficultyLevels[profile.Difficulty]
	if !exists {
		return "", fmt.Errorf("difficulty '%s' not found for round '%s'", profile.Difficulty, roundName)
	}

	var prompt strings.Builder
	prompt.WriteString(substitute(tmpl.BasePrompt, candidateName, profile, roundName, budget))
	prompt.WriteString("\n\n")
	prompt.WriteString(substitute(tier, candidateName, profile, roundName, budget))

	if len(mustAsk) > 0 {
		prompt.WriteString("\n\nMUST-ASK QUESTIONS: work each of the following questions, verbatim, into the interview:\n")
		for _, q := range mustAsk {
			prompt.WriteString("- ")
			prompt.WriteString(q)
			prompt.WriteString("\n")
		}
	}

	return prompt.String(), nil
}

// BuildEvaluationPrompt renders the report-synthesis request for a
// finished transcript.
func (m *Manager) BuildEvaluationPrompt(profile models.RoleProfile, roundName, transcriptBlock string) (string, string, error) {
	if m.evaluation == nil {
		return "", "", fmt.Errorf("evaluation template missing")
	}
	user := substitute(m.evaluation.UserPrompt, "", profile, roundName, 0)
	user = strings.ReplaceAll(user, "{{.Transcript}}", transcriptBlock)
	return m.evaluation.SystemPrompt, user, nil
}

// GetTemplates returns the loaded round template names, for readiness checks.
func (m *Manager) GetTemplates() []string {
	names := make([]string, 0, len(m.rounds))
	for name := range m.rounds {
		names = append(names, name)
	}
	return names
}

// Simple string replacement instead of template execution, matching the
// placeholder set documented in the template files.
func substitute(text, candidateName string, profile models.RoleProfile, roundName string, budget int) string {
	r := strings.NewReplacer(
		"{{.CandidateName}}", candidateName,
		"{{.Role}}", profile.Title,
		"{{.TechnicalSkills}}", profile.TechnicalSkills,
		"{{.SoftSkills}}", profile.SoftSkills,
		"{{.Experience}}", profile.Experience,
		"{{.Round}}", roundName,
		"{{.Budget}}", strconv.Itoa(budget),
	)
	return r.Replace(text)
}

// loadTemplates loads all YAML prompt files from the embedded filesystem
func (m *Manager) loadTemplates() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if name == "evaluation" {
			var eval EvaluationTemplate
			if err := yaml.Unmarshal(data, &eval); err != nil {
				return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
			}
			m.evaluation = &eval
			continue
		}

		var tmpl RoundTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}
		m.rounds[name] = &tmpl
	}

	return nil
}
