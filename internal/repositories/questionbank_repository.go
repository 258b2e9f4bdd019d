package repositories

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/666akuma13/interview-agent/internal/models"
)

// QuestionBankRepository manages per-role must-ask question lists.
type QuestionBankRepository struct {
	DB *gorm.DB
}

// Append adds questions to a role's list, creating it when absent.
func (r *QuestionBankRepository) Append(role string, questions []string) error {
	var set models.QuestionSet
	err := r.DB.Where("role = ?", role).First(&set).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		data, err := json.Marshal(questions)
		if err != nil {
			return err
		}
		return r.DB.Create(&models.QuestionSet{Role: role, Questions: string(data)}).Error
	case err != nil:
		return err
	}

	existing := decodeQuestions(set.Questions)
	data, err := json.Marshal(append(existing, questions...))
	if err != nil {
		return err
	}
	return r.DB.Model(&set).Update("questions", string(data)).Error
}

// Get returns a role's questions; a missing role yields an empty list.
func (r *QuestionBankRepository) Get(role string) ([]string, error) {
	var set models.QuestionSet
	err := r.DB.Where("role = ?", role).First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeQuestions(set.Questions), nil
}

// List returns the whole bank keyed by role.
func (r *QuestionBankRepository) List() (map[string][]string, error) {
	sets := []models.QuestionSet{}
	if err := r.DB.Order("role").Find(&sets).Error; err != nil {
		return nil, err
	}
	bank := make(map[string][]string, len(sets))
	for _, set := range sets {
		bank[set.Role] = decodeQuestions(set.Questions)
	}
	return bank, nil
}

func (r *QuestionBankRepository) Delete(role string) error {
	return r.DB.Where("role = ?", role).Delete(&models.QuestionSet{}).Error
}

// decodeQuestions tolerates malformed stored JSON rather than failing a
// whole interview start over a corrupt bank entry.
func decodeQuestions(data string) []string {
	questions := []string{}
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		return []string{}
	}
	return questions
}
