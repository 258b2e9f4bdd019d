package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/666akuma13/interview-agent/internal/models"
)

var ErrRoundNotFound = errors.New("interview round not found")

// RoundRepository stores completed interview rounds. Each round is one
// row; listings group rows by (candidate, role).
type RoundRepository struct {
	DB *gorm.DB
}

func (r *RoundRepository) Create(round *models.CandidateRound) error {
	return r.DB.Create(round).Error
}

func (r *RoundRepository) GetByID(id uint) (*models.CandidateRound, error) {
	var round models.CandidateRound
	if err := r.DB.First(&round, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return &round, nil
}

// ListAll returns every stored round, newest candidates first, rounds in
// completion order within a candidate.
func (r *RoundRepository) ListAll() ([]models.CandidateRound, error) {
	rounds := []models.CandidateRound{}
	err := r.DB.Order("candidate_name, role, completed_at ASC").Find(&rounds).Error
	return rounds, err
}

// ListByCandidate returns one candidate's rounds for a role in
// completion order.
func (r *RoundRepository) ListByCandidate(candidateName, role string) ([]models.CandidateRound, error) {
	rounds := []models.CandidateRound{}
	err := r.DB.
		Where("candidate_name = ? AND role = ?", candidateName, role).
		Order("completed_at ASC").
		Find(&rounds).Error
	return rounds, err
}
