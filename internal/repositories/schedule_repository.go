package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/666akuma13/interview-agent/internal/models"
)

var (
	ErrTokenNotFound = errors.New("schedule token not found")
	ErrTokenConsumed = errors.New("schedule token already used or expired")
)

// ScheduleRepository manages single-use interview link tokens.
type ScheduleRepository struct {
	DB *gorm.DB
}

func (r *ScheduleRepository) Create(token *models.ScheduleToken) error {
	return r.DB.Create(token).Error
}

func (r *ScheduleRepository) GetByToken(tokenStr string) (*models.ScheduleToken, error) {
	var t models.ScheduleToken
	if err := r.DB.Where("token = ?", tokenStr).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Consume flips a token unused -> used exactly once. The guarded UPDATE
// makes the transition atomic; a second consume, an unknown token, or an
// expired one all reject before any session work happens.
func (r *ScheduleRepository) Consume(tokenStr string, now time.Time) (*models.ScheduleToken, error) {
	tx := r.DB.Model(&models.ScheduleToken{}).
		Where("token = ? AND used = ? AND expires_at > ?", tokenStr, false, now).
		Updates(map[string]interface{}{
			"used":    true,
			"used_at": now,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		if _, err := r.GetByToken(tokenStr); errors.Is(err, ErrTokenNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, ErrTokenConsumed
	}
	return r.GetByToken(tokenStr)
}

func (r *ScheduleRepository) List() ([]models.ScheduleToken, error) {
	tokens := []models.ScheduleToken{}
	err := r.DB.Order("created_at DESC").Find(&tokens).Error
	return tokens, err
}

// DeleteExpired removes unused tokens whose expiry has passed.
func (r *ScheduleRepository) DeleteExpired(before time.Time) (int64, error) {
	tx := r.DB.Where("used = ? AND expires_at <= ?", false, before).Delete(&models.ScheduleToken{})
	return tx.RowsAffected, tx.Error
}
