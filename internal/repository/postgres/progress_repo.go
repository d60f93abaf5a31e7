package postgres

import (
	"context"
	"errors"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *progressRepository {
	return &progressRepository{db: db}
}

// Get returns the player's totals, or zero totals if nothing was earned yet.
func (r *progressRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.PlayerProgress, error) {
	var progress domain.PlayerProgress
	err := r.db.WithContext(ctx).First(&progress, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.PlayerProgress{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) AddReward(ctx context.Context, userID uuid.UUID, reward domain.Reward) (*domain.PlayerProgress, error) {
	var progress domain.PlayerProgress
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&domain.PlayerProgress{UserID: userID}).Error
		if err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&progress, "user_id = ?", userID).Error; err != nil {
			return err
		}

		progress.Apply(reward)
		return tx.Save(&progress).Error
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
