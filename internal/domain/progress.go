package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlayerProgress accumulates duplicate rewards for a player.
type PlayerProgress struct {
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;primary_key"`
	Experience int       `json:"experience" gorm:"not null;default:0"`
	Coins      int       `json:"coins" gorm:"not null;default:0"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (p *PlayerProgress) Apply(reward Reward) {
	switch reward.Kind {
	case RewardExperience:
		p.Experience += reward.Amount
	case RewardCoins:
		p.Coins += reward.Amount
	}
}

func (PlayerProgress) TableName() string {
	return "player_progress"
}
