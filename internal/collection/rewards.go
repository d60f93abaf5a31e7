package collection

import (
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
)

const (
	BaseExperienceReward = 10
	BaseCoinReward       = 5
)

var rarityMultipliers = [domain.RarityCount]int{1, 2, 3, 5}

// RarityMultiplier scales duplicate rewards by tier.
func RarityMultiplier(r domain.Rarity) int {
	if !r.Valid() {
		return rarityMultipliers[domain.RarityCommon]
	}
	return rarityMultipliers[r]
}

// DuplicateReward picks experience or coins with equal odds and scales the
// base amount by the rarity multiplier.
func DuplicateReward(rarity domain.Rarity, src genome.RandomSource) domain.Reward {
	if src.Float64() < 0.5 {
		return domain.Reward{Kind: domain.RewardExperience, Amount: BaseExperienceReward * RarityMultiplier(rarity)}
	}
	return domain.Reward{Kind: domain.RewardCoins, Amount: BaseCoinReward * RarityMultiplier(rarity)}
}
