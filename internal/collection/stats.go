package collection

import (
	"math"

	"github.com/dom/quiz-monsters/internal/domain"
)

var Milestones = []int{25, 50, 75, 100}

// ComputeStats summarises a collection. total is the number of monsters that
// can exist (one per content item); when it is not positive the number of
// generated monsters is used instead.
func ComputeStats(monsters []domain.Monster, total int) domain.CollectionStats {
	stats := domain.CollectionStats{
		Generated: len(monsters),
		ByRarity:  make(map[domain.Rarity]domain.RarityCounts, domain.RarityCount),
	}
	for _, r := range domain.AllRarities {
		stats.ByRarity[r] = domain.RarityCounts{}
	}

	for _, m := range monsters {
		counts := stats.ByRarity[m.Rarity]
		counts.Total++
		if m.Unlocked {
			counts.Unlocked++
			stats.Unlocked++
		}
		stats.ByRarity[m.Rarity] = counts
	}

	if total <= 0 {
		total = len(monsters)
	}
	stats.Total = total
	stats.MilestonesReached = []int{}
	if total == 0 {
		stats.NextMilestone = Milestones[0]
		return stats
	}

	stats.Percentage = float64(stats.Unlocked) / float64(total) * 100
	stats.NextMilestone = 100
	for _, m := range Milestones {
		if stats.Percentage >= float64(m) {
			stats.MilestonesReached = append(stats.MilestonesReached, m)
			continue
		}
		stats.NextMilestone = m
		break
	}

	if stats.Percentage < 100 {
		needed := int(math.Ceil(float64(stats.NextMilestone) / 100 * float64(total)))
		stats.MonstersToNextMilestone = max(0, needed-stats.Unlocked)
	}
	return stats
}

// CrossedMilestones returns the milestones passed when the unlocked count went
// from before to after. total follows the ComputeStats rule and falls back to
// generated when it is not positive.
func CrossedMilestones(before, after, generated, total int) []int {
	if total <= 0 {
		total = generated
	}
	if total <= 0 || after <= before {
		return nil
	}

	prev := float64(before) / float64(total) * 100
	curr := float64(after) / float64(total) * 100
	var crossed []int
	for _, m := range Milestones {
		if prev < float64(m) && curr >= float64(m) {
			crossed = append(crossed, m)
		}
	}
	return crossed
}
