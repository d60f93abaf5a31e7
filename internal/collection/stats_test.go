package collection_test

import (
	"fmt"
	"testing"

	"github.com/dom/quiz-monsters/internal/collection"
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/stretchr/testify/assert"
)

func monsters(total, unlocked int) []domain.Monster {
	out := make([]domain.Monster, total)
	for i := range out {
		out[i] = domain.Monster{
			ID:       fmt.Sprintf("monster_idiom_%d", i),
			Rarity:   domain.AllRarities[i%domain.RarityCount],
			Unlocked: i < unlocked,
		}
	}
	return out
}

func TestComputeStats_MilestoneScenario(t *testing.T) {
	stats := collection.ComputeStats(monsters(8, 5), 8)

	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 5, stats.Unlocked)
	assert.InDelta(t, 62.5, stats.Percentage, 1e-9)
	assert.Equal(t, []int{25, 50}, stats.MilestonesReached)
	assert.Equal(t, 75, stats.NextMilestone)
	assert.Equal(t, 1, stats.MonstersToNextMilestone)
}

func TestComputeStats_Table(t *testing.T) {
	tests := []struct {
		name       string
		generated  int
		unlocked   int
		total      int
		percentage float64
		next       int
		toNext     int
	}{
		{name: "empty", generated: 0, unlocked: 0, total: 0, percentage: 0, next: 25, toNext: 0},
		{name: "nothing unlocked", generated: 3, unlocked: 0, total: 10, percentage: 0, next: 25, toNext: 3},
		{name: "exactly on milestone", generated: 4, unlocked: 2, total: 4, percentage: 50, next: 75, toNext: 1},
		{name: "complete", generated: 4, unlocked: 4, total: 4, percentage: 100, next: 100, toNext: 0},
		{name: "total falls back to generated", generated: 4, unlocked: 1, total: 0, percentage: 25, next: 50, toNext: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := collection.ComputeStats(monsters(tt.generated, tt.unlocked), tt.total)
			assert.InDelta(t, tt.percentage, stats.Percentage, 1e-9)
			assert.Equal(t, tt.next, stats.NextMilestone)
			assert.Equal(t, tt.toNext, stats.MonstersToNextMilestone)
		})
	}
}

func TestComputeStats_ByRarity(t *testing.T) {
	stats := collection.ComputeStats(monsters(8, 5), 8)

	assert.Equal(t, domain.RarityCounts{Total: 2, Unlocked: 2}, stats.ByRarity[domain.RarityCommon])
	assert.Equal(t, domain.RarityCounts{Total: 2, Unlocked: 1}, stats.ByRarity[domain.RarityRare])
	assert.Equal(t, domain.RarityCounts{Total: 2, Unlocked: 1}, stats.ByRarity[domain.RarityEpic])
	assert.Equal(t, domain.RarityCounts{Total: 2, Unlocked: 1}, stats.ByRarity[domain.RarityLegendary])
}

func TestCrossedMilestones(t *testing.T) {
	tests := []struct {
		name                      string
		before, after, gen, total int
		want                      []int
	}{
		{"crosses one", 1, 2, 8, 8, []int{25}},
		{"between milestones", 2, 3, 8, 8, nil},
		{"exact boundary", 5, 6, 8, 8, []int{75}},
		{"small collection crosses several", 0, 1, 1, 1, []int{25, 50, 75, 100}},
		{"no transition", 4, 4, 8, 8, nil},
		{"falls back to generated", 1, 2, 4, 0, []int{50}},
		{"empty", 0, 0, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collection.CrossedMilestones(tt.before, tt.after, tt.gen, tt.total))
		})
	}
}

func TestCrossedMilestones_SequenceAnnouncesEachOnce(t *testing.T) {
	seen := map[int]int{}
	for before := 0; before < 8; before++ {
		for _, m := range collection.CrossedMilestones(before, before+1, 8, 8) {
			seen[m]++
		}
	}
	assert.Equal(t, map[int]int{25: 1, 50: 1, 75: 1, 100: 1}, seen)
}
