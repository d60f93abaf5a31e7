package genome_test

import (
	"testing"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestRarityWeights_BaseTables(t *testing.T) {
	tests := []struct {
		difficulty domain.Difficulty
		common     float64
		legendary  float64
	}{
		{domain.DifficultyElementary, 0.60, 0.03},
		{domain.DifficultyMiddle, 0.50, 0.05},
		{domain.DifficultyHigh, 0.40, 0.07},
		{domain.Difficulty("graduate"), 0.60, 0.03},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			w := genome.RarityWeights(tt.difficulty, 0)
			assert.InDelta(t, tt.common, w[domain.RarityCommon], 1e-9)
			assert.InDelta(t, tt.legendary, w[domain.RarityLegendary], 1e-9)

			sum := 0.0
			for _, p := range w {
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestRarityWeights_ComboRedistribution(t *testing.T) {
	w := genome.RarityWeights(domain.DifficultyElementary, 0.2)

	// removed = min(0.6*0.2, 0.3) = 0.12
	assert.InDelta(t, 0.48, w[domain.RarityCommon], 1e-9)
	assert.InDelta(t, 0.25+0.06, w[domain.RarityRare], 1e-9)
	assert.InDelta(t, 0.12+0.036, w[domain.RarityEpic], 1e-9)
	assert.InDelta(t, 0.03+0.024, w[domain.RarityLegendary], 1e-9)
}

func TestRarityWeights_ComboCappedAtHalfOfCommon(t *testing.T) {
	w := genome.RarityWeights(domain.DifficultyMiddle, 10)
	assert.InDelta(t, 0.25, w[domain.RarityCommon], 1e-9)

	negative := genome.RarityWeights(domain.DifficultyMiddle, -1)
	assert.Equal(t, genome.RarityWeights(domain.DifficultyMiddle, 0), negative)
}

func TestRarityWeights_Monotonic(t *testing.T) {
	for _, difficulty := range domain.AllDifficulties {
		prev := genome.RarityWeights(difficulty, 0)
		for combo := 0.05; combo <= 1.5; combo += 0.05 {
			cur := genome.RarityWeights(difficulty, combo)
			require.LessOrEqual(t, cur[domain.RarityCommon], prev[domain.RarityCommon]+1e-12, "combo %.2f", combo)
			require.GreaterOrEqual(t, cur[domain.RarityLegendary], prev[domain.RarityLegendary]-1e-12, "combo %.2f", combo)
			prev = cur
		}
	}
}

func TestRarityAllocator_Distribution(t *testing.T) {
	allocator := genome.NewRarityAllocator(genome.NewSeededSource(42))

	const samples = 100000
	counts := map[domain.Rarity]int{}
	for i := 0; i < samples; i++ {
		counts[allocator.Allocate(domain.DifficultyElementary, 0)]++
	}

	assert.InDelta(t, 0.60, float64(counts[domain.RarityCommon])/samples, 0.02)
	assert.InDelta(t, 0.25, float64(counts[domain.RarityRare])/samples, 0.02)
	assert.InDelta(t, 0.03, float64(counts[domain.RarityLegendary])/samples, 0.02)
}

func TestRarityAllocator_ComboShiftsTowardRarer(t *testing.T) {
	const samples = 50000
	commonShare := func(combo float64) float64 {
		allocator := genome.NewRarityAllocator(genome.NewSeededSource(7))
		n := 0
		for i := 0; i < samples; i++ {
			if allocator.Allocate(domain.DifficultyHigh, combo) == domain.RarityCommon {
				n++
			}
		}
		return float64(n) / samples
	}

	assert.Greater(t, commonShare(0), commonShare(0.5))
}

func TestRarityAllocator_CumulativeWalk(t *testing.T) {
	tests := []struct {
		roll float64
		want domain.Rarity
	}{
		{0.0, domain.RarityCommon},
		{0.59, domain.RarityCommon},
		{0.61, domain.RarityRare},
		{0.86, domain.RarityEpic},
		{0.98, domain.RarityLegendary},
	}

	for _, tt := range tests {
		allocator := genome.NewRarityAllocator(fixedSource(tt.roll))
		assert.Equal(t, tt.want, allocator.Allocate(domain.DifficultyElementary, 0), "roll %.2f", tt.roll)
	}
}
